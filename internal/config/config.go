// Package config loads settings from defaults, the config file and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/util"

	"github.com/spf13/viper"
)

const (
	// AppName is the name of the application
	AppName = "ovirt-release"
	// EnvPrefix prefixes every environment override, e.g. OVIRT_RELEASE_BASE_URL.
	EnvPrefix = "OVIRT_RELEASE"
	// ConfigFileName is the optional config file inside the app directory.
	ConfigFileName = "config.yaml"
	// DefaultBaseURL is the yum-repo listing that publishes ovirt-release RPMs.
	DefaultBaseURL = "http://plain.resources.ovirt.org/pub/yum-repo/"
	// DefaultExtractor selects the external rpm2cpio | cpio pipeline.
	DefaultExtractor = "rpm2cpio"
	// DefaultTimeout bounds each HTTP request.
	DefaultTimeout = 60 * time.Second
)

// userHomeDir is a variable so tests can point it elsewhere.
var userHomeDir = os.UserHomeDir

// Config holds the application's configuration.
type Config struct {
	BaseURL   string        `mapstructure:"base_url"`
	Extractor string        `mapstructure:"extractor"`
	TempDir   string        `mapstructure:"temp_dir"`
	Timeout   time.Duration `mapstructure:"timeout"`

	homeDir string
}

// New creates a new Config instance from defaults, the config file and the
// environment, in increasing order of precedence.
var New = func() (*Config, error) {
	var home string
	var err error

	// Check for the override environment variable first.
	// This is useful for testing.
	homeOverride := os.Getenv(EnvPrefix + "_HOME")
	if homeOverride != "" {
		home = homeOverride
	} else {
		home, err = userHomeDir()
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{homeDir: home}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) load() error {
	v := viper.New()
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("extractor", DefaultExtractor)
	v.SetDefault("temp_dir", "")
	v.SetDefault("timeout", DefaultTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	path := c.GetConfigPath()
	if util.FileExists(path) {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	c.SetBaseURL(c.BaseURL)
	return nil
}

// GetAppDir returns the path to the application's hidden directory.
func (c *Config) GetAppDir() string {
	return filepath.Join(c.homeDir, "."+AppName)
}

// GetConfigPath returns the path of the optional YAML config file.
func (c *Config) GetConfigPath() string {
	return filepath.Join(c.GetAppDir(), ConfigFileName)
}

// SetHomeDir sets the application's home directory.
func (c *Config) SetHomeDir(dir string) {
	c.homeDir = dir
}

// SetBaseURL sets the catalog location, making sure artifact names can be
// appended to it directly.
func (c *Config) SetBaseURL(url string) {
	if url == "" {
		url = DefaultBaseURL
	}
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	c.BaseURL = url
}
