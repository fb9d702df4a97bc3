// Package cmd implements the ovirt-release command line.
package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/catalog"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/compose"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/config"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/extract"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/release"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ovirt-release",
	Short: "ovirt-release resolves oVirt release RPMs and builds repo files for test hosts",
	// SilenceErrors is used to prevent cobra from printing the error,
	// as we handle it ourselves in the Execute function.
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		log.SetDefault(log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			Prefix: config.AppName,
			Level:  level,
		}))
		// stdout carries paths and tables, so status messages go to stderr.
		color.Output = cmd.ErrOrStderr()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Print the help message if no subcommand is provided
		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Catalog location (defaults to the configured base_url)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// signalContext returns a context that is cancelled on a SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// loadConfig returns the configuration with command-line overrides applied.
func loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		cfg.SetBaseURL(baseURL)
	}
	return cfg, nil
}

func httpClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

func newCatalog(cfg *config.Config) *catalog.Fetcher {
	return catalog.NewFetcher(cfg.BaseURL, httpClient(cfg))
}

// resolveRelease looks version up in the configured catalog.
var resolveRelease = func(ctx context.Context, cfg *config.Config, version string) (*release.Release, error) {
	return release.Resolve(ctx, newCatalog(cfg), version)
}

// newSource builds the artifact extractor selected by the configuration.
var newSource = func(cfg *config.Config) (compose.Source, error) {
	unpacker, err := extract.NewUnpacker(cfg.Extractor, cfg.TempDir)
	if err != nil {
		return nil, err
	}
	return extract.New(httpClient(cfg), unpacker), nil
}
