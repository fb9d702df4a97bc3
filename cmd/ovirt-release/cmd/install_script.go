package cmd

import (
	"fmt"

	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/compose"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var installScriptVersion string

var installScriptCmd = &cobra.Command{
	Use:   "install-script",
	Short: "Write a script that installs a release RPM",
	Long: `Write a shell script that installs the release RPM straight from the catalog.
The path of the new file is printed on stdout; removing it is up to the caller.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if installScriptVersion == "" {
			return errors.E("install-script", fmt.Errorf("--release is required"))
		}

		cfg, err := loadConfig()
		if err != nil {
			return errors.E("install-script", err)
		}

		ctx, stop := signalContext()
		defer stop()

		rel, err := resolveRelease(ctx, cfg, installScriptVersion)
		if err != nil {
			return errors.E("install-script", err)
		}

		path, err := compose.InstallScript(rel, cfg.TempDir)
		if err != nil {
			return errors.E("install-script", err)
		}

		color.Green("✔ Install script for %s written.", rel.Artifact)
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installScriptCmd)
	installScriptCmd.Flags().StringVar(&installScriptVersion, "release", "", "The release version (e.g. 44 or master)")
	installScriptCmd.RegisterFlagCompletionFunc("release", ReleaseCompleter)
}
