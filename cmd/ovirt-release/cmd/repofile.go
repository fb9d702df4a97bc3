package cmd

import (
	"fmt"

	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/compose"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/distro"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	repofileVersion string
	repofileDistro  string
)

var repofileCmd = &cobra.Command{
	Use:   "repofile",
	Short: "Compose the yum repo file of a release for a distribution",
	Long: `Compose the yum repo file of a release for a distribution (e.g. el8 or fc34).
The path of the new file is printed on stdout; removing it is up to the caller.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if repofileVersion == "" {
			return errors.E("repofile", fmt.Errorf("--release is required"))
		}
		if repofileDistro == "" {
			return errors.E("repofile", fmt.Errorf("--distro is required"))
		}
		// Fail on an unsupported distro before touching the network.
		if _, err := distro.Parse(repofileDistro); err != nil {
			return errors.E("repofile", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return errors.E("repofile", err)
		}

		ctx, stop := signalContext()
		defer stop()

		rel, err := resolveRelease(ctx, cfg, repofileVersion)
		if err != nil {
			return errors.E("repofile", err)
		}

		src, err := newSource(cfg)
		if err != nil {
			return errors.E("repofile", err)
		}

		path, err := compose.RepoFile(ctx, src, rel, repofileDistro, cfg.TempDir)
		if err != nil {
			return errors.E("repofile", err)
		}

		color.Green("✔ Repo file for %s (%s) written.", repofileDistro, rel.Artifact)
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(repofileCmd)
	repofileCmd.Flags().StringVar(&repofileVersion, "release", "", "The release version (e.g. 44 or master)")
	repofileCmd.Flags().StringVar(&repofileDistro, "distro", "", "The target distribution version (e.g. el8 or fc34)")
	repofileCmd.RegisterFlagCompletionFunc("release", ReleaseCompleter)
	repofileCmd.RegisterFlagCompletionFunc("distro", DistroCompleter)
}
