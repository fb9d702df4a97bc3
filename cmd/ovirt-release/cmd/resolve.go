package cmd

import (
	"fmt"

	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/errors"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	resolveVersion string
	resolveOutput  string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a release version to its artifact",
	Long:  `Resolve a release version against the catalog and print the artifact that provides it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if resolveVersion == "" {
			return errors.E("resolve", fmt.Errorf("--release is required"))
		}
		if resolveOutput != "table" && resolveOutput != "yaml" {
			return errors.E("resolve", fmt.Errorf("-o must be either 'table' or 'yaml'"))
		}

		cfg, err := loadConfig()
		if err != nil {
			return errors.E("resolve", err)
		}

		ctx, stop := signalContext()
		defer stop()

		rel, err := resolveRelease(ctx, cfg, resolveVersion)
		if err != nil {
			return errors.E("resolve", err)
		}

		if resolveOutput == "yaml" {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(rel); err != nil {
				return errors.E("resolve", fmt.Errorf("failed to encode release: %w", err))
			}
			return enc.Close()
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header("VERSION", "ARTIFACT", "URL")
		table.Append([]string{rel.Version, rel.Artifact, rel.URL})
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVar(&resolveVersion, "release", "", "The release version to resolve (e.g. 44 or master)")
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "table", "Output format ('table' or 'yaml')")
	resolveCmd.RegisterFlagCompletionFunc("release", ReleaseCompleter)
}
