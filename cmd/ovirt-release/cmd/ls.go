package cmd

import (
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/errors"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List releases published in the catalog",
	Long:  `List the ovirt-release RPMs published under the catalog base URL, in listing order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return errors.E("ls", err)
		}

		ctx, stop := signalContext()
		defer stop()

		entries, err := newCatalog(cfg).List(ctx)
		if err != nil {
			return errors.E("ls", err)
		}

		if len(entries) == 0 {
			color.Yellow("No releases found at %s", cfg.BaseURL)
			return nil
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header("VERSION", "ARTIFACT")
		for _, entry := range entries {
			table.Append([]string{entry.Version, entry.Artifact})
		}
		table.Render()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
