package cmd

import (
	"fmt"
	"strconv"

	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/errors"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var filesVersion string

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the repo files shipped in a release",
	Long:  `Download the artifact of a release and list the .repo fragments it contains.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if filesVersion == "" {
			return errors.E("files", fmt.Errorf("--release is required"))
		}

		cfg, err := loadConfig()
		if err != nil {
			return errors.E("files", err)
		}

		ctx, stop := signalContext()
		defer stop()

		rel, err := resolveRelease(ctx, cfg, filesVersion)
		if err != nil {
			return errors.E("files", err)
		}

		src, err := newSource(cfg)
		if err != nil {
			return errors.E("files", err)
		}

		color.Cyan("i Extracting repo files from %s...", rel.Artifact)
		files, err := src.Extract(ctx, rel)
		if err != nil {
			return errors.E("files", err)
		}

		if len(files) == 0 {
			color.Yellow("! %s contains no repo files", rel.Artifact)
			return nil
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header("NAME", "BYTES")
		for _, f := range files {
			table.Append([]string{f.Name, strconv.Itoa(len(f.Content))})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.Flags().StringVar(&filesVersion, "release", "", "The release version to inspect (e.g. 44 or master)")
	filesCmd.RegisterFlagCompletionFunc("release", ReleaseCompleter)
}
