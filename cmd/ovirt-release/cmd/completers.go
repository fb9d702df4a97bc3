package cmd

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// knownDistros are suggested for --distro; any fcNN or elN value is accepted.
var knownDistros = []string{"el8", "el9", "fc34", "fc35"}

func ReleaseCompleter(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := loadConfig()
	if err != nil {
		log.Error("loading config for completion", "err", err)
		return nil, cobra.ShellCompDirectiveError
	}

	ctx, stop := signalContext()
	defer stop()

	entries, err := newCatalog(cfg).List(ctx)
	if err != nil {
		// Log to stderr, which is appropriate for completion scripts
		log.Error("listing releases for completion", "err", err)
		return nil, cobra.ShellCompDirectiveError
	}

	seen := make(map[string]bool, len(entries))
	var versions []string
	for _, entry := range entries {
		if seen[entry.Version] || !strings.HasPrefix(entry.Version, toComplete) {
			continue
		}
		seen[entry.Version] = true
		versions = append(versions, entry.Version)
	}
	sort.Strings(versions)

	return versions, cobra.ShellCompDirectiveNoFileComp
}

func DistroCompleter(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, d := range knownDistros {
		if strings.HasPrefix(d, toComplete) {
			matches = append(matches, d)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
