package cli

import (
	"fmt"

	"github.com/dukaflow/envsync/cli/core"
	"github.com/spf13/cobra"
)

func init() {
	// Auto-register this command
	core.RegisterCommand("sync", func() *cobra.Command {
		return SyncCmd()
	})
}

func SyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Print the deployment environment as a JSON document",
		Long: `Collect every known configuration variable that is set and non-empty,
append the fixed NODE_ENV and PORT entries, and print the result on
standard output. Same as running envsync with no arguments.`,
		Example: `  envsync sync
  envsync sync -e .env.production
  envsync sync -o table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync()
		},
	}
}

func runSync() error {
	core.ReadConfigToml(folder)

	files := append(core.GetConfig().Sync.EnvFiles, envFiles...)
	core.ReadSecrets(folder, files)

	keys := core.ScanKeys()
	// The real environment wins over .env files, matching how the
	// backend itself resolves its configuration.
	lookup := core.ChainLookup(core.OSLookup, core.LookupSecret)

	if verbose {
		for _, key := range core.SkippedKeys(keys, lookup) {
			core.PrintWarning(fmt.Sprintf("%s is not set or empty, skipping", key))
		}
	}

	return output(core.Collect(keys, lookup), outputFormat)
}
