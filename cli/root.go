package cli

import (
	"github.com/dukaflow/envsync/cli/core"
	"github.com/spf13/cobra"
)

var outputFormat string
var envFiles []string
var folder string
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "envsync",
	Short: "envsync collects deployment environment variables and prints them as JSON.",
	Long: `envsync scans the process environment for the backend's configuration
variables (database URI, OAuth credentials, payment provider secrets),
drops the ones that are unset or empty, appends the fixed NODE_ENV and
PORT entries, and prints the result as a JSON array of key/value objects
for the deployment pipeline.`,
	SilenceUsage: true,
	// Running the binary bare performs the sync, so a pipeline step can
	// just call `envsync` with no arguments.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync()
	},
}

func Execute(releaseVersion string, releaseCommit string, releaseDate string) error {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format. One of: json,yaml,table,pretty")
	rootCmd.PersistentFlags().StringArrayVarP(&envFiles, "env-file", "e", nil, "Env file to use as a fallback source, can be set multiple times")
	rootCmd.PersistentFlags().StringVarP(&folder, "directory", "d", "", "Project path, can be a sub directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Report skipped variables on stderr")

	// Add all registered commands to the root command
	for _, cmd := range core.Commands() {
		rootCmd.AddCommand(cmd)
	}

	core.SetVersionInfo(releaseVersion, releaseCommit, releaseDate)
	return rootCmd.Execute()
}
