package core

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Simple command registry
var commandRegistry = make(map[string]func() *cobra.Command)

// RegisterCommand allows commands to register themselves
func RegisterCommand(name string, cmdFunc func() *cobra.Command) {
	commandRegistry[name] = cmdFunc
}

// GetCommand returns a registered command
func GetCommand(name string) *cobra.Command {
	if cmdFunc, exists := commandRegistry[name]; exists {
		return cmdFunc()
	}
	return &cobra.Command{Use: name, Short: fmt.Sprintf("%s (not implemented)", name)}
}

// Commands returns every registered command, for the root to add.
func Commands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(commandRegistry))
	for _, cmdFunc := range commandRegistry {
		if cmd := cmdFunc(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

var version string
var commit string
var date string

// SetVersionInfo stores the build metadata injected through ldflags.
func SetVersionInfo(releaseVersion, releaseCommit, releaseDate string) {
	if version == "" {
		version = releaseVersion
	}
	if commit == "" {
		commit = releaseCommit
	}
	if date == "" {
		date = releaseDate
	}
}

func GetVersion() string {
	return version
}

func GetCommit() string {
	return commit
}

func GetDate() string {
	return date
}
