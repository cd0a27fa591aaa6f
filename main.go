package main

import (
	"os"

	"github.com/dukaflow/envsync/cli"
	"github.com/dukaflow/envsync/cli/core"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		core.PrintError("envsync", err)
		os.Exit(1)
	}
}
