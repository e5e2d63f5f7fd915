// cmd/learner/main.go
package main

import (
	"os"

	"github.com/tamzrod/ir-learner/cmd/learner/commands"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	commands.SetVersionInfo(version, commit)

	// Errors are printed by commands.Execute.
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
