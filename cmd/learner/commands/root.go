// cmd/learner/commands/root.go
package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configPath string

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed, color.Bold)
	cyan  = color.New(color.FgCyan)
	faint = color.New(color.Faint)
)

var rootCmd = &cobra.Command{
	Use:   "learner",
	Short: "Universal IR remote learner",
	Long: `learner stores IR codes captured from existing remotes in a persistent
table of virtual remotes and replays them on demand.

The run command drives the learning state machine from a board attached
over a serial line. The other commands inspect and edit the code table
directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute runs the root command and prints any error once.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	err := rootCmd.Execute()
	if err != nil {
		red.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

// SetVersionInfo sets the version shown by --version.
func SetVersionInfo(v, c string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", v, c)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "learner.yaml", "Path to the YAML config")
}
