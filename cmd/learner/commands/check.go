// cmd/learner/commands/check.go
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config and probe the medium",
	Long: `Check validates the config, connects to the medium and reports how
much of it the code table occupies. It exits non-zero when the table does
not fit or the medium does not answer.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, st, closeMedium, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeMedium()

	geo := st.Geometry()
	capacity := cfg.Learner.Medium.Capacity

	out := cmd.OutOrStdout()
	cyan.Fprintf(out, "→ medium %s, %d bytes\n", cfg.Learner.Medium.Kind, capacity)
	fmt.Fprintf(out, "  remotes: %d\n", geo.Remotes())
	fmt.Fprintf(out, "  table:   %d bytes (%d free)\n", geo.Size(), capacity-geo.Size())
	green.Fprintf(out, "✓ medium reachable, layout fits\n")
	return nil
}
