// cmd/learner/commands/dump.go
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamzrod/ir-learner/internal/layout"
)

var dumpAll bool

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "List stored codes",
	Long: `Dump prints every learned slot in address order.
With --all, unlearned slots (erased pattern) are listed too.`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().BoolVarP(&dumpAll, "all", "a", false, "Include unlearned slots")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, _ []string) error {
	_, st, closeMedium, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeMedium()

	entries, err := st.Dump()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-6s %-3s %-5s %s\n", "REMOTE", "KEY", "ADDR", "CODE")

	learned := 0
	for _, e := range entries {
		erased := e.Code == layout.ErasedCode
		if !erased {
			learned++
		}
		if erased && !dumpAll {
			continue
		}

		line := fmt.Sprintf("%-6d %-3s %-5d %s\n", e.Remote.Index(), keyLabel(e.Button), e.Addr, e.Code)
		if erased {
			faint.Fprint(out, line)
		} else {
			green.Fprint(out, line)
		}
	}

	fmt.Fprintf(out, "%d of %d slots learned\n", learned, len(entries))
	return nil
}
