// cmd/learner/commands/slot.go
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamzrod/ir-learner/internal/layout"
	"github.com/tamzrod/ir-learner/internal/store"
)

var getCmd = &cobra.Command{
	Use:   "get REMOTE KEY",
	Short: "Print one stored code",
	Long: `Get prints the code stored for a key of a virtual remote.
KEY is a keypad character (0-9, A-L) or a slot number (0-21).`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

var setCmd = &cobra.Command{
	Use:   "set REMOTE KEY CODE",
	Short: "Store a code without capturing it",
	Long: `Set writes CODE (32-bit hex, 0x prefix optional) to a slot.
The write is read back and compared, exactly as a learned code is.`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

var eraseCmd = &cobra.Command{
	Use:   "erase REMOTE KEY",
	Short: "Forget one stored code",
	Args:  cobra.ExactArgs(2),
	RunE:  runErase,
}

func init() {
	rootCmd.AddCommand(getCmd, setCmd, eraseCmd)
}

type slotArgs struct {
	r layout.RemoteSlot
	b layout.ButtonSlot
}

func parseSlot(st *store.Store, args []string) (slotArgs, error) {
	r, err := parseRemote(st.Geometry(), args[0])
	if err != nil {
		return slotArgs{}, err
	}
	b, err := parseButton(args[1])
	if err != nil {
		return slotArgs{}, err
	}
	return slotArgs{r: r, b: b}, nil
}

func runGet(cmd *cobra.Command, args []string) error {
	_, st, closeMedium, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeMedium()

	s, err := parseSlot(st, args)
	if err != nil {
		return err
	}

	code, err := st.Read(s.r, s.b)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), code)
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	_, st, closeMedium, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeMedium()

	s, err := parseSlot(st, args)
	if err != nil {
		return err
	}
	code, err := parseCode(args[2])
	if err != nil {
		return err
	}

	if err := st.Write(s.r, s.b, code); err != nil {
		return fmt.Errorf("%s: %w", store.KindOf(err), err)
	}

	green.Fprintf(cmd.OutOrStdout(), "✓ remote %d key %s = %s\n", s.r.Index(), keyLabel(s.b), code)
	return nil
}

func runErase(cmd *cobra.Command, args []string) error {
	_, st, closeMedium, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeMedium()

	s, err := parseSlot(st, args)
	if err != nil {
		return err
	}

	if err := st.Erase(s.r, s.b); err != nil {
		return fmt.Errorf("%s: %w", store.KindOf(err), err)
	}

	green.Fprintf(cmd.OutOrStdout(), "✓ remote %d key %s erased\n", s.r.Index(), keyLabel(s.b))
	return nil
}
