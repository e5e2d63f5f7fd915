// cmd/learner/commands/run.go
package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tamzrod/ir-learner/internal/bridge"
	"github.com/tamzrod/ir-learner/internal/config"
	"github.com/tamzrod/ir-learner/internal/controller"
	"github.com/tamzrod/ir-learner/internal/indicator"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive the learner from a board on a serial port",
	Long: `Run opens the code table and the board's serial port and runs the
learning state machine until interrupted.

Keys:
  *        start learning; the next valid capture is held
  #        select the next virtual remote (wraps)
  0-9 A-L  send the stored code, or store the held capture

Startup fails if the medium is too small for the configured remotes or
does not answer.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Store
	// --------------------

	cfg, st, closeMedium, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeMedium()

	if err := config.ValidateBridge(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// --------------------
	// Board
	// --------------------

	t := timing(cfg.Learner.Timing)

	br, err := bridge.Open(cfg.Learner.Bridge.Port, cfg.Learner.Bridge.BaudRate, t.Debounce)
	if err != nil {
		return err
	}
	defer br.Close()

	console := indicator.NewConsole(cmd.OutOrStdout())

	ctl, err := controller.New(t, controller.Deps{
		Store:     st,
		Keys:      br,
		Codec:     br,
		Indicator: console,
		Reporter:  console,
	})
	if err != nil {
		return err
	}

	log.Printf("learner running (remotes=%d medium=%s port=%s)",
		st.Geometry().Remotes(), cfg.Learner.Medium.Kind, cfg.Learner.Bridge.Port)

	return serve(ctx, ctl, br)
}

// serve runs the controller until ctx ends or the board goes away.
func serve(ctx context.Context, ctl *controller.Controller, br *bridge.Bridge) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-br.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	err := ctl.Run(ctx)

	select {
	case <-br.Done():
		return fmt.Errorf("board disconnected: %w", br.Err())
	default:
	}

	s := ctl.Snapshot()
	log.Printf("learner stopped (sent=%d saved=%d failures=%d discarded=%d)",
		s.Sent, s.Saved, s.Failures, s.Discarded)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
