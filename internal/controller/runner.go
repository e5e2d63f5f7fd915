// internal/controller/runner.go
package controller

import (
	"context"
	"time"
)

// Run drives Step until ctx is done. One goroutine, no overlap.
// The indicator is re-asserted with the active remote on start.
//
// ctx only ends the process loop; it is not an in-band cancel and does
// not move the state machine.
func (c *Controller) Run(ctx context.Context) error {
	c.ind.Set(Indication{Mode: IndicatorRemoteSelected, Remote: c.active.Index()})

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			timer.Reset(c.Step())
		}
	}
}
