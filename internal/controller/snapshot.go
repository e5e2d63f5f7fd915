// internal/controller/snapshot.go
package controller

import "github.com/tamzrod/ir-learner/internal/store"

// Snapshot is a read-only view of the controller for status output.
// It contains no logic and no memory of the past beyond counters.
type Snapshot struct {
	State        State
	ActiveRemote int
	Pending      bool

	Sent      uint32
	Saved     uint32
	Failures  uint32
	Discarded uint32 // invalid captures thrown away while learning

	LastErrorKind store.Kind
	LastError     error
}

// Snapshot returns the current view.
func (c *Controller) Snapshot() Snapshot {
	s := c.snap
	s.State = c.state
	s.ActiveRemote = c.active.Index()
	s.Pending = c.state == StateAwaitingTargetButton
	return s
}
