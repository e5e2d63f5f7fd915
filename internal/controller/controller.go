// internal/controller/controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/tamzrod/ir-learner/internal/keys"
	"github.com/tamzrod/ir-learner/internal/layout"
	"github.com/tamzrod/ir-learner/internal/store"
)

// State is the programming state of the controller.
type State uint8

const (
	StateIdle State = iota
	StateAwaitingSignal
	StateAwaitingTargetButton
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingSignal:
		return "awaiting-signal"
	case StateAwaitingTargetButton:
		return "awaiting-target-button"
	default:
		return "unknown"
	}
}

// Timing holds the inter-cycle delays returned by Step.
type Timing struct {
	PollInterval    time.Duration // nothing happened
	CaptureInterval time.Duration // between capture attempts
	Debounce        time.Duration // after any accepted key
	TransmitGap     time.Duration // added after a transmission
}

// Deps are the collaborators the controller orchestrates.
// Indicator and Reporter may be nil.
type Deps struct {
	Store     CodeStore
	Keys      KeyInput
	Codec     SignalCodec
	Indicator Indicator
	Reporter  Reporter
}

// Controller owns the active remote and the programming state machine.
// It is driven by one goroutine and is not safe for concurrent use.
type Controller struct {
	timing Timing

	store CodeStore
	keys  KeyInput
	codec SignalCodec
	ind   Indicator
	rep   Reporter

	geo     layout.Geometry
	state   State
	active  layout.RemoteSlot
	pending layout.RawCode

	snap Snapshot
}

// New creates a controller in Idle with remote 0 active.
func New(t Timing, d Deps) (*Controller, error) {
	if d.Store == nil {
		return nil, errors.New("controller: store required")
	}
	if d.Keys == nil {
		return nil, errors.New("controller: key input required")
	}
	if d.Codec == nil {
		return nil, errors.New("controller: signal codec required")
	}
	if t.PollInterval < 0 || t.CaptureInterval < 0 || t.Debounce < 0 || t.TransmitGap < 0 {
		return nil, errors.New("controller: timing must be >= 0")
	}

	c := &Controller{
		timing: t,
		store:  d.Store,
		keys:   d.Keys,
		codec:  d.Codec,
		ind:    d.Indicator,
		rep:    d.Reporter,
		geo:    d.Store.Geometry(),
	}
	if c.ind == nil {
		c.ind = nopIndicator{}
	}
	if c.rep == nil {
		c.rep = nopReporter{}
	}

	c.active = c.geo.First()
	c.state = StateIdle
	return c, nil
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// ActiveRemote returns the selected remote.
func (c *Controller) ActiveRemote() layout.RemoteSlot { return c.active }

// Step runs exactly one poll cycle and returns the delay before the next one.
// Within a cycle: input is read, the state changes, store and codec I/O
// happen, then the indicator is updated.
func (c *Controller) Step() time.Duration {
	switch c.state {
	case StateAwaitingSignal:
		return c.stepAwaitingSignal()
	case StateAwaitingTargetButton:
		return c.stepAwaitingTarget()
	default:
		return c.stepIdle()
	}
}

// ------------------------------------------------------------
// IDLE
// ------------------------------------------------------------

func (c *Controller) stepIdle() time.Duration {
	k, ok := c.keys.Poll()
	if !ok {
		return c.timing.PollInterval
	}

	if ctl, isCtl := k.Control(); isCtl {
		switch ctl {
		case keys.Programming:
			c.state = StateAwaitingSignal
			if f, ok := c.codec.(flusher); ok {
				f.Flush()
			}
			c.ind.Set(Indication{Mode: IndicatorLearning})

		case keys.ChangeRemote:
			c.active = c.geo.Next(c.active)
			c.ind.Set(Indication{Mode: IndicatorRemoteSelected, Remote: c.active.Index()})
			c.rep.Report(Event{Kind: EventRemoteChanged, Remote: c.active.Index(), Button: -1})
		}
		return c.timing.Debounce
	}

	b, _ := k.Button()
	c.send(b)
	return c.timing.Debounce + c.timing.TransmitGap
}

func (c *Controller) send(b layout.ButtonSlot) {
	ev := Event{Kind: EventSent, Remote: c.active.Index(), Button: b.Index()}

	code, err := c.store.Read(c.active, b)
	if err != nil {
		log.Printf("store read failed (remote=%d button=%d): %v", ev.Remote, ev.Button, err)
		c.fail(ev, EventSendFailed, err)
		return
	}
	ev.Code = code

	if err := c.codec.Transmit(code); err != nil {
		log.Printf("transmit failed (remote=%d button=%d code=%s): %v", ev.Remote, ev.Button, code, err)
		c.fail(ev, EventSendFailed, err)
		return
	}

	c.snap.Sent++
	c.rep.Report(ev)
}

// ------------------------------------------------------------
// AWAITING SIGNAL
// ------------------------------------------------------------

// stepAwaitingSignal makes one capture attempt. The keypad is not polled.
// There is no way out of this state other than a valid capture.
func (c *Controller) stepAwaitingSignal() time.Duration {
	capt, ok := c.codec.Capture()
	if !ok {
		return c.timing.CaptureInterval
	}
	if !capt.Valid {
		c.snap.Discarded++
		return c.timing.CaptureInterval
	}

	c.pending = capt.Code
	c.state = StateAwaitingTargetButton
	if f, ok := c.keys.(flusher); ok {
		f.Flush()
	}
	c.ind.Set(Indication{Mode: IndicatorSuccess})
	c.rep.Report(Event{Kind: EventCaptured, Remote: c.active.Index(), Button: -1, Code: capt.Code})
	return c.timing.PollInterval
}

// ------------------------------------------------------------
// AWAITING TARGET BUTTON
// ------------------------------------------------------------

// stepAwaitingTarget waits for a button key. Control keys are ignored:
// Programming is a no-op retry, not a cancel.
func (c *Controller) stepAwaitingTarget() time.Duration {
	k, ok := c.keys.Poll()
	if !ok {
		return c.timing.PollInterval
	}

	b, isBtn := k.Button()
	if !isBtn {
		return c.timing.Debounce
	}

	ev := Event{Kind: EventSaved, Remote: c.active.Index(), Button: b.Index(), Code: c.pending}

	// single attempt; the outcome does not change where we go next
	if err := c.store.Write(c.active, b, c.pending); err != nil {
		log.Printf(
			"store write failed (remote=%d button=%d code=%s kind=%s): %v",
			ev.Remote, ev.Button, ev.Code, store.KindOf(err), err,
		)
		c.fail(ev, EventSaveFailed, err)
	} else {
		c.snap.Saved++
		c.rep.Report(ev)
	}

	c.pending = 0
	c.state = StateIdle
	c.ind.Set(Indication{Mode: IndicatorOff})
	return c.timing.Debounce
}

func (c *Controller) fail(ev Event, kind EventKind, err error) {
	ev.Kind = kind
	ev.Err = err

	c.snap.Failures++
	c.snap.LastErrorKind = store.KindOf(err)
	c.snap.LastError = err

	c.rep.Report(ev)
}
