// internal/controller/collaborators.go
package controller

import (
	"github.com/tamzrod/ir-learner/internal/keys"
	"github.com/tamzrod/ir-learner/internal/layout"
)

// KeyInput yields at most one debounced key per poll.
type KeyInput interface {
	Poll() (keys.KeyCode, bool)
}

// Capture is one decode attempt by the signal codec.
// Valid is false for noise or an unrecognised protocol.
type Capture struct {
	Code  layout.RawCode
	Valid bool
}

// SignalCodec captures and transmits fixed-width IR codes.
// Capture never blocks; ok is false when nothing was received.
type SignalCodec interface {
	Capture() (c Capture, ok bool)
	Transmit(code layout.RawCode) error
}

// CodeStore is the persistent (remote, button) -> code table.
type CodeStore interface {
	Geometry() layout.Geometry
	Read(r layout.RemoteSlot, b layout.ButtonSlot) (layout.RawCode, error)
	Write(r layout.RemoteSlot, b layout.ButtonSlot, v layout.RawCode) error
}

// flusher is implemented by inputs that buffer events between polls.
// The controller flushes an input when it starts listening to it again,
// so nothing received while it was ignored is acted upon.
type flusher interface {
	Flush()
}

// ---- INDICATOR ----

// IndicatorMode is what the indicator shows.
type IndicatorMode uint8

const (
	IndicatorOff IndicatorMode = iota
	IndicatorLearning
	IndicatorSuccess
	IndicatorRemoteSelected
)

func (m IndicatorMode) String() string {
	switch m {
	case IndicatorOff:
		return "off"
	case IndicatorLearning:
		return "learning"
	case IndicatorSuccess:
		return "success"
	case IndicatorRemoteSelected:
		return "remote-selected"
	default:
		return "unknown"
	}
}

// Indication is one indicator state. Remote is only meaningful
// for IndicatorRemoteSelected.
type Indication struct {
	Mode   IndicatorMode
	Remote int
}

// Indicator is fire-and-forget.
type Indicator interface {
	Set(Indication)
}

// ---- EVENTS ----

// EventKind classifies what the controller reports to the operator.
type EventKind uint8

const (
	EventSent EventKind = iota + 1
	EventSendFailed
	EventCaptured
	EventSaved
	EventSaveFailed
	EventRemoteChanged
)

func (k EventKind) String() string {
	switch k {
	case EventSent:
		return "sent"
	case EventSendFailed:
		return "send-failed"
	case EventCaptured:
		return "captured"
	case EventSaved:
		return "saved"
	case EventSaveFailed:
		return "save-failed"
	case EventRemoteChanged:
		return "remote-changed"
	default:
		return "unknown"
	}
}

// Event is one operator-facing report.
type Event struct {
	Kind   EventKind
	Remote int
	Button int // -1 when no button is involved
	Code   layout.RawCode
	Err    error
}

// Reporter receives events on the operator side-channel.
type Reporter interface {
	Report(Event)
}

type nopIndicator struct{}

func (nopIndicator) Set(Indication) {}

type nopReporter struct{}

func (nopReporter) Report(Event) {}
