// internal/indicator/console.go
package indicator

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/tamzrod/ir-learner/internal/controller"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	faint  = color.New(color.Faint)
)

// Console renders indicator changes and controller events as text lines.
// It stands in for the LEDs and the serial side-channel when the
// controller runs on a host.
type Console struct {
	mu  sync.Mutex
	out io.Writer

	last controller.Indication
	set  bool
}

// NewConsole writes to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Set prints the indication when it changes.
func (c *Console) Set(i controller.Indication) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.set && c.last == i {
		return
	}
	c.last = i
	c.set = true

	switch i.Mode {
	case controller.IndicatorLearning:
		yellow.Fprintf(c.out, "● learning: point a remote at the receiver\n")
	case controller.IndicatorSuccess:
		green.Fprintf(c.out, "● captured: press a button to store it\n")
	case controller.IndicatorRemoteSelected:
		cyan.Fprintf(c.out, "● remote %d\n", i.Remote)
	default:
		faint.Fprintf(c.out, "○ idle\n")
	}
}

// Report prints one controller event.
func (c *Console) Report(e controller.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e.Kind {
	case controller.EventSent:
		fmt.Fprintf(c.out, "→ sent %s (remote=%d button=%d)\n", e.Code, e.Remote, e.Button)
	case controller.EventCaptured:
		fmt.Fprintf(c.out, "← captured %s\n", e.Code)
	case controller.EventSaved:
		green.Fprintf(c.out, "✓ saved %s (remote=%d button=%d)\n", e.Code, e.Remote, e.Button)
	case controller.EventRemoteChanged:
		cyan.Fprintf(c.out, "→ remote %d selected\n", e.Remote)
	case controller.EventSendFailed, controller.EventSaveFailed:
		red.Fprintf(c.out, "✗ %s (remote=%d button=%d): %v\n", e.Kind, e.Remote, e.Button, e.Err)
	default:
		fmt.Fprintf(c.out, "? %s\n", e.Kind)
	}
}
