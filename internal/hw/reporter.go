// internal/hw/reporter.go
package hw

import (
	"fmt"
	"io"

	"github.com/tamzrod/ir-learner/internal/controller"
)

// LineReporter writes events as plain lines, for the board's UART.
type LineReporter struct {
	W io.Writer
}

func (r LineReporter) Report(e controller.Event) {
	if e.Err != nil {
		fmt.Fprintf(r.W, "%s remote=%d button=%d: %v\r\n", e.Kind, e.Remote, e.Button, e.Err)
		return
	}
	fmt.Fprintf(r.W, "%s remote=%d button=%d code=%s\r\n", e.Kind, e.Remote, e.Button, e.Code)
}
