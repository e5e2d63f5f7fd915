// internal/hw/ir.go
package hw

import (
	"sync/atomic"
	"time"

	"github.com/tamzrod/ir-learner/internal/controller"
	"github.com/tamzrod/ir-learner/internal/layout"
	"github.com/tamzrod/ir-learner/internal/nec"
)

// carrier is one PWM channel gated on and off.
type carrier interface {
	Set(channel uint8, value uint32)
}

// IR is the SignalCodec of the board: an interrupt-fed receiver and a
// PWM carrier transmitter.
type IR struct {
	// last frame, written by the receive interrupt; 0 means none
	frame atomic.Uint64

	out   carrier
	ch    uint8
	duty  uint32
	sleep func(time.Duration)
}

func newIR(out carrier, ch uint8, duty uint32) *IR {
	return &IR{out: out, ch: ch, duty: duty, sleep: time.Sleep}
}

// Latched frame layout: code in the low 32 bits, then flags.
const (
	frameValid uint64 = 1 << 32
	frameReady uint64 = 1 << 33
)

// received is the decoder callback. It only latches the last frame;
// a repeat frame is never a valid capture.
func (ir *IR) received(code uint32, repeat bool) {
	f := uint64(code) | frameReady
	if !repeat {
		f |= frameValid
	}
	ir.frame.Store(f)
}

// Capture takes the latched frame, if any.
func (ir *IR) Capture() (controller.Capture, bool) {
	f := ir.frame.Swap(0)
	if f&frameReady == 0 {
		return controller.Capture{}, false
	}
	return controller.Capture{
		Code:  layout.RawCode(uint32(f)),
		Valid: f&frameValid != 0,
	}, true
}

// Flush drops a latched frame.
func (ir *IR) Flush() {
	ir.frame.Store(0)
}

// Transmit sends code as one NEC frame. It blocks for the frame length.
func (ir *IR) Transmit(code layout.RawCode) error {
	for _, p := range nec.Encode(uint32(code)) {
		ir.out.Set(ir.ch, ir.duty)
		ir.sleep(p.Mark)
		ir.out.Set(ir.ch, 0)
		if p.Space > 0 {
			ir.sleep(p.Space)
		}
	}
	return nil
}
