//go:build tinygo

// internal/hw/board.go
package hw

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/irremote"
	"tinygo.org/x/drivers/keypad4x4"

	"github.com/tamzrod/ir-learner/internal/nec"
)

// PWM is the subset of a TinyGo PWM peripheral the transmitter needs.
type PWM interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// KeypadPins lists the matrix rows top to bottom and the columns left
// to right, as seen from the front of the keypad.
type KeypadPins struct {
	Rows [4]machine.Pin
	Cols [4]machine.Pin
}

// NewKeypad configures a 4x4 matrix keypad.
func NewKeypad(p KeypadPins, keymap string, debounce time.Duration) *Keypad {
	a := matrixArgs(p.Rows, p.Cols)
	dev := keypad4x4.NewDevice(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7])
	dev.Configure()
	return newKeypad(dev, keymap, debounce)
}

// NewIR configures the receiver on rx and a 38 kHz carrier on tx.
func NewIR(rx machine.Pin, pwm PWM, tx machine.Pin) (*IR, error) {
	tx.Configure(machine.PinConfig{Mode: machine.PinPWM})
	if err := pwm.Configure(machine.PWMConfig{Period: uint64(1e9) / nec.Carrier}); err != nil {
		return nil, err
	}
	ch, err := pwm.Channel(tx)
	if err != nil {
		return nil, err
	}
	pwm.Set(ch, 0)

	ir := newIR(pwm, ch, pwm.Top()/2)

	recv := irremote.NewReceiver(rx)
	recv.Configure()
	recv.SetCommandHandler(func(d irremote.Data) {
		ir.received(d.Code, d.Flags&irremote.DataFlagIsRepeat != 0)
	})

	return ir, nil
}

// NewLEDs configures every pin as an output.
func NewLEDs(learning, success machine.Pin, remote ...machine.Pin) *LEDs {
	out := machine.PinConfig{Mode: machine.PinOutput}
	learning.Configure(out)
	success.Configure(out)

	l := &LEDs{Learning: learning, Success: success}
	for _, p := range remote {
		p.Configure(out)
		l.Remote = append(l.Remote, p)
	}
	return l
}
