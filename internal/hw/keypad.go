// internal/hw/keypad.go
package hw

import (
	"time"

	"github.com/tamzrod/ir-learner/internal/keys"
)

// noKey is what a matrix scanner returns with nothing pressed.
const noKey = 255

// DefaultKeymap maps 4x4 matrix indices (row-major) to key characters.
// Buttons past D are reachable only over the serial bridge.
const DefaultKeymap = "123A456B789C*0#D"

// matrixArgs orders pins for keypad4x4.NewDevice. The driver numbers
// keys from its first row and first column argument, so rows[0] x cols[0]
// reads as index 0 and picks keymap[0].
func matrixArgs[P any](rows, cols [4]P) [8]P {
	return [8]P{
		rows[0], rows[1], rows[2], rows[3],
		cols[0], cols[1], cols[2], cols[3],
	}
}

type keyScanner interface {
	GetKey() uint8
}

// Keypad turns a matrix scanner into a KeyInput. A key is reported once
// when it goes down; holding it does nothing more.
type Keypad struct {
	scan   keyScanner
	keymap string
	deb    keys.Debouncer
	now    func() time.Time

	held uint8
}

func newKeypad(s keyScanner, keymap string, debounce time.Duration) *Keypad {
	if keymap == "" {
		keymap = DefaultKeymap
	}
	return &Keypad{
		scan:   s,
		keymap: keymap,
		deb:    keys.Debouncer{Window: debounce},
		now:    time.Now,
		held:   noKey,
	}
}

// Poll scans the matrix once.
func (k *Keypad) Poll() (keys.KeyCode, bool) {
	idx := k.scan.GetKey()
	if idx == k.held {
		return keys.KeyCode{}, false
	}
	k.held = idx
	if idx == noKey || int(idx) >= len(k.keymap) {
		return keys.KeyCode{}, false
	}

	code, ok := keys.Parse(k.keymap[idx])
	if !ok {
		return keys.KeyCode{}, false
	}
	if !k.deb.Accept(code, k.now()) {
		return keys.KeyCode{}, false
	}
	return code, true
}

// Flush forgets the key currently held, so it must be released and
// pressed again to count.
func (k *Keypad) Flush() {
	k.held = k.scan.GetKey()
	k.deb.Reset()
}
