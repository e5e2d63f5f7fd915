// internal/keys/keycode.go
package keys

import (
	"fmt"

	"github.com/tamzrod/ir-learner/internal/layout"
)

// Control is a reserved key outside the button-slot space.
type Control uint8

const (
	Programming Control = iota + 1
	ChangeRemote
)

func (c Control) String() string {
	switch c {
	case Programming:
		return "programming"
	case ChangeRemote:
		return "change-remote"
	default:
		return fmt.Sprintf("control(%d)", uint8(c))
	}
}

// KeyCode is either a Control key or a Button key, never both.
type KeyCode struct {
	control Control
	button  layout.ButtonSlot
}

// ControlKey returns the KeyCode for c.
func ControlKey(c Control) KeyCode {
	return KeyCode{control: c}
}

// ButtonKey returns the KeyCode for button slot b.
func ButtonKey(b layout.ButtonSlot) KeyCode {
	return KeyCode{button: b}
}

// Control returns the control key, if k is one.
func (k KeyCode) Control() (Control, bool) {
	return k.control, k.control != 0
}

// Button returns the button slot, if k is a button key.
func (k KeyCode) Button() (layout.ButtonSlot, bool) {
	return k.button, k.control == 0
}

// Char returns the character used for k on the bridge and keypad.
func (k KeyCode) Char() byte {
	switch k.control {
	case Programming:
		return ProgrammingChar
	case ChangeRemote:
		return ChangeRemoteChar
	}
	return buttonChars[k.button.Index()]
}

func (k KeyCode) String() string {
	if c, ok := k.Control(); ok {
		return c.String()
	}
	return fmt.Sprintf("button(%c)", k.Char())
}
