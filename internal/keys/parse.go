// internal/keys/parse.go
package keys

import "github.com/tamzrod/ir-learner/internal/layout"

// ---- KEY CHARACTERS ----

const (
	ProgrammingChar  byte = '*'
	ChangeRemoteChar byte = '#'

	// ZeroKeyChar is aliased onto layout.ZeroKeySlot.
	ZeroKeyChar byte = '0'
)

// buttonChars maps slot index to key character.
// '0' sits at slot 0, '1'..'9' at 1..9, 'A'..'L' at 10..21.
const buttonChars = "0123456789ABCDEFGHIJKL"

// Parse converts one key character to a KeyCode.
// Letters are case-insensitive. ok is false for unknown characters.
func Parse(c byte) (KeyCode, bool) {
	switch c {
	case ProgrammingChar:
		return ControlKey(Programming), true
	case ChangeRemoteChar:
		return ControlKey(ChangeRemote), true
	case ZeroKeyChar:
		return ButtonKey(layout.MustButton(layout.ZeroKeySlot)), true
	}

	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}

	for i := layout.FirstNumberedSlot; i < len(buttonChars); i++ {
		if buttonChars[i] == c {
			return ButtonKey(layout.MustButton(i)), true
		}
	}
	return KeyCode{}, false
}

// ParseButton parses a key character that must name a button.
func ParseButton(c byte) (layout.ButtonSlot, bool) {
	k, ok := Parse(c)
	if !ok {
		return layout.ButtonSlot{}, false
	}
	return k.Button()
}
