// internal/bridge/protocol.go
package bridge

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tamzrod/ir-learner/internal/controller"
	"github.com/tamzrod/ir-learner/internal/keys"
	"github.com/tamzrod/ir-learner/internal/layout"
)

// Line protocol, one ASCII message per line.
//
// board -> host:
//   K <c>            key press, c is a key character (see keys.Parse)
//   I <hex32> <0|1>  capture; the flag is the decoder's validity verdict
//
// host -> board:
//   T <hex32>        transmit

const (
	tagKey      = "K"
	tagCapture  = "I"
	tagTransmit = "T"
)

var errUnknownMessage = errors.New("bridge: unknown message")

type message struct {
	key     *keys.KeyCode
	capture *controller.Capture
}

func parseLine(line string) (message, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return message{}, errUnknownMessage
	}

	switch fields[0] {
	case tagKey:
		if len(fields) != 2 || len(fields[1]) != 1 {
			return message{}, fmt.Errorf("bridge: malformed key line %q", line)
		}
		k, ok := keys.Parse(fields[1][0])
		if !ok {
			return message{}, fmt.Errorf("bridge: unknown key %q", fields[1])
		}
		return message{key: &k}, nil

	case tagCapture:
		if len(fields) != 3 {
			return message{}, fmt.Errorf("bridge: malformed capture line %q", line)
		}
		code, err := strconv.ParseUint(fields[1], 16, 32)
		if err != nil {
			return message{}, fmt.Errorf("bridge: capture code %q: %w", fields[1], err)
		}
		var valid bool
		switch fields[2] {
		case "1":
			valid = true
		case "0":
			valid = false
		default:
			return message{}, fmt.Errorf("bridge: capture flag %q must be 0 or 1", fields[2])
		}
		return message{capture: &controller.Capture{Code: layout.RawCode(code), Valid: valid}}, nil
	}

	return message{}, errUnknownMessage
}

func formatTransmit(code layout.RawCode) string {
	return fmt.Sprintf("%s %08X\n", tagTransmit, uint32(code))
}
