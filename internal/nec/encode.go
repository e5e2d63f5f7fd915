// internal/nec/encode.go
package nec

import "time"

// NEC timing. Every bit starts with the same mark; the space length
// carries the value.
const (
	Carrier = 38000 // Hz

	LeaderMark  = 9000 * time.Microsecond
	LeaderSpace = 4500 * time.Microsecond
	BitMark     = 562500 * time.Nanosecond
	ZeroSpace   = 562500 * time.Nanosecond
	OneSpace    = 1687500 * time.Nanosecond

	Bits = 32
)

// Pair is one carrier burst followed by silence.
// The final pair of a frame has Space == 0.
type Pair struct {
	Mark  time.Duration
	Space time.Duration
}

// FrameLen is the number of pairs Encode returns.
const FrameLen = 1 + Bits + 1

// Encode lays out one NEC frame for code, least significant bit first.
// The code goes out as-is; address and command checksums are the
// sender's business, so learned codes replay exactly.
func Encode(code uint32) []Pair {
	frame := make([]Pair, 0, FrameLen)
	frame = append(frame, Pair{Mark: LeaderMark, Space: LeaderSpace})

	for i := 0; i < Bits; i++ {
		space := ZeroSpace
		if code&(1<<i) != 0 {
			space = OneSpace
		}
		frame = append(frame, Pair{Mark: BitMark, Space: space})
	}

	return append(frame, Pair{Mark: BitMark})
}
