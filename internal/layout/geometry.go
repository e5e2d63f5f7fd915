// internal/layout/geometry.go
package layout

import "fmt"

// RawCode is one IR command as produced and consumed by the signal codec.
// The bit pattern is opaque here.
type RawCode uint32

func (c RawCode) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// ButtonSlot identifies one button of a remote, in [0, ButtonsPerRemote).
// The zero value is the zero-key slot.
type ButtonSlot struct {
	n uint8
}

// Button returns the slot with index n.
// ok is false when n is outside [0, ButtonsPerRemote).
func Button(n int) (ButtonSlot, bool) {
	if n < 0 || n >= ButtonsPerRemote {
		return ButtonSlot{}, false
	}
	return ButtonSlot{n: uint8(n)}, true
}

// MustButton is Button for constant indices.
func MustButton(n int) ButtonSlot {
	b, ok := Button(n)
	if !ok {
		panic(fmt.Sprintf("layout: button slot %d out of range", n))
	}
	return b
}

// Index returns the numeric slot index.
func (b ButtonSlot) Index() int { return int(b.n) }

// IsZeroKey reports whether b is the slot aliased to the physical "0" key.
func (b ButtonSlot) IsZeroKey() bool { return b.n == ZeroKeySlot }

// RemoteSlot identifies one virtual remote. Values are only produced by a
// Geometry, so a RemoteSlot is always in range for the geometry that made it.
type RemoteSlot struct {
	n uint8
}

// Index returns the numeric remote index.
func (r RemoteSlot) Index() int { return int(r.n) }

// Geometry is the runtime shape of the code table.
// Only the number of remotes is configurable; everything else is fixed.
type Geometry struct {
	remotes int
}

// NewGeometry returns the geometry for n remotes.
func NewGeometry(remotes int) (Geometry, error) {
	if remotes <= 0 {
		return Geometry{}, fmt.Errorf("layout: remotes must be > 0, got %d", remotes)
	}
	// RemoteSlot is a uint8; 255 remotes also keep every address below 16 bits.
	if remotes > 255 {
		return Geometry{}, fmt.Errorf("layout: remotes must be <= 255, got %d", remotes)
	}
	return Geometry{remotes: remotes}, nil
}

// Remotes returns the configured number of remotes.
func (g Geometry) Remotes() int { return g.remotes }

// Size returns the number of bytes the table needs.
func (g Geometry) Size() int { return g.remotes * RemoteStride }

// Remote returns the remote with index n.
// ok is false when n is outside [0, Remotes()).
func (g Geometry) Remote(n int) (RemoteSlot, bool) {
	if n < 0 || n >= g.remotes {
		return RemoteSlot{}, false
	}
	return RemoteSlot{n: uint8(n)}, true
}

// First returns remote 0.
func (g Geometry) First() RemoteSlot { return RemoteSlot{} }

// Next returns the remote after r, wrapping to 0 after the last one.
func (g Geometry) Next(r RemoteSlot) RemoteSlot {
	return RemoteSlot{n: uint8((int(r.n) + 1) % g.remotes)}
}

// Address returns the first byte address of (r, b).
func (g Geometry) Address(r RemoteSlot, b ButtonSlot) uint16 {
	return uint16(int(r.n)*RemoteStride + int(b.n)*CodeSize)
}

// Fits reports whether the table fits a medium of the given size.
func (g Geometry) Fits(capacity int) bool {
	return g.Size() <= capacity
}

// Each calls fn for every (remote, button) pair in address order.
// It stops early when fn returns false.
func (g Geometry) Each(fn func(r RemoteSlot, b ButtonSlot) bool) {
	for ri := 0; ri < g.remotes; ri++ {
		for bi := 0; bi < ButtonsPerRemote; bi++ {
			if !fn(RemoteSlot{n: uint8(ri)}, ButtonSlot{n: uint8(bi)}) {
				return
			}
		}
	}
}
