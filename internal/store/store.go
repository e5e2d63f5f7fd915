// internal/store/store.go
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tamzrod/ir-learner/internal/layout"
)

// Medium is the byte-addressable non-volatile memory behind the store.
// Implementations need not be safe for concurrent use; Store serializes access.
type Medium interface {
	ReadCell(addr uint16) (byte, error)
	WriteCell(addr uint16, v byte) error
	Capacity() int
}

// Store maps (remote, button) to a RawCode on a Medium.
// Every write is read back and compared. There is no checksum,
// no wear levelling and no journal.
type Store struct {
	mu  sync.Mutex
	geo layout.Geometry
	m   Medium
}

// Entry is one slot as returned by Dump.
type Entry struct {
	Remote layout.RemoteSlot
	Button layout.ButtonSlot
	Addr   uint16
	Code   layout.RawCode
}

// New binds geo to m. It fails when the table does not fit the medium.
func New(geo layout.Geometry, m Medium) (*Store, error) {
	if m == nil {
		return nil, errors.New("store: medium required")
	}
	if geo.Remotes() == 0 {
		return nil, errors.New("store: empty geometry")
	}
	if !geo.Fits(m.Capacity()) {
		return nil, fmt.Errorf(
			"%w: %d remotes x %d bytes = %d bytes, medium has %d",
			ErrCapacity,
			geo.Remotes(),
			layout.RemoteStride,
			geo.Size(),
			m.Capacity(),
		)
	}
	return &Store{geo: geo, m: m}, nil
}

// Geometry returns the layout the store was built with.
func (s *Store) Geometry() layout.Geometry { return s.geo }

// Check reads the last byte of the table once.
// A medium that cannot answer is reported as a MediumError.
func (s *Store) Check() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	addr := uint16(s.geo.Size() - 1)
	if _, err := s.m.ReadCell(addr); err != nil {
		return &MediumError{Op: "read", Addr: addr, Err: err}
	}
	return nil
}

// Read returns the code stored at (r, b).
func (s *Store) Read(r layout.RemoteSlot, b layout.ButtonSlot) (layout.RawCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readLocked(s.geo.Address(r, b))
}

// Write stores v at (r, b) and verifies it by reading it back.
// A readback that differs yields an error wrapping ErrVerifyMismatch.
// Nothing is retried.
func (s *Store) Write(r layout.RemoteSlot, b layout.ButtonSlot, v layout.RawCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	baseAddr := s.geo.Address(r, b)

	raw := encodeCode(v)
	for i, c := range raw {
		addr := baseAddr + uint16(i)
		if err := s.m.WriteCell(addr, c); err != nil {
			return &MediumError{Op: "write", Addr: addr, Err: err}
		}
	}

	got, err := s.readLocked(baseAddr)
	if err != nil {
		return err
	}
	if got != v {
		return fmt.Errorf(
			"%w: remote=%d button=%d addr=%d wrote=%s read=%s",
			ErrVerifyMismatch,
			r.Index(),
			b.Index(),
			baseAddr,
			v,
			got,
		)
	}
	return nil
}

// Erase resets (r, b) to the erased pattern, with verification.
func (s *Store) Erase(r layout.RemoteSlot, b layout.ButtonSlot) error {
	return s.Write(r, b, layout.ErasedCode)
}

// Dump reads every slot in address order.
// It stops at the first medium failure.
func (s *Store) Dump() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, s.geo.Remotes()*layout.ButtonsPerRemote)

	var err error
	s.geo.Each(func(r layout.RemoteSlot, b layout.ButtonSlot) bool {
		addr := s.geo.Address(r, b)

		var code layout.RawCode
		code, err = s.readLocked(addr)
		if err != nil {
			return false
		}
		out = append(out, Entry{Remote: r, Button: b, Addr: addr, Code: code})
		return true
	})
	if err != nil {
		return out, err
	}
	return out, nil
}

func (s *Store) readLocked(baseAddr uint16) (layout.RawCode, error) {
	var raw [layout.CodeSize]byte
	for i := range raw {
		addr := baseAddr + uint16(i)
		c, err := s.m.ReadCell(addr)
		if err != nil {
			return 0, &MediumError{Op: "read", Addr: addr, Err: err}
		}
		raw[i] = c
	}
	return decodeCode(raw), nil
}
