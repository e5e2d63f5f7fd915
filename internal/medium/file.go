//go:build !tinygo

// internal/medium/file.go
package medium

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/tamzrod/ir-learner/internal/layout"
)

// File keeps the code table in a flat file with the same layout as the EEPROM.
// A new or short file is padded with the erased pattern up to capacity.
type File struct {
	f        *os.File
	capacity int
}

// OpenFile opens or creates path as a medium of the given size.
func OpenFile(path string, capacity int) (*File, error) {
	if path == "" {
		return nil, errors.New("file medium: path required")
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("file medium: capacity must be > 0, got %d", capacity)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("file medium: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("file medium: %w", err)
	}

	if fi.Size() < int64(capacity) {
		pad := bytes.Repeat([]byte{layout.ErasedByte}, capacity-int(fi.Size()))
		if _, err := f.WriteAt(pad, fi.Size()); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("file medium: pad to %d bytes: %w", capacity, err)
		}
		if err := f.Sync(); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("file medium: %w", err)
		}
	}

	return &File{f: f, capacity: capacity}, nil
}

func (m *File) ReadCell(addr uint16) (byte, error) {
	if int(addr) >= m.capacity {
		return 0, fmt.Errorf("file medium: addr %d out of range", addr)
	}
	var b [1]byte
	if _, err := m.f.ReadAt(b[:], int64(addr)); err != nil {
		return 0, err
	}
	return b[0], nil
}

// WriteCell writes one byte and syncs it to disk before returning.
func (m *File) WriteCell(addr uint16, v byte) error {
	if int(addr) >= m.capacity {
		return fmt.Errorf("file medium: addr %d out of range", addr)
	}
	if _, err := m.f.WriteAt([]byte{v}, int64(addr)); err != nil {
		return err
	}
	return m.f.Sync()
}

func (m *File) Capacity() int { return m.capacity }

func (m *File) Close() error { return m.f.Close() }
