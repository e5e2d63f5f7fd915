// internal/medium/memory.go
package medium

import (
	"fmt"

	"github.com/tamzrod/ir-learner/internal/layout"
)

// Memory is a volatile medium initialised to the erased pattern.
// It stands in for an EEPROM that has never been written.
type Memory struct {
	cells []byte
}

// NewMemory returns a Memory of the given size.
func NewMemory(capacity int) *Memory {
	cells := make([]byte, capacity)
	for i := range cells {
		cells[i] = layout.ErasedByte
	}
	return &Memory{cells: cells}
}

func (m *Memory) ReadCell(addr uint16) (byte, error) {
	if int(addr) >= len(m.cells) {
		return 0, fmt.Errorf("memory: addr %d out of range", addr)
	}
	return m.cells[addr], nil
}

func (m *Memory) WriteCell(addr uint16, v byte) error {
	if int(addr) >= len(m.cells) {
		return fmt.Errorf("memory: addr %d out of range", addr)
	}
	m.cells[addr] = v
	return nil
}

func (m *Memory) Capacity() int { return len(m.cells) }
