//go:build !tinygo

// internal/medium/modbus.go
package medium

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// registerClient is the subset of modbus.Client the medium uses.
type registerClient interface {
	ReadHoldingRegisters(address, quantity uint16) ([]byte, error)
	WriteSingleRegister(address, value uint16) ([]byte, error)
}

// ModbusConfig describes a remote holding-register area used as the medium.
// Each byte of the code table occupies the low byte of one register.
type ModbusConfig struct {
	Endpoint    string // tcp://host:port or rtu:///dev/ttyUSB0
	UnitID      uint8
	BaseAddress uint16
	Capacity    int
	Timeout     time.Duration
	BaudRate    int // rtu only
}

// Modbus is a medium on a Modbus device reached over TCP or RTU.
// It serializes requests because one handler is shared by every call.
type Modbus struct {
	mu       sync.Mutex
	handler  io.Closer
	client   registerClient
	base     uint16
	capacity int
}

// NewModbus connects to the endpoint. ONE attempt, no retries.
func NewModbus(cfg ModbusConfig) (*Modbus, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("modbus medium: endpoint required")
	}
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("modbus medium: capacity must be > 0, got %d", cfg.Capacity)
	}
	if int(cfg.BaseAddress)+cfg.Capacity > 0x10000 {
		return nil, fmt.Errorf(
			"modbus medium: base_address %d + capacity %d exceeds register space",
			cfg.BaseAddress, cfg.Capacity,
		)
	}

	var (
		handler modbus.ClientHandler
		closer  io.Closer
	)

	switch {
	case strings.HasPrefix(cfg.Endpoint, "tcp://"):
		h := modbus.NewTCPClientHandler(strings.TrimPrefix(cfg.Endpoint, "tcp://"))
		h.Timeout = cfg.Timeout
		h.SlaveId = cfg.UnitID
		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("modbus medium: connect %s: %w", cfg.Endpoint, err)
		}
		handler, closer = h, h

	case strings.HasPrefix(cfg.Endpoint, "rtu://"):
		h := modbus.NewRTUClientHandler(strings.TrimPrefix(cfg.Endpoint, "rtu://"))
		h.BaudRate = cfg.BaudRate
		h.DataBits = 8
		h.Parity = "N"
		h.StopBits = 1
		h.Timeout = cfg.Timeout
		h.SlaveId = cfg.UnitID
		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("modbus medium: open %s: %w", cfg.Endpoint, err)
		}
		handler, closer = h, h

	default:
		return nil, fmt.Errorf("modbus medium: endpoint %q must start with tcp:// or rtu://", cfg.Endpoint)
	}

	return newModbus(modbus.NewClient(handler), closer, cfg.BaseAddress, cfg.Capacity), nil
}

func newModbus(client registerClient, closer io.Closer, base uint16, capacity int) *Modbus {
	return &Modbus{
		handler:  closer,
		client:   client,
		base:     base,
		capacity: capacity,
	}
}

func (m *Modbus) ReadCell(addr uint16) (byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, err := m.client.ReadHoldingRegisters(m.base+addr, 1)
	if err != nil {
		return 0, err
	}
	if len(res) != 2 {
		return 0, fmt.Errorf("modbus medium: short read: %d bytes", len(res))
	}
	// registers are big-endian on the wire; the cell is the low byte
	return res[1], nil
}

func (m *Modbus) WriteCell(addr uint16, v byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.client.WriteSingleRegister(m.base+addr, uint16(v))
	return err
}

func (m *Modbus) Capacity() int { return m.capacity }

func (m *Modbus) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handler == nil {
		return nil
	}
	return m.handler.Close()
}
