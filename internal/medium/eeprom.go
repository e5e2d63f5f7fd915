// internal/medium/eeprom.go
package medium

import (
	"errors"
	"fmt"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/at24cx"
)

// EEPROMConfig describes an AT24Cxx-class serial EEPROM.
type EEPROMConfig struct {
	Address    uint16        // I2C address; 0 means at24cx.Address
	PageSize   uint16        // 0 means 32
	Capacity   int           // bytes; 0 means 4096 (AT24C32)
	WriteCycle time.Duration // internal write time after each byte
}

const defaultEEPROMCapacity = 4096

// DefaultEEPROMWriteCycle covers the AT24C32 worst-case write time.
const DefaultEEPROMWriteCycle = 10 * time.Millisecond

// EEPROM is a medium backed by an at24cx device on an I2C bus.
type EEPROM struct {
	dev        at24cx.Device
	capacity   int
	writeCycle time.Duration
}

// NewEEPROM binds an at24cx device on bus. The bus must already be configured.
// The device is not touched until the first read or write.
func NewEEPROM(bus drivers.I2C, cfg EEPROMConfig) (*EEPROM, error) {
	if bus == nil {
		return nil, errors.New("eeprom medium: i2c bus required")
	}

	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = defaultEEPROMCapacity
	}
	if capacity < 0 || capacity > 0xFFFF {
		return nil, fmt.Errorf("eeprom medium: capacity %d out of range", capacity)
	}

	dev := at24cx.New(bus)
	if cfg.Address != 0 {
		dev.Address = cfg.Address
	}
	dev.Configure(at24cx.Config{
		PageSize:      cfg.PageSize,
		EndRAMAddress: uint16(capacity),
	})

	return &EEPROM{
		dev:        dev,
		capacity:   capacity,
		writeCycle: cfg.WriteCycle,
	}, nil
}

func (e *EEPROM) ReadCell(addr uint16) (byte, error) {
	return e.dev.ReadByte(addr)
}

// WriteCell writes one byte and waits out the device's internal write cycle,
// during which it does not acknowledge its address.
func (e *EEPROM) WriteCell(addr uint16, v byte) error {
	if err := e.dev.WriteByte(addr, v); err != nil {
		return err
	}
	if e.writeCycle > 0 {
		time.Sleep(e.writeCycle)
	}
	return nil
}

func (e *EEPROM) Capacity() int { return e.capacity }
