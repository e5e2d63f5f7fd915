//go:build !tinygo

// internal/medium/eeprom_host.go
package medium

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// OpenI2C opens a host I2C bus by name ("" selects the first one, e.g. /dev/i2c-1).
// periph's bus satisfies drivers.I2C, so the result feeds NewEEPROM directly.
func OpenI2C(name string) (i2c.BusCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("eeprom medium: host init: %w", err)
	}
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("eeprom medium: open i2c %q: %w", name, err)
	}
	return bus, nil
}
