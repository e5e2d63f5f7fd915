//go:build !tinygo

// internal/medium/builder.go
package medium

import (
	"context"
	"fmt"
	"time"

	cfg "github.com/tamzrod/ir-learner/internal/config"
	"github.com/tamzrod/ir-learner/internal/store"
)

func noopClose() error { return nil }

// Build constructs the configured medium and its closer.
// Connection happens here: ONE attempt, fail fast at startup.
// Assumes the config already passed Validate and Normalize.
func Build(ctx context.Context, m cfg.MediumConfig) (store.Medium, func() error, error) {
	switch m.Kind {
	case cfg.MediumMemory:
		return NewMemory(m.Capacity), noopClose, nil

	case cfg.MediumFile:
		f, err := OpenFile(m.File.Path, m.Capacity)
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil

	case cfg.MediumEEPROM:
		bus, err := OpenI2C(m.EEPROM.Bus)
		if err != nil {
			return nil, nil, err
		}
		e, err := NewEEPROM(bus, EEPROMConfig{
			Address:    m.EEPROM.Address,
			PageSize:   m.EEPROM.PageSize,
			Capacity:   m.Capacity,
			WriteCycle: time.Duration(m.EEPROM.WriteCycleMs) * time.Millisecond,
		})
		if err != nil {
			_ = bus.Close()
			return nil, nil, err
		}
		return e, bus.Close, nil

	case cfg.MediumModbus:
		mb, err := NewModbus(ModbusConfig{
			Endpoint:    m.Modbus.Endpoint,
			UnitID:      m.Modbus.UnitID,
			BaseAddress: m.Modbus.BaseAddress,
			Capacity:    m.Capacity,
			Timeout:     time.Duration(m.Modbus.TimeoutMs) * time.Millisecond,
			BaudRate:    m.Modbus.BaudRate,
		})
		if err != nil {
			return nil, nil, err
		}
		return mb, mb.Close, nil

	case cfg.MediumRedis:
		r, err := NewRedis(ctx, RedisConfig{
			Addr:     m.Redis.Addr,
			Password: m.Redis.Password,
			DB:       m.Redis.DB,
			Key:      m.Redis.Key,
			Capacity: m.Capacity,
			Timeout:  time.Duration(m.Redis.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	}

	return nil, nil, fmt.Errorf("medium: unknown kind %q", m.Kind)
}
