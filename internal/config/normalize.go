// internal/config/normalize.go
package config

import "github.com/tamzrod/ir-learner/internal/layout"

// ---- DEFAULTS ----

const (
	defaultEEPROMCapacity  = 4096
	defaultEEPROMAddress   = 0x57
	defaultEEPROMPageSize  = 32
	defaultEEPROMCycleMs   = 10
	defaultModbusTimeoutMs = 1000
	defaultModbusBaudRate  = 9600
	defaultRedisKey        = "irlearner:codes"
	defaultRedisTimeoutMs  = 1000
	defaultBridgeBaudRate  = 115200

	defaultPollIntervalMs    = 10
	defaultCaptureIntervalMs = 20
	defaultDebounceMs        = 200
	defaultTransmitGapMs     = 100
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	l := &cfg.Learner

	if l.Layout.Remotes == 0 {
		l.Layout.Remotes = layout.DefaultRemotes
	}

	// ------------------------------------------------------------
	// MEDIUM
	// ------------------------------------------------------------

	m := &l.Medium
	switch m.Kind {
	case MediumEEPROM:
		if m.Capacity == 0 {
			m.Capacity = defaultEEPROMCapacity
		}
		if m.EEPROM.Address == 0 {
			m.EEPROM.Address = defaultEEPROMAddress
		}
		if m.EEPROM.PageSize == 0 {
			m.EEPROM.PageSize = defaultEEPROMPageSize
		}
		if m.EEPROM.WriteCycleMs == 0 {
			m.EEPROM.WriteCycleMs = defaultEEPROMCycleMs
		}
	case MediumModbus:
		if m.Modbus.TimeoutMs == 0 {
			m.Modbus.TimeoutMs = defaultModbusTimeoutMs
		}
		if m.Modbus.BaudRate == 0 {
			m.Modbus.BaudRate = defaultModbusBaudRate
		}
	case MediumRedis:
		if m.Redis.Key == "" {
			m.Redis.Key = defaultRedisKey
		}
		if m.Redis.TimeoutMs == 0 {
			m.Redis.TimeoutMs = defaultRedisTimeoutMs
		}
	}

	// ------------------------------------------------------------
	// BRIDGE + TIMING
	// ------------------------------------------------------------

	if l.Bridge.BaudRate == 0 {
		l.Bridge.BaudRate = defaultBridgeBaudRate
	}

	t := &l.Timing
	if t.PollIntervalMs == 0 {
		t.PollIntervalMs = defaultPollIntervalMs
	}
	if t.CaptureIntervalMs == 0 {
		t.CaptureIntervalMs = defaultCaptureIntervalMs
	}
	if t.DebounceMs == 0 {
		t.DebounceMs = defaultDebounceMs
	}
	if t.TransmitGapMs == 0 {
		t.TransmitGapMs = defaultTransmitGapMs
	}
}
