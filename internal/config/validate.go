// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/ir-learner/internal/layout"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	l := cfg.Learner

	// ------------------------------------------------------------
	// LAYOUT
	// ------------------------------------------------------------

	remotes := l.Layout.Remotes
	if remotes == 0 {
		remotes = layout.DefaultRemotes
	}
	if _, err := layout.NewGeometry(remotes); err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	// ------------------------------------------------------------
	// MEDIUM
	// ------------------------------------------------------------

	m := l.Medium

	if m.Capacity < 0 {
		return fmt.Errorf("medium: capacity must be >= 0, got %d", m.Capacity)
	}
	if m.Capacity > layout.MaxAddressable {
		return fmt.Errorf(
			"medium: capacity %d exceeds 16-bit addressing (%d)",
			m.Capacity,
			layout.MaxAddressable,
		)
	}

	switch m.Kind {
	case MediumMemory:
	case MediumFile:
		if m.File.Path == "" {
			return fmt.Errorf("medium %q: file.path is required", m.Kind)
		}
	case MediumEEPROM:
		if m.EEPROM.WriteCycleMs < 0 {
			return fmt.Errorf("medium %q: write_cycle_ms must be >= 0", m.Kind)
		}
		if m.Capacity > 0xFFFF {
			return fmt.Errorf("medium %q: capacity %d exceeds 65535", m.Kind, m.Capacity)
		}
	case MediumModbus:
		ep := m.Modbus.Endpoint
		if !strings.HasPrefix(ep, "tcp://") && !strings.HasPrefix(ep, "rtu://") {
			return fmt.Errorf("medium %q: endpoint %q must start with tcp:// or rtu://", m.Kind, ep)
		}
		if m.Modbus.TimeoutMs < 0 {
			return fmt.Errorf("medium %q: timeout_ms must be >= 0", m.Kind)
		}
		if int(m.Modbus.BaseAddress)+m.Capacity > 0x10000 {
			return fmt.Errorf(
				"medium %q: base_address %d + capacity %d exceeds register space",
				m.Kind,
				m.Modbus.BaseAddress,
				m.Capacity,
			)
		}
	case MediumRedis:
		if m.Redis.Addr == "" {
			return fmt.Errorf("medium %q: redis.addr is required", m.Kind)
		}
		if m.Redis.TimeoutMs < 0 {
			return fmt.Errorf("medium %q: redis.timeout_ms must be >= 0, got %d", m.Kind, m.Redis.TimeoutMs)
		}
	case "":
		return fmt.Errorf("medium: kind is required")
	default:
		return fmt.Errorf("medium: unknown kind %q", m.Kind)
	}

	// ------------------------------------------------------------
	// CAPACITY VS LAYOUT (startup invariant)
	// ------------------------------------------------------------

	capacity := m.Capacity
	if capacity == 0 && m.Kind == MediumEEPROM {
		capacity = defaultEEPROMCapacity
	}
	if capacity == 0 {
		return fmt.Errorf("medium %q: capacity is required", m.Kind)
	}

	need := remotes * layout.RemoteStride
	if need > capacity {
		return fmt.Errorf(
			"layout does not fit medium: %d remotes x %d bytes = %d bytes, capacity=%d",
			remotes,
			layout.RemoteStride,
			need,
			capacity,
		)
	}

	// ------------------------------------------------------------
	// BRIDGE + TIMING
	// ------------------------------------------------------------

	if l.Bridge.BaudRate < 0 {
		return fmt.Errorf("bridge: baud_rate must be >= 0, got %d", l.Bridge.BaudRate)
	}

	t := l.Timing
	for name, v := range map[string]int{
		"poll_interval_ms":    t.PollIntervalMs,
		"capture_interval_ms": t.CaptureIntervalMs,
		"debounce_ms":         t.DebounceMs,
		"transmit_gap_ms":     t.TransmitGapMs,
	} {
		if v < 0 {
			return fmt.Errorf("timing: %s must be >= 0, got %d", name, v)
		}
	}

	return nil
}

// ValidateBridge checks the settings only the run command needs.
func ValidateBridge(cfg *Config) error {
	if cfg.Learner.Bridge.Port == "" {
		return fmt.Errorf("bridge: port is required")
	}
	return nil
}
