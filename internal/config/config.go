// internal/config/config.go
package config

type Config struct {
	Learner LearnerConfig `yaml:"learner"`
}

type LearnerConfig struct {
	Layout LayoutConfig `yaml:"layout"`
	Medium MediumConfig `yaml:"medium"`
	Bridge BridgeConfig `yaml:"bridge"`
	Timing TimingConfig `yaml:"timing"`
}

// ---- LAYOUT ----

type LayoutConfig struct {
	// Remotes is the number of virtual remotes. 0 means the default.
	Remotes int `yaml:"remotes"`
}

// ---- MEDIUM ----

const (
	MediumMemory = "memory"
	MediumFile   = "file"
	MediumEEPROM = "eeprom"
	MediumModbus = "modbus"
	MediumRedis  = "redis"
)

type MediumConfig struct {
	Kind string `yaml:"kind"`

	// Capacity is the medium size in bytes.
	// Required for every kind except eeprom, which defaults to 4096.
	Capacity int `yaml:"capacity"`

	File   FileConfig   `yaml:"file"`
	EEPROM EEPROMConfig `yaml:"eeprom"`
	Modbus ModbusConfig `yaml:"modbus"`
	Redis  RedisConfig  `yaml:"redis"`
}

type FileConfig struct {
	Path string `yaml:"path"`
}

type EEPROMConfig struct {
	Bus          string `yaml:"bus"` // periph bus name; "" = first bus
	Address      uint16 `yaml:"address"`
	PageSize     uint16 `yaml:"page_size"`
	WriteCycleMs int    `yaml:"write_cycle_ms"`
}

type ModbusConfig struct {
	Endpoint    string `yaml:"endpoint"` // tcp://host:port | rtu:///dev/ttyX
	UnitID      uint8  `yaml:"unit_id"`
	BaseAddress uint16 `yaml:"base_address"`
	TimeoutMs   int    `yaml:"timeout_ms"`
	BaudRate    int    `yaml:"baud_rate"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`

	// TimeoutMs bounds each cell read or write.
	TimeoutMs int `yaml:"timeout_ms"`
}

// ---- BRIDGE ----

type BridgeConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

// ---- TIMING ----

type TimingConfig struct {
	PollIntervalMs    int `yaml:"poll_interval_ms"`
	CaptureIntervalMs int `yaml:"capture_interval_ms"`
	DebounceMs        int `yaml:"debounce_ms"`
	TransmitGapMs     int `yaml:"transmit_gap_ms"`
}
