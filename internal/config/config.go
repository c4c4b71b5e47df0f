// Package config loads the optional YAML configuration file accepted by
// cmd/chordsim's -config flag.
package config

import (
	"fmt"
	"os"

	"ChordSim/internal/logger"

	"gopkg.in/yaml.v3"
)

// Config holds every knob cmd/chordsim accepts through a config file.
// Flags, when set, take precedence over whatever a config file supplies.
type Config struct {
	Bits     int    `yaml:"bits"`
	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// LoadConfig reads and parses the YAML file at path. A missing path is
// not an error here; callers pass an empty path to mean "no config file"
// and get back a zero-value Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// ValidateConfig rejects values that would make no sense downstream. A
// zero value for any field means "unset, fall back to a flag default",
// so zero is accepted; negative bits, bits of 32 or more, and an
// unrecognized log_level are errors.
func (c Config) ValidateConfig() error {
	if c.Bits < 0 || c.Bits >= 32 {
		return fmt.Errorf("config: bits must be in (0, 32), got %d", c.Bits)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unrecognized log_level %q", c.LogLevel)
	}
	return nil
}

// LogConfig emits the values held in c at info level. These are the
// config file's values (zero where the file set nothing); command-line
// flag overrides are not reflected in c.
func (c Config) LogConfig(lgr logger.Logger) {
	lgr.Info("configuration loaded",
		logger.F("bits", c.Bits),
		logger.F("seed", c.Seed),
		logger.F("log_level", c.LogLevel),
		logger.F("log_file", c.LogFile),
	)
}
