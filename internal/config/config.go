// Package config loads simulator settings from a TOML file.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config holds the run settings for the simulator CLI. Every field has a
// usable default; a config file and command-line flags override it.
type Config struct {
	// Qubits is the number of qubits exchanged per round.
	Qubits int `toml:"qubits"`
	// Intercept activates the eavesdropping stage.
	Intercept bool `toml:"intercept"`
	// SampleSize is the number of sifted bits revealed during verification.
	SampleSize int `toml:"sample_size"`
	// Seed makes rounds replayable.
	Seed int64 `toml:"seed"`
	// Trials is the round count for the trials command.
	Trials int `toml:"trials"`
	// ResultsDB is an optional SQLite file recording round outcomes.
	// Persistence is disabled when empty.
	ResultsDB string `toml:"results_db"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Qubits:     64,
		SampleSize: 8,
		Seed:       1,
		Trials:     100,
		LogLevel:   "info",
	}
}

// Load reads a TOML config file on top of the defaults. An empty path returns
// the defaults untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for nonsensical values.
func (c *Config) Validate() error {
	if c.Qubits < 0 {
		return errors.Errorf("qubits must not be negative, got %d", c.Qubits)
	}
	if c.SampleSize < 0 {
		return errors.Errorf("sample_size must not be negative, got %d", c.SampleSize)
	}
	if c.Trials < 1 {
		return errors.Errorf("trials must be positive, got %d", c.Trials)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Errorf("unknown log level %q", c.LogLevel)
}
