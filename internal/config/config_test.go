package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := Default()
	if *cfg != *def {
		t.Errorf("Load(\"\") == %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.toml")
	body := `
qubits = 128
intercept = true
sample_size = 16
seed = 42
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Qubits != 128 || !cfg.Intercept || cfg.SampleSize != 16 || cfg.Seed != 42 {
		t.Errorf("loaded config == %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.Trials != Default().Trials {
		t.Errorf("trials == %d, want default %d", cfg.Trials, Default().Trials)
	}
	if lvl, err := cfg.Level(); err != nil || lvl != slog.LevelDebug {
		t.Errorf("Level() == (%v, %v), want debug", lvl, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tcs := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative qubits", func(c *Config) { c.Qubits = -1 }},
		{"negative sample", func(c *Config) { c.SampleSize = -1 }},
		{"zero trials", func(c *Config) { c.Trials = 0 }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
