// Package config provides configuration loading for listlab.
//
// Configuration lives in a single TOML file. A missing file is not an
// error: Load falls back to defaults so the tool works out of the box.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates a configuration value is out of range.
	ErrValidationFailed = errors.New("validation failed")
)

// Config holds all listlab settings.
type Config struct {
	Stress StressConfig `toml:"stress"`
	UI     UIConfig     `toml:"ui"`
	Script ScriptConfig `toml:"script"`
}

// StressConfig controls the concurrent stress runner.
type StressConfig struct {
	// Workers is the number of goroutines pushing and consuming at once.
	Workers int `toml:"workers"`
	// Elements is how many elements each worker pushes per run.
	Elements int `toml:"elements"`
}

// UIConfig controls the interactive terminal session.
type UIConfig struct {
	// ShowIndex renders the cursor index in the status line.
	ShowIndex bool `toml:"show_index"`
	// GhostMarker is the glyph drawn for the slot between tail and head.
	GhostMarker string `toml:"ghost_marker"`
}

// ScriptConfig controls the Lua scripting host.
type ScriptConfig struct {
	// MaxOps bounds how many list operations a script may perform;
	// 0 means unlimited.
	MaxOps int `toml:"max_ops"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Stress: StressConfig{
			Workers:  4,
			Elements: 1000,
		},
		UI: UIConfig{
			ShowIndex:   true,
			GhostMarker: "~",
		},
		Script: ScriptConfig{
			MaxOps: 0,
		},
	}
}

// Load reads configuration from path, layered over the defaults. A missing
// file yields the defaults; a malformed or invalid file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			line, col := derr.Position()
			return nil, fmt.Errorf("parsing %s:%d:%d: %w", path, line, col, err)
		}
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that all settings are in range.
func (c *Config) Validate() error {
	if c.Stress.Workers < 1 {
		return fmt.Errorf("%w: stress.workers must be at least 1, got %d",
			ErrValidationFailed, c.Stress.Workers)
	}
	if c.Stress.Elements < 1 {
		return fmt.Errorf("%w: stress.elements must be at least 1, got %d",
			ErrValidationFailed, c.Stress.Elements)
	}
	if c.Script.MaxOps < 0 {
		return fmt.Errorf("%w: script.max_ops must not be negative, got %d",
			ErrValidationFailed, c.Script.MaxOps)
	}
	return nil
}
