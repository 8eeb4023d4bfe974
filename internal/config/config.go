// Package config loads the optional mosaic.yaml configuration file and
// applies defaults for unset values.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the run parameters that can come from a YAML file. CLI flags
// override any value set here.
type Config struct {
	// BoardWidth is the mosaic grid width in cells.
	BoardWidth int `yaml:"board_width"`
	// BoardHeight is the mosaic grid height in cells.
	BoardHeight int `yaml:"board_height"`
	// PrioritizeTetrominos selects the color-prioritized placement policy.
	PrioritizeTetrominos bool `yaml:"prioritize_tetrominos"`
	// SkinsDir is the directory scanned for sprite-sheet skins.
	SkinsDir string `yaml:"skins_dir"`
	// Workers is the batch-mode worker pool size.
	Workers int `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BoardWidth:  10,
		BoardHeight: 20,
		SkinsDir:    "assets",
		Workers:     4,
	}
}

// Load reads a YAML config file over the defaults. A missing path is not an
// error when optional is true; defaults are returned instead.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the invariants the rest of the system assumes.
func (c Config) Validate() error {
	if c.BoardWidth <= 0 || c.BoardHeight <= 0 {
		return fmt.Errorf("board dimensions must be positive, got %dx%d", c.BoardWidth, c.BoardHeight)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", c.Workers)
	}
	if c.SkinsDir == "" {
		return fmt.Errorf("skins directory is required")
	}
	return nil
}
