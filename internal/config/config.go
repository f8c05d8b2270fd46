// Package config loads the application configuration for the hexfog
// frontends.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all frontend configuration
type Config struct {
	Window WindowConfig `yaml:"window"`
	Board  BoardConfig  `yaml:"board"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig holds window settings for the GUI frontend
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// BoardConfig holds board selection settings
type BoardConfig struct {
	Path      string `yaml:"path"`      // Board definition file
	DataDir   string `yaml:"data_dir"`  // Directory scanned for board sets
	Developer bool   `yaml:"developer"` // Start with the reveal-all overlay on
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     700,
			Height:    700,
			Title:     "Hexfog",
			Resizable: true,
		},
		Board: BoardConfig{
			Path:    "data/island/board.json",
			DataDir: "data",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file, falling back to defaults
// when the file does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return cfg, nil
}

// validate checks if the loaded configuration is usable
func validate(cfg *Config) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("invalid window dimensions: %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Board.Path == "" {
		return fmt.Errorf("board path is empty")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", cfg.Log.Level)
	}
	return nil
}
