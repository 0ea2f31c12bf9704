package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file in the working directory.
	userConfigFile = ".todoconfig.yaml"

	// Default configuration values
	DefaultDataFile    = "todos.json"
	DefaultLockTimeout = 2 * time.Second
	DefaultColor       = ColorAuto
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config represents user configuration from .todoconfig.yaml.
// This file is user-managed and never written by todo.
type Config struct {
	// DataFile is the task file path. Relative paths are resolved against
	// the directory holding the config file.
	DataFile string `yaml:"data_file"`

	// LockTimeout bounds how long a command waits for another invocation
	// to release the task file.
	LockTimeout time.Duration `yaml:"lock_timeout"`

	// Color selects when list output is colorized.
	Color ColorMode `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile:    DefaultDataFile,
		LockTimeout: DefaultLockTimeout,
		Color:       DefaultColor,
	}
}

// LoadConfig loads .todoconfig.yaml from dir if it exists, otherwise returns defaults.
// Partial config files are merged with defaults.
func LoadConfig(dir string) (*Config, error) {
	configPath := ConfigPath(dir)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file - return defaults
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Parse YAML and merge with defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", userConfigFile, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("data_file must not be empty")
	}
	if c.LockTimeout <= 0 {
		return fmt.Errorf("lock_timeout must be positive, got %s", c.LockTimeout)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never; got %q", c.Color)
	}
	return nil
}

// ConfigPath returns the path to the user config file in dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, userConfigFile)
}
