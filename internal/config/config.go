package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Modes for the markup parser.
const (
	// ModeLenient degrades malformed notes to warnings.
	ModeLenient = "lenient"
	// ModeStrict surfaces the first fault as an error.
	ModeStrict = "strict"
)

// Config represents the notemark configuration
type Config struct {
	// Mode selects the default recovery behavior: lenient or strict.
	Mode string `yaml:"mode"`
	// LogFile receives structured logs; empty logs to stderr.
	LogFile string `yaml:"log_file,omitempty"`
	// Color toggles styled terminal output.
	Color bool `yaml:"color"`
	// MaxInputBytes rejects notes larger than this before parsing.
	// Zero means unlimited.
	MaxInputBytes int `yaml:"max_input_bytes,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Mode:          ModeLenient,
		Color:         true,
		MaxInputBytes: 4 << 20,
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "notemark", "config.yaml")
	}
	return filepath.Join(home, ".config", "notemark", "config.yaml")
}

// Load reads configuration from the config path, returning defaults when no
// file exists.
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save writes configuration to the config path
func (c *Config) Save() error {
	configPath := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Mode != ModeLenient && c.Mode != ModeStrict {
		return fmt.Errorf("invalid mode %q: must be %s or %s", c.Mode, ModeLenient, ModeStrict)
	}
	if c.MaxInputBytes < 0 {
		return fmt.Errorf("max_input_bytes must not be negative")
	}
	return nil
}
