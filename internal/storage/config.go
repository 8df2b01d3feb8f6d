package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file in the data directory.
	userConfigFile = ".plantpal.yaml"
	// userConfigTOML is read only when userConfigFile does not exist.
	userConfigTOML = ".plantpal.toml"

	// Backend names
	BackendJSON   = "json"
	BackendSQLite = "sqlite"

	// Default configuration values
	DefaultBackend  = BackendJSON
	DefaultDataFile = "plants.json"
	DefaultDBFile   = "plants.db"
	DefaultTheme    = "light"
	DefaultLogLevel = "warn"
	DefaultColor    = "auto"
)

// Config represents user configuration from .plantpal.yaml (or .plantpal.toml).
// This file is user-managed and never written by plantpal.
type Config struct {
	// Backend selects where plants are persisted: "json" or "sqlite".
	Backend string `yaml:"backend" toml:"backend"`

	// DataFile is the JSON plant file, relative to the data directory.
	DataFile string `yaml:"data_file" toml:"data_file"`

	// DBFile is the SQLite database used when Backend is "sqlite".
	DBFile string `yaml:"db_file" toml:"db_file"`

	// PhotoDir, when set, is where added plant photos are copied.
	PhotoDir string `yaml:"photo_dir" toml:"photo_dir"`

	// Theme is the initial TUI theme: "light" or "dark".
	Theme string `yaml:"theme" toml:"theme"`

	// LogLevel is the zerolog level name.
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// ReminderTemplate is a mustache template for the watering reminder.
	ReminderTemplate string `yaml:"reminder_template" toml:"reminder_template"`

	// Color controls ANSI colors in CLI output: "auto", "always" or "never".
	Color string `yaml:"color" toml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Backend:  DefaultBackend,
		DataFile: DefaultDataFile,
		DBFile:   DefaultDBFile,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
		Color:    DefaultColor,
	}
}

// LoadConfig loads .plantpal.yaml if it exists, then .plantpal.toml,
// otherwise returns defaults. Partial config files are merged with defaults.
func (s *Storage) LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(s.ConfigPath())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
		}
	case os.IsNotExist(err):
		tomlPath := filepath.Join(s.root, userConfigTOML)
		if _, statErr := os.Stat(tomlPath); statErr != nil {
			// No config file - return defaults
			return cfg, nil
		}
		if _, err := toml.DecodeFile(tomlPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", userConfigTOML, err)
		}
	default:
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("invalid backend %q: must be %s or %s", c.Backend, BackendJSON, BackendSQLite)
	}
	switch c.Theme {
	case "light", "dark":
	default:
		return fmt.Errorf("invalid theme %q: must be light or dark", c.Theme)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q: must be auto, always or never", c.Color)
	}
	if c.DataFile == "" {
		c.DataFile = DefaultDataFile
	}
	if c.DBFile == "" {
		c.DBFile = DefaultDBFile
	}
	return nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}
