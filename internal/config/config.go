// Package config loads and validates application configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/gilded-rose/internal/common"
	"github.com/spf13/viper"
)

// Configuration keys shared between flags, files and environment variables.
const (
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
	KeyDatabasePath  = "database.path"
	KeyInventoryFile = "inventory.file"
	KeySimulateDays  = "simulate.days"
)

// Defaults.
const (
	DefaultDatabasePath = "$HOME/.local/share/rose/rose.db"
	DefaultSimulateDays = 2
	EnvPrefix           = "ROSE"
)

// Config is the typed view of the loaded configuration.
type Config struct {
	Logging   LoggingConfig
	Database  DatabaseConfig
	Inventory InventoryConfig
	Simulate  SimulateConfig
}

// LoggingConfig controls slog setup.
type LoggingConfig struct {
	Level  string
	Format string
}

// DatabaseConfig locates the stock ledger.
type DatabaseConfig struct {
	Path string
}

// InventoryConfig points at an optional default inventory file.
type InventoryConfig struct {
	File string
}

// SimulateConfig holds defaults for the simulate command.
type SimulateConfig struct {
	Days int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyDatabasePath, DefaultDatabasePath)
	v.SetDefault(KeySimulateDays, DefaultSimulateDays)
}

// Load reads the configuration out of v, expands paths and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString(KeyLogLevel)),
			Format: strings.ToLower(v.GetString(KeyLogFormat)),
		},
		Database: DatabaseConfig{
			Path: v.GetString(KeyDatabasePath),
		},
		Inventory: InventoryConfig{
			File: ExpandPath(v.GetString(KeyInventoryFile)),
		},
		Simulate: SimulateConfig{
			Days: v.GetInt(KeySimulateDays),
		},
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = DefaultDatabasePath
	}
	if cfg.Database.Path != ":memory:" {
		cfg.Database.Path = ExpandPath(cfg.Database.Path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting holds a usable value.
func (c *Config) Validate() error {
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q (want console or json)", common.ErrInvalidConfig, c.Logging.Format)
	}

	if c.Simulate.Days < 0 {
		return fmt.Errorf("%w: simulate.days must not be negative, got %d", common.ErrInvalidConfig, c.Simulate.Days)
	}

	return nil
}
