// Package config loads the teaset demo configuration from defaults, an
// optional YAML config file, and TEASET_* environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/evertile/teaset/filter"
	"github.com/evertile/teaset/theme"
)

// Config represents the complete teaset configuration
type Config struct {
	TUI     TUIConfig         `mapstructure:"tui"`
	Logging LoggingConfig     `mapstructure:"logging"`
	Paths   PathsConfig       `mapstructure:"paths"`
	Keys    map[string]string `mapstructure:"keys"`
}

// TUIConfig controls the gallery's appearance and input handling
type TUIConfig struct {
	// Theme is the color theme (default: "default")
	// Options: any built-in palette or a discovered custom theme name.
	// Unknown names fall back to the default theme with a logged warning.
	Theme string `mapstructure:"theme"`
	// Filter is the combobox match strategy (default: "fuzzy")
	// Options: "contains", "fuzzy", "startsWith", "startsWithPerTerm"
	Filter string `mapstructure:"filter"`
	// Mouse enables mouse capture: face clicks open dropdowns, outside
	// clicks close them (default: true)
	Mouse bool `mapstructure:"mouse"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	// Level is the minimum level written: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// File is the log file path. Empty disables logging; the gallery owns
	// the terminal, so there is no sensible stderr fallback.
	File string `mapstructure:"file"`
}

// PathsConfig controls where teaset reads custom themes from
type PathsConfig struct {
	// ThemesDir overrides the default themes directory
	// (default: ~/.config/teaset/themes)
	ThemesDir string `mapstructure:"themes_dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:  theme.NameDefault,
			Filter: string(filter.Default()),
			Mouse:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.filter", defaults.TUI.Filter)
	viper.SetDefault("tui.mouse", defaults.TUI.Mouse)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)

	viper.SetDefault("paths.themes_dir", defaults.Paths.ThemesDir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "teaset")
	}
	// Fall back to ~/.config/teaset
	home, err := os.UserHomeDir()
	if err != nil {
		return ".teaset"
	}
	return filepath.Join(home, ".config", "teaset")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
