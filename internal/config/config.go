package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete accordion configuration
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Data    DataConfig    `mapstructure:"data"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UIConfig controls the terminal UI
type UIConfig struct {
	// Theme is the color theme (default: "classic")
	// Options: "classic", "neon", "mono"
	Theme string `mapstructure:"theme"`
	// Animate springs panels open and closed instead of toggling them instantly
	Animate bool `mapstructure:"animate"`
	// FPS is the animation frame rate (default: 60, min: 1, max: 120)
	FPS int `mapstructure:"fps"`
	// Title is shown above the first header
	Title string `mapstructure:"title"`
}

// DataConfig locates the item definitions
type DataConfig struct {
	// File is the items file, relative to the working directory unless absolute
	File string `mapstructure:"file"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Level   string `mapstructure:"level"`
	// File defaults to debug.log in the config directory
	File string `mapstructure:"file"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:   "classic",
			Animate: false,
			FPS:     60,
			Title:   "Accordion",
		},
		Data: DataConfig{
			File: "accordion.json",
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			File:    filepath.Join(ConfigDir(), "debug.log"),
		},
	}
}

// SetDefaults registers every default with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("ui.theme", defaults.UI.Theme)
	viper.SetDefault("ui.animate", defaults.UI.Animate)
	viper.SetDefault("ui.fps", defaults.UI.FPS)
	viper.SetDefault("ui.title", defaults.UI.Title)

	viper.SetDefault("data.file", defaults.Data.File)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
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

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "accordion")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".accordion"
	}
	return filepath.Join(home, ".config", "accordion")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
