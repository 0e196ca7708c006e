// Package config loads Trailhead's runtime settings from an optional
// config.yaml using Viper. Settings cover logging and terminal
// behavior only; the design tokens are not configurable.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	keyLogFile     = "log.file"
	keyLogLevel    = "log.level"
	keyAltScreen   = "ui.alt_screen"
	keyMouse       = "ui.mouse"
	keyInsetTop    = "ui.inset_top"
	keyInsetBottom = "ui.inset_bottom"
)

// Config holds the resolved settings.
type Config struct {
	// LogFile receives JSON log records. Empty disables logging, since
	// stdout belongs to the terminal UI.
	LogFile string `json:"log_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level"`

	// AltScreen runs the UI in the terminal's alternate screen.
	AltScreen bool `json:"alt_screen"`

	// Mouse enables click and wheel input.
	Mouse bool `json:"mouse"`

	// InsetTop and InsetBottom reserve blank rows above and below the
	// UI, for terminals with overlays such as tmux status lines.
	InsetTop    int `json:"inset_top"`
	InsetBottom int `json:"inset_bottom"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		LogLevel:  "info",
		AltScreen: true,
		Mouse:     true,
	}
}

// DefaultDir returns ~/.trailhead, or .trailhead when the home
// directory cannot be resolved.
func DefaultDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".trailhead"
	}
	return filepath.Join(homeDir, ".trailhead")
}

// Load reads config.yaml from dir. A missing file is not an error;
// the defaults are returned instead.
func Load(dir string) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault(keyLogFile, def.LogFile)
	v.SetDefault(keyLogLevel, def.LogLevel)
	v.SetDefault(keyAltScreen, def.AltScreen)
	v.SetDefault(keyMouse, def.Mouse)
	v.SetDefault(keyInsetTop, def.InsetTop)
	v.SetDefault(keyInsetBottom, def.InsetBottom)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config in %s: %w", dir, err)
		}
	}

	cfg := Config{
		LogFile:     v.GetString(keyLogFile),
		LogLevel:    v.GetString(keyLogLevel),
		AltScreen:   v.GetBool(keyAltScreen),
		Mouse:       v.GetBool(keyMouse),
		InsetTop:    v.GetInt(keyInsetTop),
		InsetBottom: v.GetInt(keyInsetBottom),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the UI cannot honor.
func (c Config) Validate() error {
	if c.InsetTop < 0 || c.InsetBottom < 0 {
		return fmt.Errorf("invalid insets top=%d bottom=%d: must not be negative",
			c.InsetTop, c.InsetBottom)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
