// Package config loads CLI settings from popover.toml and POPOVER_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	popover "github.com/grindlemire/go-popover"
)

// Config holds CLI settings.
type Config struct {
	Viewport  ViewportConfig `mapstructure:"viewport"`
	Placement string         `mapstructure:"placement"`
	Logging   LoggingConfig  `mapstructure:"logging"`
}

// ViewportConfig is the size of the headless document, in pixels.
type ViewportConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File, when set, receives debug output instead of stderr.
	File string `mapstructure:"file"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Viewport:  ViewportConfig{Width: 800, Height: 600},
		Placement: popover.BottomCenter.String(),
		Logging:   LoggingConfig{Level: "info", Format: "console"},
	}
}

// Dir returns the directory searched for popover.toml after the working
// directory: $XDG_CONFIG_HOME/popover, or ~/.config/popover.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "popover"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "popover"), nil
}

// Load reads settings. With an explicit path that file must exist;
// otherwise popover.toml is optional and defaults apply. Environment
// variables such as POPOVER_VIEWPORT_HEIGHT override the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("POPOVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file at %s: %w", path, err)
		}
	} else {
		v.SetConfigName("popover")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file at %s: %w", v.ConfigFileUsed(), err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("viewport.width", d.Viewport.Width)
	v.SetDefault("viewport.height", d.Viewport.Height)
	v.SetDefault("placement", d.Placement)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	}
	if _, err := c.PlacementValue(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

// PlacementValue parses the configured placement.
func (c *Config) PlacementValue() (popover.Placement, error) {
	return popover.ParsePlacement(c.Placement)
}
