// Package config provides YAML-based configuration loading for the bowling
// game, with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vovakirdan/tui-bowling/internal/core"
)

// Config contains all configuration for a bowling session.
type Config struct {
	Player  PlayerConfig  `yaml:"player"`
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// PlayerConfig names the player shown in the UI.
type PlayerConfig struct {
	Name string `yaml:"name" env:"BOWLING_PLAYER"`
}

// RulesConfig holds optional rule switches.
type RulesConfig struct {
	// Reject tenth-frame rolls that exceed the pins left standing
	StrictTenthFrame bool `yaml:"strict_tenth_frame" env:"BOWLING_STRICT_TENTH"`
}

// DisplayConfig defines how the scoreboard is drawn.
type DisplayConfig struct {
	Colors      bool   `yaml:"colors"`
	StrikeColor string `yaml:"strike_color"`
	SpareColor  string `yaml:"spare_color"`
	ShowTable   bool   `yaml:"show_table"`   // Start with the frame table visible
	FlashMillis int    `yaml:"flash_millis"` // How long frame messages stay up
}

// LogConfig defines where diagnostics go.
type LogConfig struct {
	Level string `yaml:"level" env:"BOWLING_LOG_LEVEL"`
	File  string `yaml:"file" env:"BOWLING_LOG_FILE"` // Empty means stderr, or discarded in the UI
}

// FlashDuration returns the frame message lifetime.
func (d DisplayConfig) FlashDuration() time.Duration {
	return time.Duration(d.FlashMillis) * time.Millisecond
}

// Validate checks values that YAML alone cannot constrain.
func (c Config) Validate() error {
	var errs []error
	if _, ok := core.ParseColor(c.Display.StrikeColor); !ok {
		errs = append(errs, fmt.Errorf("display.strike_color: unknown color %q", c.Display.StrikeColor))
	}
	if _, ok := core.ParseColor(c.Display.SpareColor); !ok {
		errs = append(errs, fmt.Errorf("display.spare_color: unknown color %q", c.Display.SpareColor))
	}
	if c.Display.FlashMillis < 0 {
		errs = append(errs, fmt.Errorf("display.flash_millis: must not be negative, got %d", c.Display.FlashMillis))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
