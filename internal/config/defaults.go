package config

import (
	_ "embed"
)

//go:embed defaults/bowling.yaml
var defaultBowlingYAML []byte

// DefaultConfig returns the hardcoded configuration, used when the embedded
// YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Player: PlayerConfig{
			Name: "Player",
		},
		Rules: RulesConfig{
			StrictTenthFrame: true,
		},
		Display: DisplayConfig{
			Colors:      true,
			StrikeColor: "bright_yellow",
			SpareColor:  "bright_cyan",
			ShowTable:   false,
			FlashMillis: 1500,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBowlingYAML
}
