package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".bowling"
	userConfigFile = "config.yaml"
	localConfig    = "configs/bowling.yaml"

	// SourceEmbedded is reported by Load when no config file was found.
	SourceEmbedded = "embedded"
)

// Load loads the bowling configuration and returns it along with the file
// it came from. Files only need to set the keys they change.
// Search order: customPath -> ~/.bowling/config.yaml -> ./configs/bowling.yaml -> embedded default.
// BOWLING_* environment variables are applied last.
func Load(customPath string) (Config, string, error) {
	cfg, source, err := loadFile(customPath)
	if err != nil {
		return cfg, source, err
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, source, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

func loadFile(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		path := ExpandHome(customPath)
		cfg := DefaultConfig()
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, path, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, path, fmt.Errorf("config: parse %s: %w", path, err)
		}
		return cfg, path, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(), localConfig} {
		if path == "" {
			continue
		}
		if cfg, ok := readConfig(path); ok {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultBowlingYAML, &cfg); err != nil {
		return DefaultConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// readConfig reads an optional config file. Missing or malformed files are skipped.
func readConfig(path string) (Config, bool) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userConfigDir, userConfigFile)
}

// Marshal renders a configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
