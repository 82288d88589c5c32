package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a loaded config came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadBookrun loads the game tuning.
// Search order: customPath -> ~/.bookrun/configs/bookrun.yaml -> ./configs/bookrun.yaml -> embedded default.
// Files are decoded over the built-in defaults, so a partial file only
// overrides the keys it names.
func LoadBookrun(customPath string) (BookrunConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BookrunConfig{}, SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BookrunConfig{}, SourceCustom, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bookrun.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "bookrun.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultBookrunYAML)
	if err != nil {
		return DefaultBookrunConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (BookrunConfig, error) {
	cfg := DefaultBookrunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BookrunConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BookrunConfig{}, err
	}
	return cfg, nil
}

// Encode renders a config as YAML.
func Encode(cfg BookrunConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bookrun", "configs", filename)
}
