package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "spacerun.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.spacerun/configs/spacerun.yaml ->
// ./configs/spacerun.yaml -> embedded default.
//
// Files are applied on top of the defaults, so a file only needs the keys it
// changes.
func Load(customPath string) (SpaceRunConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SpaceRunConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SpaceRunConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return SpaceRunConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(configFileName), filepath.Join("configs", configFileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return embeddedDefault(), nil
}

// parse decodes YAML on top of the embedded defaults.
func parse(data []byte) (SpaceRunConfig, error) {
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SpaceRunConfig{}, err
	}
	return cfg, nil
}

func embeddedDefault() SpaceRunConfig {
	var cfg SpaceRunConfig
	if err := yaml.Unmarshal(defaultSpaceRunYAML, &cfg); err != nil {
		return DefaultSpaceRunConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path in the user's config directory, or "" if
// the home directory is unknown.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacerun", "configs", name)
}

// Encode renders a config as YAML, e.g. for `spacerun config`.
func Encode(cfg SpaceRunConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
