package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load loads the galaxy configuration, then applies GALAXY_* environment
// overrides and validates the result.
// Search order: customPath -> ~/.galaxy/config.yaml -> ./configs/galaxy.yaml -> embedded default
func Load(customPath string) (GalaxyConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (GalaxyConfig, error) {
	cfg := DefaultGalaxyConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if path := userConfigPath("config.yaml"); path != "" {
		if parsed, ok := tryFile(path); ok {
			return parsed, nil
		}
	}

	// Try local configs directory
	if parsed, ok := tryFile(filepath.Join("configs", "galaxy.yaml")); ok {
		return parsed, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGalaxyYAML, &cfg); err != nil {
		return DefaultGalaxyConfig(), nil
	}
	return cfg, nil
}

// tryFile reads an optional config file over the defaults. Missing or
// malformed files are skipped.
func tryFile(path string) (GalaxyConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GalaxyConfig{}, false
	}
	cfg := DefaultGalaxyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GalaxyConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".galaxy", filename)
}

type namesFile struct {
	PlanetNames []string `yaml:"planet_names"`
}

// LoadNames loads the planet name catalogue from path, or the embedded
// catalogue when path is empty.
func LoadNames(path string) ([]string, error) {
	data := defaultNamesYAML
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("config: failed to read names %s: %w", path, err)
		}
	}

	var f namesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: failed to parse names: %w", err)
	}
	if len(f.PlanetNames) == 0 {
		return nil, fmt.Errorf("config: name catalogue is empty")
	}
	return f.PlanetNames, nil
}
