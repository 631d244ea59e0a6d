// Package config provides YAML-based configuration loading for the galaxy
// generator: generator policy, request defaults, logging and the planet name
// catalogue.
package config

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galaxy-gen/internal/galaxy"
)

// GalaxyConfig contains all configuration for the galaxy CLI.
type GalaxyConfig struct {
	Generator GeneratorConfig `yaml:"generator"`
	Defaults  RequestDefaults `yaml:"defaults"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GeneratorConfig defines placement policy.
type GeneratorConfig struct {
	MinSeparation float64 `yaml:"min_separation" env:"GALAXY_MIN_SEPARATION"`
	MaxAttempts   int     `yaml:"max_attempts" env:"GALAXY_MAX_ATTEMPTS"`
	GridRounding  string  `yaml:"grid_rounding" env:"GALAXY_GRID_ROUNDING"` // "exact", "floor" or "ceil"
	Normalize     bool    `yaml:"normalize" env:"GALAXY_NORMALIZE"`
	NamesFile     string  `yaml:"names_file,omitempty" env:"GALAXY_NAMES_FILE"` // empty means the embedded catalogue
}

// RequestDefaults are used for any request argument the caller leaves unset.
type RequestDefaults struct {
	Planets int     `yaml:"planets" env:"GALAXY_PLANETS"`
	Players int     `yaml:"players" env:"GALAXY_PLAYERS"`
	Density float64 `yaml:"density" env:"GALAXY_DENSITY"`
	Shape   string  `yaml:"shape" env:"GALAXY_SHAPE"`
	Names   bool    `yaml:"names" env:"GALAXY_NAMES"`
}

// LoggingConfig defines the CLI logger.
type LoggingConfig struct {
	Level string `yaml:"level" env:"GALAXY_LOG_LEVEL"` // debug, info, warn or error
}

// Validate checks values that yaml and env parsing cannot.
func (c GalaxyConfig) Validate() error {
	if math.IsNaN(c.Generator.MinSeparation) || c.Generator.MinSeparation < 0 {
		return fmt.Errorf("config: min_separation must be >= 0, got %v", c.Generator.MinSeparation)
	}
	if c.Generator.MaxAttempts < 0 {
		return fmt.Errorf("config: max_attempts must be >= 0, got %d", c.Generator.MaxAttempts)
	}
	if _, err := galaxy.ParseGridRounding(c.Generator.GridRounding); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if math.IsNaN(c.Defaults.Density) || c.Defaults.Density < 0 || c.Defaults.Density > 1 {
		return fmt.Errorf("config: default density must be in [0, 1], got %v", c.Defaults.Density)
	}
	if c.Defaults.Shape != "" {
		if _, err := galaxy.ParseShape(c.Defaults.Shape); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Logging.Level; empty means info.
func (c GalaxyConfig) LogLevel() (log.Level, error) {
	if c.Logging.Level == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: log level: %w", err)
	}
	return level, nil
}

// Options converts the generator section into galaxy options. names is
// the catalogue to draw from, or nil to leave layouts unnamed.
func (c GalaxyConfig) Options(names []string, logger *log.Logger) (*galaxy.Options, error) {
	rounding, err := galaxy.ParseGridRounding(c.Generator.GridRounding)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &galaxy.Options{
		MinSeparation: c.Generator.MinSeparation,
		MaxAttempts:   c.Generator.MaxAttempts,
		GridRounding:  rounding,
		Normalize:     c.Generator.Normalize,
		Names:         names,
		Logger:        logger,
	}, nil
}

// DensityPreset represents a named density level.
type DensityPreset string

const (
	DensitySparse DensityPreset = "sparse"
	DensityNormal DensityPreset = "normal"
	DensityDense  DensityPreset = "dense"
)

// DensityForPreset returns the density for a preset.
func DensityForPreset(preset DensityPreset) float64 {
	switch preset {
	case DensitySparse:
		return 0.2
	case DensityDense:
		return 0.85
	default:
		return 0.5
	}
}

// ParseDensityPreset validates a preset name.
func ParseDensityPreset(s string) (DensityPreset, error) {
	switch p := DensityPreset(s); p {
	case DensitySparse, DensityNormal, DensityDense:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown density preset %q (valid: sparse, normal, dense)", s)
}

// ApplyDensityPreset modifies the config based on a density preset.
func ApplyDensityPreset(cfg *GalaxyConfig, preset DensityPreset) {
	cfg.Defaults.Density = DensityForPreset(preset)

	// Presets also adjust spacing.
	switch preset {
	case DensitySparse:
		cfg.Generator.MinSeparation = max(cfg.Generator.MinSeparation, 6)
	case DensityDense:
		cfg.Generator.MinSeparation = min(cfg.Generator.MinSeparation, 3)
	}
}
