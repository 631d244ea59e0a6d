package config

import (
	_ "embed"

	"github.com/vovakirdan/galaxy-gen/internal/galaxy"
)

//go:embed defaults/galaxy.yaml
var defaultGalaxyYAML []byte

//go:embed defaults/names.yaml
var defaultNamesYAML []byte

// DefaultGalaxyConfig returns the default configuration.
func DefaultGalaxyConfig() GalaxyConfig {
	return GalaxyConfig{
		Generator: GeneratorConfig{
			MinSeparation: galaxy.DefaultMinSeparation,
			MaxAttempts:   galaxy.DefaultMaxAttempts,
			GridRounding:  string(galaxy.GridExact),
		},
		Defaults: RequestDefaults{
			Planets: 100,
			Players: 4,
			Density: 0.5,
			Shape:   galaxy.ShapeRandom.String(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
