package galaxy

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is matched by every validation failure.
var ErrInvalidArgument = errors.New("galaxy: invalid argument")

// ArgumentError reports which argument was rejected and why.
type ArgumentError struct {
	Arg    string // argument name, e.g. "n_planets"
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("galaxy: invalid argument %s: %s", e.Arg, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalidArg(arg, format string, args ...any) error {
	return &ArgumentError{Arg: arg, Reason: fmt.Sprintf(format, args...)}
}

// Request holds the inputs of one galaxy generation.
type Request struct {
	Planets int     // number of planets, > 0
	Players int     // number of players, 1..Planets
	Density float64 // spatial tightness in [0, 1]
	Shape   Shape
	Seed    int64 // fully determines the output
}

// Validate checks every argument before any generation work happens.
func (r Request) Validate() error {
	if r.Planets <= 0 {
		return invalidArg("n_planets", "must be greater than 0 (got %d)", r.Planets)
	}
	if r.Players <= 0 {
		return invalidArg("n_players", "must be greater than 0 (got %d)", r.Players)
	}
	if r.Players > r.Planets {
		return invalidArg("n_players", "must not exceed n_planets (%d > %d)", r.Players, r.Planets)
	}
	if math.IsNaN(r.Density) || r.Density < 0 || r.Density > 1 {
		return invalidArg("density", "must be in [0, 1] (got %v)", r.Density)
	}
	if !r.Shape.Valid() {
		return invalidArg("shape", "unknown shape %d", int(r.Shape))
	}
	return nil
}

// effectiveDensity maps the user density onto [0.1, 1] so that density 0
// stays finite in the size formula.
func effectiveDensity(density float64) float64 {
	return 0.1 + float64(0.9*density)
}

// galaxySize is the characteristic extent of a galaxy holding n planets:
// sqrt(n) * (5.0 + 6.4 / d). Lower density gives a larger galaxy.
func galaxySize(n int, density float64) float64 {
	return float64(math.Sqrt(float64(n)) * (sizeScaleBase + sizeScaleDensity/effectiveDensity(density)))
}

const (
	sizeScaleBase    = 5.0
	sizeScaleDensity = 6.4
)
