package galaxy

import (
	"math"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// DefaultMinSeparation is the minimum distance kept between planets of
	// stochastic shapes, in galaxy units.
	DefaultMinSeparation = 4.0

	// DefaultMaxAttempts bounds candidate draws per planet before the
	// separation for that planet is relaxed.
	DefaultMaxAttempts = 100
)

// GridRounding decides how many points a GRID layout returns when the
// requested planet count is not a perfect square.
type GridRounding string

const (
	// GridExact fills ceil(sqrt(n)) columns row by row and stops at n,
	// so the last row may be partial. Always returns exactly n points.
	GridExact GridRounding = "exact"
	// GridFloor returns the largest full square not above n, but never
	// fewer points than there are players.
	GridFloor GridRounding = "floor"
	// GridCeil returns the smallest full square not below n.
	GridCeil GridRounding = "ceil"
)

// ParseGridRounding converts a policy name; the empty string means GridExact.
func ParseGridRounding(s string) (GridRounding, error) {
	switch GridRounding(strings.ToLower(strings.TrimSpace(s))) {
	case "", GridExact:
		return GridExact, nil
	case GridFloor:
		return GridFloor, nil
	case GridCeil:
		return GridCeil, nil
	}
	return "", invalidArg("grid_rounding", "unknown policy %q (valid: exact, floor, ceil)", s)
}

// Options configures generator policy. The zero value is usable but
// disables the separation guarantee; DefaultOptions is the normal start.
type Options struct {
	MinSeparation float64      // 0 rejects only exact duplicates
	MaxAttempts   int          // 0 means DefaultMaxAttempts
	GridRounding  GridRounding // "" means GridExact
	Normalize     bool         // rescale output to the [-1, 1] canvas

	// Names is the catalogue planet names are drawn from. Empty leaves
	// Layout.Names nil.
	Names []string

	// Logger receives debug summaries and placement warnings. nil is silent.
	Logger *log.Logger
}

// DefaultOptions returns the standard generator options.
func DefaultOptions() *Options {
	return &Options{
		MinSeparation: DefaultMinSeparation,
		MaxAttempts:   DefaultMaxAttempts,
		GridRounding:  GridExact,
	}
}

func (o *Options) validate() error {
	if math.IsNaN(o.MinSeparation) || o.MinSeparation < 0 {
		return invalidArg("min_separation", "must be >= 0 (got %v)", o.MinSeparation)
	}
	if o.MaxAttempts < 0 {
		return invalidArg("max_attempts", "must be >= 0 (got %d)", o.MaxAttempts)
	}
	if _, err := ParseGridRounding(string(o.GridRounding)); err != nil {
		return err
	}
	return nil
}
