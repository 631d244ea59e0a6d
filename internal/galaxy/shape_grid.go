package galaxy

import (
	"math"

	"github.com/vovakirdan/galaxy-gen/internal/core"
)

// gridSpacing is the lattice step for density: 4 + 2/d.
func gridSpacing(density float64) float64 {
	return 4.0 + 2.0/effectiveDensity(density)
}

// gridDims returns the lattice columns, rows and point count for a request
// under the given rounding policy.
func gridDims(planets, players int, rounding GridRounding) (cols, rows, count int) {
	switch rounding {
	case GridFloor:
		side := int(math.Floor(math.Sqrt(float64(planets))))
		if minSide := int(math.Ceil(math.Sqrt(float64(players)))); side < minSide {
			side = minSide
		}
		return side, side, side * side
	case GridCeil:
		side := int(math.Ceil(math.Sqrt(float64(planets))))
		return side, side, side * side
	default:
		cols = int(math.Ceil(math.Sqrt(float64(planets))))
		rows = (planets + cols - 1) / cols
		return cols, rows, planets
	}
}

// generateGrid lays planets on a regular lattice centered on the origin,
// row by row from the top-left. The RNG is not consumed.
func generateGrid(b *build) (*placer, float64) {
	s := gridSpacing(b.req.Density)
	cols, rows, count := gridDims(b.req.Planets, b.req.Players, b.opts.GridRounding)

	x0 := -float64(float64(cols-1)*s) / 2
	y0 := float64(float64(rows-1)*s) / 2
	radius := float64(float64(max(cols, rows)-1)*s)/2 + s/2

	pl := newPlacer(core.Square(radius), 0, b.opts.MaxAttempts, count)
	for i := 0; i < count; i++ {
		row, col := i/cols, i%cols
		pl.placeFixed(core.P(x0+float64(float64(col)*s), y0-float64(float64(row)*s)))
	}
	return pl, radius
}
