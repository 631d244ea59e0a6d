package galaxy

import (
	"math"

	"github.com/vovakirdan/galaxy-gen/internal/core"
)

// generateCircle gives planet i the angle phase + 2πi/n and a radius drawn
// uniformly by area from an annulus [inner, outer]. The disc area equals
// size², and the annulus covers 0.3 + 0.7*density of the radius, so
// density 1 fills the disc and density 0 leaves a broad rim.
func generateCircle(b *build) (*placer, float64) {
	outer := b.size / math.Sqrt(math.Pi)
	thickness := core.Lerp(0.3, 1, b.req.Density)
	inner := float64(outer * (1 - thickness))

	pl := b.newPlacer(outer)
	phase := b.rng.Angle()
	step := 2 * math.Pi / float64(b.req.Planets)
	for i := 0; i < b.req.Planets; i++ {
		theta := phase + float64(step*float64(i))
		pl.place(func() core.Point {
			return core.Polar(core.Point{}, annulusRadius(b.rng, inner, outer), theta)
		})
	}
	return pl, outer
}

// annulusRadius samples a radius so points are uniform by area between
// inner and outer.
func annulusRadius(rng *RNG, inner, outer float64) float64 {
	in2 := float64(inner * inner)
	out2 := float64(outer * outer)
	return math.Sqrt(in2 + float64(rng.Float()*(out2-in2)))
}
