package galaxy

import "github.com/vovakirdan/galaxy-gen/internal/core"

// generateRandom scatters planets uniformly over the square of side size.
// Density acts only through size.
func generateRandom(b *build) (*placer, float64) {
	half := b.size / 2
	pl := b.newPlacer(half)
	for i := 0; i < b.req.Planets; i++ {
		pl.place(func() core.Point {
			return core.P(b.rng.Range(-half, half), b.rng.Range(-half, half))
		})
	}
	return pl, half
}
