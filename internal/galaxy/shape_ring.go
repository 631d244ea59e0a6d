package galaxy

import (
	"math"

	"github.com/vovakirdan/galaxy-gen/internal/core"
)

// generateRing keeps planets in a thin annulus. Its width is
// (0.25 - 0.15*density) of the mid radius, and the mid radius is chosen so
// the annulus area equals size².
func generateRing(b *build) (*placer, float64) {
	widthRatio := core.Lerp(0.25, 0.1, b.req.Density)
	mid := b.size / math.Sqrt(2*math.Pi*widthRatio)
	halfWidth := float64(mid*widthRatio) / 2
	inner, outer := mid-halfWidth, mid+halfWidth

	pl := b.newPlacer(outer)
	for i := 0; i < b.req.Planets; i++ {
		pl.place(func() core.Point {
			theta := b.rng.Angle()
			return core.Polar(core.Point{}, annulusRadius(b.rng, inner, outer), theta)
		})
	}
	return pl, outer
}
