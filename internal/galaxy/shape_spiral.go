package galaxy

import (
	"math"

	"github.com/vovakirdan/galaxy-gen/internal/core"
)

const (
	spiralMaxArms    = 12
	spiralCoreShare  = 0.2  // fraction of planets in the central core
	spiralCoreRadius = 0.25 // core radius relative to the outer radius
)

// generateSpiral builds one Fermat-spiral arm per player (at least two, at
// most spiralMaxArms) around a uniform core. Arm i follows r = a*sqrt(θ)
// rotated by phase + 2πi/arms; the winding span is drawn from the seed.
// Planets are displaced from the arm centerline by perpendicular and radial
// jitter whose width scales with (1 - density).
func generateSpiral(b *build) (*placer, float64) {
	outer := float64(b.size * 0.6)
	coreRadius := float64(outer * spiralCoreRadius)
	arms := core.Clamp(b.req.Players, 2, spiralMaxArms)

	span := b.rng.Range(1.5*math.Pi, 3*math.Pi)
	a := outer / math.Sqrt(span)
	thetaCore := float64((coreRadius / a) * (coreRadius / a))
	jitter := float64(outer * core.Lerp(0.12, 0.03, b.req.Density))
	phase := b.rng.Angle()

	corePlanets := int(float64(b.req.Planets) * spiralCoreShare)
	armPlanets := b.req.Planets - corePlanets

	pl := b.newPlacer(outer)
	clampToDisc := func(p core.Point) core.Point {
		if n := p.Norm(); n > outer {
			return p.Scale(outer / n)
		}
		return p
	}

	for i := 0; i < corePlanets; i++ {
		pl.place(func() core.Point {
			return core.Polar(core.Point{}, annulusRadius(b.rng, 0, coreRadius), b.rng.Angle())
		})
	}

	for i := 0; i < armPlanets; i++ {
		armAngle := phase + float64(2*math.Pi*float64(i%arms)/float64(arms))
		pl.place(func() core.Point {
			theta := b.rng.Range(thetaCore, span)
			r := float64(a * math.Sqrt(theta))
			angle := armAngle + theta
			center := core.Polar(core.Point{}, r, angle)
			p := core.Polar(center, float64(b.rng.Signed()*jitter), angle+math.Pi/2)
			p = core.Polar(p, float64(b.rng.Signed()*jitter*0.5), angle)
			return clampToDisc(p)
		})
	}
	return pl, outer
}
