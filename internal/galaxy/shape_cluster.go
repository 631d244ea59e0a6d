package galaxy

import (
	"math"

	"github.com/vovakirdan/galaxy-gen/internal/core"
)

const (
	clusterMin = 3
	clusterMax = 8
)

// generateCluster groups planets into clamp(players, 3, 8) clusters whose
// centers sit on a ring. Each center gets a seeded angular and radial
// wobble; points fall inside a cluster with a radius linear in u, so they
// thicken toward the center.
func generateCluster(b *build) (*placer, float64) {
	k := core.Clamp(b.req.Players, clusterMin, clusterMax)
	if k > b.req.Planets {
		k = b.req.Planets
	}
	clusterRadius := b.size / float64(2*math.Sqrt(float64(k)))
	spacing := 1.1 + float64(0.9*(1-b.req.Density))
	ringRadius := float64(2*clusterRadius*spacing) * float64(k) / (2 * math.Pi)

	offset := b.rng.Angle()
	step := 2 * math.Pi / float64(k)
	centers := make([]core.Point, k)
	for i := range centers {
		theta := offset + float64(step*float64(i)) + float64(0.25*step*b.rng.Signed())
		r := ringRadius * b.rng.Range(0.9, 1.1)
		centers[i] = core.Polar(core.Point{}, r, theta)
	}

	radius := float64(1.1*ringRadius) + clusterRadius
	pl := b.newPlacer(radius)
	per, extra := b.req.Planets/k, b.req.Planets%k
	for i, c := range centers {
		count := per
		if i < extra {
			count++
		}
		for j := 0; j < count; j++ {
			pl.place(func() core.Point {
				return core.Polar(c, float64(b.rng.Float()*clusterRadius), b.rng.Angle())
			})
		}
	}
	return pl, radius
}
