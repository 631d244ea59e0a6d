package galaxy

import (
	"math"

	"github.com/vovakirdan/galaxy-gen/internal/core"
)

const (
	homesSalt = 0x686f6d6573 // "homes"
	namesSalt = 0x6e616d6573 // "names"
)

// pickHomes chooses one home planet per player by farthest-point selection:
// the first home is random, each next one maximizes its distance to the
// homes already chosen. Ties go to the lowest index.
func pickHomes(points []core.Point, players int, seed int64) []int {
	if players <= 0 || len(points) == 0 {
		return nil
	}
	if players > len(points) {
		players = len(points)
	}

	rng := stream(seed, homesSalt)
	homes := make([]int, 0, players)
	homes = append(homes, rng.Intn(len(points)))

	// nearest[i] is the squared distance from point i to the closest home.
	nearest := make([]float64, len(points))
	for i := range nearest {
		nearest[i] = math.Inf(1)
	}
	for len(homes) < players {
		last := points[homes[len(homes)-1]]
		best, bestDist := -1, -1.0
		for i, p := range points {
			if d := p.Dist2(last); d < nearest[i] {
				nearest[i] = d
			}
			if nearest[i] > bestDist {
				best, bestDist = i, nearest[i]
			}
		}
		homes = append(homes, best)
	}
	return homes
}
