package galaxy

import (
	"math"

	"github.com/vovakirdan/galaxy-gen/internal/core"
)

// relaxRounds is how many times the separation is halved before only
// exact duplicates are rejected.
const relaxRounds = 6

type cellKey struct {
	x, y int64
}

// placer accepts candidate positions while keeping them distinct, inside
// the canvas and, when possible, at least minSep apart. Lookups go through
// a hash grid with cell size minSep, so each check scans 9 cells.
type placer struct {
	canvas      core.Rect
	minSep      float64
	maxAttempts int

	points  []core.Point
	cells   map[cellKey][]int
	seen    map[core.Point]struct{}
	relaxed int // planets placed below minSep
}

func newPlacer(canvas core.Rect, minSep float64, maxAttempts, capacity int) *placer {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	p := &placer{
		canvas:      canvas,
		minSep:      minSep,
		maxAttempts: maxAttempts,
		points:      make([]core.Point, 0, capacity),
		seen:        make(map[core.Point]struct{}, capacity),
	}
	if minSep > 0 {
		p.cells = make(map[cellKey][]int, capacity)
	}
	return p
}

func (p *placer) key(pt core.Point) cellKey {
	return cellKey{
		x: int64(math.Floor(pt.X / p.minSep)),
		y: int64(math.Floor(pt.Y / p.minSep)),
	}
}

// fits reports whether pt is new and at least sep from every placed point.
// sep must not exceed minSep.
func (p *placer) fits(pt core.Point, sep float64) bool {
	if _, dup := p.seen[pt]; dup {
		return false
	}
	if sep <= 0 || p.cells == nil {
		return true
	}
	sep2 := float64(sep * sep)
	k := p.key(pt)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, idx := range p.cells[cellKey{k.x + dx, k.y + dy}] {
				if p.points[idx].Dist2(pt) < sep2 {
					return false
				}
			}
		}
	}
	return true
}

func (p *placer) add(pt core.Point) {
	p.seen[pt] = struct{}{}
	if p.cells != nil {
		k := p.key(pt)
		p.cells[k] = append(p.cells[k], len(p.points))
	}
	p.points = append(p.points, pt)
}

// place draws candidates from sample until one fits. After maxAttempts
// misses the separation is halved; the last round only rejects exact
// duplicates. Returns the placed point.
func (p *placer) place(sample func() core.Point) core.Point {
	sep := p.minSep
	var candidate core.Point
	for round := 0; round <= relaxRounds; round++ {
		if round == relaxRounds {
			sep = 0
		}
		for attempt := 0; attempt < p.maxAttempts; attempt++ {
			candidate = p.canvas.Clamp(sample())
			if p.fits(candidate, sep) {
				if round > 0 {
					p.relaxed++
				}
				p.add(candidate)
				return candidate
			}
		}
		sep /= 2
	}

	// Every draw collided exactly. Step the last candidate one ulp at a
	// time toward the origin, then toward the right edge; the canvas
	// always spans the origin so every step stays inside it.
	target := 0.0
	for !p.fits(candidate, 0) {
		if candidate.X == target {
			target = p.canvas.Max.X
		}
		candidate.X = math.Nextafter(candidate.X, target)
	}
	p.relaxed++
	p.add(candidate)
	return candidate
}

// placeFixed adds a point whose position is determined by the layout
// itself (lattices). Duplicates are impossible by construction.
func (p *placer) placeFixed(pt core.Point) {
	p.add(pt)
}
