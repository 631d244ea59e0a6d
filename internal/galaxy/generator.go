// Package galaxy generates deterministic planet coordinates for a new game.
//
// A Request names the planet and player counts, a density in [0, 1], one of
// six shapes and a seed. The same request always yields the same Layout, bit
// for bit. Coordinates are in galaxy units centered on the origin; the
// Layout declares the square canvas that contains every point, and can be
// rescaled to the unit canvas [-1, 1] x [-1, 1].
package galaxy

import (
	"github.com/vovakirdan/galaxy-gen/internal/core"
)

// Layout is the output of one generation.
type Layout struct {
	Shape  Shape
	Seed   int64
	Points []core.Point // ordered planet positions
	Canvas core.Rect    // square centered on the origin containing every point
	Homes  []int        // one home planet index per player
	Names  []string     // one name per point; nil unless a catalogue was given
}

// Len returns the number of planets.
func (l *Layout) Len() int {
	return len(l.Points)
}

// Radius returns the canvas half-extent.
func (l *Layout) Radius() float64 {
	return l.Canvas.Max.X
}

// HomePoints returns the positions of the home planets in player order.
func (l *Layout) HomePoints() []core.Point {
	out := make([]core.Point, len(l.Homes))
	for i, idx := range l.Homes {
		out[i] = l.Points[idx]
	}
	return out
}

// Normalized returns a copy rescaled to the unit canvas [-1, 1] x [-1, 1].
func (l *Layout) Normalized() *Layout {
	out := *l
	r := l.Radius()
	out.Points = make([]core.Point, len(l.Points))
	for i, p := range l.Points {
		out.Points[i] = core.P(core.ClampF(p.X/r, -1, 1), core.ClampF(p.Y/r, -1, 1))
	}
	out.Canvas = core.Square(1)
	out.Homes = append([]int(nil), l.Homes...)
	out.Names = append([]string(nil), l.Names...)
	return &out
}

// build carries the per-call state handed to a shape strategy.
type build struct {
	req  Request
	opts *Options
	rng  *RNG
	size float64 // characteristic galaxy size for req
}

func (b *build) newPlacer(radius float64) *placer {
	return newPlacer(core.Square(radius), b.opts.MinSeparation, b.opts.MaxAttempts, b.req.Planets)
}

// strategyFunc lays out planets for one shape. It returns the placer that
// holds the points and the canvas half-extent.
type strategyFunc func(b *build) (*placer, float64)

type strategy struct {
	info     ShapeInfo
	generate strategyFunc
}

// strategies is indexed by Shape.
var strategies = [shapeCount]strategy{
	ShapeRandom: {
		info: ShapeInfo{
			Shape:   ShapeRandom,
			Title:   "Uniform scatter",
			Density: "shrinks the square the planets are scattered in",
		},
		generate: generateRandom,
	},
	ShapeSpiral: {
		info: ShapeInfo{
			Shape:   ShapeSpiral,
			Title:   "Spiral arms around a core, one arm per player",
			Density: "shrinks the galaxy and narrows the arms",
		},
		generate: generateSpiral,
	},
	ShapeCircle: {
		info: ShapeInfo{
			Shape:   ShapeCircle,
			Title:   "Evenly spaced angles inside a circular boundary",
			Density: "shrinks the circle and thickens the annulus up to a filled disc",
		},
		generate: generateCircle,
	},
	ShapeRing: {
		info: ShapeInfo{
			Shape:   ShapeRing,
			Title:   "Thin annulus",
			Density: "shrinks the ring and makes it thinner",
		},
		generate: generateRing,
	},
	ShapeCluster: {
		info: ShapeInfo{
			Shape:   ShapeCluster,
			Title:   "Dense clusters on a ring",
			Density: "shrinks clusters and pulls them closer together",
		},
		generate: generateCluster,
	},
	ShapeGrid: {
		info: ShapeInfo{
			Shape:   ShapeGrid,
			Title:   "Regular lattice",
			Density: "reduces lattice spacing (4 + 2/d)",
		},
		generate: generateGrid,
	},
}

// Generator produces layouts under a fixed set of options.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	options *Options
}

// New creates a generator with the given options. nil means DefaultOptions.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}
	opts := *options
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.GridRounding == "" {
		opts.GridRounding = GridExact
	}
	return &Generator{options: &opts}
}

// Generate validates req and lays out its planets.
func (g *Generator) Generate(req Request) (*Layout, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := g.options.validate(); err != nil {
		return nil, err
	}

	b := &build{
		req:  req,
		opts: g.options,
		rng:  NewRNG(req.Seed),
		size: galaxySize(req.Planets, req.Density),
	}
	pl, radius := strategies[req.Shape].generate(b)

	layout := &Layout{
		Shape:  req.Shape,
		Seed:   req.Seed,
		Points: pl.points,
		Canvas: core.Square(radius),
	}
	layout.Homes = pickHomes(layout.Points, req.Players, req.Seed)
	if len(g.options.Names) > 0 {
		layout.Names = pickNames(g.options.Names, len(layout.Points), req.Seed)
	}

	if logger := g.options.Logger; logger != nil {
		if pl.relaxed > 0 {
			logger.Warn("planets placed below minimum separation",
				"shape", req.Shape, "relaxed", pl.relaxed, "min_separation", g.options.MinSeparation)
		}
		logger.Debug("galaxy generated",
			"shape", req.Shape,
			"requested", req.Planets,
			"planets", len(layout.Points),
			"players", req.Players,
			"density", req.Density,
			"seed", req.Seed,
			"radius", radius,
		)
	}

	if g.options.Normalize {
		return layout.Normalized(), nil
	}
	return layout, nil
}

// Generate lays out req with DefaultOptions. It has no side effects.
func Generate(req Request) (*Layout, error) {
	return New(nil).Generate(req)
}

// GenerateCoordinates is the flat function boundary: shape is a name such as
// "CIRCLE" and the result is the ordered list of planet positions.
func GenerateCoordinates(nPlanets, nPlayers int, density float64, shape string, seed int64) ([]core.Point, error) {
	s, err := ParseShape(shape)
	if err != nil {
		return nil, err
	}
	layout, err := Generate(Request{
		Planets: nPlanets,
		Players: nPlayers,
		Density: density,
		Shape:   s,
		Seed:    seed,
	})
	if err != nil {
		return nil, err
	}
	return layout.Points, nil
}
