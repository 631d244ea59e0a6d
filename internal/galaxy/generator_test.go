package galaxy

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galaxy-gen/internal/core"
)

func mustGenerate(t *testing.T, req Request) *Layout {
	t.Helper()
	layout, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate(%+v) error: %v", req, err)
	}
	return layout
}

func TestGenerateExample(t *testing.T) {
	req := Request{Planets: 200, Players: 4, Density: 0.5, Shape: ShapeCircle, Seed: 42}
	first := mustGenerate(t, req)
	second := mustGenerate(t, req)

	if first.Len() != 200 {
		t.Fatalf("Len() = %d, expected 200", first.Len())
	}
	if !reflect.DeepEqual(first.Points, second.Points) {
		t.Error("repeated calls with seed 42 should be bit-identical")
	}

	seen := make(map[core.Point]bool)
	for i, p := range first.Points {
		if seen[p] {
			t.Errorf("point %d %v is a duplicate", i, p)
		}
		seen[p] = true
		if !first.Canvas.Contains(p) {
			t.Errorf("point %d %v outside canvas %v", i, p, first.Canvas)
		}
	}
}

func TestGenerateAllShapes(t *testing.T) {
	densities := []float64{0, 0.25, 0.5, 1}
	seeds := []int64{0, 1, 42, -7}

	for _, shape := range Shapes() {
		t.Run(shape.String(), func(t *testing.T) {
			for _, density := range densities {
				for _, seed := range seeds {
					req := Request{Planets: 150, Players: 5, Density: density, Shape: shape, Seed: seed}
					layout := mustGenerate(t, req)

					if layout.Len() != req.Planets {
						t.Errorf("density=%v seed=%d: Len() = %d, expected %d", density, seed, layout.Len(), req.Planets)
					}
					if layout.Shape != shape || layout.Seed != seed {
						t.Errorf("layout echoes shape=%v seed=%d", layout.Shape, layout.Seed)
					}

					seen := make(map[core.Point]bool, layout.Len())
					for _, p := range layout.Points {
						if seen[p] {
							t.Fatalf("density=%v seed=%d: duplicate point %v", density, seed, p)
						}
						seen[p] = true
						if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
							t.Fatalf("density=%v seed=%d: non-finite point %v", density, seed, p)
						}
						if !layout.Canvas.Contains(p) {
							t.Fatalf("density=%v seed=%d: point %v outside canvas %v", density, seed, p, layout.Canvas)
						}
					}
				}
			}
		})
	}
}

func TestGenerateDeterminism(t *testing.T) {
	for _, shape := range Shapes() {
		t.Run(shape.String(), func(t *testing.T) {
			req := Request{Planets: 80, Players: 3, Density: 0.7, Shape: shape, Seed: 1234}
			a := mustGenerate(t, req)
			b := mustGenerate(t, req)
			if !reflect.DeepEqual(a, b) {
				t.Error("identical requests should give identical layouts")
			}

			if shape == ShapeGrid {
				return
			}
			req.Seed++
			c := mustGenerate(t, req)
			if reflect.DeepEqual(a.Points, c.Points) {
				t.Error("different seeds should give different points")
			}
		})
	}
}

func TestGenerateSinglePlanet(t *testing.T) {
	for _, shape := range Shapes() {
		t.Run(shape.String(), func(t *testing.T) {
			layout := mustGenerate(t, Request{Planets: 1, Players: 1, Density: 0.5, Shape: shape, Seed: 9})
			if layout.Len() != 1 {
				t.Fatalf("Len() = %d, expected 1", layout.Len())
			}
			if !reflect.DeepEqual(layout.Homes, []int{0}) {
				t.Errorf("Homes = %v, expected [0]", layout.Homes)
			}
		})
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		arg  string
	}{
		{"zero planets", Request{Planets: 0, Players: 1, Density: 0.5}, "n_planets"},
		{"negative planets", Request{Planets: -3, Players: 1, Density: 0.5}, "n_planets"},
		{"zero players", Request{Planets: 10, Players: 0, Density: 0.5}, "n_players"},
		{"more players than planets", Request{Planets: 3, Players: 4, Density: 0.5}, "n_players"},
		{"density below range", Request{Planets: 10, Players: 2, Density: -0.01}, "density"},
		{"density above range", Request{Planets: 10, Players: 2, Density: 1.5}, "density"},
		{"density NaN", Request{Planets: 10, Players: 2, Density: math.NaN()}, "density"},
		{"shape out of enum", Request{Planets: 10, Players: 2, Density: 0.5, Shape: Shape(6)}, "shape"},
		{"negative shape", Request{Planets: 10, Players: 2, Density: 0.5, Shape: Shape(-1)}, "shape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := Generate(tt.req)
			if err == nil {
				t.Fatal("expected an error")
			}
			if layout != nil {
				t.Error("no layout should be returned on failure")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("errors.Is(err, ErrInvalidArgument) = false for %v", err)
			}
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("expected *ArgumentError, got %T", err)
			}
			if argErr.Arg != tt.arg {
				t.Errorf("Arg = %q, expected %q", argErr.Arg, tt.arg)
			}
		})
	}
}

func TestGenerateDensityBoundaries(t *testing.T) {
	for _, density := range []float64{0, 1} {
		if _, err := Generate(Request{Planets: 20, Players: 2, Density: density, Shape: ShapeRandom}); err != nil {
			t.Errorf("density %v should be accepted: %v", density, err)
		}
	}
}

func TestGenerateDensityShrinksGalaxy(t *testing.T) {
	for _, shape := range Shapes() {
		t.Run(shape.String(), func(t *testing.T) {
			sparse := mustGenerate(t, Request{Planets: 100, Players: 4, Density: 0.1, Shape: shape, Seed: 5})
			dense := mustGenerate(t, Request{Planets: 100, Players: 4, Density: 0.9, Shape: shape, Seed: 5})
			if dense.Radius() >= sparse.Radius() {
				t.Errorf("dense radius %v should be below sparse radius %v", dense.Radius(), sparse.Radius())
			}
		})
	}
}

func TestCircleEnvelope(t *testing.T) {
	var lo, hi float64 = math.Inf(1), 0
	for seed := int64(0); seed < 10; seed++ {
		layout := mustGenerate(t, Request{Planets: 200, Players: 4, Density: 0.5, Shape: ShapeCircle, Seed: seed})
		c := core.Centroid(layout.Points)
		var far float64
		for _, p := range layout.Points {
			far = math.Max(far, p.Dist(c))
		}
		if far > layout.Radius()*1.1 {
			t.Errorf("seed %d: max centroid distance %v exceeds radius %v", seed, far, layout.Radius())
		}
		lo, hi = math.Min(lo, far), math.Max(hi, far)
	}
	if hi/lo > 1.15 {
		t.Errorf("envelope varies too much across seeds: min %v, max %v", lo, hi)
	}
}

func TestGridLattice(t *testing.T) {
	layout := mustGenerate(t, Request{Planets: 100, Players: 4, Density: 0.5, Shape: ShapeGrid, Seed: 3})
	if layout.Len() != 100 {
		t.Fatalf("Len() = %d, expected 100", layout.Len())
	}

	want := gridSpacing(0.5)
	for i, p := range layout.Points {
		nearest := math.Inf(1)
		for j, q := range layout.Points {
			if i != j {
				nearest = math.Min(nearest, p.Dist(q))
			}
		}
		if math.Abs(nearest-want) > 1e-9 {
			t.Fatalf("point %d nearest neighbour at %v, expected %v", i, nearest, want)
		}
	}

	c := core.Centroid(layout.Points)
	if math.Abs(c.X) > 1e-9 || math.Abs(c.Y) > 1e-9 {
		t.Errorf("full lattice should be centered on the origin, centroid %v", c)
	}
}

func TestGridRounding(t *testing.T) {
	tests := []struct {
		rounding GridRounding
		planets  int
		players  int
		want     int
	}{
		{GridExact, 10, 2, 10},
		{GridExact, 100, 2, 100},
		{GridFloor, 10, 2, 9},
		{GridFloor, 100, 2, 100},
		{GridFloor, 5, 5, 9},
		{GridCeil, 10, 2, 16},
		{GridCeil, 16, 2, 16},
	}

	for _, tt := range tests {
		t.Run(string(tt.rounding), func(t *testing.T) {
			gen := New(&Options{GridRounding: tt.rounding})
			layout, err := gen.Generate(Request{Planets: tt.planets, Players: tt.players, Density: 0.5, Shape: ShapeGrid})
			if err != nil {
				t.Fatalf("Generate error: %v", err)
			}
			if layout.Len() != tt.want {
				t.Errorf("planets=%d: Len() = %d, expected %d", tt.planets, layout.Len(), tt.want)
			}
			if len(layout.Homes) != tt.players {
				t.Errorf("len(Homes) = %d, expected %d", len(layout.Homes), tt.players)
			}
		})
	}
}

func TestMinSeparation(t *testing.T) {
	for _, shape := range []Shape{ShapeRandom, ShapeRing} {
		t.Run(shape.String(), func(t *testing.T) {
			layout := mustGenerate(t, Request{Planets: 200, Players: 4, Density: 0.5, Shape: shape, Seed: 11})
			for i := range layout.Points {
				for j := i + 1; j < len(layout.Points); j++ {
					if d := layout.Points[i].Dist(layout.Points[j]); d < DefaultMinSeparation {
						t.Fatalf("points %d and %d are %v apart", i, j, d)
					}
				}
			}
		})
	}
}

func TestHomes(t *testing.T) {
	for _, players := range []int{1, 2, 4, 12} {
		layout := mustGenerate(t, Request{Planets: 60, Players: players, Density: 0.5, Shape: ShapeSpiral, Seed: 77})
		if len(layout.Homes) != players {
			t.Fatalf("players=%d: len(Homes) = %d", players, len(layout.Homes))
		}
		seen := make(map[int]bool)
		for _, h := range layout.Homes {
			if h < 0 || h >= layout.Len() {
				t.Errorf("home index %d out of range", h)
			}
			if seen[h] {
				t.Errorf("home index %d repeated", h)
			}
			seen[h] = true
		}
	}
}

func TestHomesFarthestPoint(t *testing.T) {
	points := []core.Point{core.P(0, 0), core.P(1, 0), core.P(10, 0), core.P(5, 0)}
	homes := pickHomes(points, 2, 3)
	first := points[homes[0]]

	var far float64
	for _, p := range points {
		far = math.Max(far, p.Dist(first))
	}
	if got := points[homes[1]].Dist(first); got != far {
		t.Errorf("second home at distance %v, expected the farthest %v", got, far)
	}
}

func TestNames(t *testing.T) {
	catalogue := []string{"Vega", "Altair", "Deneb", "Vega", "  "}
	gen := New(&Options{MinSeparation: DefaultMinSeparation, Names: catalogue})
	layout, err := gen.Generate(Request{Planets: 7, Players: 2, Density: 0.5, Shape: ShapeRandom, Seed: 1})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(layout.Names) != layout.Len() {
		t.Fatalf("len(Names) = %d, expected %d", len(layout.Names), layout.Len())
	}

	seen := make(map[string]bool)
	var second, third int
	for _, name := range layout.Names {
		if seen[name] {
			t.Errorf("name %q repeated", name)
		}
		seen[name] = true
		switch {
		case strings.HasSuffix(name, " 2"):
			second++
		case strings.HasSuffix(name, " 3"):
			third++
		}
	}
	if second != 3 || third != 1 {
		t.Errorf("suffix counts = (%d, %d), expected (3, 1): %v", second, third, layout.Names)
	}

	if plain := mustGenerate(t, Request{Planets: 7, Players: 2, Density: 0.5, Seed: 1}); plain.Names != nil {
		t.Errorf("Names should be nil without a catalogue, got %v", plain.Names)
	}
}

func TestNamesSuffixClash(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4} {
		names := pickNames([]string{"Vega", "Vega 2", "Vega 3"}, 12, seed)
		if len(names) != 12 {
			t.Fatalf("seed %d: len = %d, expected 12", seed, len(names))
		}
		seen := make(map[string]bool, len(names))
		for _, name := range names {
			if seen[name] {
				t.Errorf("seed %d: name %q repeated in %v", seed, name, names)
			}
			seen[name] = true
		}
	}
}

func TestNamesDoNotShiftPoints(t *testing.T) {
	req := Request{Planets: 50, Players: 3, Density: 0.4, Shape: ShapeCluster, Seed: 8}
	named, err := New(&Options{MinSeparation: DefaultMinSeparation, Names: []string{"A", "B"}}).Generate(req)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	plain := mustGenerate(t, req)
	if !reflect.DeepEqual(named.Points, plain.Points) || !reflect.DeepEqual(named.Homes, plain.Homes) {
		t.Error("a name catalogue should not change points or homes")
	}
}

func TestNormalize(t *testing.T) {
	req := Request{Planets: 120, Players: 4, Density: 0.3, Shape: ShapeCluster, Seed: 21}
	raw := mustGenerate(t, req)

	opts := DefaultOptions()
	opts.Normalize = true
	norm, err := New(opts).Generate(req)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if norm.Canvas != core.Square(1) {
		t.Errorf("Canvas = %v, expected unit square", norm.Canvas)
	}
	if !reflect.DeepEqual(norm, raw.Normalized()) {
		t.Error("Options.Normalize should match Layout.Normalized")
	}
	for i, p := range norm.Points {
		if !norm.Canvas.Contains(p) {
			t.Fatalf("point %d %v outside unit canvas", i, p)
		}
		want := raw.Points[i].Scale(1 / raw.Radius())
		if math.Abs(p.X-want.X) > 1e-12 || math.Abs(p.Y-want.Y) > 1e-12 {
			t.Fatalf("point %d = %v, expected %v", i, p, want)
		}
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		arg  string
	}{
		{"negative separation", Options{MinSeparation: -1}, "min_separation"},
		{"NaN separation", Options{MinSeparation: math.NaN()}, "min_separation"},
		{"negative attempts", Options{MaxAttempts: -5}, "max_attempts"},
		{"bad rounding", Options{GridRounding: "round"}, "grid_rounding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&tt.opts).Generate(Request{Planets: 4, Players: 1, Density: 0.5})
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("expected *ArgumentError, got %v", err)
			}
			if argErr.Arg != tt.arg {
				t.Errorf("Arg = %q, expected %q", argErr.Arg, tt.arg)
			}
		})
	}
}

func TestGeneratorLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	opts := DefaultOptions()
	opts.Logger = logger
	if _, err := New(opts).Generate(Request{Planets: 30, Players: 2, Density: 0.5, Shape: ShapeRing, Seed: 4}); err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !strings.Contains(buf.String(), "galaxy generated") {
		t.Errorf("expected a debug summary, got %q", buf.String())
	}

	// A huge separation cannot be met, so every planet after the first is relaxed.
	buf.Reset()
	opts.MinSeparation = 1e6
	opts.MaxAttempts = 2
	if _, err := New(opts).Generate(Request{Planets: 5, Players: 2, Density: 0.5, Shape: ShapeRandom, Seed: 4}); err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !strings.Contains(buf.String(), "minimum separation") {
		t.Errorf("expected a relaxation warning, got %q", buf.String())
	}
}

func TestGenerateConcurrent(t *testing.T) {
	gen := New(nil)
	req := Request{Planets: 100, Players: 4, Density: 0.6, Shape: ShapeSpiral, Seed: 99}
	want, err := gen.Generate(req)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := gen.Generate(req)
			if err != nil {
				errs <- err.Error()
				return
			}
			if !reflect.DeepEqual(got, want) {
				errs <- "concurrent result differs"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}

func TestGenerateCoordinates(t *testing.T) {
	points, err := GenerateCoordinates(200, 4, 0.5, "circle", 42)
	if err != nil {
		t.Fatalf("GenerateCoordinates error: %v", err)
	}
	layout := mustGenerate(t, Request{Planets: 200, Players: 4, Density: 0.5, Shape: ShapeCircle, Seed: 42})
	if !reflect.DeepEqual(points, layout.Points) {
		t.Error("GenerateCoordinates should match Generate")
	}

	if _, err := GenerateCoordinates(10, 2, 0.5, "HEXAGON", 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown shape should be InvalidArgument, got %v", err)
	}
}
