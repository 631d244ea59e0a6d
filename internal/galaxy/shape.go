package galaxy

import (
	"fmt"
	"strings"
)

// Shape selects the spatial pattern planets are laid out in.
// The numeric values are stable: RANDOM is 0 through GRID at 5.
type Shape int

const (
	ShapeRandom Shape = iota
	ShapeSpiral
	ShapeCircle
	ShapeRing
	ShapeCluster
	ShapeGrid

	shapeCount
)

var shapeNames = [shapeCount]string{
	ShapeRandom:  "RANDOM",
	ShapeSpiral:  "SPIRAL",
	ShapeCircle:  "CIRCLE",
	ShapeRing:    "RING",
	ShapeCluster: "CLUSTER",
	ShapeGrid:    "GRID",
}

// String returns the canonical upper-case name, e.g. "SPIRAL".
func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Valid reports whether s is one of the enumerated shapes.
func (s Shape) Valid() bool {
	return s >= 0 && s < shapeCount
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, invalidArg("shape", "unknown shape %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseShape converts a shape name to a Shape. Matching is case-insensitive.
func ParseShape(name string) (Shape, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == upper {
			return Shape(i), nil
		}
	}
	return 0, invalidArg("shape", "unknown shape %q (valid: %s)", name, strings.Join(shapeNames[:], ", "))
}

// Shapes returns every shape in enum order.
func Shapes() []Shape {
	out := make([]Shape, 0, shapeCount)
	for s := Shape(0); s < shapeCount; s++ {
		out = append(out, s)
	}
	return out
}

// ShapeInfo describes a shape for listings.
type ShapeInfo struct {
	Shape   Shape
	Title   string
	Density string // how the density argument changes the layout
}

// Info returns the description of s.
func (s Shape) Info() ShapeInfo {
	if !s.Valid() {
		return ShapeInfo{Shape: s, Title: s.String()}
	}
	return strategies[s].info
}
