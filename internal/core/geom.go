// Package core provides the float geometry primitives used by the galaxy
// generator and its front ends. It has no external dependencies.
package core

import "math"

// Point is a position in galaxy space.
type Point struct {
	X, Y float64
}

// P is shorthand for Point{X: x, Y: y}.
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Polar returns the point at radius r and angle theta (radians) around c.
// It uses SinCos and rounds each product, so results do not depend on FMA.
func Polar(c Point, r, theta float64) Point {
	sin, cos := SinCos(theta)
	return Point{
		X: c.X + float64(r*cos),
		Y: c.Y + float64(r*sin),
	}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dist2 returns the squared distance between p and q.
func (p Point) Dist2(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return float64(dx*dx) + float64(dy*dy)
}

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Sqrt(p.Dist2(q))
}

// Norm returns the distance from the origin.
func (p Point) Norm() float64 {
	return math.Sqrt(float64(p.X*p.X) + float64(p.Y*p.Y))
}

// Rect is an axis-aligned box with inclusive edges.
type Rect struct {
	Min, Max Point
}

// Square returns the square of half-extent r centered on the origin.
func Square(r float64) Rect {
	return Rect{Min: P(-r, -r), Max: P(r, r)}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return P((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// Contains returns true if p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Clamp returns the point of r nearest to p.
func (r Rect) Clamp(p Point) Point {
	return P(ClampF(p.X, r.Min.X, r.Max.X), ClampF(p.Y, r.Min.Y, r.Max.Y))
}

// Bounds returns the smallest rectangle containing all points.
// An empty slice yields the zero Rect.
func Bounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Centroid returns the mean of all points.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return P(sx/n, sy/n)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + float64((b-a)*t)
}
