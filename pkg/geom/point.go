// Package geom provides the basic 2D geometry value types shared by the
// DraftCAD kernel: points, bounding boxes, and angle arithmetic.
// Coordinates live in scene space, with Y increasing upward.
package geom

import "math"

// Epsilon is the tolerance used for geometric comparisons. Coordinates
// frequently come out of trigonometric construction, so equality is
// tolerance-based rather than bit-exact.
const Epsilon = 1e-9

// Point represents a 2D coordinate in scene space.
type Point struct {
	X float64
	Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the vector length of p.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2.0, Y: (p.Y + q.Y) / 2.0}
}

// AngleTo returns the angle of the vector from p to q, in radians.
func (p Point) AngleTo(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// Equals reports whether p and q coincide within tol.
func (p Point) Equals(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}
