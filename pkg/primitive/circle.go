package primitive

import (
	"math"

	"github.com/draftlab/draftcad/pkg/geom"
)

// collinearEps bounds the circumcircle determinant below which three points
// are treated as collinear and construction fails.
const collinearEps = 1e-9

// Circle is a full circle defined by center and radius.
type Circle struct {
	center geom.Point
	radius float64
	style  string
}

// NewCircle creates a circle from center and radius. A non-positive radius
// is coerced to its absolute value, reproducing the leniency of older scene
// files; callers relying on the sign flip should be flagged.
func NewCircle(center geom.Point, radius float64) *Circle {
	return &Circle{center: center, radius: math.Abs(radius), style: DefaultStyle}
}

// NewCircleFromDiameter creates a circle from center and diameter.
func NewCircleFromDiameter(center geom.Point, diameter float64) *Circle {
	return NewCircle(center, diameter/2.0)
}

// NewCircleFromTwoPoints creates the circle whose diameter is the segment
// p1-p2.
func NewCircleFromTwoPoints(p1, p2 geom.Point) *Circle {
	return NewCircle(p1.Midpoint(p2), p1.DistanceTo(p2)/2.0)
}

// NewCircleFromThreePoints creates the circumcircle through three points.
// It returns ok=false when the points are collinear; no infinite-radius
// circle is ever produced.
func NewCircleFromThreePoints(p1, p2, p3 geom.Point) (*Circle, bool) {
	center, radius, ok := circumcircle(p1, p2, p3)
	if !ok {
		return nil, false
	}
	return NewCircle(center, radius), true
}

// circumcircle solves the 2x2 linear system for the circumcenter of three
// points. The determinant D = 2*(x1(y2-y3)+x2(y3-y1)+x3(y1-y2)) vanishes for
// collinear input, in which case ok=false.
func circumcircle(p1, p2, p3 geom.Point) (center geom.Point, radius float64, ok bool) {
	d := 2.0 * (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y))
	if math.Abs(d) < collinearEps {
		return geom.Point{}, 0, false
	}

	sq1 := p1.X*p1.X + p1.Y*p1.Y
	sq2 := p2.X*p2.X + p2.Y*p2.Y
	sq3 := p3.X*p3.X + p3.Y*p3.Y

	center = geom.Point{
		X: (sq1*(p2.Y-p3.Y) + sq2*(p3.Y-p1.Y) + sq3*(p1.Y-p2.Y)) / d,
		Y: (sq1*(p3.X-p2.X) + sq2*(p1.X-p3.X) + sq3*(p2.X-p1.X)) / d,
	}
	return center, center.DistanceTo(p1), true
}

// Center returns the circle center.
func (c *Circle) Center() geom.Point { return c.center }

// Radius returns the circle radius.
func (c *Circle) Radius() float64 { return c.radius }

func (c *Circle) Kind() Kind            { return KindCircle }
func (c *Circle) Style() string         { return c.style }
func (c *Circle) SetStyle(style string) { c.style = style }

// quadrantPoints returns the points at 0°, 90°, 180° and 270° on a circle.
func quadrantPoints(center geom.Point, radius float64) [4]geom.Point {
	return [4]geom.Point{
		{X: center.X + radius, Y: center.Y},
		{X: center.X, Y: center.Y + radius},
		{X: center.X - radius, Y: center.Y},
		{X: center.X, Y: center.Y - radius},
	}
}

func (c *Circle) SnapPoints() []SnapPoint {
	pts := []SnapPoint{
		{X: c.center.X, Y: c.center.Y, Kind: SnapCenter, Source: c},
	}
	for _, q := range quadrantPoints(c.center, c.radius) {
		pts = append(pts, SnapPoint{X: q.X, Y: q.Y, Kind: SnapQuadrant, Source: c})
	}
	return pts
}

func (c *Circle) ControlPoints() []ControlPoint {
	return []ControlPoint{
		{X: c.center.X, Y: c.center.Y, Label: "center", Index: 0},
		{X: c.center.X + c.radius, Y: c.center.Y, Label: "radius", Index: 1},
	}
}

func (c *Circle) MoveControlPoint(index int, x, y float64) bool {
	p := geom.Point{X: x, Y: y}
	switch index {
	case 0:
		c.center = p
	case 1:
		r := c.center.DistanceTo(p)
		if r < geom.Epsilon {
			return false
		}
		c.radius = r
	default:
		return false
	}
	return true
}

func (c *Circle) BoundingBox() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	bb.Expand(geom.Point{X: c.center.X - c.radius, Y: c.center.Y - c.radius})
	bb.Expand(geom.Point{X: c.center.X + c.radius, Y: c.center.Y + c.radius})
	return bb
}

// DistanceTo returns the distance to the circle boundary, never to the
// interior disk: |dist(center) - radius|.
func (c *Circle) DistanceTo(x, y float64) float64 {
	return math.Abs(c.center.DistanceTo(geom.Point{X: x, Y: y}) - c.radius)
}
