package primitive

import (
	"math"

	"github.com/draftlab/draftcad/pkg/geom"
)

// Ellipse is an axis-aligned ellipse defined by center and the two
// semi-axis radii.
type Ellipse struct {
	center  geom.Point
	radiusX float64
	radiusY float64
	style   string
}

// NewEllipse creates an ellipse from center and semi-axis radii. Negative
// radii are coerced to their absolute values.
func NewEllipse(center geom.Point, radiusX, radiusY float64) *Ellipse {
	return &Ellipse{
		center:  center,
		radiusX: math.Abs(radiusX),
		radiusY: math.Abs(radiusY),
		style:   DefaultStyle,
	}
}

// NewEllipseFromAxisPoints creates an ellipse from its center and one
// endpoint of each axis.
func NewEllipseFromAxisPoints(center, xAxisEnd, yAxisEnd geom.Point) *Ellipse {
	return NewEllipse(center, center.DistanceTo(xAxisEnd), center.DistanceTo(yAxisEnd))
}

// NewEllipseFromRect creates the ellipse inscribed in the rectangle spanned
// by two opposite corners.
func NewEllipseFromRect(corner1, corner2 geom.Point) *Ellipse {
	return NewEllipse(
		corner1.Midpoint(corner2),
		math.Abs(corner2.X-corner1.X)/2.0,
		math.Abs(corner2.Y-corner1.Y)/2.0,
	)
}

// Center returns the ellipse center.
func (e *Ellipse) Center() geom.Point { return e.center }

// RadiusX returns the semi-axis along X.
func (e *Ellipse) RadiusX() float64 { return e.radiusX }

// RadiusY returns the semi-axis along Y.
func (e *Ellipse) RadiusY() float64 { return e.radiusY }

// PointAt returns the boundary point at parameter angle t in radians.
func (e *Ellipse) PointAt(t float64) geom.Point {
	return geom.Point{
		X: e.center.X + e.radiusX*math.Cos(t),
		Y: e.center.Y + e.radiusY*math.Sin(t),
	}
}

func (e *Ellipse) Kind() Kind            { return KindEllipse }
func (e *Ellipse) Style() string         { return e.style }
func (e *Ellipse) SetStyle(style string) { e.style = style }

func (e *Ellipse) SnapPoints() []SnapPoint {
	return []SnapPoint{
		{X: e.center.X, Y: e.center.Y, Kind: SnapCenter, Source: e},
		{X: e.center.X + e.radiusX, Y: e.center.Y, Kind: SnapQuadrant, Source: e},
		{X: e.center.X, Y: e.center.Y + e.radiusY, Kind: SnapQuadrant, Source: e},
		{X: e.center.X - e.radiusX, Y: e.center.Y, Kind: SnapQuadrant, Source: e},
		{X: e.center.X, Y: e.center.Y - e.radiusY, Kind: SnapQuadrant, Source: e},
	}
}

func (e *Ellipse) ControlPoints() []ControlPoint {
	return []ControlPoint{
		{X: e.center.X, Y: e.center.Y, Label: "center", Index: 0},
		{X: e.center.X + e.radiusX, Y: e.center.Y, Label: "radius-x", Index: 1},
		{X: e.center.X, Y: e.center.Y + e.radiusY, Label: "radius-y", Index: 2},
	}
}

func (e *Ellipse) MoveControlPoint(index int, x, y float64) bool {
	switch index {
	case 0:
		e.center = geom.Point{X: x, Y: y}
	case 1:
		r := math.Abs(x - e.center.X)
		if r < geom.Epsilon {
			return false
		}
		e.radiusX = r
	case 2:
		r := math.Abs(y - e.center.Y)
		if r < geom.Epsilon {
			return false
		}
		e.radiusY = r
	default:
		return false
	}
	return true
}

func (e *Ellipse) BoundingBox() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	bb.Expand(geom.Point{X: e.center.X - e.radiusX, Y: e.center.Y - e.radiusY})
	bb.Expand(geom.Point{X: e.center.X + e.radiusX, Y: e.center.Y + e.radiusY})
	return bb
}

// DistanceTo returns the distance from (x, y) to the ellipse boundary.
//
// There is no closed form. The squared distance to the boundary point at
// parameter t is minimized with a coarse angular scan followed by
// golden-section refinement of the bracketed minimum, which converges
// unconditionally (unlike a fixed-step gradient nudge). Circles and the
// exact center are handled directly.
func (e *Ellipse) DistanceTo(x, y float64) float64 {
	p := geom.Point{X: x, Y: y}
	dx := p.X - e.center.X
	dy := p.Y - e.center.Y

	// Degenerate to circle distance when the axes are equal.
	if math.Abs(e.radiusX-e.radiusY) < geom.Epsilon {
		return math.Abs(math.Hypot(dx, dy) - e.radiusX)
	}

	// The center is closest to the minor-axis vertex.
	if math.Hypot(dx, dy) < geom.Epsilon {
		return math.Min(e.radiusX, e.radiusY)
	}

	distSq := func(t float64) float64 {
		ddx := e.radiusX*math.Cos(t) - dx
		ddy := e.radiusY*math.Sin(t) - dy
		return ddx*ddx + ddy*ddy
	}

	// Coarse scan brackets the global minimum; the squared distance along
	// the parameter is smooth, so the bracket around the best sample
	// contains it.
	const samples = 64
	step := 2 * math.Pi / samples
	bestT := 0.0
	bestD := distSq(0)
	for i := 1; i < samples; i++ {
		t := float64(i) * step
		if d := distSq(t); d < bestD {
			bestD = d
			bestT = t
		}
	}

	// Golden-section refinement within the bracket.
	const phi = 0.6180339887498949
	lo := bestT - step
	hi := bestT + step
	t1 := hi - phi*(hi-lo)
	t2 := lo + phi*(hi-lo)
	d1 := distSq(t1)
	d2 := distSq(t2)
	for i := 0; i < 64 && hi-lo > 1e-13; i++ {
		if d1 < d2 {
			hi = t2
			t2 = t1
			d2 = d1
			t1 = hi - phi*(hi-lo)
			d1 = distSq(t1)
		} else {
			lo = t1
			t1 = t2
			d1 = d2
			t2 = lo + phi*(hi-lo)
			d2 = distSq(t2)
		}
	}

	return math.Sqrt(math.Min(d1, d2))
}
