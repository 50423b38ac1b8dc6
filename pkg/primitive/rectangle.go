package primitive

import (
	"math"

	"github.com/draftlab/draftcad/pkg/geom"
)

// Rectangle is an axis-aligned rectangle defined by two opposite corners.
// Which corner is "first" does not matter; the edges derive from the
// min/max of the two corner coordinates. CornerRadius and ChamferSize are
// cosmetic, mutually exclusive, and ignored by the geometry math.
type Rectangle struct {
	corner1      geom.Point
	corner2      geom.Point
	cornerRadius float64
	chamferSize  float64
	style        string
}

// NewRectangle creates a rectangle from two opposite corners.
func NewRectangle(corner1, corner2 geom.Point) *Rectangle {
	return &Rectangle{corner1: corner1, corner2: corner2, style: DefaultStyle}
}

// NewRectangleFromSize creates a rectangle from an origin corner and a size.
func NewRectangleFromSize(origin geom.Point, width, height float64) *Rectangle {
	return NewRectangle(origin, geom.Point{X: origin.X + width, Y: origin.Y + height})
}

// NewRectangleFromCenter creates a rectangle centered on a point.
func NewRectangleFromCenter(center geom.Point, width, height float64) *Rectangle {
	half := geom.Point{X: width / 2.0, Y: height / 2.0}
	return NewRectangle(center.Sub(half), center.Add(half))
}

// Corner1 returns the first defining corner as constructed.
func (r *Rectangle) Corner1() geom.Point { return r.corner1 }

// Corner2 returns the second defining corner as constructed.
func (r *Rectangle) Corner2() geom.Point { return r.corner2 }

// Left returns the minimum X edge.
func (r *Rectangle) Left() float64 { return math.Min(r.corner1.X, r.corner2.X) }

// Right returns the maximum X edge.
func (r *Rectangle) Right() float64 { return math.Max(r.corner1.X, r.corner2.X) }

// Bottom returns the minimum Y edge.
func (r *Rectangle) Bottom() float64 { return math.Min(r.corner1.Y, r.corner2.Y) }

// Top returns the maximum Y edge.
func (r *Rectangle) Top() float64 { return math.Max(r.corner1.Y, r.corner2.Y) }

// Width returns the rectangle width.
func (r *Rectangle) Width() float64 { return r.Right() - r.Left() }

// Height returns the rectangle height.
func (r *Rectangle) Height() float64 { return r.Top() - r.Bottom() }

// Center returns the rectangle center.
func (r *Rectangle) Center() geom.Point { return r.corner1.Midpoint(r.corner2) }

// Corners returns the four corners in counter-clockwise order starting at
// (Left, Bottom).
func (r *Rectangle) Corners() [4]geom.Point {
	return [4]geom.Point{
		{X: r.Left(), Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Left(), Y: r.Top()},
	}
}

// CornerRadius returns the cosmetic corner rounding radius.
func (r *Rectangle) CornerRadius() float64 { return r.cornerRadius }

// ChamferSize returns the cosmetic chamfer size.
func (r *Rectangle) ChamferSize() float64 { return r.chamferSize }

// SetCornerRadius sets the cosmetic corner radius, clearing any chamfer.
// Negative input is treated as zero.
func (r *Rectangle) SetCornerRadius(radius float64) {
	if radius < 0 {
		radius = 0
	}
	r.cornerRadius = radius
	if radius > 0 {
		r.chamferSize = 0
	}
}

// SetChamferSize sets the cosmetic chamfer size, clearing any corner radius.
// Negative input is treated as zero.
func (r *Rectangle) SetChamferSize(size float64) {
	if size < 0 {
		size = 0
	}
	r.chamferSize = size
	if size > 0 {
		r.cornerRadius = 0
	}
}

func (r *Rectangle) Kind() Kind            { return KindRectangle }
func (r *Rectangle) Style() string         { return r.style }
func (r *Rectangle) SetStyle(style string) { r.style = style }

func (r *Rectangle) SnapPoints() []SnapPoint {
	center := r.Center()
	pts := []SnapPoint{
		{X: center.X, Y: center.Y, Kind: SnapCenter, Source: r},
	}
	corners := r.Corners()
	for _, c := range corners {
		pts = append(pts, SnapPoint{X: c.X, Y: c.Y, Kind: SnapEndpoint, Source: r})
	}
	for i := range corners {
		mid := corners[i].Midpoint(corners[(i+1)%4])
		pts = append(pts, SnapPoint{X: mid.X, Y: mid.Y, Kind: SnapMidpoint, Source: r})
	}
	return pts
}

func (r *Rectangle) ControlPoints() []ControlPoint {
	corners := r.Corners()
	cps := make([]ControlPoint, 0, 5)
	for i, c := range corners {
		cps = append(cps, ControlPoint{X: c.X, Y: c.Y, Label: "corner", Index: i})
	}
	center := r.Center()
	cps = append(cps, ControlPoint{X: center.X, Y: center.Y, Label: "center", Index: 4})
	return cps
}

// MoveControlPoint drags a corner while keeping the opposite corner fixed,
// or translates the whole rectangle via the center handle.
func (r *Rectangle) MoveControlPoint(index int, x, y float64) bool {
	p := geom.Point{X: x, Y: y}
	switch index {
	case 0, 1, 2, 3:
		opposite := r.Corners()[(index+2)%4]
		if math.Abs(p.X-opposite.X) < geom.Epsilon || math.Abs(p.Y-opposite.Y) < geom.Epsilon {
			return false // zero-width or zero-height result
		}
		r.corner1 = p
		r.corner2 = opposite
	case 4:
		delta := p.Sub(r.Center())
		r.corner1 = r.corner1.Add(delta)
		r.corner2 = r.corner2.Add(delta)
	default:
		return false
	}
	return true
}

func (r *Rectangle) BoundingBox() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	bb.Expand(r.corner1)
	bb.Expand(r.corner2)
	return bb
}

// DistanceTo returns the distance to the rectangle outline (the nearest of
// the four edges), not to the enclosed area.
func (r *Rectangle) DistanceTo(x, y float64) float64 {
	p := geom.Point{X: x, Y: y}
	corners := r.Corners()
	best := math.Inf(1)
	for i := range corners {
		if d := pointSegmentDistance(p, corners[i], corners[(i+1)%4]); d < best {
			best = d
		}
	}
	return best
}
