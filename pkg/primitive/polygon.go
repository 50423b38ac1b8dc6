package primitive

import (
	"math"

	"github.com/draftlab/draftcad/pkg/geom"
)

// PolygonVariant selects how a regular polygon's radius parameter is
// interpreted.
type PolygonVariant int

const (
	// Inscribed means the radius is the center-to-vertex distance.
	Inscribed PolygonVariant = iota
	// Circumscribed means the radius is the apothem: the polygon is drawn
	// around a circle of that radius, so vertices sit at radius/cos(π/n).
	Circumscribed
)

func (v PolygonVariant) String() string {
	switch v {
	case Inscribed:
		return "inscribed"
	case Circumscribed:
		return "circumscribed"
	default:
		return "unknown"
	}
}

// ParsePolygonVariant converts a record tag to a PolygonVariant. Unknown
// tags fall back to Inscribed, the record default.
func ParsePolygonVariant(s string) PolygonVariant {
	if s == "circumscribed" {
		return Circumscribed
	}
	return Inscribed
}

// RegularPolygon is an equilateral polygon defined by center, radius, side
// count, variant and rotation.
type RegularPolygon struct {
	center   geom.Point
	radius   float64
	numSides int
	variant  PolygonVariant
	rotation float64 // degrees
	style    string
}

// NewRegularPolygon creates a regular polygon. A negative radius is coerced
// to its absolute value and numSides is floored at 3.
func NewRegularPolygon(center geom.Point, radius float64, numSides int, variant PolygonVariant, rotationDeg float64) *RegularPolygon {
	if numSides < 3 {
		numSides = 3
	}
	return &RegularPolygon{
		center:   center,
		radius:   math.Abs(radius),
		numSides: numSides,
		variant:  variant,
		rotation: rotationDeg,
		style:    DefaultStyle,
	}
}

// Center returns the polygon center.
func (rp *RegularPolygon) Center() geom.Point { return rp.center }

// Radius returns the stored radius parameter (vertex distance for
// inscribed, apothem for circumscribed).
func (rp *RegularPolygon) Radius() float64 { return rp.radius }

// NumSides returns the side count.
func (rp *RegularPolygon) NumSides() int { return rp.numSides }

// Variant returns the radius interpretation.
func (rp *RegularPolygon) Variant() PolygonVariant { return rp.variant }

// Rotation returns the rotation in degrees.
func (rp *RegularPolygon) Rotation() float64 { return rp.rotation }

// effectiveRadius is the center-to-vertex distance after undoing the
// circumscribed apothem interpretation.
func (rp *RegularPolygon) effectiveRadius() float64 {
	if rp.variant == Circumscribed {
		return rp.radius / math.Cos(math.Pi/float64(rp.numSides))
	}
	return rp.radius
}

// Vertices returns the polygon vertices, evenly spaced starting at the
// rotation angle.
func (rp *RegularPolygon) Vertices() []geom.Point {
	r := rp.effectiveRadius()
	verts := make([]geom.Point, rp.numSides)
	for i := 0; i < rp.numSides; i++ {
		angle := geom.DegToRad(rp.rotation) + 2*math.Pi*float64(i)/float64(rp.numSides)
		verts[i] = geom.Point{
			X: rp.center.X + r*math.Cos(angle),
			Y: rp.center.Y + r*math.Sin(angle),
		}
	}
	return verts
}

func (rp *RegularPolygon) Kind() Kind            { return KindPolygon }
func (rp *RegularPolygon) Style() string         { return rp.style }
func (rp *RegularPolygon) SetStyle(style string) { rp.style = style }

func (rp *RegularPolygon) SnapPoints() []SnapPoint {
	pts := []SnapPoint{
		{X: rp.center.X, Y: rp.center.Y, Kind: SnapCenter, Source: rp},
	}
	verts := rp.Vertices()
	for _, v := range verts {
		pts = append(pts, SnapPoint{X: v.X, Y: v.Y, Kind: SnapEndpoint, Source: rp})
	}
	for i := range verts {
		mid := verts[i].Midpoint(verts[(i+1)%len(verts)])
		pts = append(pts, SnapPoint{X: mid.X, Y: mid.Y, Kind: SnapMidpoint, Source: rp})
	}
	return pts
}

func (rp *RegularPolygon) ControlPoints() []ControlPoint {
	v0 := rp.Vertices()[0]
	return []ControlPoint{
		{X: rp.center.X, Y: rp.center.Y, Label: "center", Index: 0},
		{X: v0.X, Y: v0.Y, Label: "radius", Index: 1},
	}
}

// MoveControlPoint edits the polygon. Dragging the radius handle re-derives
// both radius and rotation from the dragged point, undoing the circumscribed
// apothem correction before storing the radius.
func (rp *RegularPolygon) MoveControlPoint(index int, x, y float64) bool {
	p := geom.Point{X: x, Y: y}
	switch index {
	case 0:
		rp.center = p
	case 1:
		dist := rp.center.DistanceTo(p)
		if dist < geom.Epsilon {
			return false
		}
		rp.rotation = geom.RadToDeg(rp.center.AngleTo(p))
		if rp.variant == Circumscribed {
			dist *= math.Cos(math.Pi / float64(rp.numSides))
		}
		rp.radius = dist
	default:
		return false
	}
	return true
}

func (rp *RegularPolygon) BoundingBox() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	for _, v := range rp.Vertices() {
		bb.Expand(v)
	}
	return bb
}

// DistanceTo returns the distance from (x, y) to the polygon outline.
func (rp *RegularPolygon) DistanceTo(x, y float64) float64 {
	p := geom.Point{X: x, Y: y}
	verts := rp.Vertices()
	best := math.Inf(1)
	for i := range verts {
		if d := pointSegmentDistance(p, verts[i], verts[(i+1)%len(verts)]); d < best {
			best = d
		}
	}
	return best
}
