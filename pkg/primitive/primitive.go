// Package primitive implements the DraftCAD 2D primitive kernel: seven
// parametric primitive variants (segment, circle, arc, rectangle, ellipse,
// regular polygon, spline) behind one capability contract covering
// serialization records, snap points, editable control points, bounding
// boxes, and boundary-distance queries.
//
// All distance queries measure to the primitive's boundary, never to an
// interior area. All angles in the public API are degrees; positive spans
// sweep counter-clockwise.
package primitive

import (
	"math"

	"github.com/draftlab/draftcad/pkg/geom"
)

// DefaultStyle is the style tag applied when a record omits one. The tag is
// cosmetic and passed through unmodified.
const DefaultStyle = "solid-primary"

// Kind identifies a primitive variant.
type Kind int

const (
	KindSegment Kind = iota
	KindCircle
	KindArc
	KindRectangle
	KindEllipse
	KindPolygon
	KindSpline
)

func (k Kind) String() string {
	switch k {
	case KindSegment:
		return "line"
	case KindCircle:
		return "circle"
	case KindArc:
		return "arc"
	case KindRectangle:
		return "rectangle"
	case KindEllipse:
		return "ellipse"
	case KindPolygon:
		return "polygon"
	case KindSpline:
		return "spline"
	default:
		return "unknown"
	}
}

// SnapKind classifies the anchor a primitive offers for precise targeting.
type SnapKind int

const (
	SnapEndpoint SnapKind = iota
	SnapMidpoint
	SnapCenter
	SnapQuadrant
	SnapNode
)

func (k SnapKind) String() string {
	switch k {
	case SnapEndpoint:
		return "endpoint"
	case SnapMidpoint:
		return "midpoint"
	case SnapCenter:
		return "center"
	case SnapQuadrant:
		return "quadrant"
	case SnapNode:
		return "node"
	default:
		return "unknown"
	}
}

// SnapPoint is a discrete anchor emitted by a primitive. Source is a
// non-owning reference to the primitive that produced it.
type SnapPoint struct {
	X      float64
	Y      float64
	Kind   SnapKind
	Source Primitive
}

// ControlPoint is an editable handle. Index identifies which semantic part
// of the primitive the handle edits and is the value accepted by
// MoveControlPoint.
type ControlPoint struct {
	X     float64
	Y     float64
	Label string
	Index int
}

// Primitive is the capability contract shared by all variants.
type Primitive interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Style returns the cosmetic style tag.
	Style() string

	// SetStyle replaces the cosmetic style tag.
	SetStyle(style string)

	// SnapPoints returns the finite set of snap anchors this primitive offers.
	SnapPoints() []SnapPoint

	// ControlPoints returns the editable handles.
	ControlPoints() []ControlPoint

	// MoveControlPoint moves the handle with the given index. It returns
	// false, leaving the primitive unchanged, when the index is invalid or
	// the move would produce a degenerate primitive.
	MoveControlPoint(index int, x, y float64) bool

	// BoundingBox returns the axis-aligned bounds of the primitive.
	BoundingBox() geom.BoundingBox

	// DistanceTo returns the distance from (x, y) to the primitive's
	// boundary.
	DistanceTo(x, y float64) float64
}

// pointSegmentDistance returns the distance from p to the segment a-b,
// clamping the projection parameter to [0,1]. A zero-length segment degrades
// to direct point distance.
func pointSegmentDistance(p, a, b geom.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq < geom.Epsilon*geom.Epsilon {
		return p.DistanceTo(a)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return p.DistanceTo(geom.Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// polylineDistance returns the minimum distance from p to the open polyline
// through pts.
func polylineDistance(p geom.Point, pts []geom.Point) float64 {
	if len(pts) == 0 {
		return math.Inf(1)
	}
	if len(pts) == 1 {
		return p.DistanceTo(pts[0])
	}

	best := math.Inf(1)
	for i := 0; i < len(pts)-1; i++ {
		if d := pointSegmentDistance(p, pts[i], pts[i+1]); d < best {
			best = d
		}
	}
	return best
}
