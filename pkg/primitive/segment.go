package primitive

import (
	"github.com/draftlab/draftcad/pkg/geom"
)

// Segment is a straight line between two endpoints.
type Segment struct {
	start geom.Point
	end   geom.Point
	style string
}

// NewSegment creates a segment between two endpoints.
func NewSegment(start, end geom.Point) *Segment {
	return &Segment{start: start, end: end, style: DefaultStyle}
}

// Start returns the first endpoint.
func (s *Segment) Start() geom.Point { return s.start }

// End returns the second endpoint.
func (s *Segment) End() geom.Point { return s.end }

// Length returns the segment length.
func (s *Segment) Length() float64 { return s.start.DistanceTo(s.end) }

// Midpoint returns the point halfway between the endpoints.
func (s *Segment) Midpoint() geom.Point { return s.start.Midpoint(s.end) }

// Angle returns the direction from start to end, in degrees in [0, 360).
func (s *Segment) Angle() float64 {
	return geom.NormalizeDeg(geom.RadToDeg(s.start.AngleTo(s.end)))
}

func (s *Segment) Kind() Kind            { return KindSegment }
func (s *Segment) Style() string         { return s.style }
func (s *Segment) SetStyle(style string) { s.style = style }

func (s *Segment) SnapPoints() []SnapPoint {
	mid := s.Midpoint()
	return []SnapPoint{
		{X: s.start.X, Y: s.start.Y, Kind: SnapEndpoint, Source: s},
		{X: s.end.X, Y: s.end.Y, Kind: SnapEndpoint, Source: s},
		{X: mid.X, Y: mid.Y, Kind: SnapMidpoint, Source: s},
	}
}

func (s *Segment) ControlPoints() []ControlPoint {
	return []ControlPoint{
		{X: s.start.X, Y: s.start.Y, Label: "start", Index: 0},
		{X: s.end.X, Y: s.end.Y, Label: "end", Index: 1},
	}
}

func (s *Segment) MoveControlPoint(index int, x, y float64) bool {
	p := geom.Point{X: x, Y: y}
	switch index {
	case 0:
		if p.Equals(s.end, geom.Epsilon) {
			return false // would collapse to a point
		}
		s.start = p
	case 1:
		if p.Equals(s.start, geom.Epsilon) {
			return false
		}
		s.end = p
	default:
		return false
	}
	return true
}

func (s *Segment) BoundingBox() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	bb.Expand(s.start)
	bb.Expand(s.end)
	return bb
}

// DistanceTo returns the distance from (x, y) to the segment, clamping the
// projection parameter to [0,1] so endpoints bound the result.
func (s *Segment) DistanceTo(x, y float64) float64 {
	return pointSegmentDistance(geom.Point{X: x, Y: y}, s.start, s.end)
}
