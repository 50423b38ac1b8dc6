package primitive

import (
	"math"

	"github.com/draftlab/draftcad/pkg/geom"
)

// Arc is a circular arc defined by center, radius, start angle and signed
// span. A negative span sweeps clockwise; |span| never exceeds 360.
type Arc struct {
	center     geom.Point
	radius     float64
	startAngle float64 // degrees
	spanAngle  float64 // degrees, signed; positive = counter-clockwise
	style      string
}

// NewArc creates an arc from center, radius and explicit start/span angles
// in degrees. The radius is coerced to its absolute value and the span is
// clamped to [-360, 360].
func NewArc(center geom.Point, radius, startAngle, spanAngle float64) *Arc {
	if spanAngle > 360 {
		spanAngle = 360
	} else if spanAngle < -360 {
		spanAngle = -360
	}
	return &Arc{
		center:     center,
		radius:     math.Abs(radius),
		startAngle: startAngle,
		spanAngle:  spanAngle,
		style:      DefaultStyle,
	}
}

// NewArcFromAngles creates an arc between two absolute angles in degrees.
//
// With shortestPath=false the arc always sweeps counter-clockwise from
// startAngle to endAngle, with the span normalized into [0, 360); a zero
// span is reinterpreted as a full circle. With shortestPath=true the span is
// normalized into (-180, 180] so the arc takes the shorter way around.
func NewArcFromAngles(center geom.Point, radius, startAngle, endAngle float64, shortestPath bool) *Arc {
	var span float64
	if shortestPath {
		span = geom.ShortestDeg(endAngle - startAngle)
	} else {
		span = geom.NormalizeDeg(endAngle - startAngle)
		if span == 0 {
			span = 360
		}
	}
	return NewArc(center, radius, startAngle, span)
}

// NewArcFromThreePoints creates the arc that starts at start, ends at end,
// and passes through onArc. The center and radius come from the circumcircle
// of the three points; ok=false when they are collinear.
//
// Directionality: traversing counter-clockwise from start, if the on-arc
// point is reached no later than the end point the arc is counter-clockwise,
// otherwise it is clockwise. A point exactly at the end angle counts as
// counter-clockwise.
func NewArcFromThreePoints(start, onArc, end geom.Point) (*Arc, bool) {
	center, radius, ok := circumcircle(start, onArc, end)
	if !ok {
		return nil, false
	}

	aStart := geom.NormalizeRad(center.AngleTo(start))
	aOn := geom.NormalizeRad(center.AngleTo(onArc))
	aEnd := geom.NormalizeRad(center.AngleTo(end))

	// CCW angular distance from the start angle.
	ccw := func(a float64) float64 {
		return geom.NormalizeRad(a - aStart)
	}

	var span float64
	if ccw(aOn) <= ccw(aEnd) {
		span = ccw(aEnd)
	} else {
		span = -(2*math.Pi - ccw(aEnd))
	}

	return NewArc(center, radius, geom.RadToDeg(aStart), geom.RadToDeg(span)), true
}

// Center returns the arc center.
func (a *Arc) Center() geom.Point { return a.center }

// Radius returns the arc radius.
func (a *Arc) Radius() float64 { return a.radius }

// StartAngle returns the start angle in degrees.
func (a *Arc) StartAngle() float64 { return a.startAngle }

// SpanAngle returns the signed span in degrees.
func (a *Arc) SpanAngle() float64 { return a.spanAngle }

// EndAngle returns startAngle + spanAngle in degrees.
func (a *Arc) EndAngle() float64 { return a.startAngle + a.spanAngle }

// PointAt returns the point on the arc's circle at the given absolute angle
// in degrees.
func (a *Arc) PointAt(angleDeg float64) geom.Point {
	rad := geom.DegToRad(angleDeg)
	return geom.Point{
		X: a.center.X + a.radius*math.Cos(rad),
		Y: a.center.Y + a.radius*math.Sin(rad),
	}
}

// StartPoint returns the point where the arc begins.
func (a *Arc) StartPoint() geom.Point { return a.PointAt(a.startAngle) }

// EndPoint returns the point where the arc ends.
func (a *Arc) EndPoint() geom.Point { return a.PointAt(a.EndAngle()) }

// MidPoint returns the point halfway along the arc.
func (a *Arc) MidPoint() geom.Point { return a.PointAt(a.startAngle + a.spanAngle/2.0) }

// ContainsAngle reports whether the given absolute angle in degrees lies
// within the arc's sweep.
func (a *Arc) ContainsAngle(angleDeg float64) bool {
	if math.Abs(a.spanAngle) >= 360 {
		return true
	}
	if a.spanAngle >= 0 {
		return geom.NormalizeDeg(angleDeg-a.startAngle) <= a.spanAngle
	}
	return geom.NormalizeDeg(a.startAngle-angleDeg) <= -a.spanAngle
}

// CurvePoints tessellates the arc into segments+1 points for rendering.
func (a *Arc) CurvePoints(segments int) []geom.Point {
	if segments < 1 {
		segments = 1
	}
	pts := make([]geom.Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		pts = append(pts, a.PointAt(a.startAngle+a.spanAngle*t))
	}
	return pts
}

func (a *Arc) Kind() Kind            { return KindArc }
func (a *Arc) Style() string         { return a.style }
func (a *Arc) SetStyle(style string) { a.style = style }

func (a *Arc) SnapPoints() []SnapPoint {
	start := a.StartPoint()
	end := a.EndPoint()
	mid := a.MidPoint()
	pts := []SnapPoint{
		{X: a.center.X, Y: a.center.Y, Kind: SnapCenter, Source: a},
		{X: start.X, Y: start.Y, Kind: SnapEndpoint, Source: a},
		{X: end.X, Y: end.Y, Kind: SnapEndpoint, Source: a},
		{X: mid.X, Y: mid.Y, Kind: SnapMidpoint, Source: a},
	}
	for _, q := range []float64{0, 90, 180, 270} {
		if a.ContainsAngle(q) {
			p := a.PointAt(q)
			pts = append(pts, SnapPoint{X: p.X, Y: p.Y, Kind: SnapQuadrant, Source: a})
		}
	}
	return pts
}

func (a *Arc) ControlPoints() []ControlPoint {
	start := a.StartPoint()
	end := a.EndPoint()
	return []ControlPoint{
		{X: a.center.X, Y: a.center.Y, Label: "center", Index: 0},
		{X: start.X, Y: start.Y, Label: "start", Index: 1},
		{X: end.X, Y: end.Y, Label: "end", Index: 2},
	}
}

// MoveControlPoint edits the arc. The center handle translates the arc; the
// start handle re-derives radius and start angle (keeping the span); the end
// handle re-derives the span toward the new angle, keeping the sweep
// direction.
func (a *Arc) MoveControlPoint(index int, x, y float64) bool {
	p := geom.Point{X: x, Y: y}
	switch index {
	case 0:
		a.center = p
	case 1:
		r := a.center.DistanceTo(p)
		if r < geom.Epsilon {
			return false
		}
		a.radius = r
		a.startAngle = geom.RadToDeg(a.center.AngleTo(p))
	case 2:
		if a.center.DistanceTo(p) < geom.Epsilon {
			return false
		}
		angle := geom.RadToDeg(a.center.AngleTo(p))
		if a.spanAngle >= 0 {
			a.spanAngle = geom.NormalizeDeg(angle - a.startAngle)
		} else {
			a.spanAngle = -geom.NormalizeDeg(a.startAngle - angle)
		}
	default:
		return false
	}
	return true
}

func (a *Arc) BoundingBox() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	bb.Expand(a.StartPoint())
	bb.Expand(a.EndPoint())
	for _, q := range []float64{0, 90, 180, 270} {
		if a.ContainsAngle(q) {
			bb.Expand(a.PointAt(q))
		}
	}
	return bb
}

// DistanceTo returns the distance to the arc boundary. If the query point's
// polar angle falls within the sweep the distance is radial; otherwise it is
// the distance to the nearer endpoint.
func (a *Arc) DistanceTo(x, y float64) float64 {
	p := geom.Point{X: x, Y: y}
	d := a.center.DistanceTo(p)
	if d < geom.Epsilon {
		// Every arc point sits at exactly one radius from the center.
		return a.radius
	}

	angle := geom.RadToDeg(a.center.AngleTo(p))
	if a.ContainsAngle(angle) {
		return math.Abs(d - a.radius)
	}
	return math.Min(p.DistanceTo(a.StartPoint()), p.DistanceTo(a.EndPoint()))
}
