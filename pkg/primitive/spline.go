package primitive

import (
	"github.com/draftlab/draftcad/pkg/geom"
)

// defaultSplineSegments is the tessellation density per span used for
// distance queries and bounding boxes.
const defaultSplineSegments = 16

// Spline is a curve interpolating an ordered list of control points with
// cubic Hermite segments using Catmull-Rom style tangents. A closed spline
// wraps around from the last control point back to the first.
//
// The tessellation is cached on the value and invalidated by every mutation
// entry point (AddPoint, InsertPoint, RemovePoint, MoveControlPoint,
// SetClosed).
type Spline struct {
	points []geom.Point
	closed bool
	style  string

	cache         []geom.Point
	cacheSegments int
}

// NewSpline creates a spline through the given control points. It returns
// ok=false when fewer than two points are supplied.
func NewSpline(points []geom.Point, closed bool) (*Spline, bool) {
	if len(points) < 2 {
		return nil, false
	}
	cp := make([]geom.Point, len(points))
	copy(cp, points)
	return &Spline{points: cp, closed: closed, style: DefaultStyle}, true
}

// Points returns a copy of the control points.
func (sp *Spline) Points() []geom.Point {
	cp := make([]geom.Point, len(sp.points))
	copy(cp, sp.points)
	return cp
}

// NumPoints returns the control point count.
func (sp *Spline) NumPoints() int { return len(sp.points) }

// Closed reports whether the spline wraps around.
func (sp *Spline) Closed() bool { return sp.closed }

// SetClosed toggles the closed flag.
func (sp *Spline) SetClosed(closed bool) {
	if sp.closed != closed {
		sp.closed = closed
		sp.invalidate()
	}
}

// AddPoint appends a control point.
func (sp *Spline) AddPoint(p geom.Point) {
	sp.points = append(sp.points, p)
	sp.invalidate()
}

// InsertPoint inserts a control point before index. It returns false on an
// out-of-range index.
func (sp *Spline) InsertPoint(index int, p geom.Point) bool {
	if index < 0 || index > len(sp.points) {
		return false
	}
	sp.points = append(sp.points, geom.Point{})
	copy(sp.points[index+1:], sp.points[index:])
	sp.points[index] = p
	sp.invalidate()
	return true
}

// RemovePoint removes the control point at index. It returns false when the
// index is invalid or the spline would drop below two points.
func (sp *Spline) RemovePoint(index int) bool {
	if index < 0 || index >= len(sp.points) || len(sp.points) <= 2 {
		return false
	}
	sp.points = append(sp.points[:index], sp.points[index+1:]...)
	sp.invalidate()
	return true
}

// invalidate drops the tessellation cache.
func (sp *Spline) invalidate() {
	sp.cache = nil
	sp.cacheSegments = 0
}

// tangent returns the Catmull-Rom tangent at control point i:
// 0.5*(p[i+1] - p[i-1]), with the missing neighbor replaced by p[i] itself
// at the open ends (one-sided tangent). Closed splines wrap the indices.
func (sp *Spline) tangent(i int) geom.Point {
	n := len(sp.points)
	var prev, next geom.Point
	if sp.closed {
		prev = sp.points[((i-1)%n+n)%n]
		next = sp.points[(i+1)%n]
	} else {
		if i == 0 {
			prev = sp.points[0]
		} else {
			prev = sp.points[i-1]
		}
		if i == n-1 {
			next = sp.points[n-1]
		} else {
			next = sp.points[i+1]
		}
	}
	return next.Sub(prev).Scale(0.5)
}

// hermite evaluates the cubic Hermite span from p0 (tangent m0) to p1
// (tangent m1) at parameter t in [0,1].
func hermite(p0, m0, p1, m1 geom.Point, t float64) geom.Point {
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return geom.Point{
		X: h00*p0.X + h10*m0.X + h01*p1.X + h11*m1.X,
		Y: h00*p0.Y + h10*m0.Y + h01*p1.Y + h11*m1.Y,
	}
}

// CurvePoints tessellates the spline with the given number of segments per
// span. The result is cached until the next mutation; callers must not
// modify the returned slice.
func (sp *Spline) CurvePoints(segmentsPerSpan int) []geom.Point {
	if segmentsPerSpan < 1 {
		segmentsPerSpan = 1
	}
	if sp.cache != nil && sp.cacheSegments == segmentsPerSpan {
		return sp.cache
	}

	n := len(sp.points)
	spans := n - 1
	if sp.closed {
		spans = n
	}

	pts := make([]geom.Point, 0, spans*segmentsPerSpan+1)
	pts = append(pts, sp.points[0])
	for span := 0; span < spans; span++ {
		i0 := span
		i1 := (span + 1) % n
		p0 := sp.points[i0]
		p1 := sp.points[i1]
		m0 := sp.tangent(i0)
		m1 := sp.tangent(i1)
		for step := 1; step <= segmentsPerSpan; step++ {
			t := float64(step) / float64(segmentsPerSpan)
			pts = append(pts, hermite(p0, m0, p1, m1, t))
		}
	}

	sp.cache = pts
	sp.cacheSegments = segmentsPerSpan
	return pts
}

func (sp *Spline) Kind() Kind            { return KindSpline }
func (sp *Spline) Style() string         { return sp.style }
func (sp *Spline) SetStyle(style string) { sp.style = style }

// SnapPoints returns every control point as a node anchor, plus the two
// open-path endpoints as endpoint anchors.
func (sp *Spline) SnapPoints() []SnapPoint {
	pts := make([]SnapPoint, 0, len(sp.points)+2)
	for _, p := range sp.points {
		pts = append(pts, SnapPoint{X: p.X, Y: p.Y, Kind: SnapNode, Source: sp})
	}
	if !sp.closed {
		first := sp.points[0]
		last := sp.points[len(sp.points)-1]
		pts = append(pts,
			SnapPoint{X: first.X, Y: first.Y, Kind: SnapEndpoint, Source: sp},
			SnapPoint{X: last.X, Y: last.Y, Kind: SnapEndpoint, Source: sp},
		)
	}
	return pts
}

func (sp *Spline) ControlPoints() []ControlPoint {
	cps := make([]ControlPoint, len(sp.points))
	for i, p := range sp.points {
		cps[i] = ControlPoint{X: p.X, Y: p.Y, Label: "point", Index: i}
	}
	return cps
}

func (sp *Spline) MoveControlPoint(index int, x, y float64) bool {
	if index < 0 || index >= len(sp.points) {
		return false
	}
	sp.points[index] = geom.Point{X: x, Y: y}
	sp.invalidate()
	return true
}

func (sp *Spline) BoundingBox() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	for _, p := range sp.CurvePoints(defaultSplineSegments) {
		bb.Expand(p)
	}
	return bb
}

// DistanceTo returns the distance from (x, y) to the tessellated curve. For
// closed splines the tessellation already contains the wrap-around span.
func (sp *Spline) DistanceTo(x, y float64) float64 {
	return polylineDistance(geom.Point{X: x, Y: y}, sp.CurvePoints(defaultSplineSegments))
}
