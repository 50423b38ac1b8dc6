package primitive

import (
	"math"
	"testing"

	"github.com/draftlab/draftcad/pkg/geom"
)

func splinePoints() []geom.Point {
	return []geom.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 10},
		{X: 20, Y: 0},
		{X: 30, Y: 10},
	}
}

func TestSplineConstruction(t *testing.T) {
	if _, ok := NewSpline([]geom.Point{{X: 1, Y: 1}}, false); ok {
		t.Errorf("accepted a single-point spline")
	}

	src := splinePoints()
	sp, ok := NewSpline(src, false)
	if !ok {
		t.Fatalf("construction failed")
	}

	// The spline copies its input.
	src[0] = geom.Point{X: 99, Y: 99}
	if sp.Points()[0].X == 99 {
		t.Errorf("spline aliases the caller's slice")
	}
}

func TestSplineInterpolatesControlPoints(t *testing.T) {
	sp, _ := NewSpline(splinePoints(), false)
	pts := sp.CurvePoints(8)

	// 3 spans of 8 segments plus the leading point.
	if len(pts) != 25 {
		t.Fatalf("CurvePoints(8) returned %d points, want 25", len(pts))
	}

	// The curve passes through every control point at span boundaries.
	for i, cp := range sp.Points() {
		if got := pts[i*8]; !got.Equals(cp, 1e-9) {
			t.Errorf("span boundary %d = %v, want control point %v", i, got, cp)
		}
	}
}

func TestSplineClosedWraps(t *testing.T) {
	sp, _ := NewSpline(splinePoints(), true)
	pts := sp.CurvePoints(8)

	// 4 spans when closed, and the curve returns to the first point.
	if len(pts) != 33 {
		t.Fatalf("CurvePoints(8) returned %d points, want 33", len(pts))
	}
	if !pts[len(pts)-1].Equals(sp.Points()[0], 1e-9) {
		t.Errorf("closed spline does not return to start: %v", pts[len(pts)-1])
	}
}

func TestSplineTangents(t *testing.T) {
	sp, _ := NewSpline([]geom.Point{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 4, Y: 0},
	}, false)

	// Interior tangent is the central difference 0.5*(next - prev).
	if m := sp.tangent(1); math.Abs(m.X-2) > 1e-12 || math.Abs(m.Y) > 1e-12 {
		t.Errorf("interior tangent = %v, want {2 0}", m)
	}
	// End tangents are one-sided.
	if m := sp.tangent(0); math.Abs(m.X-1) > 1e-12 {
		t.Errorf("start tangent = %v, want {1 0}", m)
	}
	if m := sp.tangent(2); math.Abs(m.X-1) > 1e-12 {
		t.Errorf("end tangent = %v, want {1 0}", m)
	}
}

func TestSplineCacheInvalidation(t *testing.T) {
	sp, _ := NewSpline(splinePoints(), false)

	before := sp.CurvePoints(8)
	if again := sp.CurvePoints(8); &again[0] != &before[0] {
		t.Errorf("repeated tessellation not served from cache")
	}

	// Every mutation entry point must drop the cache.
	mutations := []struct {
		name   string
		mutate func()
	}{
		{"MoveControlPoint", func() { sp.MoveControlPoint(1, 10, 20) }},
		{"AddPoint", func() { sp.AddPoint(geom.Point{X: 40, Y: 0}) }},
		{"InsertPoint", func() { sp.InsertPoint(0, geom.Point{X: -10, Y: 0}) }},
		{"RemovePoint", func() { sp.RemovePoint(0) }},
		{"SetClosed", func() { sp.SetClosed(true) }},
	}
	for _, m := range mutations {
		t.Run(m.name, func(t *testing.T) {
			prev := sp.CurvePoints(8)
			m.mutate()
			next := sp.CurvePoints(8)
			if len(prev) == len(next) && &prev[0] == &next[0] {
				t.Errorf("%s did not invalidate the tessellation cache", m.name)
			}
		})
	}
}

func TestSplinePointEditing(t *testing.T) {
	sp, _ := NewSpline([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, false)

	if !sp.InsertPoint(1, geom.Point{X: 0.5, Y: 1}) {
		t.Fatalf("insert failed")
	}
	if sp.NumPoints() != 3 || sp.Points()[1].Y != 1 {
		t.Errorf("insert misplaced: %v", sp.Points())
	}
	if sp.InsertPoint(7, geom.Point{}) {
		t.Errorf("accepted out-of-range insert")
	}

	if !sp.RemovePoint(1) {
		t.Fatalf("remove failed")
	}
	// Removing below two points is refused.
	if sp.RemovePoint(0) {
		t.Errorf("removed below the two-point minimum")
	}
}

func TestSplineSnapPoints(t *testing.T) {
	open, _ := NewSpline(splinePoints(), false)
	pts := open.SnapPoints()
	// 4 nodes + 2 endpoints.
	if len(pts) != 6 {
		t.Fatalf("open spline SnapPoints() = %d, want 6", len(pts))
	}

	closed, _ := NewSpline(splinePoints(), true)
	if got := closed.SnapPoints(); len(got) != 4 {
		t.Errorf("closed spline SnapPoints() = %d, want 4 nodes only", len(got))
	}
}

func TestSplineDistanceTo(t *testing.T) {
	// A straight control polygon tessellates to the straight line.
	sp, _ := NewSpline([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, false)
	if got := sp.DistanceTo(5, 3); math.Abs(got-3) > 1e-9 {
		t.Errorf("DistanceTo(5, 3) = %v, want 3", got)
	}
	if got := sp.DistanceTo(-4, 0); math.Abs(got-4) > 1e-9 {
		t.Errorf("DistanceTo(-4, 0) = %v, want 4", got)
	}
}
