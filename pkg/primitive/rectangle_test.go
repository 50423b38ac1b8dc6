package primitive

import (
	"math"
	"testing"

	"github.com/draftlab/draftcad/pkg/geom"
)

func TestRectangleDerivedEdges(t *testing.T) {
	// Edge derivation must be insensitive to corner order.
	tests := []struct {
		name   string
		c1, c2 geom.Point
	}{
		{"min first", geom.Point{X: 1, Y: 2}, geom.Point{X: 5, Y: 8}},
		{"max first", geom.Point{X: 5, Y: 8}, geom.Point{X: 1, Y: 2}},
		{"mixed corners", geom.Point{X: 1, Y: 8}, geom.Point{X: 5, Y: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRectangle(tt.c1, tt.c2)
			if r.Left() != 1 || r.Right() != 5 || r.Bottom() != 2 || r.Top() != 8 {
				t.Errorf("edges = %v/%v/%v/%v, want 1/5/2/8",
					r.Left(), r.Right(), r.Bottom(), r.Top())
			}
			if r.Width() != 4 || r.Height() != 6 {
				t.Errorf("size = %vx%v, want 4x6", r.Width(), r.Height())
			}
			if c := r.Center(); !c.Equals(geom.Point{X: 3, Y: 5}, 1e-12) {
				t.Errorf("Center() = %v, want {3 5}", c)
			}
		})
	}
}

func TestRectangleFromSizeAndCenter(t *testing.T) {
	r := NewRectangleFromSize(geom.Point{X: 1, Y: 1}, 4, 2)
	if r.Right() != 5 || r.Top() != 3 {
		t.Errorf("from size: right/top = %v/%v, want 5/3", r.Right(), r.Top())
	}

	r = NewRectangleFromCenter(geom.Point{X: 0, Y: 0}, 4, 2)
	if r.Left() != -2 || r.Right() != 2 || r.Bottom() != -1 || r.Top() != 1 {
		t.Errorf("from center: edges = %v/%v/%v/%v",
			r.Left(), r.Right(), r.Bottom(), r.Top())
	}
}

func TestRectangleDistanceTo(t *testing.T) {
	r := NewRectangle(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 6})

	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"corner on boundary", 0, 0, 0},
		{"edge on boundary", 5, 0, 0},
		{"inside measures to nearest edge", 5, 3, 3},
		{"outside right", 13, 3, 3},
		{"outside diagonal", 13, 10, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.DistanceTo(tt.x, tt.y); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DistanceTo(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectangleSnapPoints(t *testing.T) {
	r := NewRectangle(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 6})
	pts := r.SnapPoints()
	// Center + 4 corners + 4 side midpoints.
	if len(pts) != 9 {
		t.Fatalf("SnapPoints() returned %d points, want 9", len(pts))
	}

	var centers, corners, mids int
	for _, p := range pts {
		switch p.Kind {
		case SnapCenter:
			centers++
		case SnapEndpoint:
			corners++
		case SnapMidpoint:
			mids++
		}
	}
	if centers != 1 || corners != 4 || mids != 4 {
		t.Errorf("kinds = %d/%d/%d, want 1/4/4", centers, corners, mids)
	}
}

func TestRectangleMoveControlPoint(t *testing.T) {
	r := NewRectangle(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 6})

	// Dragging corner 0 keeps the opposite corner (10, 6) fixed.
	if !r.MoveControlPoint(0, -2, -2) {
		t.Fatalf("corner move failed")
	}
	if r.Left() != -2 || r.Bottom() != -2 || r.Right() != 10 || r.Top() != 6 {
		t.Errorf("edges after corner move = %v/%v/%v/%v",
			r.Left(), r.Right(), r.Bottom(), r.Top())
	}

	// Center handle translates without resizing.
	if !r.MoveControlPoint(4, 0, 0) {
		t.Fatalf("center move failed")
	}
	if math.Abs(r.Width()-12) > 1e-12 || math.Abs(r.Height()-8) > 1e-12 {
		t.Errorf("size changed by center move: %vx%v", r.Width(), r.Height())
	}
	if c := r.Center(); !c.Equals(geom.Point{X: 0, Y: 0}, 1e-12) {
		t.Errorf("center = %v, want origin", c)
	}

	// A move collapsing the rectangle to zero width is rejected.
	if r.MoveControlPoint(0, r.Right(), 0) {
		t.Errorf("accepted zero-width rectangle")
	}
}

func TestRectangleCosmeticsExclusive(t *testing.T) {
	r := NewRectangle(geom.Point{}, geom.Point{X: 1, Y: 1})

	r.SetCornerRadius(2)
	if r.CornerRadius() != 2 || r.ChamferSize() != 0 {
		t.Errorf("corner radius not set exclusively")
	}

	r.SetChamferSize(1)
	if r.ChamferSize() != 1 || r.CornerRadius() != 0 {
		t.Errorf("chamfer not set exclusively")
	}

	r.SetCornerRadius(-5)
	if r.CornerRadius() != 0 {
		t.Errorf("negative corner radius accepted")
	}
}
