package primitive

import (
	"math"
	"testing"

	"github.com/draftlab/draftcad/pkg/geom"
)

func TestPolygonVertices(t *testing.T) {
	// An inscribed hexagon of radius 10 with no rotation puts its first
	// vertex at (10, 0).
	p := NewRegularPolygon(geom.Point{X: 0, Y: 0}, 10, 6, Inscribed, 0)
	verts := p.Vertices()
	if len(verts) != 6 {
		t.Fatalf("Vertices() returned %d points, want 6", len(verts))
	}
	if !verts[0].Equals(geom.Point{X: 10, Y: 0}, 1e-9) {
		t.Errorf("vertex 0 = %v, want {10 0}", verts[0])
	}
	for i, v := range verts {
		if d := math.Hypot(v.X, v.Y); math.Abs(d-10) > 1e-9 {
			t.Errorf("vertex %d at distance %v, want 10", i, d)
		}
	}

	// Rotation shifts every vertex by the same angle.
	p = NewRegularPolygon(geom.Point{X: 0, Y: 0}, 10, 6, Inscribed, 90)
	if v0 := p.Vertices()[0]; !v0.Equals(geom.Point{X: 0, Y: 10}, 1e-9) {
		t.Errorf("rotated vertex 0 = %v, want {0 10}", v0)
	}
}

func TestPolygonCircumscribedRadius(t *testing.T) {
	// For a circumscribed polygon the radius is the apothem, so vertices
	// sit at radius/cos(π/n).
	p := NewRegularPolygon(geom.Point{X: 0, Y: 0}, 10, 6, Circumscribed, 0)
	wantVertexDist := 10 / math.Cos(math.Pi/6)
	for i, v := range p.Vertices() {
		if d := math.Hypot(v.X, v.Y); math.Abs(d-wantVertexDist) > 1e-9 {
			t.Errorf("vertex %d at distance %v, want %v", i, d, wantVertexDist)
		}
	}

	// Each side midpoint touches the circle of the stored radius.
	verts := p.Vertices()
	for i := range verts {
		mid := verts[i].Midpoint(verts[(i+1)%len(verts)])
		if d := math.Hypot(mid.X, mid.Y); math.Abs(d-10) > 1e-9 {
			t.Errorf("side %d midpoint at distance %v, want 10", i, d)
		}
	}
}

func TestPolygonSideFloor(t *testing.T) {
	p := NewRegularPolygon(geom.Point{}, 5, 1, Inscribed, 0)
	if p.NumSides() != 3 {
		t.Errorf("NumSides() = %d, want floor of 3", p.NumSides())
	}
}

func TestParsePolygonVariant(t *testing.T) {
	if ParsePolygonVariant("circumscribed") != Circumscribed {
		t.Errorf("circumscribed tag not recognized")
	}
	for _, tag := range []string{"inscribed", "", "bogus"} {
		if ParsePolygonVariant(tag) != Inscribed {
			t.Errorf("tag %q should fall back to inscribed", tag)
		}
	}
}

func TestPolygonSnapPoints(t *testing.T) {
	p := NewRegularPolygon(geom.Point{X: 0, Y: 0}, 10, 5, Inscribed, 0)
	pts := p.SnapPoints()
	// Center + 5 vertices + 5 side midpoints.
	if len(pts) != 11 {
		t.Fatalf("SnapPoints() returned %d points, want 11", len(pts))
	}

	var centers, verts, mids int
	for _, sp := range pts {
		switch sp.Kind {
		case SnapCenter:
			centers++
		case SnapEndpoint:
			verts++
		case SnapMidpoint:
			mids++
		}
	}
	if centers != 1 || verts != 5 || mids != 5 {
		t.Errorf("kinds = %d/%d/%d, want 1/5/5", centers, verts, mids)
	}
}

func TestPolygonMoveControlPoint(t *testing.T) {
	p := NewRegularPolygon(geom.Point{X: 0, Y: 0}, 10, 6, Inscribed, 0)

	// Dragging the radius handle re-derives both radius and rotation.
	if !p.MoveControlPoint(1, 0, 20) {
		t.Fatalf("radius handle move failed")
	}
	if math.Abs(p.Radius()-20) > 1e-9 {
		t.Errorf("radius = %v, want 20", p.Radius())
	}
	if math.Abs(p.Rotation()-90) > 1e-9 {
		t.Errorf("rotation = %v, want 90", p.Rotation())
	}
	if !p.Vertices()[0].Equals(geom.Point{X: 0, Y: 20}, 1e-9) {
		t.Errorf("vertex 0 does not follow the handle: %v", p.Vertices()[0])
	}

	// A circumscribed polygon stores the apothem, so the handle distance is
	// converted back before storing.
	c := NewRegularPolygon(geom.Point{X: 0, Y: 0}, 10, 6, Circumscribed, 0)
	if !c.MoveControlPoint(1, 20, 0) {
		t.Fatalf("circumscribed handle move failed")
	}
	if want := 20 * math.Cos(math.Pi/6); math.Abs(c.Radius()-want) > 1e-9 {
		t.Errorf("radius = %v, want apothem %v", c.Radius(), want)
	}
	if !c.Vertices()[0].Equals(geom.Point{X: 20, Y: 0}, 1e-9) {
		t.Errorf("vertex 0 does not follow the handle: %v", c.Vertices()[0])
	}

	if p.MoveControlPoint(1, p.Center().X, p.Center().Y) {
		t.Errorf("accepted handle on center")
	}
}

func TestPolygonDistanceTo(t *testing.T) {
	// A square (4-gon rotated 45°) of vertex radius √2 has sides at x,y = ±1.
	p := NewRegularPolygon(geom.Point{X: 0, Y: 0}, math.Sqrt2, 4, Inscribed, 45)

	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"on a side", 1, 0, 0},
		{"outside a side", 3, 0, 2},
		{"inside measures to outline", 0, 0, 1},
		{"above the top side", 0, 3, 2},
		{"outside a corner", 3, 3, 2 * math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.DistanceTo(tt.x, tt.y); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DistanceTo(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPolygonBoundingBox(t *testing.T) {
	p := NewRegularPolygon(geom.Point{X: 0, Y: 0}, math.Sqrt2, 4, Inscribed, 45)
	bb := p.BoundingBox()
	if math.Abs(bb.Min.X+1) > 1e-9 || math.Abs(bb.Max.X-1) > 1e-9 ||
		math.Abs(bb.Min.Y+1) > 1e-9 || math.Abs(bb.Max.Y-1) > 1e-9 {
		t.Errorf("BoundingBox() = %+v, want [-1,-1]-[1,1]", bb)
	}
}
