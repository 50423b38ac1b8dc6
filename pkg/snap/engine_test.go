package snap

import (
	"testing"

	"github.com/draftlab/draftcad/pkg/geom"
	"github.com/draftlab/draftcad/pkg/primitive"
)

func TestFindSnapNearestEndpoint(t *testing.T) {
	cfg := Config{
		Enabled: true,
		Kinds:   map[primitive.SnapKind]bool{primitive.SnapEndpoint: true},
	}
	e := NewEngine(cfg)

	seg := primitive.NewSegment(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})
	prims := []primitive.Primitive{seg}

	// Cursor near (0,0): distance ~0.36, within tolerance 1.0 and nearer
	// than the far endpoint.
	sp, ok := e.FindSnap(0.2, 0.3, prims, 1.0, nil)
	if !ok {
		t.Fatalf("FindSnap() found nothing")
	}
	if sp.X != 0 || sp.Y != 0 {
		t.Errorf("snapped to (%v, %v), want (0, 0)", sp.X, sp.Y)
	}
	if sp.Kind != primitive.SnapEndpoint {
		t.Errorf("snap kind = %v, want endpoint", sp.Kind)
	}
	if sp.Source != primitive.Primitive(seg) {
		t.Errorf("snap source not the segment")
	}

	// The midpoint at (5,0) is nearer but its kind is disabled.
	if sp, ok := e.FindSnap(5, 0.1, prims, 1.0, nil); ok {
		t.Errorf("snapped to disabled kind at (%v, %v)", sp.X, sp.Y)
	}
}

func TestFindSnapToleranceIsStrict(t *testing.T) {
	e := NewEngine(DefaultConfig())
	prims := []primitive.Primitive{
		primitive.NewSegment(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}),
	}

	// Exactly at tolerance does not qualify.
	if _, ok := e.FindSnap(1, 0, prims, 1.0, nil); ok {
		t.Errorf("snapped at exactly the tolerance distance")
	}
	if _, ok := e.FindSnap(0.999, 0, prims, 1.0, nil); !ok {
		t.Errorf("did not snap strictly inside the tolerance")
	}
}

func TestFindSnapFirstWinsOnTie(t *testing.T) {
	e := NewEngine(DefaultConfig())

	// Two segments with endpoints equidistant from the cursor.
	a := primitive.NewSegment(geom.Point{X: -1, Y: 0}, geom.Point{X: -10, Y: 0})
	b := primitive.NewSegment(geom.Point{X: 1, Y: 0}, geom.Point{X: 10, Y: 0})
	prims := []primitive.Primitive{a, b}

	sp, ok := e.FindSnap(0, 0, prims, 2.0, nil)
	if !ok {
		t.Fatalf("FindSnap() found nothing")
	}
	if sp.Source != primitive.Primitive(a) {
		t.Errorf("tie did not resolve to the first primitive in order")
	}

	// Reversed order flips the winner.
	sp, _ = e.FindSnap(0, 0, []primitive.Primitive{b, a}, 2.0, nil)
	if sp.Source != primitive.Primitive(b) {
		t.Errorf("tie did not follow iteration order after reordering")
	}
}

func TestFindSnapExclude(t *testing.T) {
	e := NewEngine(DefaultConfig())
	seg := primitive.NewSegment(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})
	prims := []primitive.Primitive{seg}

	// A primitive being edited must not snap to itself.
	if _, ok := e.FindSnap(0.1, 0.1, prims, 1.0, seg); ok {
		t.Errorf("snapped to the excluded primitive")
	}
}

func TestFindSnapDisabled(t *testing.T) {
	prims := []primitive.Primitive{
		primitive.NewCircle(geom.Point{X: 0, Y: 0}, 5),
	}

	cfg := DefaultConfig()
	cfg.Enabled = false
	if _, ok := NewEngine(cfg).FindSnap(0, 0, prims, 10, nil); ok {
		t.Errorf("disabled engine snapped")
	}

	// No enabled kinds behaves the same as disabled.
	if _, ok := NewEngine(Config{Enabled: true}).FindSnap(0, 0, prims, 10, nil); ok {
		t.Errorf("engine with no kinds snapped")
	}
}

func TestFindSnapAcrossKinds(t *testing.T) {
	e := NewEngine(DefaultConfig())
	circle := primitive.NewCircle(geom.Point{X: 0, Y: 0}, 5)
	prims := []primitive.Primitive{circle}

	// Near the 90° quadrant point.
	sp, ok := e.FindSnap(0.2, 4.9, prims, 1.0, nil)
	if !ok {
		t.Fatalf("FindSnap() found nothing")
	}
	if sp.Kind != primitive.SnapQuadrant {
		t.Errorf("snap kind = %v, want quadrant", sp.Kind)
	}

	// Near the center.
	sp, ok = e.FindSnap(0.1, -0.1, prims, 1.0, nil)
	if !ok || sp.Kind != primitive.SnapCenter {
		t.Errorf("snap near center = %+v, %v; want center snap", sp, ok)
	}
}
