package snap

import (
	"testing"

	"github.com/draftlab/draftcad/pkg/geom"
	"github.com/draftlab/draftcad/pkg/primitive"
)

func TestHitTestNearest(t *testing.T) {
	seg := primitive.NewSegment(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})
	circle := primitive.NewCircle(geom.Point{X: 0, Y: 10}, 3)
	prims := []primitive.Primitive{seg, circle}

	h := NewHitTester(1.0)

	if got := h.HitTest(5, 0.5, prims); got != primitive.Primitive(seg) {
		t.Errorf("HitTest near segment returned %v", got)
	}
	if got := h.HitTest(0, 7.2, prims); got != primitive.Primitive(circle) {
		t.Errorf("HitTest near circle boundary returned %v", got)
	}
	if got := h.HitTest(100, 100, prims); got != nil {
		t.Errorf("HitTest far away returned %v", got)
	}
}

func TestHitTestToleranceIsStrict(t *testing.T) {
	seg := primitive.NewSegment(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})
	prims := []primitive.Primitive{seg}

	h := NewHitTester(1.0)
	if got := h.HitTest(5, 1.0, prims); got != nil {
		t.Errorf("hit at exactly the tolerance distance")
	}
	if got := h.HitTest(5, 0.99, prims); got == nil {
		t.Errorf("no hit strictly inside the tolerance")
	}
}

func TestHitTestFirstWinsOnTie(t *testing.T) {
	// Two parallel segments equidistant from the cursor.
	a := primitive.NewSegment(geom.Point{X: 0, Y: 1}, geom.Point{X: 10, Y: 1})
	b := primitive.NewSegment(geom.Point{X: 0, Y: -1}, geom.Point{X: 10, Y: -1})

	h := NewHitTester(2.0)
	if got := h.HitTest(5, 0, []primitive.Primitive{a, b}); got != primitive.Primitive(a) {
		t.Errorf("tie did not resolve to the first primitive")
	}
	if got := h.HitTest(5, 0, []primitive.Primitive{b, a}); got != primitive.Primitive(b) {
		t.Errorf("tie did not follow iteration order after reordering")
	}
}

func TestHitTestInteriorIsNotOutline(t *testing.T) {
	// Distance is to the outline, so the middle of a big circle misses.
	circle := primitive.NewCircle(geom.Point{X: 0, Y: 0}, 50)
	h := NewHitTester(1.0)
	if got := h.HitTest(0, 0, []primitive.Primitive{circle}); got != nil {
		t.Errorf("hit the circle interior")
	}
	if got := h.HitTest(49.5, 0, []primitive.Primitive{circle}); got == nil {
		t.Errorf("missed the circle outline")
	}
}
