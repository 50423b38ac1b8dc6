package scene

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/draftlab/draftcad/pkg/geom"
	"github.com/draftlab/draftcad/pkg/primitive"
)

func TestSceneAddGetRemove(t *testing.T) {
	s := New()

	segID := s.Add(primitive.NewSegment(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}))
	circleID := s.Add(primitive.NewCircle(geom.Point{X: 5, Y: 5}, 2))
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	p, ok := s.Get(circleID)
	if !ok {
		t.Fatalf("Get() missed a stored id")
	}
	if p.Kind() != primitive.KindCircle {
		t.Errorf("Get() kind = %v, want circle", p.Kind())
	}

	if !s.Remove(segID) {
		t.Fatalf("Remove() failed for a stored id")
	}
	if s.Remove(segID) {
		t.Errorf("Remove() succeeded twice for the same id")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d after removal, want 1", s.Len())
	}

	// The survivor is still reachable through the reindexed map.
	if _, ok := s.Get(circleID); !ok {
		t.Errorf("Get() lost the remaining primitive after removal")
	}
	if _, ok := s.Get(uuid.New()); ok {
		t.Errorf("Get() found an unknown id")
	}
}

func TestSceneOrderPreserved(t *testing.T) {
	s := New()
	a := primitive.NewSegment(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0})
	b := primitive.NewCircle(geom.Point{X: 0, Y: 0}, 1)
	c := primitive.NewSegment(geom.Point{X: 0, Y: 1}, geom.Point{X: 1, Y: 1})
	s.Add(a)
	idB := s.Add(b)
	s.Add(c)

	s.Remove(idB)
	prims := s.Primitives()
	if len(prims) != 2 || prims[0] != primitive.Primitive(a) || prims[1] != primitive.Primitive(c) {
		t.Errorf("insertion order not preserved after removal")
	}
}

func TestSceneIDOf(t *testing.T) {
	s := New()
	p := primitive.NewCircle(geom.Point{}, 1)
	id := s.Add(p)

	got, ok := s.IDOf(p)
	if !ok || got != id {
		t.Errorf("IDOf() = %v, %v; want %v, true", got, ok, id)
	}
	if _, ok := s.IDOf(primitive.NewCircle(geom.Point{}, 1)); ok {
		t.Errorf("IDOf() found a primitive not in the scene")
	}
}

func TestSceneBoundingBox(t *testing.T) {
	s := New()
	if !s.BoundingBox().IsEmpty() {
		t.Errorf("empty scene has a non-empty bounding box")
	}

	s.Add(primitive.NewSegment(geom.Point{X: -5, Y: 0}, geom.Point{X: 0, Y: 0}))
	s.Add(primitive.NewCircle(geom.Point{X: 10, Y: 10}, 3))

	bb := s.BoundingBox()
	if bb.Min.X != -5 || bb.Min.Y != 0 || bb.Max.X != 13 || bb.Max.Y != 13 {
		t.Errorf("BoundingBox() = %+v, want [-5,0]-[13,13]", bb)
	}
}

func TestSceneJSONRoundTrip(t *testing.T) {
	s := New()
	s.Add(primitive.NewSegment(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}))
	s.Add(primitive.NewArc(geom.Point{X: 1, Y: 1}, 4, 30, 120))
	s.Add(primitive.NewRegularPolygon(geom.Point{X: 0, Y: 0}, 10, 6, primitive.Inscribed, 0))

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var loaded Scene
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if loaded.Len() != 3 {
		t.Fatalf("loaded Len() = %d, want 3", loaded.Len())
	}

	// Order and geometry survive.
	kinds := []primitive.Kind{primitive.KindSegment, primitive.KindArc, primitive.KindPolygon}
	for i, p := range loaded.Primitives() {
		if p.Kind() != kinds[i] {
			t.Errorf("primitive %d kind = %v, want %v", i, p.Kind(), kinds[i])
		}
	}
	want, got := s.BoundingBox(), loaded.BoundingBox()
	if !want.Min.Equals(got.Min, 1e-9) || !want.Max.Equals(got.Max, 1e-9) {
		t.Errorf("bounding box = %+v, want %+v", got, want)
	}
}

func TestSceneDecodeErrorLeavesSceneUnchanged(t *testing.T) {
	var s Scene
	if err := json.Unmarshal([]byte(`{"primitives": [{"type": "line", "start": {"x": 0, "y": 0}, "end": {"x": 1, "y": 1}}]}`), &s); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	bad := `{"primitives": [{"type": "teapot"}]}`
	if err := json.Unmarshal([]byte(bad), &s); err == nil {
		t.Fatalf("Unmarshal() accepted an unknown primitive type")
	}
	if s.Len() != 1 {
		t.Errorf("failed decode modified the scene: Len() = %d, want 1", s.Len())
	}
}
