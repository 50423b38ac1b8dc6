// Package scene owns an ordered collection of primitives with stable
// identities and whole-document serialization.
package scene

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/draftlab/draftcad/pkg/geom"
	"github.com/draftlab/draftcad/pkg/primitive"
)

// Entry pairs a primitive with its stable scene identity.
type Entry struct {
	ID        uuid.UUID
	Primitive primitive.Primitive
}

// Scene is an ordered primitive collection. Iteration order is insertion
// order, which also fixes the deterministic tie-break order of snap and
// hit queries run against Primitives().
//
// A Scene is not safe for concurrent use; callers serialize mutation and
// queries themselves.
type Scene struct {
	entries []Entry
	index   map[uuid.UUID]int
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{index: make(map[uuid.UUID]int)}
}

// Add inserts a primitive and returns its generated id.
func (s *Scene) Add(p primitive.Primitive) uuid.UUID {
	id := uuid.New()
	s.index[id] = len(s.entries)
	s.entries = append(s.entries, Entry{ID: id, Primitive: p})
	return id
}

// Get returns the primitive with the given id.
func (s *Scene) Get(id uuid.UUID) (primitive.Primitive, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.entries[i].Primitive, true
}

// Remove deletes the primitive with the given id, preserving the order of
// the remaining entries. It returns false for an unknown id.
func (s *Scene) Remove(id uuid.UUID) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].ID] = j
	}
	return true
}

// IDOf returns the id of a primitive already in the scene.
func (s *Scene) IDOf(p primitive.Primitive) (uuid.UUID, bool) {
	for _, e := range s.entries {
		if e.Primitive == p {
			return e.ID, true
		}
	}
	return uuid.UUID{}, false
}

// Len returns the primitive count.
func (s *Scene) Len() int { return len(s.entries) }

// Entries returns the entries in insertion order. The slice is shared;
// callers must not modify it.
func (s *Scene) Entries() []Entry { return s.entries }

// Primitives returns the primitives in insertion order, in the shape the
// snap engine and hit tester consume.
func (s *Scene) Primitives() []primitive.Primitive {
	prims := make([]primitive.Primitive, len(s.entries))
	for i, e := range s.entries {
		prims[i] = e.Primitive
	}
	return prims
}

// BoundingBox returns the box covering every primitive. It is empty for
// an empty scene.
func (s *Scene) BoundingBox() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	for _, e := range s.entries {
		bb.ExpandBox(e.Primitive.BoundingBox())
	}
	return bb
}

// document is the on-disk scene shape: an ordered list of primitive
// records. Ids are runtime identities and are not persisted.
type document struct {
	Primitives []json.RawMessage `json:"primitives"`
}

// MarshalJSON serializes the scene as a primitive record list.
func (s *Scene) MarshalJSON() ([]byte, error) {
	doc := document{Primitives: make([]json.RawMessage, 0, len(s.entries))}
	for _, e := range s.entries {
		rec, err := primitive.Encode(e.Primitive)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", e.Primitive.Kind(), err)
		}
		doc.Primitives = append(doc.Primitives, rec)
	}
	return json.Marshal(doc)
}

// UnmarshalJSON replaces the scene contents with the decoded document,
// assigning fresh ids. A record error aborts the decode and leaves the
// scene unchanged.
func (s *Scene) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("malformed scene document: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Primitives))
	index := make(map[uuid.UUID]int, len(doc.Primitives))
	for i, rec := range doc.Primitives {
		p, err := primitive.Decode(rec)
		if err != nil {
			return fmt.Errorf("primitive %d: %w", i, err)
		}
		id := uuid.New()
		index[id] = len(entries)
		entries = append(entries, Entry{ID: id, Primitive: p})
	}

	s.entries = entries
	s.index = index
	return nil
}
