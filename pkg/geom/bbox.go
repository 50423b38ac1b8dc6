package geom

import "math"

// BoundingBox is an axis-aligned rectangle spanned by its Min and Max
// corners. Build one with NewBoundingBox and grow it with Expand; a box
// whose corners are still inverted is empty.
type BoundingBox struct {
	Min Point
	Max Point
}

// NewBoundingBox returns an empty box with inverted sentinel corners, so
// the first Expand snaps both corners onto the given point.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point{X: 1e9, Y: 1e9},
		Max: Point{X: -1e9, Y: -1e9},
	}
}

// IsEmpty reports whether the box has never been expanded.
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand grows the box just enough to include p.
func (bb *BoundingBox) Expand(p Point) {
	bb.Min.X = math.Min(bb.Min.X, p.X)
	bb.Min.Y = math.Min(bb.Min.Y, p.Y)
	bb.Max.X = math.Max(bb.Max.X, p.X)
	bb.Max.Y = math.Max(bb.Max.Y, p.Y)
}

// ExpandBox grows the box to include other; an empty other is a no-op.
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Contains reports whether p lies within the box, edges included.
func (bb BoundingBox) Contains(p Point) bool {
	return p.X >= bb.Min.X && p.X <= bb.Max.X &&
		p.Y >= bb.Min.Y && p.Y <= bb.Max.Y
}

// Intersects reports whether the two boxes overlap, edge contact included.
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	return bb.Min.X <= other.Max.X && bb.Max.X >= other.Min.X &&
		bb.Min.Y <= other.Max.Y && bb.Max.Y >= other.Min.Y
}

// Width returns the x extent of the box.
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the y extent of the box.
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the midpoint of the box.
func (bb BoundingBox) Center() Point {
	return bb.Min.Midpoint(bb.Max)
}
