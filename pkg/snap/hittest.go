package snap

import (
	"github.com/draftlab/draftcad/pkg/primitive"
)

// HitTester resolves a cursor position to the nearest primitive by
// outline distance. Hover highlighting and click selection are the same
// query; callers differ only in what they do with the result.
type HitTester struct {
	// Tolerance is the pick radius in scene units.
	Tolerance float64
}

// NewHitTester creates a hit tester with the given pick tolerance.
func NewHitTester(tolerance float64) *HitTester {
	return &HitTester{Tolerance: tolerance}
}

// HitTest returns the primitive whose outline is nearest to (x, y),
// strictly within the tolerance. Equal distances resolve to the first
// primitive in iteration order. Returns nil when nothing is in range.
func (h *HitTester) HitTest(x, y float64, prims []primitive.Primitive) primitive.Primitive {
	var best primitive.Primitive
	bestDist := h.Tolerance
	for _, p := range prims {
		if d := p.DistanceTo(x, y); d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}
