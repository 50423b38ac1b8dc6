// Package snap resolves a scene-space cursor position to the nearest
// geometric feature: either a discrete snap anchor (Engine) or a whole
// primitive by outline distance (HitTester).
package snap

import (
	"math"

	"github.com/draftlab/draftcad/pkg/primitive"
)

// Config controls which anchors the engine considers.
type Config struct {
	// Enabled is the master switch; a disabled engine never snaps.
	Enabled bool

	// Kinds holds the enabled anchor kinds. A kind missing from the map
	// (or mapped to false) is skipped.
	Kinds map[primitive.SnapKind]bool
}

// DefaultConfig enables every snap kind.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Kinds: map[primitive.SnapKind]bool{
			primitive.SnapEndpoint: true,
			primitive.SnapMidpoint: true,
			primitive.SnapCenter:   true,
			primitive.SnapQuadrant: true,
			primitive.SnapNode:     true,
		},
	}
}

// Engine finds the nearest enabled snap anchor within tolerance.
type Engine struct {
	config Config
}

// NewEngine creates an engine with the given configuration.
func NewEngine(config Config) *Engine {
	return &Engine{config: config}
}

// Config returns the current configuration.
func (e *Engine) Config() Config { return e.config }

// SetConfig replaces the configuration.
func (e *Engine) SetConfig(config Config) { e.config = config }

// SetEnabled toggles the master switch.
func (e *Engine) SetEnabled(enabled bool) { e.config.Enabled = enabled }

// SetKind enables or disables a single snap kind.
func (e *Engine) SetKind(kind primitive.SnapKind, enabled bool) {
	if e.config.Kinds == nil {
		e.config.Kinds = make(map[primitive.SnapKind]bool)
	}
	e.config.Kinds[kind] = enabled
}

// FindSnap returns the enabled snap anchor nearest to (x, y) among all
// primitives, skipping exclude (typically the primitive being edited).
// Only anchors strictly closer than tolerance qualify; on equal distance
// the first candidate in primitive-then-anchor order wins. The second
// return is false when the engine is disabled or nothing is in range.
//
// tolerance is in scene units; callers converting from a screen radius
// divide by their camera zoom first.
func (e *Engine) FindSnap(x, y float64, prims []primitive.Primitive, tolerance float64, exclude primitive.Primitive) (primitive.SnapPoint, bool) {
	if !e.config.Enabled || len(e.config.Kinds) == 0 {
		return primitive.SnapPoint{}, false
	}

	var best primitive.SnapPoint
	found := false
	bestDist := tolerance

	for _, p := range prims {
		if p == exclude {
			continue
		}
		for _, sp := range p.SnapPoints() {
			if !e.config.Kinds[sp.Kind] {
				continue
			}
			if d := math.Hypot(sp.X-x, sp.Y-y); d < bestDist {
				best = sp
				bestDist = d
				found = true
			}
		}
	}
	return best, found
}
