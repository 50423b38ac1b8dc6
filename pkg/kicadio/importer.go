package kicadio

import (
	"fmt"
	"io"

	"github.com/draftlab/draftcad/pkg/geom"
	"github.com/draftlab/draftcad/pkg/primitive"
	"github.com/draftlab/draftcad/pkg/scene"
)

// Import parses a KiCad board file and builds a scene from its graphic
// items. gr_line, gr_circle, gr_arc and gr_rect map to their primitive
// counterparts; gr_poly outlines become one segment per edge. Everything
// else in the file (nets, footprints, text) is skipped.
func Import(r io.Reader) (*scene.Scene, error) {
	roots, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing board file: %w", err)
	}

	s := scene.New()
	for _, root := range roots {
		if root.IsAtom() {
			continue
		}
		if err := importGraphics(root, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func importGraphics(root *Node, s *scene.Scene) error {
	for _, node := range root.Children("gr_line") {
		start, err := position(node, "start")
		if err != nil {
			return fmt.Errorf("gr_line: %w", err)
		}
		end, err := position(node, "end")
		if err != nil {
			return fmt.Errorf("gr_line: %w", err)
		}
		add(s, primitive.NewSegment(start, end), node)
	}

	// KiCad circles are center plus a point on the circumference.
	for _, node := range root.Children("gr_circle") {
		center, err := position(node, "center")
		if err != nil {
			return fmt.Errorf("gr_circle: %w", err)
		}
		end, err := position(node, "end")
		if err != nil {
			return fmt.Errorf("gr_circle: %w", err)
		}
		add(s, primitive.NewCircle(center, center.DistanceTo(end)), node)
	}

	for _, node := range root.Children("gr_arc") {
		start, err := position(node, "start")
		if err != nil {
			return fmt.Errorf("gr_arc: %w", err)
		}
		mid, err := position(node, "mid")
		if err != nil {
			return fmt.Errorf("gr_arc: %w", err)
		}
		end, err := position(node, "end")
		if err != nil {
			return fmt.Errorf("gr_arc: %w", err)
		}
		a, ok := primitive.NewArcFromThreePoints(start, mid, end)
		if !ok {
			return fmt.Errorf("gr_arc: start, mid and end are collinear")
		}
		add(s, a, node)
	}

	for _, node := range root.Children("gr_rect") {
		start, err := position(node, "start")
		if err != nil {
			return fmt.Errorf("gr_rect: %w", err)
		}
		end, err := position(node, "end")
		if err != nil {
			return fmt.Errorf("gr_rect: %w", err)
		}
		add(s, primitive.NewRectangle(start, end), node)
	}

	for _, node := range root.Children("gr_poly") {
		pts, err := polyPoints(node)
		if err != nil {
			return fmt.Errorf("gr_poly: %w", err)
		}
		for i := range pts {
			add(s, primitive.NewSegment(pts[i], pts[(i+1)%len(pts)]), node)
		}
	}

	return nil
}

// position reads a (key x y) child as a point.
func position(node *Node, key string) (geom.Point, error) {
	child, ok := node.Child(key)
	if !ok {
		return geom.Point{}, fmt.Errorf("missing (%s ...)", key)
	}
	x, err := child.Float(1)
	if err != nil {
		return geom.Point{}, err
	}
	y, err := child.Float(2)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: x, Y: y}, nil
}

// polyPoints reads the (pts (xy ...) ...) list of a gr_poly.
func polyPoints(node *Node) ([]geom.Point, error) {
	ptsNode, ok := node.Child("pts")
	if !ok {
		return nil, fmt.Errorf("missing (pts ...)")
	}
	xyNodes := ptsNode.Children("xy")
	if len(xyNodes) < 2 {
		return nil, fmt.Errorf("needs at least 2 points, got %d", len(xyNodes))
	}
	pts := make([]geom.Point, len(xyNodes))
	for i, xy := range xyNodes {
		x, err := xy.Float(1)
		if err != nil {
			return nil, err
		}
		y, err := xy.Float(2)
		if err != nil {
			return nil, err
		}
		pts[i] = geom.Point{X: x, Y: y}
	}
	return pts, nil
}

// add stamps a style derived from the item's stroke and stores it.
func add(s *scene.Scene, p primitive.Primitive, node *Node) {
	p.SetStyle(styleFromStroke(node))
	s.Add(p)
}

// styleFromStroke maps a KiCad stroke type onto a style name. Solid and
// unspecified strokes keep the default.
func styleFromStroke(node *Node) string {
	stroke, ok := node.Child("stroke")
	if !ok {
		return primitive.DefaultStyle
	}
	typeNode, ok := stroke.Child("type")
	if !ok {
		return primitive.DefaultStyle
	}
	t, err := typeNode.Str(1)
	if err != nil || t == "solid" || t == "default" {
		return primitive.DefaultStyle
	}
	return "dashed-primary"
}
