package kicadio

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/draftlab/draftcad/pkg/geom"
	"github.com/draftlab/draftcad/pkg/primitive"
	"github.com/draftlab/draftcad/pkg/scene"
)

// ellipseExportSegments is the tessellation density for shapes KiCad has
// no native item for.
const ellipseExportSegments = 64

// Export writes the scene as a minimal KiCad board file containing one
// graphic item per primitive on the given layer. Segments, circles, arcs
// and rectangles map natively; polygons export as gr_poly, ellipses and
// splines as tessellated gr_poly outlines.
func Export(w io.Writer, s *scene.Scene, layer string) error {
	var b strings.Builder
	b.WriteString("(kicad_pcb\n")
	b.WriteString("  (version 20240108)\n")
	b.WriteString("  (generator \"dcad\")\n")

	for _, p := range s.Primitives() {
		if err := writeItem(&b, p, layer); err != nil {
			return err
		}
	}

	b.WriteString(")\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeItem(b *strings.Builder, p primitive.Primitive, layer string) error {
	switch v := p.(type) {
	case *primitive.Segment:
		fmt.Fprintf(b, "  (gr_line (start %s) (end %s) %s (layer %q))\n",
			coords(v.Start()), coords(v.End()), stroke(v.Style()), layer)

	case *primitive.Circle:
		// Center plus a point on the circumference.
		onCircle := geom.Point{X: v.Center().X + v.Radius(), Y: v.Center().Y}
		fmt.Fprintf(b, "  (gr_circle (center %s) (end %s) %s (fill none) (layer %q))\n",
			coords(v.Center()), coords(onCircle), stroke(v.Style()), layer)

	case *primitive.Arc:
		fmt.Fprintf(b, "  (gr_arc (start %s) (mid %s) (end %s) %s (layer %q))\n",
			coords(v.StartPoint()), coords(v.MidPoint()), coords(v.EndPoint()),
			stroke(v.Style()), layer)

	case *primitive.Rectangle:
		start := geom.Point{X: v.Left(), Y: v.Bottom()}
		end := geom.Point{X: v.Right(), Y: v.Top()}
		fmt.Fprintf(b, "  (gr_rect (start %s) (end %s) %s (fill none) (layer %q))\n",
			coords(start), coords(end), stroke(v.Style()), layer)

	case *primitive.RegularPolygon:
		writePoly(b, v.Vertices(), v.Style(), layer)

	case *primitive.Ellipse:
		pts := make([]geom.Point, ellipseExportSegments)
		for i := range pts {
			pts[i] = v.PointAt(2 * math.Pi * float64(i) / ellipseExportSegments)
		}
		writePoly(b, pts, v.Style(), layer)

	case *primitive.Spline:
		pts := v.CurvePoints(16)
		if v.Closed() {
			// The tessellation repeats the first point; gr_poly closes itself.
			pts = pts[:len(pts)-1]
		}
		writePoly(b, pts, v.Style(), layer)

	default:
		return fmt.Errorf("cannot export %s", p.Kind())
	}
	return nil
}

func writePoly(b *strings.Builder, pts []geom.Point, style, layer string) {
	b.WriteString("  (gr_poly (pts")
	for _, p := range pts {
		fmt.Fprintf(b, " (xy %s)", coords(p))
	}
	fmt.Fprintf(b, ") %s (fill none) (layer %q))\n", stroke(style), layer)
}

func coords(p geom.Point) string {
	return num(p.X) + " " + num(p.Y)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// stroke maps a style name onto a KiCad stroke node, the inverse of
// styleFromStroke.
func stroke(style string) string {
	t := "solid"
	if strings.Contains(style, "dashed") {
		t = "dash"
	}
	return fmt.Sprintf("(stroke (width 0.15) (type %s))", t)
}
