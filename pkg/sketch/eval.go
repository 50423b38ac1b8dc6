package sketch

import (
	"fmt"
	"strings"

	"github.com/draftlab/draftcad/pkg/geom"
	"github.com/draftlab/draftcad/pkg/primitive"
	"github.com/draftlab/draftcad/pkg/scene"
)

// Evaluator builds primitives from parsed statements into a scene. The
// style command changes the style stamped onto everything drawn after it.
type Evaluator struct {
	scene *scene.Scene
	style string
}

// NewEvaluator creates an evaluator targeting the given scene.
func NewEvaluator(s *scene.Scene) *Evaluator {
	return &Evaluator{scene: s, style: primitive.DefaultStyle}
}

// Run parses and evaluates a whole script into a fresh scene.
func Run(input string) (*scene.Scene, error) {
	parser, err := NewParser()
	if err != nil {
		return nil, err
	}
	script, err := parser.ParseString(input)
	if err != nil {
		return nil, err
	}

	s := scene.New()
	ev := NewEvaluator(s)
	if err := ev.EvalScript(script); err != nil {
		return nil, err
	}
	return s, nil
}

// EvalScript evaluates every statement in order, stopping at the first
// failure.
func (ev *Evaluator) EvalScript(script *Script) error {
	for i, st := range script.Statements {
		if err := ev.Eval(st); err != nil {
			return fmt.Errorf("statement %d: %w", i+1, err)
		}
	}
	return nil
}

// Eval evaluates a single statement.
func (ev *Evaluator) Eval(st *Statement) error {
	switch {
	case st.Line != nil:
		ev.add(primitive.NewSegment(st.Line.Start.point(), st.Line.End.point()))
	case st.Circle != nil:
		return ev.evalCircle(st.Circle)
	case st.Arc != nil:
		return ev.evalArc(st.Arc)
	case st.Rect != nil:
		ev.add(primitive.NewRectangle(st.Rect.P1.point(), st.Rect.P2.point()))
	case st.Ellipse != nil:
		ev.add(primitive.NewEllipse(st.Ellipse.Center.point(), st.Ellipse.RadiusX, st.Ellipse.RadiusY))
	case st.Polygon != nil:
		rotation := 0.0
		if st.Polygon.Rotation != nil {
			rotation = *st.Polygon.Rotation
		}
		variant := primitive.ParsePolygonVariant(strings.ToLower(st.Polygon.Variant))
		ev.add(primitive.NewRegularPolygon(
			st.Polygon.Center.point(), st.Polygon.Radius, st.Polygon.Sides, variant, rotation))
	case st.Spline != nil:
		pts := make([]geom.Point, len(st.Spline.Points))
		for i, c := range st.Spline.Points {
			pts[i] = c.point()
		}
		sp, ok := primitive.NewSpline(pts, st.Spline.Closed)
		if !ok {
			return fmt.Errorf("spline needs at least 2 points")
		}
		ev.add(sp)
	case st.Style != nil:
		ev.style = st.Style.Name
	default:
		return fmt.Errorf("empty statement")
	}
	return nil
}

func (ev *Evaluator) evalCircle(cmd *CircleCmd) error {
	switch {
	case cmd.Radius != nil:
		ev.add(primitive.NewCircle(cmd.First.point(), *cmd.Radius))
	case cmd.P3 != nil:
		c, ok := primitive.NewCircleFromThreePoints(cmd.First.point(), cmd.P2.point(), cmd.P3.point())
		if !ok {
			return fmt.Errorf("circle through collinear points")
		}
		ev.add(c)
	default:
		ev.add(primitive.NewCircleFromTwoPoints(cmd.First.point(), cmd.P2.point()))
	}
	return nil
}

func (ev *Evaluator) evalArc(cmd *ArcCmd) error {
	if cmd.Radius != nil {
		ev.add(primitive.NewArcFromAngles(cmd.First.point(), *cmd.Radius, cmd.From, cmd.To, cmd.Shortest))
		return nil
	}
	a, ok := primitive.NewArcFromThreePoints(cmd.First.point(), cmd.P2.point(), cmd.P3.point())
	if !ok {
		return fmt.Errorf("arc through collinear points")
	}
	ev.add(a)
	return nil
}

func (ev *Evaluator) add(p primitive.Primitive) {
	p.SetStyle(ev.style)
	ev.scene.Add(p)
}

func (c *Coord) point() geom.Point {
	return geom.Point{X: c.X, Y: c.Y}
}
