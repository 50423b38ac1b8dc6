package primitive

import (
	"encoding/json"
	"fmt"

	"github.com/draftlab/draftcad/pkg/geom"
)

// Serialization records. The JSON field names below are the wire contract;
// omitted optional fields decode to documented defaults (style
// "solid-primary", num_sides 6, polygon_type "inscribed", rotation 0,
// closed false). Records with an unknown type tag are rejected, and a
// record missing a required field never produces a partially constructed
// primitive.

type pointRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func toPointRecord(p geom.Point) pointRecord {
	return pointRecord{X: p.X, Y: p.Y}
}

func (r pointRecord) point() geom.Point {
	return geom.Point{X: r.X, Y: r.Y}
}

type segmentRecord struct {
	Type  string       `json:"type"`
	Start *pointRecord `json:"start"`
	End   *pointRecord `json:"end"`
	Style string       `json:"style,omitempty"`
}

type circleRecord struct {
	Type   string       `json:"type"`
	Center *pointRecord `json:"center"`
	Radius *float64     `json:"radius"`
	Style  string       `json:"style,omitempty"`
}

type arcRecord struct {
	Type       string       `json:"type"`
	Center     *pointRecord `json:"center"`
	Radius     *float64     `json:"radius"`
	StartAngle *float64     `json:"start_angle"`
	SpanAngle  *float64     `json:"span_angle"`
	Style      string       `json:"style,omitempty"`
}

type rectangleRecord struct {
	Type         string       `json:"type"`
	P1           *pointRecord `json:"p1"`
	P2           *pointRecord `json:"p2"`
	Style        string       `json:"style,omitempty"`
	CornerRadius float64      `json:"corner_radius,omitempty"`
	ChamferSize  float64      `json:"chamfer_size,omitempty"`
}

type ellipseRecord struct {
	Type    string       `json:"type"`
	Center  *pointRecord `json:"center"`
	RadiusX *float64     `json:"radius_x"`
	RadiusY *float64     `json:"radius_y"`
	Style   string       `json:"style,omitempty"`
}

type polygonRecord struct {
	Type        string       `json:"type"`
	Center      *pointRecord `json:"center"`
	Radius      *float64     `json:"radius"`
	NumSides    *int         `json:"num_sides,omitempty"`
	PolygonType string       `json:"polygon_type,omitempty"`
	Rotation    *float64     `json:"rotation,omitempty"`
	Style       string       `json:"style,omitempty"`
}

type splineRecord struct {
	Type          string        `json:"type"`
	ControlPoints []pointRecord `json:"control_points"`
	Closed        bool          `json:"closed,omitempty"`
	Style         string        `json:"style,omitempty"`
}

// Encode serializes a primitive to its tagged JSON record.
func Encode(p Primitive) ([]byte, error) {
	return json.Marshal(recordFor(p))
}

// recordFor builds the wire record for a primitive.
func recordFor(p Primitive) interface{} {
	switch v := p.(type) {
	case *Segment:
		start := toPointRecord(v.Start())
		end := toPointRecord(v.End())
		return segmentRecord{Type: "line", Start: &start, End: &end, Style: v.Style()}
	case *Circle:
		center := toPointRecord(v.Center())
		radius := v.Radius()
		return circleRecord{Type: "circle", Center: &center, Radius: &radius, Style: v.Style()}
	case *Arc:
		center := toPointRecord(v.Center())
		radius := v.Radius()
		start := v.StartAngle()
		span := v.SpanAngle()
		return arcRecord{
			Type:       "arc",
			Center:     &center,
			Radius:     &radius,
			StartAngle: &start,
			SpanAngle:  &span,
			Style:      v.Style(),
		}
	case *Rectangle:
		p1 := toPointRecord(v.Corner1())
		p2 := toPointRecord(v.Corner2())
		return rectangleRecord{
			Type:         "rectangle",
			P1:           &p1,
			P2:           &p2,
			Style:        v.Style(),
			CornerRadius: v.CornerRadius(),
			ChamferSize:  v.ChamferSize(),
		}
	case *Ellipse:
		center := toPointRecord(v.Center())
		rx := v.RadiusX()
		ry := v.RadiusY()
		return ellipseRecord{Type: "ellipse", Center: &center, RadiusX: &rx, RadiusY: &ry, Style: v.Style()}
	case *RegularPolygon:
		center := toPointRecord(v.Center())
		radius := v.Radius()
		sides := v.NumSides()
		rotation := v.Rotation()
		return polygonRecord{
			Type:        "polygon",
			Center:      &center,
			Radius:      &radius,
			NumSides:    &sides,
			PolygonType: v.Variant().String(),
			Rotation:    &rotation,
			Style:       v.Style(),
		}
	case *Spline:
		pts := make([]pointRecord, 0, v.NumPoints())
		for _, cp := range v.Points() {
			pts = append(pts, toPointRecord(cp))
		}
		return splineRecord{Type: "spline", ControlPoints: pts, Closed: v.Closed(), Style: v.Style()}
	default:
		return nil
	}
}

// Decode parses a tagged JSON record back into a primitive. Unknown type
// tags and missing required fields are decode errors.
func Decode(data []byte) (Primitive, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("malformed record: %w", err)
	}

	switch head.Type {
	case "line":
		var rec segmentRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("malformed line record: %w", err)
		}
		if rec.Start == nil || rec.End == nil {
			return nil, fmt.Errorf("line record missing start or end")
		}
		s := NewSegment(rec.Start.point(), rec.End.point())
		s.SetStyle(styleOrDefault(rec.Style))
		return s, nil

	case "circle":
		var rec circleRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("malformed circle record: %w", err)
		}
		if rec.Center == nil || rec.Radius == nil {
			return nil, fmt.Errorf("circle record missing center or radius")
		}
		c := NewCircle(rec.Center.point(), *rec.Radius)
		c.SetStyle(styleOrDefault(rec.Style))
		return c, nil

	case "arc":
		var rec arcRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("malformed arc record: %w", err)
		}
		if rec.Center == nil || rec.Radius == nil || rec.StartAngle == nil || rec.SpanAngle == nil {
			return nil, fmt.Errorf("arc record missing center, radius or angles")
		}
		a := NewArc(rec.Center.point(), *rec.Radius, *rec.StartAngle, *rec.SpanAngle)
		a.SetStyle(styleOrDefault(rec.Style))
		return a, nil

	case "rectangle":
		var rec rectangleRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("malformed rectangle record: %w", err)
		}
		if rec.P1 == nil || rec.P2 == nil {
			return nil, fmt.Errorf("rectangle record missing p1 or p2")
		}
		r := NewRectangle(rec.P1.point(), rec.P2.point())
		r.SetStyle(styleOrDefault(rec.Style))
		if rec.CornerRadius > 0 {
			r.SetCornerRadius(rec.CornerRadius)
		}
		if rec.ChamferSize > 0 {
			r.SetChamferSize(rec.ChamferSize)
		}
		return r, nil

	case "ellipse":
		var rec ellipseRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("malformed ellipse record: %w", err)
		}
		if rec.Center == nil || rec.RadiusX == nil || rec.RadiusY == nil {
			return nil, fmt.Errorf("ellipse record missing center or radii")
		}
		e := NewEllipse(rec.Center.point(), *rec.RadiusX, *rec.RadiusY)
		e.SetStyle(styleOrDefault(rec.Style))
		return e, nil

	case "polygon":
		var rec polygonRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("malformed polygon record: %w", err)
		}
		if rec.Center == nil || rec.Radius == nil {
			return nil, fmt.Errorf("polygon record missing center or radius")
		}
		sides := 6
		if rec.NumSides != nil {
			sides = *rec.NumSides
		}
		rotation := 0.0
		if rec.Rotation != nil {
			rotation = *rec.Rotation
		}
		rp := NewRegularPolygon(rec.Center.point(), *rec.Radius, sides, ParsePolygonVariant(rec.PolygonType), rotation)
		rp.SetStyle(styleOrDefault(rec.Style))
		return rp, nil

	case "spline":
		var rec splineRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("malformed spline record: %w", err)
		}
		pts := make([]geom.Point, len(rec.ControlPoints))
		for i, pr := range rec.ControlPoints {
			pts[i] = pr.point()
		}
		sp, ok := NewSpline(pts, rec.Closed)
		if !ok {
			return nil, fmt.Errorf("spline record needs at least 2 control points, got %d", len(pts))
		}
		sp.SetStyle(styleOrDefault(rec.Style))
		return sp, nil

	default:
		return nil, fmt.Errorf("unknown primitive type %q", head.Type)
	}
}

// styleOrDefault maps an absent style tag to the back-compatible default.
func styleOrDefault(style string) string {
	if style == "" {
		return DefaultStyle
	}
	return style
}
