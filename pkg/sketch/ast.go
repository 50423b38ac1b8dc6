package sketch

// Script is a parsed sketch: a newline-separated command list.
type Script struct {
	Statements []*Statement `parser:"Newline* ( @@ Newline* )*"`
}

// Statement is a single drawing or state command.
type Statement struct {
	Line    *LineCmd    `parser:"  @@"`
	Circle  *CircleCmd  `parser:"| @@"`
	Arc     *ArcCmd     `parser:"| @@"`
	Rect    *RectCmd    `parser:"| @@"`
	Ellipse *EllipseCmd `parser:"| @@"`
	Polygon *PolygonCmd `parser:"| @@"`
	Spline  *SplineCmd  `parser:"| @@"`
	Style   *StyleCmd   `parser:"| @@"`
}

// Coord is an x,y pair.
// Example: 10,-2.5
type Coord struct {
	X float64 `parser:"@Number"`
	Y float64 `parser:"Comma @Number"`
}

// LineCmd draws a segment between two points.
// Example: line 0,0 10,0
type LineCmd struct {
	Start *Coord `parser:"KwLine @@"`
	End   *Coord `parser:"@@"`
}

// CircleCmd draws a circle from center and radius, from two diameter
// endpoints, or through three points.
// Examples:
//
//	circle 5,5 r 3
//	circle 0,0 6,8
//	circle 0,0 4,0 0,3
type CircleCmd struct {
	First  *Coord   `parser:"KwCircle @@"`
	Radius *float64 `parser:"( KwRadius @Number"`
	P2     *Coord   `parser:"| @@"`
	P3     *Coord   `parser:"  @@? )"`
}

// ArcCmd draws an arc from center, radius and angles, or through three
// points (start, on-arc, end).
// Examples:
//
//	arc 0,0 r 5 from 0 to 90 shortest
//	arc 5,0 0,5 -5,0
type ArcCmd struct {
	First    *Coord   `parser:"KwArc @@"`
	Radius   *float64 `parser:"( KwRadius @Number"`
	From     float64  `parser:"  KwFrom @Number"`
	To       float64  `parser:"  KwTo @Number"`
	Shortest bool     `parser:"  @KwShortest?"`
	P2       *Coord   `parser:"| @@"`
	P3       *Coord   `parser:"  @@ )"`
}

// RectCmd draws a rectangle from two opposite corners.
// Example: rect 0,0 10,6
type RectCmd struct {
	P1 *Coord `parser:"KwRect @@"`
	P2 *Coord `parser:"@@"`
}

// EllipseCmd draws an axis-aligned ellipse.
// Example: ellipse 2,2 rx 5 ry 3
type EllipseCmd struct {
	Center  *Coord  `parser:"KwEllipse @@"`
	RadiusX float64 `parser:"KwRx @Number"`
	RadiusY float64 `parser:"KwRy @Number"`
}

// PolygonCmd draws a regular polygon.
// Example: polygon 0,0 r 10 sides 6 circumscribed rot 30
type PolygonCmd struct {
	Center   *Coord   `parser:"KwPolygon @@"`
	Radius   float64  `parser:"KwRadius @Number"`
	Sides    int      `parser:"KwSides @Number"`
	Variant  string   `parser:"@( KwInscribed | KwCircumscribed )?"`
	Rotation *float64 `parser:"( KwRot @Number )?"`
}

// SplineCmd draws a spline through two or more control points.
// Example: spline 0,0 5,5 10,0 closed
type SplineCmd struct {
	Points []*Coord `parser:"KwSpline @@ @@+"`
	Closed bool     `parser:"@KwClosed?"`
}

// StyleCmd sets the style applied to subsequent primitives.
// Example: style dashed-secondary
type StyleCmd struct {
	Name string `parser:"KwStyle @Ident"`
}
