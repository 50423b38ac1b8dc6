package sketch

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// sketchLexer defines the lexical structure of sketch scripts: one drawing
// command per line, # comments, case-insensitive keywords.
var sketchLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Newlines terminate statements and are kept; other whitespace is elided.
	{Name: "Newline", Pattern: `[\r\n]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},

	// Command keywords
	{Name: "KwLine", Pattern: `(?i)\bline\b`},
	{Name: "KwCircle", Pattern: `(?i)\bcircle\b`},
	{Name: "KwArc", Pattern: `(?i)\barc\b`},
	{Name: "KwRect", Pattern: `(?i)\brect(angle)?\b`},
	{Name: "KwEllipse", Pattern: `(?i)\bellipse\b`},
	{Name: "KwPolygon", Pattern: `(?i)\bpolygon\b`},
	{Name: "KwSpline", Pattern: `(?i)\bspline\b`},
	{Name: "KwStyle", Pattern: `(?i)\bstyle\b`},

	// Parameter keywords
	{Name: "KwRadius", Pattern: `(?i)\br\b`},
	{Name: "KwRx", Pattern: `(?i)\brx\b`},
	{Name: "KwRy", Pattern: `(?i)\bry\b`},
	{Name: "KwFrom", Pattern: `(?i)\bfrom\b`},
	{Name: "KwTo", Pattern: `(?i)\bto\b`},
	{Name: "KwShortest", Pattern: `(?i)\bshortest\b`},
	{Name: "KwSides", Pattern: `(?i)\bsides\b`},
	{Name: "KwRot", Pattern: `(?i)\brot\b`},
	{Name: "KwClosed", Pattern: `(?i)\bclosed\b`},
	{Name: "KwInscribed", Pattern: `(?i)\binscribed\b`},
	{Name: "KwCircumscribed", Pattern: `(?i)\bcircumscribed\b`},

	// Literals
	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?([eE][-+]?[0-9]+)?`},

	// Identifiers (style names; must come after keywords)
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_-]*`},

	{Name: "Comma", Pattern: `,`},
})
