// Package sketch parses and evaluates a small command script for building
// scenes from text: one drawing command per line, in the spirit of a CAD
// command console.
package sketch

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
)

// Parser parses sketch scripts.
type Parser struct {
	parser *participle.Parser[Script]
}

// NewParser creates a sketch script parser.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Script](
		participle.Lexer(sketchLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a script from a reader.
func (p *Parser) Parse(r io.Reader) (*Script, error) {
	script, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return script, nil
}

// ParseString parses a script from a string.
func (p *Parser) ParseString(input string) (*Script, error) {
	script, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return script, nil
}
