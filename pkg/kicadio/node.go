// Package kicadio reads and writes the graphic items of KiCad board files
// (gr_line, gr_circle, gr_arc, gr_rect, gr_poly), mapping them to and from
// scene primitives. Coordinates pass through verbatim; axis orientation is
// the caller's concern.
package kicadio

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Node is a parsed s-expression: either an atom or a list. KiCad lists
// start with a keyword atom, e.g. (start 1.0 2.0).
type Node struct {
	// Atom holds the value for atom nodes; empty for lists.
	Atom string

	// Items holds the list elements; nil for atoms.
	Items []*Node

	atom bool
}

// IsAtom reports whether the node is an atom.
func (n *Node) IsAtom() bool { return n.atom }

// Key returns a list's leading keyword, or "" for atoms and empty lists.
func (n *Node) Key() string {
	if n.atom || len(n.Items) == 0 || !n.Items[0].atom {
		return ""
	}
	return n.Items[0].Atom
}

// Child returns the first sub-list whose key matches.
func (n *Node) Child(key string) (*Node, bool) {
	for _, item := range n.Items {
		if !item.atom && item.Key() == key {
			return item, true
		}
	}
	return nil, false
}

// Children returns every sub-list whose key matches, in order.
func (n *Node) Children(key string) []*Node {
	var out []*Node
	for _, item := range n.Items {
		if !item.atom && item.Key() == key {
			out = append(out, item)
		}
	}
	return out
}

// Str returns the atom at index (0 is the key) as a string.
func (n *Node) Str(index int) (string, error) {
	if n.atom {
		return "", fmt.Errorf("expected list, got atom %q", n.Atom)
	}
	if index < 0 || index >= len(n.Items) {
		return "", fmt.Errorf("index %d out of range in (%s ...)", index, n.Key())
	}
	item := n.Items[index]
	if !item.atom {
		return "", fmt.Errorf("expected atom at index %d in (%s ...)", index, n.Key())
	}
	return item.Atom, nil
}

// Float returns the atom at index parsed as a float.
func (n *Node) Float(index int) (float64, error) {
	s, err := n.Str(index)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q in (%s ...): %w", s, n.Key(), err)
	}
	return v, nil
}

// String renders the node back to s-expression text.
func (n *Node) String() string {
	if n.atom {
		return n.Atom
	}
	parts := make([]string, len(n.Items))
	for i, item := range n.Items {
		parts[i] = item.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Parse reads every top-level s-expression from r.
func Parse(r io.Reader) ([]*Node, error) {
	lex := newLexer(r)
	var out []*Node
	for {
		tok, err := lex.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenEOF:
			return out, nil
		case tokenOpen:
			node, err := parseList(lex)
			if err != nil {
				return nil, err
			}
			out = append(out, node)
		case tokenAtom:
			out = append(out, &Node{Atom: tok.value, atom: true})
		default:
			return nil, fmt.Errorf("unexpected ')'")
		}
	}
}

// ParseString parses s-expressions from a string.
func ParseString(s string) ([]*Node, error) {
	return Parse(strings.NewReader(s))
}

// parseList consumes list elements after an opening paren.
func parseList(lex *lexer) (*Node, error) {
	node := &Node{}
	for {
		tok, err := lex.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenClose:
			return node, nil
		case tokenEOF:
			return nil, fmt.Errorf("unterminated list")
		case tokenOpen:
			child, err := parseList(lex)
			if err != nil {
				return nil, err
			}
			node.Items = append(node.Items, child)
		case tokenAtom:
			node.Items = append(node.Items, &Node{Atom: tok.value, atom: true})
		}
	}
}
