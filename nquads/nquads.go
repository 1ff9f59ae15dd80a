// Package nquads renders terms and quads to canonical N-Quads text.
//
// This is the concrete default for the NQuadsSerializer collaborator named
// in the core canonicalization spec (§6): an IRI renders as <iri>, a
// literal as "value" with a ^^<dt> suffix unless the datatype is xsd:string
// or a language tag is present, a blank node as _:label, and the default
// graph position is omitted entirely.
package nquads

import (
	"fmt"
	"strings"

	"github.com/xdao-rdf/urdna2015/term"
)

// Serializer renders one Quad to its canonical N-Quads line, including the
// terminating "\n".
type Serializer interface {
	SerializeQuad(q term.Quad) (string, error)
}

// Default is the reference Serializer implementation.
type Default struct{}

// SerializeQuad renders q per the N-Quads grammar.
func (Default) SerializeQuad(q term.Quad) (string, error) {
	var sb strings.Builder
	if err := writeTerm(&sb, q.Subject); err != nil {
		return "", fmt.Errorf("subject: %w", err)
	}
	sb.WriteByte(' ')
	if err := writeTerm(&sb, q.Predicate); err != nil {
		return "", fmt.Errorf("predicate: %w", err)
	}
	sb.WriteByte(' ')
	if err := writeTerm(&sb, q.Object); err != nil {
		return "", fmt.Errorf("object: %w", err)
	}
	if _, isDefault := q.Graph.(term.DefaultGraph); !isDefault && q.Graph != nil {
		sb.WriteByte(' ')
		if err := writeTerm(&sb, q.Graph); err != nil {
			return "", fmt.Errorf("graph: %w", err)
		}
	}
	sb.WriteString(" .\n")
	return sb.String(), nil
}

func writeTerm(sb *strings.Builder, t term.Term) error {
	switch v := t.(type) {
	case term.IRI:
		sb.WriteByte('<')
		sb.WriteString(v.IRIValue)
		sb.WriteByte('>')
		return nil
	case term.BlankNode:
		sb.WriteString("_:")
		sb.WriteString(v.BlankValue)
		return nil
	case term.Literal:
		sb.WriteByte('"')
		sb.WriteString(escapeLiteral(v.LiteralValue))
		sb.WriteByte('"')
		switch {
		case v.Language != "":
			sb.WriteByte('@')
			sb.WriteString(v.Language)
		case v.DatatypeIRI != "" && v.DatatypeIRI != term.XSDString:
			sb.WriteString("^^<")
			sb.WriteString(v.DatatypeIRI)
			sb.WriteByte('>')
		}
		return nil
	case term.DefaultGraph:
		return fmt.Errorf("default graph has no lexical representation")
	default:
		return fmt.Errorf("unrenderable term type %T", t)
	}
}

// escapeLiteral applies the N-Quads string escapes.
func escapeLiteral(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
