// Package nqparse provides a minimal N-Quads reader for the CLI and
// tests. The canonicalization core only consumes N-Quads through
// term.Dataset, never through this package directly; nqparse is one
// reader among possible others, not part of the core's public contract.
package nqparse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xdao-rdf/urdna2015/term"
)

var lineRe = regexp.MustCompile(
	`^\s*(<[^>]*>|_:[^\s]+)\s+(<[^>]*>)\s+(<[^>]*>|_:[^\s]+|"(?:[^"\\]|\\.)*"(?:\^\^<[^>]*>|@[A-Za-z-]+)?)\s*(<[^>]*>|_:[^\s]+)?\s*\.\s*$`,
)

// Parse reads an N-Quads document and returns its quads as a Dataset.
// Blank lines and lines starting with "#" are ignored.
func Parse(doc string) (term.Dataset, error) {
	var ds term.Dataset
	for lineNo, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("nqparse: line %d: malformed N-Quads statement", lineNo+1)
		}
		subj, err := parseSubjectOrGraph(m[1])
		if err != nil {
			return nil, fmt.Errorf("nqparse: line %d: subject: %w", lineNo+1, err)
		}
		pred, err := parseIRI(m[2])
		if err != nil {
			return nil, fmt.Errorf("nqparse: line %d: predicate: %w", lineNo+1, err)
		}
		obj, err := parseObject(m[3])
		if err != nil {
			return nil, fmt.Errorf("nqparse: line %d: object: %w", lineNo+1, err)
		}
		graph := term.Term(term.DefaultGraph{})
		if m[4] != "" {
			graph, err = parseSubjectOrGraph(m[4])
			if err != nil {
				return nil, fmt.Errorf("nqparse: line %d: graph: %w", lineNo+1, err)
			}
		}
		ds = append(ds, term.Quad{Subject: subj, Predicate: pred, Object: obj, Graph: graph})
	}
	return ds, nil
}

func parseIRI(tok string) (term.IRI, error) {
	if len(tok) < 2 || tok[0] != '<' || tok[len(tok)-1] != '>' {
		return term.IRI{}, fmt.Errorf("expected IRI, got %q", tok)
	}
	return term.IRI{IRIValue: tok[1 : len(tok)-1]}, nil
}

func parseSubjectOrGraph(tok string) (term.Term, error) {
	if strings.HasPrefix(tok, "_:") {
		return term.BlankNode{BlankValue: tok[2:]}, nil
	}
	return parseIRI(tok)
}

var litRe = regexp.MustCompile(`^"((?:[^"\\]|\\.)*)"(?:\^\^<([^>]*)>|@([A-Za-z-]+))?$`)

func parseObject(tok string) (term.Term, error) {
	if strings.HasPrefix(tok, "_:") {
		return term.BlankNode{BlankValue: tok[2:]}, nil
	}
	if strings.HasPrefix(tok, "<") {
		return parseIRI(tok)
	}
	m := litRe.FindStringSubmatch(tok)
	if m == nil {
		return nil, fmt.Errorf("expected literal, IRI, or blank node, got %q", tok)
	}
	value := unescape(m[1])
	datatype := m[2]
	lang := m[3]
	if datatype == "" && lang == "" {
		datatype = term.XSDString
	}
	return term.Literal{LiteralValue: value, DatatypeIRI: datatype, Language: lang}, nil
}

func unescape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			sb.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
