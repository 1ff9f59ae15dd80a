package term

import "testing"

func TestLiteralEqual_LanguageCaseInsensitive(t *testing.T) {
	a := Literal{LiteralValue: "hello", DatatypeIRI: "http://www.w3.org/2001/XMLSchema#string", Language: "en-US"}
	b := Literal{LiteralValue: "hello", DatatypeIRI: "http://www.w3.org/2001/XMLSchema#string", Language: "EN-us"}
	if !a.Equal(b) {
		t.Fatalf("expected language tags to compare case-insensitively")
	}
}

func TestLiteralEqual_PreservesCasingElsewhere(t *testing.T) {
	a := Literal{LiteralValue: "Hello", Language: "en"}
	b := Literal{LiteralValue: "hello", Language: "en"}
	if a.Equal(b) {
		t.Fatalf("value casing must still matter")
	}
}

func TestLiteralEqual_DatatypeMismatch(t *testing.T) {
	a := Literal{LiteralValue: "1", DatatypeIRI: "http://www.w3.org/2001/XMLSchema#integer"}
	b := Literal{LiteralValue: "1", DatatypeIRI: XSDString}
	if a.Equal(b) {
		t.Fatalf("differing datatypes must not be equal")
	}
}

func TestQuad_ForEachComponent_SkipsPredicate(t *testing.T) {
	q := Quad{
		Subject:   BlankNode{BlankValue: "s"},
		Predicate: BlankNode{BlankValue: "p-should-never-appear"},
		Object:    BlankNode{BlankValue: "o"},
		Graph:     DefaultGraph{},
	}
	var visited []Position
	q.ForEachComponent(func(pos Position, term Term) {
		visited = append(visited, pos)
		if bn, ok := term.(BlankNode); ok && bn.BlankValue == "p-should-never-appear" {
			panic("predicate must never be visited")
		}
	})
	if len(visited) != 3 {
		t.Fatalf("expected 3 visited positions, got %d", len(visited))
	}
}

func TestQuad_WithComponent(t *testing.T) {
	q := Quad{Subject: BlankNode{BlankValue: "a"}, Predicate: IRI{IRIValue: "p"}, Object: IRI{IRIValue: "o"}, Graph: DefaultGraph{}}
	q2 := q.WithComponent(PositionSubject, BlankNode{BlankValue: "c14n0"})
	if q2.Subject.Value() != "c14n0" {
		t.Fatalf("expected subject replaced, got %v", q2.Subject)
	}
	if q.Subject.Value() != "a" {
		t.Fatalf("original quad must be unmodified")
	}
}
