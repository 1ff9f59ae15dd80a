package canon

import (
	"math/rand"
	"testing"

	"github.com/xdao-rdf/urdna2015/term"
)

func sampleDataset() term.Dataset {
	return term.Dataset{
		{Subject: term.BlankNode{BlankValue: "n1"}, Predicate: term.IRI{IRIValue: "http://ex/knows"}, Object: term.BlankNode{BlankValue: "n2"}, Graph: term.DefaultGraph{}},
		{Subject: term.BlankNode{BlankValue: "n2"}, Predicate: term.IRI{IRIValue: "http://ex/knows"}, Object: term.BlankNode{BlankValue: "n3"}, Graph: term.DefaultGraph{}},
		{Subject: term.BlankNode{BlankValue: "n3"}, Predicate: term.IRI{IRIValue: "http://ex/knows"}, Object: term.BlankNode{BlankValue: "n1"}, Graph: term.DefaultGraph{}},
		{Subject: term.BlankNode{BlankValue: "n1"}, Predicate: term.IRI{IRIValue: "http://ex/name"}, Object: term.Literal{LiteralValue: "Alice", DatatypeIRI: term.XSDString}, Graph: term.DefaultGraph{}},
	}
}

func TestProperty_Determinism(t *testing.T) {
	ds := sampleDataset()
	a := mustCanonicalize(t, ds, Options{})
	b := mustCanonicalize(t, ds, Options{})
	if a != b {
		t.Fatalf("expected byte-identical output across runs")
	}
}

func TestProperty_InputOrderInvariance(t *testing.T) {
	ds := sampleDataset()
	want := mustCanonicalize(t, ds, Options{})

	shuffled := append(term.Dataset(nil), ds...)
	rng := rand.New(rand.NewSource(42))
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	got := mustCanonicalize(t, shuffled, Options{})
	if got != want {
		t.Fatalf("expected input-order invariance:\n got: %q\nwant: %q", got, want)
	}
}

// relabel applies an injective renaming of blank-node IDs to a copy of ds.
func relabel(ds term.Dataset, rename map[string]string) term.Dataset {
	out := make(term.Dataset, len(ds))
	apply := func(t term.Term) term.Term {
		bn, ok := t.(term.BlankNode)
		if !ok {
			return t
		}
		if renamed, ok := rename[bn.BlankValue]; ok {
			return term.BlankNode{BlankValue: renamed}
		}
		return t
	}
	for i, q := range ds {
		out[i] = term.Quad{
			Subject:   apply(q.Subject),
			Predicate: q.Predicate,
			Object:    apply(q.Object),
			Graph:     apply(q.Graph),
		}
	}
	return out
}

func TestProperty_BlankNodeRelabelInvariance(t *testing.T) {
	ds := sampleDataset()
	want := mustCanonicalize(t, ds, Options{})

	renamed := relabel(ds, map[string]string{"n1": "zeta", "n2": "alpha", "n3": "mid"})
	got := mustCanonicalize(t, renamed, Options{})
	if got != want {
		t.Fatalf("expected blank-node-relabel invariance:\n got: %q\nwant: %q", got, want)
	}
}

func TestProperty_CanonicalLabelClosure(t *testing.T) {
	ds := sampleDataset()
	out := mustCanonicalize(t, ds, Options{})

	seen := make(map[int]bool)
	for _, line := range splitLines(out) {
		for _, label := range extractC14NLabels(line) {
			seen[label] = true
		}
	}
	for i := 0; i < len(seen); i++ {
		if !seen[i] {
			t.Fatalf("expected contiguous indices 0..%d, missing %d", len(seen)-1, i)
		}
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}

func extractC14NLabels(line string) []int {
	var out []int
	for i := 0; i+len("_:c14n") <= len(line); i++ {
		if line[i:i+len("_:c14n")] != "_:c14n" {
			continue
		}
		j := i + len("_:c14n")
		n := 0
		hasDigit := false
		for j < len(line) && line[j] >= '0' && line[j] <= '9' {
			n = n*10 + int(line[j]-'0')
			j++
			hasDigit = true
		}
		if hasDigit {
			out = append(out, n)
		}
	}
	return out
}
