package dsetcid

import (
	"bytes"
	"testing"
)

func TestCIDv1RawSHA256_Deterministic(t *testing.T) {
	data := []byte("_:c14n0 <http://ex/p> \"v\" .\n")
	a := CIDv1RawSHA256(data)
	b := CIDv1RawSHA256(data)
	if a == "" {
		t.Fatalf("expected non-empty CID")
	}
	if a != b {
		t.Fatalf("expected deterministic CID, got %q then %q", a, b)
	}
}

func TestCIDv1RawSHA256_DistinctForDifferentInput(t *testing.T) {
	a := CIDv1RawSHA256([]byte("one"))
	b := CIDv1RawSHA256([]byte("two"))
	if a == b {
		t.Fatalf("expected distinct CIDs for distinct input, both %q", a)
	}
}

func TestCIDv1RawSHA256CID_MatchesStringForm(t *testing.T) {
	data := []byte("some canonical bytes")
	s := CIDv1RawSHA256(data)
	c, err := CIDv1RawSHA256CID(data)
	if err != nil {
		t.Fatalf("CIDv1RawSHA256CID: %v", err)
	}
	if c.String() != s {
		t.Fatalf("string and typed forms disagree: %q vs %q", s, c.String())
	}
}

func TestCIDv1RawSHA256_EmptyInput(t *testing.T) {
	if got := CIDv1RawSHA256(nil); got == "" {
		t.Fatalf("expected a CID even for empty input")
	}
}

func TestCIDv1RawSHA256FromReader_MatchesBufferedForm(t *testing.T) {
	data := []byte("_:c14n0 <http://ex/p> \"v\" .\n_:c14n1 <http://ex/q> \"w\" .\n")
	want := CIDv1RawSHA256(data)
	got, err := CIDv1RawSHA256FromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("CIDv1RawSHA256FromReader: %v", err)
	}
	if got != want {
		t.Fatalf("reader and buffered forms disagree: %q vs %q", got, want)
	}
}
