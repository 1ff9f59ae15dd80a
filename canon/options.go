package canon

import (
	"fmt"

	"github.com/xdao-rdf/urdna2015/digest"
	"github.com/xdao-rdf/urdna2015/nquads"
)

// Algorithm selects a canonicalization variant. Only URDNA2015 is
// implemented by this core.
type Algorithm string

const URDNA2015 Algorithm = "URDNA2015"

// Options controls one canonicalization run.
//
// Default behavior when the zero Options is used except for Algorithm is
// SHA-256 hashing via the Default N-Quads serializer and an unbounded
// MaxDeepIterations.
type Options struct {
	Algorithm Algorithm

	// CreateMessageDigest overrides the default SHA-256 factory. A
	// differing algorithm produces a different canonical form; this is by
	// design, e.g. for HMAC-keyed canonicalization.
	CreateMessageDigest digest.Factory

	// Serializer overrides the default N-Quads serializer.
	Serializer nquads.Serializer

	// MaxDeepIterations caps the number of recursive NDegreeHash entries
	// within one top-level canonicalization. Zero means unbounded.
	// Recommended value for untrusted input: 1.
	MaxDeepIterations int
}

func (o Options) withDefaults() (Options, error) {
	if o.Algorithm == "" {
		return o, newError(KindConfiguration, "URDNA-CONF-001", "missing algorithm")
	}
	if o.Algorithm != URDNA2015 {
		return o, newError(KindConfiguration, "URDNA-CONF-002", fmt.Sprintf("invalid algorithm %q", o.Algorithm))
	}
	if o.CreateMessageDigest == nil {
		o.CreateMessageDigest = digest.SHA256Factory
	}
	if o.Serializer == nil {
		o.Serializer = nquads.Default{}
	}
	return o, nil
}
