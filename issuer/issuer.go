// Package issuer implements the identifier issuer abstraction: a
// deterministic counter that assigns labels with a fixed prefix and
// remembers prior assignments, in insertion order.
package issuer

import "strconv"

// IdentifierIssuer deterministically maps existing blank-node IDs to
// issued labels of the form prefix+counter, remembering the order in
// which labels were first assigned.
type IdentifierIssuer struct {
	prefix   string
	counter  int
	assigned map[string]string
	order    []string
}

// New returns an IdentifierIssuer with the given label prefix (e.g.
// "_:c14n" or "_:b").
func New(prefix string) *IdentifierIssuer {
	return &IdentifierIssuer{
		prefix:   prefix,
		assigned: make(map[string]string),
	}
}

// Issue returns the label for existingID, assigning one if none exists
// yet. A given existingID always gets the same label on every call;
// distinct IDs get distinct labels.
func (iss *IdentifierIssuer) Issue(existingID string) string {
	if label, ok := iss.assigned[existingID]; ok {
		return label
	}
	label := iss.prefix + strconv.Itoa(iss.counter)
	iss.counter++
	iss.assigned[existingID] = label
	iss.order = append(iss.order, existingID)
	return label
}

// Has reports whether existingID has already been issued a label.
func (iss *IdentifierIssuer) Has(existingID string) bool {
	_, ok := iss.assigned[existingID]
	return ok
}

// Label returns the label previously issued for existingID, if any.
func (iss *IdentifierIssuer) Label(existingID string) (string, bool) {
	label, ok := iss.assigned[existingID]
	return label, ok
}

// Clone returns a deep, independently-mutable copy preserving prefix,
// counter, and the full insertion-ordered mapping. Heavily used during
// N-degree hashing's tentative permutation exploration.
func (iss *IdentifierIssuer) Clone() *IdentifierIssuer {
	clone := &IdentifierIssuer{
		prefix:   iss.prefix,
		counter:  iss.counter,
		assigned: make(map[string]string, len(iss.assigned)),
		order:    append([]string(nil), iss.order...),
	}
	for k, v := range iss.assigned {
		clone.assigned[k] = v
	}
	return clone
}

// IssuedInOrder returns the existing IDs in the order labels were first
// assigned. This ordering is load-bearing: it defines promotion order
// from temporary to canonical labels.
func (iss *IdentifierIssuer) IssuedInOrder() []string {
	return append([]string(nil), iss.order...)
}

// Len returns the number of labels issued so far.
func (iss *IdentifierIssuer) Len() int {
	return len(iss.order)
}
