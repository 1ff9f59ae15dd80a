// Package canon implements the URDNA2015 core: the two-phase blank-node
// labeling algorithm and the canonical N-Quads emission that follows it.
package canon

import (
	"sort"
	"strings"

	"github.com/xdao-rdf/urdna2015/issuer"
	"github.com/xdao-rdf/urdna2015/term"
)

// canonState is the mutable state of a single canonicalization run. All of
// it is created inside Canonicalize, mutated only by that invocation, and
// discarded on return. Canonicalization is a pure function of its input
// dataset and configured hash algorithm.
type canonState struct {
	dataset term.Dataset
	opts    Options

	index           quadIndex
	nonNormalized   map[string]bool
	canonicalIssuer *issuer.IdentifierIssuer

	deepIterations int
	firstErr       error
}

// Canonicalize assigns canonical labels to every blank node in dataset and
// returns the sorted, concatenated N-Quads serialization.
func Canonicalize(dataset term.Dataset, opts Options) (string, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return "", err
	}

	c := &canonState{
		dataset:         dataset,
		opts:            opts,
		index:           buildQuadIndex(dataset),
		nonNormalized:   make(map[string]bool),
		canonicalIssuer: issuer.New("_:c14n"),
	}
	for id := range c.index {
		c.nonNormalized[id] = true
	}

	if err := c.simpleLabelingLoop(); err != nil {
		return "", err
	}
	if err := c.complexLabeling(); err != nil {
		return "", err
	}
	return c.emit()
}

// simpleLabelingLoop repeatedly buckets non-normalized blank nodes by
// first-degree hash and promotes every singleton bucket to a canonical
// label, until a pass makes no progress. This is the cheap pass that
// resolves every blank node distinguishable without N-degree hashing.
func (c *canonState) simpleLabelingLoop() error {
	for {
		hashToBlankNodes := make(map[string][]string)
		for id := range c.nonNormalized {
			hash, err := firstDegreeHash(id, c.index[id], c.opts.CreateMessageDigest, c.opts.Serializer)
			if err != nil {
				return err
			}
			hashToBlankNodes[hash] = append(hashToBlankNodes[hash], id)
		}

		keys := make([]string, 0, len(hashToBlankNodes))
		for h := range hashToBlankNodes {
			keys = append(keys, h)
		}
		sort.Strings(keys)

		progressed := false
		for _, h := range keys {
			ids := hashToBlankNodes[h]
			if len(ids) != 1 {
				continue
			}
			c.canonicalIssuer.Issue(ids[0])
			delete(c.nonNormalized, ids[0])
			progressed = true
		}
		if !progressed {
			return nil
		}
	}
}

// remainingBuckets re-buckets the still-unlabeled blank nodes by
// first-degree hash, for complex labeling to consume in ascending order.
func (c *canonState) remainingBuckets() ([]string, map[string][]string, error) {
	hashToBlankNodes := make(map[string][]string)

	// Bucket membership only depends on first-degree hash, which is
	// independent of input order. We still walk the dataset (rather than
	// range over the nonNormalized map) so ids enter each bucket in input
	// order, since complex labeling processes a bucket's candidates in
	// that order.
	order := make([]string, 0, len(c.nonNormalized))
	added := make(map[string]bool)
	for _, q := range c.dataset {
		q.ForEachComponent(func(_ term.Position, t term.Term) {
			bn, ok := t.(term.BlankNode)
			if !ok || added[bn.BlankValue] || !c.nonNormalized[bn.BlankValue] {
				return
			}
			added[bn.BlankValue] = true
			order = append(order, bn.BlankValue)
		})
	}

	for _, id := range order {
		hash, err := firstDegreeHash(id, c.index[id], c.opts.CreateMessageDigest, c.opts.Serializer)
		if err != nil {
			return nil, nil, err
		}
		hashToBlankNodes[hash] = append(hashToBlankNodes[hash], id)
	}

	keys := make([]string, 0, len(hashToBlankNodes))
	for h := range hashToBlankNodes {
		keys = append(keys, h)
	}
	sort.Strings(keys)
	return keys, hashToBlankNodes, nil
}

// hashPathEntry is one candidate's N-degree result within a complex
// labeling bucket.
type hashPathEntry struct {
	hash string
	iss  *issuer.IdentifierIssuer
}

// complexLabeling resolves every remaining ambiguous bucket via Hash
// N-Degree Quads, promoting each bucket's entries in ascending order of
// N-degree hash and, within one entry, in the order that entry's
// temporary issuer assigned its labels.
func (c *canonState) complexLabeling() error {
	keys, buckets, err := c.remainingBuckets()
	if err != nil {
		return err
	}

	for _, h := range keys {
		ids := buckets[h]
		var entries []hashPathEntry
		for _, id := range ids {
			if c.canonicalIssuer.Has(id) {
				// Already labeled via another entry's Stage B recursion.
				continue
			}
			tmp := issuer.New("_:b")
			tmp.Issue(id)
			hash, resultIssuer, err := c.ndegreeHash(id, tmp)
			if err != nil {
				return err
			}
			entries = append(entries, hashPathEntry{hash: hash, iss: resultIssuer})
		}

		sort.Slice(entries, func(i, j int) bool { return entries[i].hash < entries[j].hash })

		for _, e := range entries {
			for _, existing := range e.iss.IssuedInOrder() {
				if !c.canonicalIssuer.Has(existing) {
					c.canonicalIssuer.Issue(existing)
				}
			}
		}
	}
	return nil
}

// emit rewrites blank-node labels to their canonical form, serializes
// every quad, and returns the sorted, concatenated N-Quads text.
func (c *canonState) emit() (string, error) {
	lines := make([]string, 0, len(c.dataset))
	for _, q := range c.dataset {
		relabeled := c.relabelQuad(q)
		line, err := c.opts.Serializer.SerializeQuad(relabeled)
		if err != nil {
			return "", wrapError(KindSerialization, "URDNA-SER-002", "failed to serialize canonical quad", err)
		}
		lines = append(lines, line)
	}
	sort.Strings(lines)

	total := 0
	for _, l := range lines {
		total += len(l)
	}
	out := make([]byte, 0, total)
	for _, l := range lines {
		out = append(out, l...)
	}
	return string(out), nil
}

func (c *canonState) relabelQuad(q term.Quad) term.Quad {
	relabel := func(t term.Term) term.Term {
		bn, ok := t.(term.BlankNode)
		if !ok {
			return t
		}
		// Already bearing the canonical prefix: leave untouched rather
		// than double-label.
		if strings.HasPrefix(bn.BlankValue, "c14n") {
			return t
		}
		if label, ok := c.canonicalIssuer.Label(bn.BlankValue); ok {
			return term.BlankNode{BlankValue: label[len("_:"):]}
		}
		return t
	}
	return term.Quad{
		Subject:   relabel(q.Subject),
		Predicate: q.Predicate,
		Object:    relabel(q.Object),
		Graph:     relabel(q.Graph),
	}
}
