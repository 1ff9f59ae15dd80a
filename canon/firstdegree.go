package canon

import (
	"sort"

	"github.com/xdao-rdf/urdna2015/digest"
	"github.com/xdao-rdf/urdna2015/nquads"
	"github.com/xdao-rdf/urdna2015/term"
)

const (
	sentinelSelf  = "_:a"
	sentinelOther = "_:z"
)

// firstDegreeHash computes the Hash First Degree Quads result for ref,
// using and populating the cache inside info.
func firstDegreeHash(ref string, info *blankNodeInfo, mkDigest digest.Factory, ser nquads.Serializer) (string, error) {
	if info.hash != nil {
		return *info.hash, nil
	}

	lines := make([]string, 0, len(info.quads))
	for _, q := range info.quads {
		masked := maskQuad(q, ref)
		line, err := ser.SerializeQuad(masked)
		if err != nil {
			return "", wrapError(KindSerialization, "URDNA-SER-001", "failed to serialize masked quad", err)
		}
		lines = append(lines, line)
	}
	sort.Strings(lines)

	d := mkDigest()
	for _, l := range lines {
		d.Update([]byte(l))
	}
	hash := d.Digest()
	info.hash = &hash
	return hash, nil
}

// maskQuad returns a copy of q with every blank-node term rewritten: the
// node matching ref becomes the sentinel "_:a", every other blank node
// becomes "_:z". Non-blank terms are unchanged.
func maskQuad(q term.Quad, ref string) term.Quad {
	mask := func(t term.Term) term.Term {
		bn, ok := t.(term.BlankNode)
		if !ok {
			return t
		}
		if bn.BlankValue == ref {
			return term.BlankNode{BlankValue: sentinelSelf[2:]}
		}
		return term.BlankNode{BlankValue: sentinelOther[2:]}
	}
	return term.Quad{
		Subject:   mask(q.Subject),
		Predicate: q.Predicate,
		Object:    mask(q.Object),
		Graph:     mask(q.Graph),
	}
}
