package canon

import "github.com/xdao-rdf/urdna2015/term"

// blankNodeInfo holds the quads a blank node appears in (duplicated if it
// appears more than once per quad) and a cache slot for its first-degree
// hash, valid for the lifetime of one canonicalization.
type blankNodeInfo struct {
	quads []term.Quad
	hash  *string
}

// quadIndex maps each blank node identifier to its blankNodeInfo.
type quadIndex map[string]*blankNodeInfo

// buildQuadIndex scans every quad's non-predicate components (predicate
// is never visited) and records, for every blank node encountered, the
// quads it appears in.
func buildQuadIndex(dataset term.Dataset) quadIndex {
	idx := make(quadIndex)
	for _, q := range dataset {
		q.ForEachComponent(func(_ term.Position, t term.Term) {
			bn, ok := t.(term.BlankNode)
			if !ok {
				return
			}
			info, ok := idx[bn.BlankValue]
			if !ok {
				info = &blankNodeInfo{}
				idx[bn.BlankValue] = info
			}
			info.quads = append(info.quads, q)
		})
	}
	return idx
}
