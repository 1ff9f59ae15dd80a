package canon

import (
	"sort"

	"github.com/xdao-rdf/urdna2015/issuer"
	"github.com/xdao-rdf/urdna2015/permute"
	"github.com/xdao-rdf/urdna2015/term"
)

// ndegreeCandidate tracks one permutation's tentative state while the
// shortest-path search in ndegreeHash is still in progress.
type ndegreeCandidate struct {
	perm      []string
	iss       *issuer.IdentifierIssuer
	path      string
	recursion []string
}

// ndegreeHash computes the Hash N-Degree Quads result and resulting
// issuer state for one blank node id, recursively exploring related
// blank nodes until id is uniquely distinguished.
func (c *canonState) ndegreeHash(id string, tempIssuer *issuer.IdentifierIssuer) (string, *issuer.IdentifierIssuer, error) {
	c.deepIterations++
	if c.opts.MaxDeepIterations > 0 && c.deepIterations > c.opts.MaxDeepIterations {
		return "", nil, newError(KindDeepIterations, "URDNA-CAP-001", "max deep iterations exceeded")
	}

	hashToRelated := make(map[string][]string)
	info := c.index[id]
	for _, q := range info.quads {
		q.ForEachComponent(func(pos term.Position, t term.Term) {
			bn, ok := t.(term.BlankNode)
			if !ok || bn.BlankValue == id {
				return
			}
			h, err := c.hashRelatedBlankNode(bn.BlankValue, pos, q.Predicate, tempIssuer, c.opts.CreateMessageDigest)
			if err != nil {
				c.firstErr = err
				return
			}
			hashToRelated[h] = append(hashToRelated[h], bn.BlankValue)
		})
		if c.firstErr != nil {
			return "", nil, c.firstErr
		}
	}

	keys := make([]string, 0, len(hashToRelated))
	for k := range hashToRelated {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := c.opts.CreateMessageDigest()
	localIssuer := tempIssuer
	for _, key := range keys {
		d.Update([]byte(key))
		path, resultIssuer, err := c.bestPermutationPath(hashToRelated[key], localIssuer)
		if err != nil {
			return "", nil, err
		}
		localIssuer = resultIssuer
		d.Update([]byte(path))
	}
	return d.Digest(), localIssuer, nil
}

// bestPermutationPath searches every permutation of list for the one
// yielding the lexicographically smallest path string, pruning
// permutations that fall behind the running minimum after every Stage
// A / Stage B step.
func (c *canonState) bestPermutationPath(list []string, tempIssuer *issuer.IdentifierIssuer) (string, *issuer.IdentifierIssuer, error) {
	perm := permute.New(list)
	var cands []*ndegreeCandidate
	for perm.HasNext() {
		cands = append(cands, &ndegreeCandidate{perm: perm.Next(), iss: tempIssuer.Clone()})
	}
	if len(cands) == 0 {
		return "", tempIssuer, nil
	}

	n := len(list)

	// Stage A: build initial path, collect recursion targets.
	for i := 0; i < n; i++ {
		for _, cd := range cands {
			related := cd.perm[i]
			if label, ok := c.canonicalIssuer.Label(related); ok {
				cd.path += label
				continue
			}
			if !cd.iss.Has(related) {
				cd.recursion = append(cd.recursion, related)
			}
			cd.path += cd.iss.Issue(related)
		}
		cands = prunePaths(cands)
	}

	// Every permutation of the same multiset encounters the same number of
	// distinct related values in Stage A, so recursion lengths must agree.
	recursionLen := len(cands[0].recursion)
	for _, cd := range cands {
		if len(cd.recursion) != recursionLen {
			return "", nil, newError(KindInternal, "URDNA-INT-001", "recursion list length mismatch across candidate permutations")
		}
	}

	// Stage B: recursive extension.
	for j := 0; j < recursionLen; j++ {
		for _, cd := range cands {
			related := cd.recursion[j]
			recHash, recIssuer, err := c.ndegreeHash(related, cd.iss.Clone())
			if err != nil {
				return "", nil, err
			}
			label, ok := cd.iss.Label(related)
			if !ok {
				return "", nil, newError(KindInternal, "URDNA-INT-002", "recursion target missing a working label")
			}
			cd.path += label + "<" + recHash + ">"
			cd.iss = recIssuer
		}
		cands = prunePaths(cands)
	}

	if len(cands) == 0 {
		return "", nil, newError(KindInternal, "URDNA-INT-003", "no surviving permutation candidates")
	}
	return cands[0].path, cands[0].iss, nil
}

// prunePaths retains only the candidates tied for the lexicographically
// smallest path accumulated so far.
func prunePaths(cands []*ndegreeCandidate) []*ndegreeCandidate {
	min := cands[0].path
	for _, cd := range cands[1:] {
		if cd.path < min {
			min = cd.path
		}
	}
	out := cands[:0:0]
	for _, cd := range cands {
		if cd.path == min {
			out = append(out, cd)
		}
	}
	return out
}
