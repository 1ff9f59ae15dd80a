package canon

import (
	"github.com/xdao-rdf/urdna2015/digest"
	"github.com/xdao-rdf/urdna2015/issuer"
	"github.com/xdao-rdf/urdna2015/term"
)

// hashRelatedBlankNode computes the Hash Related Blank Node result for a
// blank node "related" that co-occurs with the currently-hashed node in
// some quad.
//
// The identifier used is chosen by the first applicable rule: a canonical
// label, else a temporary label from the supplied issuer, else the
// related node's own first-degree hash.
func (c *canonState) hashRelatedBlankNode(related string, pos term.Position, predicate term.Term, tempIssuer *issuer.IdentifierIssuer, mkDigest digest.Factory) (string, error) {
	var id string
	switch {
	case c.canonicalIssuer.Has(related):
		id, _ = c.canonicalIssuer.Label(related)
	case tempIssuer.Has(related):
		id, _ = tempIssuer.Label(related)
	default:
		info := c.index[related]
		hash, err := firstDegreeHash(related, info, mkDigest, c.opts.Serializer)
		if err != nil {
			return "", err
		}
		id = hash
	}

	d := mkDigest()
	d.Update([]byte{byte(pos)})
	if pos != term.PositionGraph {
		if iri, ok := predicate.(term.IRI); ok {
			d.Update([]byte("<" + iri.IRIValue + ">"))
		}
	}
	d.Update([]byte(id))
	return d.Digest(), nil
}
