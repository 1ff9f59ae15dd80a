// Package dsetcid derives an IPFS-compatible content identifier for a
// canonicalized RDF dataset. Canonical N-Quads output is byte-exact, so a
// CID over it is a stable handle for archival, deduplication, and
// cross-referencing canonical datasets independent of their serialization
// history.
package dsetcid

import (
	"io"

	"github.com/ipfs/go-cid"
	"github.com/minio/sha256-simd"
	"github.com/multiformats/go-multihash"
)

// CIDv1RawSHA256 returns a CIDv1 string (raw multicodec, sha2-256
// multihash) for canonical N-Quads bytes.
//
// The caller is responsible for ensuring canonical is actually the output
// of Canonicalize; this function performs no canonicalization of its own.
func CIDv1RawSHA256(canonical []byte) string {
	sum, err := multihash.Sum(canonical, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors on malformed length/code combinations;
		// SHA2_256 with length -1 is always valid.
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

// CIDv1RawSHA256CID is like CIDv1RawSHA256 but returns the typed cid.Cid.
func CIDv1RawSHA256CID(canonical []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(canonical, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// CIDv1RawSHA256FromReader is CIDv1RawSHA256 for a caller that already has
// canonical output as a stream rather than a buffered []byte. The CLI's
// cid subcommand uses this over a reader of the canonical string, without
// copying it into a separate []byte. It hashes with the same
// assembly-accelerated SHA-256 implementation package digest uses by
// default.
func CIDv1RawSHA256FromReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	sum, err := multihash.Encode(h.Sum(nil), multihash.SHA2_256)
	if err != nil {
		return "", err
	}
	return cid.NewCidV1(cid.Raw, multihash.Multihash(sum)).String(), nil
}
