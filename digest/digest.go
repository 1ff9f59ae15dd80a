// Package digest provides the MessageDigest collaborator consumed by the
// canonicalization core, plus a menu of concrete hash algorithms. A
// canonicalization configured with a different algorithm produces a
// different, but still deterministic, canonical form. This is
// intentional: it is what lets callers plug in alternate algorithms such
// as an HMAC-keyed digest.
package digest

import (
	"encoding/hex"
	"hash"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// MessageDigest is an incremental, byte-oriented hash. Digest() is called
// once per instance; callers must obtain a fresh instance per call site via
// a Factory.
type MessageDigest interface {
	Update(b []byte)
	Digest() string // lowercase hex
}

// Factory constructs a fresh, independently-seeded MessageDigest.
type Factory func() MessageDigest

type hashDigest struct {
	h hash.Hash
}

func (d *hashDigest) Update(b []byte) { d.h.Write(b) }
func (d *hashDigest) Digest() string  { return hex.EncodeToString(d.h.Sum(nil)) }

// SHA256Factory is the default MessageDigest: SHA-256, backed by an
// assembly-accelerated implementation rather than crypto/sha256.
func SHA256Factory() MessageDigest {
	return &hashDigest{h: sha256.New()}
}

// SHA3256Factory produces SHA3-256 digests.
func SHA3256Factory() MessageDigest {
	return &hashDigest{h: sha3.New256()}
}

// BLAKE3Factory produces 256-bit BLAKE3 digests.
func BLAKE3Factory() MessageDigest {
	return &hashDigest{h: blake3.New(32, nil)}
}

// ByName resolves a hash algorithm name to a Factory. Supported names:
// "sha256" (default), "sha3-256", "blake3".
func ByName(name string) (Factory, bool) {
	switch name {
	case "", "sha256":
		return SHA256Factory, true
	case "sha3-256":
		return SHA3256Factory, true
	case "blake3":
		return BLAKE3Factory, true
	default:
		return nil, false
	}
}
