// Package sign provides optional signing helpers over canonicalized
// dataset bytes. Canonicalization itself (package canon) succeeds
// independently of whether a caller chooses to sign its result; this
// package exists because digital signatures are the canonical form's
// intended downstream use.
package sign

import (
	"crypto/ed25519"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
	"golang.org/x/crypto/sha3"
)

// HashAlg names a digest used to condense canonical bytes before signing.
type HashAlg string

const (
	SHA256  HashAlg = "sha256"
	SHA512  HashAlg = "sha512"
	SHA3256 HashAlg = "sha3-256"
)

func digestFor(alg HashAlg, message []byte) ([]byte, error) {
	switch alg {
	case SHA256:
		s := sha256.Sum256(message)
		return s[:], nil
	case SHA512:
		s := sha512.Sum512(message)
		return s[:], nil
	case SHA3256:
		s := sha3.Sum256(message)
		return s[:], nil
	default:
		return nil, fmt.Errorf("sign: unsupported hash algorithm %q", alg)
	}
}

// Ed25519 signs digestFor(alg, canonical) with priv.
func Ed25519(canonical []byte, alg HashAlg, priv ed25519.PrivateKey) ([]byte, error) {
	digest, err := digestFor(alg, canonical)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(priv, digest), nil
}

// VerifyEd25519 verifies a signature produced by Ed25519.
func VerifyEd25519(canonical []byte, alg HashAlg, pub ed25519.PublicKey, sig []byte) (bool, error) {
	digest, err := digestFor(alg, canonical)
	if err != nil {
		return false, err
	}
	return ed25519.Verify(pub, digest, sig), nil
}

// Dilithium3 signs digestFor(alg, canonical) with priv, using the
// post-quantum Dilithium mode 3 signature scheme.
func Dilithium3(canonical []byte, alg HashAlg, priv *mode3.PrivateKey) ([]byte, error) {
	if priv == nil {
		return nil, fmt.Errorf("sign: missing private key")
	}
	digest, err := digestFor(alg, canonical)
	if err != nil {
		return nil, err
	}
	sig := make([]byte, mode3.SignatureSize)
	mode3.SignTo(priv, digest, sig)
	return sig, nil
}

// VerifyDilithium3 verifies a signature produced by Dilithium3.
func VerifyDilithium3(canonical []byte, alg HashAlg, pub *mode3.PublicKey, sig []byte) (bool, error) {
	digest, err := digestFor(alg, canonical)
	if err != nil {
		return false, err
	}
	return mode3.Verify(pub, digest, sig), nil
}

// GenerateDilithium3Keypair returns a fresh Dilithium3 keypair, reading
// randomness from rand.
func GenerateDilithium3Keypair(rand io.Reader) (*mode3.PublicKey, *mode3.PrivateKey, error) {
	return mode3.GenerateKey(rand)
}
