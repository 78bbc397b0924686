package keys

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for Bitcoin hash160
)

// sha256Sum hashes d with SHA-256.
func sha256Sum(d []byte) []byte {
	h := sha256.Sum256(d)
	return h[:]
}

// dsha256 is SHA-256 applied twice, used for Base58Check checksums.
func dsha256(d []byte) []byte {
	return sha256Sum(sha256Sum(d))
}

// hash160 is RIPEMD-160(SHA-256(d)), the digest Bitcoin uses to derive
// public-key identifiers and P2PKH addresses.
func hash160(d []byte) []byte {
	sum := sha256.Sum256(d)
	r := ripemd160.New()
	r.Write(sum[:])
	return r.Sum(nil)
}

// Hash160 exposes hash160 for callers outside this package (e.g. the
// hdwallet package's fingerprint computation) that need the same
// RIPEMD-160(SHA-256(x)) digest.
func Hash160(d []byte) []byte {
	return hash160(d)
}
