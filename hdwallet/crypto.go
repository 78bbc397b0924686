package hdwallet

import (
	"crypto/hmac"
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

// hmacSHA512 returns HMAC-SHA512(key, msg), used for BIP-32 master-key
// and child-key derivation.
func hmacSHA512(key, msg []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

const (
	seedPBKDF2Iterations = 2048
	seedPBKDF2KeyLen     = 64
)

// seedFromMnemonic stretches a mnemonic + passphrase into a 64-byte
// seed via PBKDF2-HMAC-SHA512, per BIP-39.
func seedFromMnemonic(mnemonic, passphrase string) []byte {
	salt := append([]byte("mnemonic"), []byte(passphrase)...)
	return pbkdf2.Key([]byte(mnemonic), salt, seedPBKDF2Iterations, seedPBKDF2KeyLen, sha512.New)
}
