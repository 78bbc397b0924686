// Package b58 implements the Base58Check framing used throughout this
// module (WIF, addresses, extended keys). Raw base58 digit encoding is
// delegated to btcutil/base58; this package owns the checksum framing,
// which differs per caller (WIF's 1-byte version vs extended keys'
// 4-byte version), so btcutil's fixed-version CheckEncode/CheckDecode
// don't fit directly.
package b58

import (
	"bytes"
	"crypto/sha256"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// Alphabet is the 58-character Bitcoin Base58 alphabet: digits and
// letters with 0, O, I, l omitted to avoid visual ambiguity.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var alphabetBytes = []byte(Alphabet)

// ErrBadAlphabet is returned when a string to decode contains a
// character outside Alphabet.
var ErrBadAlphabet = errors.New("b58: character outside base58 alphabet")

// ErrBadCheck is returned when a decoded payload's checksum doesn't
// match the trailing 4 bytes.
var ErrBadCheck = errors.New("b58: checksum mismatch")

func dsha256(d []byte) []byte {
	h1 := sha256.Sum256(d)
	h2 := sha256.Sum256(h1[:])
	return h2[:]
}

// CheckEncode appends a dsha256 checksum to payload and base58-encodes
// the result, preserving leading zero bytes as leading '1's.
func CheckEncode(payload []byte) string {
	checksum := dsha256(payload)
	data := append(append([]byte{}, payload...), checksum[:4]...)
	return base58.Encode(data)
}

// CheckDecode reverses CheckEncode, validating the alphabet and the
// checksum. It returns the original payload (without the checksum).
func CheckDecode(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if !bytes.ContainsRune(alphabetBytes, rune(s[i])) {
			return nil, ErrBadAlphabet
		}
	}

	data := base58.Decode(s)
	if len(data) < 4 {
		return nil, ErrBadCheck
	}

	payload := data[:len(data)-4]
	checksum := data[len(data)-4:]

	want := dsha256(payload)
	if !bytes.Equal(want[:4], checksum) {
		return nil, ErrBadCheck
	}

	return payload, nil
}
