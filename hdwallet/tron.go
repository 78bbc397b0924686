package hdwallet

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/sha3"

	"github.com/not-for-prod/hdwallet/keys"
)

// tronAddressPrefix (0x41) makes TRON addresses start with 'T' once
// Base58Check-encoded; it is TRON's equivalent of Bitcoin's P2PKH
// version byte.
const tronAddressPrefix = 0x41

// TronAddress derives a TRON address from any secp256k1 public key
// (e.g. one pulled from a BIP-44 m/44'/195'/... path via
// DeriveKeyFromPath and cointype.Tron). TRON addresses reuse Ethereum's
// Keccak-256-of-uncompressed-coordinates scheme but encode the result
// in Base58Check with a 0x41 version byte instead of Ethereum's raw hex.
func TronAddress(pub *keys.PublicKey) string {
	// Uncompressed SEC1 is 0x04 || X(32) || Y(32); Keccak-256 hashes the
	// raw 64-byte coordinates, matching Ethereum's address derivation.
	pubKeyBytes := pub.SerializeUncompressed()[1:]

	hash := sha3.NewLegacyKeccak256()
	hash.Write(pubKeyBytes)
	hashBytes := hash.Sum(nil)

	addressBytes := append([]byte{tronAddressPrefix}, hashBytes[len(hashBytes)-20:]...)

	firstHash := sha256.Sum256(addressBytes)
	secondHash := sha256.Sum256(firstHash[:])
	addressWithChecksum := append(addressBytes, secondHash[:4]...)

	return base58.Encode(addressWithChecksum)
}
