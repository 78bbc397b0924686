package keys

import (
	"crypto/rand"
	"math/big"

	"github.com/not-for-prod/hdwallet/ecc"
	"github.com/not-for-prod/hdwallet/internal/b58"
)

// WIF version bytes (§4.4).
const (
	wifVersionMainnet = 0x80
	wifVersionTestnet = 0xEF
	wifCompressedFlag = 0x01
)

// PrivateKey is a secp256k1 scalar k with 1 <= k < N, plus the
// testnet/compressed encoding flags carried alongside it. Compression
// only affects WIF and address encoding, never the arithmetic.
type PrivateKey struct {
	K          *big.Int
	Testnet    bool
	Compressed bool
}

// NewPrivateKey constructs a PrivateKey from an explicit scalar,
// rejecting k <= 0 or k >= N.
func NewPrivateKey(k *big.Int, testnet, compressed bool) (*PrivateKey, error) {
	n := ecc.Secp256k1().N
	if k.Sign() <= 0 || k.Cmp(n) >= 0 {
		return nil, ErrInvalidKey
	}
	return &PrivateKey{K: new(big.Int).Set(k), Testnet: testnet, Compressed: compressed}, nil
}

// GeneratePrivateKey samples k uniformly from [1, N) using a
// cryptographically secure RNG.
func GeneratePrivateKey(testnet, compressed bool) (*PrivateKey, error) {
	n := ecc.Secp256k1().N
	upper := new(big.Int).Sub(n, big.NewInt(1))
	k, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return nil, err
	}
	k.Add(k, big.NewInt(1))
	return &PrivateKey{K: k, Testnet: testnet, Compressed: compressed}, nil
}

// GeneratePublicKey derives the public key P = k*G.
func (pk *PrivateKey) GeneratePublicKey() *PublicKey {
	point := ecc.Generator().ScalarMul(pk.K)
	return &PublicKey{Point: point, Testnet: pk.Testnet}
}

// ToWIF encodes the private key in Wallet Import Format:
// Base58Check(version || k(32 BE) || [0x01 if compressed]).
func (pk *PrivateKey) ToWIF() string {
	version := byte(wifVersionMainnet)
	if pk.Testnet {
		version = wifVersionTestnet
	}

	kBytes := make([]byte, 32)
	pk.K.FillBytes(kBytes)

	payload := make([]byte, 0, 1+32+1)
	payload = append(payload, version)
	payload = append(payload, kBytes...)
	if pk.Compressed {
		payload = append(payload, wifCompressedFlag)
	}

	return b58.CheckEncode(payload)
}

// PrivateKeyFromWIF decodes a WIF string, recovering k, testnet, and
// compressed from the version byte, key bytes, and optional suffix.
func PrivateKeyFromWIF(wif string) (*PrivateKey, error) {
	payload, err := b58.CheckDecode(wif)
	if err != nil {
		return nil, err
	}
	if len(payload) != 33 && len(payload) != 34 {
		return nil, ErrInvalidKey
	}

	version := payload[0]
	kBytes := payload[1:33]
	compressed := len(payload) == 34 && payload[33] == wifCompressedFlag

	testnet := version == wifVersionTestnet
	if version != wifVersionMainnet && version != wifVersionTestnet {
		return nil, ErrInvalidKey
	}

	k := new(big.Int).SetBytes(kBytes)
	return NewPrivateKey(k, testnet, compressed)
}
