package keys

import (
	"encoding/hex"
	"math/big"

	"github.com/not-for-prod/hdwallet/ecc"
	"github.com/not-for-prod/hdwallet/internal/b58"
)

// P2PKH address version bytes (§4.4).
const (
	addressVersionMainnet = 0x00
	addressVersionTestnet = 0x6F
)

// PublicKey is a point P = k*G plus the network flag. Compression is
// an encoding-time choice, not state carried on the key.
type PublicKey struct {
	Point   ecc.Point
	Testnet bool
}

// SerializeUncompressed returns the 65-byte SEC1 uncompressed
// encoding: 0x04 || x(32) || y(32).
func (pub *PublicKey) SerializeUncompressed() []byte {
	out := make([]byte, 65)
	out[0] = 0x04
	pub.Point.X.FillBytes(out[1:33])
	pub.Point.Y.FillBytes(out[33:65])
	return out
}

// SerializeCompressed returns the 33-byte SEC1 compressed encoding:
// (0x02 if y even, else 0x03) || x(32).
func (pub *PublicKey) SerializeCompressed() []byte {
	out := make([]byte, 33)
	if pub.Point.Y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	pub.Point.X.FillBytes(out[1:33])
	return out
}

// Serialize returns the compressed or uncompressed SEC1 encoding
// depending on compressed.
func (pub *PublicKey) Serialize(compressed bool) []byte {
	if compressed {
		return pub.SerializeCompressed()
	}
	return pub.SerializeUncompressed()
}

// Identifier is hash160 of the SEC1 encoding, keyed by the chosen
// compression form.
func (pub *PublicKey) Identifier(compressed bool) []byte {
	return hash160(pub.Serialize(compressed))
}

// Address returns the Base58Check P2PKH address: version || hash160.
// Mainnet addresses start with '1'; testnet with 'm' or 'n'.
func (pub *PublicKey) Address(compressed bool) string {
	version := byte(addressVersionMainnet)
	if pub.Testnet {
		version = addressVersionTestnet
	}

	payload := make([]byte, 0, 1+20)
	payload = append(payload, version)
	payload = append(payload, pub.Identifier(compressed)...)

	return b58.CheckEncode(payload)
}

// Hex returns the lowercase hex of the SEC1 encoding.
func (pub *PublicKey) Hex(compressed bool) string {
	return hex.EncodeToString(pub.Serialize(compressed))
}

// PublicKeyFromCompressed decompresses a 33-byte SEC1 point.
func PublicKeyFromCompressed(data []byte, testnet bool) (*PublicKey, error) {
	if len(data) != 33 {
		return nil, ecc.ErrInvalidCoordinate
	}
	parity := ecc.Even
	switch data[0] {
	case 0x02:
		parity = ecc.Even
	case 0x03:
		parity = ecc.Odd
	default:
		return nil, ecc.ErrInvalidCoordinate
	}

	x := new(big.Int).SetBytes(data[1:])
	point, err := ecc.FromX(x, parity)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Point: point, Testnet: testnet}, nil
}

// PublicKeyFromUncompressed parses a 65-byte SEC1 point.
func PublicKeyFromUncompressed(data []byte, testnet bool) (*PublicKey, error) {
	if len(data) != 65 || data[0] != 0x04 {
		return nil, ecc.ErrInvalidCoordinate
	}
	x := new(big.Int).SetBytes(data[1:33])
	y := new(big.Int).SetBytes(data[33:65])
	point, err := ecc.NewPoint(x, y)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Point: point, Testnet: testnet}, nil
}
