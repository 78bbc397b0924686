package hdwallet

import (
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/not-for-prod/hdwallet/ecc"
	"github.com/not-for-prod/hdwallet/internal/b58"
	"github.com/not-for-prod/hdwallet/keys"
)

// HardenedOffset is added to a child index to mark it hardened
// (index >= 2^31); hardened derivation requires the parent private key.
const HardenedOffset uint32 = 0x80000000

// BIP-32 serialized extended-key version bytes (§4.5).
const (
	versionXprvMainnet uint32 = 0x0488ADE4
	versionXprvTestnet uint32 = 0x04358394
	versionXpubMainnet uint32 = 0x0488B21E
	versionXpubTestnet uint32 = 0x043587CF
)

// ExtendedPrivateKey is a BIP-32 extended private key: a PrivateKey
// plus the chain-code and positional metadata needed for child
// derivation.
type ExtendedPrivateKey struct {
	Key               *keys.PrivateKey
	ChainCode         [32]byte
	Depth             byte
	ParentFingerprint [4]byte
	Index             uint32
}

// ExtendedPublicKey is the public-only counterpart of ExtendedPrivateKey.
type ExtendedPublicKey struct {
	Key               *keys.PublicKey
	ChainCode         [32]byte
	Depth             byte
	ParentFingerprint [4]byte
	Index             uint32
}

// IsHardened reports whether index names a hardened child.
func IsHardened(index uint32) bool {
	return index >= HardenedOffset
}

// MasterKeyFromSeed derives the BIP-32 master extended private key:
// I = HMAC-SHA512(key="Bitcoin seed", msg=seed); k = I[:32]; chain
// code = I[32:]. The seed is rejected if k is 0 or >= N.
func MasterKeyFromSeed(seed []byte, testnet bool) (*ExtendedPrivateKey, error) {
	i := hmacSHA512([]byte("Bitcoin seed"), seed)
	kBytes, chainCode := i[:32], i[32:]

	k := new(big.Int).SetBytes(kBytes)
	if k.Sign() == 0 || k.Cmp(ecc.Secp256k1().N) >= 0 {
		return nil, errors.New("hdwallet: seed produced an invalid master key")
	}

	priv, err := keys.NewPrivateKey(k, testnet, true)
	if err != nil {
		return nil, err
	}

	m := &ExtendedPrivateKey{Key: priv}
	copy(m.ChainCode[:], chainCode)
	return m, nil
}

// Neuter returns the public-only view of ek, carrying over depth,
// parent fingerprint, and index.
func (ek *ExtendedPrivateKey) Neuter() *ExtendedPublicKey {
	pub := ek.Key.GeneratePublicKey()
	epub := &ExtendedPublicKey{
		Key:               pub,
		Depth:             ek.Depth,
		ParentFingerprint: ek.ParentFingerprint,
		Index:             ek.Index,
	}
	epub.ChainCode = ek.ChainCode
	return epub
}

// fingerprint is the first 4 bytes of hash160 of the compressed
// public-key encoding.
func fingerprintOf(compressedPub []byte) [4]byte {
	var fp [4]byte
	copy(fp[:], keys.Hash160(compressedPub)[:4])
	return fp
}

// Serialize encodes the 78-byte BIP-32 layout and wraps it in
// Base58Check: version(4) || depth(1) || parent_fingerprint(4) ||
// index(4 BE) || chain_code(32) || key_data(33).
func (ek *ExtendedPrivateKey) Serialize() string {
	version := versionXprvMainnet
	if ek.Key.Testnet {
		version = versionXprvTestnet
	}

	buf := make([]byte, 0, 78)
	var versionBytes [4]byte
	binary.BigEndian.PutUint32(versionBytes[:], version)
	buf = append(buf, versionBytes[:]...)
	buf = append(buf, ek.Depth)
	buf = append(buf, ek.ParentFingerprint[:]...)

	var indexBytes [4]byte
	binary.BigEndian.PutUint32(indexBytes[:], ek.Index)
	buf = append(buf, indexBytes[:]...)
	buf = append(buf, ek.ChainCode[:]...)

	keyData := make([]byte, 33)
	ek.Key.K.FillBytes(keyData[1:])
	buf = append(buf, keyData...)

	return b58.CheckEncode(buf)
}

// Serialize encodes the public extended-key layout analogously to
// ExtendedPrivateKey.Serialize, with key_data the 33-byte compressed
// SEC1 point and the xpub version bytes.
func (ek *ExtendedPublicKey) Serialize() string {
	version := versionXpubMainnet
	if ek.Key.Testnet {
		version = versionXpubTestnet
	}

	buf := make([]byte, 0, 78)
	var versionBytes [4]byte
	binary.BigEndian.PutUint32(versionBytes[:], version)
	buf = append(buf, versionBytes[:]...)
	buf = append(buf, ek.Depth)
	buf = append(buf, ek.ParentFingerprint[:]...)

	var indexBytes [4]byte
	binary.BigEndian.PutUint32(indexBytes[:], ek.Index)
	buf = append(buf, indexBytes[:]...)
	buf = append(buf, ek.ChainCode[:]...)
	buf = append(buf, ek.Key.SerializeCompressed()...)

	return b58.CheckEncode(buf)
}
