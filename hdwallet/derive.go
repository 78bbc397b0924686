package hdwallet

import (
	"encoding/binary"
	"math/big"

	"github.com/not-for-prod/hdwallet/ecc"
	"github.com/not-for-prod/hdwallet/keys"
)

// DeriveChild derives the private child at index, dispatching to
// hardened or normal derivation depending on whether index carries the
// hardened bit (index >= 2^31).
func DeriveChild(parent *ExtendedPrivateKey, index uint32) (*ExtendedPrivateKey, error) {
	if IsHardened(index) {
		return ckdPrivHardened(parent, index)
	}
	return ckdPrivNormal(parent, index)
}

// ckdPrivNormal implements CKDpriv for i < 2^31:
// data = compressed_pub(parent) || i(4 BE).
func ckdPrivNormal(parent *ExtendedPrivateKey, index uint32) (*ExtendedPrivateKey, error) {
	compressedPub := parent.Key.GeneratePublicKey().SerializeCompressed()
	var indexBytes [4]byte
	binary.BigEndian.PutUint32(indexBytes[:], index)

	data := append(append([]byte{}, compressedPub...), indexBytes[:]...)
	return childFromHMAC(parent, compressedPub, data, index)
}

// ckdPrivHardened implements hardened derivation for i >= 2^31:
// data = 0x00 || parent.k(32 BE) || i(4 BE).
func ckdPrivHardened(parent *ExtendedPrivateKey, index uint32) (*ExtendedPrivateKey, error) {
	compressedPub := parent.Key.GeneratePublicKey().SerializeCompressed()

	kBytes := make([]byte, 32)
	parent.Key.K.FillBytes(kBytes)

	var indexBytes [4]byte
	binary.BigEndian.PutUint32(indexBytes[:], index)

	data := make([]byte, 0, 1+32+4)
	data = append(data, 0x00)
	data = append(data, kBytes...)
	data = append(data, indexBytes[:]...)

	return childFromHMAC(parent, compressedPub, data, index)
}

func childFromHMAC(parent *ExtendedPrivateKey, compressedPub, data []byte, index uint32) (*ExtendedPrivateKey, error) {
	n := ecc.Secp256k1().N

	i := hmacSHA512(parent.ChainCode[:], data)
	il, ir := i[:32], i[32:]

	leftInt := new(big.Int).SetBytes(il)
	if leftInt.Cmp(n) >= 0 {
		return nil, ErrUseNextIndex
	}

	childK := new(big.Int).Add(leftInt, parent.Key.K)
	childK.Mod(childK, n)
	if childK.Sign() == 0 {
		return nil, ErrUseNextIndex
	}

	childPriv, err := keys.NewPrivateKey(childK, parent.Key.Testnet, true)
	if err != nil {
		return nil, err
	}

	child := &ExtendedPrivateKey{
		Key:   childPriv,
		Depth: parent.Depth + 1,
		Index: index,
	}
	copy(child.ChainCode[:], ir)
	child.ParentFingerprint = fingerprintOf(compressedPub)

	return child, nil
}

// CKDPub implements normal public-child derivation. Attempting it with
// a hardened index fails with ErrHardenedFromPublic.
func CKDPub(parent *ExtendedPublicKey, index uint32) (*ExtendedPublicKey, error) {
	if IsHardened(index) {
		return nil, ErrHardenedFromPublic
	}

	n := ecc.Secp256k1().N
	compressedPub := parent.Key.SerializeCompressed()

	var indexBytes [4]byte
	binary.BigEndian.PutUint32(indexBytes[:], index)
	data := append(append([]byte{}, compressedPub...), indexBytes[:]...)

	i := hmacSHA512(parent.ChainCode[:], data)
	il, ir := i[:32], i[32:]

	leftInt := new(big.Int).SetBytes(il)
	if leftInt.Cmp(n) >= 0 {
		return nil, ErrUseNextIndex
	}

	childPoint := ecc.Generator().ScalarMul(leftInt).Add(parent.Key.Point)
	if childPoint.IsIdentity() {
		return nil, ErrUseNextIndex
	}

	child := &ExtendedPublicKey{
		Key:   &keys.PublicKey{Point: childPoint, Testnet: parent.Key.Testnet},
		Depth: parent.Depth + 1,
		Index: index,
	}
	copy(child.ChainCode[:], ir)
	child.ParentFingerprint = fingerprintOf(compressedPub)

	return child, nil
}
