package hdwallet

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBIP32Vector1 matches the canonical BIP-32 Test Vector 1: a master
// key derived from seed 000102030405060708090a0b0c0d0e0f, and its m/0'
// hardened child.
func TestBIP32Vector1(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	master, err := MasterKeyFromSeed(seed, false)
	require.NoError(t, err)
	require.Equal(t, byte(0), master.Depth)
	require.Equal(t, [4]byte{0, 0, 0, 0}, master.ParentFingerprint)

	require.Equal(t,
		"xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi",
		master.Serialize())
	require.Equal(t,
		"xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8",
		master.Neuter().Serialize())

	child, err := DeriveChild(master, HardenedOffset)
	require.NoError(t, err)
	require.Equal(t, byte(1), child.Depth)

	require.Equal(t,
		"xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7",
		child.Serialize())
	require.Equal(t,
		"xpub68Gmy5EdvgibQVfPdqkBBCHxA5htiqg55crXYuXoQRKfDBFA1WEjWgP6LHhwBZeNK1VTsfTFUHCdrfp1bgwQ9xv5ski8PX9rL2dZXvgGDnw",
		child.Neuter().Serialize())
}

func TestNeuterThenCKDPubMatchesCKDPriv(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	master, err := MasterKeyFromSeed(seed, false)
	require.NoError(t, err)

	// Index 0 is a normal (non-hardened) child, so it can be derived
	// from the public key alone.
	privChild, err := DeriveChild(master, 0)
	require.NoError(t, err)

	pubChild, err := CKDPub(master.Neuter(), 0)
	require.NoError(t, err)

	require.True(t, privChild.Neuter().Key.Point.Equal(pubChild.Key.Point))
	require.Equal(t, privChild.ParentFingerprint, pubChild.ParentFingerprint)
}

func TestCKDPubRejectsHardenedIndex(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	master, err := MasterKeyFromSeed(seed, false)
	require.NoError(t, err)

	_, err = CKDPub(master.Neuter(), HardenedOffset)
	require.ErrorIs(t, err, ErrHardenedFromPublic)
}

func TestKeyStoreMatchesDirectDerivation(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	ks, err := NewKeyStore(seed, false)
	require.NoError(t, err)

	viaPath, err := ks.GetKey("m/0'")
	require.NoError(t, err)

	master, err := MasterKeyFromSeed(seed, false)
	require.NoError(t, err)
	viaDirect, err := DeriveChild(master, HardenedOffset)
	require.NoError(t, err)

	require.Equal(t, viaDirect.Serialize(), viaPath.Serialize())
}
