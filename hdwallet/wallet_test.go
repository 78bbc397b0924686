package hdwallet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWalletDerivesBIP44Key(t *testing.T) {
	w, err := New(128, "", false)
	require.NoError(t, err)
	require.NotEmpty(t, w.Mnemonic())
	require.Len(t, w.Seed(), 64)

	key, err := w.GetKey("m/44'/0'/0'/0/0")
	require.NoError(t, err)
	require.Equal(t, byte(5), key.Depth)
}

func TestFromMnemonicRejectsInvalidMnemonic(t *testing.T) {
	_, err := FromMnemonic("not a valid mnemonic at all here please", "", false)
	require.Error(t, err)
}

func TestGetKeyBadPath(t *testing.T) {
	w, err := New(128, "", false)
	require.NoError(t, err)

	_, err = w.GetKey("0/1")
	require.ErrorIs(t, err, ErrBadPath)

	_, err = w.GetKey("m/abc")
	require.ErrorIs(t, err, ErrBadPath)

	_, err = w.GetKey("m/")
	require.ErrorIs(t, err, ErrBadPath)
}

func TestGetKeyDeterministic(t *testing.T) {
	w, err := New(256, "super secret passphrase", true)
	require.NoError(t, err)

	k1, err := w.GetKey("m/0'/1/2'/2/1000000000")
	require.NoError(t, err)
	k2, err := w.GetKey("m/0'/1/2'/2/1000000000")
	require.NoError(t, err)

	require.Equal(t, k1.Serialize(), k2.Serialize())
}

func TestDeriveKeyFromPathBIP44(t *testing.T) {
	w, err := New(128, "", false)
	require.NoError(t, err)

	master, err := MasterKeyFromSeed(w.Seed(), false)
	require.NoError(t, err)

	child, err := DeriveKeyFromPath(master, 0, 0, 0, 0)
	require.NoError(t, err)

	viaPath, err := w.GetKey("m/44'/0'/0'/0/0")
	require.NoError(t, err)

	require.Equal(t, viaPath.Serialize(), child.Serialize())
}

func TestTronAddressFromDerivedKey(t *testing.T) {
	w, err := New(128, "", false)
	require.NoError(t, err)

	key, err := w.GetKey("m/44'/195'/0'/0/0")
	require.NoError(t, err)

	addr := TronAddress(key.Key.GeneratePublicKey())
	require.True(t, len(addr) > 0 && addr[0] == 'T')
}
