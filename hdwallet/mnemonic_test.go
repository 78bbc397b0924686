package hdwallet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateMnemonicWordCounts(t *testing.T) {
	cases := map[int]int{128: 12, 160: 15, 192: 18, 224: 21, 256: 24}
	for bits, wantWords := range cases {
		m, err := GenerateMnemonic(bits)
		require.NoError(t, err)
		require.Len(t, strings.Split(m, " "), wantWords)
		require.NoError(t, ValidateMnemonic(m))
	}
}

func TestGenerateMnemonicBadSize(t *testing.T) {
	_, err := GenerateMnemonic(100)
	require.ErrorIs(t, err, ErrBadEntropySize)
}

func TestValidateMnemonicBadWordCount(t *testing.T) {
	err := ValidateMnemonic("abandon abandon abandon")
	require.ErrorIs(t, err, ErrBadWordCount)
}

func TestValidateMnemonicBadWord(t *testing.T) {
	words := make([]string, 12)
	for i := range words {
		words[i] = "abandon"
	}
	words[5] = "notaword"
	err := ValidateMnemonic(strings.Join(words, " "))
	require.ErrorIs(t, err, ErrBadWord)
}

func TestValidateMnemonicBadChecksum(t *testing.T) {
	words := make([]string, 12)
	for i := range words {
		words[i] = "abandon"
	}
	words[11] = "zoo" // wrong checksum tail for an all-"abandon" prefix
	err := ValidateMnemonic(strings.Join(words, " "))
	require.Error(t, err)
}

func TestPBKDF2SeedDeterministic(t *testing.T) {
	mnemonic := "answer act aspect mansion report own orphan mixed leader gate siren there"
	require.NoError(t, ValidateMnemonic(mnemonic))

	seed1 := seedFromMnemonic(mnemonic, "")
	seed2 := seedFromMnemonic(mnemonic, "")
	require.Equal(t, seed1, seed2)
	require.Len(t, seed1, 64)

	seedWithPassphrase := seedFromMnemonic(mnemonic, "TREZOR")
	require.NotEqual(t, seed1, seedWithPassphrase)
}

func TestFlippingEntropyBreaksChecksum(t *testing.T) {
	// A fixed mnemonic: with a 4-bit checksum, a flipped entropy bit in a
	// random mnemonic still validates about one time in sixteen.
	m := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	require.NoError(t, ValidateMnemonic(m))

	words := strings.Split(m, " ")
	original := words[0]
	idx := reverseWordlist[original]
	words[0] = englishWordlist[idx^1]

	err := ValidateMnemonic(strings.Join(words, " "))
	require.Error(t, err)
}
