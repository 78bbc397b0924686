package keys

import (
	"math/big"
	"strings"
	"testing"

	"github.com/not-for-prod/hdwallet/ecc"
	"github.com/stretchr/testify/require"
)

func TestGeneratePublicKeyMatchesScalarMul(t *testing.T) {
	pk, err := GeneratePrivateKey(false, true)
	require.NoError(t, err)

	pub := pk.GeneratePublicKey()
	want := ecc.Generator().ScalarMul(pk.K)
	require.True(t, pub.Point.Equal(want))
}

func TestWIFRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		testnet    bool
		compressed bool
	}{
		{false, false},
		{false, true},
		{true, false},
		{true, true},
	} {
		pk, err := GeneratePrivateKey(tc.testnet, tc.compressed)
		require.NoError(t, err)

		wif := pk.ToWIF()
		decoded, err := PrivateKeyFromWIF(wif)
		require.NoError(t, err)

		require.Equal(t, pk.K, decoded.K)
		require.Equal(t, tc.testnet, decoded.Testnet)
		require.Equal(t, tc.compressed, decoded.Compressed)
	}
}

func TestNewPrivateKeyRejectsOutOfRange(t *testing.T) {
	_, err := NewPrivateKey(big.NewInt(0), false, true)
	require.ErrorIs(t, err, ErrInvalidKey)

	_, err = NewPrivateKey(ecc.Secp256k1().N, false, true)
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestSEC1Encodings(t *testing.T) {
	pk, err := GeneratePrivateKey(false, true)
	require.NoError(t, err)
	pub := pk.GeneratePublicKey()

	compressed := pub.SerializeCompressed()
	require.Len(t, compressed, 33)
	require.Contains(t, []byte{0x02, 0x03}, compressed[0])

	uncompressed := pub.SerializeUncompressed()
	require.Len(t, uncompressed, 65)
	require.Equal(t, byte(0x04), uncompressed[0])
}

func TestAddressPrefixes(t *testing.T) {
	pk, err := GeneratePrivateKey(false, true)
	require.NoError(t, err)
	mainnetAddr := pk.GeneratePublicKey().Address(true)
	require.True(t, strings.HasPrefix(mainnetAddr, "1"))

	pkTest, err := GeneratePrivateKey(true, true)
	require.NoError(t, err)
	testnetAddr := pkTest.GeneratePublicKey().Address(true)
	require.True(t, strings.HasPrefix(testnetAddr, "m") || strings.HasPrefix(testnetAddr, "n"))
}

func TestCompressedRoundTrip(t *testing.T) {
	pk, err := GeneratePrivateKey(false, true)
	require.NoError(t, err)
	pub := pk.GeneratePublicKey()

	decoded, err := PublicKeyFromCompressed(pub.SerializeCompressed(), false)
	require.NoError(t, err)
	require.True(t, decoded.Point.Equal(pub.Point))
}
