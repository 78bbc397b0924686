package ecc

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModinv(t *testing.T) {
	p := Secp256k1().P
	a := big.NewInt(12345)
	inv := modinv(a, p)

	product := new(big.Int).Mul(a, inv)
	product.Mod(product, p)
	require.Equal(t, int64(1), product.Int64())
}

func TestLegendreGeneratorSquare(t *testing.T) {
	c := Secp256k1()
	gxCubedPlusB := new(big.Int).Exp(c.Gx, big.NewInt(3), c.P)
	gxCubedPlusB.Add(gxCubedPlusB, c.B)
	gxCubedPlusB.Mod(gxCubedPlusB, c.P)

	require.Equal(t, 1, legendre(gxCubedPlusB, c.P))
}

func TestTonelliShanksRoundTrip(t *testing.T) {
	c := Secp256k1()
	n := big.NewInt(1234567)
	nSq := new(big.Int).Exp(n, big.NewInt(2), c.P)

	r1, r2, err := tonelliShanks(nSq, c.P)
	require.NoError(t, err)

	sumMod := new(big.Int).Add(r1, r2)
	sumMod.Mod(sumMod, c.P)
	require.Equal(t, int64(0), sumMod.Int64())

	r1Sq := new(big.Int).Exp(r1, big.NewInt(2), c.P)
	require.Equal(t, nSq.Text(16), r1Sq.Text(16))
}

func TestTonelliShanksNonResidue(t *testing.T) {
	c := Secp256k1()
	// Find a non-residue deterministically: 3 is a non-residue mod secp256k1's p.
	nonResidue := big.NewInt(3)
	require.Equal(t, -1, legendre(nonResidue, c.P))

	_, _, err := tonelliShanks(nonResidue, c.P)
	require.ErrorIs(t, err, ErrNotAQuadraticResidue)
}
