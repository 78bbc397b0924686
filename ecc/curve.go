// Package ecc implements the secp256k1 field and curve arithmetic that
// the rest of this module builds on: modular inverse, Tonelli-Shanks
// square roots, and affine point operations.
package ecc

import "math/big"

// Curve holds the parameters of a short Weierstrass curve
// y^2 = x^3 + a*x + b (mod P).
type Curve struct {
	Name string
	A    *big.Int
	B    *big.Int
	P    *big.Int
	Gx   *big.Int
	Gy   *big.Int
	N    *big.Int // order of the generator's subgroup
	H    *big.Int // cofactor
}

var secp256k1 = &Curve{
	Name: "secp256k1",
	A:    big.NewInt(0),
	B:    big.NewInt(7),
	P:    hexInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
	Gx:   hexInt("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
	Gy:   hexInt("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
	N:    hexInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
	H:    big.NewInt(1),
}

func hexInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ecc: invalid hex constant " + s)
	}
	return n
}

// Secp256k1 returns the fixed curve-parameter record used by Bitcoin.
// Curve parameters are a record, not a runtime choice: callers never
// construct their own Curve.
func Secp256k1() *Curve {
	return secp256k1
}

// modinv computes a^-1 mod p via Fermat's little theorem (p prime):
// a^(p-2) mod p.
func modinv(a, p *big.Int) *big.Int {
	exp := new(big.Int).Sub(p, big.NewInt(2))
	return new(big.Int).Exp(a, exp, p)
}

// legendre returns the Legendre symbol of n mod p: 1 if n is a nonzero
// quadratic residue, -1 if it is a non-residue, 0 if n ≡ 0.
func legendre(n, p *big.Int) int {
	if new(big.Int).Mod(n, p).Sign() == 0 {
		return 0
	}
	exp := new(big.Int).Rsh(p, 1) // (p-1)/2, since p is odd
	r := new(big.Int).Exp(n, exp, p)
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	if r.Cmp(pMinus1) == 0 {
		return -1
	}
	return 1
}

// ErrNotAQuadraticResidue is returned by tonelliShanks when n has no
// square root mod p.
type notAQuadraticResidueError struct{}

func (notAQuadraticResidueError) Error() string { return "ecc: not a quadratic residue mod p" }

// ErrNotAQuadraticResidue is the sentinel returned when tonelliShanks's
// input has no square root modulo p.
var ErrNotAQuadraticResidue error = notAQuadraticResidueError{}

// tonelliShanks returns both square roots (r, p-r) of n mod p, with p
// an odd prime. It implements the general Tonelli-Shanks loop rather
// than the p ≡ 3 (mod 4) shortcut, per the spec this is ported from.
func tonelliShanks(n, p *big.Int) (*big.Int, *big.Int, error) {
	if legendre(n, p) != 1 {
		return nil, nil, ErrNotAQuadraticResidue
	}

	one := big.NewInt(1)
	two := big.NewInt(2)

	// Factor p-1 = q * 2^s with q odd.
	q := new(big.Int).Sub(p, one)
	s := 0
	for new(big.Int).And(q, one).Sign() == 0 {
		s++
		q.Rsh(q, 1)
	}

	// Find the least z with Legendre symbol -1.
	z := big.NewInt(1)
	for legendre(z, p) != -1 {
		z.Add(z, one)
	}

	m := s
	c := new(big.Int).Exp(z, q, p)
	t := new(big.Int).Exp(n, q, p)
	qPlus1Over2 := new(big.Int).Rsh(new(big.Int).Add(q, one), 1)
	r := new(big.Int).Exp(n, qPlus1Over2, p)

	for t.Cmp(one) != 0 {
		// Find the least i in [1, m) with t^(2^i) == 1 mod p.
		i := 1
		t2i := new(big.Int).Set(t)
		for ; i < m; i++ {
			t2i = new(big.Int).Exp(t2i, two, p)
			if t2i.Cmp(one) == 0 {
				break
			}
		}

		bExp := new(big.Int).Lsh(one, uint(m-i-1))
		b := new(big.Int).Exp(c, bExp, p)

		m = i
		c = new(big.Int).Exp(b, two, p)
		t = new(big.Int).Mod(new(big.Int).Mul(t, c), p)
		r = new(big.Int).Mod(new(big.Int).Mul(r, b), p)
	}

	return r, new(big.Int).Sub(p, r), nil
}
