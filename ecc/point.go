package ecc

import (
	"errors"
	"math/big"
)

// Parity selects which square root FromX should return: the one whose
// low bit matches the compressed SEC1 prefix (0x02 even, 0x03 odd).
type Parity int

const (
	Even Parity = 2
	Odd  Parity = 3
)

// ErrInvalidCoordinate is returned when a coordinate is negative or >= P.
var ErrInvalidCoordinate = errors.New("ecc: coordinate out of range")

// ErrNotOnCurve is returned when (x, y) does not satisfy y^2 = x^3 + 7.
var ErrNotOnCurve = errors.New("ecc: point not on curve")

// Point is an affine point on secp256k1. The pair (0, 0) is the
// distinguished point at infinity (the additive identity); it is not a
// point on the curve proper but is never rejected by construction.
//
// Points are immutable value objects: every operation returns a new
// Point rather than mutating a receiver.
type Point struct {
	X, Y *big.Int
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{X: big.NewInt(0), Y: big.NewInt(0)}
}

// Generator returns secp256k1's base point G.
func Generator() Point {
	c := Secp256k1()
	return Point{X: new(big.Int).Set(c.Gx), Y: new(big.Int).Set(c.Gy)}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.X.Sign() == 0 && p.Y.Sign() == 0
}

// NewPoint validates and constructs a point. Both coordinates must be
// non-negative and below P; unless the point is the identity, it must
// satisfy the curve equation.
func NewPoint(x, y *big.Int) (Point, error) {
	c := Secp256k1()

	if x.Sign() < 0 || y.Sign() < 0 {
		return Point{}, ErrInvalidCoordinate
	}
	if x.Cmp(c.P) >= 0 || y.Cmp(c.P) >= 0 {
		return Point{}, ErrInvalidCoordinate
	}

	if x.Sign() != 0 || y.Sign() != 0 {
		ySq := new(big.Int).Exp(y, big.NewInt(2), c.P)
		xCubedPlusB := new(big.Int).Exp(x, big.NewInt(3), c.P)
		xCubedPlusB.Add(xCubedPlusB, c.B)
		xCubedPlusB.Mod(xCubedPlusB, c.P)
		if ySq.Cmp(xCubedPlusB) != 0 {
			return Point{}, ErrNotOnCurve
		}
	}

	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}, nil
}

// FromX reconstructs a point from its x-coordinate and the desired
// y-parity, as used when decompressing a SEC1 compressed public key.
func FromX(x *big.Int, parity Parity) (Point, error) {
	c := Secp256k1()

	rhs := new(big.Int).Exp(x, big.NewInt(3), c.P)
	rhs.Add(rhs, c.B)
	rhs.Mod(rhs, c.P)

	y1, y2, err := tonelliShanks(rhs, c.P)
	if err != nil {
		return Point{}, err
	}

	var y *big.Int
	y1Odd := y1.Bit(0) == 1
	switch parity {
	case Odd:
		if y1Odd {
			y = y1
		} else {
			y = y2
		}
	default: // Even
		if y1Odd {
			y = y2
		} else {
			y = y1
		}
	}

	return NewPoint(x, y)
}

// Equal reports componentwise equality.
func (p Point) Equal(other Point) bool {
	return p.X.Cmp(other.X) == 0 && p.Y.Cmp(other.Y) == 0
}

// Negate returns -P. Negating the identity yields the identity.
func (p Point) Negate() Point {
	if p.IsIdentity() {
		return Identity()
	}
	c := Secp256k1()
	negY := new(big.Int).Neg(p.Y)
	negY.Mod(negY, c.P)
	return Point{X: new(big.Int).Set(p.X), Y: negY}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	c := Secp256k1()

	if p.IsIdentity() {
		return q
	}
	if q.IsIdentity() {
		return p
	}

	if p.X.Cmp(q.X) == 0 {
		negQy := new(big.Int).Neg(q.Y)
		negQy.Mod(negQy, c.P)
		if p.Y.Cmp(negQy) == 0 {
			return Identity()
		}
	}

	var s *big.Int
	if p.Equal(q) {
		// Doubling: s = 3*x^2 * (2y)^-1 mod P.
		num := new(big.Int).Exp(p.X, big.NewInt(2), c.P)
		num.Mul(num, big.NewInt(3))
		num.Mod(num, c.P)

		den := new(big.Int).Lsh(p.Y, 1)
		den.Mod(den, c.P)
		den = modinv(den, c.P)

		s = new(big.Int).Mul(num, den)
		s.Mod(s, c.P)
	} else {
		num := new(big.Int).Sub(p.Y, q.Y)
		num.Mod(num, c.P)

		den := new(big.Int).Sub(p.X, q.X)
		den.Mod(den, c.P)
		den = modinv(den, c.P)

		s = new(big.Int).Mul(num, den)
		s.Mod(s, c.P)
	}

	newX := new(big.Int).Exp(s, big.NewInt(2), c.P)
	newX.Sub(newX, p.X)
	newX.Sub(newX, q.X)
	newX.Mod(newX, c.P)

	newY := new(big.Int).Sub(p.X, newX)
	newY.Mul(newY, s)
	newY.Sub(newY, p.Y)
	newY.Mod(newY, c.P)

	return Point{X: newX, Y: newY}
}

// ScalarMul returns k*p for an arbitrary integer k (positive, negative,
// or zero), using right-to-left double-and-add over the bits of |k|.
func (p Point) ScalarMul(k *big.Int) Point {
	if k.Sign() == 0 {
		return Identity()
	}
	if k.Sign() < 0 {
		return p.ScalarMul(new(big.Int).Neg(k)).Negate()
	}

	n := p
	q := Identity()
	rem := new(big.Int).Set(k)
	zero := big.NewInt(0)
	one := big.NewInt(1)

	for rem.Cmp(zero) > 0 {
		if new(big.Int).And(rem, one).Sign() != 0 {
			q = q.Add(n)
		}
		n = n.Add(n)
		rem.Rsh(rem, 1)
	}

	return q
}
