package fraction

import (
	"math/bits"
)

// Cmp returns -1 if x < y, 0 if x == y, and +1 if x > y.
//
// Values of differing sign are ordered by sign alone. Otherwise, x.num*y.den
// and y.num*x.den are compared exactly, as 128-bit products.
func (x Fraction) Cmp(y Fraction) int {
	if x == y {
		return 0
	}
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	a, b := x.term(), y.term()
	h1, l1 := bits.Mul64(a.num, b.den)
	h2, l2 := bits.Mul64(b.num, a.den)
	c := 1
	if h1 < h2 || (h1 == h2 && l1 < l2) {
		c = -1
	}
	if xs < 0 {
		c = -c
	}
	return c
}

// Equal is equivalent to x == y, which is valid as the canonical form of
// each value is unique.
func (x Fraction) Equal(y Fraction) bool {
	return x == y
}

// Less returns true if x < y.
func (x Fraction) Less(y Fraction) bool {
	return x.Cmp(y) < 0
}

// Greater returns true if x > y.
func (x Fraction) Greater(y Fraction) bool {
	return y.Less(x)
}

// LessOrEqual returns true if x <= y.
func (x Fraction) LessOrEqual(y Fraction) bool {
	return !y.Less(x)
}

// GreaterOrEqual returns true if x >= y.
func (x Fraction) GreaterOrEqual(y Fraction) bool {
	return !x.Less(y)
}
