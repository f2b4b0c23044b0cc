package fraction

import (
	"math"
	"math/bits"
)

// AddAssign sets x to x + y. On error, x is unchanged, and the error wraps
// [ErrOverflow].
//
// The denominators are first reduced by their gcd, g, giving the numerator
// x.num*(y.den/g) + y.num*(x.den/g) over (x.den/g)*y.den. The numerator is
// computed using 128 bits, so the only failure mode is a canonical result
// that does not fit.
func (x *Fraction) AddAssign(y Fraction) error {
	v, err := add(x.term(), y.term())
	if err != nil {
		return opError(`add`, err, *x, y)
	}
	*x = v
	return nil
}

// SubAssign sets x to x - y, i.e. x + -y, see also [Fraction.AddAssign].
func (x *Fraction) SubAssign(y Fraction) error {
	t := y.term()
	t.neg = !t.neg
	v, err := add(x.term(), t)
	if err != nil {
		return opError(`sub`, err, *x, y)
	}
	*x = v
	return nil
}

// MulAssign sets x to x * y. On error, x is unchanged, and the error wraps
// [ErrOverflow].
//
// Each numerator is cross-reduced against the other denominator prior to
// multiplication, so that intermediate values are as small as possible.
func (x *Fraction) MulAssign(y Fraction) error {
	v, err := mul(x.term(), y.term())
	if err != nil {
		return opError(`mul`, err, *x, y)
	}
	*x = v
	return nil
}

// DivAssign sets x to x / y, i.e. x multiplied by the reciprocal of y. On
// error, x is unchanged, and the error wraps [ErrDivisionByZero] (if y is
// zero) or [ErrOverflow].
func (x *Fraction) DivAssign(y Fraction) error {
	var v Fraction
	err := ErrDivisionByZero
	if y.num != 0 {
		t := y.term()
		t.num, t.den = t.den, t.num
		v, err = mul(x.term(), t)
	}
	if err != nil {
		return opError(`div`, err, *x, y)
	}
	*x = v
	return nil
}

// NegAssign sets x to -x. The only value that cannot be negated is one with
// a numerator of math.MinInt64, for which an error wrapping [ErrOverflow] is
// returned.
func (x *Fraction) NegAssign() error {
	if x.num == math.MinInt64 {
		return opError(`neg`, ErrOverflow, *x)
	}
	x.num = -x.num
	return nil
}

// Add returns x + y, panicking on error, see [Fraction.AddAssign].
func (x Fraction) Add(y Fraction) Fraction {
	if err := x.AddAssign(y); err != nil {
		panic(err)
	}
	return x
}

// Sub returns x - y, panicking on error, see [Fraction.SubAssign].
func (x Fraction) Sub(y Fraction) Fraction {
	if err := x.SubAssign(y); err != nil {
		panic(err)
	}
	return x
}

// Mul returns x * y, panicking on error, see [Fraction.MulAssign].
func (x Fraction) Mul(y Fraction) Fraction {
	if err := x.MulAssign(y); err != nil {
		panic(err)
	}
	return x
}

// Div returns x / y, panicking on error, see [Fraction.DivAssign].
func (x Fraction) Div(y Fraction) Fraction {
	if err := x.DivAssign(y); err != nil {
		panic(err)
	}
	return x
}

// Neg returns -x, panicking on error, see [Fraction.NegAssign].
func (x Fraction) Neg() Fraction {
	if err := x.NegAssign(); err != nil {
		panic(err)
	}
	return x
}

// add expects both terms to be in lowest terms.
func add(a, b term) (Fraction, error) {
	if a.num == 0 {
		return b.fraction()
	}
	if b.num == 0 {
		return a.fraction()
	}

	g := gcd(a.den, b.den)
	l := a.den / g

	// t = a.num*(b.den/g) +/- b.num*l, as 128 bits, signed by neg
	h1, l1 := bits.Mul64(a.num, b.den/g)
	h2, l2 := bits.Mul64(b.num, l)
	var hi, lo uint64
	neg := a.neg
	if a.neg == b.neg {
		// magnitudes are at most 2^63, so each product is under 2^127
		var carry uint64
		lo, carry = bits.Add64(l1, l2, 0)
		hi, _ = bits.Add64(h1, h2, carry)
	} else {
		if h2 > h1 || (h2 == h1 && l2 > l1) {
			h1, l1, h2, l2 = h2, l2, h1, l1
			neg = b.neg
		}
		var borrow uint64
		lo, borrow = bits.Sub64(l1, l2, 0)
		hi, _ = bits.Sub64(h1, h2, borrow)
	}
	if hi == 0 && lo == 0 {
		return Fraction{}, nil
	}

	// t shares no factor with l, or with b.den/g, so any common factor with
	// the denominator l*b.den must divide g
	g = gcd(g, bits.Rem64(hi, lo, g))
	if hi/g != 0 {
		return Fraction{}, ErrOverflow
	}
	lo, _ = bits.Div64(hi%g, lo, g)
	dh, dl := bits.Mul64(l, b.den/g)
	if dh != 0 {
		return Fraction{}, ErrOverflow
	}

	return term{neg: neg, num: lo, den: dl}.fraction()
}

// mul expects both terms to be in lowest terms.
func mul(a, b term) (Fraction, error) {
	if a.num == 0 || b.num == 0 {
		return Fraction{}, nil
	}

	g1 := gcd(a.num, b.den)
	g2 := gcd(b.num, a.den)

	nh, nl := bits.Mul64(a.num/g1, b.num/g2)
	dh, dl := bits.Mul64(a.den/g2, b.den/g1)
	if nh != 0 || dh != 0 {
		return Fraction{}, ErrOverflow
	}

	return term{neg: a.neg != b.neg, num: nl, den: dl}.fraction()
}
