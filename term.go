package fraction

import (
	"math"

	"golang.org/x/exp/constraints"
)

// term is the sign and magnitude form used internally, which is able to
// represent |math.MinInt64|, and denominators that are not yet validated.
type term struct {
	neg bool
	num uint64
	den uint64
}

func (x Fraction) term() term {
	return term{neg: x.num < 0, num: abs64(x.num), den: x.den + 1}
}

// fraction reduces x to lowest terms, returning it as a Fraction.
func (x term) fraction() (Fraction, error) {
	if x.den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	if x.num == 0 {
		return Fraction{}, nil
	}
	if g := gcd(x.num, x.den); g != 1 {
		x.num /= g
		x.den /= g
	}
	if x.neg {
		if x.num > 1<<63 {
			return Fraction{}, ErrOverflow
		}
		// note: 1<<63 converts to math.MinInt64, which negates to itself
		return Fraction{num: -int64(x.num), den: x.den - 1}, nil
	}
	if x.num > math.MaxInt64 {
		return Fraction{}, ErrOverflow
	}
	return Fraction{num: int64(x.num), den: x.den - 1}, nil
}

// gcd uses the Euclidean algorithm, returning a if b is 0.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs64 is correct for math.MinInt64, as negation wraps.
func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func split[T constraints.Integer](v T) (neg bool, mag uint64) {
	if v < 0 {
		return true, abs64(int64(v))
	}
	return false, uint64(v)
}
