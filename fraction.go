package fraction

import (
	"fmt"
	"math/bits"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Fraction is an exact rational number, numerator/denominator, in canonical
// form. See the package documentation for details.
//
// Fraction has value semantics, and may be freely copied.
type Fraction struct {
	num int64
	// den is the denominator minus one, so the zero value is 0/1
	den uint64
}

// FromInt64 returns x/1.
func FromInt64(x int64) Fraction {
	return Fraction{num: x}
}

// FromInt returns x/1, for any integer type. It returns an error wrapping
// [ErrOverflow] if x does not fit an int64.
func FromInt[T constraints.Integer](x T) (Fraction, error) {
	return Of(x, 1)
}

// Of returns num/den in canonical form, for any integer types. The values
// are converted to a sign and 64-bit magnitude, explicitly, then reduced.
//
// An error wrapping [ErrZeroDenominator] is returned if den is zero, and an
// error wrapping [ErrOverflow] is returned if the reduced numerator does not
// fit an int64, e.g. for math.MaxUint64/1.
func Of[N, D constraints.Integer](num N, den D) (Fraction, error) {
	nNeg, nMag := split(num)
	dNeg, dMag := split(den)
	v, err := term{neg: nNeg != dNeg, num: nMag, den: dMag}.fraction()
	if err != nil {
		return Fraction{}, fmt.Errorf("fraction: new(%d, %d): %w", num, den, err)
	}
	return v, nil
}

// Try returns num/den in canonical form, or an error if den is zero
// ([ErrZeroDenominator]), or the canonical form is not representable
// ([ErrOverflow], only possible for math.MinInt64/-1 and equivalents).
func Try(num, den int64) (Fraction, error) {
	return Of(num, den)
}

// New is like [Try], but panics on error. The den parameter must not be 0.
func New(num, den int64) Fraction {
	v, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return v
}

// Numerator returns the numerator of x, which carries its sign.
func (x Fraction) Numerator() int64 {
	return x.num
}

// Denominator returns the denominator of x, which is always positive.
func (x Fraction) Denominator() uint64 {
	return x.den + 1
}

// Sign returns -1, 0, or +1, for negative, zero, and positive x.
func (x Fraction) Sign() int {
	switch {
	case x.num < 0:
		return -1
	case x.num > 0:
		return 1
	default:
		return 0
	}
}

// IsZero returns true if x is 0/1.
func (x Fraction) IsZero() bool {
	return x.num == 0
}

// IsInt returns true if the denominator of x is 1.
func (x Fraction) IsInt() bool {
	return x.den == 0
}

// Float64 returns the nearest float64 to numerator/denominator, as computed
// by floating point division, which may lose precision. The exact result is
// true if f represents x exactly.
func (x Fraction) Float64() (f float64, exact bool) {
	if x.num == 0 {
		return 0, true
	}
	den := x.Denominator()
	f = float64(x.num) / float64(den)
	mag := abs64(x.num)
	exact = bits.Len64(mag)-bits.TrailingZeros64(mag) <= 53 && den&(den-1) == 0
	return f, exact
}

// String returns x formatted as "numerator/denominator", e.g. "3/1".
func (x Fraction) String() string {
	b := x.Append(make([]byte, 0, 24))
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Append appends x formatted as per [Fraction.String] to b.
func (x Fraction) Append(b []byte) []byte {
	b = strconv.AppendInt(b, x.num, 10)
	b = append(b, '/')
	return strconv.AppendUint(b, x.Denominator(), 10)
}
