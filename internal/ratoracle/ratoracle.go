// Package ratoracle models fixed-width fraction arithmetic using
// [math/big.Rat], as an exact reference for tests.
//
// A nil *Rat represents an undefined result (NaN), e.g. division by zero, and
// is propagated by each operation.
package ratoracle

import (
	"math"
	"math/big"
	"unsafe"
)

const strNil = "<nil>"

// Rat is an exact rational number, see [math/big.Rat].
type Rat big.Rat

var (
	maxNum = new(big.Int).SetInt64(math.MaxInt64)
	minNum = new(big.Int).SetInt64(math.MinInt64)
	maxDen = new(big.Int).SetUint64(math.MaxUint64)
)

// New returns num/den, or nil if den is zero.
func New(num int64, den uint64) *Rat {
	if den == 0 {
		return nil
	}
	return (*Rat)(new(big.Rat).SetFrac(big.NewInt(num), new(big.Int).SetUint64(den)))
}

// NewInt64 returns num/den, or nil if den is zero, accepting a negative
// denominator.
func NewInt64(num, den int64) *Rat {
	if den == 0 {
		return nil
	}
	return (*Rat)(big.NewRat(num, den))
}

func (x *Rat) Value() *big.Rat {
	return (*big.Rat)(x)
}

// String formats x as "numerator/denominator", or "<nil>".
func (x *Rat) String() string {
	if x != nil {
		b := x.append(make([]byte, 0, 24))
		return unsafe.String(unsafe.SliceData(b), len(b))
	}
	return strNil
}

func (x *Rat) append(b []byte) []byte {
	b = x.Value().Num().Append(b, 10)
	b = append(b, '/')
	b = x.Value().Denom().Append(b, 10)
	return b
}

// Parts returns the canonical numerator and denominator of x, and true, or
// zeros and false, if x is nil or does not fit (see [Rat.Fits]).
func (x *Rat) Parts() (int64, uint64, bool) {
	if !x.Fits() {
		return 0, 0, false
	}
	return x.Value().Num().Int64(), x.Value().Denom().Uint64(), true
}

// Fits returns true if x is non-nil, and its canonical form has a numerator
// within the int64 range, and a denominator within the uint64 range.
func (x *Rat) Fits() bool {
	if x == nil {
		return false
	}
	num, den := x.Value().Num(), x.Value().Denom()
	return num.Cmp(maxNum) <= 0 && num.Cmp(minNum) >= 0 && den.Cmp(maxDen) <= 0
}

// Add returns x + y.
func Add(x, y *Rat) *Rat {
	if x == nil || y == nil {
		return nil
	}
	return (*Rat)(new(big.Rat).Add(x.Value(), y.Value()))
}

// Sub returns x - y.
func Sub(x, y *Rat) *Rat {
	if x == nil || y == nil {
		return nil
	}
	return (*Rat)(new(big.Rat).Sub(x.Value(), y.Value()))
}

// Mul returns x * y.
func Mul(x, y *Rat) *Rat {
	if x == nil || y == nil {
		return nil
	}
	return (*Rat)(new(big.Rat).Mul(x.Value(), y.Value()))
}

// Quo returns x / y, or nil if y is zero.
func Quo(x, y *Rat) *Rat {
	if x == nil || y == nil || y.Value().Sign() == 0 {
		return nil
	}
	return (*Rat)(new(big.Rat).Quo(x.Value(), y.Value()))
}

// Neg returns -x.
func Neg(x *Rat) *Rat {
	if x == nil {
		return nil
	}
	return (*Rat)(new(big.Rat).Neg(x.Value()))
}

// Cmp behaves like [cmp.Compare], with nil ordered before any value.
func Cmp(x, y *Rat) int {
	if x == y {
		return 0
	}
	if x == nil {
		return -1
	}
	if y == nil {
		return 1
	}
	return x.Value().Cmp(y.Value())
}
