package fraction

import (
	"errors"
	"fmt"
)

// Errors reported by this package, always wrapped, use [errors.Is] to check
// for them.
var (
	// ErrZeroDenominator indicates an attempt to construct a fraction with a
	// zero denominator.
	ErrZeroDenominator = errors.New(`zero denominator`)

	// ErrDivisionByZero indicates division by a zero fraction.
	ErrDivisionByZero = errors.New(`division by zero`)

	// ErrOverflow indicates that the canonical form of a result does not fit
	// an int64 numerator and a uint64 denominator.
	ErrOverflow = errors.New(`overflow`)
)

func opError(op string, err error, operands ...Fraction) error {
	b := make([]byte, 0, 64)
	b = append(b, op...)
	b = append(b, '(')
	for i, v := range operands {
		if i != 0 {
			b = append(b, ',', ' ')
		}
		b = v.Append(b)
	}
	b = append(b, ')')
	return fmt.Errorf("fraction: %s: %w", b, err)
}
