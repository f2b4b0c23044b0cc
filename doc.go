// Package fraction implements exact rational numbers with a 64-bit signed
// numerator and a 64-bit unsigned denominator.
//
// Every [Fraction] is kept in canonical form: lowest terms, positive
// denominator, sign carried by the numerator, and zero stored as 0/1. The
// canonical form is unique per value, so two fractions are equal exactly when
// they compare equal using ==.
//
// The zero value is 0/1, and ready to use. Other values may be obtained using
// [FromInt64], [New], [Try], [Of], or [FromInt].
//
// Arithmetic never rounds. Results that cannot be represented in the fixed
// width fields are reported as errors (see [ErrOverflow]), rather than
// wrapping. Each operation is available in two forms:
//
//   - pointer methods such as [Fraction.AddAssign], which update the receiver
//     in place, or return an error and leave it unchanged
//   - value methods such as [Fraction.Add], which return a new value, and panic
//     with the same error on failure
//
// Ordering uses exact 128-bit cross-multiplication, see [Fraction.Cmp].
package fraction
