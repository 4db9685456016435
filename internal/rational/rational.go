// Package rational implements exact fractions and mixed numbers with 64-bit
// components.
//
// A Rational is always kept in canonical mixed form: the whole part carries
// the sign when it is non-zero, the fractional part is reduced and strictly
// smaller than one, and the denominator is positive. Because the form is
// unique, two Rationals can be compared with == and != directly.
package rational

import "errors"

// Common errors returned by functions in this package.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("arithmetic overflow")
	ErrNumberFormat   = errors.New("invalid number format")
)

// Rational is a canonical mixed number whole + numerator/denominator.
//
// The denominator is stored biased by one so that the zero value of the
// type is a valid 0.
type Rational struct {
	whole int64
	num   int64
	denm1 int64
}

// New returns the canonical form of num/den.
func New(num, den int64) (Rational, error) {
	return NewMixed(0, num, den)
}

// NewMixed returns the canonical form of whole num/den.
//
// When whole is non-zero, num is the magnitude of the fractional part and
// takes the sign of whole, so NewMixed(-2, 1, 4) is -2¼. When whole is zero
// the value is plain num/den and num may be negative.
func NewMixed(whole, num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrDivisionByZero
	}
	// MinInt64 has no positive counterpart; keeping it out makes negation safe.
	if whole == minInt64 || num == minInt64 || den == minInt64 {
		return Rational{}, ErrOverflow
	}
	if den < 0 {
		num, den = -num, -den
	}
	if whole == 0 {
		return canonical(num, den), nil
	}

	if whole < 0 {
		num = -num
	}
	n, err := mul(whole, den)
	if err != nil {
		return Rational{}, err
	}
	n, err = add(n, num)
	if err != nil {
		return Rational{}, err
	}
	return canonical(n, den), nil
}

// MustNew is like New but panics on error.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// MustMixed is like NewMixed but panics on error.
func MustMixed(whole, num, den int64) Rational {
	r, err := NewMixed(whole, num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// Int returns the natural (or negative) integer n.
func Int(n int64) Rational {
	return Rational{whole: n}
}

// canonical reduces num/den (den > 0) and folds the integer part into whole.
func canonical(num, den int64) Rational {
	g := gcd(abs(num), den)
	if g > 1 {
		num /= g
		den /= g
	}

	whole := num / den
	rem := num % den
	if whole != 0 {
		rem = abs(rem)
	}
	if rem == 0 {
		return Rational{whole: whole}
	}
	return Rational{whole: whole, num: rem, denm1: den - 1}
}

// Whole returns the signed integer part.
func (r Rational) Whole() int64 { return r.whole }

// Numerator returns the numerator of the fractional part. It is negative
// only for values in (-1, 0).
func (r Rational) Numerator() int64 { return r.num }

// Denominator returns the denominator of the fractional part, 1 when there
// is no fractional part.
func (r Rational) Denominator() int64 { return r.denm1 + 1 }

// Improper returns the value as a single reduced fraction num/den.
func (r Rational) Improper() (num, den int64, err error) {
	den = r.Denominator()
	if r.whole == 0 {
		return r.num, den, nil
	}
	num, err = mul(r.whole, den)
	if err != nil {
		return 0, 0, err
	}
	frac := r.num
	if r.whole < 0 {
		frac = -frac
	}
	num, err = add(num, frac)
	if err != nil {
		return 0, 0, err
	}
	return num, den, nil
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool {
	return r.whole == 0 && r.num == 0
}

// IsProperFraction reports whether r has no whole part, i.e. |r| < 1.
func (r Rational) IsProperFraction() bool {
	return r.whole == 0 && abs(r.num) < r.Denominator()
}

// IsNonNegative reports whether r >= 0.
func (r Rational) IsNonNegative() bool {
	switch {
	case r.whole > 0:
		return true
	case r.whole < 0:
		return false
	}
	return r.num >= 0
}

// Sign returns -1, 0 or +1 depending on the sign of r.
func (r Rational) Sign() int {
	switch {
	case r.whole > 0:
		return 1
	case r.whole < 0:
		return -1
	case r.num > 0:
		return 1
	case r.num < 0:
		return -1
	}
	return 0
}

// Cmp compares r and o and returns -1, 0 or +1.
func (r Rational) Cmp(o Rational) (int, error) {
	d, err := r.Sub(o)
	if err != nil {
		return 0, err
	}
	return d.Sign(), nil
}
