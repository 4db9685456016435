package rational

import "math"

const minInt64 = math.MinInt64

// Add returns r + o.
func (r Rational) Add(o Rational) (Rational, error) {
	a, b, c, d, err := operands(r, o)
	if err != nil {
		return Rational{}, err
	}
	// a/b + c/d = (ad + cb) / bd
	ad, err := mul(a, d)
	if err != nil {
		return Rational{}, err
	}
	cb, err := mul(c, b)
	if err != nil {
		return Rational{}, err
	}
	num, err := add(ad, cb)
	if err != nil {
		return Rational{}, err
	}
	den, err := mul(b, d)
	if err != nil {
		return Rational{}, err
	}
	return New(num, den)
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) (Rational, error) {
	a, b, c, d, err := operands(r, o)
	if err != nil {
		return Rational{}, err
	}
	ad, err := mul(a, d)
	if err != nil {
		return Rational{}, err
	}
	cb, err := mul(c, b)
	if err != nil {
		return Rational{}, err
	}
	num, err := add(ad, -cb)
	if err != nil {
		return Rational{}, err
	}
	den, err := mul(b, d)
	if err != nil {
		return Rational{}, err
	}
	return New(num, den)
}

// Mul returns r × o.
func (r Rational) Mul(o Rational) (Rational, error) {
	a, b, c, d, err := operands(r, o)
	if err != nil {
		return Rational{}, err
	}
	// Cross-reduce first so that products of already reduced values stay small.
	if g := gcd(abs(a), d); g > 1 {
		a, d = a/g, d/g
	}
	if g := gcd(abs(c), b); g > 1 {
		c, b = c/g, b/g
	}
	num, err := mul(a, c)
	if err != nil {
		return Rational{}, err
	}
	den, err := mul(b, d)
	if err != nil {
		return Rational{}, err
	}
	return New(num, den)
}

// Div returns r ÷ o. It fails with ErrDivisionByZero when o is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	a, b, c, d, err := operands(r, o)
	if err != nil {
		return Rational{}, err
	}
	// a/b ÷ c/d = ad / bc
	if g := gcd(abs(a), abs(c)); g > 1 {
		a, c = a/g, c/g
	}
	if g := gcd(b, d); g > 1 {
		b, d = b/g, d/g
	}
	num, err := mul(a, d)
	if err != nil {
		return Rational{}, err
	}
	den, err := mul(b, c)
	if err != nil {
		return Rational{}, err
	}
	return New(num, den)
}

// operands converts both values to improper form.
func operands(r, o Rational) (a, b, c, d int64, err error) {
	a, b, err = r.Improper()
	if err != nil {
		return
	}
	c, d, err = o.Improper()
	return
}

// mul returns a*b or ErrOverflow. MinInt64 is treated as out of range.
func mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/b != a || c == minInt64 || (a == -1 && b == minInt64) || (b == -1 && a == minInt64) {
		return 0, ErrOverflow
	}
	return c, nil
}

// add returns a+b or ErrOverflow. MinInt64 is treated as out of range.
func add(a, b int64) (int64, error) {
	c := a + b
	if (c > a) != (b > 0) || c == minInt64 {
		return 0, ErrOverflow
	}
	return c, nil
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the absolute value of n.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
