package problemgen

import (
	"github.com/abhisek/mathex/internal/expr"
	"github.com/abhisek/mathex/internal/rational"
)

// IsValidSubtraction reports whether left - right is non-negative.
func IsValidSubtraction(left, right rational.Rational) bool {
	d, err := left.Sub(right)
	if err != nil {
		return false
	}
	return IsNonNegative(d)
}

// IsValidDivision reports whether right is non-zero and left ÷ right is a
// proper fraction. Quotients of one or more are rejected even though they
// are well defined.
func IsValidDivision(left, right rational.Rational) bool {
	if right.IsZero() {
		return false
	}
	q, err := left.Div(right)
	if err != nil {
		return false
	}
	return q.IsProperFraction()
}

// IsInRange reports whether |v| < bound, compared in improper form as
// |num| < bound × den.
func IsInRange(v rational.Rational, bound int) bool {
	num, den, err := v.Improper()
	if err != nil {
		return false
	}
	if num < 0 {
		num = -num
	}
	limit, err := rational.Int(int64(bound)).Mul(rational.Int(den))
	if err != nil {
		// bound × den does not fit, so any representable |num| is below it.
		return true
	}
	return num < limit.Whole()
}

// IsNonNegative reports whether v >= 0.
func IsNonNegative(v rational.Rational) bool {
	return v.IsNonNegative()
}

// IsExpressionNonNegative re-evaluates s and reports whether every operand,
// every subtraction result and the final value are non-negative.
func IsExpressionNonNegative(s string) bool {
	v, err := expr.EvaluateWith(s, expr.Strict)
	if err != nil {
		return false
	}
	return IsNonNegative(v)
}

// isOperationValid applies the per-operator rule to one binary join.
func isOperationValid(op expr.Op, left, right rational.Rational) bool {
	switch op {
	case expr.Sub:
		return IsValidSubtraction(left, right)
	case expr.Div:
		return IsValidDivision(left, right)
	}
	return true
}
