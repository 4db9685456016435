package expr

import "github.com/abhisek/mathex/internal/rational"

// Policy inspects every value the evaluator produces. It runs on each
// operand as it is pushed and on each operator application, in the order
// the evaluator performs them (precedence order, not source order).
// Returning an error aborts the evaluation with that error.
type Policy interface {
	Name() string
	CheckOperand(v rational.Rational) error
	CheckStep(op Op, left, right, result rational.Rational) error
}

var (
	// Lenient accepts everything.
	Lenient Policy = lenient{}

	// Strict rejects negative operands and negative subtraction results.
	Strict Policy = strict{}
)

type lenient struct{}

func (lenient) Name() string { return "lenient" }

func (lenient) CheckOperand(rational.Rational) error { return nil }

func (lenient) CheckStep(Op, rational.Rational, rational.Rational, rational.Rational) error {
	return nil
}

type strict struct{}

func (strict) Name() string { return "strict" }

func (p strict) CheckOperand(v rational.Rational) error {
	if !v.IsNonNegative() {
		return &PolicyError{Policy: p.Name(), Result: v, Reason: "negative operand"}
	}
	return nil
}

func (p strict) CheckStep(op Op, left, right, result rational.Rational) error {
	if op == Sub && !result.IsNonNegative() {
		return &PolicyError{Policy: p.Name(), Op: op, Left: left, Right: right, Result: result,
			Reason: "negative difference"}
	}
	return nil
}
