package problemgen

import (
	"errors"
	"fmt"

	"github.com/abhisek/mathex/internal/expr"
	"github.com/abhisek/mathex/internal/rational"
)

// classroom is the evaluation policy for generated exercises: every
// operand is non-negative and every subtraction and division is legal
// under IsValidSubtraction and IsValidDivision. Checks run in the order
// the evaluator applies operators.
type classroom struct{}

func (classroom) Name() string { return "classroom" }

func (p classroom) CheckOperand(v rational.Rational) error {
	if !IsNonNegative(v) {
		return &expr.PolicyError{Policy: p.Name(), Result: v, Reason: "negative operand"}
	}
	return nil
}

func (p classroom) CheckStep(op expr.Op, left, right, result rational.Rational) error {
	if isOperationValid(op, left, right) {
		return nil
	}
	reason := "negative difference"
	if op == expr.Div {
		reason = "quotient is not a proper fraction"
	}
	return &expr.PolicyError{Policy: p.Name(), Op: op, Left: left, Right: right, Result: result, Reason: reason}
}

// OperationValidator re-evaluates the candidate under the classroom policy.
type OperationValidator struct{}

func (v *OperationValidator) Name() string { return "operation" }

func (v *OperationValidator) Validate(c *Candidate) *ValidationError {
	_, err := expr.EvaluateWith(c.Expression, classroom{})
	if err == nil {
		return nil
	}
	var pe *expr.PolicyError
	if errors.As(err, &pe) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%s: %s", c.Expression, pe.Reason),
			Retryable: true,
		}
	}
	return &ValidationError{
		Validator: v.Name(),
		Message:   err.Error(),
		Retryable: true,
	}
}

// NonNegativeValidator checks that the expression never goes negative and
// that the answer is non-negative.
type NonNegativeValidator struct{}

func (v *NonNegativeValidator) Name() string { return "non-negative" }

func (v *NonNegativeValidator) Validate(c *Candidate) *ValidationError {
	if !IsExpressionNonNegative(c.Expression) || !IsNonNegative(c.Answer) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%s goes negative", c.Expression),
			Retryable: true,
		}
	}
	return nil
}

// RangeValidator checks the answer against the exclusive range bound.
type RangeValidator struct{}

func (v *RangeValidator) Name() string { return "range" }

func (v *RangeValidator) Validate(c *Candidate) *ValidationError {
	if !IsInRange(c.Answer, c.Range) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %s is not below %d", c.Answer, c.Range),
			Retryable: true,
		}
	}
	return nil
}

// DivisionAnswerValidator checks that an expression containing ÷ has a
// proper-fraction answer.
type DivisionAnswerValidator struct{}

func (v *DivisionAnswerValidator) Name() string { return "division-answer" }

func (v *DivisionAnswerValidator) Validate(c *Candidate) *ValidationError {
	if c.hasDivision() && !c.Answer.IsProperFraction() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %s of a division problem is not a proper fraction", c.Answer),
			Retryable: true,
		}
	}
	return nil
}
