package expr

import (
	"errors"
	"fmt"

	"github.com/abhisek/mathex/internal/rational"
)

var (
	// ErrMalformedExpression reports unbalanced parentheses, a missing
	// operand or an unparseable token.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrPolicyViolation reports an intermediate value rejected by a Policy.
	ErrPolicyViolation = errors.New("policy violation")
)

// SyntaxError describes where an expression stopped making sense.
type SyntaxError struct {
	Expr   string
	Pos    int
	Reason string
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Expr == "" {
		return fmt.Sprintf("malformed expression: %s", e.Reason)
	}
	return fmt.Sprintf("malformed expression %q at %d: %s", e.Expr, e.Pos, e.Reason)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrMalformedExpression }

func (e *SyntaxError) Unwrap() error { return e.Err }

// PolicyError records the step a Policy refused.
type PolicyError struct {
	Policy string
	Op     Op // zero for operand checks
	Left   rational.Rational
	Right  rational.Rational
	Result rational.Rational
	Reason string
}

func (e *PolicyError) Error() string {
	if e.Op == 0 {
		return fmt.Sprintf("%s: operand %s: %s", e.Policy, e.Result, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s %s = %s: %s", e.Policy, e.Left, e.Op.Glyph(), e.Right, e.Result, e.Reason)
}

func (e *PolicyError) Is(target error) bool { return target == ErrPolicyViolation }
