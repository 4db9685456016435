package problemgen

import (
	"fmt"

	"github.com/abhisek/mathex/internal/expr"
)

// MathCheckValidator independently re-evaluates the rendered text and
// compares it with the candidate's answer. A mismatch means rendering
// lost information (e.g. parentheses dropped).
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(c *Candidate) *ValidationError {
	got, err := expr.Evaluate(c.Expression)
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("cannot evaluate %q: %v", c.Expression, err),
			Retryable: true,
		}
	}
	if got != c.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %s but candidate claimed %s", got, c.Answer),
		}
	}
	return nil
}
