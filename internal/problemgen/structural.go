package problemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathex/internal/expr"
)

// OperatorCountValidator checks that the rendered text is a well-formed
// problem line with between one and MaxOperators operators.
type OperatorCountValidator struct{}

func (v *OperatorCountValidator) Name() string { return "operator-count" }

func (v *OperatorCountValidator) Validate(c *Candidate) *ValidationError {
	if !strings.HasSuffix(c.Expression, " =") {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "expression must end with \" =\"",
		}
	}
	n := expr.CountOperators(c.Expression)
	if n < 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "expression does not tokenize",
		}
	}
	if n < 1 || n > MaxOperators {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expression has %d operators, want 1 to %d", n, MaxOperators),
			Retryable: true,
		}
	}
	return nil
}
