// Package grader checks submitted answers against worksheet expressions.
package grader

import (
	"errors"
	"fmt"

	"github.com/abhisek/mathex/internal/expr"
	"github.com/abhisek/mathex/internal/rational"
)

// ErrLengthMismatch is returned when the exercise and answer lists differ
// in length.
var ErrLengthMismatch = errors.New("grader: exercise and answer counts differ")

// Grade evaluates expressions[i] and compares it with answers[i], keyed by
// 1-based line number. A line that fails to evaluate or parse is graded
// false; it never aborts the remaining lines.
func Grade(expressions, answers []string) (map[int]bool, error) {
	if len(expressions) != len(answers) {
		return nil, fmt.Errorf("%w: %d exercises, %d answers", ErrLengthMismatch, len(expressions), len(answers))
	}

	verdicts := make(map[int]bool, len(expressions))
	for i := range expressions {
		verdicts[i+1] = gradeLine(expressions[i], answers[i])
	}
	return verdicts, nil
}

func gradeLine(expression, answer string) bool {
	want, err := expr.Evaluate(expression)
	if err != nil {
		return false
	}
	got, err := rational.Parse(answer)
	if err != nil {
		return false
	}
	return got == want
}
