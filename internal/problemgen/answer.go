package problemgen

import (
	"strings"

	"github.com/abhisek/mathex/internal/rational"
)

// CheckAnswer compares the learner's input against the exercise answer.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed
// - Any literal of the worksheet grammar is accepted: "3", "1/2", "1'1/2"
// - Equivalent forms match (e.g., "2/4" matches "1/2", "3/2" matches "1'1/2")
func CheckAnswer(input string, ex Exercise) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	v, err := rational.Parse(input)
	if err != nil {
		return false
	}
	return v == ex.Answer
}
