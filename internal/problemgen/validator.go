package problemgen

import "fmt"

// Validator checks a candidate exercise for classroom legality.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "legality", "range".
	Name() string

	// Validate checks the candidate and returns nil if it passes.
	// Returns a ValidationError if the candidate fails the check.
	Validate(c *Candidate) *ValidationError
}

// ValidationError describes why a candidate failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether drawing a new candidate is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// runValidators runs the chain in order; the first failure stops it.
func runValidators(vs []Validator, c *Candidate) *ValidationError {
	for _, v := range vs {
		if verr := v.Validate(c); verr != nil {
			return verr
		}
	}
	return nil
}
