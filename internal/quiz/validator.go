package quiz

import "fmt"

// Validator checks a parsed candidate.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "answer-count", "grounding".
	Name() string

	// Validate returns nil if the candidate passes. The source content is
	// supplied for checks that need it.
	Validate(c *Candidate, content string) *ValidationError
}

// ValidationError describes why a candidate was rejected.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Kind      Kind   // KindStructural or KindSemantic
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether another prompt variant is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// runValidators applies validators in order and stops at the first failure.
func runValidators(validators []Validator, c *Candidate, content string) *ValidationError {
	for _, v := range validators {
		if verr := v.Validate(c, content); verr != nil {
			return verr
		}
	}
	return nil
}
