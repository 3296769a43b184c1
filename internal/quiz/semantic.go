package quiz

import (
	"fmt"
	"unicode/utf8"
)

// DistinctAnswersValidator rejects empty, oversized and duplicate answers.
// Emptiness and duplicates are judged after normalization.
type DistinctAnswersValidator struct {
	// MaxLength is the maximum answer length in characters.
	MaxLength int
}

func (v *DistinctAnswersValidator) Name() string { return "distinct-answers" }

func (v *DistinctAnswersValidator) Validate(c *Candidate, _ string) *ValidationError {
	seen := make(map[string]int, len(c.Answers))
	for i, a := range c.Answers {
		norm := Normalize(a)
		if norm == "" {
			return v.fail(fmt.Sprintf("answer %d is empty", i+1))
		}
		if v.MaxLength > 0 && utf8.RuneCountInString(norm) > v.MaxLength {
			return v.fail(fmt.Sprintf("answer %d exceeds %d characters", i+1, v.MaxLength))
		}
		if j, ok := seen[norm]; ok {
			return v.fail(fmt.Sprintf("answers %d and %d are duplicates (%q)", j+1, i+1, a))
		}
		seen[norm] = i
	}
	return nil
}

func (v *DistinctAnswersValidator) fail(msg string) *ValidationError {
	return &ValidationError{
		Validator: v.Name(),
		Kind:      KindSemantic,
		Message:   msg,
		Retryable: true,
	}
}

// CatchAllValidator rejects candidates offering a catch-all option such as
// "all of the above".
type CatchAllValidator struct {
	// Banned holds the catch-all phrases. They are normalized before
	// comparison.
	Banned []string
}

func (v *CatchAllValidator) Name() string { return "catch-all" }

func (v *CatchAllValidator) Validate(c *Candidate, _ string) *ValidationError {
	banned := make(map[string]struct{}, len(v.Banned))
	for _, b := range v.Banned {
		banned[Normalize(b)] = struct{}{}
	}
	for i, a := range c.Answers {
		if _, ok := banned[Normalize(a)]; ok {
			return &ValidationError{
				Validator: v.Name(),
				Kind:      KindSemantic,
				Message:   fmt.Sprintf("answer %d is a catch-all option (%q)", i+1, a),
				Retryable: true,
			}
		}
	}
	return nil
}
