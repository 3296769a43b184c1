package quiz

import (
	"fmt"
	"regexp"
)

// keywordPattern matches runs of letters. Length filtering happens in
// Keywords so the minimum stays configurable.
var keywordPattern = regexp.MustCompile(`\p{L}+`)

// Keywords returns the set of case-folded alphabetic tokens in s that are
// at least minLen characters long.
func Keywords(s string, minLen int) map[string]struct{} {
	out := make(map[string]struct{})
	for _, tok := range keywordPattern.FindAllString(s, -1) {
		if len([]rune(tok)) < minLen {
			continue
		}
		out[Normalize(tok)] = struct{}{}
	}
	return out
}

// GroundingValidator rejects candidates the model invented independently of
// the source text. A candidate is grounded when any keyword of the question
// or any keyword of the correct answer also appears in the content.
type GroundingValidator struct {
	// MinKeywordLength is the shortest token counted as a keyword.
	MinKeywordLength int
}

func (v *GroundingValidator) Name() string { return "grounding" }

func (v *GroundingValidator) Validate(c *Candidate, content string) *ValidationError {
	source := Keywords(content, v.MinKeywordLength)
	if sharesKeyword(Keywords(c.Question, v.MinKeywordLength), source) ||
		sharesKeyword(Keywords(c.CorrectAnswer, v.MinKeywordLength), source) {
		return nil
	}
	return &ValidationError{
		Validator: v.Name(),
		Kind:      KindSemantic,
		Message:   fmt.Sprintf("ungrounded: neither the question nor the correct answer %q shares a keyword with the content", c.CorrectAnswer),
		Retryable: true,
	}
}

func sharesKeyword(words, source map[string]struct{}) bool {
	for w := range words {
		if _, ok := source[w]; ok {
			return true
		}
	}
	return false
}
