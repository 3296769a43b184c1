package quiz

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AnswerCount is the number of options every quiz carries.
const AnswerCount = 4

// Quiz is a validated multiple-choice question generated from a block of
// source text. It is only constructed by Creator after the full validator
// chain passes and is read-only afterwards.
type Quiz struct {
	content       string
	question      string
	answers       []string
	correctAnswer string
}

// Content returns the source text the quiz was generated from.
func (q *Quiz) Content() string { return q.content }

// Question returns the question prompt.
func (q *Quiz) Question() string { return q.question }

// Answers returns a copy of the four answer options in display order.
func (q *Quiz) Answers() []string {
	out := make([]string, len(q.answers))
	copy(out, q.answers)
	return out
}

// CorrectAnswer returns the text of the correct option.
func (q *Quiz) CorrectAnswer() string { return q.correctAnswer }

// CorrectIndex returns the zero-based position of the correct answer.
func (q *Quiz) CorrectIndex() int {
	for i, a := range q.answers {
		if a == q.correctAnswer {
			return i
		}
	}
	return -1
}

// AnswerAt resolves a learner selection to answer text. An answer's own
// text wins; otherwise a letter (A-D, case-insensitive) or a 1-based
// ordinal picks by position. Anything else is returned unchanged so it can
// be compared verbatim.
func (q *Quiz) AnswerAt(selection string) string {
	s := strings.TrimSpace(selection)
	for _, a := range q.answers {
		if a == s {
			return a
		}
	}
	if len(s) == 1 {
		c := s[0] | 0x20 // lower-case ASCII letters
		if c >= 'a' && int(c-'a') < len(q.answers) {
			return q.answers[c-'a']
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(q.answers) {
		return q.answers[n-1]
	}
	return selection
}

// MarshalJSON encodes the quiz in the structured wire shape plus its content.
func (q *Quiz) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Content       string   `json:"content"`
		Question      string   `json:"question"`
		Answers       []string `json:"answers"`
		CorrectAnswer string   `json:"correctAnswer"`
	}{q.content, q.question, q.answers, q.correctAnswer})
}

func (q *Quiz) String() string {
	return fmt.Sprintf("%s [%s] (correct: %s)", q.question, strings.Join(q.answers, " | "), q.correctAnswer)
}

// Attempt records one answer submission against a quiz.
type Attempt struct {
	// Quiz is shared with every other attempt on the same quiz.
	Quiz *Quiz

	SelectedAnswer string

	// IsCorrect is SelectedAnswer == Quiz.CorrectAnswer(), compared exactly.
	IsCorrect bool
}

// Candidate is the raw question/answers triple extracted from a model
// response, before any validation.
type Candidate struct {
	Question      string
	Answers       []string
	CorrectAnswer string
}

// Variant selects the prompt strategy sent to the model.
type Variant string

const (
	// VariantDefault asks for the three-line template with no extra rules.
	VariantDefault Variant = "default"

	// VariantStructured asks for a bare JSON object.
	VariantStructured Variant = "structured-output"

	// VariantConstrained asks for the three-line template with explicit
	// count, verbatim-correct-answer and no-extra-lines rules.
	VariantConstrained Variant = "constrained-template"
)

// Variants lists every supported prompt variant.
var Variants = []Variant{VariantDefault, VariantStructured, VariantConstrained}

// ParseVariant maps a user-supplied name (or short alias) to a Variant.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return VariantDefault, nil
	case "structured-output", "structured", "json":
		return VariantStructured, nil
	case "constrained-template", "constrained":
		return VariantConstrained, nil
	}
	return "", fmt.Errorf("unknown prompt variant %q: must be one of default, structured-output, constrained-template", name)
}
