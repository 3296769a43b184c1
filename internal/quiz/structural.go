package quiz

// AnswerCountValidator rejects candidates that do not carry exactly four
// answers.
type AnswerCountValidator struct{}

func (v *AnswerCountValidator) Name() string { return "answer-count" }

func (v *AnswerCountValidator) Validate(c *Candidate, _ string) *ValidationError {
	if len(c.Answers) != AnswerCount {
		return &ValidationError{
			Validator: v.Name(),
			Kind:      KindStructural,
			Message:   "there must be exactly four answers",
			Retryable: true,
		}
	}
	return nil
}

// MembershipValidator requires the correct answer to appear verbatim among
// the answers. Comparison is exact: no normalization.
type MembershipValidator struct{}

func (v *MembershipValidator) Name() string { return "correct-answer" }

func (v *MembershipValidator) Validate(c *Candidate, _ string) *ValidationError {
	for _, a := range c.Answers {
		if a == c.CorrectAnswer {
			return nil
		}
	}
	return &ValidationError{
		Validator: v.Name(),
		Kind:      KindStructural,
		Message:   "correct answer must be one of the provided answers",
		Retryable: true,
	}
}
