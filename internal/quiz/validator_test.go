package quiz

import (
	"strings"
	"testing"
)

func validCandidate() Candidate {
	return Candidate{
		Question:      "What is the capital of France?",
		Answers:       []string{"Paris", "Lyon", "Marseille", "Nice"},
		CorrectAnswer: "Paris",
	}
}

const parisContent = "Paris is the capital of France."

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
		Retryable: true,
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	names := []string{"answer-count", "correct-answer", "distinct-answers", "catch-all", "grounding"}
	if len(cfg.Validators) != len(names) {
		t.Fatalf("expected %d validators, got %d", len(names), len(cfg.Validators))
	}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
	if cfg.Variant != VariantDefault {
		t.Errorf("variant = %q", cfg.Variant)
	}
}

func TestDefaultChain_AcceptsValidCandidate(t *testing.T) {
	c := validCandidate()
	if verr := runValidators(DefaultConfig().Validators, &c, parisContent); verr != nil {
		t.Fatalf("unexpected rejection: %v", verr)
	}
}

func TestDefaultChain_StructuralBeforeSemantic(t *testing.T) {
	// Five answers including a duplicate and a catch-all: the count check
	// must be the one reported.
	c := Candidate{
		Question:      "Q about nothing",
		Answers:       []string{"x", "x", "All of the above", "y", "z"},
		CorrectAnswer: "w",
	}
	verr := runValidators(DefaultConfig().Validators, &c, parisContent)
	if verr == nil || verr.Validator != "answer-count" {
		t.Fatalf("expected answer-count failure, got %v", verr)
	}
}

func TestAnswerCountValidator(t *testing.T) {
	v := &AnswerCountValidator{}
	for _, n := range []int{0, 3, 5} {
		c := Candidate{Answers: make([]string, n)}
		verr := v.Validate(&c, "")
		if verr == nil {
			t.Fatalf("expected failure for %d answers", n)
		}
		if verr.Kind != KindStructural || verr.Message != "there must be exactly four answers" {
			t.Errorf("unexpected error %+v", verr)
		}
	}
	c := validCandidate()
	if verr := v.Validate(&c, ""); verr != nil {
		t.Fatalf("unexpected failure: %v", verr)
	}
}

func TestMembershipValidator(t *testing.T) {
	v := &MembershipValidator{}

	c := validCandidate()
	if verr := v.Validate(&c, ""); verr != nil {
		t.Fatalf("unexpected failure: %v", verr)
	}

	// Exact comparison: case differences are not forgiven.
	c.CorrectAnswer = "paris"
	verr := v.Validate(&c, "")
	if verr == nil {
		t.Fatal("expected failure")
	}
	if verr.Kind != KindStructural || verr.Message != "correct answer must be one of the provided answers" {
		t.Errorf("unexpected error %+v", verr)
	}
}

func TestDistinctAnswersValidator(t *testing.T) {
	v := &DistinctAnswersValidator{MaxLength: DefaultMaxAnswerLength}
	tests := []struct {
		name    string
		answers []string
		wantErr string
	}{
		{"valid", []string{"Paris", "Lyon", "Marseille", "Nice"}, ""},
		{"empty", []string{"Paris", "", "Marseille", "Nice"}, "answer 2 is empty"},
		{"whitespace only", []string{"Paris", "Lyon", " \t ", "Nice"}, "answer 3 is empty"},
		{"case duplicate", []string{"Paris", "Lyon", "PARIS", "Nice"}, "answers 1 and 3 are duplicates"},
		{"space duplicate", []string{"New  York", "Lyon", "new york", "Nice"}, "answers 1 and 3 are duplicates"},
		{"too long", []string{"Paris", strings.Repeat("a", 201), "Marseille", "Nice"}, "answer 2 exceeds 200 characters"},
		{"exactly max", []string{"Paris", strings.Repeat("é", 200), "Marseille", "Nice"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Candidate{Answers: tt.answers}
			verr := v.Validate(&c, "")
			if tt.wantErr == "" {
				if verr != nil {
					t.Fatalf("unexpected failure: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("expected failure containing %q", tt.wantErr)
			}
			if verr.Kind != KindSemantic {
				t.Errorf("kind = %s", verr.Kind)
			}
			if !strings.Contains(verr.Message, tt.wantErr) {
				t.Errorf("message %q does not contain %q", verr.Message, tt.wantErr)
			}
		})
	}
}

func TestCatchAllValidator(t *testing.T) {
	v := &CatchAllValidator{Banned: DefaultBannedOptions}
	banned := []string{"All of the above", "none  of the above", " Both A and B ", "ALL OF THESE", "All of the options"}
	for _, b := range banned {
		c := Candidate{Answers: []string{"Paris", "Lyon", b, "Nice"}}
		verr := v.Validate(&c, "")
		if verr == nil {
			t.Errorf("expected %q to be rejected", b)
			continue
		}
		if verr.Kind != KindSemantic {
			t.Errorf("kind = %s", verr.Kind)
		}
	}

	c := Candidate{Answers: []string{"All of the above cities", "Lyon", "Marseille", "Nice"}}
	if verr := v.Validate(&c, ""); verr != nil {
		t.Errorf("partial match must pass: %v", verr)
	}
}
