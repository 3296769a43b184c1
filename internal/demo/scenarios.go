// Package demo holds canned model behaviors that show how the choice of
// prompt variant changes whether a quiz can be built from an unreliable
// model.
package demo

import (
	"context"

	"github.com/abhisek/checkpoint/internal/llm"
	"github.com/abhisek/checkpoint/internal/quiz"
)

// Scenario pairs source content with a scripted model. Baseline is the
// variant expected to fail with Want; Alternative, when set, is expected to
// succeed on the same content.
type Scenario struct {
	Name        string
	Description string
	Content     string
	Model       *llm.ScriptedProvider
	Baseline    quiz.Variant
	Want        quiz.Kind
	Alternative quiz.Variant
}

// Outcome is the result of running one variant of a scenario.
type Outcome struct {
	Variant quiz.Variant
	Quiz    *quiz.Quiz
	Err     error
	// Calls is the number of model calls made for this outcome.
	Calls int
}

// Passed reports whether the outcome matches what the scenario expects of
// the variant.
func (s Scenario) Passed(o Outcome) bool {
	if o.Variant == s.Baseline {
		return o.Err != nil && quiz.KindOf(o.Err) == s.Want
	}
	return o.Err == nil && o.Quiz != nil
}

// Run creates a quiz with each of the scenario's variants, baseline first.
func (s Scenario) Run(ctx context.Context, cfg quiz.Config) []Outcome {
	completer := llm.NewCompleter(s.Model, llm.CompleterConfig{})
	creator := quiz.New(completer, cfg)

	variants := []quiz.Variant{s.Baseline}
	if s.Alternative != "" {
		variants = append(variants, s.Alternative)
	}

	out := make([]Outcome, 0, len(variants))
	for _, v := range variants {
		before := s.Model.CallCount()
		q, err := creator.CreateQuiz(ctx, s.Content, quiz.WithVariant(v))
		out = append(out, Outcome{
			Variant: v,
			Quiz:    q,
			Err:     err,
			Calls:   s.Model.CallCount() - before,
		})
	}
	return out
}

// Match strings that identify which prompt variant the model received.
const (
	structuredMarker  = "Return only JSON"
	constrainedMarker = "EXACTLY FOUR"
)

// Scenarios returns fresh copies of the built-in scenarios.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:        "prose-noise",
			Description: "The model wraps its answer in chatty markdown; only the structured-output variant yields a parseable reply.",
			Content:     "Paris is the capital of France.",
			Model: &llm.ScriptedProvider{
				Rules: []llm.ScriptRule{{
					Match: structuredMarker,
					Reply: `{"question":"What is the capital of France?","answers":["Paris","Lyon","Marseille","Nice"],"correctAnswer":"Paris"}`,
				}},
				Fallback: "Sure! Here is a quiz based on your text.\n\n" +
					"**Question:** What is the capital of France?\n" +
					"**Answers:** Paris, Lyon, Marseille, Nice\n" +
					"**Correct Answer:** Paris\n\n" +
					"Let me know if you would like another one!",
			},
			Baseline:    quiz.VariantDefault,
			Want:        quiz.KindParse,
			Alternative: quiz.VariantStructured,
		},
		{
			Name:        "five-answers",
			Description: "The model offers five options; the constrained-template variant holds it to four.",
			Content:     "The Seine river flows through Paris.",
			Model: &llm.ScriptedProvider{
				Rules: []llm.ScriptRule{{
					Match: constrainedMarker,
					Reply: "Question: Which river flows through Paris?\n" +
						"Answers: Seine, Loire, Garonne, Rhône\n" +
						"Correct Answer: Seine",
				}},
				Fallback: "Question: Which river flows through Paris?\n" +
					"Answers: Seine, Loire, Garonne, Rhône, Danube\n" +
					"Correct Answer: Seine",
			},
			Baseline:    quiz.VariantDefault,
			Want:        quiz.KindStructural,
			Alternative: quiz.VariantConstrained,
		},
		{
			Name:        "missing-correct-answer",
			Description: "The model names a correct answer it never listed; the constrained-template variant demands it verbatim.",
			Content:     "France is one of the five permanent members of the UN Security Council.",
			Model: &llm.ScriptedProvider{
				Rules: []llm.ScriptRule{{
					Match: constrainedMarker,
					Reply: "Question: Which body is France a permanent member of?\n" +
						"Answers: UN Security Council, NATO, EU, OECD\n" +
						"Correct Answer: UN Security Council",
				}},
				Fallback: "Question: Which body is France a permanent member of?\n" +
					"Answers: NATO, EU, OECD, G7\n" +
					"Correct Answer: UN Security Council",
			},
			Baseline:    quiz.VariantDefault,
			Want:        quiz.KindStructural,
			Alternative: quiz.VariantConstrained,
		},
		{
			Name:        "empty-content",
			Description: "Empty content is rejected before the model is called.",
			Content:     "",
			Model:       &llm.ScriptedProvider{Fallback: "unused"},
			Baseline:    quiz.VariantDefault,
			Want:        quiz.KindEmptyInput,
		},
	}
}
