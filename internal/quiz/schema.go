package quiz

import "github.com/abhisek/checkpoint/internal/llm"

// QuizSchema defines the JSON shape of a structured-output response.
var QuizSchema = &llm.Schema{
	Name:        "checkpoint-quiz",
	Description: "A single multiple-choice comprehension question with four answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question shown to the reader",
			},
			"answers": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly four answer options",
			},
			"correctAnswer": map[string]any{
				"type":        "string",
				"description": "The correct option, copied verbatim from answers",
			},
		},
		"required": []any{"question", "answers", "correctAnswer"},
	},
}
