package quizgen

import "github.com/abhisek/quizforge/internal/llm"

// QuestionSchema is the JSON Schema the question backend's reply must
// match. Providers with native structured output enforce it server-side;
// the engine's validator chain re-checks the shape either way.
var QuestionSchema = &llm.Schema{
	Name:        "grounded-mcq",
	Description: "A single multiple-choice question grounded in the supplied document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt, answerable from the document content alone",
			},
			"options": map[string]any{
				"type":        "array",
				"minItems":    4,
				"maxItems":    4,
				"items":       map[string]any{"type": "string"},
				"description": "Exactly 4 answer options, exactly one correct",
			},
			"correct_option_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Index of the correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the correct option is right, grounded in the document",
			},
		},
		"required":             []any{"question_text", "options", "correct_option_index", "explanation"},
		"additionalProperties": false,
	},
}
