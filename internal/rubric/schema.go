package rubric

import "github.com/abhisek/quizforge/internal/llm"

// skillProfileSchema is the JSON Schema for one skill profile object.
var skillProfileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"memory":    map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		"reasoning": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		"numerical": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		"language":  map[string]any{"type": "number", "minimum": 0, "maximum": 1},
	},
	"required":             []any{"memory", "reasoning", "numerical", "language"},
	"additionalProperties": false,
}

// SetSchema is the JSON Schema the calibration model's output must match.
// The generator validates salvaged output against it before decoding.
var SetSchema = &llm.Schema{
	Name:        "difficulty-rubric",
	Description: "A 5-level relative difficulty rubric for one document and subject",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subject": map[string]any{
				"type":        "string",
				"description": "Subject tag the rubric was calibrated for",
			},
			"document_title": map[string]any{
				"type":        "string",
				"description": "Title or filename of the source document",
			},
			"levels": map[string]any{
				"type":     "array",
				"minItems": 5,
				"maxItems": 5,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"level": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     5,
							"description": "Level number, 1 = easiest, 5 = hardest",
						},
						"name": map[string]any{
							"type":        "string",
							"description": "Short title for the level",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "What makes questions at this level hard or easy",
						},
						"skill_profile": skillProfileSchema,
						"example_instruction": map[string]any{
							"type":        "string",
							"description": "Natural-language hint for generating a question at this level",
						},
					},
					"required":             []any{"level", "name", "description", "skill_profile", "example_instruction"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"subject", "document_title", "levels"},
		"additionalProperties": false,
	},
}
