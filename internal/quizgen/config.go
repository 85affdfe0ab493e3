package quizgen

// Config controls prompt assembly and model budget for question generation.
type Config struct {
	// Validators run in order on every parsed question; the first
	// failure rejects it.
	Validators []Validator

	// ContextChars bounds the document text embedded in the generation
	// prompt. A safety bound against oversized prompts, not a
	// content-selection policy.
	ContextChars int

	// MaxTokens is the token budget for one question reply.
	MaxTokens int

	// Temperature for the generation call. Moderate: batch callers want
	// variety between attempts.
	Temperature float64
}

// DefaultConfig returns the standard validator chain and limits.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		ContextChars: 6000,
		MaxTokens:    1024,
		Temperature:  0.4,
	}
}
