package quizgen

// Validator checks a parsed question before the engine returns it.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g. "structural".
	Name() string

	// Validate returns nil if the result passes, a *ValidationError otherwise.
	Validate(r *Result) *ValidationError
}

// StructuralValidator enforces the MCQ shape contract: non-empty question
// text, exactly 4 options, a correct index inside them, and an explanation.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(r *Result) *ValidationError {
	if r.QuestionText == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
		}
	}
	if len(r.Options) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "options must contain exactly 4 entries",
		}
	}
	for i, opt := range r.Options {
		if opt == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "option " + string(rune('A'+i)) + " is empty",
			}
		}
	}
	if r.CorrectOptionIndex < 0 || r.CorrectOptionIndex > 3 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct_option_index must be between 0 and 3",
		}
	}
	if r.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
		}
	}
	return nil
}
