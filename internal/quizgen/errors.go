package quizgen

import "fmt"

// MalformedOutputError reports backend output that is not parseable as
// JSON. The engine parses strictly — salvage of near-JSON is the backend
// implementation's job, not this layer's.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("question output is not valid JSON: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// ValidationError describes why a parsed question failed validation.
type ValidationError struct {
	Validator string // which validator rejected it
	Message   string // human-readable reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
