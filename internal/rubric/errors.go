package rubric

import "fmt"

// SchemaError reports model output that parsed as JSON but does not match
// the rubric structure: missing fields, out-of-range weights, wrong types.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("rubric schema validation: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// MalformedOutputError reports model output that is not parseable as JSON
// even after salvage.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("rubric output is not valid JSON: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// LevelNotDefinedError reports a requested difficulty level absent from a
// rubric. It indicates a caller/rubric mismatch, not a backend fault.
type LevelNotDefinedError struct {
	Level int
}

func (e *LevelNotDefinedError) Error() string {
	return fmt.Sprintf("level %d not defined in rubric", e.Level)
}
