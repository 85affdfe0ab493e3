// Package rubric defines the per-document difficulty rubric model and the
// generator that calibrates one against a document using a model call.
//
// A rubric is relative: its five levels describe what "hard" means for one
// document and subject, not an absolute grading standard.
package rubric

import (
	"fmt"
	"strings"
)

// SkillProfile is the relative cognitive load of a question across four
// dimensions. Weights are conceptual values in [0,1], not absolute scores.
// Profiles are values; Merge returns a new profile, never a mutation.
type SkillProfile struct {
	Memory    float64 `json:"memory"`
	Reasoning float64 `json:"reasoning"`
	Numerical float64 `json:"numerical"`
	Language  float64 `json:"language"`
}

// NewSkillProfile builds a profile, rejecting out-of-range weights with a
// *SchemaError.
func NewSkillProfile(memory, reasoning, numerical, language float64) (SkillProfile, error) {
	p := SkillProfile{
		Memory:    memory,
		Reasoning: reasoning,
		Numerical: numerical,
		Language:  language,
	}
	if err := p.Validate(); err != nil {
		return SkillProfile{}, err
	}
	return p, nil
}

// Validate checks that every weight lies in [0,1].
func (p SkillProfile) Validate() error {
	check := func(name string, v float64) error {
		if v < 0.0 || v > 1.0 {
			return &SchemaError{Err: fmt.Errorf("skill weight %s = %v out of range [0,1]", name, v)}
		}
		return nil
	}
	if err := check("memory", p.Memory); err != nil {
		return err
	}
	if err := check("reasoning", p.Reasoning); err != nil {
		return err
	}
	if err := check("numerical", p.Numerical); err != nil {
		return err
	}
	return check("language", p.Language)
}

// Merge overlays a partial override on p: each non-zero override weight
// wins, every other weight falls back to p. A nil override returns p
// unchanged. The result is a new value.
func (p SkillProfile) Merge(override *SkillProfile) SkillProfile {
	if override == nil {
		return p
	}
	merged := p
	if override.Memory != 0 {
		merged.Memory = override.Memory
	}
	if override.Reasoning != 0 {
		merged.Reasoning = override.Reasoning
	}
	if override.Numerical != 0 {
		merged.Numerical = override.Numerical
	}
	if override.Language != 0 {
		merged.Language = override.Language
	}
	return merged
}

// Level is one difficulty level of a rubric. Its meaning is textual and
// skill-based, local to the rubric's document.
type Level struct {
	Level              int          `json:"level"`
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	Skills             SkillProfile `json:"skill_profile"`
	ExampleInstruction string       `json:"example_instruction"`
}

// Set is the full rubric for one document and subject: levels 1..5,
// calibrated relative to that document. Immutable once built; it is the
// unit of caching in the engine.
type Set struct {
	Subject       string  `json:"subject"`
	DocumentTitle string  `json:"document_title"`
	Levels        []Level `json:"levels"`
}

// GetLevel returns the level whose number equals n, exact match only.
func (s *Set) GetLevel(n int) (Level, error) {
	for _, lvl := range s.Levels {
		if lvl.Level == n {
			return lvl, nil
		}
	}
	return Level{}, &LevelNotDefinedError{Level: n}
}

// Validate checks structural integrity after decoding model output:
// level numbers in 1..5 and unique, names present, weights in range.
func (s *Set) Validate() error {
	if len(s.Levels) == 0 {
		return &SchemaError{Err: fmt.Errorf("rubric has no levels")}
	}
	seen := make(map[int]bool, len(s.Levels))
	for _, lvl := range s.Levels {
		if lvl.Level < 1 || lvl.Level > 5 {
			return &SchemaError{Err: fmt.Errorf("level %d out of range [1,5]", lvl.Level)}
		}
		if seen[lvl.Level] {
			return &SchemaError{Err: fmt.Errorf("duplicate level %d", lvl.Level)}
		}
		seen[lvl.Level] = true
		if strings.TrimSpace(lvl.Name) == "" {
			return &SchemaError{Err: fmt.Errorf("level %d has an empty name", lvl.Level)}
		}
		if err := lvl.Skills.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// NormalizeSubject lowercases and trims a subject tag, defaulting to
// "generic" when empty. It does not reject unknown subjects; those fall
// back to generic calibration hints downstream.
func NormalizeSubject(subject string) string {
	s := strings.ToLower(strings.TrimSpace(subject))
	if s == "" {
		return "generic"
	}
	return s
}
