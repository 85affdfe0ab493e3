// Package quizgen orchestrates document-grounded MCQ generation: it owns
// the rubric cache, assembles the grounded prompt for a requested
// difficulty level, calls the pluggable question backend, and validates
// what comes back.
package quizgen

import "github.com/abhisek/quizforge/internal/rubric"

// Request asks the engine for questions from one document.
type Request struct {
	// DocumentPath locates the source document on disk.
	DocumentPath string

	// Subject tags the rubric. Case-insensitive; empty means "generic".
	// Unknown subjects calibrate with generic hints rather than failing.
	Subject string

	// Level is the requested difficulty, 1..5 against the document's rubric.
	Level int

	// DesiredSkills optionally biases the skill profile. A partial
	// override: zero-valued weights fall back to the rubric level's
	// profile per field.
	DesiredSkills *rubric.SkillProfile

	// ExtraInstruction is free-text guidance appended to the prompt,
	// e.g. "focus on the second section".
	ExtraInstruction string
}

// Result is one generated multiple-choice question.
type Result struct {
	// QuestionText is the prompt shown to the learner.
	QuestionText string

	// Options holds exactly 4 answers; option identity is its position.
	Options []string

	// CorrectOptionIndex is the index of the right answer, 0..3.
	CorrectOptionIndex int

	// Explanation justifies the correct answer from the document.
	Explanation string

	// LevelAssigned is the rubric level this question targeted.
	LevelAssigned int

	// EffectiveSkills is the skill profile the prompt actually carried:
	// the request override merged over the rubric level's profile, or the
	// bare rubric profile when no override was given.
	EffectiveSkills rubric.SkillProfile
}
