package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizforge/internal/extract"
	"github.com/abhisek/quizforge/internal/rubric"
)

const systemPrompt = `You are an expert question-setter for competitive exams.
You must generate a single high-quality MCQ based ONLY on the given document content.
Difficulty is RELATIVE to this document, not absolute.
You will be given a rubric level and skill profile for this question.
You MUST return STRICT JSON with keys:
  question_text: string
  options: list of 4 strings
  correct_option_index: integer 0..3
  explanation: string`

// buildUserMessage assembles the grounded generation task: bounded
// document context, the rubric level's meaning, the skill emphasis, and
// any extra caller instruction.
func buildUserMessage(docText string, lvl rubric.Level, skills rubric.SkillProfile, extra string, cfg Config) string {
	context := extract.Truncate(docText, cfg.ContextChars)

	var b strings.Builder

	b.WriteString("DOCUMENT CONTENT (TRUNCATED):\n")
	b.WriteString(context)
	b.WriteString("\n\n")

	b.WriteString("RUBRIC LEVEL:\n")
	fmt.Fprintf(&b, "Level: %d - %s\n", lvl.Level, lvl.Name)
	fmt.Fprintf(&b, "Description: %s\n", lvl.Description)
	fmt.Fprintf(&b, "Example instruction: %s\n\n", lvl.ExampleInstruction)

	b.WriteString("DESIRED SKILL PROFILE (0.0 to 1.0):\n")
	fmt.Fprintf(&b, "memory:    %.2f\n", skills.Memory)
	fmt.Fprintf(&b, "reasoning: %.2f\n", skills.Reasoning)
	fmt.Fprintf(&b, "numerical: %.2f\n", skills.Numerical)
	fmt.Fprintf(&b, "language:  %.2f\n\n", skills.Language)

	if extra != "" {
		b.WriteString("EXTRA INSTRUCTION FROM USER:\n")
		b.WriteString(extra)
		b.WriteString("\n\n")
	}

	b.WriteString(`TASK:
1. Create ONE MCQ that:
   - depends only on the above document content.
   - matches the difficulty description for this level.
   - roughly matches the skill profile emphasis.
2. The question should be clearly answerable from the document context,
   but not trivial (unless level=1).
3. Return ONLY valid JSON with fields:
   "question_text", "options", "correct_option_index", "explanation".`)

	return b.String()
}
