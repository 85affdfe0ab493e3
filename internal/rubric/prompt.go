package rubric

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizforge/internal/extract"
)

// buildSystemPrompt assembles the calibration system instruction with the
// subject-specific difficulty hints baked in.
func buildSystemPrompt(subject string) string {
	var b strings.Builder

	b.WriteString(`You are an expert teacher and assessment designer.
Your task is to define a RELATIVE difficulty rubric with 5 levels (1 = easiest, 5 = hardest)
for multiple-choice questions generated ONLY from the given document content.

Constraints:
- Difficulty levels are RELATIVE within this document, not absolute exam standards.
- Each level must specify the approximate load on four skills:
  memory, reasoning, numerical, language. Each between 0.0 and 1.0.
- You must return STRICT JSON matching the requested schema.

`)
	b.WriteString("Subject-specific hints:\n")
	b.WriteString(hintFor(subject))
	b.WriteString("\n")

	return b.String()
}

// buildUserPrompt assembles the calibration task: a bounded document
// preview plus the exact JSON shape the reply must take. previewChars is a
// safety bound against oversized prompts, not a content-selection policy.
func buildUserPrompt(docText, docTitle, subject string, previewChars int) string {
	preview := extract.Truncate(docText, previewChars)

	var b strings.Builder

	b.WriteString("Here is a preview of the document content (may be truncated):\n\n")
	b.WriteString(preview)
	b.WriteString("\n\n")

	b.WriteString(`Your task:
Define RELATIVE difficulty levels 1..5 for MCQs generated ONLY from this document.
Do NOT use absolute exam standards. Difficulty is local to this document.

For each level include:
- level: integer 1..5
- name: short title
- description: what makes this level hard/easy
- skill_profile: relative load from 0.0 to 1.0 across four dimensions:
    memory, reasoning, numerical, language
- example_instruction: natural language hint for generating a question at this level

Return STRICT JSON in this format:

`)

	fmt.Fprintf(&b, "{\n  \"subject\": %q,\n  \"document_title\": %q,\n  \"levels\": [\n", subject, docTitle)
	for lvl := 1; lvl <= 5; lvl++ {
		fmt.Fprintf(&b, `    {
      "level": %d,
      "name": "string",
      "description": "string",
      "skill_profile": {"memory": 0.0, "reasoning": 0.0, "numerical": 0.0, "language": 0.0},
      "example_instruction": "string"
    }`, lvl)
		if lvl < 5 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  ]\n}\n\n")

	b.WriteString("IMPORTANT RULES:\n- The output MUST be valid JSON only.\n- No explanation text outside the JSON.\n")

	return b.String()
}
