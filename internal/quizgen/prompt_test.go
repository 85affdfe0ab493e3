package quizgen

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/abhisek/quizforge/internal/rubric"
)

func promptLevel() rubric.Level {
	return rubric.Level{
		Level:              4,
		Name:               "Analysis",
		Description:        "Requires combining two or more ideas from the document.",
		Skills:             rubric.SkillProfile{Memory: 0.3, Reasoning: 0.8, Numerical: 0.2, Language: 0.5},
		ExampleInstruction: "ask why the phenomenon occurs",
	}
}

func TestBuildUserMessage_Sections(t *testing.T) {
	msg := buildUserMessage("Waves transfer energy.", promptLevel(),
		rubric.SkillProfile{Memory: 0.3, Reasoning: 0.8, Numerical: 0.2, Language: 0.5},
		"focus on the second section", DefaultConfig())

	for _, want := range []string{
		"DOCUMENT CONTENT (TRUNCATED):",
		"Waves transfer energy.",
		"Level: 4 - Analysis",
		"Requires combining two or more ideas",
		"ask why the phenomenon occurs",
		"reasoning: 0.80",
		"EXTRA INSTRUCTION FROM USER:",
		"focus on the second section",
		`"correct_option_index"`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildUserMessage_OmitsEmptyExtra(t *testing.T) {
	msg := buildUserMessage("doc", promptLevel(), promptLevel().Skills, "", DefaultConfig())
	if strings.Contains(msg, "EXTRA INSTRUCTION") {
		t.Error("empty extra instruction must not appear in the prompt")
	}
}

func TestBuildUserMessage_TruncatesContext(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContextChars = 10

	long := strings.Repeat("abcdefghij", 100)
	msg := buildUserMessage(long, promptLevel(), promptLevel().Skills, "", cfg)

	if strings.Contains(msg, long) {
		t.Error("expected document content to be truncated")
	}
	if !strings.Contains(msg, "abcdefghij\n") {
		t.Error("expected the first 10 chars to survive truncation")
	}
}

func TestBuildUserMessage_TruncationKeepsRunesWhole(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContextChars = 11 // lands inside the first ω (2 bytes at offsets 10-11)

	doc := strings.Repeat("a", 10) + strings.Repeat("ω", 10)
	msg := buildUserMessage(doc, promptLevel(), promptLevel().Skills, "", cfg)

	if !utf8.ValidString(msg) {
		t.Fatal("truncated prompt contains invalid UTF-8")
	}
	if !strings.Contains(msg, "aaaaaaaaaa\n") {
		t.Error("expected truncation to back up to the rune boundary")
	}
}

func TestBuildUserMessage_NoTruncationWhenUnbounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContextChars = 0

	long := strings.Repeat("x", 20000)
	msg := buildUserMessage(long, promptLevel(), promptLevel().Skills, "", cfg)
	if !strings.Contains(msg, long) {
		t.Error("expected full document content when ContextChars is 0")
	}
}
