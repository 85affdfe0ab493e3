package rubric

import (
	"errors"
	"testing"
)

func TestNewSkillProfile_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name                                   string
		memory, reasoning, numerical, language float64
		wantErr                                bool
	}{
		{"all valid", 0.2, 0.8, 0.0, 1.0, false},
		{"memory negative", -0.1, 0.5, 0.5, 0.5, true},
		{"reasoning above one", 0.5, 1.1, 0.5, 0.5, true},
		{"numerical negative", 0.5, 0.5, -0.01, 0.5, true},
		{"language above one", 0.5, 0.5, 0.5, 2.0, true},
		{"boundaries", 0.0, 1.0, 0.0, 1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSkillProfile(tt.memory, tt.reasoning, tt.numerical, tt.language)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var schemaErr *SchemaError
				if !errors.As(err, &schemaErr) {
					t.Fatalf("expected SchemaError, got %T", err)
				}
			}
		})
	}
}

func TestSkillProfile_Merge(t *testing.T) {
	base := SkillProfile{Memory: 0.8, Reasoning: 0.2, Numerical: 0.1, Language: 0.4}

	t.Run("nil override returns base", func(t *testing.T) {
		got := base.Merge(nil)
		if got != base {
			t.Fatalf("expected %+v, got %+v", base, got)
		}
	})

	t.Run("non-zero fields win per field", func(t *testing.T) {
		got := base.Merge(&SkillProfile{Reasoning: 0.9})
		want := SkillProfile{Memory: 0.8, Reasoning: 0.9, Numerical: 0.1, Language: 0.4}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("zero fields fall back to base", func(t *testing.T) {
		got := base.Merge(&SkillProfile{Memory: 0.3, Language: 0.7})
		want := SkillProfile{Memory: 0.3, Reasoning: 0.2, Numerical: 0.1, Language: 0.7}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("base unchanged", func(t *testing.T) {
		_ = base.Merge(&SkillProfile{Memory: 1.0})
		if base.Memory != 0.8 {
			t.Fatal("Merge mutated the receiver")
		}
	})
}

func TestSet_GetLevel(t *testing.T) {
	set := testRubricSet()

	lvl, err := set.GetLevel(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lvl.Level != 3 {
		t.Fatalf("expected level 3, got %d", lvl.Level)
	}

	_, err = set.GetLevel(7)
	if err == nil {
		t.Fatal("expected error for undefined level")
	}
	var notDef *LevelNotDefinedError
	if !errors.As(err, &notDef) {
		t.Fatalf("expected LevelNotDefinedError, got %T", err)
	}
	if notDef.Level != 7 {
		t.Fatalf("expected level 7 in error, got %d", notDef.Level)
	}
}

func TestSet_Validate(t *testing.T) {
	t.Run("valid set", func(t *testing.T) {
		set := testRubricSet()
		if err := set.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no levels", func(t *testing.T) {
		set := &Set{Subject: "physics"}
		if err := set.Validate(); err == nil {
			t.Fatal("expected error for empty levels")
		}
	})

	t.Run("level out of range", func(t *testing.T) {
		set := testRubricSet()
		set.Levels[0].Level = 6
		if err := set.Validate(); err == nil {
			t.Fatal("expected error for level 6")
		}
	})

	t.Run("duplicate level", func(t *testing.T) {
		set := testRubricSet()
		set.Levels[1].Level = set.Levels[0].Level
		if err := set.Validate(); err == nil {
			t.Fatal("expected error for duplicate level")
		}
	})

	t.Run("empty name", func(t *testing.T) {
		set := testRubricSet()
		set.Levels[2].Name = "  "
		if err := set.Validate(); err == nil {
			t.Fatal("expected error for empty name")
		}
	})

	t.Run("weight out of range", func(t *testing.T) {
		set := testRubricSet()
		set.Levels[4].Skills.Reasoning = 1.5
		if err := set.Validate(); err == nil {
			t.Fatal("expected error for weight above 1")
		}
	})
}

func TestNormalizeSubject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Physics", "physics"},
		{"  MATH  ", "math"},
		{"", "generic"},
		{"   ", "generic"},
		{"astrobiology", "astrobiology"},
	}
	for _, tt := range tests {
		if got := NormalizeSubject(tt.in); got != tt.want {
			t.Errorf("NormalizeSubject(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// testRubricSet builds a structurally valid 5-level rubric.
func testRubricSet() *Set {
	names := []string{"Recall", "Comprehension", "Application", "Analysis", "Synthesis"}
	set := &Set{
		Subject:       "physics",
		DocumentTitle: "waves.pdf",
	}
	for i := 1; i <= 5; i++ {
		set.Levels = append(set.Levels, Level{
			Level:       i,
			Name:        names[i-1],
			Description: "difficulty tier " + names[i-1],
			Skills: SkillProfile{
				Memory:    1.0 - float64(i)*0.15,
				Reasoning: float64(i) * 0.18,
				Numerical: 0.3,
				Language:  0.4,
			},
			ExampleInstruction: "ask a " + names[i-1] + " question",
		})
	}
	return set
}
