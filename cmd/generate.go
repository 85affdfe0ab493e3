package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/rubric"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate multiple-choice questions from a document",
	Long: `Generate document-grounded MCQs at a requested difficulty level.

The first run against a document calibrates a 5-level difficulty rubric
(cached for the process lifetime); subsequent questions reuse it. With
--count > 1 the engine retries past duplicates and malformed outputs up
to count x attempts-factor total backend calls.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("document", "d", "", "Path to source document: PDF, HTML, or plain text (required)")
	generateCmd.Flags().StringP("subject", "s", "", "Subject hint for calibration (physics, math, history, ...)")
	generateCmd.Flags().IntP("level", "l", 3, "Difficulty level 1-5 against the document's rubric")
	generateCmd.Flags().IntP("count", "n", 1, "Number of distinct questions to generate")
	generateCmd.Flags().Int("attempts-factor", 3, "Backend call budget multiplier for batch generation")
	generateCmd.Flags().String("extra", "", "Extra free-text instruction appended to the prompt")
	generateCmd.Flags().Float64("memory", 0, "Override memory skill weight (0-1)")
	generateCmd.Flags().Float64("reasoning", 0, "Override reasoning skill weight (0-1)")
	generateCmd.Flags().Float64("numerical", 0, "Override numerical skill weight (0-1)")
	generateCmd.Flags().Float64("language", 0, "Override language skill weight (0-1)")
	generateCmd.Flags().Bool("json", false, "Emit results as JSON")
	_ = generateCmd.MarkFlagRequired("document")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	docPath, _ := cmd.Flags().GetString("document")
	subject, _ := cmd.Flags().GetString("subject")
	level, _ := cmd.Flags().GetInt("level")
	count, _ := cmd.Flags().GetInt("count")
	factor, _ := cmd.Flags().GetInt("attempts-factor")
	extra, _ := cmd.Flags().GetString("extra")
	asJSON, _ := cmd.Flags().GetBool("json")

	skills, err := skillOverride(cmd)
	if err != nil {
		return err
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	engine, err := buildEngine(cmd, s.EventRepo())
	if err != nil {
		return err
	}

	req := quizgen.Request{
		DocumentPath:     docPath,
		Subject:          subject,
		Level:            level,
		DesiredSkills:    skills,
		ExtraInstruction: extra,
	}

	ctx := cmd.Context()

	if count <= 1 {
		result, err := engine.GenerateQuestion(ctx, req)
		if err != nil {
			return err
		}
		return printResults(cmd, []*quizgen.Result{result}, 1, asJSON)
	}

	results := engine.GenerateQuestions(ctx, req, count, factor)
	if len(results) == 0 {
		return fmt.Errorf("no questions generated for %s at level %d", docPath, level)
	}
	return printResults(cmd, results, count, asJSON)
}

// skillOverride builds a DesiredSkills profile from the skill flags, or
// returns nil when none were set. Weights left at zero fall back to the
// rubric level's profile per field.
func skillOverride(cmd *cobra.Command) (*rubric.SkillProfile, error) {
	names := []string{"memory", "reasoning", "numerical", "language"}
	changed := false
	vals := make(map[string]float64, len(names))
	for _, name := range names {
		v, _ := cmd.Flags().GetFloat64(name)
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("--%s must be between 0 and 1, got %g", name, v)
		}
		vals[name] = v
		if cmd.Flags().Changed(name) {
			changed = true
		}
	}
	if !changed {
		return nil, nil
	}
	return &rubric.SkillProfile{
		Memory:    vals["memory"],
		Reasoning: vals["reasoning"],
		Numerical: vals["numerical"],
		Language:  vals["language"],
	}, nil
}

func printResults(cmd *cobra.Command, results []*quizgen.Result, requested int, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for i, r := range results {
		fmt.Printf("── Question %d/%d (level %d) ──\n", i+1, len(results), r.LevelAssigned)
		fmt.Println(r.QuestionText)
		for j, opt := range r.Options {
			marker := " "
			if j == r.CorrectOptionIndex {
				marker = "*"
			}
			fmt.Printf("  %s %c) %s\n", marker, 'A'+j, opt)
		}
		fmt.Printf("Explanation: %s\n", r.Explanation)
		fmt.Printf("Skills: memory=%.2f reasoning=%.2f numerical=%.2f language=%.2f\n\n",
			r.EffectiveSkills.Memory, r.EffectiveSkills.Reasoning,
			r.EffectiveSkills.Numerical, r.EffectiveSkills.Language)
	}

	if len(results) < requested {
		fmt.Fprintf(os.Stderr, "Generated %d of %d requested questions (budget exhausted).\n",
			len(results), requested)
	}
	return nil
}
