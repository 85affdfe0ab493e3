package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/quizforge/internal/extract"
	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/rubric"
	"github.com/spf13/cobra"
)

var rubricCmd = &cobra.Command{
	Use:   "rubric",
	Short: "Calibrate and print the difficulty rubric for a document",
	Long: `Build the 5-level difficulty rubric for a document without generating
any questions. Useful for inspecting how the calibration model reads the
document before committing to a batch.`,
	RunE: runRubric,
}

func init() {
	rubricCmd.Flags().StringP("document", "d", "", "Path to source document (required)")
	rubricCmd.Flags().StringP("subject", "s", "", "Subject hint for calibration")
	rubricCmd.Flags().Bool("json", false, "Emit the rubric as JSON")
	_ = rubricCmd.MarkFlagRequired("document")
}

func runRubric(cmd *cobra.Command, args []string) error {
	docPath, _ := cmd.Flags().GetString("document")
	subject, _ := cmd.Flags().GetString("subject")
	asJSON, _ := cmd.Flags().GetBool("json")

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := llm.ConfigFromEnv()
	meta, err := llm.NewMetaProvider(cfg, s.EventRepo())
	if err != nil {
		return fmt.Errorf("calibration provider: %w", err)
	}

	gen := rubric.NewGenerator(meta, extract.NewFileSource(), rubric.DefaultConfig())
	set, err := gen.Generate(cmd.Context(), docPath, subject)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(set)
	}

	fmt.Printf("Document: %s\n", set.DocumentTitle)
	fmt.Printf("Subject:  %s\n\n", set.Subject)
	for _, lvl := range set.Levels {
		fmt.Printf("Level %d — %s\n", lvl.Level, lvl.Name)
		fmt.Println(strings.Repeat("─", 60))
		fmt.Println(lvl.Description)
		fmt.Printf("Skills: memory=%.2f reasoning=%.2f numerical=%.2f language=%.2f\n",
			lvl.Skills.Memory, lvl.Skills.Reasoning, lvl.Skills.Numerical, lvl.Skills.Language)
		if lvl.ExampleInstruction != "" {
			fmt.Printf("Example: %s\n", lvl.ExampleInstruction)
		}
		fmt.Println()
	}
	return nil
}
