package cmd

import (
	"fmt"

	"github.com/abhisek/quizforge/internal/extract"
	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/rubric"
	"github.com/abhisek/quizforge/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizforge",
	Short: "Document-grounded MCQ generator with difficulty calibration",
	Long: "QuizForge builds a per-document difficulty rubric and generates\n" +
		"multiple-choice questions grounded in the document at a requested level.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZFORGE_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(rubricCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event database for commands that log LLM traffic.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// buildEngine wires the full question pipeline: question backend and
// calibration backend from the environment, shared document source, and
// the generation engine on top.
func buildEngine(cmd *cobra.Command, events store.EventRepo) (*quizgen.Engine, error) {
	ctx := cmd.Context()
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		// Explicit config is incomplete; probe the standard key env vars
		// (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY) instead.
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}

	backend, err := llm.NewProvider(ctx, cfg, events)
	if err != nil {
		return nil, fmt.Errorf("question provider: %w", err)
	}
	meta, err := llm.NewMetaProvider(cfg, events)
	if err != nil {
		return nil, fmt.Errorf("calibration provider: %w", err)
	}

	source := extract.NewFileSource()
	rubrics := rubric.NewGenerator(meta, source, rubric.DefaultConfig())
	return quizgen.New(backend, rubrics, source, quizgen.DefaultConfig()), nil
}
