package rubric

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/abhisek/quizforge/internal/extract"
	"github.com/abhisek/quizforge/internal/llm"
)

// Config controls calibration prompt assembly and model budget.
type Config struct {
	// PreviewChars bounds the document preview embedded in the
	// calibration prompt.
	PreviewChars int

	// MaxTokens is the token budget for the rubric reply. Five levels of
	// prose need more room than a single question.
	MaxTokens int

	// Temperature for the calibration call. Low: rubrics should be stable.
	Temperature float64
}

// DefaultConfig returns the standard calibration settings.
func DefaultConfig() Config {
	return Config{
		PreviewChars: 4000,
		MaxTokens:    2048,
		Temperature:  0.2,
	}
}

// Generator calibrates a difficulty rubric for one (document, subject)
// pair with a single meta-model call. It performs exactly one call, one
// strict parse, and one salvage attempt; it never retries on its own.
type Generator struct {
	provider llm.Provider
	source   extract.Source
	cfg      Config
}

// NewGenerator creates a rubric generator backed by the given calibration
// provider and document source.
func NewGenerator(provider llm.Provider, source extract.Source, cfg Config) *Generator {
	return &Generator{provider: provider, source: source, cfg: cfg}
}

// Generate builds a rubric for the document at docPath under the given
// subject. Unknown subjects silently calibrate with generic hints.
func (g *Generator) Generate(ctx context.Context, docPath, subject string) (*Set, error) {
	subject = NormalizeSubject(subject)

	text, err := g.source.ExtractFullText(docPath)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeCalibration)

	req := llm.Request{
		System: buildSystemPrompt(subject),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserPrompt(text, filepath.Base(docPath), subject, g.cfg.PreviewChars)},
		},
		// No Schema: calibration models wrap JSON in prose often enough
		// that the salvage path below owns parsing.
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("rubric calibration call: %w", err)
	}

	raw := strings.TrimSpace(string(resp.Content))
	payload, err := parseOrSalvage(raw)
	if err != nil {
		return nil, err
	}

	if err := llm.ValidateSchema(SetSchema, payload); err != nil {
		return nil, &SchemaError{Err: err}
	}

	var set Set
	if err := json.Unmarshal(payload, &set); err != nil {
		return nil, &SchemaError{Err: fmt.Errorf("decode rubric: %w", err)}
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}

	return &set, nil
}

// parseOrSalvage accepts the raw reply if it is already valid JSON,
// otherwise tries the substring between the first '{' and the last '}'.
// That handles valid JSON wrapped in prose, nothing more; it is not a
// JSON repair pass.
func parseOrSalvage(raw string) (json.RawMessage, error) {
	if json.Valid([]byte(raw)) {
		return json.RawMessage(raw), nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, &MalformedOutputError{Raw: raw, Err: fmt.Errorf("no JSON object found")}
	}

	candidate := raw[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return nil, &MalformedOutputError{Raw: raw, Err: fmt.Errorf("salvaged fragment is not valid JSON")}
	}
	return json.RawMessage(candidate), nil
}
