package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/abhisek/quizforge/internal/extract"
	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/rubric"
)

// RubricBuilder calibrates a rubric for one (document, subject) pair.
// *rubric.Generator is the production implementation.
type RubricBuilder interface {
	Generate(ctx context.Context, docPath, subject string) (*rubric.Set, error)
}

// Engine is the generation orchestrator. It owns the rubric cache, builds
// grounded prompts, calls the pluggable question backend, and validates
// its output. One Engine serves many requests; its rubric cache is never
// evicted within the process lifetime — document content and subject are
// assumed to jointly determine a stable rubric for the run.
type Engine struct {
	backend llm.Provider
	rubrics RubricBuilder
	source  extract.Source
	cfg     Config

	// mu serializes cache access and is held across a rubric build, so
	// concurrent first requests for the same key produce exactly one
	// build instead of racing.
	mu    sync.Mutex
	cache map[cacheKey]*rubric.Set
}

type cacheKey struct {
	path    string
	subject string
}

// New creates an Engine around the given question backend, rubric builder,
// and document source.
func New(backend llm.Provider, rubrics RubricBuilder, source extract.Source, cfg Config) *Engine {
	return &Engine{
		backend: backend,
		rubrics: rubrics,
		source:  source,
		cfg:     cfg,
		cache:   make(map[cacheKey]*rubric.Set),
	}
}

// questionOutput is the backend's raw JSON reply before validation.
type questionOutput struct {
	QuestionText       string   `json:"question_text"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
	Explanation        string   `json:"explanation"`
}

// GenerateQuestion produces one validated question for the request.
// It recovers nothing: document-not-found, rubric failures, backend
// failures, parse failures, and validation failures all propagate.
func (e *Engine) GenerateQuestion(ctx context.Context, req Request) (*Result, error) {
	// Fail before any backend call when the document is missing.
	if _, err := os.Stat(req.DocumentPath); err != nil {
		if os.IsNotExist(err) {
			return nil, &extract.NotFoundError{Path: req.DocumentPath, Err: err}
		}
		return nil, fmt.Errorf("stat document %s: %w", req.DocumentPath, err)
	}

	subject := rubric.NormalizeSubject(req.Subject)

	set, err := e.rubricFor(ctx, req.DocumentPath, subject)
	if err != nil {
		return nil, err
	}

	lvl, err := set.GetLevel(req.Level)
	if err != nil {
		return nil, fmt.Errorf("requested level %d: %w", req.Level, err)
	}

	// Re-extracted here rather than shared with the rubric build; the
	// source is the consistency boundary, not this cache-free engine.
	docText, err := e.source.ExtractFullText(req.DocumentPath)
	if err != nil {
		return nil, err
	}

	effective := lvl.Skills.Merge(req.DesiredSkills)

	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)
	llmReq := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(docText, lvl, effective, req.ExtraInstruction, e.cfg)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.backend.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("question generation call: %w", err)
	}

	// Strict parse only. Salvage of near-JSON is the backend's job.
	var out questionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &MalformedOutputError{Raw: string(resp.Content), Err: err}
	}

	// The backend contract is only "returns JSON text". Providers without
	// native structured output (the mock included) enforce nothing, so a
	// reply missing a required key would otherwise zero-value through
	// Unmarshal. Re-check against the schema here.
	if err := llm.ValidateSchema(QuestionSchema, resp.Content); err != nil {
		return nil, &ValidationError{Validator: "schema", Message: err.Error()}
	}

	result := &Result{
		QuestionText:       out.QuestionText,
		Options:            out.Options,
		CorrectOptionIndex: out.CorrectOptionIndex,
		Explanation:        out.Explanation,
		LevelAssigned:      lvl.Level,
		EffectiveSkills:    effective,
	}

	for _, v := range e.cfg.Validators {
		if verr := v.Validate(result); verr != nil {
			return nil, verr
		}
	}

	return result, nil
}

// GenerateQuestions produces up to count questions with distinct trimmed
// texts, spending at most count*maxAttemptsFactor backend attempts. It
// recovers everything: each per-attempt failure, empty text, or duplicate
// burns one attempt and the loop moves on. Reaching fewer than count
// results is not an error.
func (e *Engine) GenerateQuestions(ctx context.Context, req Request, count, maxAttemptsFactor int) []*Result {
	if count < 1 {
		return nil
	}
	if maxAttemptsFactor < 1 {
		maxAttemptsFactor = 1
	}

	var results []*Result
	seen := make(map[string]struct{})
	maxAttempts := count * maxAttemptsFactor

	for attempts := 0; attempts < maxAttempts && len(results) < count; attempts++ {
		res, err := e.GenerateQuestion(ctx, req)
		if err != nil {
			continue
		}

		text := strings.TrimSpace(res.QuestionText)
		if text == "" {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}

		seen[text] = struct{}{}
		results = append(results, res)
	}

	return results
}

// rubricFor returns the cached rubric for (path, subject), building and
// caching it on first request. Lazy, never evicted.
func (e *Engine) rubricFor(ctx context.Context, path, subject string) (*rubric.Set, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := cacheKey{path: path, subject: subject}
	if set, ok := e.cache[key]; ok {
		return set, nil
	}

	set, err := e.rubrics.Generate(ctx, path, subject)
	if err != nil {
		return nil, fmt.Errorf("build rubric for %s (%s): %w", path, subject, err)
	}

	e.cache[key] = set
	return set, nil
}
