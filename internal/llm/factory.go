package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/quizforge/internal/store"
)

// NewProvider creates the question-generation Provider from configuration,
// wrapped with retry and event logging middleware.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller → retry → logging → base.
	logged := WithLogging(base, events)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewMetaProvider creates the internal rubric-calibration Provider. It is
// always an OpenAI-compatible client pointed at cfg.Meta (Groq by default)
// and is not selectable through the engine API. The "mock" question
// provider implies a mock meta provider so offline runs stay offline.
func NewMetaProvider(cfg Config, events store.EventRepo) (Provider, error) {
	if cfg.Provider == "mock" {
		return NewMockProvider(), nil
	}
	if cfg.Meta.APIKey == "" {
		return nil, fmt.Errorf("QUIZFORGE_META_API_KEY (or GROQ_API_KEY) is required for rubric calibration")
	}

	base, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.Meta.APIKey,
		Model:   cfg.Meta.Model,
		BaseURL: cfg.Meta.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing meta provider: %w", err)
	}

	logged := WithLogging(base, events)
	return WithRetry(logged, cfg.Retry), nil
}
