package llm

import "testing"

// clearKeyEnv blanks every env var DiscoverConfig reads, so tests see
// only what they set themselves.
func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"QUIZFORGE_LLM_PROVIDER",
		"QUIZFORGE_ANTHROPIC_API_KEY",
		"QUIZFORGE_OPENAI_API_KEY",
		"QUIZFORGE_GEMINI_API_KEY",
		"GEMINI_API_KEY",
		"OPENAI_API_KEY",
		"ANTHROPIC_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestDiscoverConfig(t *testing.T) {
	t.Run("explicit config wins over bare keys", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("QUIZFORGE_LLM_PROVIDER", "openai")
		t.Setenv("QUIZFORGE_OPENAI_API_KEY", "sk-explicit")
		t.Setenv("GEMINI_API_KEY", "gk-bare")

		cfg, ok := DiscoverConfig()
		if !ok {
			t.Fatal("expected discovery to succeed")
		}
		if cfg.Provider != "openai" {
			t.Fatalf("expected openai, got %q", cfg.Provider)
		}
		if cfg.OpenAI.APIKey != "sk-explicit" {
			t.Errorf("expected explicit key, got %q", cfg.OpenAI.APIKey)
		}
	})

	t.Run("gemini key probed first", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("GEMINI_API_KEY", "gk")
		t.Setenv("OPENAI_API_KEY", "sk")
		t.Setenv("ANTHROPIC_API_KEY", "ak")

		cfg, ok := DiscoverConfig()
		if !ok || cfg.Provider != "gemini" {
			t.Fatalf("expected gemini, got ok=%v provider=%q", ok, cfg.Provider)
		}
		if cfg.Gemini.APIKey != "gk" {
			t.Errorf("expected gemini key, got %q", cfg.Gemini.APIKey)
		}
	})

	t.Run("openai key probed before anthropic", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("OPENAI_API_KEY", "sk")
		t.Setenv("ANTHROPIC_API_KEY", "ak")

		cfg, ok := DiscoverConfig()
		if !ok || cfg.Provider != "openai" {
			t.Fatalf("expected openai, got ok=%v provider=%q", ok, cfg.Provider)
		}
	})

	t.Run("anthropic key probed last", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("ANTHROPIC_API_KEY", "ak")

		cfg, ok := DiscoverConfig()
		if !ok || cfg.Provider != "anthropic" {
			t.Fatalf("expected anthropic, got ok=%v provider=%q", ok, cfg.Provider)
		}
		if cfg.Anthropic.APIKey != "ak" {
			t.Errorf("expected anthropic key, got %q", cfg.Anthropic.APIKey)
		}
	})

	t.Run("explicit provider without its key falls back to probe", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("QUIZFORGE_LLM_PROVIDER", "anthropic")
		t.Setenv("OPENAI_API_KEY", "sk")

		cfg, ok := DiscoverConfig()
		if !ok || cfg.Provider != "openai" {
			t.Fatalf("expected fallback to openai, got ok=%v provider=%q", ok, cfg.Provider)
		}
	})

	t.Run("mock provider needs no key", func(t *testing.T) {
		clearKeyEnv(t)
		t.Setenv("QUIZFORGE_LLM_PROVIDER", "mock")

		cfg, ok := DiscoverConfig()
		if !ok || cfg.Provider != "mock" {
			t.Fatalf("expected mock, got ok=%v provider=%q", ok, cfg.Provider)
		}
	})

	t.Run("no keys anywhere fails", func(t *testing.T) {
		clearKeyEnv(t)

		if _, ok := DiscoverConfig(); ok {
			t.Fatal("expected discovery to fail with no keys set")
		}
	})
}
