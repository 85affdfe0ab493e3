package llm

import (
	"context"
	"encoding/json"
)

// Provider is the capability every model backend exposes: take a prompt,
// return text. Both the pluggable question backend and the fixed
// calibration (meta) backend satisfy it.
type Provider interface {
	// Generate sends a prompt to the model and returns its output.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and validates the reply against it.
	// When Schema is nil the reply is returned as raw text, unvalidated —
	// callers that expect near-JSON (the rubric generator) parse and
	// salvage it themselves.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one model invocation.
type Request struct {
	// System is the system prompt: role, policy, output constraints.
	System string

	// Messages is the conversation. All quizforge prompts are single-turn:
	// one user message carrying the document context and the task.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	// Nil means raw text back.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is a single chat message.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON structure the model must produce.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "difficulty-rubric".
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
