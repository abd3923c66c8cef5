// Package llm provides the boundary to the hosted language-model service.
// It defines a provider-agnostic interface over role-tagged chat messages with
// a concrete implementation for OpenAI-compatible endpoints (Groq by default)
// and deterministic mocks for testing. All calls are wrapped with bounded
// retry so transient failures surface as typed, classifiable errors.
package llm

import (
	"context"
	"errors"
)

var (
	ErrInvalidConfig = errors.New("invalid LLM configuration")

	// ErrModelCall wraps every failed completion so callers can distinguish
	// a model failure from a successful result and offer a retry affordance.
	ErrModelCall = errors.New("model call failed")

	// ErrAuth marks authentication/authorization failures. Not retried.
	ErrAuth = errors.New("model authentication failed")

	// ErrRateLimited marks rate-limit responses. Retried with backoff.
	ErrRateLimited = errors.New("model rate limited")
)

// Message is a single role-tagged prompt turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// UserMessage builds a single-turn user message slice, the common case for
// the rewrite, answer, follow-up and summarization prompts.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// LLM defines the interface for interacting with the hosted language model.
// Implementations must be stateless and safe for sequential reuse.
type LLM interface {
	// Complete sends the ordered message turns to the model and returns the
	// generated text. Failures are wrapped in ErrModelCall.
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Config holds common configuration options for the chat model.
type Config struct {
	// Model specifies the model identifier used for every call
	// (rewriting, answering, follow-ups and summarization).
	Model string

	// BaseURL points at an OpenAI-compatible endpoint. Defaults to Groq.
	BaseURL string

	// APIKey is the authentication key. Falls back to GROQ_API_KEY.
	APIKey string

	// Temperature controls randomness (0 = provider default)
	Temperature float32

	// MaxTokens limits the response length (0 = provider default)
	MaxTokens int

	// MaxRetries bounds retry attempts for transient failures.
	MaxRetries int
}

// DefaultConfig returns the defaults used throughout the assistant:
// a Groq-hosted Llama model, matching the single model identifier contract.
func DefaultConfig() Config {
	return Config{
		Model:      "llama-3.3-70b-versatile",
		BaseURL:    "https://api.groq.com/openai/v1",
		MaxRetries: 3,
	}
}
