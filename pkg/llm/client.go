// Package llm provides the provider-agnostic model client used by the
// agent runtime, with Anthropic and OpenAI implementations. Providers
// are treated as stateless: every call re-sends its full context, so
// retries are idempotent at the agent boundary.
package llm

import (
	"context"
	"errors"

	"github.com/coderelay-ai/coderelay/pkg/config"
)

// Sentinel errors classifying provider failures. Transport-class errors
// (rate limit, timeout, transient 5xx, socket errors) are retryable;
// everything else surfaces to the state machine as a step failure.
var (
	// ErrRateLimited indicates the provider returned 429.
	ErrRateLimited = errors.New("llm: rate limited")

	// ErrTransient indicates a transient 5xx or socket-level failure.
	ErrTransient = errors.New("llm: transient provider error")

	// ErrTimeout indicates the call exceeded its deadline.
	ErrTimeout = errors.New("llm: request timed out")

	// ErrAuthentication indicates a 401/403 — non-retryable.
	ErrAuthentication = errors.New("llm: authentication failed")

	// ErrContentPolicy indicates the provider refused the request on
	// policy grounds — non-retryable.
	ErrContentPolicy = errors.New("llm: content policy refusal")
)

// IsRetryable reports whether an error is transport-class and may be
// retried with backoff.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTransient) ||
		errors.Is(err, ErrTimeout)
}

// Request is one completion call. SystemPrompt carries the stable
// cacheable prefix; UserPrompt the per-attempt variable suffix.
type Request struct {
	Model           string
	SystemPrompt    string
	UserPrompt      string
	MaxTokens       int
	Temperature     float64
	ReasoningEffort config.ReasoningEffort
}

// Response is the provider's completion with usage accounting.
type Response struct {
	Text         string
	Model        string
	InputTokens  int
	OutputTokens int
}

// TotalTokens returns input plus output token usage.
func (r *Response) TotalTokens() int {
	return r.InputTokens + r.OutputTokens
}

// Client is the LLM provider interface consumed by the agent runtime.
type Client interface {
	// Complete issues a single non-streaming completion.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// NewClient constructs the provider client selected by cfg.Backend.
func NewClient(cfg *config.LLMConfig, apiKey string) (Client, error) {
	switch cfg.Backend {
	case config.BackendAnthropic:
		return NewAnthropicClient(cfg, apiKey)
	case config.BackendOpenAI:
		return NewOpenAIClient(cfg, apiKey)
	default:
		return nil, errors.New("llm: unrecognized backend " + string(cfg.Backend))
	}
}
