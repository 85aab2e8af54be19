package llm

import (
	"context"
	"log/slog"
	"math/rand"
	"time"
)

// Retry defaults. Only transport-class failures are retried; agent-level
// failures (bad JSON, schema violations) are handled by the state
// machine's attempt accounting, not here.
const (
	defaultRetryAttempts = 3
	defaultRetryBase     = 1 * time.Second
)

// RetryingClient wraps a Client with exponential backoff on
// transport-class errors.
type RetryingClient struct {
	inner    Client
	attempts int
	base     time.Duration
	logger   *slog.Logger
}

// WithRetry decorates a client with the default retry policy.
func WithRetry(inner Client, logger *slog.Logger) *RetryingClient {
	return &RetryingClient{
		inner:    inner,
		attempts: defaultRetryAttempts,
		base:     defaultRetryBase,
		logger:   logger,
	}
}

// Complete calls the inner client, retrying retryable errors with
// exponential backoff plus jitter. The last error wins.
func (c *RetryingClient) Complete(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		resp, err := c.inner.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !IsRetryable(err) || attempt == c.attempts {
			break
		}

		delay := c.base << (attempt - 1)
		delay += time.Duration(rand.Int63n(int64(delay) / 2))
		c.logger.Warn("Retrying LLM call after transport error",
			"attempt", attempt,
			"delay", delay,
			"error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, lastErr
}
