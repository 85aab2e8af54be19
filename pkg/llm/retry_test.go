package llm

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingClient struct {
	calls int
	errs  []error
}

func (c *countingClient) Complete(_ context.Context, req Request) (*Response, error) {
	c.calls++
	if c.calls <= len(c.errs) && c.errs[c.calls-1] != nil {
		return nil, c.errs[c.calls-1]
	}
	return &Response{Text: "ok", Model: req.Model}, nil
}

func fastRetry(inner Client) *RetryingClient {
	return &RetryingClient{
		inner:    inner,
		attempts: 3,
		base:     time.Millisecond,
		logger:   slog.Default(),
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	inner := &countingClient{errs: []error{ErrRateLimited, ErrTransient}}
	resp, err := fastRetry(inner).Complete(context.Background(), Request{Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 3, inner.calls)
}

func TestRetry_NonRetryableFailsImmediately(t *testing.T) {
	inner := &countingClient{errs: []error{ErrAuthentication}}
	_, err := fastRetry(inner).Complete(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Equal(t, 1, inner.calls)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	wrapped := errors.New("provider busy")
	inner := &countingClient{errs: []error{
		ErrTransient,
		ErrTransient,
		errors.Join(ErrRateLimited, wrapped),
	}}
	_, err := fastRetry(inner).Complete(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.ErrorIs(t, err, wrapped)
	assert.Equal(t, 3, inner.calls)
}

func TestRetry_ContextCancelledDuringBackoff(t *testing.T) {
	inner := &countingClient{errs: []error{ErrTransient, ErrTransient, ErrTransient}}
	client := fastRetry(inner)
	client.base = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, inner.calls)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrRateLimited))
	assert.True(t, IsRetryable(ErrTransient))
	assert.True(t, IsRetryable(ErrTimeout))
	assert.False(t, IsRetryable(ErrAuthentication))
	assert.False(t, IsRetryable(ErrContentPolicy))
	assert.False(t, IsRetryable(errors.New("other")))
}
