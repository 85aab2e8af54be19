package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coderelay-ai/coderelay/pkg/agent"
	"github.com/coderelay-ai/coderelay/pkg/diff"
	"github.com/coderelay-ai/coderelay/pkg/llm"
)

func TestStepError_Retryable(t *testing.T) {
	tests := []struct {
		name string
		err  *StepError
		want bool
	}{
		{"schema", &StepError{Kind: FailureSchema}, true},
		{"ci", &StepError{Kind: FailureCI}, true},
		{"apply without parse error", &StepError{Kind: FailureApply, Err: errors.New("patch did not land")}, true},
		{"apply with malformed diff", &StepError{Kind: FailureApply, Err: fmt.Errorf("wrap: %w", diff.ErrMalformedDiff)}, false},
		{"policy", &StepError{Kind: FailurePolicy}, false},
		{"transport", &StepError{Kind: FailureTransport}, false},
		{"timeout", &StepError{Kind: FailureTimeout}, false},
		{"cancelled", &StepError{Kind: FailureCancelled}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Retryable())
		})
	}
}

func TestStepError_ErrorAndUnwrap(t *testing.T) {
	inner := errors.New("boom")
	e := &StepError{Kind: FailureApply, Detail: "patch failed", Err: inner}
	assert.Contains(t, e.Error(), "apply")
	assert.Contains(t, e.Error(), "patch failed")
	assert.ErrorIs(t, e, inner)

	bare := &StepError{Kind: FailurePolicy, Detail: "blocked path"}
	assert.Equal(t, "policy: blocked path", bare.Error())
}

func TestClassifyStepError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{"schema violation", fmt.Errorf("coder: %w", agent.ErrSchemaViolation), FailureSchema},
		{"unparsable output", agent.ErrUnparsableOutput, FailureSchema},
		{"content policy", llm.ErrContentPolicy, FailurePolicy},
		{"authentication", llm.ErrAuthentication, FailurePolicy},
		{"timeout", llm.ErrTimeout, FailureTimeout},
		{"anything else is transport", errors.New("connection reset"), FailureTransport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyStepError("step", tt.err)
			assert.Equal(t, tt.want, got.Kind)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassifyStepError_PassesThroughStepError(t *testing.T) {
	orig := &StepError{Kind: FailureCI, Detail: "tests failed"}
	got := classifyStepError("outer", fmt.Errorf("wrap: %w", orig))
	assert.Same(t, orig, got)
}
