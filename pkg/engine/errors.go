package engine

import (
	"errors"
	"fmt"

	"github.com/coderelay-ai/coderelay/pkg/agent"
	"github.com/coderelay-ai/coderelay/pkg/diff"
	"github.com/coderelay-ai/coderelay/pkg/llm"
)

// FailureKind classifies a step failure for retry accounting and the
// task's failure_kind column.
type FailureKind string

// Failure kinds.
const (
	FailureTransport     FailureKind = "transport"
	FailureSchema        FailureKind = "schema"
	FailurePolicy        FailureKind = "policy"
	FailureApply         FailureKind = "apply"
	FailureCI            FailureKind = "ci"
	FailureOrchestration FailureKind = "orchestration"
	FailureCancelled     FailureKind = "cancelled"
	FailureTimeout       FailureKind = "timeout"
)

// StepError is one failed pipeline step with its classification.
type StepError struct {
	Kind   FailureKind
	Detail string
	Err    error
}

func (e *StepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure consumes a task attempt and
// moves the task to FIXING rather than failing it outright.
func (e *StepError) Retryable() bool {
	switch e.Kind {
	case FailureSchema, FailureCI:
		return true
	case FailureApply:
		// Apply failures are retryable when the diff parsed but did not
		// land; structurally invalid diffs are terminal.
		return !errors.Is(e.Err, diff.ErrMalformedDiff)
	}
	return false
}

// classifyStepError wraps an agent or collaborator error as a StepError.
// Transport errors arriving here already exhausted the LLM layer's own
// retry budget, so they fail the task.
func classifyStepError(detail string, err error) *StepError {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr
	}

	kind := FailureTransport
	switch {
	case errors.Is(err, agent.ErrSchemaViolation), errors.Is(err, agent.ErrUnparsableOutput):
		kind = FailureSchema
	case errors.Is(err, llm.ErrContentPolicy), errors.Is(err, llm.ErrAuthentication):
		kind = FailurePolicy
	case errors.Is(err, llm.ErrTimeout):
		kind = FailureTimeout
	}
	return &StepError{Kind: kind, Detail: detail, Err: err}
}
