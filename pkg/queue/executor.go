package queue

import (
	"context"
	"log/slog"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/pkg/engine"
)

// maxStepsPerClaim bounds the state edges advanced under a single claim.
// The full pipeline is about ten edges; retries add a few more. Hitting
// the cap releases the task so other pods get a fair shot at it.
const maxStepsPerClaim = 50

// EngineExecutor drives the engine's state machine for a claimed task.
type EngineExecutor struct {
	engine *engine.Engine
	logger *slog.Logger
}

// NewEngineExecutor creates the standard executor.
func NewEngineExecutor(eng *engine.Engine, logger *slog.Logger) *EngineExecutor {
	return &EngineExecutor{
		engine: eng,
		logger: logger.With("component", "executor"),
	}
}

// Execute advances the task one edge at a time until it suspends,
// terminates, or errors. Each Step commits its own transaction; the
// result only reports how the claim ended.
func (x *EngineExecutor) Execute(ctx context.Context, t *ent.Task) *ExecutionResult {
	result := &ExecutionResult{Status: t.Status}

	for result.Steps < maxStepsPerClaim {
		if ctx.Err() != nil {
			result.Err = ctx.Err()
			return result
		}

		res, err := x.engine.Step(ctx, t.ID)
		if err != nil {
			result.Err = err
			return result
		}
		result.Status = res.To
		result.Steps++

		if res.Terminal {
			result.Terminal = true
			return result
		}
		if res.Suspended {
			result.Suspended = true
			return result
		}
	}

	x.logger.Warn("Claim step cap reached, releasing task",
		"task_id", t.ID,
		"status", result.Status,
		"steps", result.Steps)
	return result
}
