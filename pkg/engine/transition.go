package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/sessionmemory"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/models"
	"github.com/coderelay-ai/coderelay/pkg/services"
)

// transition is one state edge with everything that must commit with
// it: task row mutations, session mutations, and events. Applied in a
// single transaction guarded by the task's version; on conflict the
// worker re-reads and retries the iteration.
type transition struct {
	to        task.Status
	waitingOn task.WaitingOn

	// attemptDelta increments attempt_count (fix/retry accounting).
	attemptDelta int

	taskMutate    func(*ent.TaskUpdate)
	sessionMutate func(*ent.SessionMemoryUpdate)
	events        []models.AppendEventRequest
}

// applyTransition commits one transition. The returned task is the
// re-read post-commit row.
func (e *Engine) applyTransition(ctx context.Context, t *ent.Task, tr transition) (*ent.Task, error) {
	if !CanTransition(t.Status, tr.to) {
		return nil, fmt.Errorf("engine: illegal transition %s -> %s for task %s", t.Status, tr.to, t.ID)
	}
	if tr.waitingOn == "" {
		tr.waitingOn = task.WaitingOnNone
	}

	tx, err := e.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	upd := tx.Task.Update().
		Where(task.IDEQ(t.ID), task.VersionEQ(t.Version)).
		SetStatus(tr.to).
		SetWaitingOn(tr.waitingOn).
		SetVersion(t.Version + 1).
		SetUpdatedAt(time.Now().UTC())
	if tr.attemptDelta != 0 {
		upd.AddAttemptCount(tr.attemptDelta)
	}
	if tr.taskMutate != nil {
		tr.taskMutate(upd)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if n == 0 {
		return nil, services.ErrConcurrentModification
	}

	if tr.sessionMutate != nil {
		su := tx.SessionMemory.Update().
			Where(sessionmemory.TaskIDEQ(t.ID)).
			SetUpdatedAt(time.Now().UTC())
		tr.sessionMutate(su)
		if _, err := su.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to update session memory: %w", err)
		}
	}

	appended := make([]*ent.TaskEvent, 0, len(tr.events))
	for _, req := range tr.events {
		req.TaskID = t.ID
		evt, err := e.events.AppendTx(ctx, tx, req)
		if err != nil {
			return nil, err
		}
		appended = append(appended, evt)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}

	updated, err := e.tasks.GetTask(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	e.afterTransition(ctx, updated, t.Status, appended)
	return updated, nil
}

// recordStepFailure bumps the attempt counter and records the failure
// without changing status: the stage re-runs on the next iteration.
func (e *Engine) recordStepFailure(ctx context.Context, t *ent.Task, stepErr *StepError) (*ent.Task, error) {
	tx, err := e.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.Task.Update().
		Where(task.IDEQ(t.ID), task.VersionEQ(t.Version)).
		AddAttemptCount(1).
		SetVersion(t.Version+1).
		SetLastError(stepErr.Error()).
		SetFailureKind(string(stepErr.Kind)).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record step failure: %w", err)
	}
	if n == 0 {
		return nil, services.ErrConcurrentModification
	}

	if _, err := tx.SessionMemory.Update().
		Where(sessionmemory.TaskIDEQ(t.ID)).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to touch session memory: %w", err)
	}

	if _, err := e.events.AppendTx(ctx, tx, models.AppendEventRequest{
		TaskID:    t.ID,
		EventType: models.EventTaskFailed,
		Metadata: map[string]interface{}{
			"kind":      string(stepErr.Kind),
			"detail":    stepErr.Detail,
			"transient": true,
		},
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit step failure: %w", err)
	}
	return e.tasks.GetTask(ctx, t.ID)
}

// afterTransition runs the post-commit side effects: job status
// recompute and change notification. Both are best-effort; the durable
// state already committed.
func (e *Engine) afterTransition(ctx context.Context, t *ent.Task, from task.Status, events []*ent.TaskEvent) {
	if t.JobID != nil && *t.JobID != "" {
		if _, err := e.jobs.RecomputeStatus(ctx, *t.JobID); err != nil {
			e.logger.Warn("Failed to recompute job status", "job_id", *t.JobID, "error", err)
		}
	}
	if e.notifier != nil {
		e.notifier.TaskTransitioned(ctx, t, from)
		for _, evt := range events {
			e.notifier.EventAppended(ctx, evt)
		}
	}
}
