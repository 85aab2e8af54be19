package engine

import (
	"context"
	"fmt"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/models"
	"github.com/coderelay-ai/coderelay/pkg/services"
)

// ErrUnexpectedSignal indicates an external signal arriving for a task
// that is not waiting for it. Duplicate webhook deliveries land here.
var ErrUnexpectedSignal = fmt.Errorf("engine: task is not waiting for this signal")

// OnCIResult resumes a task suspended on CI. Success moves it to
// TESTS_PASSED, failure to TESTS_FAILED with the error summary for the
// fixer.
func (e *Engine) OnCIResult(ctx context.Context, taskID string, success bool, errorSummary string) error {
	t, err := e.tasks.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	if t.Status != task.StatusTesting || t.WaitingOn != task.WaitingOnCi {
		return ErrUnexpectedSignal
	}

	session, err := e.memories.GetSession(ctx, t.ID)
	if err != nil {
		return err
	}
	sc := session.Context
	sc.TestsPassed = &success

	to := task.StatusTestsPassed
	eventType := models.EventCIPassed
	if !success {
		to = task.StatusTestsFailed
		eventType = models.EventCIFailed
		sc.LastErrorSummary = "ci: " + errorSummary
	}

	tr := transition{
		to: to,
		sessionMutate: func(u *ent.SessionMemoryUpdate) {
			u.SetContext(sc)
		},
		events: []models.AppendEventRequest{{
			EventType: eventType,
			Metadata: map[string]interface{}{
				"success": success,
				"summary": errorSummary,
			},
		}},
	}
	if !success {
		tr.taskMutate = func(u *ent.TaskUpdate) {
			u.SetLastError("ci failed: " + errorSummary)
		}
	}

	if _, err := e.applyTransition(ctx, t, tr); err != nil {
		return err
	}
	e.logger.Info("CI signal applied", "task_id", taskID, "success", success)
	return nil
}

// OnMergeSignal completes a task whose PR was merged by a human.
func (e *Engine) OnMergeSignal(ctx context.Context, taskID string) error {
	t, err := e.tasks.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	if t.Status != task.StatusWaitingHuman || t.WaitingOn != task.WaitingOnHuman {
		return ErrUnexpectedSignal
	}

	updated, err := e.applyTransition(ctx, t, transition{
		to: task.StatusCompleted,
		sessionMutate: func(u *ent.SessionMemoryUpdate) {
			u.SetPhase("completed")
		},
		events: []models.AppendEventRequest{
			{EventType: models.EventMerged},
			{EventType: models.EventTaskCompleted},
		},
	})
	if err != nil {
		return err
	}

	e.notifyParent(ctx, updated)
	e.logger.Info("Merge signal applied", "task_id", taskID)
	return nil
}

// FindTaskByPR resolves the merge webhook's PR number to a task.
func (e *Engine) FindTaskByPR(ctx context.Context, repo string, prNumber int) (*ent.Task, error) {
	t, err := e.db.Task.Query().
		Where(
			task.RepoEQ(repo),
			task.PrNumberEQ(prNumber),
			task.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task for PR #%d: %w", prNumber, err)
	}
	return t, nil
}

// FindTaskByBranch resolves a CI webhook's branch name to a task.
func (e *Engine) FindTaskByBranch(ctx context.Context, repo, branch string) (*ent.Task, error) {
	t, err := e.db.Task.Query().
		Where(
			task.RepoEQ(repo),
			task.BranchNameEQ(branch),
			task.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task for branch %s: %w", branch, err)
	}
	return t, nil
}
