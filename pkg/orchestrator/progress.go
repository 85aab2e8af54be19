package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/sessionmemory"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/diff"
	"github.com/coderelay-ai/coderelay/pkg/models"
	"github.com/coderelay-ai/coderelay/pkg/services"
)

// progressRetries bounds optimistic-lock retries when several children
// reach terminal state at once.
const progressRetries = 3

// ErrNotResolvable indicates a conflict resolution arriving for a
// parent that is not waiting on one.
var ErrNotResolvable = errors.New("orchestrator: parent is not awaiting conflict resolution")

// OnChildTerminal folds one child's terminal state into the parent:
// progress tracking, subtask retry, aggregation, or parent failure.
// Concurrent child completions serialize on the parent's version.
func (o *Orchestrator) OnChildTerminal(ctx context.Context, child *ent.Task) error {
	if child.ParentTaskID == nil || *child.ParentTaskID == "" {
		return nil
	}

	var lastErr error
	for attempt := 0; attempt < progressRetries; attempt++ {
		lastErr = o.applyChildTerminal(ctx, *child.ParentTaskID, child)
		if !errors.Is(lastErr, services.ErrConcurrentModification) {
			return lastErr
		}
	}
	return lastErr
}

func (o *Orchestrator) applyChildTerminal(ctx context.Context, parentID string, child *ent.Task) error {
	parent, err := o.tasks.GetTask(ctx, parentID)
	if err != nil {
		return err
	}
	session, err := o.memories.GetSession(ctx, parentID)
	if err != nil {
		return err
	}
	orchState := session.Orchestration
	if orchState == nil {
		return fmt.Errorf("orchestrator: parent %s has no orchestration state", parentID)
	}
	sub := orchState.SubtaskByChildTask(child.ID)
	if sub == nil {
		// A stale respawned child; its replacement owns the subtask now.
		o.logger.Warn("Terminal child not tracked by parent",
			"parent_task_id", parentID, "child_task_id", child.ID)
		return nil
	}

	tx, err := o.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	switch child.Status {
	case task.StatusCompleted:
		sub.Status = models.SubtaskCompleted
		if child.CurrentDiff != nil {
			sub.Diff = *child.CurrentDiff
		}
		orchState.CompletedSubtasks = appendUnique(orchState.CompletedSubtasks, sub.ID)
		if _, err := o.events.AppendTx(ctx, tx, models.AppendEventRequest{
			TaskID:    parentID,
			EventType: models.EventChildCompleted,
			Metadata: map[string]interface{}{
				"subtask":     sub.ID,
				"childTaskId": child.ID,
			},
		}); err != nil {
			return err
		}

	case task.StatusFailed:
		sub.Attempts++
		if sub.Attempts < parent.MaxAttempts {
			if err := o.respawnSubtask(ctx, tx, parent, sub); err != nil {
				return err
			}
			if _, err := o.events.AppendTx(ctx, tx, models.AppendEventRequest{
				TaskID:    parentID,
				EventType: models.EventChildFailed,
				Metadata: map[string]interface{}{
					"subtask":   sub.ID,
					"respawned": true,
					"attempts":  sub.Attempts,
				},
			}); err != nil {
				return err
			}
		} else {
			sub.Status = models.SubtaskFailed
			if _, err := o.events.AppendTx(ctx, tx, models.AppendEventRequest{
				TaskID:    parentID,
				EventType: models.EventChildFailed,
				Metadata: map[string]interface{}{
					"subtask":   sub.ID,
					"respawned": false,
					"attempts":  sub.Attempts,
				},
			}); err != nil {
				return err
			}
			return o.failParent(ctx, tx, parent, orchState,
				fmt.Sprintf("subtask %q failed after %d attempts", sub.ID, sub.Attempts))
		}

	default:
		return fmt.Errorf("orchestrator: child %s is not terminal (%s)", child.ID, child.Status)
	}

	if orchState.AllCompleted() {
		return o.aggregate(ctx, tx, parent, orchState)
	}
	return o.saveProgress(ctx, tx, parent, orchState)
}

// respawnSubtask creates a replacement child for a failed subtask and
// rewires sibling dependencies to the new task ID.
func (o *Orchestrator) respawnSubtask(ctx context.Context, tx *ent.Tx, parent *ent.Task, sub *models.SubtaskState) error {
	oldID := sub.ChildTaskID
	newID := uuid.New().String()

	old, err := tx.Task.Query().Where(task.IDEQ(oldID)).Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load failed child: %w", err)
	}

	index := 0
	if old.SubtaskIndex != nil {
		index = *old.SubtaskIndex
	}
	if _, err := o.tasks.CreateTaskTx(ctx, tx, models.CreateTaskRequest{
		TaskID:           newID,
		Repo:             parent.Repo,
		IssueNumber:      parent.IssueNumber,
		IssueTitle:       old.IssueTitle,
		IssueBody:        old.IssueBody,
		MaxAttempts:      parent.MaxAttempts,
		ParentTaskID:     parent.ID,
		SubtaskIndex:     &index,
		DependsOn:        old.DependsOn,
		TargetFiles:      old.TargetFiles,
		DefinitionOfDone: old.DefinitionOfDone,
	}); err != nil {
		return fmt.Errorf("failed to respawn subtask %q: %w", sub.ID, err)
	}

	// Siblings that depend on the failed child now depend on its
	// replacement.
	siblings, err := tx.Task.Query().
		Where(
			task.ParentTaskIDEQ(parent.ID),
			task.IDNEQ(oldID),
			task.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load siblings: %w", err)
	}
	for _, sibling := range siblings {
		if !containsString(sibling.DependsOn, oldID) {
			continue
		}
		if _, err := tx.Task.UpdateOne(sibling).
			SetDependsOn(replaceString(sibling.DependsOn, oldID, newID)).
			SetUpdatedAt(time.Now().UTC()).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to rewire sibling %s: %w", sibling.ID, err)
		}
	}

	sub.ChildTaskID = newID
	sub.Status = models.SubtaskPending
	sub.Diff = ""
	return nil
}

// aggregate merges all child diffs and advances the parent. Conflicts
// and structurally incompatible diffs park the parent for an operator.
func (o *Orchestrator) aggregate(ctx context.Context, tx *ent.Tx, parent *ent.Task, orchState *models.OrchestrationState) error {
	inputs := make([]diff.SubtaskDiff, 0, len(orchState.Subtasks))
	for _, sub := range orchState.Subtasks {
		inputs = append(inputs, diff.SubtaskDiff{
			SubtaskID:   sub.ID,
			Diff:        sub.Diff,
			TargetFiles: sub.TargetFiles,
		})
	}

	agg, err := diff.NewAggregator(diff.Policy(o.cfg.ConflictStrategy), o.cfg.AutoResolveThreshold)
	if err != nil {
		return err
	}
	result, err := agg.Aggregate(inputs)
	if err != nil {
		return o.parkForConflict(ctx, tx, parent, orchState, &diff.ConflictReport{
			Policy: diff.Policy(o.cfg.ConflictStrategy),
			Conflicts: []diff.Conflict{{
				Reason: err.Error(),
			}},
		})
	}
	if result.ManualRequired() {
		return o.parkForConflict(ctx, tx, parent, orchState, result.Conflicts)
	}

	orchState.AggregatedDiff = result.Diff
	n, err := tx.Task.Update().
		Where(task.IDEQ(parent.ID), task.VersionEQ(parent.Version)).
		SetStatus(task.StatusCodingDone).
		SetWaitingOn(task.WaitingOnNone).
		SetCurrentDiff(result.Diff).
		SetVersion(parent.Version + 1).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance parent: %w", err)
	}
	if n == 0 {
		return services.ErrConcurrentModification
	}

	if _, err := tx.SessionMemory.Update().
		Where(sessionmemory.TaskIDEQ(parent.ID)).
		SetOrchestration(orchState).
		SetPhase("coding_done").
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to update parent session: %w", err)
	}

	if _, err := o.events.AppendTx(ctx, tx, models.AppendEventRequest{
		TaskID:    parent.ID,
		EventType: models.EventDiffAggregated,
		Metadata: map[string]interface{}{
			"files":    len(result.Summary),
			"subtasks": len(orchState.Subtasks),
		},
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit aggregation: %w", err)
	}
	o.logger.Info("Child diffs aggregated", "parent_task_id", parent.ID, "files", len(result.Summary))
	return nil
}

// parkForConflict moves the parent to WAITING_HUMAN with a structured
// conflict report event.
func (o *Orchestrator) parkForConflict(ctx context.Context, tx *ent.Tx, parent *ent.Task, orchState *models.OrchestrationState, report *diff.ConflictReport) error {
	n, err := tx.Task.Update().
		Where(task.IDEQ(parent.ID), task.VersionEQ(parent.Version)).
		SetStatus(task.StatusWaitingHuman).
		SetWaitingOn(task.WaitingOnHuman).
		SetLastError(fmt.Sprintf("aggregation conflict: %d unresolved", len(report.Conflicts))).
		SetFailureKind("orchestration").
		SetVersion(parent.Version + 1).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to park parent: %w", err)
	}
	if n == 0 {
		return services.ErrConcurrentModification
	}

	if _, err := tx.SessionMemory.Update().
		Where(sessionmemory.TaskIDEQ(parent.ID)).
		SetOrchestration(orchState).
		SetPhase("conflict").
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to update parent session: %w", err)
	}

	if _, err := o.events.AppendTx(ctx, tx, models.AppendEventRequest{
		TaskID:    parent.ID,
		EventType: models.EventConflictReported,
		Metadata: map[string]interface{}{
			"policy":    string(report.Policy),
			"conflicts": report.Conflicts,
		},
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit conflict report: %w", err)
	}
	o.logger.Warn("Aggregation requires manual resolution",
		"parent_task_id", parent.ID, "conflicts", len(report.Conflicts))
	return nil
}

// failParent fails the parent after a subtask exhausted its budget.
func (o *Orchestrator) failParent(ctx context.Context, tx *ent.Tx, parent *ent.Task, orchState *models.OrchestrationState, reason string) error {
	n, err := tx.Task.Update().
		Where(task.IDEQ(parent.ID), task.VersionEQ(parent.Version)).
		SetStatus(task.StatusFailed).
		SetWaitingOn(task.WaitingOnNone).
		SetLastError(reason).
		SetFailureKind("orchestration").
		SetVersion(parent.Version + 1).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail parent: %w", err)
	}
	if n == 0 {
		return services.ErrConcurrentModification
	}

	if _, err := tx.SessionMemory.Update().
		Where(sessionmemory.TaskIDEQ(parent.ID)).
		SetOrchestration(orchState).
		SetPhase("failed").
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to update parent session: %w", err)
	}

	if _, err := o.events.AppendTx(ctx, tx, models.AppendEventRequest{
		TaskID:    parent.ID,
		EventType: models.EventTaskFailed,
		Metadata: map[string]interface{}{
			"kind":   "orchestration",
			"detail": reason,
		},
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit parent failure: %w", err)
	}
	return nil
}

// saveProgress persists the updated orchestration state, serialized on
// the parent's version.
func (o *Orchestrator) saveProgress(ctx context.Context, tx *ent.Tx, parent *ent.Task, orchState *models.OrchestrationState) error {
	n, err := tx.Task.Update().
		Where(task.IDEQ(parent.ID), task.VersionEQ(parent.Version)).
		SetVersion(parent.Version + 1).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch parent: %w", err)
	}
	if n == 0 {
		return services.ErrConcurrentModification
	}

	if _, err := tx.SessionMemory.Update().
		Where(sessionmemory.TaskIDEQ(parent.ID)).
		SetOrchestration(orchState).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to update parent session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit progress: %w", err)
	}
	return nil
}

// ResolveConflict installs an operator-supplied aggregated diff and
// resumes the parked parent pipeline.
func (o *Orchestrator) ResolveConflict(ctx context.Context, parentID, resolvedDiff string) error {
	if _, err := diff.Parse(resolvedDiff); err != nil {
		return err
	}

	parent, err := o.tasks.GetTask(ctx, parentID)
	if err != nil {
		return err
	}
	if parent.Status != task.StatusWaitingHuman || !parent.IsOrchestrated {
		return ErrNotResolvable
	}
	session, err := o.memories.GetSession(ctx, parentID)
	if err != nil {
		return err
	}
	orchState := session.Orchestration
	if orchState == nil {
		return ErrNotResolvable
	}
	orchState.AggregatedDiff = resolvedDiff

	tx, err := o.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.Task.Update().
		Where(task.IDEQ(parentID), task.VersionEQ(parent.Version)).
		SetStatus(task.StatusCodingDone).
		SetWaitingOn(task.WaitingOnNone).
		SetCurrentDiff(resolvedDiff).
		ClearLastError().
		ClearFailureKind().
		SetVersion(parent.Version + 1).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to resume parent: %w", err)
	}
	if n == 0 {
		return services.ErrConcurrentModification
	}

	if _, err := tx.SessionMemory.Update().
		Where(sessionmemory.TaskIDEQ(parentID)).
		SetOrchestration(orchState).
		SetPhase("coding_done").
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to update parent session: %w", err)
	}

	if _, err := o.events.AppendTx(ctx, tx, models.AppendEventRequest{
		TaskID:    parentID,
		EventType: models.EventConflictResolved,
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit conflict resolution: %w", err)
	}
	o.logger.Info("Conflict resolved by operator", "parent_task_id", parentID)
	return nil
}

func appendUnique(items []string, item string) []string {
	for _, existing := range items {
		if existing == item {
			return items
		}
	}
	return append(items, item)
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func replaceString(items []string, from, to string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		if item == from {
			out[i] = to
		} else {
			out[i] = item
		}
	}
	return out
}
