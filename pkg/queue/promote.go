package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/task"
)

// runDependencyPromotion periodically releases child tasks whose sibling
// dependencies have all completed. All pods run this independently; the
// version guard makes concurrent promotion of the same child harmless.
func (p *WorkerPool) runDependencyPromotion(ctx context.Context) {
	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.promoteReadyChildren(ctx); err != nil {
				slog.Error("Dependency promotion failed", "error", err)
			}
		}
	}
}

// promoteReadyChildren flips waiting_on from deps to none for children
// whose prerequisites have all completed. A failed prerequisite leaves
// the child waiting: the orchestrator either respawns the sibling
// (rewiring depends_on to the replacement) or fails the whole tree.
func (p *WorkerPool) promoteReadyChildren(ctx context.Context) error {
	waiting, err := p.client.Task.Query().
		Where(
			task.WaitingOnEQ(task.WaitingOnDeps),
			task.StatusNotIn(task.StatusCompleted, task.StatusFailed),
			task.PodIDIsNil(),
			task.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query dependency-blocked tasks: %w", err)
	}

	for _, child := range waiting {
		ready, err := p.dependenciesSatisfied(ctx, child)
		if err != nil {
			slog.Error("Failed to check dependencies",
				"task_id", child.ID,
				"error", err)
			continue
		}
		if !ready {
			continue
		}

		n, err := p.client.Task.Update().
			Where(task.IDEQ(child.ID), task.VersionEQ(child.Version)).
			SetWaitingOn(task.WaitingOnNone).
			SetVersion(child.Version + 1).
			SetUpdatedAt(time.Now().UTC()).
			Save(ctx)
		if err != nil {
			slog.Error("Failed to promote task",
				"task_id", child.ID,
				"error", err)
			continue
		}
		if n == 0 {
			// Lost the race to another pod or a concurrent transition.
			continue
		}
		slog.Info("Dependencies satisfied, task promoted", "task_id", child.ID)
	}
	return nil
}

// dependenciesSatisfied reports whether every prerequisite completed.
func (p *WorkerPool) dependenciesSatisfied(ctx context.Context, child *ent.Task) (bool, error) {
	if len(child.DependsOn) == 0 {
		return true, nil
	}
	completed, err := p.client.Task.Query().
		Where(
			task.IDIn(child.DependsOn...),
			task.StatusEQ(task.StatusCompleted),
			task.DeletedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return false, err
	}
	return completed == len(child.DependsOn), nil
}
