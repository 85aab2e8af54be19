package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned tasks.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds claimed non-terminal tasks with stale
// heartbeats and requeues them. The engine commits one state edge per
// transaction, so a requeued task resumes from its last committed
// status with no partial state; it only burns the in-flight iteration.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Task.Query().
		Where(
			task.StatusNotIn(task.StatusCompleted, task.StatusFailed),
			task.PodIDNotNil(),
			task.LastHeartbeatAtNotNil(),
			task.LastHeartbeatAtLT(threshold),
			task.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tasks", "count", len(orphans))

	recovered := 0
	for _, t := range orphans {
		if err := requeueOrphan(ctx, p.client, t, "stale heartbeat"); err != nil {
			slog.Error("Failed to requeue orphaned task",
				"task_id", t.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphan releases a dead pod's claim so any worker can pick the
// task back up, and records the recovery on the audit trail. The pod_id
// guard keeps two pods from double-recovering the same task.
func requeueOrphan(ctx context.Context, client *ent.Client, t *ent.Task, reason string) error {
	podID := "unknown"
	if t.PodID != nil {
		podID = *t.PodID
	}
	lastHeartbeat := "unknown"
	if t.LastHeartbeatAt != nil {
		lastHeartbeat = t.LastHeartbeatAt.Format(time.RFC3339)
	}

	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.Task.Update().
		Where(task.IDEQ(t.ID), task.PodIDEQ(podID)).
		ClearPodID().
		ClearLastHeartbeatAt().
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release orphaned claim: %w", err)
	}
	if n == 0 {
		// Another pod recovered it first.
		return nil
	}

	if _, err := tx.TaskEvent.Create().
		SetTaskID(t.ID).
		SetEventType(models.EventOrphanRecovered).
		SetMetadata(map[string]interface{}{
			"pod_id":         podID,
			"last_heartbeat": lastHeartbeat,
			"status":         string(t.Status),
			"reason":         reason,
		}).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to record orphan recovery: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit orphan recovery: %w", err)
	}

	slog.Warn("Orphaned task requeued",
		"task_id", t.ID,
		"old_pod_id", podID,
		"status", t.Status,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans requeues tasks still claimed by this pod from a
// previous run. Called once during startup, before the worker pool
// begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Task.Query().
		Where(
			task.StatusNotIn(task.StatusCompleted, task.StatusFailed),
			task.PodIDEQ(podID),
			task.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, t := range orphans {
		if err := requeueOrphan(ctx, client, t, "pod restarted"); err != nil {
			slog.Error("Failed to requeue startup orphan",
				"task_id", t.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan requeued", "task_id", t.ID)
	}

	return nil
}
