// Package cleanup enforces data retention. The durable task event log
// is never touched: retention soft-deletes old terminal tasks and jobs
// and purges the transient NOTIFY mirror past its catchup window.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/event"
	"github.com/coderelay-ai/coderelay/ent/job"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/config"
)

// Service periodically enforces retention policies:
//   - Soft-deletes terminal tasks past the retention window
//   - Soft-deletes terminal jobs whose members are all soft-deleted
//   - Purges NOTIFY-mirror event rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"task_retention_days", s.config.TaskRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single retention sweep.
func (s *Service) RunOnce(ctx context.Context) {
	s.softDeleteOldTasks(ctx)
	s.softDeleteOldJobs(ctx)
	s.purgeEventMirror(ctx)
}

// softDeleteOldTasks hides terminal tasks past the retention window.
// Their event trail stays intact; only listings stop showing them.
func (s *Service) softDeleteOldTasks(ctx context.Context) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.config.TaskRetentionDays)

	count, err := s.client.Task.Update().
		Where(
			task.StatusIn(task.StatusCompleted, task.StatusFailed),
			task.UpdatedAtLT(cutoff),
			task.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		slog.Error("Retention: soft-delete tasks failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old tasks", "count", count)
	}
}

// softDeleteOldJobs hides terminal jobs once every member task has been
// soft-deleted. Running jobs are never touched regardless of age.
func (s *Service) softDeleteOldJobs(ctx context.Context) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.config.TaskRetentionDays)

	count, err := s.client.Job.Update().
		Where(
			job.StatusIn(job.StatusCompleted, job.StatusFailed, job.StatusPartial, job.StatusCancelled),
			job.UpdatedAtLT(cutoff),
			job.DeletedAtIsNil(),
			job.Not(job.HasTasksWith(task.DeletedAtIsNil())),
		).
		SetDeletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		slog.Error("Retention: soft-delete jobs failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old jobs", "count", count)
	}
}

// purgeEventMirror hard-deletes NOTIFY-mirror rows past the catchup
// window. Clients further behind than the TTL refetch over REST.
func (s *Service) purgeEventMirror(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.config.EventTTL)

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: event mirror purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged event mirror rows", "count", count)
	}
}
