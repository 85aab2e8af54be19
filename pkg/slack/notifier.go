package slack

import (
	"context"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/models"
	"github.com/coderelay-ai/coderelay/pkg/services"
)

// Notifier bridges engine transition callbacks to Slack notifications.
// It fires on entry into a notifiable status; re-notifications on
// unrelated field updates are suppressed by the from-status guard.
type Notifier struct {
	service *Service
}

// NewNotifier wraps a Service for use as an engine notifier. Accepts a
// nil service: all callbacks become no-ops.
func NewNotifier(service *Service) *Notifier {
	return &Notifier{service: service}
}

var notifiableStatuses = map[task.Status]bool{
	task.StatusCompleted:    true,
	task.StatusFailed:       true,
	task.StatusWaitingHuman: true,
}

// TaskTransitioned sends a notification when a task enters a terminal
// or human-attention status.
func (n *Notifier) TaskTransitioned(ctx context.Context, t *ent.Task, from task.Status) {
	if !notifiableStatuses[t.Status] || t.Status == from {
		return
	}

	input := TaskFinishedInput{
		TaskID:      t.ID,
		Repo:        t.Repo,
		IssueNumber: t.IssueNumber,
		Status:      string(t.Status),
	}
	if t.JobID != nil {
		input.JobID = *t.JobID
	}
	if t.PrURL != nil {
		input.PRURL = *t.PrURL
	}
	if t.LastError != nil {
		input.LastError = *t.LastError
	}

	n.service.NotifyTaskFinished(ctx, input)
}

// EventAppended is a no-op: the audit trail streams over WebSocket, not
// Slack.
func (n *Notifier) EventAppended(_ context.Context, _ *ent.TaskEvent) {}

// JobTerminalHook adapts the service for job terminal callbacks.
func JobTerminalHook(s *Service) services.JobTerminalHook {
	return func(ctx context.Context, j *ent.Job, summary models.JobSummary) {
		s.NotifyJobFinished(ctx, JobFinishedInput{
			JobID:     j.ID,
			Repo:      j.Repo,
			Status:    string(j.Status),
			Completed: summary.Completed,
			Failed:    summary.Failed,
			Total:     summary.Total,
		})
	}
}
