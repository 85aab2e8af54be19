package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/task"
)

// Notifier translates engine transitions into broadcast payloads.
// It implements the engine's notification surface; all publishes are
// post-commit and best-effort, so delivery failures never roll back a
// transition.
type Notifier struct {
	client    *ent.Client
	publisher *EventPublisher
	logger    *slog.Logger
}

// NewNotifier creates a notifier over the publisher.
func NewNotifier(client *ent.Client, publisher *EventPublisher, logger *slog.Logger) *Notifier {
	return &Notifier{
		client:    client,
		publisher: publisher,
		logger:    logger.With("component", "notifier"),
	}
}

// TaskTransitioned broadcasts the task's new status, and the owning
// job's freshly derived status when the task belongs to a job.
func (n *Notifier) TaskTransitioned(ctx context.Context, t *ent.Task, from task.Status) {
	payload := TaskStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeTaskStatus,
			TaskID:    t.ID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Status:    string(t.Status),
		From:      string(from),
		WaitingOn: string(t.WaitingOn),
	}
	if t.JobID != nil {
		payload.JobID = *t.JobID
	}
	if t.FailureKind != nil {
		payload.FailureKind = *t.FailureKind
	}
	if err := n.publisher.PublishTaskStatus(ctx, t.ID, payload); err != nil {
		n.logger.Warn("Failed to publish task status",
			"task_id", t.ID, "status", t.Status, "error", err)
	}

	if t.JobID == nil {
		return
	}
	// The engine recomputed the job status before notifying; read the
	// derived value rather than re-deriving it here.
	j, err := n.client.Job.Get(ctx, *t.JobID)
	if err != nil {
		n.logger.Warn("Failed to load job for status broadcast",
			"job_id", *t.JobID, "error", err)
		return
	}
	if err := n.publisher.PublishJobStatus(ctx, JobStatusPayload{
		Type:      EventTypeJobStatus,
		JobID:     j.ID,
		Status:    string(j.Status),
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		n.logger.Warn("Failed to publish job status",
			"job_id", j.ID, "error", err)
	}
}

// EventAppended mirrors one audit-trail append onto the task channel.
func (n *Notifier) EventAppended(ctx context.Context, evt *ent.TaskEvent) {
	payload := TaskEventPayload{
		BasePayload: BasePayload{
			Type:      EventTypeTaskEvent,
			TaskID:    evt.TaskID,
			Timestamp: evt.CreatedAt.Format(time.RFC3339Nano),
		},
		EventID:   int64(evt.ID),
		EventType: evt.EventType,
		Agent:     evt.Agent,
	}
	if err := n.publisher.PublishTaskEvent(ctx, evt.TaskID, payload); err != nil {
		n.logger.Warn("Failed to publish task event",
			"task_id", evt.TaskID, "event_type", evt.EventType, "error", err)
	}
}
