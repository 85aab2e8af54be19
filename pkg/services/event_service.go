package services

import (
	"context"
	"fmt"
	"time"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/taskevent"
	"github.com/coderelay-ai/coderelay/pkg/masking"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

// EventService manages the durable task event log. The log is append-only:
// events are never updated or deleted, and ordering within a task is
// reconstructible from (created_at, id). The bigserial id doubles as the
// opaque cursor of the global stream.
type EventService struct {
	client *ent.Client
	masker *masking.Service
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// SetMasker enables credential scrubbing on appended events. The log is
// append-only, so anything that slips through is permanent.
func (s *EventService) SetMasker(m *masking.Service) {
	s.masker = m
}

// Append appends one event to a task's audit trail.
func (s *EventService) Append(ctx context.Context, req models.AppendEventRequest) (*ent.TaskEvent, error) {
	return appendEvent(ctx, s.client.TaskEvent, s.maskRequest(req))
}

// AppendTx appends an event inside an existing transaction. State
// transitions use this so the task row, the session, and the event
// commit or abort together — a failed append aborts the transition.
func (s *EventService) AppendTx(ctx context.Context, tx *ent.Tx, req models.AppendEventRequest) (*ent.TaskEvent, error) {
	return appendEvent(ctx, tx.TaskEvent, s.maskRequest(req))
}

func (s *EventService) maskRequest(req models.AppendEventRequest) models.AppendEventRequest {
	if s.masker == nil {
		return req
	}
	req.InputSummary = s.masker.MaskText(req.InputSummary)
	req.OutputSummary = s.masker.MaskText(req.OutputSummary)
	req.Metadata = s.masker.MaskMetadata(req.Metadata)
	return req
}

func appendEvent(ctx context.Context, c *ent.TaskEventClient, req models.AppendEventRequest) (*ent.TaskEvent, error) {
	if req.TaskID == "" {
		return nil, NewValidationError("task_id", "required")
	}
	if req.EventType == "" {
		return nil, NewValidationError("event_type", "required")
	}

	builder := c.Create().
		SetTaskID(req.TaskID).
		SetEventType(req.EventType).
		SetCreatedAt(time.Now().UTC())

	if req.Agent != "" {
		builder.SetAgent(string(req.Agent))
	}
	if req.InputSummary != "" {
		builder.SetInputSummary(req.InputSummary)
	}
	if req.OutputSummary != "" {
		builder.SetOutputSummary(req.OutputSummary)
	}
	if req.TokensUsed != nil {
		builder.SetTokensUsed(*req.TokensUsed)
	}
	if req.DurationMs != nil {
		builder.SetDurationMs(*req.DurationMs)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	evt, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append task event: %w", err)
	}
	return evt, nil
}

// List returns all events of a task in (created_at, id) order.
func (s *EventService) List(ctx context.Context, taskID string) ([]*ent.TaskEvent, error) {
	events, err := s.client.TaskEvent.Query().
		Where(taskevent.TaskIDEQ(taskID)).
		Order(ent.Asc(taskevent.FieldCreatedAt), ent.Asc(taskevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list task events: %w", err)
	}
	return events, nil
}

// ListSince returns up to limit events with id greater than the cursor,
// across all tasks, in id order. A reader polling with the returned max
// id observes every event at least once and in per-task order.
func (s *EventService) ListSince(ctx context.Context, cursor int64, limit int) ([]*ent.TaskEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	events, err := s.client.TaskEvent.Query().
		Where(taskevent.IDGT(int(cursor))).
		Order(ent.Asc(taskevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events since cursor %d: %w", cursor, err)
	}
	return events, nil
}

// Count returns the number of events of a task, optionally filtered by type.
func (s *EventService) Count(ctx context.Context, taskID, eventType string) (int, error) {
	query := s.client.TaskEvent.Query().Where(taskevent.TaskIDEQ(taskID))
	if eventType != "" {
		query = query.Where(taskevent.EventTypeEQ(eventType))
	}
	count, err := query.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count task events: %w", err)
	}
	return count, nil
}

// AgentUsage is one row of the per-agent token/latency aggregate.
type AgentUsage struct {
	Agent      string `json:"agent"`
	Calls      int    `json:"calls"`
	Tokens     int    `json:"tokens"`
	DurationMs int    `json:"duration_ms"`
}

// Aggregate computes per-agent token and latency totals for a task.
// Powers the analytics panel of the dashboard.
func (s *EventService) Aggregate(ctx context.Context, taskID string) ([]AgentUsage, error) {
	var rows []struct {
		Agent      string `json:"agent"`
		Calls      int    `json:"count"`
		Tokens     int    `json:"tokens"`
		DurationMs int    `json:"duration_ms"`
	}
	err := s.client.TaskEvent.Query().
		Where(
			taskevent.TaskIDEQ(taskID),
			taskevent.AgentNEQ(""),
		).
		GroupBy(taskevent.FieldAgent).
		Aggregate(
			ent.Count(),
			ent.As(ent.Sum(taskevent.FieldTokensUsed), "tokens"),
			ent.As(ent.Sum(taskevent.FieldDurationMs), "duration_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate task events: %w", err)
	}

	usage := make([]AgentUsage, 0, len(rows))
	for _, r := range rows {
		usage = append(usage, AgentUsage{
			Agent:      r.Agent,
			Calls:      r.Calls,
			Tokens:     r.Tokens,
			DurationMs: r.DurationMs,
		})
	}
	return usage, nil
}
