// Package slack delivers pipeline notifications to a Slack channel.
// Notifications are best-effort: delivery failures are logged and never
// block a task transition.
package slack

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// JobStartedInput contains data for a job start notification. The posted
// message anchors the Slack thread that member notifications reply to.
type JobStartedInput struct {
	JobID     string
	Repo      string
	TaskCount int
}

// TaskFinishedInput contains data for a terminal task notification.
type TaskFinishedInput struct {
	TaskID      string
	JobID       string // empty for standalone tasks
	Repo        string
	IssueNumber int
	Status      string // completed, failed, waiting_human
	PRURL       string
	LastError   string
}

// JobFinishedInput contains data for a terminal job notification.
type JobFinishedInput struct {
	JobID     string
	Repo      string
	Status    string // completed, partial, failed, cancelled
	Completed int
	Failed    int
	Total     int
}

// Service handles Slack notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifyJobStarted posts the job announcement message. Member task and
// job terminal notifications thread under it via fingerprint lookup.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyJobStarted(ctx context.Context, input JobStartedInput) {
	if s == nil {
		return
	}

	blocks := BuildJobStartedMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, "", 5*time.Second); err != nil {
		s.logger.Error("Failed to send Slack job start notification",
			"job_id", input.JobID,
			"error", err)
	}
}

// NotifyTaskFinished sends a terminal task notification. Tasks that
// belong to a job reply in the job's thread; standalone tasks post
// top-level. Fail-open: errors are logged, never returned.
func (s *Service) NotifyTaskFinished(ctx context.Context, input TaskFinishedInput) {
	if s == nil {
		return
	}

	threadTS := s.resolveJobThread(ctx, input.JobID, input.TaskID)

	blocks := BuildTaskFinishedMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, threadTS, 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack task notification",
			"task_id", input.TaskID,
			"status", input.Status,
			"error", err)
	}
}

// NotifyJobFinished sends a terminal job notification in the job's
// thread. Fail-open: errors are logged, never returned.
func (s *Service) NotifyJobFinished(ctx context.Context, input JobFinishedInput) {
	if s == nil {
		return
	}

	threadTS := s.resolveJobThread(ctx, input.JobID, "")

	blocks := BuildJobFinishedMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, threadTS, 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack job notification",
			"job_id", input.JobID,
			"status", input.Status,
			"error", err)
	}
}

// resolveJobThread finds the announcement message for a job. A lookup
// miss degrades to a top-level message rather than dropping the
// notification.
func (s *Service) resolveJobThread(ctx context.Context, jobID, taskID string) string {
	if jobID == "" {
		return ""
	}
	threadTS, err := s.client.FindMessageByFingerprint(ctx, jobFingerprint(jobID))
	if err != nil {
		s.logger.Warn("Failed to find Slack thread for job",
			"job_id", jobID,
			"task_id", taskID,
			"error", err)
	}
	return threadTS
}
