package services

import (
	"context"
	"fmt"
	"time"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/job"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/models"
	"github.com/google/uuid"
)

// JobTerminalHook observes jobs entering a terminal status. Hooks run
// after the status is committed and must not block.
type JobTerminalHook func(ctx context.Context, j *ent.Job, summary models.JobSummary)

// JobService groups tasks under jobs and derives job status from member
// task statuses. Job status is never set independently: it is a pure
// function of the members, recomputed on any member transition.
type JobService struct {
	client     *ent.Client
	tasks      *TaskService
	onTerminal JobTerminalHook
}

// NewJobService creates a new JobService
func NewJobService(client *ent.Client, tasks *TaskService) *JobService {
	return &JobService{client: client, tasks: tasks}
}

// SetOnTerminal installs the terminal-status hook. Nil disables it.
func (s *JobService) SetOnTerminal(hook JobTerminalHook) {
	s.onTerminal = hook
}

func terminalJobStatus(status job.Status) bool {
	switch status {
	case job.StatusCompleted, job.StatusFailed, job.StatusPartial, job.StatusCancelled:
		return true
	}
	return false
}

// CreateJob creates a job and one task per issue number. The job starts
// pending; tasks are admitted to the scheduler by Run.
func (s *JobService) CreateJob(httpCtx context.Context, req models.CreateJobRequest, maxAttempts int) (*ent.Job, error) {
	if req.Repo == "" {
		return nil, NewValidationError("repo", "required")
	}
	if len(req.IssueNumbers) == 0 {
		return nil, NewValidationError("issue_numbers", "at least one issue is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	jobID := req.JobID
	if jobID == "" {
		jobID = uuid.New().String()
	}

	builder := tx.Job.Create().
		SetID(jobID).
		SetRepo(req.Repo).
		SetStatus(job.StatusPending)
	if req.RequestedBy != "" {
		builder.SetRequestedBy(req.RequestedBy)
	}

	j, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	for _, issue := range req.IssueNumbers {
		if _, err := s.tasks.createTaskTx(ctx, tx, models.CreateTaskRequest{
			JobID:       j.ID,
			Repo:        req.Repo,
			IssueNumber: issue,
			MaxAttempts: maxAttempts,
		}); err != nil {
			return nil, fmt.Errorf("failed to create task for issue #%d: %w", issue, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return j, nil
}

// RunJob admits a pending job's member tasks to the scheduler by
// flipping the job to running. Workers only claim tasks whose job is
// running, so until Run the members sit inert.
func (s *JobService) RunJob(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status != job.StatusPending {
		return nil, NewValidationError("status", fmt.Sprintf("job is %s; only pending jobs can be run", j.Status))
	}

	n, err := s.client.Job.Update().
		Where(job.IDEQ(jobID), job.StatusEQ(job.StatusPending)).
		SetStatus(job.StatusRunning).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run job: %w", err)
	}
	if n == 0 {
		return nil, ErrConcurrentModification
	}
	return s.GetJob(ctx, jobID)
}

// CancelJob flags every non-terminal member for cooperative cancel and
// marks the job cancelled. Workers observe the flag at the next step
// boundary and fail the flagged tasks.
func (s *JobService) CancelJob(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	switch j.Status {
	case job.StatusCompleted, job.StatusFailed, job.StatusPartial, job.StatusCancelled:
		return nil, ErrNotCancellable
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.Task.Update().
		Where(
			task.JobIDEQ(jobID),
			task.StatusNotIn(task.StatusCompleted, task.StatusFailed),
			task.DeletedAtIsNil(),
		).
		SetCancelRequested(true).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to flag member tasks: %w", err)
	}

	if err := tx.Job.UpdateOneID(jobID).
		SetStatus(job.StatusCancelled).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to cancel job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	cancelled, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	s.fireTerminalHook(ctx, cancelled)
	return cancelled, nil
}

// GetJob retrieves a job by ID.
func (s *JobService) GetJob(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Query().
		Where(job.IDEQ(jobID), job.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// ListJobs returns jobs newest-first.
func (s *JobService) ListJobs(ctx context.Context) ([]*ent.Job, error) {
	jobs, err := s.client.Job.Query().
		Where(job.DeletedAtIsNil()).
		Order(ent.Desc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// Summary computes the derived roll-up of a job's member tasks.
func (s *JobService) Summary(ctx context.Context, jobID string) (*models.JobSummary, error) {
	tasks, err := s.memberTasks(ctx, jobID)
	if err != nil {
		return nil, err
	}
	summary := summarize(tasks)
	return &summary, nil
}

// RecomputeStatus derives and persists the job status from its member
// tasks. Called on any member transition; recomputing is idempotent.
func (s *JobService) RecomputeStatus(ctx context.Context, jobID string) (job.Status, error) {
	j, err := s.GetJob(ctx, jobID)
	if err != nil {
		return "", err
	}
	// Cancelled is sticky: member transitions after cancel (flagged tasks
	// draining to failed) must not resurrect the job.
	if j.Status == job.StatusCancelled {
		return job.StatusCancelled, nil
	}

	tasks, err := s.memberTasks(ctx, jobID)
	if err != nil {
		return "", err
	}

	status := DeriveJobStatus(tasks)
	if err := s.client.Job.UpdateOneID(jobID).
		SetStatus(status).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to update job status: %w", err)
	}

	// The hook fires exactly once per terminal entry: recomputes after
	// the job is already terminal return on the sticky-cancel path above
	// or derive the same status without crossing the boundary again.
	if terminalJobStatus(status) && !terminalJobStatus(j.Status) {
		if updated, err := s.GetJob(ctx, jobID); err == nil {
			s.fireTerminalHook(ctx, updated)
		}
	}
	return status, nil
}

func (s *JobService) fireTerminalHook(ctx context.Context, j *ent.Job) {
	if s.onTerminal == nil {
		return
	}
	tasks, err := s.memberTasks(ctx, j.ID)
	if err != nil {
		return
	}
	s.onTerminal(ctx, j, summarize(tasks))
}

func (s *JobService) memberTasks(ctx context.Context, jobID string) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(task.JobIDEQ(jobID), task.DeletedAtIsNil()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query member tasks: %w", err)
	}
	return tasks, nil
}

// DeriveJobStatus is the pure status function:
// all COMPLETED → completed; all terminal with ≥1 FAILED → failed if
// 0 COMPLETED else partial; any non-terminal started → running;
// none scheduled → pending.
func DeriveJobStatus(tasks []*ent.Task) job.Status {
	if len(tasks) == 0 {
		return job.StatusPending
	}

	completed, failed, started := 0, 0, 0
	for _, t := range tasks {
		switch t.Status {
		case task.StatusCompleted:
			completed++
		case task.StatusFailed:
			failed++
		case task.StatusNew:
		default:
			started++
		}
	}

	allTerminal := completed+failed == len(tasks)
	switch {
	case allTerminal && failed == 0:
		return job.StatusCompleted
	case allTerminal && completed == 0:
		return job.StatusFailed
	case allTerminal:
		return job.StatusPartial
	case started > 0 || completed > 0 || failed > 0:
		return job.StatusRunning
	default:
		return job.StatusPending
	}
}

// summarize rolls member tasks up into a JobSummary.
func summarize(tasks []*ent.Task) models.JobSummary {
	summary := models.JobSummary{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case task.StatusCompleted:
			summary.Completed++
		case task.StatusFailed:
			summary.Failed++
		case task.StatusNew:
		default:
			summary.InProgress++
		}
		if t.PrURL != nil && *t.PrURL != "" {
			summary.PRs = append(summary.PRs, *t.PrURL)
		}
	}
	return summary
}
