package services

import (
	"context"
	"fmt"
	"time"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/sessionmemory"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/models"
	"github.com/google/uuid"
)

// TaskService manages task rows and their optimistic-lock discipline.
// Status transitions themselves live in the engine; this service owns
// creation, reads, and the version-guarded updates the engine builds on.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTask creates a task row together with its session memory.
func (s *TaskService) CreateTask(httpCtx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.Repo == "" {
		return nil, NewValidationError("repo", "required")
	}
	if req.IssueNumber <= 0 {
		return nil, NewValidationError("issue_number", "must be positive")
	}
	if req.MaxAttempts <= 0 {
		return nil, NewValidationError("max_attempts", "must be positive")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	t, err := s.createTaskTx(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return t, nil
}

// CreateTaskTx creates a task within an existing transaction. The
// orchestrator uses this to materialize children atomically with the
// parent's orchestration state update.
func (s *TaskService) CreateTaskTx(ctx context.Context, tx *ent.Tx, req models.CreateTaskRequest) (*ent.Task, error) {
	return s.createTaskTx(ctx, tx, req)
}

func (s *TaskService) createTaskTx(ctx context.Context, tx *ent.Tx, req models.CreateTaskRequest) (*ent.Task, error) {
	taskID := req.TaskID
	if taskID == "" {
		taskID = uuid.New().String()
	}

	builder := tx.Task.Create().
		SetID(taskID).
		SetRepo(req.Repo).
		SetIssueNumber(req.IssueNumber).
		SetStatus(task.StatusNew).
		SetMaxAttempts(req.MaxAttempts)

	if req.JobID != "" {
		builder.SetJobID(req.JobID)
	}
	if req.IssueTitle != "" {
		builder.SetIssueTitle(req.IssueTitle)
	}
	if req.IssueBody != "" {
		builder.SetIssueBody(req.IssueBody)
	}
	if req.ParentTaskID != "" {
		builder.SetParentTaskID(req.ParentTaskID)
	}
	if req.SubtaskIndex != nil {
		builder.SetSubtaskIndex(*req.SubtaskIndex)
	}
	if len(req.DependsOn) > 0 {
		builder.SetDependsOn(req.DependsOn)
		// Children with unmet dependencies wait for their siblings.
		builder.SetWaitingOn(task.WaitingOnDeps)
	}
	if len(req.TargetFiles) > 0 {
		builder.SetTargetFiles(req.TargetFiles)
	}
	if len(req.DefinitionOfDone) > 0 {
		builder.SetDefinitionOfDone(req.DefinitionOfDone)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	// One session per task, created with it. The engine fills it in as
	// the pipeline advances.
	sessionBuilder := tx.SessionMemory.Create().
		SetID(uuid.New().String()).
		SetTaskID(t.ID).
		SetContext(models.SessionContext{
			IssueNumber:      req.IssueNumber,
			IssueTitle:       req.IssueTitle,
			IssueBody:        req.IssueBody,
			TargetFiles:      req.TargetFiles,
			DefinitionOfDone: req.DefinitionOfDone,
		})
	if req.ParentTaskID != "" {
		parentSession, err := tx.SessionMemory.Query().
			Where(sessionmemory.TaskIDEQ(req.ParentTaskID)).
			Only(ctx)
		if err == nil {
			sessionBuilder.SetParentSessionID(parentSession.ID)
		}
	}
	if _, err := sessionBuilder.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create session memory: %w", err)
	}

	if _, err := tx.TaskEvent.Create().
		SetTaskID(t.ID).
		SetEventType(models.EventTaskCreated).
		SetCreatedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to record task creation event: %w", err)
	}

	return t, nil
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(task.IDEQ(taskID), task.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListTasks returns tasks, optionally filtered by job and status, in
// creation order.
func (s *TaskService) ListTasks(ctx context.Context, jobID string, statuses []task.Status) ([]*ent.Task, error) {
	query := s.client.Task.Query().
		Where(task.DeletedAtIsNil()).
		Order(ent.Asc(task.FieldCreatedAt))
	if jobID != "" {
		query = query.Where(task.JobIDEQ(jobID))
	}
	if len(statuses) > 0 {
		query = query.Where(task.StatusIn(statuses...))
	}
	tasks, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Children returns the child tasks of a parent in subtask order.
func (s *TaskService) Children(ctx context.Context, parentTaskID string) ([]*ent.Task, error) {
	children, err := s.client.Task.Query().
		Where(task.ParentTaskIDEQ(parentTaskID), task.DeletedAtIsNil()).
		Order(ent.Asc(task.FieldSubtaskIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list child tasks: %w", err)
	}
	return children, nil
}

// RequestCancel flags a task for cooperative cancellation. The worker
// observes the flag at the next iteration boundary.
func (s *TaskService) RequestCancel(ctx context.Context, taskID string) error {
	t, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	if isTerminalStatus(t.Status) {
		return ErrNotCancellable
	}
	if err := s.client.Task.UpdateOneID(taskID).
		SetCancelRequested(true).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to request cancel: %w", err)
	}
	return nil
}

// isTerminalStatus reports whether a status ends the pipeline.
func isTerminalStatus(st task.Status) bool {
	switch st {
	case task.StatusCompleted, task.StatusFailed:
		return true
	}
	return false
}
