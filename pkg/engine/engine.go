// Package engine drives the task state machine. A worker iteration is
// one call to Step: compile context, invoke an agent, validate its
// output, and apply a single state transition transactionally.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/agent"
	"github.com/coderelay-ai/coderelay/pkg/config"
	"github.com/coderelay-ai/coderelay/pkg/githost"
	"github.com/coderelay-ai/coderelay/pkg/memory"
	"github.com/coderelay-ai/coderelay/pkg/models"
	"github.com/coderelay-ai/coderelay/pkg/services"
)

// Orchestrator is the parent/child coordination surface the engine
// calls into. Implemented by pkg/orchestrator.
type Orchestrator interface {
	// RunBreakdown decomposes a planned parent into child tasks.
	// Returns false when no usable decomposition exists and the task
	// should proceed monolithically.
	RunBreakdown(ctx context.Context, parent *ent.Task) (bool, error)

	// OnChildTerminal folds a child's terminal state into the parent.
	OnChildTerminal(ctx context.Context, child *ent.Task) error
}

// Notifier receives post-commit change notifications for live delivery.
// Implemented by pkg/events; nil disables notification.
type Notifier interface {
	TaskTransitioned(ctx context.Context, t *ent.Task, from task.Status)
	EventAppended(ctx context.Context, evt *ent.TaskEvent)
}

// MultiNotifier fans callbacks out to several notifiers in order.
type MultiNotifier []Notifier

func (m MultiNotifier) TaskTransitioned(ctx context.Context, t *ent.Task, from task.Status) {
	for _, n := range m {
		n.TaskTransitioned(ctx, t, from)
	}
}

func (m MultiNotifier) EventAppended(ctx context.Context, evt *ent.TaskEvent) {
	for _, n := range m {
		n.EventAppended(ctx, evt)
	}
}

// StepResult describes the outcome of one worker iteration.
type StepResult struct {
	Task *ent.Task
	From task.Status
	To   task.Status

	// Suspended means the task now waits on an external signal and the
	// worker must release it.
	Suspended bool

	// Terminal means the task reached COMPLETED or FAILED.
	Terminal bool
}

// Engine executes task pipeline steps.
type Engine struct {
	db       *ent.Client
	tasks    *services.TaskService
	jobs     *services.JobService
	events   *services.EventService
	memories *services.MemoryService
	compiler *memory.Compiler
	runtime  *agent.Runtime
	host     githost.Client
	orch     Orchestrator
	notifier Notifier
	cfg      *config.Config
	logger   *slog.Logger
}

// NewEngine creates the engine. orch and notifier may be nil; a nil
// orchestrator disables breakdown even when configuration enables it.
func NewEngine(
	db *ent.Client,
	tasks *services.TaskService,
	jobs *services.JobService,
	events *services.EventService,
	memories *services.MemoryService,
	compiler *memory.Compiler,
	runtime *agent.Runtime,
	host githost.Client,
	cfg *config.Config,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		db:       db,
		tasks:    tasks,
		jobs:     jobs,
		events:   events,
		memories: memories,
		compiler: compiler,
		runtime:  runtime,
		host:     host,
		cfg:      cfg,
		logger:   logger.With("component", "engine"),
	}
}

// SetOrchestrator wires the orchestrator after construction; the
// orchestrator itself needs the engine's services to exist first.
func (e *Engine) SetOrchestrator(orch Orchestrator) {
	e.orch = orch
}

// SetNotifier wires the live-delivery notifier.
func (e *Engine) SetNotifier(n Notifier) {
	e.notifier = n
}

// Step advances a task by one state edge. It re-reads the task first so
// a stale claim observes cancellation and concurrent transitions.
func (e *Engine) Step(ctx context.Context, taskID string) (*StepResult, error) {
	t, err := e.tasks.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	from := t.Status

	if Terminal(t.Status) {
		return &StepResult{Task: t, From: from, To: t.Status, Terminal: true}, nil
	}
	if t.CancelRequested {
		return e.fail(ctx, t, &StepError{Kind: FailureCancelled, Detail: "cancel requested"})
	}
	if t.StartedAt != nil && e.cfg.Defaults.TaskWallClockBudget > 0 &&
		time.Since(*t.StartedAt) > e.cfg.Defaults.TaskWallClockBudget {
		return e.fail(ctx, t, &StepError{Kind: FailureTimeout, Detail: "task wall-clock budget exceeded"})
	}
	if t.WaitingOn != task.WaitingOnNone {
		return &StepResult{Task: t, From: from, To: t.Status, Suspended: true}, nil
	}

	switch t.Status {
	case task.StatusNew:
		return e.stepStart(ctx, t)
	case task.StatusPlanning:
		return e.stepPlan(ctx, t)
	case task.StatusPlanningDone:
		return e.stepAfterPlanning(ctx, t)
	case task.StatusCoding:
		return e.stepCode(ctx, t, models.AgentCoder)
	case task.StatusFixing:
		return e.stepCode(ctx, t, models.AgentFixer)
	case task.StatusCodingDone:
		return e.stepValidateAndApply(ctx, t)
	case task.StatusTestsPassed:
		return e.simpleStep(ctx, t, task.StatusReviewing)
	case task.StatusTestsFailed, task.StatusReviewRejected:
		return e.stepRetry(ctx, t)
	case task.StatusReviewing:
		return e.stepReview(ctx, t)
	case task.StatusReviewApproved:
		return e.stepOpenPR(ctx, t)
	case task.StatusPrCreated:
		return e.stepAwaitMerge(ctx, t)
	case task.StatusTesting, task.StatusWaitingHuman:
		// Reached only when waiting_on was cleared out of band; treat as
		// suspended until the matching signal arrives.
		return &StepResult{Task: t, From: from, To: t.Status, Suspended: true}, nil
	}
	return nil, fmt.Errorf("engine: no step for status %s", t.Status)
}

// simpleStep applies an agent-free edge.
func (e *Engine) simpleStep(ctx context.Context, t *ent.Task, to task.Status) (*StepResult, error) {
	updated, err := e.applyTransition(ctx, t, transition{to: to})
	if err != nil {
		return nil, err
	}
	return e.result(t.Status, updated), nil
}

// fail moves a task to FAILED with its failure classification, then
// propagates to the parent when the task is a child.
func (e *Engine) fail(ctx context.Context, t *ent.Task, stepErr *StepError) (*StepResult, error) {
	eventType := models.EventTaskFailed
	if stepErr.Kind == FailureCancelled {
		eventType = models.EventTaskCancelled
	}
	updated, err := e.applyTransition(ctx, t, transition{
		to: task.StatusFailed,
		taskMutate: func(u *ent.TaskUpdate) {
			u.SetLastError(stepErr.Error()).
				SetFailureKind(string(stepErr.Kind)).
				ClearPodID()
		},
		sessionMutate: func(u *ent.SessionMemoryUpdate) {
			u.SetPhase("failed")
		},
		events: []models.AppendEventRequest{{
			EventType: eventType,
			Metadata: map[string]interface{}{
				"kind":   string(stepErr.Kind),
				"detail": stepErr.Detail,
			},
		}},
	})
	if err != nil {
		return nil, err
	}

	e.notifyParent(ctx, updated)
	return e.result(t.Status, updated), nil
}

// stepFailure routes a failed stage: terminal kinds fail the task,
// retryable kinds consume an attempt and re-run the stage.
func (e *Engine) stepFailure(ctx context.Context, t *ent.Task, stepErr *StepError) (*StepResult, error) {
	e.logger.Warn("Step failed",
		"task_id", t.ID,
		"status", t.Status,
		"kind", stepErr.Kind,
		"detail", stepErr.Detail)

	if !stepErr.Retryable() || t.AttemptCount >= t.MaxAttempts {
		return e.fail(ctx, t, stepErr)
	}
	updated, err := e.recordStepFailure(ctx, t, stepErr)
	if err != nil {
		return nil, err
	}
	return &StepResult{Task: updated, From: t.Status, To: updated.Status}, nil
}

// notifyParent forwards a child's terminal state to the orchestrator.
func (e *Engine) notifyParent(ctx context.Context, t *ent.Task) {
	if t.ParentTaskID == nil || *t.ParentTaskID == "" || e.orch == nil {
		return
	}
	if err := e.orch.OnChildTerminal(ctx, t); err != nil {
		e.logger.Error("Failed to propagate child terminal state",
			"task_id", t.ID,
			"parent_task_id", *t.ParentTaskID,
			"error", err)
	}
}

func (e *Engine) result(from task.Status, t *ent.Task) *StepResult {
	return &StepResult{
		Task:      t,
		From:      from,
		To:        t.Status,
		Suspended: t.WaitingOn != task.WaitingOnNone,
		Terminal:  Terminal(t.Status),
	}
}

// agentContext derives the per-invocation timeout context.
func (e *Engine) agentContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.cfg.Defaults.AgentTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.cfg.Defaults.AgentTimeout)
}
