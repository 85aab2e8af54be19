// Package orchestrator breaks complex tasks into isolated child tasks,
// tracks their progress on the parent session, and aggregates their
// diffs when all children complete. Children never see parent or
// sibling state; the only artifact that crosses the boundary is a
// child's final diff.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/sessionmemory"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/agent"
	"github.com/coderelay-ai/coderelay/pkg/config"
	"github.com/coderelay-ai/coderelay/pkg/memory"
	"github.com/coderelay-ai/coderelay/pkg/models"
	"github.com/coderelay-ai/coderelay/pkg/services"
)

// Orchestrator coordinates parent/child task trees.
type Orchestrator struct {
	db       *ent.Client
	tasks    *services.TaskService
	events   *services.EventService
	memories *services.MemoryService
	compiler *memory.Compiler
	runtime  *agent.Runtime
	cfg      *config.OrchestrationConfig
	logger   *slog.Logger
}

// New creates an orchestrator.
func New(
	db *ent.Client,
	tasks *services.TaskService,
	events *services.EventService,
	memories *services.MemoryService,
	compiler *memory.Compiler,
	runtime *agent.Runtime,
	cfg *config.OrchestrationConfig,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		db:       db,
		tasks:    tasks,
		events:   events,
		memories: memories,
		compiler: compiler,
		runtime:  runtime,
		cfg:      cfg,
		logger:   logger.With("component", "orchestrator"),
	}
}

// RunBreakdown invokes the breakdown agent on a planned parent and, if
// the decomposition validates, materializes child tasks atomically with
// the parent's orchestration state. Returns false when the parent
// should proceed monolithically.
func (o *Orchestrator) RunBreakdown(ctx context.Context, parent *ent.Task) (bool, error) {
	cc, err := o.compiler.Compile(ctx, memory.CompileRequest{
		Task:      parent,
		AgentType: models.AgentBreakdown,
	})
	if err != nil {
		return false, err
	}

	out, usage, err := agent.Run[models.BreakdownOutput](ctx, o.runtime, models.AgentBreakdown, cc)
	if err != nil {
		return false, fmt.Errorf("breakdown agent: %w", err)
	}

	if err := validateBreakdown(out, o.cfg); err != nil {
		if errors.Is(err, ErrNoDecomposition) {
			o.logger.Info("Breakdown declined, staying monolithic", "task_id", parent.ID)
			return false, nil
		}
		return false, err
	}

	return true, o.materializeChildren(ctx, parent, out, usage)
}

// materializeChildren creates one child task per subtask and flips the
// parent to waiting on them, all in one transaction.
func (o *Orchestrator) materializeChildren(ctx context.Context, parent *ent.Task, out *models.BreakdownOutput, usage *agent.Usage) error {
	// Titles become stable subtask IDs through pre-generated task IDs so
	// dependencies can be wired before any child exists.
	childIDs := make(map[string]string, len(out.Issues))
	for _, issue := range out.Issues {
		childIDs[issue.Title] = uuid.New().String()
	}

	tx, err := o.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	orchState := &models.OrchestrationState{}
	for i, issue := range out.Issues {
		deps := mergedDependencies(issue, out.DependencyGraph)
		depTaskIDs := make([]string, 0, len(deps))
		for _, dep := range deps {
			depTaskIDs = append(depTaskIDs, childIDs[dep])
		}

		index := i
		child, err := o.tasks.CreateTaskTx(ctx, tx, models.CreateTaskRequest{
			TaskID:           childIDs[issue.Title],
			Repo:             parent.Repo,
			IssueNumber:      parent.IssueNumber,
			IssueTitle:       issue.Title,
			IssueBody:        subtaskBody(issue),
			MaxAttempts:      parent.MaxAttempts,
			ParentTaskID:     parent.ID,
			SubtaskIndex:     &index,
			DependsOn:        depTaskIDs,
			TargetFiles:      issue.TargetFiles,
			DefinitionOfDone: issue.AcceptanceCriteria,
		})
		if err != nil {
			return fmt.Errorf("failed to create child for %q: %w", issue.Title, err)
		}

		orchState.Subtasks = append(orchState.Subtasks, models.SubtaskState{
			ID:          issue.Title,
			Title:       issue.Title,
			TargetFiles: issue.TargetFiles,
			DependsOn:   deps,
			Status:      models.SubtaskPending,
			ChildTaskID: child.ID,
		})
	}

	n, err := tx.Task.Update().
		Where(task.IDEQ(parent.ID), task.VersionEQ(parent.Version)).
		SetIsOrchestrated(true).
		SetWaitingOn(task.WaitingOnChildren).
		SetVersion(parent.Version + 1).
		SetUpdatedAt(time.Now().UTC()).
		ClearPodID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update parent task: %w", err)
	}
	if n == 0 {
		return services.ErrConcurrentModification
	}

	session, err := tx.SessionMemory.Query().
		Where(sessionmemory.TaskIDEQ(parent.ID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load parent session: %w", err)
	}
	outputs := session.Outputs
	outputs.Breakdown = out
	if _, err := tx.SessionMemory.UpdateOne(session).
		SetOrchestration(orchState).
		SetOutputs(outputs).
		SetPhase("orchestrating").
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to update parent session: %w", err)
	}

	tokens := usage.TotalTokens()
	durationMs := int(usage.Latency.Milliseconds())
	if _, err := o.events.AppendTx(ctx, tx, models.AppendEventRequest{
		TaskID:     parent.ID,
		EventType:  models.EventBreakdownProduced,
		Agent:      models.AgentBreakdown,
		TokensUsed: &tokens,
		DurationMs: &durationMs,
		Metadata: map[string]interface{}{
			"model":    usage.Model,
			"subtasks": len(out.Issues),
		},
	}); err != nil {
		return err
	}
	if _, err := o.events.AppendTx(ctx, tx, models.AppendEventRequest{
		TaskID:    parent.ID,
		EventType: models.EventChildrenSpawned,
		Metadata: map[string]interface{}{
			"children": childTaskIDs(orchState),
		},
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit breakdown: %w", err)
	}
	o.logger.Info("Children materialized",
		"parent_task_id", parent.ID,
		"children", len(out.Issues))
	return nil
}

// subtaskBody renders the child's issue body from the subtask issue.
func subtaskBody(issue models.SubtaskIssue) string {
	var b strings.Builder
	b.WriteString(issue.Body)
	if len(issue.AcceptanceCriteria) > 0 {
		b.WriteString("\n\nAcceptance criteria:\n")
		for _, item := range issue.AcceptanceCriteria {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	return b.String()
}

func childTaskIDs(state *models.OrchestrationState) []string {
	ids := make([]string, 0, len(state.Subtasks))
	for _, st := range state.Subtasks {
		ids = append(ids, st.ChildTaskID)
	}
	return ids
}
