package orchestrator

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/ent/taskevent"
	"github.com/coderelay-ai/coderelay/pkg/agent"
	"github.com/coderelay-ai/coderelay/pkg/config"
	"github.com/coderelay-ai/coderelay/pkg/diff"
	"github.com/coderelay-ai/coderelay/pkg/llm"
	"github.com/coderelay-ai/coderelay/pkg/memory"
	"github.com/coderelay-ai/coderelay/pkg/models"
	"github.com/coderelay-ai/coderelay/pkg/services"
	testdb "github.com/coderelay-ai/coderelay/test/database"
)

type stubLLM struct {
	text string
}

func (s *stubLLM) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	return &llm.Response{Text: s.text, Model: req.Model, InputTokens: 100, OutputTokens: 50}, nil
}

const breakdownJSON = `{
	"shouldBreakdown": true,
	"issues": [
		{
			"title": "Add validator",
			"body": "Introduce the password validator.",
			"targetFiles": ["pkg/validate.go"],
			"changeType": "create",
			"estimatedLines": 20
		},
		{
			"title": "Wire validator",
			"body": "Call the validator from the login handler.",
			"targetFiles": ["pkg/login.go"],
			"changeType": "modify",
			"dependencies": ["Add validator"],
			"estimatedLines": 10
		}
	]
}`

type orchHarness struct {
	client *ent.Client
	tasks  *services.TaskService
	events *services.EventService
	mems   *services.MemoryService
	orch   *Orchestrator
}

func newOrchHarness(t *testing.T, agentOutput string) *orchHarness {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	tasks := services.NewTaskService(dbClient.Client)
	events := services.NewEventService(dbClient.Client)
	mems, err := services.NewMemoryService(dbClient.Client)
	require.NoError(t, err)
	compiler := memory.NewCompiler(mems, config.DefaultDefaults(), slog.Default())
	runtime, err := agent.NewRuntime(&stubLLM{text: agentOutput}, config.DefaultLLMConfig(), slog.Default())
	require.NoError(t, err)

	return &orchHarness{
		client: dbClient.Client,
		tasks:  tasks,
		events: events,
		mems:   mems,
		orch: New(dbClient.Client, tasks, events, mems, compiler, runtime,
			config.DefaultOrchestrationConfig(), slog.Default()),
	}
}

func (h *orchHarness) createParent(t *testing.T, maxAttempts int) *ent.Task {
	t.Helper()
	parent, err := h.tasks.CreateTask(context.Background(), models.CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 42,
		IssueTitle:  "Harden login",
		IssueBody:   "Validate passwords before checking them.",
		MaxAttempts: maxAttempts,
	})
	require.NoError(t, err)
	return parent
}

func (h *orchHarness) eventTypes(t *testing.T, taskID string) []string {
	t.Helper()
	rows, err := h.client.TaskEvent.Query().
		Where(taskevent.TaskIDEQ(taskID)).
		Order(ent.Asc(taskevent.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	types := make([]string, 0, len(rows))
	for _, row := range rows {
		types = append(types, row.EventType)
	}
	return types
}

// finishChild marks one child terminal and feeds it back to the parent.
func (h *orchHarness) finishChild(t *testing.T, childID string, status task.Status, childDiff string) {
	t.Helper()
	ctx := context.Background()
	upd := h.client.Task.UpdateOneID(childID).SetStatus(status)
	if childDiff != "" {
		upd.SetCurrentDiff(childDiff)
	}
	require.NoError(t, upd.Exec(ctx))
	child, err := h.client.Task.Get(ctx, childID)
	require.NoError(t, err)
	require.NoError(t, h.orch.OnChildTerminal(ctx, child))
}

func createFileDiff(path, line string) string {
	return "--- /dev/null\n+++ b/" + path + "\n@@ -0,0 +1,1 @@\n+" + line + "\n"
}

func TestRunBreakdown_MaterializesChildren(t *testing.T) {
	h := newOrchHarness(t, breakdownJSON)
	ctx := context.Background()
	parent := h.createParent(t, 3)

	ok, err := h.orch.RunBreakdown(ctx, parent)
	require.NoError(t, err)
	assert.True(t, ok)

	reloaded, err := h.tasks.GetTask(ctx, parent.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsOrchestrated)
	assert.Equal(t, task.WaitingOnChildren, reloaded.WaitingOn)

	children, err := h.tasks.Children(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)

	byTitle := make(map[string]*ent.Task, len(children))
	for _, c := range children {
		byTitle[c.IssueTitle] = c
	}
	first := byTitle["Add validator"]
	second := byTitle["Wire validator"]
	require.NotNil(t, first)
	require.NotNil(t, second)

	// Dependencies are wired by task ID before any child runs.
	assert.Empty(t, first.DependsOn)
	assert.Equal(t, []string{first.ID}, second.DependsOn)
	assert.Equal(t, task.WaitingOnDeps, second.WaitingOn)
	assert.Equal(t, parent.MaxAttempts, first.MaxAttempts)
	assert.Contains(t, second.IssueBody, "Call the validator")

	session, err := h.mems.GetSession(ctx, parent.ID)
	require.NoError(t, err)
	require.NotNil(t, session.Orchestration)
	require.Len(t, session.Orchestration.Subtasks, 2)
	assert.Equal(t, models.SubtaskPending, session.Orchestration.Subtasks[0].Status)
	require.NotNil(t, session.Outputs.Breakdown)
	assert.Len(t, session.Outputs.Breakdown.Issues, 2)

	types := h.eventTypes(t, parent.ID)
	assert.Contains(t, types, models.EventBreakdownProduced)
	assert.Contains(t, types, models.EventChildrenSpawned)
}

func TestRunBreakdown_DeclinedStaysMonolithic(t *testing.T) {
	h := newOrchHarness(t, `{"shouldBreakdown": false}`)
	ctx := context.Background()
	parent := h.createParent(t, 3)

	ok, err := h.orch.RunBreakdown(ctx, parent)
	require.NoError(t, err)
	assert.False(t, ok)

	children, err := h.tasks.Children(ctx, parent.ID)
	require.NoError(t, err)
	assert.Empty(t, children)

	reloaded, err := h.tasks.GetTask(ctx, parent.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsOrchestrated)
}

func TestOnChildTerminal_AggregatesWhenAllComplete(t *testing.T) {
	h := newOrchHarness(t, breakdownJSON)
	ctx := context.Background()
	parent := h.createParent(t, 3)

	ok, err := h.orch.RunBreakdown(ctx, parent)
	require.NoError(t, err)
	require.True(t, ok)

	session, err := h.mems.GetSession(ctx, parent.ID)
	require.NoError(t, err)
	subs := session.Orchestration.Subtasks

	h.finishChild(t, subs[0].ChildTaskID, task.StatusCompleted, createFileDiff("pkg/validate.go", "package validate"))
	h.finishChild(t, subs[1].ChildTaskID, task.StatusCompleted, createFileDiff("pkg/login.go", "package login"))

	reloaded, err := h.tasks.GetTask(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCodingDone, reloaded.Status)
	assert.Equal(t, task.WaitingOnNone, reloaded.WaitingOn)
	require.NotNil(t, reloaded.CurrentDiff)
	assert.Contains(t, *reloaded.CurrentDiff, "pkg/validate.go")
	assert.Contains(t, *reloaded.CurrentDiff, "pkg/login.go")

	session, err = h.mems.GetSession(ctx, parent.ID)
	require.NoError(t, err)
	assert.True(t, session.Orchestration.AllCompleted())
	assert.Equal(t, *reloaded.CurrentDiff, session.Orchestration.AggregatedDiff)

	types := h.eventTypes(t, parent.ID)
	assert.Contains(t, types, models.EventChildCompleted)
	assert.Contains(t, types, models.EventDiffAggregated)
}

func TestOnChildTerminal_RespawnsFailedChild(t *testing.T) {
	h := newOrchHarness(t, breakdownJSON)
	ctx := context.Background()
	parent := h.createParent(t, 3)

	ok, err := h.orch.RunBreakdown(ctx, parent)
	require.NoError(t, err)
	require.True(t, ok)

	session, err := h.mems.GetSession(ctx, parent.ID)
	require.NoError(t, err)
	failedID := session.Orchestration.Subtasks[0].ChildTaskID
	dependentID := session.Orchestration.Subtasks[1].ChildTaskID

	h.finishChild(t, failedID, task.StatusFailed, "")

	session, err = h.mems.GetSession(ctx, parent.ID)
	require.NoError(t, err)
	sub := session.Orchestration.Subtasks[0]
	assert.NotEqual(t, failedID, sub.ChildTaskID)
	assert.Equal(t, models.SubtaskPending, sub.Status)
	assert.Equal(t, 1, sub.Attempts)

	// The dependent sibling now waits on the replacement.
	dependent, err := h.tasks.GetTask(ctx, dependentID)
	require.NoError(t, err)
	assert.Equal(t, []string{sub.ChildTaskID}, dependent.DependsOn)

	children, err := h.tasks.Children(ctx, parent.ID)
	require.NoError(t, err)
	assert.Len(t, children, 3)

	reloaded, err := h.tasks.GetTask(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, task.WaitingOnChildren, reloaded.WaitingOn)
	assert.Contains(t, h.eventTypes(t, parent.ID), models.EventChildFailed)
}

func TestOnChildTerminal_FailsParentAfterBudget(t *testing.T) {
	h := newOrchHarness(t, breakdownJSON)
	ctx := context.Background()
	parent := h.createParent(t, 1)

	ok, err := h.orch.RunBreakdown(ctx, parent)
	require.NoError(t, err)
	require.True(t, ok)

	session, err := h.mems.GetSession(ctx, parent.ID)
	require.NoError(t, err)
	h.finishChild(t, session.Orchestration.Subtasks[0].ChildTaskID, task.StatusFailed, "")

	reloaded, err := h.tasks.GetTask(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, reloaded.Status)
	require.NotNil(t, reloaded.FailureKind)
	assert.Equal(t, "orchestration", *reloaded.FailureKind)
	require.NotNil(t, reloaded.LastError)
	assert.Contains(t, *reloaded.LastError, "failed after 1 attempts")

	session, err = h.mems.GetSession(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubtaskFailed, session.Orchestration.Subtasks[0].Status)
	assert.Contains(t, h.eventTypes(t, parent.ID), models.EventTaskFailed)
}

func TestOnChildTerminal_IgnoresParentlessAndStaleChildren(t *testing.T) {
	h := newOrchHarness(t, breakdownJSON)
	ctx := context.Background()

	// A standalone task never reaches orchestration.
	standalone := h.createParent(t, 3)
	require.NoError(t, h.client.Task.UpdateOneID(standalone.ID).SetStatus(task.StatusCompleted).Exec(ctx))
	loaded, err := h.client.Task.Get(ctx, standalone.ID)
	require.NoError(t, err)
	assert.NoError(t, h.orch.OnChildTerminal(ctx, loaded))

	// A respawned-over child is no longer tracked by the parent.
	parent := h.createParent(t, 3)
	ok, err := h.orch.RunBreakdown(ctx, parent)
	require.NoError(t, err)
	require.True(t, ok)

	session, err := h.mems.GetSession(ctx, parent.ID)
	require.NoError(t, err)
	staleID := session.Orchestration.Subtasks[0].ChildTaskID
	h.finishChild(t, staleID, task.StatusFailed, "")

	// The failed child resolves again; its replacement owns the subtask.
	stale, err := h.client.Task.Get(ctx, staleID)
	require.NoError(t, err)
	assert.NoError(t, h.orch.OnChildTerminal(ctx, stale))
}

func TestConflictParkingAndResolution(t *testing.T) {
	h := newOrchHarness(t, breakdownJSON)
	ctx := context.Background()
	parent := h.createParent(t, 3)

	ok, err := h.orch.RunBreakdown(ctx, parent)
	require.NoError(t, err)
	require.True(t, ok)

	// Both children rewrite the same line; the manual policy parks the
	// parent instead of picking a winner.
	overlapping := func(replacement string) string {
		return "--- a/pkg/login.go\n+++ b/pkg/login.go\n@@ -1,1 +1,1 @@\n-package login\n+" + replacement + "\n"
	}
	session, err := h.mems.GetSession(ctx, parent.ID)
	require.NoError(t, err)
	subs := session.Orchestration.Subtasks
	h.finishChild(t, subs[0].ChildTaskID, task.StatusCompleted, overlapping("package login // validator"))
	h.finishChild(t, subs[1].ChildTaskID, task.StatusCompleted, overlapping("package login // wired"))

	parked, err := h.tasks.GetTask(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusWaitingHuman, parked.Status)
	assert.Equal(t, task.WaitingOnHuman, parked.WaitingOn)
	assert.Contains(t, h.eventTypes(t, parent.ID), models.EventConflictReported)

	// An operator-supplied diff resumes the pipeline.
	resolved := overlapping("package login // resolved")
	require.NoError(t, h.orch.ResolveConflict(ctx, parent.ID, resolved))

	resumed, err := h.tasks.GetTask(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCodingDone, resumed.Status)
	assert.Equal(t, task.WaitingOnNone, resumed.WaitingOn)
	require.NotNil(t, resumed.CurrentDiff)
	assert.Equal(t, resolved, *resumed.CurrentDiff)
	assert.Nil(t, resumed.LastError)
	assert.Contains(t, h.eventTypes(t, parent.ID), models.EventConflictResolved)
}

func TestResolveConflict_Errors(t *testing.T) {
	h := newOrchHarness(t, breakdownJSON)
	ctx := context.Background()
	parent := h.createParent(t, 3)

	err := h.orch.ResolveConflict(ctx, parent.ID, "not a diff")
	assert.ErrorIs(t, err, diff.ErrMalformedDiff)

	// A parent that is not parked cannot be resolved.
	err = h.orch.ResolveConflict(ctx, parent.ID, createFileDiff("pkg/x.go", "package x"))
	assert.ErrorIs(t, err, ErrNotResolvable)

	err = h.orch.ResolveConflict(ctx, "missing", createFileDiff("pkg/x.go", "package x"))
	assert.ErrorIs(t, err, services.ErrNotFound)
}
