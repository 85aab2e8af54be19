package engine

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/ent/taskevent"
	"github.com/coderelay-ai/coderelay/pkg/config"
	"github.com/coderelay-ai/coderelay/pkg/githost"
	"github.com/coderelay-ai/coderelay/pkg/models"
	"github.com/coderelay-ai/coderelay/pkg/services"
	testdb "github.com/coderelay-ai/coderelay/test/database"
)

type signalHarness struct {
	db     *ent.Client
	engine *Engine
	tasks  *services.TaskService
	mems   *services.MemoryService
}

func newSignalHarness(t *testing.T) *signalHarness {
	t.Helper()
	dbClient := testdb.NewTestClient(t)

	cfg := &config.Config{
		Defaults:      config.DefaultDefaults(),
		Queue:         config.DefaultQueueConfig(),
		Orchestration: config.DefaultOrchestrationConfig(),
	}

	tasks := services.NewTaskService(dbClient.Client)
	jobs := services.NewJobService(dbClient.Client, tasks)
	events := services.NewEventService(dbClient.Client)
	mems, err := services.NewMemoryService(dbClient.Client)
	require.NoError(t, err)

	eng := NewEngine(
		dbClient.Client, tasks, jobs, events, mems,
		nil, nil, githost.NewInMemory(), cfg, slog.Default())

	return &signalHarness{db: dbClient.Client, engine: eng, tasks: tasks, mems: mems}
}

func (h *signalHarness) createSuspendedTask(t *testing.T, status task.Status, waiting task.WaitingOn) *ent.Task {
	t.Helper()
	ctx := context.Background()
	created, err := h.tasks.CreateTask(ctx, models.CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 7,
		MaxAttempts: 3,
	})
	require.NoError(t, err)

	err = h.db.Task.UpdateOneID(created.ID).
		SetStatus(status).
		SetWaitingOn(waiting).
		SetBranchName("coderelay/issue-7").
		SetPrNumber(88).
		Exec(ctx)
	require.NoError(t, err)

	updated, err := h.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	return updated
}

func (h *signalHarness) eventTypes(t *testing.T, taskID string) []string {
	t.Helper()
	rows, err := h.db.TaskEvent.Query().
		Where(taskevent.TaskIDEQ(taskID)).
		Order(ent.Asc(taskevent.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	types := make([]string, len(rows))
	for i, r := range rows {
		types[i] = r.EventType
	}
	return types
}

func TestOnCIResult_Success(t *testing.T) {
	h := newSignalHarness(t)
	ctx := context.Background()
	created := h.createSuspendedTask(t, task.StatusTesting, task.WaitingOnCi)

	require.NoError(t, h.engine.OnCIResult(ctx, created.ID, true, ""))

	got, err := h.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusTestsPassed, got.Status)
	assert.Equal(t, task.WaitingOnNone, got.WaitingOn)

	session, err := h.mems.GetSession(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, session.Context.TestsPassed)
	assert.True(t, *session.Context.TestsPassed)

	assert.Contains(t, h.eventTypes(t, created.ID), models.EventCIPassed)
}

func TestOnCIResult_Failure(t *testing.T) {
	h := newSignalHarness(t)
	ctx := context.Background()
	created := h.createSuspendedTask(t, task.StatusTesting, task.WaitingOnCi)

	require.NoError(t, h.engine.OnCIResult(ctx, created.ID, false, "3 assertions failed"))

	got, err := h.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusTestsFailed, got.Status)
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "3 assertions failed")

	session, err := h.mems.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Contains(t, session.Context.LastErrorSummary, "3 assertions failed")

	assert.Contains(t, h.eventTypes(t, created.ID), models.EventCIFailed)
}

func TestOnCIResult_NotWaiting(t *testing.T) {
	h := newSignalHarness(t)
	ctx := context.Background()

	// A coding task is not suspended on CI; a replayed webhook must not
	// move it.
	created := h.createSuspendedTask(t, task.StatusCoding, task.WaitingOnNone)

	err := h.engine.OnCIResult(ctx, created.ID, true, "")
	assert.ErrorIs(t, err, ErrUnexpectedSignal)

	got, err := h.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCoding, got.Status)
}

func TestOnMergeSignal(t *testing.T) {
	h := newSignalHarness(t)
	ctx := context.Background()
	created := h.createSuspendedTask(t, task.StatusWaitingHuman, task.WaitingOnHuman)

	require.NoError(t, h.engine.OnMergeSignal(ctx, created.ID))

	got, err := h.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, got.Status)

	types := h.eventTypes(t, created.ID)
	assert.Contains(t, types, models.EventMerged)
	assert.Contains(t, types, models.EventTaskCompleted)

	// Second delivery of the same merge webhook.
	err = h.engine.OnMergeSignal(ctx, created.ID)
	assert.ErrorIs(t, err, ErrUnexpectedSignal)
}

func TestFindTaskByPRAndBranch(t *testing.T) {
	h := newSignalHarness(t)
	ctx := context.Background()
	created := h.createSuspendedTask(t, task.StatusTesting, task.WaitingOnCi)

	byPR, err := h.engine.FindTaskByPR(ctx, "acme/widgets", 88)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byPR.ID)

	byBranch, err := h.engine.FindTaskByBranch(ctx, "acme/widgets", "coderelay/issue-7")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byBranch.ID)

	_, err = h.engine.FindTaskByPR(ctx, "acme/widgets", 999)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = h.engine.FindTaskByBranch(ctx, "other/repo", "coderelay/issue-7")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
