package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/models"
	testdb "github.com/coderelay-ai/coderelay/test/database"
)

func newTaskHarness(t *testing.T) (*TaskService, *MemoryService, *ent.Client) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	tasks := NewTaskService(dbClient.Client)
	mems, err := NewMemoryService(dbClient.Client)
	require.NoError(t, err)
	return tasks, mems, dbClient.Client
}

func TestCreateTask_SeedsSessionAndAuditTrail(t *testing.T) {
	tasks, mems, client := newTaskHarness(t)
	ctx := context.Background()

	created, err := tasks.CreateTask(ctx, models.CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 42,
		IssueTitle:  "Fix login",
		IssueBody:   "Login breaks on empty password",
		MaxAttempts: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusNew, created.Status)
	assert.Equal(t, task.WaitingOnNone, created.WaitingOn)

	session, err := mems.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, session.Context.IssueNumber)
	assert.Equal(t, "Fix login", session.Context.IssueTitle)

	events := NewEventService(client)
	list, err := events.List(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.EventTaskCreated, list[0].EventType)
}

func TestCreateTask_DuplicateID(t *testing.T) {
	tasks, _, _ := newTaskHarness(t)
	ctx := context.Background()

	req := models.CreateTaskRequest{TaskID: "t-dup", Repo: "acme/widgets", IssueNumber: 1, MaxAttempts: 3}
	_, err := tasks.CreateTask(ctx, req)
	require.NoError(t, err)

	_, err = tasks.CreateTask(ctx, req)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateTask_ChildWithDependenciesWaits(t *testing.T) {
	tasks, _, _ := newTaskHarness(t)
	ctx := context.Background()

	parent, err := tasks.CreateTask(ctx, models.CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 1,
		MaxAttempts: 3,
	})
	require.NoError(t, err)

	idx := 1
	child, err := tasks.CreateTask(ctx, models.CreateTaskRequest{
		Repo:         "acme/widgets",
		IssueNumber:  1,
		MaxAttempts:  3,
		ParentTaskID: parent.ID,
		SubtaskIndex: &idx,
		DependsOn:    []string{"sibling-0"},
		TargetFiles:  []string{"pkg/login.go"},
	})
	require.NoError(t, err)
	assert.Equal(t, task.WaitingOnDeps, child.WaitingOn)

	children, err := tasks.Children(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, child.ID, children[0].ID)
}

func TestGetTask_NotFound(t *testing.T) {
	tasks, _, _ := newTaskHarness(t)
	_, err := tasks.GetTask(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListTasks_Filters(t *testing.T) {
	tasks, _, client := newTaskHarness(t)
	ctx := context.Background()

	a, err := tasks.CreateTask(ctx, models.CreateTaskRequest{Repo: "acme/widgets", IssueNumber: 1, MaxAttempts: 3})
	require.NoError(t, err)
	_, err = tasks.CreateTask(ctx, models.CreateTaskRequest{Repo: "acme/widgets", IssueNumber: 2, MaxAttempts: 3})
	require.NoError(t, err)
	require.NoError(t, client.Task.UpdateOneID(a.ID).SetStatus(task.StatusCompleted).Exec(ctx))

	all, err := tasks.ListTasks(ctx, "", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	completed, err := tasks.ListTasks(ctx, "", []task.Status{task.StatusCompleted})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, a.ID, completed[0].ID)
}

func TestRequestCancel(t *testing.T) {
	tasks, _, client := newTaskHarness(t)
	ctx := context.Background()

	created, err := tasks.CreateTask(ctx, models.CreateTaskRequest{Repo: "acme/widgets", IssueNumber: 1, MaxAttempts: 3})
	require.NoError(t, err)

	require.NoError(t, tasks.RequestCancel(ctx, created.ID))
	got, err := tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.CancelRequested)

	require.NoError(t, client.Task.UpdateOneID(created.ID).SetStatus(task.StatusCompleted).Exec(ctx))
	err = tasks.RequestCancel(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotCancellable)
}
