package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/job"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/config"
	testdb "github.com/coderelay-ai/coderelay/test/database"
)

func retentionTestConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		TaskRetentionDays: 30,
		EventTTL:          24 * time.Hour,
		CleanupInterval:   time.Hour,
	}
}

func createAgedTask(t *testing.T, client *ent.Client, status task.Status, age time.Duration, jobID string) *ent.Task {
	t.Helper()
	builder := client.Task.Create().
		SetID(uuid.New().String()).
		SetRepo("acme/widgets").
		SetIssueNumber(1).
		SetStatus(status).
		SetUpdatedAt(time.Now().UTC().Add(-age))
	if jobID != "" {
		builder.SetJobID(jobID)
	}
	created, err := builder.Save(context.Background())
	require.NoError(t, err)
	return created
}

func TestRetentionSoftDeletesOldTerminalTasks(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	oldCompleted := createAgedTask(t, dbClient.Client, task.StatusCompleted, 45*24*time.Hour, "")
	oldFailed := createAgedTask(t, dbClient.Client, task.StatusFailed, 45*24*time.Hour, "")
	freshCompleted := createAgedTask(t, dbClient.Client, task.StatusCompleted, time.Hour, "")
	oldRunning := createAgedTask(t, dbClient.Client, task.StatusCoding, 45*24*time.Hour, "")

	svc := NewService(retentionTestConfig(), dbClient.Client)
	svc.RunOnce(ctx)

	for _, tc := range []struct {
		name    string
		id      string
		deleted bool
	}{
		{"old completed", oldCompleted.ID, true},
		{"old failed", oldFailed.ID, true},
		{"fresh completed", freshCompleted.ID, false},
		{"old but in-flight", oldRunning.ID, false},
	} {
		got, err := dbClient.Client.Task.Get(ctx, tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.deleted, got.DeletedAt != nil, tc.name)
	}
}

func TestRetentionSoftDeletesJobsAfterMembers(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	old := time.Now().UTC().Add(-45 * 24 * time.Hour)
	j, err := dbClient.Client.Job.Create().
		SetID(uuid.New().String()).
		SetRepo("acme/widgets").
		SetStatus(job.StatusCompleted).
		SetUpdatedAt(old).
		Save(ctx)
	require.NoError(t, err)
	createAgedTask(t, dbClient.Client, task.StatusCompleted, 45*24*time.Hour, j.ID)

	svc := NewService(retentionTestConfig(), dbClient.Client)

	// First sweep soft-deletes the member; the job follows once no
	// visible members remain.
	svc.RunOnce(ctx)
	svc.RunOnce(ctx)

	got, err := dbClient.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.DeletedAt)
}

func TestRetentionKeepsJobWithVisibleMembers(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	old := time.Now().UTC().Add(-45 * 24 * time.Hour)
	j, err := dbClient.Client.Job.Create().
		SetID(uuid.New().String()).
		SetRepo("acme/widgets").
		SetStatus(job.StatusPartial).
		SetUpdatedAt(old).
		Save(ctx)
	require.NoError(t, err)
	// Member still in flight: the job must stay visible.
	createAgedTask(t, dbClient.Client, task.StatusCoding, 45*24*time.Hour, j.ID)

	svc := NewService(retentionTestConfig(), dbClient.Client)
	svc.RunOnce(ctx)

	got, err := dbClient.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DeletedAt)
}

func TestRetentionPurgesEventMirror(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	created := createAgedTask(t, dbClient.Client, task.StatusCompleted, time.Hour, "")

	_, err := dbClient.Client.Event.Create().
		SetTaskID(created.ID).
		SetChannel("task:" + created.ID).
		SetPayload(map[string]interface{}{"type": "task.status"}).
		SetCreatedAt(time.Now().UTC().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	fresh, err := dbClient.Client.Event.Create().
		SetTaskID(created.ID).
		SetChannel("task:" + created.ID).
		SetPayload(map[string]interface{}{"type": "task.status"}).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionTestConfig(), dbClient.Client)
	svc.RunOnce(ctx)

	remaining, err := dbClient.Client.Event.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
}
