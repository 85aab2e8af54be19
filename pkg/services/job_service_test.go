package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/job"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/models"
	testdb "github.com/coderelay-ai/coderelay/test/database"
)

func newJobHarness(t *testing.T) (*JobService, *TaskService, *ent.Client) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	tasks := NewTaskService(dbClient.Client)
	jobs := NewJobService(dbClient.Client, tasks)
	return jobs, tasks, dbClient.Client
}

func createRunningJob(t *testing.T, jobs *JobService, issues ...int) *ent.Job {
	t.Helper()
	ctx := context.Background()
	j, err := jobs.CreateJob(ctx, models.CreateJobRequest{
		Repo:         "acme/widgets",
		IssueNumbers: issues,
	}, 3)
	require.NoError(t, err)
	j, err = jobs.RunJob(ctx, j.ID)
	require.NoError(t, err)
	return j
}

func setMemberStatuses(t *testing.T, client *ent.Client, jobID string, statuses ...task.Status) {
	t.Helper()
	ctx := context.Background()
	members, err := client.Task.Query().
		Where(task.JobIDEQ(jobID)).
		Order(ent.Asc(task.FieldIssueNumber)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, members, len(statuses))
	for i, m := range members {
		require.NoError(t, client.Task.UpdateOneID(m.ID).SetStatus(statuses[i]).Exec(ctx))
	}
}

func TestCreateJob(t *testing.T) {
	jobs, _, client := newJobHarness(t)
	ctx := context.Background()

	j, err := jobs.CreateJob(ctx, models.CreateJobRequest{
		Repo:         "acme/widgets",
		IssueNumbers: []int{10, 11, 12},
		RequestedBy:  "ops",
	}, 5)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, j.Status)

	members, err := client.Task.Query().Where(task.JobIDEQ(j.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)
	for _, m := range members {
		assert.Equal(t, task.StatusNew, m.Status)
		assert.Equal(t, 5, m.MaxAttempts)
	}
}

func TestCreateJob_Validation(t *testing.T) {
	jobs, _, _ := newJobHarness(t)
	ctx := context.Background()

	_, err := jobs.CreateJob(ctx, models.CreateJobRequest{IssueNumbers: []int{1}}, 3)
	assert.True(t, IsValidationError(err))

	_, err = jobs.CreateJob(ctx, models.CreateJobRequest{Repo: "acme/widgets"}, 3)
	assert.True(t, IsValidationError(err))
}

func TestCreateJob_DuplicateID(t *testing.T) {
	jobs, _, _ := newJobHarness(t)
	ctx := context.Background()

	req := models.CreateJobRequest{JobID: "job-dup", Repo: "acme/widgets", IssueNumbers: []int{1}}
	_, err := jobs.CreateJob(ctx, req, 3)
	require.NoError(t, err)

	req.IssueNumbers = []int{2}
	_, err = jobs.CreateJob(ctx, req, 3)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRunJob(t *testing.T) {
	jobs, _, _ := newJobHarness(t)
	ctx := context.Background()

	j, err := jobs.CreateJob(ctx, models.CreateJobRequest{
		Repo:         "acme/widgets",
		IssueNumbers: []int{1},
	}, 3)
	require.NoError(t, err)

	ran, err := jobs.RunJob(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, ran.Status)

	// Only pending jobs are runnable.
	_, err = jobs.RunJob(ctx, j.ID)
	assert.True(t, IsValidationError(err))

	_, err = jobs.RunJob(ctx, "no-such-job")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelJob_FlagsMembers(t *testing.T) {
	jobs, _, client := newJobHarness(t)
	ctx := context.Background()
	j := createRunningJob(t, jobs, 1, 2)

	cancelled, err := jobs.CancelJob(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, cancelled.Status)

	members, err := client.Task.Query().Where(task.JobIDEQ(j.ID)).All(ctx)
	require.NoError(t, err)
	for _, m := range members {
		assert.True(t, m.CancelRequested)
	}

	_, err = jobs.CancelJob(ctx, j.ID)
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestRecomputeStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []task.Status
		want     job.Status
	}{
		{"all completed", []task.Status{task.StatusCompleted, task.StatusCompleted}, job.StatusCompleted},
		{"all failed", []task.Status{task.StatusFailed, task.StatusFailed}, job.StatusFailed},
		{"mixed terminal", []task.Status{task.StatusCompleted, task.StatusFailed}, job.StatusPartial},
		{"one in flight", []task.Status{task.StatusCompleted, task.StatusCoding}, job.StatusRunning},
		{"none scheduled", []task.Status{task.StatusNew, task.StatusNew}, job.StatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, _, client := newJobHarness(t)
			ctx := context.Background()
			j := createRunningJob(t, jobs, 1, 2)
			setMemberStatuses(t, client, j.ID, tt.statuses...)

			got, err := jobs.RecomputeStatus(ctx, j.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecomputeStatus_CancelledIsSticky(t *testing.T) {
	jobs, _, client := newJobHarness(t)
	ctx := context.Background()
	j := createRunningJob(t, jobs, 1, 2)

	_, err := jobs.CancelJob(ctx, j.ID)
	require.NoError(t, err)

	// Flagged members drain to failed afterwards; the job must stay
	// cancelled.
	setMemberStatuses(t, client, j.ID, task.StatusFailed, task.StatusFailed)
	got, err := jobs.RecomputeStatus(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, got)
}

func TestJobTerminalHook_FiresOncePerTerminalEntry(t *testing.T) {
	jobs, _, client := newJobHarness(t)
	ctx := context.Background()
	j := createRunningJob(t, jobs, 1, 2)

	var fired []models.JobSummary
	jobs.SetOnTerminal(func(_ context.Context, got *ent.Job, summary models.JobSummary) {
		assert.Equal(t, j.ID, got.ID)
		fired = append(fired, summary)
	})

	// Still running: no hook.
	setMemberStatuses(t, client, j.ID, task.StatusCompleted, task.StatusCoding)
	_, err := jobs.RecomputeStatus(ctx, j.ID)
	require.NoError(t, err)
	assert.Empty(t, fired)

	setMemberStatuses(t, client, j.ID, task.StatusCompleted, task.StatusFailed)
	_, err = jobs.RecomputeStatus(ctx, j.ID)
	require.NoError(t, err)
	require.Len(t, fired, 1)
	assert.Equal(t, 2, fired[0].Total)
	assert.Equal(t, 1, fired[0].Completed)
	assert.Equal(t, 1, fired[0].Failed)

	// Re-deriving an already terminal job must not re-fire.
	_, err = jobs.RecomputeStatus(ctx, j.ID)
	require.NoError(t, err)
	assert.Len(t, fired, 1)
}

func TestJobTerminalHook_FiresOnCancel(t *testing.T) {
	jobs, _, _ := newJobHarness(t)
	ctx := context.Background()
	j := createRunningJob(t, jobs, 1)

	fired := 0
	jobs.SetOnTerminal(func(_ context.Context, got *ent.Job, _ models.JobSummary) {
		assert.Equal(t, job.StatusCancelled, got.Status)
		fired++
	})

	_, err := jobs.CancelJob(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

func TestSummary(t *testing.T) {
	jobs, _, client := newJobHarness(t)
	ctx := context.Background()
	j := createRunningJob(t, jobs, 1, 2, 3)
	setMemberStatuses(t, client, j.ID, task.StatusCompleted, task.StatusCoding, task.StatusNew)

	members, err := client.Task.Query().
		Where(task.JobIDEQ(j.ID), task.StatusEQ(task.StatusCompleted)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.NoError(t, client.Task.UpdateOneID(members[0].ID).
		SetPrURL("https://git.example.com/acme/widgets/pull/5").Exec(ctx))

	summary, err := jobs.Summary(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 1, summary.InProgress)
	assert.Equal(t, []string{"https://git.example.com/acme/widgets/pull/5"}, summary.PRs)
}

func TestDeriveJobStatus_Empty(t *testing.T) {
	assert.Equal(t, job.StatusPending, DeriveJobStatus(nil))
}
