package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/job"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/ent/taskevent"
	"github.com/coderelay-ai/coderelay/pkg/config"
	"github.com/coderelay-ai/coderelay/pkg/models"
	testdb "github.com/coderelay-ai/coderelay/test/database"
)

// createTestTask creates a runnable task with no owning job.
func createTestTask(ctx context.Context, t *testing.T, client *ent.Client) *ent.Task {
	t.Helper()
	created, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetRepo("acme/widgets").
		SetIssueNumber(42).
		SetStatus(task.StatusNew).
		Save(ctx)
	require.NoError(t, err)
	return created
}

// createTestJob creates a job row in the given status.
func createTestJob(ctx context.Context, t *testing.T, client *ent.Client, status job.Status) *ent.Job {
	t.Helper()
	j, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetRepo("acme/widgets").
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return j
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentTasks:      10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// completingExecutor marks each claimed task completed. Stands in for
// the engine so pool tests exercise only claim mechanics.
type completingExecutor struct {
	mu        sync.Mutex
	processed []string
}

func (x *completingExecutor) Execute(ctx context.Context, t *ent.Task) *ExecutionResult {
	x.mu.Lock()
	x.processed = append(x.processed, t.ID)
	x.mu.Unlock()

	err := t.Update().
		SetStatus(task.StatusCompleted).
		ClearPodID().
		Exec(ctx)
	if err != nil {
		return &ExecutionResult{Status: t.Status, Err: err}
	}
	return &ExecutionResult{Status: task.StatusCompleted, Terminal: true, Steps: 1}
}

// TestForUpdateSkipLockedClaiming tests that a worker can atomically claim a runnable task.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	created := createTestTask(ctx, t, client)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil)

	claimed, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the runnable task")
	assert.Equal(t, created.ID, claimed.ID)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "test-pod", *claimed.PodID)
	assert.NotNil(t, claimed.LastHeartbeatAt)

	// Second claim should return ErrNoTasksAvailable
	claimed2, err := w.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
	assert.Nil(t, claimed2, "no more runnable tasks should be available")
}

// TestConcurrentClaimsDifferentTasks tests that concurrent workers claim different tasks.
func TestConcurrentClaimsDifferentTasks(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	taskIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		created := createTestTask(ctx, t, client)
		taskIDs[created.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil, nil)
			claimedTask, err := w.claimNextTask(ctx)
			if err != nil {
				return
			}
			mu.Lock()
			claimed = append(claimed, claimedTask.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	// Every claim must be a distinct task
	require.Len(t, claimed, 5)
	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "task %s claimed twice", id)
		seen[id] = struct{}{}
		_, known := taskIDs[id]
		assert.True(t, known, "claimed unknown task %s", id)
	}
}

// TestClaimSkipsIneligibleTasks verifies the runnable predicate:
// suspended, already-claimed, terminal, and unadmitted tasks stay put.
func TestClaimSkipsIneligibleTasks(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Suspended on CI
	waiting := createTestTask(ctx, t, client)
	require.NoError(t, waiting.Update().
		SetStatus(task.StatusTesting).
		SetWaitingOn(task.WaitingOnCi).
		Exec(ctx))

	// Claimed by another pod
	claimed := createTestTask(ctx, t, client)
	require.NoError(t, claimed.Update().
		SetPodID("other-pod").
		Exec(ctx))

	// Terminal
	done := createTestTask(ctx, t, client)
	require.NoError(t, done.Update().
		SetStatus(task.StatusCompleted).
		Exec(ctx))

	// Member of a pending job: not admitted yet
	pendingJob := createTestJob(ctx, t, client, job.StatusPending)
	_, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetJobID(pendingJob.ID).
		SetRepo("acme/widgets").
		SetIssueNumber(7).
		SetStatus(task.StatusNew).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil)

	_, err = w.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)

	// Member of a running job: admitted
	runningJob := createTestJob(ctx, t, client, job.StatusRunning)
	admitted, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetJobID(runningJob.ID).
		SetRepo("acme/widgets").
		SetIssueNumber(8).
		SetStatus(task.StatusNew).
		Save(ctx)
	require.NoError(t, err)

	got, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	assert.Equal(t, admitted.ID, got.ID)
}

// TestClaimAdmitsCancelRequestedTask verifies a cancel-flagged task is
// claimable even when its job never started, so the engine can fail it.
func TestClaimAdmitsCancelRequestedTask(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	pendingJob := createTestJob(ctx, t, client, job.StatusPending)
	flagged, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetJobID(pendingJob.ID).
		SetRepo("acme/widgets").
		SetIssueNumber(9).
		SetStatus(task.StatusNew).
		SetCancelRequested(true).
		Save(ctx)
	require.NoError(t, err)

	w := NewWorker("test-worker-0", "test-pod", client, intTestQueueConfig(), nil, nil)
	got, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	assert.Equal(t, flagged.ID, got.ID)
}

// TestOrphanDetectionRequeues verifies stale-heartbeat tasks are
// requeued, not failed, and the recovery lands on the audit trail.
func TestOrphanDetectionRequeues(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	created := createTestTask(ctx, t, client)
	stale := time.Now().Add(-time.Hour)
	require.NoError(t, created.Update().
		SetStatus(task.StatusCoding).
		SetPodID("dead-pod").
		SetLastHeartbeatAt(stale).
		Exec(ctx))

	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), nil)
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	recovered, err := client.Task.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, recovered.PodID, "claim should be released")
	assert.Nil(t, recovered.LastHeartbeatAt)
	assert.Equal(t, task.StatusCoding, recovered.Status, "status must survive requeue")

	events, err := client.TaskEvent.Query().
		Where(
			taskevent.TaskIDEQ(created.ID),
			taskevent.EventTypeEQ(models.EventOrphanRecovered),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "dead-pod", events[0].Metadata["pod_id"])

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
}

// TestOrphanDetectionIgnoresFreshHeartbeats verifies healthy claims are untouched.
func TestOrphanDetectionIgnoresFreshHeartbeats(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	created := createTestTask(ctx, t, client)
	require.NoError(t, created.Update().
		SetStatus(task.StatusCoding).
		SetPodID("live-pod").
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx))

	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), nil)
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	fresh, err := client.Task.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fresh.PodID)
	assert.Equal(t, "live-pod", *fresh.PodID)
}

// TestCleanupStartupOrphans verifies restart recovery only touches this
// pod's claims.
func TestCleanupStartupOrphans(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	mine := createTestTask(ctx, t, client)
	require.NoError(t, mine.Update().
		SetStatus(task.StatusPlanning).
		SetPodID("pod-a").
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx))

	theirs := createTestTask(ctx, t, client)
	require.NoError(t, theirs.Update().
		SetStatus(task.StatusPlanning).
		SetPodID("pod-b").
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx))

	require.NoError(t, CleanupStartupOrphans(ctx, client, "pod-a"))

	recovered, err := client.Task.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Nil(t, recovered.PodID)

	untouched, err := client.Task.Get(ctx, theirs.ID)
	require.NoError(t, err)
	require.NotNil(t, untouched.PodID)
	assert.Equal(t, "pod-b", *untouched.PodID)
}

// TestDependencyPromotion verifies children waiting on siblings are
// released once every prerequisite completes, and only then.
func TestDependencyPromotion(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	dep1 := createTestTask(ctx, t, client)
	dep2 := createTestTask(ctx, t, client)

	child, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetRepo("acme/widgets").
		SetIssueNumber(42).
		SetStatus(task.StatusNew).
		SetDependsOn([]string{dep1.ID, dep2.ID}).
		SetWaitingOn(task.WaitingOnDeps).
		Save(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), nil)

	// One of two prerequisites done: still blocked
	require.NoError(t, dep1.Update().SetStatus(task.StatusCompleted).Exec(ctx))
	require.NoError(t, pool.promoteReadyChildren(ctx))
	blocked, err := client.Task.Get(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, task.WaitingOnDeps, blocked.WaitingOn)

	// Both done: promoted
	require.NoError(t, dep2.Update().SetStatus(task.StatusCompleted).Exec(ctx))
	require.NoError(t, pool.promoteReadyChildren(ctx))
	released, err := client.Task.Get(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, task.WaitingOnNone, released.WaitingOn)
	assert.Equal(t, blocked.Version+1, released.Version)
}

// TestWorkerPoolProcessesTasks runs a real pool against a stub executor
// and verifies every runnable task gets claimed exactly once.
func TestWorkerPoolProcessesTasks(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		createTestTask(ctx, t, client)
	}

	executor := &completingExecutor{}
	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 100*time.Millisecond, "all tasks completed", func() bool {
		n, err := client.Task.Query().
			Where(task.StatusEQ(task.StatusCompleted)).
			Count(ctx)
		return err == nil && n == 4
	})

	executor.mu.Lock()
	defer executor.mu.Unlock()
	assert.Len(t, executor.processed, 4, "each task claimed exactly once")
}
