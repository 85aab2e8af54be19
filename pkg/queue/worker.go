package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/job"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes task claims.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor TaskExecutor
	pool     TaskRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// TaskRegistry is the subset of WorkerPool used by Worker for claim registration.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor TaskExecutor, pool TaskRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a task, and drives it until it
// suspends or terminates.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Task.Query().
		Where(task.PodIDNotNil(), task.DeletedAtIsNil()).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active tasks: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentTasks {
		return ErrAtCapacity
	}

	// 2. Claim next runnable task
	t, err := w.claimNextTask(ctx)
	if err != nil {
		return err
	}

	log := slog.With("task_id", t.ID, "worker_id", w.id)
	log.Info("Task claimed", "status", t.Status)

	w.setStatus(WorkerStatusWorking, t.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create claim context for API-triggered cancellation
	claimCtx, cancelClaim := context.WithCancel(ctx)
	defer cancelClaim()

	// 4. Register cancel function so the API can interrupt in-flight work
	w.pool.RegisterTask(t.ID, cancelClaim)
	defer w.pool.UnregisterTask(t.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(claimCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, t.ID)

	// 6. Drive the task
	result := w.executor.Execute(claimCtx, t)
	if result == nil {
		result = &ExecutionResult{Status: t.Status, Err: errors.New("executor returned nil result")}
	}

	// 7. Stop heartbeat
	cancelHeartbeat()

	// 8. Release the claim (use background context — claim ctx may be
	//    cancelled). Terminal transitions already cleared pod_id; this
	//    covers suspensions, errors, and the step cap.
	if err := w.releaseTask(context.Background(), t.ID); err != nil {
		log.Error("Failed to release task claim", "error", err)
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	switch {
	case result.Err != nil && !errors.Is(result.Err, context.Canceled):
		log.Error("Claim ended with error", "status", result.Status, "error", result.Err)
	case result.Terminal:
		log.Info("Task reached terminal status", "status", result.Status, "steps", result.Steps)
	case result.Suspended:
		log.Info("Task suspended", "status", result.Status, "steps", result.Steps)
	}
	return nil
}

// claimNextTask atomically claims the next runnable task using
// FOR UPDATE SKIP LOCKED. Runnable means: non-terminal, not waiting on
// any signal, unclaimed, and admitted (no owning job, or the job is
// running). Cancel-flagged tasks are claimed regardless of admission so
// the engine can fail them.
func (w *Worker) claimNextTask(ctx context.Context) (*ent.Task, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	t, err := tx.Task.Query().
		Where(
			task.StatusNotIn(task.StatusCompleted, task.StatusFailed),
			task.WaitingOnEQ(task.WaitingOnNone),
			task.PodIDIsNil(),
			task.DeletedAtIsNil(),
			task.Or(
				task.JobIDIsNil(),
				task.CancelRequested(true),
				task.HasJobWith(job.StatusEQ(job.StatusRunning), job.DeletedAtIsNil()),
			),
		).
		Order(ent.Asc(task.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query runnable task: %w", err)
	}

	// Claim: set pod_id and the first heartbeat
	t, err = t.Update().
		SetPodID(w.podID).
		SetLastHeartbeatAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	// Re-read outside the transaction so callers get an entity bound to
	// the live client, not the committed tx.
	t, err = w.client.Task.Get(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload claimed task: %w", err)
	}
	return t, nil
}

// runHeartbeat periodically updates last_heartbeat_at for orphan detection.
// The pod_id guard stops the heartbeat from resurrecting a task that
// orphan recovery already requeued.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Task.Update().
				Where(task.IDEQ(taskID), task.PodIDEQ(w.podID)).
				SetLastHeartbeatAt(time.Now().UTC()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// releaseTask clears this pod's claim. A no-op when a terminal
// transition or orphan recovery already cleared it.
func (w *Worker) releaseTask(ctx context.Context, taskID string) error {
	_, err := w.client.Task.Update().
		Where(task.IDEQ(taskID), task.PodIDEQ(w.podID)).
		ClearPodID().
		Save(ctx)
	return err
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
