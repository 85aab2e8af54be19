// Package queue provides task scheduling and worker pool infrastructure.
// Workers claim runnable tasks with FOR UPDATE SKIP LOCKED and drive the
// engine one iteration at a time until the task suspends or terminates.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/task"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no runnable tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates the global concurrent task limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// TaskExecutor drives a claimed task forward.
//
// The executor advances the task through as many state edges as it can
// within one claim and stops at the first suspension point (waiting on
// CI, a human, children, or sibling dependencies) or terminal status.
// Each edge is committed independently, so a crash mid-claim loses at
// most the in-flight iteration; orphan recovery requeues the task.
type TaskExecutor interface {
	Execute(ctx context.Context, t *ent.Task) *ExecutionResult
}

// ExecutionResult is lightweight, just how the claim ended. All task
// state was already committed per-edge by the engine during execution.
type ExecutionResult struct {
	Status    task.Status // status after the last committed edge
	Suspended bool        // task waits on an external signal
	Terminal  bool        // task reached COMPLETED or FAILED
	Steps     int         // state edges advanced under this claim
	Err       error       // infrastructure error, task state unchanged
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveTasks      int            `json:"active_tasks"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
