// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Two stores back delivery. The durable audit trail lives in
// task_events and is what the REST API serves. The events table is a
// transient NOTIFY mirror: each broadcast payload is persisted there so
// a reconnecting dashboard can catch up on what NOTIFY dropped while it
// was away, keyed by the bigserial row id (db_event_id on the wire).
//
// Channel layout:
//
//	task:{task_id}  per-task payloads (status transitions, audit events)
//	tasks           transient task status copies for the task list page
//	jobs            job status roll-ups for the jobs page
package events

// Persistent event types (stored in the events mirror + NOTIFY).
const (
	// EventTypeTaskStatus fires on every task state transition.
	EventTypeTaskStatus = "task.status"

	// EventTypeTaskEvent mirrors one appended audit-trail event.
	EventTypeTaskEvent = "task.event"
)

// Transient event types (NOTIFY only, no persistence).
const (
	// EventTypeJobStatus carries the derived job status after a member
	// task transition. The jobs page re-fetches details over REST.
	EventTypeJobStatus = "job.status"
)

// GlobalTasksChannel is the channel for task-level status events.
// The task list page subscribes to this for real-time updates.
const GlobalTasksChannel = "tasks"

// GlobalJobsChannel is the channel for job status roll-ups.
const GlobalJobsChannel = "jobs"

// TaskChannel returns the channel name for a specific task's events.
// Format: "task:{task_id}"
func TaskChannel(taskID string) string {
	return "task:" + taskID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "task:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
