package events

// BasePayload carries the routing fields every broadcast payload needs.
// DBEventID is injected at publish time from the events-table row id; it
// is absent from the stored copy and from transient payloads.
type BasePayload struct {
	Type      string `json:"type"`
	TaskID    string `json:"task_id"`
	Timestamp string `json:"timestamp"`
}

// TaskStatusPayload announces one task state transition.
type TaskStatusPayload struct {
	BasePayload
	Status      string `json:"status"`
	From        string `json:"from,omitempty"`
	WaitingOn   string `json:"waiting_on,omitempty"`
	JobID       string `json:"job_id,omitempty"`
	FailureKind string `json:"failure_kind,omitempty"`
}

// TaskEventPayload mirrors one appended audit-trail event. EventID is
// the task_events row id so clients can fetch the full record over REST
// when summaries are truncated.
type TaskEventPayload struct {
	BasePayload
	EventID   int64  `json:"event_id"`
	EventType string `json:"event_type"`
	Agent     string `json:"agent,omitempty"`
}

// JobStatusPayload announces a derived job status change.
type JobStatusPayload struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
