package models

// CreateJobRequest creates a job and its member tasks.
type CreateJobRequest struct {
	JobID        string `json:"job_id"`
	Repo         string `json:"repo"`
	IssueNumbers []int  `json:"issue_numbers"`
	RequestedBy  string `json:"requested_by,omitempty"`
}

// CreateTaskRequest creates a single task. JobID is empty for
// orchestrator-created children; ParentTaskID is set instead.
type CreateTaskRequest struct {
	TaskID       string
	JobID        string
	Repo         string
	IssueNumber  int
	IssueTitle   string
	IssueBody    string
	MaxAttempts  int
	ParentTaskID string
	SubtaskIndex *int
	DependsOn    []string

	// Children receive only their subtask's slice of the parent plan.
	TargetFiles      []string
	DefinitionOfDone []string
}

// AppendEventRequest appends one event to a task's audit trail.
type AppendEventRequest struct {
	TaskID        string
	EventType     string
	Agent         AgentType
	InputSummary  string
	OutputSummary string
	TokensUsed    *int
	DurationMs    *int
	Metadata      map[string]interface{}
}

// UpsertStaticMemoryRequest creates or replaces a repo's static memory.
type UpsertStaticMemoryRequest struct {
	Repo              string          `json:"repo"`
	Config            RepoConfig      `json:"config"`
	Constraints       RepoConstraints `json:"constraints"`
	AgentInstructions string          `json:"agent_instructions,omitempty"`
}

// JobSummary is the derived roll-up of a job's member tasks.
type JobSummary struct {
	Total      int      `json:"total"`
	Completed  int      `json:"completed"`
	Failed     int      `json:"failed"`
	InProgress int      `json:"in_progress"`
	PRs        []string `json:"prs,omitempty"`
}
