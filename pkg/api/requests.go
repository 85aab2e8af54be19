package api

// CreateTaskRequest creates a single standalone task. Standalone tasks
// have no job and are runnable as soon as they are created.
type CreateTaskRequest struct {
	TaskID      string `json:"task_id"`
	Repo        string `json:"repo"`
	IssueNumber int    `json:"issue_number"`
	IssueTitle  string `json:"issue_title"`
	IssueBody   string `json:"issue_body"`
	MaxAttempts int    `json:"max_attempts"`
}

// CodeHostWebhook is the unified payload the code host posts for CI
// completions and pull request merges.
type CodeHostWebhook struct {
	// Event is "ci_result" or "pr_merged".
	Event string `json:"event"`
	Repo  string `json:"repo"`

	// CI result fields.
	Branch       string `json:"branch,omitempty"`
	Success      *bool  `json:"success,omitempty"`
	ErrorSummary string `json:"error_summary,omitempty"`

	// PR merge fields.
	PRNumber int `json:"pr_number,omitempty"`
}

// ResolveConflictRequest supplies a human-resolved aggregate diff for a
// parent task parked on merge conflicts.
type ResolveConflictRequest struct {
	ResolvedDiff string `json:"resolved_diff"`
}
