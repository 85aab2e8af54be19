package models

import "time"

// RepoConfig is the static per-repo configuration portion of static memory.
type RepoConfig struct {
	Language      string `json:"language"`
	Framework     string `json:"framework,omitempty"`
	DefaultBranch string `json:"defaultBranch"`
}

// RepoConstraints bounds what any single task may touch in a repo.
type RepoConstraints struct {
	AllowedPaths    []string `json:"allowedPaths,omitempty"`
	BlockedPaths    []string `json:"blockedPaths,omitempty"`
	MaxDiffLines    int      `json:"maxDiffLines"`
	MaxFilesPerTask int      `json:"maxFilesPerTask"`
}

// SessionContext is the mutable task context portion of session memory.
// It accumulates agent outputs and external signals across the pipeline.
type SessionContext struct {
	IssueNumber      int             `json:"issueNumber"`
	IssueTitle       string          `json:"issueTitle,omitempty"`
	IssueBody        string          `json:"issueBody,omitempty"`
	TargetFiles      []string        `json:"targetFiles,omitempty"`
	DefinitionOfDone []string        `json:"definitionOfDone,omitempty"`
	Plan             []string        `json:"plan,omitempty"`
	CurrentDiff      string          `json:"currentDiff,omitempty"`
	CommitMessage    string          `json:"commitMessage,omitempty"`
	ReviewComments   []ReviewComment `json:"reviewComments,omitempty"`
	ReviewVerdict    ReviewVerdict   `json:"reviewVerdict,omitempty"`
	TestsPassed      *bool           `json:"testsPassed,omitempty"`
	LastErrorSummary string          `json:"lastErrorSummary,omitempty"`
}

// AttemptOutcome classifies how one fix/retry attempt ended.
type AttemptOutcome string

// Attempt outcomes.
const (
	AttemptSucceeded AttemptOutcome = "succeeded"
	AttemptFailed    AttemptOutcome = "failed"
)

// AttemptRecord is one entry in the per-task attempt history.
type AttemptRecord struct {
	Outcome       AttemptOutcome `json:"outcome"`
	FailureReason string         `json:"failureReason,omitempty"`
	Diff          string         `json:"diff,omitempty"`
	RecordedAt    time.Time      `json:"recordedAt"`
}

// SessionAttempts tracks the fix/retry history for a task.
type SessionAttempts struct {
	Current         int             `json:"current"`
	Attempts        []AttemptRecord `json:"attempts,omitempty"`
	FailurePatterns []string        `json:"failurePatterns,omitempty"`
}

// AgentOutputs stores the latest validated output of each agent.
type AgentOutputs struct {
	Planner   *PlannerOutput   `json:"planner,omitempty"`
	Coder     *CoderOutput     `json:"coder,omitempty"`
	Fixer     *CoderOutput     `json:"fixer,omitempty"`
	Validator *ValidatorOutput `json:"validator,omitempty"`
	Reviewer  *ReviewerOutput  `json:"reviewer,omitempty"`
	Breakdown *BreakdownOutput `json:"breakdown,omitempty"`
}

// SubtaskStatus is the closed status set for a parent-tracked subtask.
type SubtaskStatus string

// Subtask statuses.
const (
	SubtaskPending    SubtaskStatus = "pending"
	SubtaskInProgress SubtaskStatus = "in_progress"
	SubtaskCompleted  SubtaskStatus = "completed"
	SubtaskFailed     SubtaskStatus = "failed"
	SubtaskBlocked    SubtaskStatus = "blocked"
)

// SubtaskState is the parent's view of one child task. Children are
// looked up through the store by ChildTaskID; the parent never holds a
// live reference into a child session.
type SubtaskState struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	TargetFiles []string      `json:"targetFiles"`
	DependsOn   []string      `json:"dependsOn,omitempty"`
	Status      SubtaskStatus `json:"status"`
	ChildTaskID string        `json:"childTaskId,omitempty"`
	Diff        string        `json:"diff,omitempty"`
	Attempts    int           `json:"attempts"`
}

// OrchestrationState lives on the parent session only. Invariants:
// a completed subtask always carries a diff, dependsOn references only
// sibling subtasks, and the dependency graph is acyclic.
type OrchestrationState struct {
	Subtasks          []SubtaskState `json:"subtasks"`
	CurrentSubtask    string         `json:"currentSubtask,omitempty"`
	CompletedSubtasks []string       `json:"completedSubtasks,omitempty"`
	AggregatedDiff    string         `json:"aggregatedDiff,omitempty"`
}

// Subtask returns the subtask with the given ID, or nil.
func (s *OrchestrationState) Subtask(id string) *SubtaskState {
	for i := range s.Subtasks {
		if s.Subtasks[i].ID == id {
			return &s.Subtasks[i]
		}
	}
	return nil
}

// SubtaskByChildTask returns the subtask materialized as the given child
// task, or nil.
func (s *OrchestrationState) SubtaskByChildTask(childTaskID string) *SubtaskState {
	for i := range s.Subtasks {
		if s.Subtasks[i].ChildTaskID == childTaskID {
			return &s.Subtasks[i]
		}
	}
	return nil
}

// AllCompleted reports whether every subtask reached completed.
func (s *OrchestrationState) AllCompleted() bool {
	if len(s.Subtasks) == 0 {
		return false
	}
	for i := range s.Subtasks {
		if s.Subtasks[i].Status != SubtaskCompleted {
			return false
		}
	}
	return true
}
