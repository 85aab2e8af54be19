package models

// Task event types. The event log is the sole audit trail: every agent
// step, external signal, and failure lands here as one of these.
const (
	EventTaskCreated     = "TASK_CREATED"
	EventTaskStarted     = "TASK_STARTED"
	EventPlanProduced    = "PLAN_PRODUCED"
	EventDiffProduced    = "DIFF_PRODUCED"
	EventFixProduced     = "FIX_PRODUCED"
	EventDiffApplied     = "DIFF_APPLIED"
	EventValidationRun   = "VALIDATION_RUN"
	EventCIPassed        = "CI_PASSED"
	EventCIFailed        = "CI_FAILED"
	EventReviewApproved  = "REVIEW_APPROVED"
	EventReviewRejected  = "REVIEW_REJECTED"
	EventReviewDowngrade = "REVIEW_DOWNGRADED"
	EventPROpened        = "PR_OPENED"
	EventMerged          = "MERGED"
	EventTaskCompleted   = "TASK_COMPLETED"
	EventTaskFailed      = "TASK_FAILED"
	EventTaskCancelled   = "TASK_CANCELLED"

	// Orchestration
	EventBreakdownProduced = "BREAKDOWN_PRODUCED"
	EventChildrenSpawned   = "CHILDREN_SPAWNED"
	EventChildCompleted    = "CHILD_COMPLETED"
	EventChildFailed       = "CHILD_FAILED"
	EventDiffAggregated    = "DIFF_AGGREGATED"
	EventConflictReported  = "CONFLICT_REPORTED"
	EventConflictResolved  = "CONFLICT_RESOLVED"

	// Infrastructure
	EventOrphanRecovered = "ORPHAN_RECOVERED"
)
