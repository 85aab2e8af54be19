// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldRepo holds the string denoting the repo field in the database.
	FieldRepo = "repo"
	// FieldIssueNumber holds the string denoting the issue_number field in the database.
	FieldIssueNumber = "issue_number"
	// FieldIssueTitle holds the string denoting the issue_title field in the database.
	FieldIssueTitle = "issue_title"
	// FieldIssueBody holds the string denoting the issue_body field in the database.
	FieldIssueBody = "issue_body"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldWaitingOn holds the string denoting the waiting_on field in the database.
	FieldWaitingOn = "waiting_on"
	// FieldAttemptCount holds the string denoting the attempt_count field in the database.
	FieldAttemptCount = "attempt_count"
	// FieldMaxAttempts holds the string denoting the max_attempts field in the database.
	FieldMaxAttempts = "max_attempts"
	// FieldParentTaskID holds the string denoting the parent_task_id field in the database.
	FieldParentTaskID = "parent_task_id"
	// FieldSubtaskIndex holds the string denoting the subtask_index field in the database.
	FieldSubtaskIndex = "subtask_index"
	// FieldIsOrchestrated holds the string denoting the is_orchestrated field in the database.
	FieldIsOrchestrated = "is_orchestrated"
	// FieldDependsOn holds the string denoting the depends_on field in the database.
	FieldDependsOn = "depends_on"
	// FieldDefinitionOfDone holds the string denoting the definition_of_done field in the database.
	FieldDefinitionOfDone = "definition_of_done"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldTargetFiles holds the string denoting the target_files field in the database.
	FieldTargetFiles = "target_files"
	// FieldEstimatedComplexity holds the string denoting the estimated_complexity field in the database.
	FieldEstimatedComplexity = "estimated_complexity"
	// FieldEstimatedEffort holds the string denoting the estimated_effort field in the database.
	FieldEstimatedEffort = "estimated_effort"
	// FieldBranchName holds the string denoting the branch_name field in the database.
	FieldBranchName = "branch_name"
	// FieldCurrentDiff holds the string denoting the current_diff field in the database.
	FieldCurrentDiff = "current_diff"
	// FieldCommitMessage holds the string denoting the commit_message field in the database.
	FieldCommitMessage = "commit_message"
	// FieldPrNumber holds the string denoting the pr_number field in the database.
	FieldPrNumber = "pr_number"
	// FieldPrURL holds the string denoting the pr_url field in the database.
	FieldPrURL = "pr_url"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldFailureKind holds the string denoting the failure_kind field in the database.
	FieldFailureKind = "failure_kind"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCancelRequested holds the string denoting the cancel_requested field in the database.
	FieldCancelRequested = "cancel_requested"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// JobFieldID holds the string denoting the ID field of the Job.
	JobFieldID = "job_id"
	// TaskEventFieldID holds the string denoting the ID field of the TaskEvent.
	TaskEventFieldID = "id"
	// SessionMemoryFieldID holds the string denoting the ID field of the SessionMemory.
	SessionMemoryFieldID = "session_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "tasks"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "task_events"
	// EventsInverseTable is the table name for the TaskEvent entity.
	// It exists in this package in order to avoid circular dependency with the "taskevent" package.
	EventsInverseTable = "task_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "task_id"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "session_memories"
	// SessionInverseTable is the table name for the SessionMemory entity.
	// It exists in this package in order to avoid circular dependency with the "sessionmemory" package.
	SessionInverseTable = "session_memories"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldRepo,
	FieldIssueNumber,
	FieldIssueTitle,
	FieldIssueBody,
	FieldStatus,
	FieldWaitingOn,
	FieldAttemptCount,
	FieldMaxAttempts,
	FieldParentTaskID,
	FieldSubtaskIndex,
	FieldIsOrchestrated,
	FieldDependsOn,
	FieldDefinitionOfDone,
	FieldPlan,
	FieldTargetFiles,
	FieldEstimatedComplexity,
	FieldEstimatedEffort,
	FieldBranchName,
	FieldCurrentDiff,
	FieldCommitMessage,
	FieldPrNumber,
	FieldPrURL,
	FieldLastError,
	FieldFailureKind,
	FieldVersion,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldCancelRequested,
	FieldStartedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAttemptCount holds the default value on creation for the "attempt_count" field.
	DefaultAttemptCount int
	// DefaultMaxAttempts holds the default value on creation for the "max_attempts" field.
	DefaultMaxAttempts int
	// DefaultIsOrchestrated holds the default value on creation for the "is_orchestrated" field.
	DefaultIsOrchestrated bool
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCancelRequested holds the default value on creation for the "cancel_requested" field.
	DefaultCancelRequested bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusNew is the default value of the Status enum.
const DefaultStatus = StatusNew

// Status values.
const (
	StatusNew            Status = "new"
	StatusPlanning       Status = "planning"
	StatusPlanningDone   Status = "planning_done"
	StatusCoding         Status = "coding"
	StatusCodingDone     Status = "coding_done"
	StatusTesting        Status = "testing"
	StatusTestsPassed    Status = "tests_passed"
	StatusTestsFailed    Status = "tests_failed"
	StatusFixing         Status = "fixing"
	StatusReviewing      Status = "reviewing"
	StatusReviewApproved Status = "review_approved"
	StatusReviewRejected Status = "review_rejected"
	StatusPrCreated      Status = "pr_created"
	StatusWaitingHuman   Status = "waiting_human"
	StatusCompleted      Status = "completed"
	StatusFailed         Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNew, StatusPlanning, StatusPlanningDone, StatusCoding, StatusCodingDone, StatusTesting, StatusTestsPassed, StatusTestsFailed, StatusFixing, StatusReviewing, StatusReviewApproved, StatusReviewRejected, StatusPrCreated, StatusWaitingHuman, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// WaitingOn defines the type for the "waiting_on" enum field.
type WaitingOn string

// WaitingOnNone is the default value of the WaitingOn enum.
const DefaultWaitingOn = WaitingOnNone

// WaitingOn values.
const (
	WaitingOnNone     WaitingOn = "none"
	WaitingOnCi       WaitingOn = "ci"
	WaitingOnHuman    WaitingOn = "human"
	WaitingOnChildren WaitingOn = "children"
	WaitingOnDeps     WaitingOn = "deps"
)

func (wo WaitingOn) String() string {
	return string(wo)
}

// WaitingOnValidator is a validator for the "waiting_on" field enum values. It is called by the builders before save.
func WaitingOnValidator(wo WaitingOn) error {
	switch wo {
	case WaitingOnNone, WaitingOnCi, WaitingOnHuman, WaitingOnChildren, WaitingOnDeps:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for waiting_on field: %q", wo)
	}
}

// EstimatedComplexity defines the type for the "estimated_complexity" enum field.
type EstimatedComplexity string

// EstimatedComplexity values.
const (
	EstimatedComplexityXS EstimatedComplexity = "XS"
	EstimatedComplexityS  EstimatedComplexity = "S"
	EstimatedComplexityM  EstimatedComplexity = "M"
	EstimatedComplexityL  EstimatedComplexity = "L"
	EstimatedComplexityXL EstimatedComplexity = "XL"
)

func (ec EstimatedComplexity) String() string {
	return string(ec)
}

// EstimatedComplexityValidator is a validator for the "estimated_complexity" field enum values. It is called by the builders before save.
func EstimatedComplexityValidator(ec EstimatedComplexity) error {
	switch ec {
	case EstimatedComplexityXS, EstimatedComplexityS, EstimatedComplexityM, EstimatedComplexityL, EstimatedComplexityXL:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for estimated_complexity field: %q", ec)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByRepo orders the results by the repo field.
func ByRepo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepo, opts...).ToFunc()
}

// ByIssueNumber orders the results by the issue_number field.
func ByIssueNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueNumber, opts...).ToFunc()
}

// ByIssueTitle orders the results by the issue_title field.
func ByIssueTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueTitle, opts...).ToFunc()
}

// ByIssueBody orders the results by the issue_body field.
func ByIssueBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueBody, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByWaitingOn orders the results by the waiting_on field.
func ByWaitingOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWaitingOn, opts...).ToFunc()
}

// ByAttemptCount orders the results by the attempt_count field.
func ByAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptCount, opts...).ToFunc()
}

// ByMaxAttempts orders the results by the max_attempts field.
func ByMaxAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAttempts, opts...).ToFunc()
}

// ByParentTaskID orders the results by the parent_task_id field.
func ByParentTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTaskID, opts...).ToFunc()
}

// BySubtaskIndex orders the results by the subtask_index field.
func BySubtaskIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtaskIndex, opts...).ToFunc()
}

// ByIsOrchestrated orders the results by the is_orchestrated field.
func ByIsOrchestrated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsOrchestrated, opts...).ToFunc()
}

// ByEstimatedComplexity orders the results by the estimated_complexity field.
func ByEstimatedComplexity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedComplexity, opts...).ToFunc()
}

// ByEstimatedEffort orders the results by the estimated_effort field.
func ByEstimatedEffort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedEffort, opts...).ToFunc()
}

// ByBranchName orders the results by the branch_name field.
func ByBranchName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchName, opts...).ToFunc()
}

// ByCurrentDiff orders the results by the current_diff field.
func ByCurrentDiff(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentDiff, opts...).ToFunc()
}

// ByCommitMessage orders the results by the commit_message field.
func ByCommitMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommitMessage, opts...).ToFunc()
}

// ByPrNumber orders the results by the pr_number field.
func ByPrNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrNumber, opts...).ToFunc()
}

// ByPrURL orders the results by the pr_url field.
func ByPrURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrURL, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByFailureKind orders the results by the failure_kind field.
func ByFailureKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureKind, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCancelRequested orders the results by the cancel_requested field.
func ByCancelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequested, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, JobFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, TaskEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionMemoryFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SessionTable, SessionColumn),
	)
}
