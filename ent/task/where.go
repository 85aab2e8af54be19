// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/coderelay-ai/coderelay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldJobID, v))
}

// Repo applies equality check predicate on the "repo" field. It's identical to RepoEQ.
func Repo(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRepo, v))
}

// IssueNumber applies equality check predicate on the "issue_number" field. It's identical to IssueNumberEQ.
func IssueNumber(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueNumber, v))
}

// IssueTitle applies equality check predicate on the "issue_title" field. It's identical to IssueTitleEQ.
func IssueTitle(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueTitle, v))
}

// IssueBody applies equality check predicate on the "issue_body" field. It's identical to IssueBodyEQ.
func IssueBody(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueBody, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAttemptCount, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxAttempts, v))
}

// ParentTaskID applies equality check predicate on the "parent_task_id" field. It's identical to ParentTaskIDEQ.
func ParentTaskID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldParentTaskID, v))
}

// SubtaskIndex applies equality check predicate on the "subtask_index" field. It's identical to SubtaskIndexEQ.
func SubtaskIndex(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSubtaskIndex, v))
}

// IsOrchestrated applies equality check predicate on the "is_orchestrated" field. It's identical to IsOrchestratedEQ.
func IsOrchestrated(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsOrchestrated, v))
}

// EstimatedEffort applies equality check predicate on the "estimated_effort" field. It's identical to EstimatedEffortEQ.
func EstimatedEffort(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstimatedEffort, v))
}

// BranchName applies equality check predicate on the "branch_name" field. It's identical to BranchNameEQ.
func BranchName(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBranchName, v))
}

// CurrentDiff applies equality check predicate on the "current_diff" field. It's identical to CurrentDiffEQ.
func CurrentDiff(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCurrentDiff, v))
}

// CommitMessage applies equality check predicate on the "commit_message" field. It's identical to CommitMessageEQ.
func CommitMessage(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCommitMessage, v))
}

// PrNumber applies equality check predicate on the "pr_number" field. It's identical to PrNumberEQ.
func PrNumber(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPrNumber, v))
}

// PrURL applies equality check predicate on the "pr_url" field. It's identical to PrURLEQ.
func PrURL(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPrURL, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastError, v))
}

// FailureKind applies equality check predicate on the "failure_kind" field. It's identical to FailureKindEQ.
func FailureKind(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFailureKind, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldVersion, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCancelRequested, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDeletedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDIsNil applies the IsNil predicate on the "job_id" field.
func JobIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldJobID))
}

// JobIDNotNil applies the NotNil predicate on the "job_id" field.
func JobIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldJobID))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldJobID, v))
}

// RepoEQ applies the EQ predicate on the "repo" field.
func RepoEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRepo, v))
}

// RepoNEQ applies the NEQ predicate on the "repo" field.
func RepoNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRepo, v))
}

// RepoIn applies the In predicate on the "repo" field.
func RepoIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRepo, vs...))
}

// RepoNotIn applies the NotIn predicate on the "repo" field.
func RepoNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRepo, vs...))
}

// RepoGT applies the GT predicate on the "repo" field.
func RepoGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRepo, v))
}

// RepoGTE applies the GTE predicate on the "repo" field.
func RepoGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRepo, v))
}

// RepoLT applies the LT predicate on the "repo" field.
func RepoLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRepo, v))
}

// RepoLTE applies the LTE predicate on the "repo" field.
func RepoLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRepo, v))
}

// RepoContains applies the Contains predicate on the "repo" field.
func RepoContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldRepo, v))
}

// RepoHasPrefix applies the HasPrefix predicate on the "repo" field.
func RepoHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldRepo, v))
}

// RepoHasSuffix applies the HasSuffix predicate on the "repo" field.
func RepoHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldRepo, v))
}

// RepoEqualFold applies the EqualFold predicate on the "repo" field.
func RepoEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldRepo, v))
}

// RepoContainsFold applies the ContainsFold predicate on the "repo" field.
func RepoContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldRepo, v))
}

// IssueNumberEQ applies the EQ predicate on the "issue_number" field.
func IssueNumberEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueNumber, v))
}

// IssueNumberNEQ applies the NEQ predicate on the "issue_number" field.
func IssueNumberNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIssueNumber, v))
}

// IssueNumberIn applies the In predicate on the "issue_number" field.
func IssueNumberIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldIssueNumber, vs...))
}

// IssueNumberNotIn applies the NotIn predicate on the "issue_number" field.
func IssueNumberNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldIssueNumber, vs...))
}

// IssueNumberGT applies the GT predicate on the "issue_number" field.
func IssueNumberGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldIssueNumber, v))
}

// IssueNumberGTE applies the GTE predicate on the "issue_number" field.
func IssueNumberGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldIssueNumber, v))
}

// IssueNumberLT applies the LT predicate on the "issue_number" field.
func IssueNumberLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldIssueNumber, v))
}

// IssueNumberLTE applies the LTE predicate on the "issue_number" field.
func IssueNumberLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldIssueNumber, v))
}

// IssueTitleEQ applies the EQ predicate on the "issue_title" field.
func IssueTitleEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueTitle, v))
}

// IssueTitleNEQ applies the NEQ predicate on the "issue_title" field.
func IssueTitleNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIssueTitle, v))
}

// IssueTitleIn applies the In predicate on the "issue_title" field.
func IssueTitleIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldIssueTitle, vs...))
}

// IssueTitleNotIn applies the NotIn predicate on the "issue_title" field.
func IssueTitleNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldIssueTitle, vs...))
}

// IssueTitleGT applies the GT predicate on the "issue_title" field.
func IssueTitleGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldIssueTitle, v))
}

// IssueTitleGTE applies the GTE predicate on the "issue_title" field.
func IssueTitleGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldIssueTitle, v))
}

// IssueTitleLT applies the LT predicate on the "issue_title" field.
func IssueTitleLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldIssueTitle, v))
}

// IssueTitleLTE applies the LTE predicate on the "issue_title" field.
func IssueTitleLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldIssueTitle, v))
}

// IssueTitleContains applies the Contains predicate on the "issue_title" field.
func IssueTitleContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldIssueTitle, v))
}

// IssueTitleHasPrefix applies the HasPrefix predicate on the "issue_title" field.
func IssueTitleHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldIssueTitle, v))
}

// IssueTitleHasSuffix applies the HasSuffix predicate on the "issue_title" field.
func IssueTitleHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldIssueTitle, v))
}

// IssueTitleIsNil applies the IsNil predicate on the "issue_title" field.
func IssueTitleIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldIssueTitle))
}

// IssueTitleNotNil applies the NotNil predicate on the "issue_title" field.
func IssueTitleNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldIssueTitle))
}

// IssueTitleEqualFold applies the EqualFold predicate on the "issue_title" field.
func IssueTitleEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldIssueTitle, v))
}

// IssueTitleContainsFold applies the ContainsFold predicate on the "issue_title" field.
func IssueTitleContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldIssueTitle, v))
}

// IssueBodyEQ applies the EQ predicate on the "issue_body" field.
func IssueBodyEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueBody, v))
}

// IssueBodyNEQ applies the NEQ predicate on the "issue_body" field.
func IssueBodyNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIssueBody, v))
}

// IssueBodyIn applies the In predicate on the "issue_body" field.
func IssueBodyIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldIssueBody, vs...))
}

// IssueBodyNotIn applies the NotIn predicate on the "issue_body" field.
func IssueBodyNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldIssueBody, vs...))
}

// IssueBodyGT applies the GT predicate on the "issue_body" field.
func IssueBodyGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldIssueBody, v))
}

// IssueBodyGTE applies the GTE predicate on the "issue_body" field.
func IssueBodyGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldIssueBody, v))
}

// IssueBodyLT applies the LT predicate on the "issue_body" field.
func IssueBodyLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldIssueBody, v))
}

// IssueBodyLTE applies the LTE predicate on the "issue_body" field.
func IssueBodyLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldIssueBody, v))
}

// IssueBodyContains applies the Contains predicate on the "issue_body" field.
func IssueBodyContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldIssueBody, v))
}

// IssueBodyHasPrefix applies the HasPrefix predicate on the "issue_body" field.
func IssueBodyHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldIssueBody, v))
}

// IssueBodyHasSuffix applies the HasSuffix predicate on the "issue_body" field.
func IssueBodyHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldIssueBody, v))
}

// IssueBodyIsNil applies the IsNil predicate on the "issue_body" field.
func IssueBodyIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldIssueBody))
}

// IssueBodyNotNil applies the NotNil predicate on the "issue_body" field.
func IssueBodyNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldIssueBody))
}

// IssueBodyEqualFold applies the EqualFold predicate on the "issue_body" field.
func IssueBodyEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldIssueBody, v))
}

// IssueBodyContainsFold applies the ContainsFold predicate on the "issue_body" field.
func IssueBodyContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldIssueBody, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// WaitingOnEQ applies the EQ predicate on the "waiting_on" field.
func WaitingOnEQ(v WaitingOn) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldWaitingOn, v))
}

// WaitingOnNEQ applies the NEQ predicate on the "waiting_on" field.
func WaitingOnNEQ(v WaitingOn) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldWaitingOn, v))
}

// WaitingOnIn applies the In predicate on the "waiting_on" field.
func WaitingOnIn(vs ...WaitingOn) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldWaitingOn, vs...))
}

// WaitingOnNotIn applies the NotIn predicate on the "waiting_on" field.
func WaitingOnNotIn(vs ...WaitingOn) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldWaitingOn, vs...))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAttemptCount, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldMaxAttempts, v))
}

// ParentTaskIDEQ applies the EQ predicate on the "parent_task_id" field.
func ParentTaskIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldParentTaskID, v))
}

// ParentTaskIDNEQ applies the NEQ predicate on the "parent_task_id" field.
func ParentTaskIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldParentTaskID, v))
}

// ParentTaskIDIn applies the In predicate on the "parent_task_id" field.
func ParentTaskIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldParentTaskID, vs...))
}

// ParentTaskIDNotIn applies the NotIn predicate on the "parent_task_id" field.
func ParentTaskIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldParentTaskID, vs...))
}

// ParentTaskIDGT applies the GT predicate on the "parent_task_id" field.
func ParentTaskIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldParentTaskID, v))
}

// ParentTaskIDGTE applies the GTE predicate on the "parent_task_id" field.
func ParentTaskIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldParentTaskID, v))
}

// ParentTaskIDLT applies the LT predicate on the "parent_task_id" field.
func ParentTaskIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldParentTaskID, v))
}

// ParentTaskIDLTE applies the LTE predicate on the "parent_task_id" field.
func ParentTaskIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldParentTaskID, v))
}

// ParentTaskIDContains applies the Contains predicate on the "parent_task_id" field.
func ParentTaskIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldParentTaskID, v))
}

// ParentTaskIDHasPrefix applies the HasPrefix predicate on the "parent_task_id" field.
func ParentTaskIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldParentTaskID, v))
}

// ParentTaskIDHasSuffix applies the HasSuffix predicate on the "parent_task_id" field.
func ParentTaskIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldParentTaskID, v))
}

// ParentTaskIDIsNil applies the IsNil predicate on the "parent_task_id" field.
func ParentTaskIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldParentTaskID))
}

// ParentTaskIDNotNil applies the NotNil predicate on the "parent_task_id" field.
func ParentTaskIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldParentTaskID))
}

// ParentTaskIDEqualFold applies the EqualFold predicate on the "parent_task_id" field.
func ParentTaskIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldParentTaskID, v))
}

// ParentTaskIDContainsFold applies the ContainsFold predicate on the "parent_task_id" field.
func ParentTaskIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldParentTaskID, v))
}

// SubtaskIndexEQ applies the EQ predicate on the "subtask_index" field.
func SubtaskIndexEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSubtaskIndex, v))
}

// SubtaskIndexNEQ applies the NEQ predicate on the "subtask_index" field.
func SubtaskIndexNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldSubtaskIndex, v))
}

// SubtaskIndexIn applies the In predicate on the "subtask_index" field.
func SubtaskIndexIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldSubtaskIndex, vs...))
}

// SubtaskIndexNotIn applies the NotIn predicate on the "subtask_index" field.
func SubtaskIndexNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldSubtaskIndex, vs...))
}

// SubtaskIndexGT applies the GT predicate on the "subtask_index" field.
func SubtaskIndexGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldSubtaskIndex, v))
}

// SubtaskIndexGTE applies the GTE predicate on the "subtask_index" field.
func SubtaskIndexGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldSubtaskIndex, v))
}

// SubtaskIndexLT applies the LT predicate on the "subtask_index" field.
func SubtaskIndexLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldSubtaskIndex, v))
}

// SubtaskIndexLTE applies the LTE predicate on the "subtask_index" field.
func SubtaskIndexLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldSubtaskIndex, v))
}

// SubtaskIndexIsNil applies the IsNil predicate on the "subtask_index" field.
func SubtaskIndexIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldSubtaskIndex))
}

// SubtaskIndexNotNil applies the NotNil predicate on the "subtask_index" field.
func SubtaskIndexNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldSubtaskIndex))
}

// IsOrchestratedEQ applies the EQ predicate on the "is_orchestrated" field.
func IsOrchestratedEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsOrchestrated, v))
}

// IsOrchestratedNEQ applies the NEQ predicate on the "is_orchestrated" field.
func IsOrchestratedNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIsOrchestrated, v))
}

// DependsOnIsNil applies the IsNil predicate on the "depends_on" field.
func DependsOnIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDependsOn))
}

// DependsOnNotNil applies the NotNil predicate on the "depends_on" field.
func DependsOnNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDependsOn))
}

// DefinitionOfDoneIsNil applies the IsNil predicate on the "definition_of_done" field.
func DefinitionOfDoneIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDefinitionOfDone))
}

// DefinitionOfDoneNotNil applies the NotNil predicate on the "definition_of_done" field.
func DefinitionOfDoneNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDefinitionOfDone))
}

// PlanIsNil applies the IsNil predicate on the "plan" field.
func PlanIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPlan))
}

// PlanNotNil applies the NotNil predicate on the "plan" field.
func PlanNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPlan))
}

// TargetFilesIsNil applies the IsNil predicate on the "target_files" field.
func TargetFilesIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldTargetFiles))
}

// TargetFilesNotNil applies the NotNil predicate on the "target_files" field.
func TargetFilesNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldTargetFiles))
}

// EstimatedComplexityEQ applies the EQ predicate on the "estimated_complexity" field.
func EstimatedComplexityEQ(v EstimatedComplexity) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstimatedComplexity, v))
}

// EstimatedComplexityNEQ applies the NEQ predicate on the "estimated_complexity" field.
func EstimatedComplexityNEQ(v EstimatedComplexity) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldEstimatedComplexity, v))
}

// EstimatedComplexityIn applies the In predicate on the "estimated_complexity" field.
func EstimatedComplexityIn(vs ...EstimatedComplexity) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldEstimatedComplexity, vs...))
}

// EstimatedComplexityNotIn applies the NotIn predicate on the "estimated_complexity" field.
func EstimatedComplexityNotIn(vs ...EstimatedComplexity) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldEstimatedComplexity, vs...))
}

// EstimatedComplexityIsNil applies the IsNil predicate on the "estimated_complexity" field.
func EstimatedComplexityIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldEstimatedComplexity))
}

// EstimatedComplexityNotNil applies the NotNil predicate on the "estimated_complexity" field.
func EstimatedComplexityNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldEstimatedComplexity))
}

// EstimatedEffortEQ applies the EQ predicate on the "estimated_effort" field.
func EstimatedEffortEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstimatedEffort, v))
}

// EstimatedEffortNEQ applies the NEQ predicate on the "estimated_effort" field.
func EstimatedEffortNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldEstimatedEffort, v))
}

// EstimatedEffortIn applies the In predicate on the "estimated_effort" field.
func EstimatedEffortIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldEstimatedEffort, vs...))
}

// EstimatedEffortNotIn applies the NotIn predicate on the "estimated_effort" field.
func EstimatedEffortNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldEstimatedEffort, vs...))
}

// EstimatedEffortGT applies the GT predicate on the "estimated_effort" field.
func EstimatedEffortGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldEstimatedEffort, v))
}

// EstimatedEffortGTE applies the GTE predicate on the "estimated_effort" field.
func EstimatedEffortGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldEstimatedEffort, v))
}

// EstimatedEffortLT applies the LT predicate on the "estimated_effort" field.
func EstimatedEffortLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldEstimatedEffort, v))
}

// EstimatedEffortLTE applies the LTE predicate on the "estimated_effort" field.
func EstimatedEffortLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldEstimatedEffort, v))
}

// EstimatedEffortContains applies the Contains predicate on the "estimated_effort" field.
func EstimatedEffortContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldEstimatedEffort, v))
}

// EstimatedEffortHasPrefix applies the HasPrefix predicate on the "estimated_effort" field.
func EstimatedEffortHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldEstimatedEffort, v))
}

// EstimatedEffortHasSuffix applies the HasSuffix predicate on the "estimated_effort" field.
func EstimatedEffortHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldEstimatedEffort, v))
}

// EstimatedEffortIsNil applies the IsNil predicate on the "estimated_effort" field.
func EstimatedEffortIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldEstimatedEffort))
}

// EstimatedEffortNotNil applies the NotNil predicate on the "estimated_effort" field.
func EstimatedEffortNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldEstimatedEffort))
}

// EstimatedEffortEqualFold applies the EqualFold predicate on the "estimated_effort" field.
func EstimatedEffortEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldEstimatedEffort, v))
}

// EstimatedEffortContainsFold applies the ContainsFold predicate on the "estimated_effort" field.
func EstimatedEffortContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldEstimatedEffort, v))
}

// BranchNameEQ applies the EQ predicate on the "branch_name" field.
func BranchNameEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldBranchName, v))
}

// BranchNameNEQ applies the NEQ predicate on the "branch_name" field.
func BranchNameNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldBranchName, v))
}

// BranchNameIn applies the In predicate on the "branch_name" field.
func BranchNameIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldBranchName, vs...))
}

// BranchNameNotIn applies the NotIn predicate on the "branch_name" field.
func BranchNameNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldBranchName, vs...))
}

// BranchNameGT applies the GT predicate on the "branch_name" field.
func BranchNameGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldBranchName, v))
}

// BranchNameGTE applies the GTE predicate on the "branch_name" field.
func BranchNameGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldBranchName, v))
}

// BranchNameLT applies the LT predicate on the "branch_name" field.
func BranchNameLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldBranchName, v))
}

// BranchNameLTE applies the LTE predicate on the "branch_name" field.
func BranchNameLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldBranchName, v))
}

// BranchNameContains applies the Contains predicate on the "branch_name" field.
func BranchNameContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldBranchName, v))
}

// BranchNameHasPrefix applies the HasPrefix predicate on the "branch_name" field.
func BranchNameHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldBranchName, v))
}

// BranchNameHasSuffix applies the HasSuffix predicate on the "branch_name" field.
func BranchNameHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldBranchName, v))
}

// BranchNameIsNil applies the IsNil predicate on the "branch_name" field.
func BranchNameIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldBranchName))
}

// BranchNameNotNil applies the NotNil predicate on the "branch_name" field.
func BranchNameNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldBranchName))
}

// BranchNameEqualFold applies the EqualFold predicate on the "branch_name" field.
func BranchNameEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldBranchName, v))
}

// BranchNameContainsFold applies the ContainsFold predicate on the "branch_name" field.
func BranchNameContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldBranchName, v))
}

// CurrentDiffEQ applies the EQ predicate on the "current_diff" field.
func CurrentDiffEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCurrentDiff, v))
}

// CurrentDiffNEQ applies the NEQ predicate on the "current_diff" field.
func CurrentDiffNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCurrentDiff, v))
}

// CurrentDiffIn applies the In predicate on the "current_diff" field.
func CurrentDiffIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCurrentDiff, vs...))
}

// CurrentDiffNotIn applies the NotIn predicate on the "current_diff" field.
func CurrentDiffNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCurrentDiff, vs...))
}

// CurrentDiffGT applies the GT predicate on the "current_diff" field.
func CurrentDiffGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCurrentDiff, v))
}

// CurrentDiffGTE applies the GTE predicate on the "current_diff" field.
func CurrentDiffGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCurrentDiff, v))
}

// CurrentDiffLT applies the LT predicate on the "current_diff" field.
func CurrentDiffLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCurrentDiff, v))
}

// CurrentDiffLTE applies the LTE predicate on the "current_diff" field.
func CurrentDiffLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCurrentDiff, v))
}

// CurrentDiffContains applies the Contains predicate on the "current_diff" field.
func CurrentDiffContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCurrentDiff, v))
}

// CurrentDiffHasPrefix applies the HasPrefix predicate on the "current_diff" field.
func CurrentDiffHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCurrentDiff, v))
}

// CurrentDiffHasSuffix applies the HasSuffix predicate on the "current_diff" field.
func CurrentDiffHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCurrentDiff, v))
}

// CurrentDiffIsNil applies the IsNil predicate on the "current_diff" field.
func CurrentDiffIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCurrentDiff))
}

// CurrentDiffNotNil applies the NotNil predicate on the "current_diff" field.
func CurrentDiffNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCurrentDiff))
}

// CurrentDiffEqualFold applies the EqualFold predicate on the "current_diff" field.
func CurrentDiffEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCurrentDiff, v))
}

// CurrentDiffContainsFold applies the ContainsFold predicate on the "current_diff" field.
func CurrentDiffContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCurrentDiff, v))
}

// CommitMessageEQ applies the EQ predicate on the "commit_message" field.
func CommitMessageEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCommitMessage, v))
}

// CommitMessageNEQ applies the NEQ predicate on the "commit_message" field.
func CommitMessageNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCommitMessage, v))
}

// CommitMessageIn applies the In predicate on the "commit_message" field.
func CommitMessageIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCommitMessage, vs...))
}

// CommitMessageNotIn applies the NotIn predicate on the "commit_message" field.
func CommitMessageNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCommitMessage, vs...))
}

// CommitMessageGT applies the GT predicate on the "commit_message" field.
func CommitMessageGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCommitMessage, v))
}

// CommitMessageGTE applies the GTE predicate on the "commit_message" field.
func CommitMessageGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCommitMessage, v))
}

// CommitMessageLT applies the LT predicate on the "commit_message" field.
func CommitMessageLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCommitMessage, v))
}

// CommitMessageLTE applies the LTE predicate on the "commit_message" field.
func CommitMessageLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCommitMessage, v))
}

// CommitMessageContains applies the Contains predicate on the "commit_message" field.
func CommitMessageContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCommitMessage, v))
}

// CommitMessageHasPrefix applies the HasPrefix predicate on the "commit_message" field.
func CommitMessageHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCommitMessage, v))
}

// CommitMessageHasSuffix applies the HasSuffix predicate on the "commit_message" field.
func CommitMessageHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCommitMessage, v))
}

// CommitMessageIsNil applies the IsNil predicate on the "commit_message" field.
func CommitMessageIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCommitMessage))
}

// CommitMessageNotNil applies the NotNil predicate on the "commit_message" field.
func CommitMessageNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCommitMessage))
}

// CommitMessageEqualFold applies the EqualFold predicate on the "commit_message" field.
func CommitMessageEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCommitMessage, v))
}

// CommitMessageContainsFold applies the ContainsFold predicate on the "commit_message" field.
func CommitMessageContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCommitMessage, v))
}

// PrNumberEQ applies the EQ predicate on the "pr_number" field.
func PrNumberEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPrNumber, v))
}

// PrNumberNEQ applies the NEQ predicate on the "pr_number" field.
func PrNumberNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPrNumber, v))
}

// PrNumberIn applies the In predicate on the "pr_number" field.
func PrNumberIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPrNumber, vs...))
}

// PrNumberNotIn applies the NotIn predicate on the "pr_number" field.
func PrNumberNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPrNumber, vs...))
}

// PrNumberGT applies the GT predicate on the "pr_number" field.
func PrNumberGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPrNumber, v))
}

// PrNumberGTE applies the GTE predicate on the "pr_number" field.
func PrNumberGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPrNumber, v))
}

// PrNumberLT applies the LT predicate on the "pr_number" field.
func PrNumberLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPrNumber, v))
}

// PrNumberLTE applies the LTE predicate on the "pr_number" field.
func PrNumberLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPrNumber, v))
}

// PrNumberIsNil applies the IsNil predicate on the "pr_number" field.
func PrNumberIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPrNumber))
}

// PrNumberNotNil applies the NotNil predicate on the "pr_number" field.
func PrNumberNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPrNumber))
}

// PrURLEQ applies the EQ predicate on the "pr_url" field.
func PrURLEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPrURL, v))
}

// PrURLNEQ applies the NEQ predicate on the "pr_url" field.
func PrURLNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPrURL, v))
}

// PrURLIn applies the In predicate on the "pr_url" field.
func PrURLIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPrURL, vs...))
}

// PrURLNotIn applies the NotIn predicate on the "pr_url" field.
func PrURLNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPrURL, vs...))
}

// PrURLGT applies the GT predicate on the "pr_url" field.
func PrURLGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPrURL, v))
}

// PrURLGTE applies the GTE predicate on the "pr_url" field.
func PrURLGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPrURL, v))
}

// PrURLLT applies the LT predicate on the "pr_url" field.
func PrURLLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPrURL, v))
}

// PrURLLTE applies the LTE predicate on the "pr_url" field.
func PrURLLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPrURL, v))
}

// PrURLContains applies the Contains predicate on the "pr_url" field.
func PrURLContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldPrURL, v))
}

// PrURLHasPrefix applies the HasPrefix predicate on the "pr_url" field.
func PrURLHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldPrURL, v))
}

// PrURLHasSuffix applies the HasSuffix predicate on the "pr_url" field.
func PrURLHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldPrURL, v))
}

// PrURLIsNil applies the IsNil predicate on the "pr_url" field.
func PrURLIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPrURL))
}

// PrURLNotNil applies the NotNil predicate on the "pr_url" field.
func PrURLNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPrURL))
}

// PrURLEqualFold applies the EqualFold predicate on the "pr_url" field.
func PrURLEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldPrURL, v))
}

// PrURLContainsFold applies the ContainsFold predicate on the "pr_url" field.
func PrURLContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldPrURL, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldLastError, v))
}

// FailureKindEQ applies the EQ predicate on the "failure_kind" field.
func FailureKindEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFailureKind, v))
}

// FailureKindNEQ applies the NEQ predicate on the "failure_kind" field.
func FailureKindNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldFailureKind, v))
}

// FailureKindIn applies the In predicate on the "failure_kind" field.
func FailureKindIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldFailureKind, vs...))
}

// FailureKindNotIn applies the NotIn predicate on the "failure_kind" field.
func FailureKindNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldFailureKind, vs...))
}

// FailureKindGT applies the GT predicate on the "failure_kind" field.
func FailureKindGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldFailureKind, v))
}

// FailureKindGTE applies the GTE predicate on the "failure_kind" field.
func FailureKindGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldFailureKind, v))
}

// FailureKindLT applies the LT predicate on the "failure_kind" field.
func FailureKindLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldFailureKind, v))
}

// FailureKindLTE applies the LTE predicate on the "failure_kind" field.
func FailureKindLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldFailureKind, v))
}

// FailureKindContains applies the Contains predicate on the "failure_kind" field.
func FailureKindContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldFailureKind, v))
}

// FailureKindHasPrefix applies the HasPrefix predicate on the "failure_kind" field.
func FailureKindHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldFailureKind, v))
}

// FailureKindHasSuffix applies the HasSuffix predicate on the "failure_kind" field.
func FailureKindHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldFailureKind, v))
}

// FailureKindIsNil applies the IsNil predicate on the "failure_kind" field.
func FailureKindIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldFailureKind))
}

// FailureKindNotNil applies the NotNil predicate on the "failure_kind" field.
func FailureKindNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldFailureKind))
}

// FailureKindEqualFold applies the EqualFold predicate on the "failure_kind" field.
func FailureKindEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldFailureKind, v))
}

// FailureKindContainsFold applies the ContainsFold predicate on the "failure_kind" field.
func FailureKindContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldFailureKind, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldVersion, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCancelRequested, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldStartedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDeletedAt))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.TaskEvent) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.SessionMemory) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
