// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/coderelay-ai/coderelay/ent/predicate"
	"github.com/coderelay-ai/coderelay/ent/sessionmemory"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/ent/taskevent"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIssueTitle sets the "issue_title" field.
func (_u *TaskUpdate) SetIssueTitle(v string) *TaskUpdate {
	_u.mutation.SetIssueTitle(v)
	return _u
}

// SetNillableIssueTitle sets the "issue_title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIssueTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetIssueTitle(*v)
	}
	return _u
}

// ClearIssueTitle clears the value of the "issue_title" field.
func (_u *TaskUpdate) ClearIssueTitle() *TaskUpdate {
	_u.mutation.ClearIssueTitle()
	return _u
}

// SetIssueBody sets the "issue_body" field.
func (_u *TaskUpdate) SetIssueBody(v string) *TaskUpdate {
	_u.mutation.SetIssueBody(v)
	return _u
}

// SetNillableIssueBody sets the "issue_body" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIssueBody(v *string) *TaskUpdate {
	if v != nil {
		_u.SetIssueBody(*v)
	}
	return _u
}

// ClearIssueBody clears the value of the "issue_body" field.
func (_u *TaskUpdate) ClearIssueBody() *TaskUpdate {
	_u.mutation.ClearIssueBody()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWaitingOn sets the "waiting_on" field.
func (_u *TaskUpdate) SetWaitingOn(v task.WaitingOn) *TaskUpdate {
	_u.mutation.SetWaitingOn(v)
	return _u
}

// SetNillableWaitingOn sets the "waiting_on" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableWaitingOn(v *task.WaitingOn) *TaskUpdate {
	if v != nil {
		_u.SetWaitingOn(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *TaskUpdate) SetAttemptCount(v int) *TaskUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAttemptCount(v *int) *TaskUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *TaskUpdate) AddAttemptCount(v int) *TaskUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *TaskUpdate) SetMaxAttempts(v int) *TaskUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMaxAttempts(v *int) *TaskUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *TaskUpdate) AddMaxAttempts(v int) *TaskUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetIsOrchestrated sets the "is_orchestrated" field.
func (_u *TaskUpdate) SetIsOrchestrated(v bool) *TaskUpdate {
	_u.mutation.SetIsOrchestrated(v)
	return _u
}

// SetNillableIsOrchestrated sets the "is_orchestrated" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIsOrchestrated(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetIsOrchestrated(*v)
	}
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *TaskUpdate) SetDependsOn(v []string) *TaskUpdate {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *TaskUpdate) AppendDependsOn(v []string) *TaskUpdate {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *TaskUpdate) ClearDependsOn() *TaskUpdate {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetDefinitionOfDone sets the "definition_of_done" field.
func (_u *TaskUpdate) SetDefinitionOfDone(v []string) *TaskUpdate {
	_u.mutation.SetDefinitionOfDone(v)
	return _u
}

// AppendDefinitionOfDone appends value to the "definition_of_done" field.
func (_u *TaskUpdate) AppendDefinitionOfDone(v []string) *TaskUpdate {
	_u.mutation.AppendDefinitionOfDone(v)
	return _u
}

// ClearDefinitionOfDone clears the value of the "definition_of_done" field.
func (_u *TaskUpdate) ClearDefinitionOfDone() *TaskUpdate {
	_u.mutation.ClearDefinitionOfDone()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *TaskUpdate) SetPlan(v []string) *TaskUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *TaskUpdate) AppendPlan(v []string) *TaskUpdate {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *TaskUpdate) ClearPlan() *TaskUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetTargetFiles sets the "target_files" field.
func (_u *TaskUpdate) SetTargetFiles(v []string) *TaskUpdate {
	_u.mutation.SetTargetFiles(v)
	return _u
}

// AppendTargetFiles appends value to the "target_files" field.
func (_u *TaskUpdate) AppendTargetFiles(v []string) *TaskUpdate {
	_u.mutation.AppendTargetFiles(v)
	return _u
}

// ClearTargetFiles clears the value of the "target_files" field.
func (_u *TaskUpdate) ClearTargetFiles() *TaskUpdate {
	_u.mutation.ClearTargetFiles()
	return _u
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (_u *TaskUpdate) SetEstimatedComplexity(v task.EstimatedComplexity) *TaskUpdate {
	_u.mutation.SetEstimatedComplexity(v)
	return _u
}

// SetNillableEstimatedComplexity sets the "estimated_complexity" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableEstimatedComplexity(v *task.EstimatedComplexity) *TaskUpdate {
	if v != nil {
		_u.SetEstimatedComplexity(*v)
	}
	return _u
}

// ClearEstimatedComplexity clears the value of the "estimated_complexity" field.
func (_u *TaskUpdate) ClearEstimatedComplexity() *TaskUpdate {
	_u.mutation.ClearEstimatedComplexity()
	return _u
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (_u *TaskUpdate) SetEstimatedEffort(v string) *TaskUpdate {
	_u.mutation.SetEstimatedEffort(v)
	return _u
}

// SetNillableEstimatedEffort sets the "estimated_effort" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableEstimatedEffort(v *string) *TaskUpdate {
	if v != nil {
		_u.SetEstimatedEffort(*v)
	}
	return _u
}

// ClearEstimatedEffort clears the value of the "estimated_effort" field.
func (_u *TaskUpdate) ClearEstimatedEffort() *TaskUpdate {
	_u.mutation.ClearEstimatedEffort()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *TaskUpdate) SetBranchName(v string) *TaskUpdate {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableBranchName(v *string) *TaskUpdate {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *TaskUpdate) ClearBranchName() *TaskUpdate {
	_u.mutation.ClearBranchName()
	return _u
}

// SetCurrentDiff sets the "current_diff" field.
func (_u *TaskUpdate) SetCurrentDiff(v string) *TaskUpdate {
	_u.mutation.SetCurrentDiff(v)
	return _u
}

// SetNillableCurrentDiff sets the "current_diff" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCurrentDiff(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCurrentDiff(*v)
	}
	return _u
}

// ClearCurrentDiff clears the value of the "current_diff" field.
func (_u *TaskUpdate) ClearCurrentDiff() *TaskUpdate {
	_u.mutation.ClearCurrentDiff()
	return _u
}

// SetCommitMessage sets the "commit_message" field.
func (_u *TaskUpdate) SetCommitMessage(v string) *TaskUpdate {
	_u.mutation.SetCommitMessage(v)
	return _u
}

// SetNillableCommitMessage sets the "commit_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCommitMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCommitMessage(*v)
	}
	return _u
}

// ClearCommitMessage clears the value of the "commit_message" field.
func (_u *TaskUpdate) ClearCommitMessage() *TaskUpdate {
	_u.mutation.ClearCommitMessage()
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *TaskUpdate) SetPrNumber(v int) *TaskUpdate {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePrNumber(v *int) *TaskUpdate {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *TaskUpdate) AddPrNumber(v int) *TaskUpdate {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *TaskUpdate) ClearPrNumber() *TaskUpdate {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *TaskUpdate) SetPrURL(v string) *TaskUpdate {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePrURL(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *TaskUpdate) ClearPrURL() *TaskUpdate {
	_u.mutation.ClearPrURL()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TaskUpdate) SetLastError(v string) *TaskUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastError(v *string) *TaskUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TaskUpdate) ClearLastError() *TaskUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetFailureKind sets the "failure_kind" field.
func (_u *TaskUpdate) SetFailureKind(v string) *TaskUpdate {
	_u.mutation.SetFailureKind(v)
	return _u
}

// SetNillableFailureKind sets the "failure_kind" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableFailureKind(v *string) *TaskUpdate {
	if v != nil {
		_u.SetFailureKind(*v)
	}
	return _u
}

// ClearFailureKind clears the value of the "failure_kind" field.
func (_u *TaskUpdate) ClearFailureKind() *TaskUpdate {
	_u.mutation.ClearFailureKind()
	return _u
}

// SetVersion sets the "version" field.
func (_u *TaskUpdate) SetVersion(v int) *TaskUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableVersion(v *int) *TaskUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TaskUpdate) AddVersion(v int) *TaskUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TaskUpdate) SetPodID(v string) *TaskUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePodID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TaskUpdate) ClearPodID() *TaskUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdate) SetLastHeartbeatAt(v time.Time) *TaskUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdate) ClearLastHeartbeatAt() *TaskUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *TaskUpdate) SetCancelRequested(v bool) *TaskUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCancelRequested(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TaskUpdate) SetDeletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDeletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TaskUpdate) ClearDeletedAt() *TaskUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by IDs.
func (_u *TaskUpdate) AddEventIDs(ids ...int) *TaskUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the TaskEvent entity.
func (_u *TaskUpdate) AddEvents(v ...*TaskEvent) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetSessionID sets the "session" edge to the SessionMemory entity by ID.
func (_u *TaskUpdate) SetSessionID(id string) *TaskUpdate {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetNillableSessionID sets the "session" edge to the SessionMemory entity by ID if the given value is not nil.
func (_u *TaskUpdate) SetNillableSessionID(id *string) *TaskUpdate {
	if id != nil {
		_u = _u.SetSessionID(*id)
	}
	return _u
}

// SetSession sets the "session" edge to the SessionMemory entity.
func (_u *TaskUpdate) SetSession(v *SessionMemory) *TaskUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the TaskEvent entity.
func (_u *TaskUpdate) ClearEvents() *TaskUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to TaskEvent entities by IDs.
func (_u *TaskUpdate) RemoveEventIDs(ids ...int) *TaskUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to TaskEvent entities.
func (_u *TaskUpdate) RemoveEvents(v ...*TaskEvent) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearSession clears the "session" edge to the SessionMemory entity.
func (_u *TaskUpdate) ClearSession() *TaskUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WaitingOn(); ok {
		if err := task.WaitingOnValidator(v); err != nil {
			return &ValidationError{Name: "waiting_on", err: fmt.Errorf(`ent: validator failed for field "Task.waiting_on": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedComplexity(); ok {
		if err := task.EstimatedComplexityValidator(v); err != nil {
			return &ValidationError{Name: "estimated_complexity", err: fmt.Errorf(`ent: validator failed for field "Task.estimated_complexity": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IssueTitle(); ok {
		_spec.SetField(task.FieldIssueTitle, field.TypeString, value)
	}
	if _u.mutation.IssueTitleCleared() {
		_spec.ClearField(task.FieldIssueTitle, field.TypeString)
	}
	if value, ok := _u.mutation.IssueBody(); ok {
		_spec.SetField(task.FieldIssueBody, field.TypeString, value)
	}
	if _u.mutation.IssueBodyCleared() {
		_spec.ClearField(task.FieldIssueBody, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WaitingOn(); ok {
		_spec.SetField(task.FieldWaitingOn, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(task.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(task.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if _u.mutation.SubtaskIndexCleared() {
		_spec.ClearField(task.FieldSubtaskIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.IsOrchestrated(); ok {
		_spec.SetField(task.FieldIsOrchestrated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(task.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(task.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.DefinitionOfDone(); ok {
		_spec.SetField(task.FieldDefinitionOfDone, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDefinitionOfDone(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDefinitionOfDone, value)
		})
	}
	if _u.mutation.DefinitionOfDoneCleared() {
		_spec.ClearField(task.FieldDefinitionOfDone, field.TypeJSON)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(task.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(task.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetFiles(); ok {
		_spec.SetField(task.FieldTargetFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTargetFiles, value)
		})
	}
	if _u.mutation.TargetFilesCleared() {
		_spec.ClearField(task.FieldTargetFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.EstimatedComplexity(); ok {
		_spec.SetField(task.FieldEstimatedComplexity, field.TypeEnum, value)
	}
	if _u.mutation.EstimatedComplexityCleared() {
		_spec.ClearField(task.FieldEstimatedComplexity, field.TypeEnum)
	}
	if value, ok := _u.mutation.EstimatedEffort(); ok {
		_spec.SetField(task.FieldEstimatedEffort, field.TypeString, value)
	}
	if _u.mutation.EstimatedEffortCleared() {
		_spec.ClearField(task.FieldEstimatedEffort, field.TypeString)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(task.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(task.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentDiff(); ok {
		_spec.SetField(task.FieldCurrentDiff, field.TypeString, value)
	}
	if _u.mutation.CurrentDiffCleared() {
		_spec.ClearField(task.FieldCurrentDiff, field.TypeString)
	}
	if value, ok := _u.mutation.CommitMessage(); ok {
		_spec.SetField(task.FieldCommitMessage, field.TypeString, value)
	}
	if _u.mutation.CommitMessageCleared() {
		_spec.ClearField(task.FieldCommitMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(task.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(task.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(task.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(task.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(task.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(task.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(task.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.FailureKind(); ok {
		_spec.SetField(task.FieldFailureKind, field.TypeString, value)
	}
	if _u.mutation.FailureKindCleared() {
		_spec.ClearField(task.FieldFailureKind, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(task.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(task.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(task.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(task.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(task.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(task.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(task.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.SessionTable,
			Columns: []string{task.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.SessionTable,
			Columns: []string{task.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetIssueTitle sets the "issue_title" field.
func (_u *TaskUpdateOne) SetIssueTitle(v string) *TaskUpdateOne {
	_u.mutation.SetIssueTitle(v)
	return _u
}

// SetNillableIssueTitle sets the "issue_title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIssueTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetIssueTitle(*v)
	}
	return _u
}

// ClearIssueTitle clears the value of the "issue_title" field.
func (_u *TaskUpdateOne) ClearIssueTitle() *TaskUpdateOne {
	_u.mutation.ClearIssueTitle()
	return _u
}

// SetIssueBody sets the "issue_body" field.
func (_u *TaskUpdateOne) SetIssueBody(v string) *TaskUpdateOne {
	_u.mutation.SetIssueBody(v)
	return _u
}

// SetNillableIssueBody sets the "issue_body" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIssueBody(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetIssueBody(*v)
	}
	return _u
}

// ClearIssueBody clears the value of the "issue_body" field.
func (_u *TaskUpdateOne) ClearIssueBody() *TaskUpdateOne {
	_u.mutation.ClearIssueBody()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWaitingOn sets the "waiting_on" field.
func (_u *TaskUpdateOne) SetWaitingOn(v task.WaitingOn) *TaskUpdateOne {
	_u.mutation.SetWaitingOn(v)
	return _u
}

// SetNillableWaitingOn sets the "waiting_on" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableWaitingOn(v *task.WaitingOn) *TaskUpdateOne {
	if v != nil {
		_u.SetWaitingOn(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *TaskUpdateOne) SetAttemptCount(v int) *TaskUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAttemptCount(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *TaskUpdateOne) AddAttemptCount(v int) *TaskUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *TaskUpdateOne) SetMaxAttempts(v int) *TaskUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMaxAttempts(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *TaskUpdateOne) AddMaxAttempts(v int) *TaskUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetIsOrchestrated sets the "is_orchestrated" field.
func (_u *TaskUpdateOne) SetIsOrchestrated(v bool) *TaskUpdateOne {
	_u.mutation.SetIsOrchestrated(v)
	return _u
}

// SetNillableIsOrchestrated sets the "is_orchestrated" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIsOrchestrated(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetIsOrchestrated(*v)
	}
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *TaskUpdateOne) SetDependsOn(v []string) *TaskUpdateOne {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *TaskUpdateOne) AppendDependsOn(v []string) *TaskUpdateOne {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *TaskUpdateOne) ClearDependsOn() *TaskUpdateOne {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetDefinitionOfDone sets the "definition_of_done" field.
func (_u *TaskUpdateOne) SetDefinitionOfDone(v []string) *TaskUpdateOne {
	_u.mutation.SetDefinitionOfDone(v)
	return _u
}

// AppendDefinitionOfDone appends value to the "definition_of_done" field.
func (_u *TaskUpdateOne) AppendDefinitionOfDone(v []string) *TaskUpdateOne {
	_u.mutation.AppendDefinitionOfDone(v)
	return _u
}

// ClearDefinitionOfDone clears the value of the "definition_of_done" field.
func (_u *TaskUpdateOne) ClearDefinitionOfDone() *TaskUpdateOne {
	_u.mutation.ClearDefinitionOfDone()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *TaskUpdateOne) SetPlan(v []string) *TaskUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *TaskUpdateOne) AppendPlan(v []string) *TaskUpdateOne {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *TaskUpdateOne) ClearPlan() *TaskUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetTargetFiles sets the "target_files" field.
func (_u *TaskUpdateOne) SetTargetFiles(v []string) *TaskUpdateOne {
	_u.mutation.SetTargetFiles(v)
	return _u
}

// AppendTargetFiles appends value to the "target_files" field.
func (_u *TaskUpdateOne) AppendTargetFiles(v []string) *TaskUpdateOne {
	_u.mutation.AppendTargetFiles(v)
	return _u
}

// ClearTargetFiles clears the value of the "target_files" field.
func (_u *TaskUpdateOne) ClearTargetFiles() *TaskUpdateOne {
	_u.mutation.ClearTargetFiles()
	return _u
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (_u *TaskUpdateOne) SetEstimatedComplexity(v task.EstimatedComplexity) *TaskUpdateOne {
	_u.mutation.SetEstimatedComplexity(v)
	return _u
}

// SetNillableEstimatedComplexity sets the "estimated_complexity" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableEstimatedComplexity(v *task.EstimatedComplexity) *TaskUpdateOne {
	if v != nil {
		_u.SetEstimatedComplexity(*v)
	}
	return _u
}

// ClearEstimatedComplexity clears the value of the "estimated_complexity" field.
func (_u *TaskUpdateOne) ClearEstimatedComplexity() *TaskUpdateOne {
	_u.mutation.ClearEstimatedComplexity()
	return _u
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (_u *TaskUpdateOne) SetEstimatedEffort(v string) *TaskUpdateOne {
	_u.mutation.SetEstimatedEffort(v)
	return _u
}

// SetNillableEstimatedEffort sets the "estimated_effort" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableEstimatedEffort(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetEstimatedEffort(*v)
	}
	return _u
}

// ClearEstimatedEffort clears the value of the "estimated_effort" field.
func (_u *TaskUpdateOne) ClearEstimatedEffort() *TaskUpdateOne {
	_u.mutation.ClearEstimatedEffort()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *TaskUpdateOne) SetBranchName(v string) *TaskUpdateOne {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableBranchName(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *TaskUpdateOne) ClearBranchName() *TaskUpdateOne {
	_u.mutation.ClearBranchName()
	return _u
}

// SetCurrentDiff sets the "current_diff" field.
func (_u *TaskUpdateOne) SetCurrentDiff(v string) *TaskUpdateOne {
	_u.mutation.SetCurrentDiff(v)
	return _u
}

// SetNillableCurrentDiff sets the "current_diff" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCurrentDiff(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCurrentDiff(*v)
	}
	return _u
}

// ClearCurrentDiff clears the value of the "current_diff" field.
func (_u *TaskUpdateOne) ClearCurrentDiff() *TaskUpdateOne {
	_u.mutation.ClearCurrentDiff()
	return _u
}

// SetCommitMessage sets the "commit_message" field.
func (_u *TaskUpdateOne) SetCommitMessage(v string) *TaskUpdateOne {
	_u.mutation.SetCommitMessage(v)
	return _u
}

// SetNillableCommitMessage sets the "commit_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCommitMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCommitMessage(*v)
	}
	return _u
}

// ClearCommitMessage clears the value of the "commit_message" field.
func (_u *TaskUpdateOne) ClearCommitMessage() *TaskUpdateOne {
	_u.mutation.ClearCommitMessage()
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *TaskUpdateOne) SetPrNumber(v int) *TaskUpdateOne {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePrNumber(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *TaskUpdateOne) AddPrNumber(v int) *TaskUpdateOne {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *TaskUpdateOne) ClearPrNumber() *TaskUpdateOne {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *TaskUpdateOne) SetPrURL(v string) *TaskUpdateOne {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePrURL(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *TaskUpdateOne) ClearPrURL() *TaskUpdateOne {
	_u.mutation.ClearPrURL()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TaskUpdateOne) SetLastError(v string) *TaskUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastError(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TaskUpdateOne) ClearLastError() *TaskUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetFailureKind sets the "failure_kind" field.
func (_u *TaskUpdateOne) SetFailureKind(v string) *TaskUpdateOne {
	_u.mutation.SetFailureKind(v)
	return _u
}

// SetNillableFailureKind sets the "failure_kind" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableFailureKind(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetFailureKind(*v)
	}
	return _u
}

// ClearFailureKind clears the value of the "failure_kind" field.
func (_u *TaskUpdateOne) ClearFailureKind() *TaskUpdateOne {
	_u.mutation.ClearFailureKind()
	return _u
}

// SetVersion sets the "version" field.
func (_u *TaskUpdateOne) SetVersion(v int) *TaskUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableVersion(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TaskUpdateOne) AddVersion(v int) *TaskUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TaskUpdateOne) SetPodID(v string) *TaskUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePodID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TaskUpdateOne) ClearPodID() *TaskUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) SetLastHeartbeatAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) ClearLastHeartbeatAt() *TaskUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *TaskUpdateOne) SetCancelRequested(v bool) *TaskUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCancelRequested(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TaskUpdateOne) SetDeletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDeletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TaskUpdateOne) ClearDeletedAt() *TaskUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by IDs.
func (_u *TaskUpdateOne) AddEventIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the TaskEvent entity.
func (_u *TaskUpdateOne) AddEvents(v ...*TaskEvent) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetSessionID sets the "session" edge to the SessionMemory entity by ID.
func (_u *TaskUpdateOne) SetSessionID(id string) *TaskUpdateOne {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetNillableSessionID sets the "session" edge to the SessionMemory entity by ID if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSessionID(id *string) *TaskUpdateOne {
	if id != nil {
		_u = _u.SetSessionID(*id)
	}
	return _u
}

// SetSession sets the "session" edge to the SessionMemory entity.
func (_u *TaskUpdateOne) SetSession(v *SessionMemory) *TaskUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the TaskEvent entity.
func (_u *TaskUpdateOne) ClearEvents() *TaskUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to TaskEvent entities by IDs.
func (_u *TaskUpdateOne) RemoveEventIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to TaskEvent entities.
func (_u *TaskUpdateOne) RemoveEvents(v ...*TaskEvent) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearSession clears the "session" edge to the SessionMemory entity.
func (_u *TaskUpdateOne) ClearSession() *TaskUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WaitingOn(); ok {
		if err := task.WaitingOnValidator(v); err != nil {
			return &ValidationError{Name: "waiting_on", err: fmt.Errorf(`ent: validator failed for field "Task.waiting_on": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedComplexity(); ok {
		if err := task.EstimatedComplexityValidator(v); err != nil {
			return &ValidationError{Name: "estimated_complexity", err: fmt.Errorf(`ent: validator failed for field "Task.estimated_complexity": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IssueTitle(); ok {
		_spec.SetField(task.FieldIssueTitle, field.TypeString, value)
	}
	if _u.mutation.IssueTitleCleared() {
		_spec.ClearField(task.FieldIssueTitle, field.TypeString)
	}
	if value, ok := _u.mutation.IssueBody(); ok {
		_spec.SetField(task.FieldIssueBody, field.TypeString, value)
	}
	if _u.mutation.IssueBodyCleared() {
		_spec.ClearField(task.FieldIssueBody, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WaitingOn(); ok {
		_spec.SetField(task.FieldWaitingOn, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(task.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(task.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(task.FieldMaxAttempts, field.TypeInt, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if _u.mutation.SubtaskIndexCleared() {
		_spec.ClearField(task.FieldSubtaskIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.IsOrchestrated(); ok {
		_spec.SetField(task.FieldIsOrchestrated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(task.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(task.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.DefinitionOfDone(); ok {
		_spec.SetField(task.FieldDefinitionOfDone, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDefinitionOfDone(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldDefinitionOfDone, value)
		})
	}
	if _u.mutation.DefinitionOfDoneCleared() {
		_spec.ClearField(task.FieldDefinitionOfDone, field.TypeJSON)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(task.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(task.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.TargetFiles(); ok {
		_spec.SetField(task.FieldTargetFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTargetFiles, value)
		})
	}
	if _u.mutation.TargetFilesCleared() {
		_spec.ClearField(task.FieldTargetFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.EstimatedComplexity(); ok {
		_spec.SetField(task.FieldEstimatedComplexity, field.TypeEnum, value)
	}
	if _u.mutation.EstimatedComplexityCleared() {
		_spec.ClearField(task.FieldEstimatedComplexity, field.TypeEnum)
	}
	if value, ok := _u.mutation.EstimatedEffort(); ok {
		_spec.SetField(task.FieldEstimatedEffort, field.TypeString, value)
	}
	if _u.mutation.EstimatedEffortCleared() {
		_spec.ClearField(task.FieldEstimatedEffort, field.TypeString)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(task.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(task.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentDiff(); ok {
		_spec.SetField(task.FieldCurrentDiff, field.TypeString, value)
	}
	if _u.mutation.CurrentDiffCleared() {
		_spec.ClearField(task.FieldCurrentDiff, field.TypeString)
	}
	if value, ok := _u.mutation.CommitMessage(); ok {
		_spec.SetField(task.FieldCommitMessage, field.TypeString, value)
	}
	if _u.mutation.CommitMessageCleared() {
		_spec.ClearField(task.FieldCommitMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(task.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(task.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(task.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(task.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(task.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(task.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(task.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.FailureKind(); ok {
		_spec.SetField(task.FieldFailureKind, field.TypeString, value)
	}
	if _u.mutation.FailureKindCleared() {
		_spec.ClearField(task.FieldFailureKind, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(task.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(task.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(task.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(task.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(task.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(task.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(task.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.SessionTable,
			Columns: []string{task.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.SessionTable,
			Columns: []string{task.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
