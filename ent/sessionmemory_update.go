// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/coderelay-ai/coderelay/ent/predicate"
	"github.com/coderelay-ai/coderelay/ent/sessionmemory"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

// SessionMemoryUpdate is the builder for updating SessionMemory entities.
type SessionMemoryUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMemoryMutation
}

// Where appends a list predicates to the SessionMemoryUpdate builder.
func (_u *SessionMemoryUpdate) Where(ps ...predicate.SessionMemory) *SessionMemoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *SessionMemoryUpdate) SetPhase(v string) *SessionMemoryUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillablePhase(v *string) *SessionMemoryUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *SessionMemoryUpdate) SetContext(v models.SessionContext) *SessionMemoryUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableContext(v *models.SessionContext) *SessionMemoryUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *SessionMemoryUpdate) ClearContext() *SessionMemoryUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SessionMemoryUpdate) SetAttempts(v models.SessionAttempts) *SessionMemoryUpdate {
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableAttempts(v *models.SessionAttempts) *SessionMemoryUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// ClearAttempts clears the value of the "attempts" field.
func (_u *SessionMemoryUpdate) ClearAttempts() *SessionMemoryUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *SessionMemoryUpdate) SetOutputs(v models.AgentOutputs) *SessionMemoryUpdate {
	_u.mutation.SetOutputs(v)
	return _u
}

// SetNillableOutputs sets the "outputs" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableOutputs(v *models.AgentOutputs) *SessionMemoryUpdate {
	if v != nil {
		_u.SetOutputs(*v)
	}
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *SessionMemoryUpdate) ClearOutputs() *SessionMemoryUpdate {
	_u.mutation.ClearOutputs()
	return _u
}

// SetOrchestration sets the "orchestration" field.
func (_u *SessionMemoryUpdate) SetOrchestration(v *models.OrchestrationState) *SessionMemoryUpdate {
	_u.mutation.SetOrchestration(v)
	return _u
}

// ClearOrchestration clears the value of the "orchestration" field.
func (_u *SessionMemoryUpdate) ClearOrchestration() *SessionMemoryUpdate {
	_u.mutation.ClearOrchestration()
	return _u
}

// SetSubtaskID sets the "subtask_id" field.
func (_u *SessionMemoryUpdate) SetSubtaskID(v string) *SessionMemoryUpdate {
	_u.mutation.SetSubtaskID(v)
	return _u
}

// SetNillableSubtaskID sets the "subtask_id" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableSubtaskID(v *string) *SessionMemoryUpdate {
	if v != nil {
		_u.SetSubtaskID(*v)
	}
	return _u
}

// ClearSubtaskID clears the value of the "subtask_id" field.
func (_u *SessionMemoryUpdate) ClearSubtaskID() *SessionMemoryUpdate {
	_u.mutation.ClearSubtaskID()
	return _u
}

// SetParentSessionID sets the "parent_session_id" field.
func (_u *SessionMemoryUpdate) SetParentSessionID(v string) *SessionMemoryUpdate {
	_u.mutation.SetParentSessionID(v)
	return _u
}

// SetNillableParentSessionID sets the "parent_session_id" field if the given value is not nil.
func (_u *SessionMemoryUpdate) SetNillableParentSessionID(v *string) *SessionMemoryUpdate {
	if v != nil {
		_u.SetParentSessionID(*v)
	}
	return _u
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (_u *SessionMemoryUpdate) ClearParentSessionID() *SessionMemoryUpdate {
	_u.mutation.ClearParentSessionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionMemoryUpdate) SetUpdatedAt(v time.Time) *SessionMemoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMemoryMutation object of the builder.
func (_u *SessionMemoryUpdate) Mutation() *SessionMemoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionMemoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionMemoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionMemoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionMemoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionMemoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionmemory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionMemoryUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionMemory.task"`)
	}
	return nil
}

func (_u *SessionMemoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionmemory.Table, sessionmemory.Columns, sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(sessionmemory.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(sessionmemory.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(sessionmemory.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(sessionmemory.FieldAttempts, field.TypeJSON, value)
	}
	if _u.mutation.AttemptsCleared() {
		_spec.ClearField(sessionmemory.FieldAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(sessionmemory.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(sessionmemory.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Orchestration(); ok {
		_spec.SetField(sessionmemory.FieldOrchestration, field.TypeJSON, value)
	}
	if _u.mutation.OrchestrationCleared() {
		_spec.ClearField(sessionmemory.FieldOrchestration, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubtaskID(); ok {
		_spec.SetField(sessionmemory.FieldSubtaskID, field.TypeString, value)
	}
	if _u.mutation.SubtaskIDCleared() {
		_spec.ClearField(sessionmemory.FieldSubtaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentSessionID(); ok {
		_spec.SetField(sessionmemory.FieldParentSessionID, field.TypeString, value)
	}
	if _u.mutation.ParentSessionIDCleared() {
		_spec.ClearField(sessionmemory.FieldParentSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionmemory.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionMemoryUpdateOne is the builder for updating a single SessionMemory entity.
type SessionMemoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMemoryMutation
}

// SetPhase sets the "phase" field.
func (_u *SessionMemoryUpdateOne) SetPhase(v string) *SessionMemoryUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillablePhase(v *string) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *SessionMemoryUpdateOne) SetContext(v models.SessionContext) *SessionMemoryUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableContext(v *models.SessionContext) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *SessionMemoryUpdateOne) ClearContext() *SessionMemoryUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SessionMemoryUpdateOne) SetAttempts(v models.SessionAttempts) *SessionMemoryUpdateOne {
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableAttempts(v *models.SessionAttempts) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// ClearAttempts clears the value of the "attempts" field.
func (_u *SessionMemoryUpdateOne) ClearAttempts() *SessionMemoryUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *SessionMemoryUpdateOne) SetOutputs(v models.AgentOutputs) *SessionMemoryUpdateOne {
	_u.mutation.SetOutputs(v)
	return _u
}

// SetNillableOutputs sets the "outputs" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableOutputs(v *models.AgentOutputs) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetOutputs(*v)
	}
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *SessionMemoryUpdateOne) ClearOutputs() *SessionMemoryUpdateOne {
	_u.mutation.ClearOutputs()
	return _u
}

// SetOrchestration sets the "orchestration" field.
func (_u *SessionMemoryUpdateOne) SetOrchestration(v *models.OrchestrationState) *SessionMemoryUpdateOne {
	_u.mutation.SetOrchestration(v)
	return _u
}

// ClearOrchestration clears the value of the "orchestration" field.
func (_u *SessionMemoryUpdateOne) ClearOrchestration() *SessionMemoryUpdateOne {
	_u.mutation.ClearOrchestration()
	return _u
}

// SetSubtaskID sets the "subtask_id" field.
func (_u *SessionMemoryUpdateOne) SetSubtaskID(v string) *SessionMemoryUpdateOne {
	_u.mutation.SetSubtaskID(v)
	return _u
}

// SetNillableSubtaskID sets the "subtask_id" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableSubtaskID(v *string) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetSubtaskID(*v)
	}
	return _u
}

// ClearSubtaskID clears the value of the "subtask_id" field.
func (_u *SessionMemoryUpdateOne) ClearSubtaskID() *SessionMemoryUpdateOne {
	_u.mutation.ClearSubtaskID()
	return _u
}

// SetParentSessionID sets the "parent_session_id" field.
func (_u *SessionMemoryUpdateOne) SetParentSessionID(v string) *SessionMemoryUpdateOne {
	_u.mutation.SetParentSessionID(v)
	return _u
}

// SetNillableParentSessionID sets the "parent_session_id" field if the given value is not nil.
func (_u *SessionMemoryUpdateOne) SetNillableParentSessionID(v *string) *SessionMemoryUpdateOne {
	if v != nil {
		_u.SetParentSessionID(*v)
	}
	return _u
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (_u *SessionMemoryUpdateOne) ClearParentSessionID() *SessionMemoryUpdateOne {
	_u.mutation.ClearParentSessionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionMemoryUpdateOne) SetUpdatedAt(v time.Time) *SessionMemoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMemoryMutation object of the builder.
func (_u *SessionMemoryUpdateOne) Mutation() *SessionMemoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionMemoryUpdate builder.
func (_u *SessionMemoryUpdateOne) Where(ps ...predicate.SessionMemory) *SessionMemoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionMemoryUpdateOne) Select(field string, fields ...string) *SessionMemoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionMemory entity.
func (_u *SessionMemoryUpdateOne) Save(ctx context.Context) (*SessionMemory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionMemoryUpdateOne) SaveX(ctx context.Context) *SessionMemory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionMemoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionMemoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionMemoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionmemory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionMemoryUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionMemory.task"`)
	}
	return nil
}

func (_u *SessionMemoryUpdateOne) sqlSave(ctx context.Context) (_node *SessionMemory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionmemory.Table, sessionmemory.Columns, sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionMemory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionmemory.FieldID)
		for _, f := range fields {
			if !sessionmemory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionmemory.FieldID {
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
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(sessionmemory.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(sessionmemory.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(sessionmemory.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(sessionmemory.FieldAttempts, field.TypeJSON, value)
	}
	if _u.mutation.AttemptsCleared() {
		_spec.ClearField(sessionmemory.FieldAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(sessionmemory.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(sessionmemory.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Orchestration(); ok {
		_spec.SetField(sessionmemory.FieldOrchestration, field.TypeJSON, value)
	}
	if _u.mutation.OrchestrationCleared() {
		_spec.ClearField(sessionmemory.FieldOrchestration, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubtaskID(); ok {
		_spec.SetField(sessionmemory.FieldSubtaskID, field.TypeString, value)
	}
	if _u.mutation.SubtaskIDCleared() {
		_spec.ClearField(sessionmemory.FieldSubtaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentSessionID(); ok {
		_spec.SetField(sessionmemory.FieldParentSessionID, field.TypeString, value)
	}
	if _u.mutation.ParentSessionIDCleared() {
		_spec.ClearField(sessionmemory.FieldParentSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionmemory.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SessionMemory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
