// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/coderelay-ai/coderelay/ent/sessionmemory"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

// SessionMemoryCreate is the builder for creating a SessionMemory entity.
type SessionMemoryCreate struct {
	config
	mutation *SessionMemoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *SessionMemoryCreate) SetTaskID(v string) *SessionMemoryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *SessionMemoryCreate) SetPhase(v string) *SessionMemoryCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillablePhase(v *string) *SessionMemoryCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *SessionMemoryCreate) SetContext(v models.SessionContext) *SessionMemoryCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableContext(v *models.SessionContext) *SessionMemoryCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *SessionMemoryCreate) SetAttempts(v models.SessionAttempts) *SessionMemoryCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableAttempts(v *models.SessionAttempts) *SessionMemoryCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetOutputs sets the "outputs" field.
func (_c *SessionMemoryCreate) SetOutputs(v models.AgentOutputs) *SessionMemoryCreate {
	_c.mutation.SetOutputs(v)
	return _c
}

// SetNillableOutputs sets the "outputs" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableOutputs(v *models.AgentOutputs) *SessionMemoryCreate {
	if v != nil {
		_c.SetOutputs(*v)
	}
	return _c
}

// SetOrchestration sets the "orchestration" field.
func (_c *SessionMemoryCreate) SetOrchestration(v *models.OrchestrationState) *SessionMemoryCreate {
	_c.mutation.SetOrchestration(v)
	return _c
}

// SetSubtaskID sets the "subtask_id" field.
func (_c *SessionMemoryCreate) SetSubtaskID(v string) *SessionMemoryCreate {
	_c.mutation.SetSubtaskID(v)
	return _c
}

// SetNillableSubtaskID sets the "subtask_id" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableSubtaskID(v *string) *SessionMemoryCreate {
	if v != nil {
		_c.SetSubtaskID(*v)
	}
	return _c
}

// SetParentSessionID sets the "parent_session_id" field.
func (_c *SessionMemoryCreate) SetParentSessionID(v string) *SessionMemoryCreate {
	_c.mutation.SetParentSessionID(v)
	return _c
}

// SetNillableParentSessionID sets the "parent_session_id" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableParentSessionID(v *string) *SessionMemoryCreate {
	if v != nil {
		_c.SetParentSessionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionMemoryCreate) SetCreatedAt(v time.Time) *SessionMemoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableCreatedAt(v *time.Time) *SessionMemoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionMemoryCreate) SetUpdatedAt(v time.Time) *SessionMemoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionMemoryCreate) SetNillableUpdatedAt(v *time.Time) *SessionMemoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionMemoryCreate) SetID(v string) *SessionMemoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *SessionMemoryCreate) SetTask(v *Task) *SessionMemoryCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the SessionMemoryMutation object of the builder.
func (_c *SessionMemoryCreate) Mutation() *SessionMemoryMutation {
	return _c.mutation
}

// Save creates the SessionMemory in the database.
func (_c *SessionMemoryCreate) Save(ctx context.Context) (*SessionMemory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionMemoryCreate) SaveX(ctx context.Context) *SessionMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMemoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMemoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionMemoryCreate) defaults() {
	if _, ok := _c.mutation.Phase(); !ok {
		v := sessionmemory.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionmemory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionmemory.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionMemoryCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "SessionMemory.task_id"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "SessionMemory.phase"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionMemory.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionMemory.updated_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "SessionMemory.task"`)}
	}
	return nil
}

func (_c *SessionMemoryCreate) sqlSave(ctx context.Context) (*SessionMemory, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SessionMemory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionMemoryCreate) createSpec() (*SessionMemory, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionMemory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionmemory.Table, sqlgraph.NewFieldSpec(sessionmemory.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(sessionmemory.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(sessionmemory.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(sessionmemory.FieldAttempts, field.TypeJSON, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Outputs(); ok {
		_spec.SetField(sessionmemory.FieldOutputs, field.TypeJSON, value)
		_node.Outputs = value
	}
	if value, ok := _c.mutation.Orchestration(); ok {
		_spec.SetField(sessionmemory.FieldOrchestration, field.TypeJSON, value)
		_node.Orchestration = value
	}
	if value, ok := _c.mutation.SubtaskID(); ok {
		_spec.SetField(sessionmemory.FieldSubtaskID, field.TypeString, value)
		_node.SubtaskID = &value
	}
	if value, ok := _c.mutation.ParentSessionID(); ok {
		_spec.SetField(sessionmemory.FieldParentSessionID, field.TypeString, value)
		_node.ParentSessionID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionmemory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionmemory.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sessionmemory.TaskTable,
			Columns: []string{sessionmemory.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionMemory.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionMemoryUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionMemoryCreate) OnConflict(opts ...sql.ConflictOption) *SessionMemoryUpsertOne {
	_c.conflict = opts
	return &SessionMemoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionMemory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionMemoryCreate) OnConflictColumns(columns ...string) *SessionMemoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionMemoryUpsertOne{
		create: _c,
	}
}

type (
	// SessionMemoryUpsertOne is the builder for "upsert"-ing
	//  one SessionMemory node.
	SessionMemoryUpsertOne struct {
		create *SessionMemoryCreate
	}

	// SessionMemoryUpsert is the "OnConflict" setter.
	SessionMemoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetPhase sets the "phase" field.
func (u *SessionMemoryUpsert) SetPhase(v string) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldPhase, v)
	return u
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdatePhase() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldPhase)
	return u
}

// SetContext sets the "context" field.
func (u *SessionMemoryUpsert) SetContext(v models.SessionContext) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldContext, v)
	return u
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateContext() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldContext)
	return u
}

// ClearContext clears the value of the "context" field.
func (u *SessionMemoryUpsert) ClearContext() *SessionMemoryUpsert {
	u.SetNull(sessionmemory.FieldContext)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *SessionMemoryUpsert) SetAttempts(v models.SessionAttempts) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateAttempts() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldAttempts)
	return u
}

// ClearAttempts clears the value of the "attempts" field.
func (u *SessionMemoryUpsert) ClearAttempts() *SessionMemoryUpsert {
	u.SetNull(sessionmemory.FieldAttempts)
	return u
}

// SetOutputs sets the "outputs" field.
func (u *SessionMemoryUpsert) SetOutputs(v models.AgentOutputs) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldOutputs, v)
	return u
}

// UpdateOutputs sets the "outputs" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateOutputs() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldOutputs)
	return u
}

// ClearOutputs clears the value of the "outputs" field.
func (u *SessionMemoryUpsert) ClearOutputs() *SessionMemoryUpsert {
	u.SetNull(sessionmemory.FieldOutputs)
	return u
}

// SetOrchestration sets the "orchestration" field.
func (u *SessionMemoryUpsert) SetOrchestration(v *models.OrchestrationState) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldOrchestration, v)
	return u
}

// UpdateOrchestration sets the "orchestration" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateOrchestration() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldOrchestration)
	return u
}

// ClearOrchestration clears the value of the "orchestration" field.
func (u *SessionMemoryUpsert) ClearOrchestration() *SessionMemoryUpsert {
	u.SetNull(sessionmemory.FieldOrchestration)
	return u
}

// SetSubtaskID sets the "subtask_id" field.
func (u *SessionMemoryUpsert) SetSubtaskID(v string) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldSubtaskID, v)
	return u
}

// UpdateSubtaskID sets the "subtask_id" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateSubtaskID() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldSubtaskID)
	return u
}

// ClearSubtaskID clears the value of the "subtask_id" field.
func (u *SessionMemoryUpsert) ClearSubtaskID() *SessionMemoryUpsert {
	u.SetNull(sessionmemory.FieldSubtaskID)
	return u
}

// SetParentSessionID sets the "parent_session_id" field.
func (u *SessionMemoryUpsert) SetParentSessionID(v string) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldParentSessionID, v)
	return u
}

// UpdateParentSessionID sets the "parent_session_id" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateParentSessionID() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldParentSessionID)
	return u
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (u *SessionMemoryUpsert) ClearParentSessionID() *SessionMemoryUpsert {
	u.SetNull(sessionmemory.FieldParentSessionID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionMemoryUpsert) SetUpdatedAt(v time.Time) *SessionMemoryUpsert {
	u.Set(sessionmemory.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionMemoryUpsert) UpdateUpdatedAt() *SessionMemoryUpsert {
	u.SetExcluded(sessionmemory.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SessionMemory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionmemory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionMemoryUpsertOne) UpdateNewValues() *SessionMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sessionmemory.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(sessionmemory.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sessionmemory.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionMemory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionMemoryUpsertOne) Ignore() *SessionMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionMemoryUpsertOne) DoNothing() *SessionMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionMemoryCreate.OnConflict
// documentation for more info.
func (u *SessionMemoryUpsertOne) Update(set func(*SessionMemoryUpsert)) *SessionMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionMemoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhase sets the "phase" field.
func (u *SessionMemoryUpsertOne) SetPhase(v string) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdatePhase() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdatePhase()
	})
}

// SetContext sets the "context" field.
func (u *SessionMemoryUpsertOne) SetContext(v models.SessionContext) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateContext() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *SessionMemoryUpsertOne) ClearContext() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearContext()
	})
}

// SetAttempts sets the "attempts" field.
func (u *SessionMemoryUpsertOne) SetAttempts(v models.SessionAttempts) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateAttempts() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateAttempts()
	})
}

// ClearAttempts clears the value of the "attempts" field.
func (u *SessionMemoryUpsertOne) ClearAttempts() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearAttempts()
	})
}

// SetOutputs sets the "outputs" field.
func (u *SessionMemoryUpsertOne) SetOutputs(v models.AgentOutputs) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetOutputs(v)
	})
}

// UpdateOutputs sets the "outputs" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateOutputs() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateOutputs()
	})
}

// ClearOutputs clears the value of the "outputs" field.
func (u *SessionMemoryUpsertOne) ClearOutputs() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearOutputs()
	})
}

// SetOrchestration sets the "orchestration" field.
func (u *SessionMemoryUpsertOne) SetOrchestration(v *models.OrchestrationState) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetOrchestration(v)
	})
}

// UpdateOrchestration sets the "orchestration" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateOrchestration() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateOrchestration()
	})
}

// ClearOrchestration clears the value of the "orchestration" field.
func (u *SessionMemoryUpsertOne) ClearOrchestration() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearOrchestration()
	})
}

// SetSubtaskID sets the "subtask_id" field.
func (u *SessionMemoryUpsertOne) SetSubtaskID(v string) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetSubtaskID(v)
	})
}

// UpdateSubtaskID sets the "subtask_id" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateSubtaskID() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateSubtaskID()
	})
}

// ClearSubtaskID clears the value of the "subtask_id" field.
func (u *SessionMemoryUpsertOne) ClearSubtaskID() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearSubtaskID()
	})
}

// SetParentSessionID sets the "parent_session_id" field.
func (u *SessionMemoryUpsertOne) SetParentSessionID(v string) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetParentSessionID(v)
	})
}

// UpdateParentSessionID sets the "parent_session_id" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateParentSessionID() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateParentSessionID()
	})
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (u *SessionMemoryUpsertOne) ClearParentSessionID() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearParentSessionID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionMemoryUpsertOne) SetUpdatedAt(v time.Time) *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionMemoryUpsertOne) UpdateUpdatedAt() *SessionMemoryUpsertOne {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SessionMemoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionMemoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionMemoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionMemoryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionMemoryUpsertOne.ID is not supported by MySQL driver. Use SessionMemoryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionMemoryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionMemoryCreateBulk is the builder for creating many SessionMemory entities in bulk.
type SessionMemoryCreateBulk struct {
	config
	err      error
	builders []*SessionMemoryCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionMemory entities in the database.
func (_c *SessionMemoryCreateBulk) Save(ctx context.Context) ([]*SessionMemory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionMemory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMemoryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionMemoryCreateBulk) SaveX(ctx context.Context) []*SessionMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMemoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMemoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionMemory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionMemoryUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionMemoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionMemoryUpsertBulk {
	_c.conflict = opts
	return &SessionMemoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionMemory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionMemoryCreateBulk) OnConflictColumns(columns ...string) *SessionMemoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionMemoryUpsertBulk{
		create: _c,
	}
}

// SessionMemoryUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionMemory nodes.
type SessionMemoryUpsertBulk struct {
	create *SessionMemoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionMemory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionmemory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionMemoryUpsertBulk) UpdateNewValues() *SessionMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sessionmemory.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(sessionmemory.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sessionmemory.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionMemory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionMemoryUpsertBulk) Ignore() *SessionMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionMemoryUpsertBulk) DoNothing() *SessionMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionMemoryCreateBulk.OnConflict
// documentation for more info.
func (u *SessionMemoryUpsertBulk) Update(set func(*SessionMemoryUpsert)) *SessionMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionMemoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhase sets the "phase" field.
func (u *SessionMemoryUpsertBulk) SetPhase(v string) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdatePhase() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdatePhase()
	})
}

// SetContext sets the "context" field.
func (u *SessionMemoryUpsertBulk) SetContext(v models.SessionContext) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateContext() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *SessionMemoryUpsertBulk) ClearContext() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearContext()
	})
}

// SetAttempts sets the "attempts" field.
func (u *SessionMemoryUpsertBulk) SetAttempts(v models.SessionAttempts) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateAttempts() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateAttempts()
	})
}

// ClearAttempts clears the value of the "attempts" field.
func (u *SessionMemoryUpsertBulk) ClearAttempts() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearAttempts()
	})
}

// SetOutputs sets the "outputs" field.
func (u *SessionMemoryUpsertBulk) SetOutputs(v models.AgentOutputs) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetOutputs(v)
	})
}

// UpdateOutputs sets the "outputs" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateOutputs() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateOutputs()
	})
}

// ClearOutputs clears the value of the "outputs" field.
func (u *SessionMemoryUpsertBulk) ClearOutputs() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearOutputs()
	})
}

// SetOrchestration sets the "orchestration" field.
func (u *SessionMemoryUpsertBulk) SetOrchestration(v *models.OrchestrationState) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetOrchestration(v)
	})
}

// UpdateOrchestration sets the "orchestration" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateOrchestration() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateOrchestration()
	})
}

// ClearOrchestration clears the value of the "orchestration" field.
func (u *SessionMemoryUpsertBulk) ClearOrchestration() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearOrchestration()
	})
}

// SetSubtaskID sets the "subtask_id" field.
func (u *SessionMemoryUpsertBulk) SetSubtaskID(v string) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetSubtaskID(v)
	})
}

// UpdateSubtaskID sets the "subtask_id" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateSubtaskID() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateSubtaskID()
	})
}

// ClearSubtaskID clears the value of the "subtask_id" field.
func (u *SessionMemoryUpsertBulk) ClearSubtaskID() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearSubtaskID()
	})
}

// SetParentSessionID sets the "parent_session_id" field.
func (u *SessionMemoryUpsertBulk) SetParentSessionID(v string) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetParentSessionID(v)
	})
}

// UpdateParentSessionID sets the "parent_session_id" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateParentSessionID() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateParentSessionID()
	})
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (u *SessionMemoryUpsertBulk) ClearParentSessionID() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.ClearParentSessionID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionMemoryUpsertBulk) SetUpdatedAt(v time.Time) *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionMemoryUpsertBulk) UpdateUpdatedAt() *SessionMemoryUpsertBulk {
	return u.Update(func(s *SessionMemoryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SessionMemoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionMemoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionMemoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionMemoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
