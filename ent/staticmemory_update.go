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
	"github.com/coderelay-ai/coderelay/ent/staticmemory"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

// StaticMemoryUpdate is the builder for updating StaticMemory entities.
type StaticMemoryUpdate struct {
	config
	hooks    []Hook
	mutation *StaticMemoryMutation
}

// Where appends a list predicates to the StaticMemoryUpdate builder.
func (_u *StaticMemoryUpdate) Where(ps ...predicate.StaticMemory) *StaticMemoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConfig sets the "config" field.
func (_u *StaticMemoryUpdate) SetConfig(v models.RepoConfig) *StaticMemoryUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *StaticMemoryUpdate) SetNillableConfig(v *models.RepoConfig) *StaticMemoryUpdate {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// SetConstraints sets the "constraints" field.
func (_u *StaticMemoryUpdate) SetConstraints(v models.RepoConstraints) *StaticMemoryUpdate {
	_u.mutation.SetConstraints(v)
	return _u
}

// SetNillableConstraints sets the "constraints" field if the given value is not nil.
func (_u *StaticMemoryUpdate) SetNillableConstraints(v *models.RepoConstraints) *StaticMemoryUpdate {
	if v != nil {
		_u.SetConstraints(*v)
	}
	return _u
}

// SetAgentInstructions sets the "agent_instructions" field.
func (_u *StaticMemoryUpdate) SetAgentInstructions(v string) *StaticMemoryUpdate {
	_u.mutation.SetAgentInstructions(v)
	return _u
}

// SetNillableAgentInstructions sets the "agent_instructions" field if the given value is not nil.
func (_u *StaticMemoryUpdate) SetNillableAgentInstructions(v *string) *StaticMemoryUpdate {
	if v != nil {
		_u.SetAgentInstructions(*v)
	}
	return _u
}

// ClearAgentInstructions clears the value of the "agent_instructions" field.
func (_u *StaticMemoryUpdate) ClearAgentInstructions() *StaticMemoryUpdate {
	_u.mutation.ClearAgentInstructions()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StaticMemoryUpdate) SetUpdatedAt(v time.Time) *StaticMemoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StaticMemoryMutation object of the builder.
func (_u *StaticMemoryUpdate) Mutation() *StaticMemoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StaticMemoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StaticMemoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StaticMemoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StaticMemoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StaticMemoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := staticmemory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StaticMemoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(staticmemory.Table, staticmemory.Columns, sqlgraph.NewFieldSpec(staticmemory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(staticmemory.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(staticmemory.FieldConstraints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AgentInstructions(); ok {
		_spec.SetField(staticmemory.FieldAgentInstructions, field.TypeString, value)
	}
	if _u.mutation.AgentInstructionsCleared() {
		_spec.ClearField(staticmemory.FieldAgentInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(staticmemory.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staticmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StaticMemoryUpdateOne is the builder for updating a single StaticMemory entity.
type StaticMemoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StaticMemoryMutation
}

// SetConfig sets the "config" field.
func (_u *StaticMemoryUpdateOne) SetConfig(v models.RepoConfig) *StaticMemoryUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *StaticMemoryUpdateOne) SetNillableConfig(v *models.RepoConfig) *StaticMemoryUpdateOne {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// SetConstraints sets the "constraints" field.
func (_u *StaticMemoryUpdateOne) SetConstraints(v models.RepoConstraints) *StaticMemoryUpdateOne {
	_u.mutation.SetConstraints(v)
	return _u
}

// SetNillableConstraints sets the "constraints" field if the given value is not nil.
func (_u *StaticMemoryUpdateOne) SetNillableConstraints(v *models.RepoConstraints) *StaticMemoryUpdateOne {
	if v != nil {
		_u.SetConstraints(*v)
	}
	return _u
}

// SetAgentInstructions sets the "agent_instructions" field.
func (_u *StaticMemoryUpdateOne) SetAgentInstructions(v string) *StaticMemoryUpdateOne {
	_u.mutation.SetAgentInstructions(v)
	return _u
}

// SetNillableAgentInstructions sets the "agent_instructions" field if the given value is not nil.
func (_u *StaticMemoryUpdateOne) SetNillableAgentInstructions(v *string) *StaticMemoryUpdateOne {
	if v != nil {
		_u.SetAgentInstructions(*v)
	}
	return _u
}

// ClearAgentInstructions clears the value of the "agent_instructions" field.
func (_u *StaticMemoryUpdateOne) ClearAgentInstructions() *StaticMemoryUpdateOne {
	_u.mutation.ClearAgentInstructions()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StaticMemoryUpdateOne) SetUpdatedAt(v time.Time) *StaticMemoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StaticMemoryMutation object of the builder.
func (_u *StaticMemoryUpdateOne) Mutation() *StaticMemoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the StaticMemoryUpdate builder.
func (_u *StaticMemoryUpdateOne) Where(ps ...predicate.StaticMemory) *StaticMemoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StaticMemoryUpdateOne) Select(field string, fields ...string) *StaticMemoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StaticMemory entity.
func (_u *StaticMemoryUpdateOne) Save(ctx context.Context) (*StaticMemory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StaticMemoryUpdateOne) SaveX(ctx context.Context) *StaticMemory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StaticMemoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StaticMemoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StaticMemoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := staticmemory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StaticMemoryUpdateOne) sqlSave(ctx context.Context) (_node *StaticMemory, err error) {
	_spec := sqlgraph.NewUpdateSpec(staticmemory.Table, staticmemory.Columns, sqlgraph.NewFieldSpec(staticmemory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StaticMemory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, staticmemory.FieldID)
		for _, f := range fields {
			if !staticmemory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != staticmemory.FieldID {
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
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(staticmemory.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(staticmemory.FieldConstraints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AgentInstructions(); ok {
		_spec.SetField(staticmemory.FieldAgentInstructions, field.TypeString, value)
	}
	if _u.mutation.AgentInstructionsCleared() {
		_spec.ClearField(staticmemory.FieldAgentInstructions, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(staticmemory.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StaticMemory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staticmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
