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
	"github.com/coderelay-ai/coderelay/ent/staticmemory"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

// StaticMemoryCreate is the builder for creating a StaticMemory entity.
type StaticMemoryCreate struct {
	config
	mutation *StaticMemoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetConfig sets the "config" field.
func (_c *StaticMemoryCreate) SetConfig(v models.RepoConfig) *StaticMemoryCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetConstraints sets the "constraints" field.
func (_c *StaticMemoryCreate) SetConstraints(v models.RepoConstraints) *StaticMemoryCreate {
	_c.mutation.SetConstraints(v)
	return _c
}

// SetAgentInstructions sets the "agent_instructions" field.
func (_c *StaticMemoryCreate) SetAgentInstructions(v string) *StaticMemoryCreate {
	_c.mutation.SetAgentInstructions(v)
	return _c
}

// SetNillableAgentInstructions sets the "agent_instructions" field if the given value is not nil.
func (_c *StaticMemoryCreate) SetNillableAgentInstructions(v *string) *StaticMemoryCreate {
	if v != nil {
		_c.SetAgentInstructions(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StaticMemoryCreate) SetCreatedAt(v time.Time) *StaticMemoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StaticMemoryCreate) SetNillableCreatedAt(v *time.Time) *StaticMemoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StaticMemoryCreate) SetUpdatedAt(v time.Time) *StaticMemoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StaticMemoryCreate) SetNillableUpdatedAt(v *time.Time) *StaticMemoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StaticMemoryCreate) SetID(v string) *StaticMemoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StaticMemoryMutation object of the builder.
func (_c *StaticMemoryCreate) Mutation() *StaticMemoryMutation {
	return _c.mutation
}

// Save creates the StaticMemory in the database.
func (_c *StaticMemoryCreate) Save(ctx context.Context) (*StaticMemory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StaticMemoryCreate) SaveX(ctx context.Context) *StaticMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StaticMemoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StaticMemoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StaticMemoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := staticmemory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := staticmemory.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StaticMemoryCreate) check() error {
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "StaticMemory.config"`)}
	}
	if _, ok := _c.mutation.Constraints(); !ok {
		return &ValidationError{Name: "constraints", err: errors.New(`ent: missing required field "StaticMemory.constraints"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StaticMemory.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StaticMemory.updated_at"`)}
	}
	return nil
}

func (_c *StaticMemoryCreate) sqlSave(ctx context.Context) (*StaticMemory, error) {
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
			return nil, fmt.Errorf("unexpected StaticMemory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StaticMemoryCreate) createSpec() (*StaticMemory, *sqlgraph.CreateSpec) {
	var (
		_node = &StaticMemory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(staticmemory.Table, sqlgraph.NewFieldSpec(staticmemory.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(staticmemory.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Constraints(); ok {
		_spec.SetField(staticmemory.FieldConstraints, field.TypeJSON, value)
		_node.Constraints = value
	}
	if value, ok := _c.mutation.AgentInstructions(); ok {
		_spec.SetField(staticmemory.FieldAgentInstructions, field.TypeString, value)
		_node.AgentInstructions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(staticmemory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(staticmemory.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StaticMemory.Create().
//		SetConfig(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StaticMemoryUpsert) {
//			SetConfig(v+v).
//		}).
//		Exec(ctx)
func (_c *StaticMemoryCreate) OnConflict(opts ...sql.ConflictOption) *StaticMemoryUpsertOne {
	_c.conflict = opts
	return &StaticMemoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StaticMemory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StaticMemoryCreate) OnConflictColumns(columns ...string) *StaticMemoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StaticMemoryUpsertOne{
		create: _c,
	}
}

type (
	// StaticMemoryUpsertOne is the builder for "upsert"-ing
	//  one StaticMemory node.
	StaticMemoryUpsertOne struct {
		create *StaticMemoryCreate
	}

	// StaticMemoryUpsert is the "OnConflict" setter.
	StaticMemoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetConfig sets the "config" field.
func (u *StaticMemoryUpsert) SetConfig(v models.RepoConfig) *StaticMemoryUpsert {
	u.Set(staticmemory.FieldConfig, v)
	return u
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *StaticMemoryUpsert) UpdateConfig() *StaticMemoryUpsert {
	u.SetExcluded(staticmemory.FieldConfig)
	return u
}

// SetConstraints sets the "constraints" field.
func (u *StaticMemoryUpsert) SetConstraints(v models.RepoConstraints) *StaticMemoryUpsert {
	u.Set(staticmemory.FieldConstraints, v)
	return u
}

// UpdateConstraints sets the "constraints" field to the value that was provided on create.
func (u *StaticMemoryUpsert) UpdateConstraints() *StaticMemoryUpsert {
	u.SetExcluded(staticmemory.FieldConstraints)
	return u
}

// SetAgentInstructions sets the "agent_instructions" field.
func (u *StaticMemoryUpsert) SetAgentInstructions(v string) *StaticMemoryUpsert {
	u.Set(staticmemory.FieldAgentInstructions, v)
	return u
}

// UpdateAgentInstructions sets the "agent_instructions" field to the value that was provided on create.
func (u *StaticMemoryUpsert) UpdateAgentInstructions() *StaticMemoryUpsert {
	u.SetExcluded(staticmemory.FieldAgentInstructions)
	return u
}

// ClearAgentInstructions clears the value of the "agent_instructions" field.
func (u *StaticMemoryUpsert) ClearAgentInstructions() *StaticMemoryUpsert {
	u.SetNull(staticmemory.FieldAgentInstructions)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StaticMemoryUpsert) SetUpdatedAt(v time.Time) *StaticMemoryUpsert {
	u.Set(staticmemory.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StaticMemoryUpsert) UpdateUpdatedAt() *StaticMemoryUpsert {
	u.SetExcluded(staticmemory.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StaticMemory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(staticmemory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StaticMemoryUpsertOne) UpdateNewValues() *StaticMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(staticmemory.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(staticmemory.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StaticMemory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StaticMemoryUpsertOne) Ignore() *StaticMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StaticMemoryUpsertOne) DoNothing() *StaticMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StaticMemoryCreate.OnConflict
// documentation for more info.
func (u *StaticMemoryUpsertOne) Update(set func(*StaticMemoryUpsert)) *StaticMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StaticMemoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetConfig sets the "config" field.
func (u *StaticMemoryUpsertOne) SetConfig(v models.RepoConfig) *StaticMemoryUpsertOne {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *StaticMemoryUpsertOne) UpdateConfig() *StaticMemoryUpsertOne {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.UpdateConfig()
	})
}

// SetConstraints sets the "constraints" field.
func (u *StaticMemoryUpsertOne) SetConstraints(v models.RepoConstraints) *StaticMemoryUpsertOne {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.SetConstraints(v)
	})
}

// UpdateConstraints sets the "constraints" field to the value that was provided on create.
func (u *StaticMemoryUpsertOne) UpdateConstraints() *StaticMemoryUpsertOne {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.UpdateConstraints()
	})
}

// SetAgentInstructions sets the "agent_instructions" field.
func (u *StaticMemoryUpsertOne) SetAgentInstructions(v string) *StaticMemoryUpsertOne {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.SetAgentInstructions(v)
	})
}

// UpdateAgentInstructions sets the "agent_instructions" field to the value that was provided on create.
func (u *StaticMemoryUpsertOne) UpdateAgentInstructions() *StaticMemoryUpsertOne {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.UpdateAgentInstructions()
	})
}

// ClearAgentInstructions clears the value of the "agent_instructions" field.
func (u *StaticMemoryUpsertOne) ClearAgentInstructions() *StaticMemoryUpsertOne {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.ClearAgentInstructions()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StaticMemoryUpsertOne) SetUpdatedAt(v time.Time) *StaticMemoryUpsertOne {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StaticMemoryUpsertOne) UpdateUpdatedAt() *StaticMemoryUpsertOne {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StaticMemoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StaticMemoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StaticMemoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StaticMemoryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StaticMemoryUpsertOne.ID is not supported by MySQL driver. Use StaticMemoryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StaticMemoryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StaticMemoryCreateBulk is the builder for creating many StaticMemory entities in bulk.
type StaticMemoryCreateBulk struct {
	config
	err      error
	builders []*StaticMemoryCreate
	conflict []sql.ConflictOption
}

// Save creates the StaticMemory entities in the database.
func (_c *StaticMemoryCreateBulk) Save(ctx context.Context) ([]*StaticMemory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StaticMemory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StaticMemoryMutation)
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
func (_c *StaticMemoryCreateBulk) SaveX(ctx context.Context) []*StaticMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StaticMemoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StaticMemoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StaticMemory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StaticMemoryUpsert) {
//			SetConfig(v+v).
//		}).
//		Exec(ctx)
func (_c *StaticMemoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *StaticMemoryUpsertBulk {
	_c.conflict = opts
	return &StaticMemoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StaticMemory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StaticMemoryCreateBulk) OnConflictColumns(columns ...string) *StaticMemoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StaticMemoryUpsertBulk{
		create: _c,
	}
}

// StaticMemoryUpsertBulk is the builder for "upsert"-ing
// a bulk of StaticMemory nodes.
type StaticMemoryUpsertBulk struct {
	create *StaticMemoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StaticMemory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(staticmemory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StaticMemoryUpsertBulk) UpdateNewValues() *StaticMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(staticmemory.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(staticmemory.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StaticMemory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StaticMemoryUpsertBulk) Ignore() *StaticMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StaticMemoryUpsertBulk) DoNothing() *StaticMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StaticMemoryCreateBulk.OnConflict
// documentation for more info.
func (u *StaticMemoryUpsertBulk) Update(set func(*StaticMemoryUpsert)) *StaticMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StaticMemoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetConfig sets the "config" field.
func (u *StaticMemoryUpsertBulk) SetConfig(v models.RepoConfig) *StaticMemoryUpsertBulk {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *StaticMemoryUpsertBulk) UpdateConfig() *StaticMemoryUpsertBulk {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.UpdateConfig()
	})
}

// SetConstraints sets the "constraints" field.
func (u *StaticMemoryUpsertBulk) SetConstraints(v models.RepoConstraints) *StaticMemoryUpsertBulk {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.SetConstraints(v)
	})
}

// UpdateConstraints sets the "constraints" field to the value that was provided on create.
func (u *StaticMemoryUpsertBulk) UpdateConstraints() *StaticMemoryUpsertBulk {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.UpdateConstraints()
	})
}

// SetAgentInstructions sets the "agent_instructions" field.
func (u *StaticMemoryUpsertBulk) SetAgentInstructions(v string) *StaticMemoryUpsertBulk {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.SetAgentInstructions(v)
	})
}

// UpdateAgentInstructions sets the "agent_instructions" field to the value that was provided on create.
func (u *StaticMemoryUpsertBulk) UpdateAgentInstructions() *StaticMemoryUpsertBulk {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.UpdateAgentInstructions()
	})
}

// ClearAgentInstructions clears the value of the "agent_instructions" field.
func (u *StaticMemoryUpsertBulk) ClearAgentInstructions() *StaticMemoryUpsertBulk {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.ClearAgentInstructions()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StaticMemoryUpsertBulk) SetUpdatedAt(v time.Time) *StaticMemoryUpsertBulk {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StaticMemoryUpsertBulk) UpdateUpdatedAt() *StaticMemoryUpsertBulk {
	return u.Update(func(s *StaticMemoryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StaticMemoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StaticMemoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StaticMemoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StaticMemoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
