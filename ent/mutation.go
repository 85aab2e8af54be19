// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/coderelay-ai/coderelay/ent/event"
	"github.com/coderelay-ai/coderelay/ent/job"
	"github.com/coderelay-ai/coderelay/ent/predicate"
	"github.com/coderelay-ai/coderelay/ent/sessionmemory"
	"github.com/coderelay-ai/coderelay/ent/staticmemory"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/ent/taskevent"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvent         = "Event"
	TypeJob           = "Job"
	TypeSessionMemory = "SessionMemory"
	TypeStaticMemory  = "StaticMemory"
	TypeTask          = "Task"
	TypeTaskEvent     = "TaskEvent"
)

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	task_id       *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *EventMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *EventMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *EventMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[event.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *EventMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[event.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *EventMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, event.FieldTaskID)
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.task_id != nil {
		fields = append(fields, event.FieldTaskID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldTaskID:
		return m.TaskID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldTaskID:
		return m.OldTaskID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldTaskID) {
		fields = append(fields, event.FieldTaskID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldTaskID:
		m.ClearTaskID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldTaskID:
		m.ResetTaskID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op            Op
	typ           string
	id            *string
	repo          *string
	status        *job.Status
	requested_by  *string
	created_at    *time.Time
	updated_at    *time.Time
	deleted_at    *time.Time
	clearedFields map[string]struct{}
	tasks         map[string]struct{}
	removedtasks  map[string]struct{}
	clearedtasks  bool
	done          bool
	oldValue      func(context.Context) (*Job, error)
	predicates    []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRepo sets the "repo" field.
func (m *JobMutation) SetRepo(s string) {
	m.repo = &s
}

// Repo returns the value of the "repo" field in the mutation.
func (m *JobMutation) Repo() (r string, exists bool) {
	v := m.repo
	if v == nil {
		return
	}
	return *v, true
}

// OldRepo returns the old "repo" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRepo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepo: %w", err)
	}
	return oldValue.Repo, nil
}

// ResetRepo resets all changes to the "repo" field.
func (m *JobMutation) ResetRepo() {
	m.repo = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetRequestedBy sets the "requested_by" field.
func (m *JobMutation) SetRequestedBy(s string) {
	m.requested_by = &s
}

// RequestedBy returns the value of the "requested_by" field in the mutation.
func (m *JobMutation) RequestedBy() (r string, exists bool) {
	v := m.requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedBy returns the old "requested_by" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRequestedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedBy: %w", err)
	}
	return oldValue.RequestedBy, nil
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (m *JobMutation) ClearRequestedBy() {
	m.requested_by = nil
	m.clearedFields[job.FieldRequestedBy] = struct{}{}
}

// RequestedByCleared returns if the "requested_by" field was cleared in this mutation.
func (m *JobMutation) RequestedByCleared() bool {
	_, ok := m.clearedFields[job.FieldRequestedBy]
	return ok
}

// ResetRequestedBy resets all changes to the "requested_by" field.
func (m *JobMutation) ResetRequestedBy() {
	m.requested_by = nil
	delete(m.clearedFields, job.FieldRequestedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *JobMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *JobMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *JobMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[job.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *JobMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *JobMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, job.FieldDeletedAt)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *JobMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *JobMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *JobMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *JobMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *JobMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *JobMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *JobMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.repo != nil {
		fields = append(fields, job.FieldRepo)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.requested_by != nil {
		fields = append(fields, job.FieldRequestedBy)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, job.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldRepo:
		return m.Repo()
	case job.FieldStatus:
		return m.Status()
	case job.FieldRequestedBy:
		return m.RequestedBy()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	case job.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldRepo:
		return m.OldRepo(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldRequestedBy:
		return m.OldRequestedBy(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case job.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldRepo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepo(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldRequestedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedBy(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case job.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldRequestedBy) {
		fields = append(fields, job.FieldRequestedBy)
	}
	if m.FieldCleared(job.FieldDeletedAt) {
		fields = append(fields, job.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldRequestedBy:
		m.ClearRequestedBy()
		return nil
	case job.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldRepo:
		m.ResetRepo()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldRequestedBy:
		m.ResetRequestedBy()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case job.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tasks != nil {
		edges = append(edges, job.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtasks != nil {
		edges = append(edges, job.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtasks {
		edges = append(edges, job.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// SessionMemoryMutation represents an operation that mutates the SessionMemory nodes in the graph.
type SessionMemoryMutation struct {
	config
	op                Op
	typ               string
	id                *string
	phase             *string
	context           *models.SessionContext
	attempts          *models.SessionAttempts
	outputs           *models.AgentOutputs
	orchestration     **models.OrchestrationState
	subtask_id        *string
	parent_session_id *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	task              *string
	clearedtask       bool
	done              bool
	oldValue          func(context.Context) (*SessionMemory, error)
	predicates        []predicate.SessionMemory
}

var _ ent.Mutation = (*SessionMemoryMutation)(nil)

// sessionmemoryOption allows management of the mutation configuration using functional options.
type sessionmemoryOption func(*SessionMemoryMutation)

// newSessionMemoryMutation creates new mutation for the SessionMemory entity.
func newSessionMemoryMutation(c config, op Op, opts ...sessionmemoryOption) *SessionMemoryMutation {
	m := &SessionMemoryMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionMemory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionMemoryID sets the ID field of the mutation.
func withSessionMemoryID(id string) sessionmemoryOption {
	return func(m *SessionMemoryMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionMemory
		)
		m.oldValue = func(ctx context.Context) (*SessionMemory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionMemory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionMemory sets the old SessionMemory of the mutation.
func withSessionMemory(node *SessionMemory) sessionmemoryOption {
	return func(m *SessionMemoryMutation) {
		m.oldValue = func(context.Context) (*SessionMemory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMemoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMemoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionMemory entities.
func (m *SessionMemoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMemoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMemoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionMemory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *SessionMemoryMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SessionMemoryMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SessionMemoryMutation) ResetTaskID() {
	m.task = nil
}

// SetPhase sets the "phase" field.
func (m *SessionMemoryMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *SessionMemoryMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *SessionMemoryMutation) ResetPhase() {
	m.phase = nil
}

// SetContext sets the "context" field.
func (m *SessionMemoryMutation) SetContext(mc models.SessionContext) {
	m.context = &mc
}

// Context returns the value of the "context" field in the mutation.
func (m *SessionMemoryMutation) Context() (r models.SessionContext, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldContext(ctx context.Context) (v models.SessionContext, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *SessionMemoryMutation) ClearContext() {
	m.context = nil
	m.clearedFields[sessionmemory.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *SessionMemoryMutation) ContextCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *SessionMemoryMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, sessionmemory.FieldContext)
}

// SetAttempts sets the "attempts" field.
func (m *SessionMemoryMutation) SetAttempts(ma models.SessionAttempts) {
	m.attempts = &ma
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *SessionMemoryMutation) Attempts() (r models.SessionAttempts, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldAttempts(ctx context.Context) (v models.SessionAttempts, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// ClearAttempts clears the value of the "attempts" field.
func (m *SessionMemoryMutation) ClearAttempts() {
	m.attempts = nil
	m.clearedFields[sessionmemory.FieldAttempts] = struct{}{}
}

// AttemptsCleared returns if the "attempts" field was cleared in this mutation.
func (m *SessionMemoryMutation) AttemptsCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldAttempts]
	return ok
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *SessionMemoryMutation) ResetAttempts() {
	m.attempts = nil
	delete(m.clearedFields, sessionmemory.FieldAttempts)
}

// SetOutputs sets the "outputs" field.
func (m *SessionMemoryMutation) SetOutputs(mo models.AgentOutputs) {
	m.outputs = &mo
}

// Outputs returns the value of the "outputs" field in the mutation.
func (m *SessionMemoryMutation) Outputs() (r models.AgentOutputs, exists bool) {
	v := m.outputs
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputs returns the old "outputs" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldOutputs(ctx context.Context) (v models.AgentOutputs, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputs: %w", err)
	}
	return oldValue.Outputs, nil
}

// ClearOutputs clears the value of the "outputs" field.
func (m *SessionMemoryMutation) ClearOutputs() {
	m.outputs = nil
	m.clearedFields[sessionmemory.FieldOutputs] = struct{}{}
}

// OutputsCleared returns if the "outputs" field was cleared in this mutation.
func (m *SessionMemoryMutation) OutputsCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldOutputs]
	return ok
}

// ResetOutputs resets all changes to the "outputs" field.
func (m *SessionMemoryMutation) ResetOutputs() {
	m.outputs = nil
	delete(m.clearedFields, sessionmemory.FieldOutputs)
}

// SetOrchestration sets the "orchestration" field.
func (m *SessionMemoryMutation) SetOrchestration(ms *models.OrchestrationState) {
	m.orchestration = &ms
}

// Orchestration returns the value of the "orchestration" field in the mutation.
func (m *SessionMemoryMutation) Orchestration() (r *models.OrchestrationState, exists bool) {
	v := m.orchestration
	if v == nil {
		return
	}
	return *v, true
}

// OldOrchestration returns the old "orchestration" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldOrchestration(ctx context.Context) (v *models.OrchestrationState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrchestration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrchestration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrchestration: %w", err)
	}
	return oldValue.Orchestration, nil
}

// ClearOrchestration clears the value of the "orchestration" field.
func (m *SessionMemoryMutation) ClearOrchestration() {
	m.orchestration = nil
	m.clearedFields[sessionmemory.FieldOrchestration] = struct{}{}
}

// OrchestrationCleared returns if the "orchestration" field was cleared in this mutation.
func (m *SessionMemoryMutation) OrchestrationCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldOrchestration]
	return ok
}

// ResetOrchestration resets all changes to the "orchestration" field.
func (m *SessionMemoryMutation) ResetOrchestration() {
	m.orchestration = nil
	delete(m.clearedFields, sessionmemory.FieldOrchestration)
}

// SetSubtaskID sets the "subtask_id" field.
func (m *SessionMemoryMutation) SetSubtaskID(s string) {
	m.subtask_id = &s
}

// SubtaskID returns the value of the "subtask_id" field in the mutation.
func (m *SessionMemoryMutation) SubtaskID() (r string, exists bool) {
	v := m.subtask_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtaskID returns the old "subtask_id" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldSubtaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtaskID: %w", err)
	}
	return oldValue.SubtaskID, nil
}

// ClearSubtaskID clears the value of the "subtask_id" field.
func (m *SessionMemoryMutation) ClearSubtaskID() {
	m.subtask_id = nil
	m.clearedFields[sessionmemory.FieldSubtaskID] = struct{}{}
}

// SubtaskIDCleared returns if the "subtask_id" field was cleared in this mutation.
func (m *SessionMemoryMutation) SubtaskIDCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldSubtaskID]
	return ok
}

// ResetSubtaskID resets all changes to the "subtask_id" field.
func (m *SessionMemoryMutation) ResetSubtaskID() {
	m.subtask_id = nil
	delete(m.clearedFields, sessionmemory.FieldSubtaskID)
}

// SetParentSessionID sets the "parent_session_id" field.
func (m *SessionMemoryMutation) SetParentSessionID(s string) {
	m.parent_session_id = &s
}

// ParentSessionID returns the value of the "parent_session_id" field in the mutation.
func (m *SessionMemoryMutation) ParentSessionID() (r string, exists bool) {
	v := m.parent_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentSessionID returns the old "parent_session_id" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldParentSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentSessionID: %w", err)
	}
	return oldValue.ParentSessionID, nil
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (m *SessionMemoryMutation) ClearParentSessionID() {
	m.parent_session_id = nil
	m.clearedFields[sessionmemory.FieldParentSessionID] = struct{}{}
}

// ParentSessionIDCleared returns if the "parent_session_id" field was cleared in this mutation.
func (m *SessionMemoryMutation) ParentSessionIDCleared() bool {
	_, ok := m.clearedFields[sessionmemory.FieldParentSessionID]
	return ok
}

// ResetParentSessionID resets all changes to the "parent_session_id" field.
func (m *SessionMemoryMutation) ResetParentSessionID() {
	m.parent_session_id = nil
	delete(m.clearedFields, sessionmemory.FieldParentSessionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMemoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMemoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMemoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMemoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMemoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SessionMemory entity.
// If the SessionMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMemoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMemoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *SessionMemoryMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[sessionmemory.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *SessionMemoryMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *SessionMemoryMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *SessionMemoryMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the SessionMemoryMutation builder.
func (m *SessionMemoryMutation) Where(ps ...predicate.SessionMemory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMemoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMemoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionMemory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMemoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMemoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionMemory).
func (m *SessionMemoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMemoryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.task != nil {
		fields = append(fields, sessionmemory.FieldTaskID)
	}
	if m.phase != nil {
		fields = append(fields, sessionmemory.FieldPhase)
	}
	if m.context != nil {
		fields = append(fields, sessionmemory.FieldContext)
	}
	if m.attempts != nil {
		fields = append(fields, sessionmemory.FieldAttempts)
	}
	if m.outputs != nil {
		fields = append(fields, sessionmemory.FieldOutputs)
	}
	if m.orchestration != nil {
		fields = append(fields, sessionmemory.FieldOrchestration)
	}
	if m.subtask_id != nil {
		fields = append(fields, sessionmemory.FieldSubtaskID)
	}
	if m.parent_session_id != nil {
		fields = append(fields, sessionmemory.FieldParentSessionID)
	}
	if m.created_at != nil {
		fields = append(fields, sessionmemory.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sessionmemory.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMemoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionmemory.FieldTaskID:
		return m.TaskID()
	case sessionmemory.FieldPhase:
		return m.Phase()
	case sessionmemory.FieldContext:
		return m.Context()
	case sessionmemory.FieldAttempts:
		return m.Attempts()
	case sessionmemory.FieldOutputs:
		return m.Outputs()
	case sessionmemory.FieldOrchestration:
		return m.Orchestration()
	case sessionmemory.FieldSubtaskID:
		return m.SubtaskID()
	case sessionmemory.FieldParentSessionID:
		return m.ParentSessionID()
	case sessionmemory.FieldCreatedAt:
		return m.CreatedAt()
	case sessionmemory.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMemoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionmemory.FieldTaskID:
		return m.OldTaskID(ctx)
	case sessionmemory.FieldPhase:
		return m.OldPhase(ctx)
	case sessionmemory.FieldContext:
		return m.OldContext(ctx)
	case sessionmemory.FieldAttempts:
		return m.OldAttempts(ctx)
	case sessionmemory.FieldOutputs:
		return m.OldOutputs(ctx)
	case sessionmemory.FieldOrchestration:
		return m.OldOrchestration(ctx)
	case sessionmemory.FieldSubtaskID:
		return m.OldSubtaskID(ctx)
	case sessionmemory.FieldParentSessionID:
		return m.OldParentSessionID(ctx)
	case sessionmemory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sessionmemory.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionMemory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMemoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionmemory.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case sessionmemory.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case sessionmemory.FieldContext:
		v, ok := value.(models.SessionContext)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case sessionmemory.FieldAttempts:
		v, ok := value.(models.SessionAttempts)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case sessionmemory.FieldOutputs:
		v, ok := value.(models.AgentOutputs)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputs(v)
		return nil
	case sessionmemory.FieldOrchestration:
		v, ok := value.(*models.OrchestrationState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrchestration(v)
		return nil
	case sessionmemory.FieldSubtaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtaskID(v)
		return nil
	case sessionmemory.FieldParentSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentSessionID(v)
		return nil
	case sessionmemory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sessionmemory.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMemory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMemoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMemoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMemoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionMemory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMemoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionmemory.FieldContext) {
		fields = append(fields, sessionmemory.FieldContext)
	}
	if m.FieldCleared(sessionmemory.FieldAttempts) {
		fields = append(fields, sessionmemory.FieldAttempts)
	}
	if m.FieldCleared(sessionmemory.FieldOutputs) {
		fields = append(fields, sessionmemory.FieldOutputs)
	}
	if m.FieldCleared(sessionmemory.FieldOrchestration) {
		fields = append(fields, sessionmemory.FieldOrchestration)
	}
	if m.FieldCleared(sessionmemory.FieldSubtaskID) {
		fields = append(fields, sessionmemory.FieldSubtaskID)
	}
	if m.FieldCleared(sessionmemory.FieldParentSessionID) {
		fields = append(fields, sessionmemory.FieldParentSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMemoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMemoryMutation) ClearField(name string) error {
	switch name {
	case sessionmemory.FieldContext:
		m.ClearContext()
		return nil
	case sessionmemory.FieldAttempts:
		m.ClearAttempts()
		return nil
	case sessionmemory.FieldOutputs:
		m.ClearOutputs()
		return nil
	case sessionmemory.FieldOrchestration:
		m.ClearOrchestration()
		return nil
	case sessionmemory.FieldSubtaskID:
		m.ClearSubtaskID()
		return nil
	case sessionmemory.FieldParentSessionID:
		m.ClearParentSessionID()
		return nil
	}
	return fmt.Errorf("unknown SessionMemory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMemoryMutation) ResetField(name string) error {
	switch name {
	case sessionmemory.FieldTaskID:
		m.ResetTaskID()
		return nil
	case sessionmemory.FieldPhase:
		m.ResetPhase()
		return nil
	case sessionmemory.FieldContext:
		m.ResetContext()
		return nil
	case sessionmemory.FieldAttempts:
		m.ResetAttempts()
		return nil
	case sessionmemory.FieldOutputs:
		m.ResetOutputs()
		return nil
	case sessionmemory.FieldOrchestration:
		m.ResetOrchestration()
		return nil
	case sessionmemory.FieldSubtaskID:
		m.ResetSubtaskID()
		return nil
	case sessionmemory.FieldParentSessionID:
		m.ResetParentSessionID()
		return nil
	case sessionmemory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sessionmemory.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionMemory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMemoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, sessionmemory.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMemoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionmemory.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMemoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMemoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMemoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, sessionmemory.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMemoryMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionmemory.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMemoryMutation) ClearEdge(name string) error {
	switch name {
	case sessionmemory.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown SessionMemory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMemoryMutation) ResetEdge(name string) error {
	switch name {
	case sessionmemory.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown SessionMemory edge %s", name)
}

// StaticMemoryMutation represents an operation that mutates the StaticMemory nodes in the graph.
type StaticMemoryMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	_config            *models.RepoConfig
	constraints        *models.RepoConstraints
	agent_instructions *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*StaticMemory, error)
	predicates         []predicate.StaticMemory
}

var _ ent.Mutation = (*StaticMemoryMutation)(nil)

// staticmemoryOption allows management of the mutation configuration using functional options.
type staticmemoryOption func(*StaticMemoryMutation)

// newStaticMemoryMutation creates new mutation for the StaticMemory entity.
func newStaticMemoryMutation(c config, op Op, opts ...staticmemoryOption) *StaticMemoryMutation {
	m := &StaticMemoryMutation{
		config:        c,
		op:            op,
		typ:           TypeStaticMemory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStaticMemoryID sets the ID field of the mutation.
func withStaticMemoryID(id string) staticmemoryOption {
	return func(m *StaticMemoryMutation) {
		var (
			err   error
			once  sync.Once
			value *StaticMemory
		)
		m.oldValue = func(ctx context.Context) (*StaticMemory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StaticMemory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStaticMemory sets the old StaticMemory of the mutation.
func withStaticMemory(node *StaticMemory) staticmemoryOption {
	return func(m *StaticMemoryMutation) {
		m.oldValue = func(context.Context) (*StaticMemory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StaticMemoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StaticMemoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StaticMemory entities.
func (m *StaticMemoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StaticMemoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StaticMemoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StaticMemory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConfig sets the "config" field.
func (m *StaticMemoryMutation) SetConfig(mc models.RepoConfig) {
	m._config = &mc
}

// Config returns the value of the "config" field in the mutation.
func (m *StaticMemoryMutation) Config() (r models.RepoConfig, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the StaticMemory entity.
// If the StaticMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaticMemoryMutation) OldConfig(ctx context.Context) (v models.RepoConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ResetConfig resets all changes to the "config" field.
func (m *StaticMemoryMutation) ResetConfig() {
	m._config = nil
}

// SetConstraints sets the "constraints" field.
func (m *StaticMemoryMutation) SetConstraints(mc models.RepoConstraints) {
	m.constraints = &mc
}

// Constraints returns the value of the "constraints" field in the mutation.
func (m *StaticMemoryMutation) Constraints() (r models.RepoConstraints, exists bool) {
	v := m.constraints
	if v == nil {
		return
	}
	return *v, true
}

// OldConstraints returns the old "constraints" field's value of the StaticMemory entity.
// If the StaticMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaticMemoryMutation) OldConstraints(ctx context.Context) (v models.RepoConstraints, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstraints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstraints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstraints: %w", err)
	}
	return oldValue.Constraints, nil
}

// ResetConstraints resets all changes to the "constraints" field.
func (m *StaticMemoryMutation) ResetConstraints() {
	m.constraints = nil
}

// SetAgentInstructions sets the "agent_instructions" field.
func (m *StaticMemoryMutation) SetAgentInstructions(s string) {
	m.agent_instructions = &s
}

// AgentInstructions returns the value of the "agent_instructions" field in the mutation.
func (m *StaticMemoryMutation) AgentInstructions() (r string, exists bool) {
	v := m.agent_instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentInstructions returns the old "agent_instructions" field's value of the StaticMemory entity.
// If the StaticMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaticMemoryMutation) OldAgentInstructions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentInstructions: %w", err)
	}
	return oldValue.AgentInstructions, nil
}

// ClearAgentInstructions clears the value of the "agent_instructions" field.
func (m *StaticMemoryMutation) ClearAgentInstructions() {
	m.agent_instructions = nil
	m.clearedFields[staticmemory.FieldAgentInstructions] = struct{}{}
}

// AgentInstructionsCleared returns if the "agent_instructions" field was cleared in this mutation.
func (m *StaticMemoryMutation) AgentInstructionsCleared() bool {
	_, ok := m.clearedFields[staticmemory.FieldAgentInstructions]
	return ok
}

// ResetAgentInstructions resets all changes to the "agent_instructions" field.
func (m *StaticMemoryMutation) ResetAgentInstructions() {
	m.agent_instructions = nil
	delete(m.clearedFields, staticmemory.FieldAgentInstructions)
}

// SetCreatedAt sets the "created_at" field.
func (m *StaticMemoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StaticMemoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StaticMemory entity.
// If the StaticMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaticMemoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StaticMemoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StaticMemoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StaticMemoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StaticMemory entity.
// If the StaticMemory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StaticMemoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StaticMemoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StaticMemoryMutation builder.
func (m *StaticMemoryMutation) Where(ps ...predicate.StaticMemory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StaticMemoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StaticMemoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StaticMemory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StaticMemoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StaticMemoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StaticMemory).
func (m *StaticMemoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StaticMemoryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m._config != nil {
		fields = append(fields, staticmemory.FieldConfig)
	}
	if m.constraints != nil {
		fields = append(fields, staticmemory.FieldConstraints)
	}
	if m.agent_instructions != nil {
		fields = append(fields, staticmemory.FieldAgentInstructions)
	}
	if m.created_at != nil {
		fields = append(fields, staticmemory.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, staticmemory.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StaticMemoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case staticmemory.FieldConfig:
		return m.Config()
	case staticmemory.FieldConstraints:
		return m.Constraints()
	case staticmemory.FieldAgentInstructions:
		return m.AgentInstructions()
	case staticmemory.FieldCreatedAt:
		return m.CreatedAt()
	case staticmemory.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StaticMemoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case staticmemory.FieldConfig:
		return m.OldConfig(ctx)
	case staticmemory.FieldConstraints:
		return m.OldConstraints(ctx)
	case staticmemory.FieldAgentInstructions:
		return m.OldAgentInstructions(ctx)
	case staticmemory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case staticmemory.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StaticMemory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaticMemoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case staticmemory.FieldConfig:
		v, ok := value.(models.RepoConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case staticmemory.FieldConstraints:
		v, ok := value.(models.RepoConstraints)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstraints(v)
		return nil
	case staticmemory.FieldAgentInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentInstructions(v)
		return nil
	case staticmemory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case staticmemory.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StaticMemory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StaticMemoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StaticMemoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StaticMemoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StaticMemory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StaticMemoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(staticmemory.FieldAgentInstructions) {
		fields = append(fields, staticmemory.FieldAgentInstructions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StaticMemoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StaticMemoryMutation) ClearField(name string) error {
	switch name {
	case staticmemory.FieldAgentInstructions:
		m.ClearAgentInstructions()
		return nil
	}
	return fmt.Errorf("unknown StaticMemory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StaticMemoryMutation) ResetField(name string) error {
	switch name {
	case staticmemory.FieldConfig:
		m.ResetConfig()
		return nil
	case staticmemory.FieldConstraints:
		m.ResetConstraints()
		return nil
	case staticmemory.FieldAgentInstructions:
		m.ResetAgentInstructions()
		return nil
	case staticmemory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case staticmemory.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StaticMemory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StaticMemoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StaticMemoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StaticMemoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StaticMemoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StaticMemoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StaticMemoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StaticMemoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StaticMemory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StaticMemoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StaticMemory edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	repo                     *string
	issue_number             *int
	addissue_number          *int
	issue_title              *string
	issue_body               *string
	status                   *task.Status
	waiting_on               *task.WaitingOn
	attempt_count            *int
	addattempt_count         *int
	max_attempts             *int
	addmax_attempts          *int
	parent_task_id           *string
	subtask_index            *int
	addsubtask_index         *int
	is_orchestrated          *bool
	depends_on               *[]string
	appenddepends_on         []string
	definition_of_done       *[]string
	appenddefinition_of_done []string
	plan                     *[]string
	appendplan               []string
	target_files             *[]string
	appendtarget_files       []string
	estimated_complexity     *task.EstimatedComplexity
	estimated_effort         *string
	branch_name              *string
	current_diff             *string
	commit_message           *string
	pr_number                *int
	addpr_number             *int
	pr_url                   *string
	last_error               *string
	failure_kind             *string
	version                  *int
	addversion               *int
	pod_id                   *string
	last_heartbeat_at        *time.Time
	cancel_requested         *bool
	started_at               *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	deleted_at               *time.Time
	clearedFields            map[string]struct{}
	job                      *string
	clearedjob               bool
	events                   map[int]struct{}
	removedevents            map[int]struct{}
	clearedevents            bool
	session                  *string
	clearedsession           bool
	done                     bool
	oldValue                 func(context.Context) (*Task, error)
	predicates               []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *TaskMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *TaskMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldJobID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *TaskMutation) ClearJobID() {
	m.job = nil
	m.clearedFields[task.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *TaskMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[task.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *TaskMutation) ResetJobID() {
	m.job = nil
	delete(m.clearedFields, task.FieldJobID)
}

// SetRepo sets the "repo" field.
func (m *TaskMutation) SetRepo(s string) {
	m.repo = &s
}

// Repo returns the value of the "repo" field in the mutation.
func (m *TaskMutation) Repo() (r string, exists bool) {
	v := m.repo
	if v == nil {
		return
	}
	return *v, true
}

// OldRepo returns the old "repo" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRepo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepo: %w", err)
	}
	return oldValue.Repo, nil
}

// ResetRepo resets all changes to the "repo" field.
func (m *TaskMutation) ResetRepo() {
	m.repo = nil
}

// SetIssueNumber sets the "issue_number" field.
func (m *TaskMutation) SetIssueNumber(i int) {
	m.issue_number = &i
	m.addissue_number = nil
}

// IssueNumber returns the value of the "issue_number" field in the mutation.
func (m *TaskMutation) IssueNumber() (r int, exists bool) {
	v := m.issue_number
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueNumber returns the old "issue_number" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIssueNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueNumber: %w", err)
	}
	return oldValue.IssueNumber, nil
}

// AddIssueNumber adds i to the "issue_number" field.
func (m *TaskMutation) AddIssueNumber(i int) {
	if m.addissue_number != nil {
		*m.addissue_number += i
	} else {
		m.addissue_number = &i
	}
}

// AddedIssueNumber returns the value that was added to the "issue_number" field in this mutation.
func (m *TaskMutation) AddedIssueNumber() (r int, exists bool) {
	v := m.addissue_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetIssueNumber resets all changes to the "issue_number" field.
func (m *TaskMutation) ResetIssueNumber() {
	m.issue_number = nil
	m.addissue_number = nil
}

// SetIssueTitle sets the "issue_title" field.
func (m *TaskMutation) SetIssueTitle(s string) {
	m.issue_title = &s
}

// IssueTitle returns the value of the "issue_title" field in the mutation.
func (m *TaskMutation) IssueTitle() (r string, exists bool) {
	v := m.issue_title
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueTitle returns the old "issue_title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIssueTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueTitle: %w", err)
	}
	return oldValue.IssueTitle, nil
}

// ClearIssueTitle clears the value of the "issue_title" field.
func (m *TaskMutation) ClearIssueTitle() {
	m.issue_title = nil
	m.clearedFields[task.FieldIssueTitle] = struct{}{}
}

// IssueTitleCleared returns if the "issue_title" field was cleared in this mutation.
func (m *TaskMutation) IssueTitleCleared() bool {
	_, ok := m.clearedFields[task.FieldIssueTitle]
	return ok
}

// ResetIssueTitle resets all changes to the "issue_title" field.
func (m *TaskMutation) ResetIssueTitle() {
	m.issue_title = nil
	delete(m.clearedFields, task.FieldIssueTitle)
}

// SetIssueBody sets the "issue_body" field.
func (m *TaskMutation) SetIssueBody(s string) {
	m.issue_body = &s
}

// IssueBody returns the value of the "issue_body" field in the mutation.
func (m *TaskMutation) IssueBody() (r string, exists bool) {
	v := m.issue_body
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueBody returns the old "issue_body" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIssueBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueBody: %w", err)
	}
	return oldValue.IssueBody, nil
}

// ClearIssueBody clears the value of the "issue_body" field.
func (m *TaskMutation) ClearIssueBody() {
	m.issue_body = nil
	m.clearedFields[task.FieldIssueBody] = struct{}{}
}

// IssueBodyCleared returns if the "issue_body" field was cleared in this mutation.
func (m *TaskMutation) IssueBodyCleared() bool {
	_, ok := m.clearedFields[task.FieldIssueBody]
	return ok
}

// ResetIssueBody resets all changes to the "issue_body" field.
func (m *TaskMutation) ResetIssueBody() {
	m.issue_body = nil
	delete(m.clearedFields, task.FieldIssueBody)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetWaitingOn sets the "waiting_on" field.
func (m *TaskMutation) SetWaitingOn(to task.WaitingOn) {
	m.waiting_on = &to
}

// WaitingOn returns the value of the "waiting_on" field in the mutation.
func (m *TaskMutation) WaitingOn() (r task.WaitingOn, exists bool) {
	v := m.waiting_on
	if v == nil {
		return
	}
	return *v, true
}

// OldWaitingOn returns the old "waiting_on" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldWaitingOn(ctx context.Context) (v task.WaitingOn, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaitingOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaitingOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaitingOn: %w", err)
	}
	return oldValue.WaitingOn, nil
}

// ResetWaitingOn resets all changes to the "waiting_on" field.
func (m *TaskMutation) ResetWaitingOn() {
	m.waiting_on = nil
}

// SetAttemptCount sets the "attempt_count" field.
func (m *TaskMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *TaskMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *TaskMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *TaskMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *TaskMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *TaskMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *TaskMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *TaskMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *TaskMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *TaskMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetParentTaskID sets the "parent_task_id" field.
func (m *TaskMutation) SetParentTaskID(s string) {
	m.parent_task_id = &s
}

// ParentTaskID returns the value of the "parent_task_id" field in the mutation.
func (m *TaskMutation) ParentTaskID() (r string, exists bool) {
	v := m.parent_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTaskID returns the old "parent_task_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldParentTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTaskID: %w", err)
	}
	return oldValue.ParentTaskID, nil
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (m *TaskMutation) ClearParentTaskID() {
	m.parent_task_id = nil
	m.clearedFields[task.FieldParentTaskID] = struct{}{}
}

// ParentTaskIDCleared returns if the "parent_task_id" field was cleared in this mutation.
func (m *TaskMutation) ParentTaskIDCleared() bool {
	_, ok := m.clearedFields[task.FieldParentTaskID]
	return ok
}

// ResetParentTaskID resets all changes to the "parent_task_id" field.
func (m *TaskMutation) ResetParentTaskID() {
	m.parent_task_id = nil
	delete(m.clearedFields, task.FieldParentTaskID)
}

// SetSubtaskIndex sets the "subtask_index" field.
func (m *TaskMutation) SetSubtaskIndex(i int) {
	m.subtask_index = &i
	m.addsubtask_index = nil
}

// SubtaskIndex returns the value of the "subtask_index" field in the mutation.
func (m *TaskMutation) SubtaskIndex() (r int, exists bool) {
	v := m.subtask_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtaskIndex returns the old "subtask_index" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSubtaskIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtaskIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtaskIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtaskIndex: %w", err)
	}
	return oldValue.SubtaskIndex, nil
}

// AddSubtaskIndex adds i to the "subtask_index" field.
func (m *TaskMutation) AddSubtaskIndex(i int) {
	if m.addsubtask_index != nil {
		*m.addsubtask_index += i
	} else {
		m.addsubtask_index = &i
	}
}

// AddedSubtaskIndex returns the value that was added to the "subtask_index" field in this mutation.
func (m *TaskMutation) AddedSubtaskIndex() (r int, exists bool) {
	v := m.addsubtask_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearSubtaskIndex clears the value of the "subtask_index" field.
func (m *TaskMutation) ClearSubtaskIndex() {
	m.subtask_index = nil
	m.addsubtask_index = nil
	m.clearedFields[task.FieldSubtaskIndex] = struct{}{}
}

// SubtaskIndexCleared returns if the "subtask_index" field was cleared in this mutation.
func (m *TaskMutation) SubtaskIndexCleared() bool {
	_, ok := m.clearedFields[task.FieldSubtaskIndex]
	return ok
}

// ResetSubtaskIndex resets all changes to the "subtask_index" field.
func (m *TaskMutation) ResetSubtaskIndex() {
	m.subtask_index = nil
	m.addsubtask_index = nil
	delete(m.clearedFields, task.FieldSubtaskIndex)
}

// SetIsOrchestrated sets the "is_orchestrated" field.
func (m *TaskMutation) SetIsOrchestrated(b bool) {
	m.is_orchestrated = &b
}

// IsOrchestrated returns the value of the "is_orchestrated" field in the mutation.
func (m *TaskMutation) IsOrchestrated() (r bool, exists bool) {
	v := m.is_orchestrated
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOrchestrated returns the old "is_orchestrated" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldIsOrchestrated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOrchestrated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOrchestrated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOrchestrated: %w", err)
	}
	return oldValue.IsOrchestrated, nil
}

// ResetIsOrchestrated resets all changes to the "is_orchestrated" field.
func (m *TaskMutation) ResetIsOrchestrated() {
	m.is_orchestrated = nil
}

// SetDependsOn sets the "depends_on" field.
func (m *TaskMutation) SetDependsOn(s []string) {
	m.depends_on = &s
	m.appenddepends_on = nil
}

// DependsOn returns the value of the "depends_on" field in the mutation.
func (m *TaskMutation) DependsOn() (r []string, exists bool) {
	v := m.depends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOn returns the old "depends_on" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDependsOn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOn: %w", err)
	}
	return oldValue.DependsOn, nil
}

// AppendDependsOn adds s to the "depends_on" field.
func (m *TaskMutation) AppendDependsOn(s []string) {
	m.appenddepends_on = append(m.appenddepends_on, s...)
}

// AppendedDependsOn returns the list of values that were appended to the "depends_on" field in this mutation.
func (m *TaskMutation) AppendedDependsOn() ([]string, bool) {
	if len(m.appenddepends_on) == 0 {
		return nil, false
	}
	return m.appenddepends_on, true
}

// ClearDependsOn clears the value of the "depends_on" field.
func (m *TaskMutation) ClearDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	m.clearedFields[task.FieldDependsOn] = struct{}{}
}

// DependsOnCleared returns if the "depends_on" field was cleared in this mutation.
func (m *TaskMutation) DependsOnCleared() bool {
	_, ok := m.clearedFields[task.FieldDependsOn]
	return ok
}

// ResetDependsOn resets all changes to the "depends_on" field.
func (m *TaskMutation) ResetDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	delete(m.clearedFields, task.FieldDependsOn)
}

// SetDefinitionOfDone sets the "definition_of_done" field.
func (m *TaskMutation) SetDefinitionOfDone(s []string) {
	m.definition_of_done = &s
	m.appenddefinition_of_done = nil
}

// DefinitionOfDone returns the value of the "definition_of_done" field in the mutation.
func (m *TaskMutation) DefinitionOfDone() (r []string, exists bool) {
	v := m.definition_of_done
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinitionOfDone returns the old "definition_of_done" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDefinitionOfDone(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinitionOfDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinitionOfDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinitionOfDone: %w", err)
	}
	return oldValue.DefinitionOfDone, nil
}

// AppendDefinitionOfDone adds s to the "definition_of_done" field.
func (m *TaskMutation) AppendDefinitionOfDone(s []string) {
	m.appenddefinition_of_done = append(m.appenddefinition_of_done, s...)
}

// AppendedDefinitionOfDone returns the list of values that were appended to the "definition_of_done" field in this mutation.
func (m *TaskMutation) AppendedDefinitionOfDone() ([]string, bool) {
	if len(m.appenddefinition_of_done) == 0 {
		return nil, false
	}
	return m.appenddefinition_of_done, true
}

// ClearDefinitionOfDone clears the value of the "definition_of_done" field.
func (m *TaskMutation) ClearDefinitionOfDone() {
	m.definition_of_done = nil
	m.appenddefinition_of_done = nil
	m.clearedFields[task.FieldDefinitionOfDone] = struct{}{}
}

// DefinitionOfDoneCleared returns if the "definition_of_done" field was cleared in this mutation.
func (m *TaskMutation) DefinitionOfDoneCleared() bool {
	_, ok := m.clearedFields[task.FieldDefinitionOfDone]
	return ok
}

// ResetDefinitionOfDone resets all changes to the "definition_of_done" field.
func (m *TaskMutation) ResetDefinitionOfDone() {
	m.definition_of_done = nil
	m.appenddefinition_of_done = nil
	delete(m.clearedFields, task.FieldDefinitionOfDone)
}

// SetPlan sets the "plan" field.
func (m *TaskMutation) SetPlan(s []string) {
	m.plan = &s
	m.appendplan = nil
}

// Plan returns the value of the "plan" field in the mutation.
func (m *TaskMutation) Plan() (r []string, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPlan(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// AppendPlan adds s to the "plan" field.
func (m *TaskMutation) AppendPlan(s []string) {
	m.appendplan = append(m.appendplan, s...)
}

// AppendedPlan returns the list of values that were appended to the "plan" field in this mutation.
func (m *TaskMutation) AppendedPlan() ([]string, bool) {
	if len(m.appendplan) == 0 {
		return nil, false
	}
	return m.appendplan, true
}

// ClearPlan clears the value of the "plan" field.
func (m *TaskMutation) ClearPlan() {
	m.plan = nil
	m.appendplan = nil
	m.clearedFields[task.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *TaskMutation) PlanCleared() bool {
	_, ok := m.clearedFields[task.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *TaskMutation) ResetPlan() {
	m.plan = nil
	m.appendplan = nil
	delete(m.clearedFields, task.FieldPlan)
}

// SetTargetFiles sets the "target_files" field.
func (m *TaskMutation) SetTargetFiles(s []string) {
	m.target_files = &s
	m.appendtarget_files = nil
}

// TargetFiles returns the value of the "target_files" field in the mutation.
func (m *TaskMutation) TargetFiles() (r []string, exists bool) {
	v := m.target_files
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetFiles returns the old "target_files" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTargetFiles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetFiles: %w", err)
	}
	return oldValue.TargetFiles, nil
}

// AppendTargetFiles adds s to the "target_files" field.
func (m *TaskMutation) AppendTargetFiles(s []string) {
	m.appendtarget_files = append(m.appendtarget_files, s...)
}

// AppendedTargetFiles returns the list of values that were appended to the "target_files" field in this mutation.
func (m *TaskMutation) AppendedTargetFiles() ([]string, bool) {
	if len(m.appendtarget_files) == 0 {
		return nil, false
	}
	return m.appendtarget_files, true
}

// ClearTargetFiles clears the value of the "target_files" field.
func (m *TaskMutation) ClearTargetFiles() {
	m.target_files = nil
	m.appendtarget_files = nil
	m.clearedFields[task.FieldTargetFiles] = struct{}{}
}

// TargetFilesCleared returns if the "target_files" field was cleared in this mutation.
func (m *TaskMutation) TargetFilesCleared() bool {
	_, ok := m.clearedFields[task.FieldTargetFiles]
	return ok
}

// ResetTargetFiles resets all changes to the "target_files" field.
func (m *TaskMutation) ResetTargetFiles() {
	m.target_files = nil
	m.appendtarget_files = nil
	delete(m.clearedFields, task.FieldTargetFiles)
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (m *TaskMutation) SetEstimatedComplexity(tc task.EstimatedComplexity) {
	m.estimated_complexity = &tc
}

// EstimatedComplexity returns the value of the "estimated_complexity" field in the mutation.
func (m *TaskMutation) EstimatedComplexity() (r task.EstimatedComplexity, exists bool) {
	v := m.estimated_complexity
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedComplexity returns the old "estimated_complexity" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEstimatedComplexity(ctx context.Context) (v *task.EstimatedComplexity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedComplexity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedComplexity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedComplexity: %w", err)
	}
	return oldValue.EstimatedComplexity, nil
}

// ClearEstimatedComplexity clears the value of the "estimated_complexity" field.
func (m *TaskMutation) ClearEstimatedComplexity() {
	m.estimated_complexity = nil
	m.clearedFields[task.FieldEstimatedComplexity] = struct{}{}
}

// EstimatedComplexityCleared returns if the "estimated_complexity" field was cleared in this mutation.
func (m *TaskMutation) EstimatedComplexityCleared() bool {
	_, ok := m.clearedFields[task.FieldEstimatedComplexity]
	return ok
}

// ResetEstimatedComplexity resets all changes to the "estimated_complexity" field.
func (m *TaskMutation) ResetEstimatedComplexity() {
	m.estimated_complexity = nil
	delete(m.clearedFields, task.FieldEstimatedComplexity)
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (m *TaskMutation) SetEstimatedEffort(s string) {
	m.estimated_effort = &s
}

// EstimatedEffort returns the value of the "estimated_effort" field in the mutation.
func (m *TaskMutation) EstimatedEffort() (r string, exists bool) {
	v := m.estimated_effort
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedEffort returns the old "estimated_effort" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEstimatedEffort(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedEffort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedEffort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedEffort: %w", err)
	}
	return oldValue.EstimatedEffort, nil
}

// ClearEstimatedEffort clears the value of the "estimated_effort" field.
func (m *TaskMutation) ClearEstimatedEffort() {
	m.estimated_effort = nil
	m.clearedFields[task.FieldEstimatedEffort] = struct{}{}
}

// EstimatedEffortCleared returns if the "estimated_effort" field was cleared in this mutation.
func (m *TaskMutation) EstimatedEffortCleared() bool {
	_, ok := m.clearedFields[task.FieldEstimatedEffort]
	return ok
}

// ResetEstimatedEffort resets all changes to the "estimated_effort" field.
func (m *TaskMutation) ResetEstimatedEffort() {
	m.estimated_effort = nil
	delete(m.clearedFields, task.FieldEstimatedEffort)
}

// SetBranchName sets the "branch_name" field.
func (m *TaskMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *TaskMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldBranchName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ClearBranchName clears the value of the "branch_name" field.
func (m *TaskMutation) ClearBranchName() {
	m.branch_name = nil
	m.clearedFields[task.FieldBranchName] = struct{}{}
}

// BranchNameCleared returns if the "branch_name" field was cleared in this mutation.
func (m *TaskMutation) BranchNameCleared() bool {
	_, ok := m.clearedFields[task.FieldBranchName]
	return ok
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *TaskMutation) ResetBranchName() {
	m.branch_name = nil
	delete(m.clearedFields, task.FieldBranchName)
}

// SetCurrentDiff sets the "current_diff" field.
func (m *TaskMutation) SetCurrentDiff(s string) {
	m.current_diff = &s
}

// CurrentDiff returns the value of the "current_diff" field in the mutation.
func (m *TaskMutation) CurrentDiff() (r string, exists bool) {
	v := m.current_diff
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentDiff returns the old "current_diff" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCurrentDiff(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentDiff is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentDiff requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentDiff: %w", err)
	}
	return oldValue.CurrentDiff, nil
}

// ClearCurrentDiff clears the value of the "current_diff" field.
func (m *TaskMutation) ClearCurrentDiff() {
	m.current_diff = nil
	m.clearedFields[task.FieldCurrentDiff] = struct{}{}
}

// CurrentDiffCleared returns if the "current_diff" field was cleared in this mutation.
func (m *TaskMutation) CurrentDiffCleared() bool {
	_, ok := m.clearedFields[task.FieldCurrentDiff]
	return ok
}

// ResetCurrentDiff resets all changes to the "current_diff" field.
func (m *TaskMutation) ResetCurrentDiff() {
	m.current_diff = nil
	delete(m.clearedFields, task.FieldCurrentDiff)
}

// SetCommitMessage sets the "commit_message" field.
func (m *TaskMutation) SetCommitMessage(s string) {
	m.commit_message = &s
}

// CommitMessage returns the value of the "commit_message" field in the mutation.
func (m *TaskMutation) CommitMessage() (r string, exists bool) {
	v := m.commit_message
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitMessage returns the old "commit_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCommitMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitMessage: %w", err)
	}
	return oldValue.CommitMessage, nil
}

// ClearCommitMessage clears the value of the "commit_message" field.
func (m *TaskMutation) ClearCommitMessage() {
	m.commit_message = nil
	m.clearedFields[task.FieldCommitMessage] = struct{}{}
}

// CommitMessageCleared returns if the "commit_message" field was cleared in this mutation.
func (m *TaskMutation) CommitMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldCommitMessage]
	return ok
}

// ResetCommitMessage resets all changes to the "commit_message" field.
func (m *TaskMutation) ResetCommitMessage() {
	m.commit_message = nil
	delete(m.clearedFields, task.FieldCommitMessage)
}

// SetPrNumber sets the "pr_number" field.
func (m *TaskMutation) SetPrNumber(i int) {
	m.pr_number = &i
	m.addpr_number = nil
}

// PrNumber returns the value of the "pr_number" field in the mutation.
func (m *TaskMutation) PrNumber() (r int, exists bool) {
	v := m.pr_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPrNumber returns the old "pr_number" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPrNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrNumber: %w", err)
	}
	return oldValue.PrNumber, nil
}

// AddPrNumber adds i to the "pr_number" field.
func (m *TaskMutation) AddPrNumber(i int) {
	if m.addpr_number != nil {
		*m.addpr_number += i
	} else {
		m.addpr_number = &i
	}
}

// AddedPrNumber returns the value that was added to the "pr_number" field in this mutation.
func (m *TaskMutation) AddedPrNumber() (r int, exists bool) {
	v := m.addpr_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrNumber clears the value of the "pr_number" field.
func (m *TaskMutation) ClearPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	m.clearedFields[task.FieldPrNumber] = struct{}{}
}

// PrNumberCleared returns if the "pr_number" field was cleared in this mutation.
func (m *TaskMutation) PrNumberCleared() bool {
	_, ok := m.clearedFields[task.FieldPrNumber]
	return ok
}

// ResetPrNumber resets all changes to the "pr_number" field.
func (m *TaskMutation) ResetPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	delete(m.clearedFields, task.FieldPrNumber)
}

// SetPrURL sets the "pr_url" field.
func (m *TaskMutation) SetPrURL(s string) {
	m.pr_url = &s
}

// PrURL returns the value of the "pr_url" field in the mutation.
func (m *TaskMutation) PrURL() (r string, exists bool) {
	v := m.pr_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPrURL returns the old "pr_url" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPrURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrURL: %w", err)
	}
	return oldValue.PrURL, nil
}

// ClearPrURL clears the value of the "pr_url" field.
func (m *TaskMutation) ClearPrURL() {
	m.pr_url = nil
	m.clearedFields[task.FieldPrURL] = struct{}{}
}

// PrURLCleared returns if the "pr_url" field was cleared in this mutation.
func (m *TaskMutation) PrURLCleared() bool {
	_, ok := m.clearedFields[task.FieldPrURL]
	return ok
}

// ResetPrURL resets all changes to the "pr_url" field.
func (m *TaskMutation) ResetPrURL() {
	m.pr_url = nil
	delete(m.clearedFields, task.FieldPrURL)
}

// SetLastError sets the "last_error" field.
func (m *TaskMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *TaskMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *TaskMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[task.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *TaskMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[task.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *TaskMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, task.FieldLastError)
}

// SetFailureKind sets the "failure_kind" field.
func (m *TaskMutation) SetFailureKind(s string) {
	m.failure_kind = &s
}

// FailureKind returns the value of the "failure_kind" field in the mutation.
func (m *TaskMutation) FailureKind() (r string, exists bool) {
	v := m.failure_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureKind returns the old "failure_kind" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFailureKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureKind: %w", err)
	}
	return oldValue.FailureKind, nil
}

// ClearFailureKind clears the value of the "failure_kind" field.
func (m *TaskMutation) ClearFailureKind() {
	m.failure_kind = nil
	m.clearedFields[task.FieldFailureKind] = struct{}{}
}

// FailureKindCleared returns if the "failure_kind" field was cleared in this mutation.
func (m *TaskMutation) FailureKindCleared() bool {
	_, ok := m.clearedFields[task.FieldFailureKind]
	return ok
}

// ResetFailureKind resets all changes to the "failure_kind" field.
func (m *TaskMutation) ResetFailureKind() {
	m.failure_kind = nil
	delete(m.clearedFields, task.FieldFailureKind)
}

// SetVersion sets the "version" field.
func (m *TaskMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *TaskMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *TaskMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *TaskMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *TaskMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetPodID sets the "pod_id" field.
func (m *TaskMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *TaskMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *TaskMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[task.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *TaskMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[task.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *TaskMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, task.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *TaskMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *TaskMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *TaskMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[task.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *TaskMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *TaskMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, task.FieldLastHeartbeatAt)
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *TaskMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *TaskMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *TaskMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *TaskMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *TaskMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *TaskMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[task.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *TaskMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *TaskMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, task.FieldDeletedAt)
}

// ClearJob clears the "job" edge to the Job entity.
func (m *TaskMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[task.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *TaskMutation) JobCleared() bool {
	return m.JobIDCleared() || m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *TaskMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by ids.
func (m *TaskMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the TaskEvent entity.
func (m *TaskMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the TaskEvent entity was cleared.
func (m *TaskMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the TaskEvent entity by IDs.
func (m *TaskMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the TaskEvent entity.
func (m *TaskMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *TaskMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *TaskMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// SetSessionID sets the "session" edge to the SessionMemory entity by id.
func (m *TaskMutation) SetSessionID(id string) {
	m.session = &id
}

// ClearSession clears the "session" edge to the SessionMemory entity.
func (m *TaskMutation) ClearSession() {
	m.clearedsession = true
}

// SessionCleared reports if the "session" edge to the SessionMemory entity was cleared.
func (m *TaskMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionID returns the "session" edge ID in the mutation.
func (m *TaskMutation) SessionID() (id string, exists bool) {
	if m.session != nil {
		return *m.session, true
	}
	return
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *TaskMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 33)
	if m.job != nil {
		fields = append(fields, task.FieldJobID)
	}
	if m.repo != nil {
		fields = append(fields, task.FieldRepo)
	}
	if m.issue_number != nil {
		fields = append(fields, task.FieldIssueNumber)
	}
	if m.issue_title != nil {
		fields = append(fields, task.FieldIssueTitle)
	}
	if m.issue_body != nil {
		fields = append(fields, task.FieldIssueBody)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.waiting_on != nil {
		fields = append(fields, task.FieldWaitingOn)
	}
	if m.attempt_count != nil {
		fields = append(fields, task.FieldAttemptCount)
	}
	if m.max_attempts != nil {
		fields = append(fields, task.FieldMaxAttempts)
	}
	if m.parent_task_id != nil {
		fields = append(fields, task.FieldParentTaskID)
	}
	if m.subtask_index != nil {
		fields = append(fields, task.FieldSubtaskIndex)
	}
	if m.is_orchestrated != nil {
		fields = append(fields, task.FieldIsOrchestrated)
	}
	if m.depends_on != nil {
		fields = append(fields, task.FieldDependsOn)
	}
	if m.definition_of_done != nil {
		fields = append(fields, task.FieldDefinitionOfDone)
	}
	if m.plan != nil {
		fields = append(fields, task.FieldPlan)
	}
	if m.target_files != nil {
		fields = append(fields, task.FieldTargetFiles)
	}
	if m.estimated_complexity != nil {
		fields = append(fields, task.FieldEstimatedComplexity)
	}
	if m.estimated_effort != nil {
		fields = append(fields, task.FieldEstimatedEffort)
	}
	if m.branch_name != nil {
		fields = append(fields, task.FieldBranchName)
	}
	if m.current_diff != nil {
		fields = append(fields, task.FieldCurrentDiff)
	}
	if m.commit_message != nil {
		fields = append(fields, task.FieldCommitMessage)
	}
	if m.pr_number != nil {
		fields = append(fields, task.FieldPrNumber)
	}
	if m.pr_url != nil {
		fields = append(fields, task.FieldPrURL)
	}
	if m.last_error != nil {
		fields = append(fields, task.FieldLastError)
	}
	if m.failure_kind != nil {
		fields = append(fields, task.FieldFailureKind)
	}
	if m.version != nil {
		fields = append(fields, task.FieldVersion)
	}
	if m.pod_id != nil {
		fields = append(fields, task.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.cancel_requested != nil {
		fields = append(fields, task.FieldCancelRequested)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, task.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldJobID:
		return m.JobID()
	case task.FieldRepo:
		return m.Repo()
	case task.FieldIssueNumber:
		return m.IssueNumber()
	case task.FieldIssueTitle:
		return m.IssueTitle()
	case task.FieldIssueBody:
		return m.IssueBody()
	case task.FieldStatus:
		return m.Status()
	case task.FieldWaitingOn:
		return m.WaitingOn()
	case task.FieldAttemptCount:
		return m.AttemptCount()
	case task.FieldMaxAttempts:
		return m.MaxAttempts()
	case task.FieldParentTaskID:
		return m.ParentTaskID()
	case task.FieldSubtaskIndex:
		return m.SubtaskIndex()
	case task.FieldIsOrchestrated:
		return m.IsOrchestrated()
	case task.FieldDependsOn:
		return m.DependsOn()
	case task.FieldDefinitionOfDone:
		return m.DefinitionOfDone()
	case task.FieldPlan:
		return m.Plan()
	case task.FieldTargetFiles:
		return m.TargetFiles()
	case task.FieldEstimatedComplexity:
		return m.EstimatedComplexity()
	case task.FieldEstimatedEffort:
		return m.EstimatedEffort()
	case task.FieldBranchName:
		return m.BranchName()
	case task.FieldCurrentDiff:
		return m.CurrentDiff()
	case task.FieldCommitMessage:
		return m.CommitMessage()
	case task.FieldPrNumber:
		return m.PrNumber()
	case task.FieldPrURL:
		return m.PrURL()
	case task.FieldLastError:
		return m.LastError()
	case task.FieldFailureKind:
		return m.FailureKind()
	case task.FieldVersion:
		return m.Version()
	case task.FieldPodID:
		return m.PodID()
	case task.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case task.FieldCancelRequested:
		return m.CancelRequested()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	case task.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldJobID:
		return m.OldJobID(ctx)
	case task.FieldRepo:
		return m.OldRepo(ctx)
	case task.FieldIssueNumber:
		return m.OldIssueNumber(ctx)
	case task.FieldIssueTitle:
		return m.OldIssueTitle(ctx)
	case task.FieldIssueBody:
		return m.OldIssueBody(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldWaitingOn:
		return m.OldWaitingOn(ctx)
	case task.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case task.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case task.FieldParentTaskID:
		return m.OldParentTaskID(ctx)
	case task.FieldSubtaskIndex:
		return m.OldSubtaskIndex(ctx)
	case task.FieldIsOrchestrated:
		return m.OldIsOrchestrated(ctx)
	case task.FieldDependsOn:
		return m.OldDependsOn(ctx)
	case task.FieldDefinitionOfDone:
		return m.OldDefinitionOfDone(ctx)
	case task.FieldPlan:
		return m.OldPlan(ctx)
	case task.FieldTargetFiles:
		return m.OldTargetFiles(ctx)
	case task.FieldEstimatedComplexity:
		return m.OldEstimatedComplexity(ctx)
	case task.FieldEstimatedEffort:
		return m.OldEstimatedEffort(ctx)
	case task.FieldBranchName:
		return m.OldBranchName(ctx)
	case task.FieldCurrentDiff:
		return m.OldCurrentDiff(ctx)
	case task.FieldCommitMessage:
		return m.OldCommitMessage(ctx)
	case task.FieldPrNumber:
		return m.OldPrNumber(ctx)
	case task.FieldPrURL:
		return m.OldPrURL(ctx)
	case task.FieldLastError:
		return m.OldLastError(ctx)
	case task.FieldFailureKind:
		return m.OldFailureKind(ctx)
	case task.FieldVersion:
		return m.OldVersion(ctx)
	case task.FieldPodID:
		return m.OldPodID(ctx)
	case task.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case task.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case task.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case task.FieldRepo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepo(v)
		return nil
	case task.FieldIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueNumber(v)
		return nil
	case task.FieldIssueTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueTitle(v)
		return nil
	case task.FieldIssueBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueBody(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldWaitingOn:
		v, ok := value.(task.WaitingOn)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaitingOn(v)
		return nil
	case task.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case task.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case task.FieldParentTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTaskID(v)
		return nil
	case task.FieldSubtaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtaskIndex(v)
		return nil
	case task.FieldIsOrchestrated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOrchestrated(v)
		return nil
	case task.FieldDependsOn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOn(v)
		return nil
	case task.FieldDefinitionOfDone:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinitionOfDone(v)
		return nil
	case task.FieldPlan:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case task.FieldTargetFiles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetFiles(v)
		return nil
	case task.FieldEstimatedComplexity:
		v, ok := value.(task.EstimatedComplexity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedComplexity(v)
		return nil
	case task.FieldEstimatedEffort:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedEffort(v)
		return nil
	case task.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case task.FieldCurrentDiff:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentDiff(v)
		return nil
	case task.FieldCommitMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitMessage(v)
		return nil
	case task.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrNumber(v)
		return nil
	case task.FieldPrURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrURL(v)
		return nil
	case task.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case task.FieldFailureKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureKind(v)
		return nil
	case task.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case task.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case task.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case task.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case task.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addissue_number != nil {
		fields = append(fields, task.FieldIssueNumber)
	}
	if m.addattempt_count != nil {
		fields = append(fields, task.FieldAttemptCount)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, task.FieldMaxAttempts)
	}
	if m.addsubtask_index != nil {
		fields = append(fields, task.FieldSubtaskIndex)
	}
	if m.addpr_number != nil {
		fields = append(fields, task.FieldPrNumber)
	}
	if m.addversion != nil {
		fields = append(fields, task.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldIssueNumber:
		return m.AddedIssueNumber()
	case task.FieldAttemptCount:
		return m.AddedAttemptCount()
	case task.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case task.FieldSubtaskIndex:
		return m.AddedSubtaskIndex()
	case task.FieldPrNumber:
		return m.AddedPrNumber()
	case task.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIssueNumber(v)
		return nil
	case task.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	case task.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case task.FieldSubtaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtaskIndex(v)
		return nil
	case task.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrNumber(v)
		return nil
	case task.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldJobID) {
		fields = append(fields, task.FieldJobID)
	}
	if m.FieldCleared(task.FieldIssueTitle) {
		fields = append(fields, task.FieldIssueTitle)
	}
	if m.FieldCleared(task.FieldIssueBody) {
		fields = append(fields, task.FieldIssueBody)
	}
	if m.FieldCleared(task.FieldParentTaskID) {
		fields = append(fields, task.FieldParentTaskID)
	}
	if m.FieldCleared(task.FieldSubtaskIndex) {
		fields = append(fields, task.FieldSubtaskIndex)
	}
	if m.FieldCleared(task.FieldDependsOn) {
		fields = append(fields, task.FieldDependsOn)
	}
	if m.FieldCleared(task.FieldDefinitionOfDone) {
		fields = append(fields, task.FieldDefinitionOfDone)
	}
	if m.FieldCleared(task.FieldPlan) {
		fields = append(fields, task.FieldPlan)
	}
	if m.FieldCleared(task.FieldTargetFiles) {
		fields = append(fields, task.FieldTargetFiles)
	}
	if m.FieldCleared(task.FieldEstimatedComplexity) {
		fields = append(fields, task.FieldEstimatedComplexity)
	}
	if m.FieldCleared(task.FieldEstimatedEffort) {
		fields = append(fields, task.FieldEstimatedEffort)
	}
	if m.FieldCleared(task.FieldBranchName) {
		fields = append(fields, task.FieldBranchName)
	}
	if m.FieldCleared(task.FieldCurrentDiff) {
		fields = append(fields, task.FieldCurrentDiff)
	}
	if m.FieldCleared(task.FieldCommitMessage) {
		fields = append(fields, task.FieldCommitMessage)
	}
	if m.FieldCleared(task.FieldPrNumber) {
		fields = append(fields, task.FieldPrNumber)
	}
	if m.FieldCleared(task.FieldPrURL) {
		fields = append(fields, task.FieldPrURL)
	}
	if m.FieldCleared(task.FieldLastError) {
		fields = append(fields, task.FieldLastError)
	}
	if m.FieldCleared(task.FieldFailureKind) {
		fields = append(fields, task.FieldFailureKind)
	}
	if m.FieldCleared(task.FieldPodID) {
		fields = append(fields, task.FieldPodID)
	}
	if m.FieldCleared(task.FieldLastHeartbeatAt) {
		fields = append(fields, task.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldDeletedAt) {
		fields = append(fields, task.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldJobID:
		m.ClearJobID()
		return nil
	case task.FieldIssueTitle:
		m.ClearIssueTitle()
		return nil
	case task.FieldIssueBody:
		m.ClearIssueBody()
		return nil
	case task.FieldParentTaskID:
		m.ClearParentTaskID()
		return nil
	case task.FieldSubtaskIndex:
		m.ClearSubtaskIndex()
		return nil
	case task.FieldDependsOn:
		m.ClearDependsOn()
		return nil
	case task.FieldDefinitionOfDone:
		m.ClearDefinitionOfDone()
		return nil
	case task.FieldPlan:
		m.ClearPlan()
		return nil
	case task.FieldTargetFiles:
		m.ClearTargetFiles()
		return nil
	case task.FieldEstimatedComplexity:
		m.ClearEstimatedComplexity()
		return nil
	case task.FieldEstimatedEffort:
		m.ClearEstimatedEffort()
		return nil
	case task.FieldBranchName:
		m.ClearBranchName()
		return nil
	case task.FieldCurrentDiff:
		m.ClearCurrentDiff()
		return nil
	case task.FieldCommitMessage:
		m.ClearCommitMessage()
		return nil
	case task.FieldPrNumber:
		m.ClearPrNumber()
		return nil
	case task.FieldPrURL:
		m.ClearPrURL()
		return nil
	case task.FieldLastError:
		m.ClearLastError()
		return nil
	case task.FieldFailureKind:
		m.ClearFailureKind()
		return nil
	case task.FieldPodID:
		m.ClearPodID()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldJobID:
		m.ResetJobID()
		return nil
	case task.FieldRepo:
		m.ResetRepo()
		return nil
	case task.FieldIssueNumber:
		m.ResetIssueNumber()
		return nil
	case task.FieldIssueTitle:
		m.ResetIssueTitle()
		return nil
	case task.FieldIssueBody:
		m.ResetIssueBody()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldWaitingOn:
		m.ResetWaitingOn()
		return nil
	case task.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case task.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case task.FieldParentTaskID:
		m.ResetParentTaskID()
		return nil
	case task.FieldSubtaskIndex:
		m.ResetSubtaskIndex()
		return nil
	case task.FieldIsOrchestrated:
		m.ResetIsOrchestrated()
		return nil
	case task.FieldDependsOn:
		m.ResetDependsOn()
		return nil
	case task.FieldDefinitionOfDone:
		m.ResetDefinitionOfDone()
		return nil
	case task.FieldPlan:
		m.ResetPlan()
		return nil
	case task.FieldTargetFiles:
		m.ResetTargetFiles()
		return nil
	case task.FieldEstimatedComplexity:
		m.ResetEstimatedComplexity()
		return nil
	case task.FieldEstimatedEffort:
		m.ResetEstimatedEffort()
		return nil
	case task.FieldBranchName:
		m.ResetBranchName()
		return nil
	case task.FieldCurrentDiff:
		m.ResetCurrentDiff()
		return nil
	case task.FieldCommitMessage:
		m.ResetCommitMessage()
		return nil
	case task.FieldPrNumber:
		m.ResetPrNumber()
		return nil
	case task.FieldPrURL:
		m.ResetPrURL()
		return nil
	case task.FieldLastError:
		m.ResetLastError()
		return nil
	case task.FieldFailureKind:
		m.ResetFailureKind()
		return nil
	case task.FieldVersion:
		m.ResetVersion()
		return nil
	case task.FieldPodID:
		m.ResetPodID()
		return nil
	case task.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case task.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case task.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.job != nil {
		edges = append(edges, task.EdgeJob)
	}
	if m.events != nil {
		edges = append(edges, task.EdgeEvents)
	}
	if m.session != nil {
		edges = append(edges, task.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedevents != nil {
		edges = append(edges, task.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedjob {
		edges = append(edges, task.EdgeJob)
	}
	if m.clearedevents {
		edges = append(edges, task.EdgeEvents)
	}
	if m.clearedsession {
		edges = append(edges, task.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeJob:
		return m.clearedjob
	case task.EdgeEvents:
		return m.clearedevents
	case task.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeJob:
		m.ClearJob()
		return nil
	case task.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeJob:
		m.ResetJob()
		return nil
	case task.EdgeEvents:
		m.ResetEvents()
		return nil
	case task.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskEventMutation represents an operation that mutates the TaskEvent nodes in the graph.
type TaskEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	event_type     *string
	agent          *string
	input_summary  *string
	output_summary *string
	tokens_used    *int
	addtokens_used *int
	duration_ms    *int
	addduration_ms *int
	metadata       *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	task           *string
	clearedtask    bool
	done           bool
	oldValue       func(context.Context) (*TaskEvent, error)
	predicates     []predicate.TaskEvent
}

var _ ent.Mutation = (*TaskEventMutation)(nil)

// taskeventOption allows management of the mutation configuration using functional options.
type taskeventOption func(*TaskEventMutation)

// newTaskEventMutation creates new mutation for the TaskEvent entity.
func newTaskEventMutation(c config, op Op, opts ...taskeventOption) *TaskEventMutation {
	m := &TaskEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskEventID sets the ID field of the mutation.
func withTaskEventID(id int) taskeventOption {
	return func(m *TaskEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskEvent
		)
		m.oldValue = func(ctx context.Context) (*TaskEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskEvent sets the old TaskEvent of the mutation.
func withTaskEvent(node *TaskEvent) taskeventOption {
	return func(m *TaskEventMutation) {
		m.oldValue = func(context.Context) (*TaskEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskEventMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskEventMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskEventMutation) ResetTaskID() {
	m.task = nil
}

// SetEventType sets the "event_type" field.
func (m *TaskEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *TaskEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *TaskEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetAgent sets the "agent" field.
func (m *TaskEventMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *TaskEventMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ClearAgent clears the value of the "agent" field.
func (m *TaskEventMutation) ClearAgent() {
	m.agent = nil
	m.clearedFields[taskevent.FieldAgent] = struct{}{}
}

// AgentCleared returns if the "agent" field was cleared in this mutation.
func (m *TaskEventMutation) AgentCleared() bool {
	_, ok := m.clearedFields[taskevent.FieldAgent]
	return ok
}

// ResetAgent resets all changes to the "agent" field.
func (m *TaskEventMutation) ResetAgent() {
	m.agent = nil
	delete(m.clearedFields, taskevent.FieldAgent)
}

// SetInputSummary sets the "input_summary" field.
func (m *TaskEventMutation) SetInputSummary(s string) {
	m.input_summary = &s
}

// InputSummary returns the value of the "input_summary" field in the mutation.
func (m *TaskEventMutation) InputSummary() (r string, exists bool) {
	v := m.input_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldInputSummary returns the old "input_summary" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldInputSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputSummary: %w", err)
	}
	return oldValue.InputSummary, nil
}

// ClearInputSummary clears the value of the "input_summary" field.
func (m *TaskEventMutation) ClearInputSummary() {
	m.input_summary = nil
	m.clearedFields[taskevent.FieldInputSummary] = struct{}{}
}

// InputSummaryCleared returns if the "input_summary" field was cleared in this mutation.
func (m *TaskEventMutation) InputSummaryCleared() bool {
	_, ok := m.clearedFields[taskevent.FieldInputSummary]
	return ok
}

// ResetInputSummary resets all changes to the "input_summary" field.
func (m *TaskEventMutation) ResetInputSummary() {
	m.input_summary = nil
	delete(m.clearedFields, taskevent.FieldInputSummary)
}

// SetOutputSummary sets the "output_summary" field.
func (m *TaskEventMutation) SetOutputSummary(s string) {
	m.output_summary = &s
}

// OutputSummary returns the value of the "output_summary" field in the mutation.
func (m *TaskEventMutation) OutputSummary() (r string, exists bool) {
	v := m.output_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSummary returns the old "output_summary" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldOutputSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSummary: %w", err)
	}
	return oldValue.OutputSummary, nil
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (m *TaskEventMutation) ClearOutputSummary() {
	m.output_summary = nil
	m.clearedFields[taskevent.FieldOutputSummary] = struct{}{}
}

// OutputSummaryCleared returns if the "output_summary" field was cleared in this mutation.
func (m *TaskEventMutation) OutputSummaryCleared() bool {
	_, ok := m.clearedFields[taskevent.FieldOutputSummary]
	return ok
}

// ResetOutputSummary resets all changes to the "output_summary" field.
func (m *TaskEventMutation) ResetOutputSummary() {
	m.output_summary = nil
	delete(m.clearedFields, taskevent.FieldOutputSummary)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *TaskEventMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *TaskEventMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldTokensUsed(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *TaskEventMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *TaskEventMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (m *TaskEventMutation) ClearTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
	m.clearedFields[taskevent.FieldTokensUsed] = struct{}{}
}

// TokensUsedCleared returns if the "tokens_used" field was cleared in this mutation.
func (m *TaskEventMutation) TokensUsedCleared() bool {
	_, ok := m.clearedFields[taskevent.FieldTokensUsed]
	return ok
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *TaskEventMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
	delete(m.clearedFields, taskevent.FieldTokensUsed)
}

// SetDurationMs sets the "duration_ms" field.
func (m *TaskEventMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *TaskEventMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *TaskEventMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *TaskEventMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *TaskEventMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[taskevent.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *TaskEventMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[taskevent.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *TaskEventMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, taskevent.FieldDurationMs)
}

// SetMetadata sets the "metadata" field.
func (m *TaskEventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *TaskEventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *TaskEventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[taskevent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *TaskEventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[taskevent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *TaskEventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, taskevent.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskEventMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskevent.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskEventMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskEventMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskEventMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskEventMutation builder.
func (m *TaskEventMutation) Where(ps ...predicate.TaskEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskEvent).
func (m *TaskEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.task != nil {
		fields = append(fields, taskevent.FieldTaskID)
	}
	if m.event_type != nil {
		fields = append(fields, taskevent.FieldEventType)
	}
	if m.agent != nil {
		fields = append(fields, taskevent.FieldAgent)
	}
	if m.input_summary != nil {
		fields = append(fields, taskevent.FieldInputSummary)
	}
	if m.output_summary != nil {
		fields = append(fields, taskevent.FieldOutputSummary)
	}
	if m.tokens_used != nil {
		fields = append(fields, taskevent.FieldTokensUsed)
	}
	if m.duration_ms != nil {
		fields = append(fields, taskevent.FieldDurationMs)
	}
	if m.metadata != nil {
		fields = append(fields, taskevent.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, taskevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskevent.FieldTaskID:
		return m.TaskID()
	case taskevent.FieldEventType:
		return m.EventType()
	case taskevent.FieldAgent:
		return m.Agent()
	case taskevent.FieldInputSummary:
		return m.InputSummary()
	case taskevent.FieldOutputSummary:
		return m.OutputSummary()
	case taskevent.FieldTokensUsed:
		return m.TokensUsed()
	case taskevent.FieldDurationMs:
		return m.DurationMs()
	case taskevent.FieldMetadata:
		return m.Metadata()
	case taskevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskevent.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskevent.FieldEventType:
		return m.OldEventType(ctx)
	case taskevent.FieldAgent:
		return m.OldAgent(ctx)
	case taskevent.FieldInputSummary:
		return m.OldInputSummary(ctx)
	case taskevent.FieldOutputSummary:
		return m.OldOutputSummary(ctx)
	case taskevent.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case taskevent.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case taskevent.FieldMetadata:
		return m.OldMetadata(ctx)
	case taskevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskevent.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case taskevent.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case taskevent.FieldInputSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputSummary(v)
		return nil
	case taskevent.FieldOutputSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSummary(v)
		return nil
	case taskevent.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case taskevent.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case taskevent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case taskevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskEventMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_used != nil {
		fields = append(fields, taskevent.FieldTokensUsed)
	}
	if m.addduration_ms != nil {
		fields = append(fields, taskevent.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskevent.FieldTokensUsed:
		return m.AddedTokensUsed()
	case taskevent.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskevent.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case taskevent.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskevent.FieldAgent) {
		fields = append(fields, taskevent.FieldAgent)
	}
	if m.FieldCleared(taskevent.FieldInputSummary) {
		fields = append(fields, taskevent.FieldInputSummary)
	}
	if m.FieldCleared(taskevent.FieldOutputSummary) {
		fields = append(fields, taskevent.FieldOutputSummary)
	}
	if m.FieldCleared(taskevent.FieldTokensUsed) {
		fields = append(fields, taskevent.FieldTokensUsed)
	}
	if m.FieldCleared(taskevent.FieldDurationMs) {
		fields = append(fields, taskevent.FieldDurationMs)
	}
	if m.FieldCleared(taskevent.FieldMetadata) {
		fields = append(fields, taskevent.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskEventMutation) ClearField(name string) error {
	switch name {
	case taskevent.FieldAgent:
		m.ClearAgent()
		return nil
	case taskevent.FieldInputSummary:
		m.ClearInputSummary()
		return nil
	case taskevent.FieldOutputSummary:
		m.ClearOutputSummary()
		return nil
	case taskevent.FieldTokensUsed:
		m.ClearTokensUsed()
		return nil
	case taskevent.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case taskevent.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskEventMutation) ResetField(name string) error {
	switch name {
	case taskevent.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskevent.FieldEventType:
		m.ResetEventType()
		return nil
	case taskevent.FieldAgent:
		m.ResetAgent()
		return nil
	case taskevent.FieldInputSummary:
		m.ResetInputSummary()
		return nil
	case taskevent.FieldOutputSummary:
		m.ResetOutputSummary()
		return nil
	case taskevent.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case taskevent.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case taskevent.FieldMetadata:
		m.ResetMetadata()
		return nil
	case taskevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, taskevent.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskevent.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, taskevent.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskEventMutation) EdgeCleared(name string) bool {
	switch name {
	case taskevent.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskEventMutation) ClearEdge(name string) error {
	switch name {
	case taskevent.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskEventMutation) ResetEdge(name string) error {
	switch name {
	case taskevent.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent edge %s", name)
}
