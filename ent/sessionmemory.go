// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/coderelay-ai/coderelay/ent/sessionmemory"
	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

// SessionMemory is the model entity for the SessionMemory schema.
type SessionMemory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Pipeline phase the session is in (for observability)
	Phase string `json:"phase,omitempty"`
	// Context holds the value of the "context" field.
	Context models.SessionContext `json:"context,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts models.SessionAttempts `json:"attempts,omitempty"`
	// Outputs holds the value of the "outputs" field.
	Outputs models.AgentOutputs `json:"outputs,omitempty"`
	// Present on orchestrated parents only
	Orchestration *models.OrchestrationState `json:"orchestration,omitempty"`
	// Child sessions: the parent-side subtask this session serves
	SubtaskID *string `json:"subtask_id,omitempty"`
	// Child sessions: owning parent session — an ID, never a data link
	ParentSessionID *string `json:"parent_session_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionMemoryQuery when eager-loading is set.
	Edges        SessionMemoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionMemoryEdges holds the relations/edges for other nodes in the graph.
type SessionMemoryEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionMemoryEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionMemory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionmemory.FieldContext, sessionmemory.FieldAttempts, sessionmemory.FieldOutputs, sessionmemory.FieldOrchestration:
			values[i] = new([]byte)
		case sessionmemory.FieldID, sessionmemory.FieldTaskID, sessionmemory.FieldPhase, sessionmemory.FieldSubtaskID, sessionmemory.FieldParentSessionID:
			values[i] = new(sql.NullString)
		case sessionmemory.FieldCreatedAt, sessionmemory.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionMemory fields.
func (_m *SessionMemory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionmemory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sessionmemory.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case sessionmemory.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case sessionmemory.FieldContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Context); err != nil {
					return fmt.Errorf("unmarshal field context: %w", err)
				}
			}
		case sessionmemory.FieldAttempts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Attempts); err != nil {
					return fmt.Errorf("unmarshal field attempts: %w", err)
				}
			}
		case sessionmemory.FieldOutputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Outputs); err != nil {
					return fmt.Errorf("unmarshal field outputs: %w", err)
				}
			}
		case sessionmemory.FieldOrchestration:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field orchestration", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Orchestration); err != nil {
					return fmt.Errorf("unmarshal field orchestration: %w", err)
				}
			}
		case sessionmemory.FieldSubtaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subtask_id", values[i])
			} else if value.Valid {
				_m.SubtaskID = new(string)
				*_m.SubtaskID = value.String
			}
		case sessionmemory.FieldParentSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_session_id", values[i])
			} else if value.Valid {
				_m.ParentSessionID = new(string)
				*_m.ParentSessionID = value.String
			}
		case sessionmemory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sessionmemory.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionMemory.
// This includes values selected through modifiers, order, etc.
func (_m *SessionMemory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the SessionMemory entity.
func (_m *SessionMemory) QueryTask() *TaskQuery {
	return NewSessionMemoryClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this SessionMemory.
// Note that you need to call SessionMemory.Unwrap() before calling this method if this SessionMemory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionMemory) Update() *SessionMemoryUpdateOne {
	return NewSessionMemoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionMemory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionMemory) Unwrap() *SessionMemory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionMemory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionMemory) String() string {
	var builder strings.Builder
	builder.WriteString("SessionMemory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(fmt.Sprintf("%v", _m.Context))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("outputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outputs))
	builder.WriteString(", ")
	builder.WriteString("orchestration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Orchestration))
	builder.WriteString(", ")
	if v := _m.SubtaskID; v != nil {
		builder.WriteString("subtask_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParentSessionID; v != nil {
		builder.WriteString("parent_session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionMemories is a parsable slice of SessionMemory.
type SessionMemories []*SessionMemory
