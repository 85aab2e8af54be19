// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/coderelay-ai/coderelay/ent/staticmemory"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

// StaticMemory is the model entity for the StaticMemory schema.
type StaticMemory struct {
	config `json:"-"`
	// ID of the ent.
	// owner/name of the repository this memory belongs to
	ID string `json:"id,omitempty"`
	// Config holds the value of the "config" field.
	Config models.RepoConfig `json:"config,omitempty"`
	// Constraints holds the value of the "constraints" field.
	Constraints models.RepoConstraints `json:"constraints,omitempty"`
	// Free-form instructions prepended to every agent prompt
	AgentInstructions string `json:"agent_instructions,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StaticMemory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case staticmemory.FieldConfig, staticmemory.FieldConstraints:
			values[i] = new([]byte)
		case staticmemory.FieldID, staticmemory.FieldAgentInstructions:
			values[i] = new(sql.NullString)
		case staticmemory.FieldCreatedAt, staticmemory.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StaticMemory fields.
func (_m *StaticMemory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case staticmemory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case staticmemory.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case staticmemory.FieldConstraints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field constraints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Constraints); err != nil {
					return fmt.Errorf("unmarshal field constraints: %w", err)
				}
			}
		case staticmemory.FieldAgentInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_instructions", values[i])
			} else if value.Valid {
				_m.AgentInstructions = value.String
			}
		case staticmemory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case staticmemory.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StaticMemory.
// This includes values selected through modifiers, order, etc.
func (_m *StaticMemory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StaticMemory.
// Note that you need to call StaticMemory.Unwrap() before calling this method if this StaticMemory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StaticMemory) Update() *StaticMemoryUpdateOne {
	return NewStaticMemoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StaticMemory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StaticMemory) Unwrap() *StaticMemory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StaticMemory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StaticMemory) String() string {
	var builder strings.Builder
	builder.WriteString("StaticMemory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("constraints=")
	builder.WriteString(fmt.Sprintf("%v", _m.Constraints))
	builder.WriteString(", ")
	builder.WriteString("agent_instructions=")
	builder.WriteString(_m.AgentInstructions)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StaticMemories is a parsable slice of StaticMemory.
type StaticMemories []*StaticMemory
