package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskEvent holds the schema definition for the TaskEvent entity.
// Append-only audit trail: events are never updated or deleted, and
// (task_id, created_at, id) is strictly increasing within a task.
// The bigserial primary key doubles as the global stream cursor.
type TaskEvent struct {
	ent.Schema
}

// Fields of the TaskEvent.
func (TaskEvent) Fields() []ent.Field {
	return []ent.Field{
		// Default int64 ID (bigserial) — monotonic, used as the cursor
		// for the paginated global stream.
		field.String("task_id").
			Immutable(),
		field.String("event_type").
			Immutable().
			Comment("TASK_CREATED, PLAN_PRODUCED, DIFF_PRODUCED, CI_PASSED, ..."),
		field.String("agent").
			Optional().
			Immutable().
			Comment("Agent that produced this event, empty for system events"),
		field.Text("input_summary").
			Optional().
			Immutable(),
		field.Text("output_summary").
			Optional().
			Immutable(),
		field.Int("tokens_used").
			Optional().
			Nillable().
			Immutable(),
		field.Int("duration_ms").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskEvent.
func (TaskEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("events").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskEvent.
func (TaskEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Per-task ordering
		index.Fields("task_id", "created_at"),
		index.Fields("event_type"),
		index.Fields("created_at"),
	}
}
