package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: the NOTIFY
// mirror used for real-time delivery to dashboards. Rows here are
// transient copies for catch-up after reconnect; the durable audit
// trail lives in task_events.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		// Default int64 ID (bigserial) — monotonic catch-up cursor.
		field.String("task_id").
			Optional().
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("NOTIFY channel the payload was broadcast on"),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel"),
		index.Fields("task_id"),
		index.Fields("created_at"),
	}
}
