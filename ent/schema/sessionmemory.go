package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/coderelay-ai/coderelay/pkg/models"
)

// SessionMemory holds the schema definition for the SessionMemory entity.
// One row per task, created on first scheduling. Owned by the task's
// current worker and written only under the task lock.
type SessionMemory struct {
	ent.Schema
}

// Fields of the SessionMemory.
func (SessionMemory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Unique().
			Immutable(),
		field.String("phase").
			Default("planning").
			Comment("Pipeline phase the session is in (for observability)"),
		field.JSON("context", models.SessionContext{}).
			Optional(),
		field.JSON("attempts", models.SessionAttempts{}).
			Optional(),
		field.JSON("outputs", models.AgentOutputs{}).
			Optional(),
		field.JSON("orchestration", &models.OrchestrationState{}).
			Optional().
			Comment("Present on orchestrated parents only"),
		field.String("subtask_id").
			Optional().
			Nillable().
			Comment("Child sessions: the parent-side subtask this session serves"),
		field.String("parent_session_id").
			Optional().
			Nillable().
			Comment("Child sessions: owning parent session — an ID, never a data link"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the SessionMemory.
func (SessionMemory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("session").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}
