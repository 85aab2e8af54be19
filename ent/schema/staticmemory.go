package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/coderelay-ai/coderelay/pkg/models"
)

// StaticMemory holds the schema definition for the StaticMemory entity.
// Per-repo configuration and constraints, immutable within a task's
// lifetime. Updates invalidate the in-process cache but never rewrite
// past task events.
type StaticMemory struct {
	ent.Schema
}

// Fields of the StaticMemory.
func (StaticMemory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("repo").
			Unique().
			Immutable().
			Comment("owner/name of the repository this memory belongs to"),
		field.JSON("config", models.RepoConfig{}),
		field.JSON("constraints", models.RepoConstraints{}),
		field.Text("agent_instructions").
			Optional().
			Comment("Free-form instructions prepended to every agent prompt"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
