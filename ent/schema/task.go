package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// A task is the unit of work for one ticket. Orchestrated tasks spawn
// child tasks (tree depth is at most two: parent plus children).
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Owning job — nil for orchestrator-created children"),
		field.String("repo").
			Immutable(),

		// Source ticket
		field.Int("issue_number").
			Immutable(),
		field.String("issue_title").
			Optional(),
		field.Text("issue_body").
			Optional(),

		field.Enum("status").
			Values(
				"new",
				"planning",
				"planning_done",
				"coding",
				"coding_done",
				"testing",
				"tests_passed",
				"tests_failed",
				"fixing",
				"reviewing",
				"review_approved",
				"review_rejected",
				"pr_created",
				"waiting_human",
				"completed",
				"failed",
			).
			Default("new"),

		// Suspension point: a task with waiting_on != none is released by
		// workers and resumed only by an external signal.
		field.Enum("waiting_on").
			Values("none", "ci", "human", "children", "deps").
			Default("none"),

		// Retry accounting
		field.Int("attempt_count").
			Default(0),
		field.Int("max_attempts").
			Default(3),

		// Orchestration (parent/child)
		field.String("parent_task_id").
			Optional().
			Nillable().
			Immutable(),
		field.Int("subtask_index").
			Optional().
			Nillable().
			Immutable(),
		field.Bool("is_orchestrated").
			Default(false).
			Comment("True when this task was broken down into children"),
		field.JSON("depends_on", []string{}).
			Optional().
			Comment("Sibling task IDs that must complete before this child runs"),

		// Planner outputs (denormalized from session memory for read models)
		field.JSON("definition_of_done", []string{}).
			Optional(),
		field.JSON("plan", []string{}).
			Optional(),
		field.JSON("target_files", []string{}).
			Optional(),
		field.Enum("estimated_complexity").
			Values("XS", "S", "M", "L", "XL").
			Optional().
			Nillable(),
		field.String("estimated_effort").
			Optional(),

		// Code artifacts
		field.String("branch_name").
			Optional().
			Nillable(),
		field.Text("current_diff").
			Optional().
			Nillable().
			Comment("Unified diff against the branch base"),
		field.String("commit_message").
			Optional().
			Nillable(),
		field.Int("pr_number").
			Optional().
			Nillable(),
		field.String("pr_url").
			Optional().
			Nillable(),

		// Failure surface
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("failure_kind").
			Optional().
			Nillable().
			Comment("transport, schema, policy, apply, ci, orchestration, cancelled, timeout"),

		// Concurrency control
		field.Int("version").
			Default(0).
			Comment("Optimistic lock — bumped on every transition"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Pod currently holding the task, nil when unclaimed"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Bool("cancel_requested").
			Default(false),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("First claim time — start of the wall-clock budget"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("tasks").
			Field("job_id").
			Unique().
			Immutable(),
		edge.To("events", TaskEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("session", SessionMemory.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("job_id"),
		index.Fields("parent_task_id"),
		index.Fields("repo", "issue_number"),
		// Claim query: runnable tasks in FIFO order
		index.Fields("status", "waiting_on", "created_at"),
		// Orphan detection
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
