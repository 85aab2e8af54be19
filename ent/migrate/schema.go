// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_task_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "repo", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "partial", "cancelled"}, Default: "pending"},
		{Name: "requested_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2]},
			},
			{
				Name:    "job_repo",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1]},
			},
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[4]},
			},
			{
				Name:    "job_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// SessionMemoriesColumns holds the columns for the "session_memories" table.
	SessionMemoriesColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "phase", Type: field.TypeString, Default: "planning"},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "attempts", Type: field.TypeJSON, Nullable: true},
		{Name: "outputs", Type: field.TypeJSON, Nullable: true},
		{Name: "orchestration", Type: field.TypeJSON, Nullable: true},
		{Name: "subtask_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_session_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString, Unique: true},
	}
	// SessionMemoriesTable holds the schema information for the "session_memories" table.
	SessionMemoriesTable = &schema.Table{
		Name:       "session_memories",
		Columns:    SessionMemoriesColumns,
		PrimaryKey: []*schema.Column{SessionMemoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_memories_tasks_session",
				Columns:    []*schema.Column{SessionMemoriesColumns[10]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// StaticMemoriesColumns holds the columns for the "static_memories" table.
	StaticMemoriesColumns = []*schema.Column{
		{Name: "repo", Type: field.TypeString, Unique: true},
		{Name: "config", Type: field.TypeJSON},
		{Name: "constraints", Type: field.TypeJSON},
		{Name: "agent_instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StaticMemoriesTable holds the schema information for the "static_memories" table.
	StaticMemoriesTable = &schema.Table{
		Name:       "static_memories",
		Columns:    StaticMemoriesColumns,
		PrimaryKey: []*schema.Column{StaticMemoriesColumns[0]},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "repo", Type: field.TypeString},
		{Name: "issue_number", Type: field.TypeInt},
		{Name: "issue_title", Type: field.TypeString, Nullable: true},
		{Name: "issue_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "planning", "planning_done", "coding", "coding_done", "testing", "tests_passed", "tests_failed", "fixing", "reviewing", "review_approved", "review_rejected", "pr_created", "waiting_human", "completed", "failed"}, Default: "new"},
		{Name: "waiting_on", Type: field.TypeEnum, Enums: []string{"none", "ci", "human", "children", "deps"}, Default: "none"},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "parent_task_id", Type: field.TypeString, Nullable: true},
		{Name: "subtask_index", Type: field.TypeInt, Nullable: true},
		{Name: "is_orchestrated", Type: field.TypeBool, Default: false},
		{Name: "depends_on", Type: field.TypeJSON, Nullable: true},
		{Name: "definition_of_done", Type: field.TypeJSON, Nullable: true},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
		{Name: "target_files", Type: field.TypeJSON, Nullable: true},
		{Name: "estimated_complexity", Type: field.TypeEnum, Nullable: true, Enums: []string{"XS", "S", "M", "L", "XL"}},
		{Name: "estimated_effort", Type: field.TypeString, Nullable: true},
		{Name: "branch_name", Type: field.TypeString, Nullable: true},
		{Name: "current_diff", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "commit_message", Type: field.TypeString, Nullable: true},
		{Name: "pr_number", Type: field.TypeInt, Nullable: true},
		{Name: "pr_url", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "failure_kind", Type: field.TypeString, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 0},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "job_id", Type: field.TypeString, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_jobs_tasks",
				Columns:    []*schema.Column{TasksColumns[33]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5]},
			},
			{
				Name:    "task_job_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[33]},
			},
			{
				Name:    "task_parent_task_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[9]},
			},
			{
				Name:    "task_repo_issue_number",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[2]},
			},
			{
				Name:    "task_status_waiting_on_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5], TasksColumns[6], TasksColumns[30]},
			},
			{
				Name:    "task_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5], TasksColumns[27]},
			},
			{
				Name:    "task_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[32]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// TaskEventsColumns holds the columns for the "task_events" table.
	TaskEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "agent", Type: field.TypeString, Nullable: true},
		{Name: "input_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "output_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tokens_used", Type: field.TypeInt, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskEventsTable holds the schema information for the "task_events" table.
	TaskEventsTable = &schema.Table{
		Name:       "task_events",
		Columns:    TaskEventsColumns,
		PrimaryKey: []*schema.Column{TaskEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_events_tasks_events",
				Columns:    []*schema.Column{TaskEventsColumns[9]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskevent_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[9], TaskEventsColumns[8]},
			},
			{
				Name:    "taskevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[1]},
			},
			{
				Name:    "taskevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskEventsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		JobsTable,
		SessionMemoriesTable,
		StaticMemoriesTable,
		TasksTable,
		TaskEventsTable,
	}
)

func init() {
	SessionMemoriesTable.ForeignKeys[0].RefTable = TasksTable
	TasksTable.ForeignKeys[0].RefTable = JobsTable
	TaskEventsTable.ForeignKeys[0].RefTable = TasksTable
}
