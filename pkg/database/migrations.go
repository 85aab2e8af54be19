package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient search on issue bodies and event metadata from
// the dashboard's task search.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for issue body full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_issue_body_gin
		ON tasks USING gin(to_tsvector('english', COALESCE(issue_body, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create issue_body GIN index: %w", err)
	}

	// GIN index for task event metadata lookups (e.g. conflict reports)
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_task_events_metadata_gin
		ON task_events USING gin(metadata jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create metadata GIN index: %w", err)
	}

	return nil
}
