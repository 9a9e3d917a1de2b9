package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. They back two graph invariants: at most one
// session-work feature per project and at most one primary feature per
// project.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS features_project_session_work_unique
		ON features (project_id)
		WHERE is_session_work`)
	if err != nil {
		return fmt.Errorf("failed to create session-work unique index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS features_project_primary_unique
		ON features (project_id)
		WHERE is_primary`)
	if err != nil {
		return fmt.Errorf("failed to create primary-feature unique index: %w", err)
	}

	return nil
}
