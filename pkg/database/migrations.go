package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// EF headlines/summaries and title text are queried directly by the
// platform's read surfaces; nothing in this service depends on them.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_event_families_text_gin
		ON event_families USING gin(to_tsvector('english', headline || ' ' || summary))`)
	if err != nil {
		return fmt.Errorf("failed to create event_families GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_titles_title_text_gin
		ON titles USING gin(to_tsvector('simple', title_text))`)
	if err != nil {
		return fmt.Errorf("failed to create titles GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 000001_init.up.sql.
//
// Split siblings deliberately share an ef_key (both carry a non-null
// parent_ef_id), so the uniqueness predicate excludes them.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS eventfamily_ef_key_active
		ON event_families (ef_key)
		WHERE status = 'active' AND parent_ef_id IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create active ef_key index: %w", err)
	}

	return nil
}
