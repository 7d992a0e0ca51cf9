// Package migrations provides embedded SQL migration files.
package migrations

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed sql/001_response_cache.sql
var ResponseCacheSQL string

// all lists migrations in apply order. Every statement is idempotent.
var all = []struct {
	name string
	sql  string
}{
	{"001_response_cache", ResponseCacheSQL},
}

// Apply runs every migration against db.
func Apply(ctx context.Context, db *sql.DB) error {
	for _, m := range all {
		if _, err := db.ExecContext(ctx, m.sql); err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
	}
	return nil
}
