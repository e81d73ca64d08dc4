// Package migrations creates the handful of tables the site needs. The
// schema is small and append-mostly, so idempotent create-if-missing on boot
// replaces a full migration framework.
package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/karafilm/go-sitecms/internal/content"
	"github.com/karafilm/go-sitecms/internal/submissions"
)

// EnsureSchema creates every table the services depend on if it does not
// already exist. Safe to run on every start.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	if db == nil {
		return fmt.Errorf("migrations: nil database")
	}

	models := []any{
		(*content.Document)(nil),
		(*submissions.Registration)(nil),
		(*submissions.Message)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("migrations: create table for %T: %w", model, err)
		}
	}
	return nil
}
