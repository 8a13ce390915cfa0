package data

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/localjobs/localjobs-web/internal/migrate"
)

// RunMigrations prepares the Postgres notification schema and returns the versions it applied.
func RunMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) ([]string, error) {
	return migrate.RunWithOptions(ctx, db, migrate.Options{Logger: logger})
}
