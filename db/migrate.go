package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded schema migrations. dialect is a goose dialect
// name ("postgres" or "sqlite3").
func Migrate(ctx context.Context, sqlDB *sql.DB, dialect string, logger goose.Logger) error {
	goose.SetBaseFS(migrations)
	if logger != nil {
		goose.SetLogger(logger)
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
