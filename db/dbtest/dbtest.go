// Package dbtest provides migrated in-memory databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"testing"

	"diet-server/db"
	"diet-server/logging"

	"github.com/google/uuid"
)

// New returns a freshly migrated in-memory sqlite database private to t.
func New(t testing.TB) db.Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	database, err := db.OpenSQLite(context.Background(), dsn, logging.Nop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}
