// Package testutil provides shared helpers for repository and handler tests.
package testutil

import (
	"context"
	"testing"

	"laptopxplorer/internal/migration"
	"laptopxplorer/pkg/sqldb"
)

// NewDB opens an in-memory SQLite database with every migration applied.
// The database is closed when the test ends.
func NewDB(t *testing.T) *sqldb.DB {
	t.Helper()
	ctx := context.Background()

	db, err := sqldb.Open(ctx, sqldb.Config{Driver: sqldb.DriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(ctx, migration.All()); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
