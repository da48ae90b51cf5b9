package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// SQLite returns an in-memory SQLite database with the fixture tables.
// It is closed when the test completes.
func SQLite(tb testing.TB) *sql.DB {
	tb.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(tb, err, "failed to open sqlite database")

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = db.Close() })

	require.NoError(tb, ApplySchema(context.Background(), db), "failed to create fixture tables")
	return db
}
