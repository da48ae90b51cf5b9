package testutil

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	serverOnce sync.Once
	serverDSN  string
	serverErr  error
)

// ensureServer returns the admin DSN of the shared PostgreSQL server. It
// uses DATABASE_URL when set and otherwise starts one container for the
// whole test run; ryuk removes it afterwards.
func ensureServer() (string, error) {
	serverOnce.Do(func() {
		if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
			serverDSN = dsn
			return
		}

		ctx := context.Background()
		container, err := postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("postgres"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			serverErr = fmt.Errorf("failed to start PostgreSQL container: %w", err)
			return
		}

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			_ = container.Terminate(ctx)
			serverErr = fmt.Errorf("failed to get PostgreSQL connection string: %w", err)
			return
		}
		serverDSN = dsn
	})
	return serverDSN, serverErr
}

// Postgres returns a connection to a fresh database holding the fixture
// tables. The database is dropped when the test completes.
func Postgres(tb testing.TB) *sql.DB {
	tb.Helper()

	adminDSN, err := ensureServer()
	require.NoError(tb, err, "failed to start PostgreSQL")

	name := uniqueDBName("upsert")
	admin, err := sql.Open("pgx", adminDSN)
	require.NoError(tb, err)
	_, err = admin.Exec("CREATE DATABASE " + name)
	_ = admin.Close()
	require.NoError(tb, err, "failed to create test database")

	dsn, err := withDBName(adminDSN, name)
	require.NoError(tb, err)

	db, err := sql.Open("pgx", dsn)
	require.NoError(tb, err, "failed to connect to test database")
	require.NoError(tb, db.Ping(), "failed to ping test database")

	tb.Cleanup(func() {
		_ = db.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = dropDatabase(ctx, adminDSN, name)
	})

	require.NoError(tb, ApplySchema(context.Background(), db), "failed to create fixture tables")
	return db
}

func dropDatabase(ctx context.Context, adminDSN, name string) error {
	db, err := sql.Open("pgx", adminDSN)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	_, err = db.ExecContext(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)")
	return err
}

// uniqueDBName generates a unique database name with the given prefix.
func uniqueDBName(prefix string) string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return prefix + "_" + hex.EncodeToString(b)
}

// withDBName replaces the database name in a URL-style DSN.
func withDBName(dsn, name string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}
	u.Path = "/" + name
	return u.String(), nil
}
