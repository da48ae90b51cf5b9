package query

import (
	"context"
	"database/sql"
)

// Execer is the minimal interface needed to run statements.
// Implemented by *sql.DB, *sql.Tx, and *sql.Conn.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Statement is anything that renders to SQL with bind arguments.
type Statement interface {
	SQL() (string, []any, error)
}

// Execute runs the statement and returns the number of rows inserted or
// updated. Rows skipped by DO NOTHING are not counted. An empty row source
// returns 0 without contacting the database. Database errors are returned
// as the driver reported them.
func (s InsertStatement[T, R]) Execute(ctx context.Context, db Execer) (int64, error) {
	if len(s.rows.InsertRows()) == 0 {
		return 0, nil
	}
	return execute(ctx, db, s)
}

// Query runs the statement and returns its RETURNING rows. The caller must
// close the result.
func (s InsertStatement[T, R]) Query(ctx context.Context, db Execer) (*sql.Rows, error) {
	query, args, err := s.SQL()
	if err != nil {
		return nil, err
	}
	return db.QueryContext(ctx, query, args...)
}

func execute(ctx context.Context, db Execer, stmt Statement) (int64, error) {
	query, args, err := stmt.SQL()
	if err != nil {
		return 0, err
	}
	return exec(ctx, db, query, args)
}

func exec(ctx context.Context, db Execer, query string, args []any) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
