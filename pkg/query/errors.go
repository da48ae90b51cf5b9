package query

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Render-time errors. Errors returned by the database are never wrapped;
// inspect them with SQLState or IsUniqueViolation.
var (
	// ErrNoRows is returned by SQL when the row source is empty.
	ErrNoRows = errors.New("query: no rows to insert")

	// ErrNoColumns is returned when a row has no values.
	ErrNoColumns = errors.New("query: row has no columns")

	// ErrRowShape is returned when a row's columns differ from the first row's.
	ErrRowShape = errors.New("query: rows have different columns")

	// ErrUnsupported is returned when the dialect cannot express a statement.
	ErrUnsupported = errors.New("query: unsupported by dialect")

	// ErrTableMismatch is returned when a Named table's columns belong to
	// another table.
	ErrTableMismatch = errors.New("query: column belongs to another table")
)

// PostgreSQL error codes.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	NotNullViolation    = "23502"
	CheckViolation      = "23514"
)

// SQLState extracts the SQLSTATE code from a database error. Works with
// pgx (*pgconn.PgError), lib/pq (*pq.Error) and any error in the chain with
// a SQLState() string method. Returns "" when there is none.
func SQLState(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	var stateErr interface{ SQLState() string }
	if errors.As(err, &stateErr) {
		return stateErr.SQLState()
	}
	return ""
}

// IsUniqueViolation returns true if err reports a unique or primary key
// violation from PostgreSQL or SQLite.
func IsUniqueViolation(err error) bool {
	if SQLState(err) == UniqueViolation {
		return true
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// IsUnsupportedErr returns true if err is or wraps ErrUnsupported.
func IsUnsupportedErr(err error) bool {
	return errors.Is(err, ErrUnsupported)
}

// IsRowShapeErr returns true if err is or wraps ErrRowShape.
func IsRowShapeErr(err error) bool {
	return errors.Is(err, ErrRowShape)
}
