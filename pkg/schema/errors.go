package schema

import "errors"

// Sentinel errors returned by the Check* helpers. Callers wrap them with
// context; use errors.Is to test for them.
var (
	// ErrNoColumns is returned when a column list that must be non-empty is empty.
	ErrNoColumns = errors.New("schema: no columns")

	// ErrNoAssignments is returned when a SET list is empty.
	ErrNoAssignments = errors.New("schema: no assignments")

	// ErrDuplicateColumn is returned when a column appears twice in one list.
	ErrDuplicateColumn = errors.New("schema: duplicate column")

	// ErrMixedTables is returned when a list mixes columns of different tables.
	// Statically typed tables cannot reach this; Named tables can.
	ErrMixedTables = errors.New("schema: columns from different tables")

	// ErrInvalidIdent is returned for empty, overlong or NUL-containing names.
	ErrInvalidIdent = errors.New("schema: invalid identifier")

	// ErrNilExpr is returned when an assignment has no expression.
	ErrNilExpr = errors.New("schema: nil expression")
)
