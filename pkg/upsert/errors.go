package upsert

import "errors"

// Sentinel errors for clauses that cannot be composed. They are returned by
// the constructors, never by rendering. Errors from the schema package are
// joined in, so errors.Is also matches schema.ErrDuplicateColumn and friends.
var (
	// ErrEmptyTarget is returned by Columns when no column is given.
	ErrEmptyTarget = errors.New("upsert: conflict target has no columns")

	// ErrInvalidTarget is returned by Columns for duplicate, mixed-table or
	// badly named columns.
	ErrInvalidTarget = errors.New("upsert: invalid conflict target")

	// ErrInvalidConstraint is returned by OnConstraint for names that are
	// empty, longer than 63 bytes or contain a NUL byte.
	ErrInvalidConstraint = errors.New("upsert: invalid constraint name")

	// ErrEmptyUpdate is returned by DoUpdate and Overwrite without assignments.
	ErrEmptyUpdate = errors.New("upsert: DO UPDATE without assignments")

	// ErrInvalidUpdate is returned by DoUpdate for duplicate columns or nil
	// expressions.
	ErrInvalidUpdate = errors.New("upsert: invalid DO UPDATE assignments")
)

// IsEmptyTargetErr returns true if err is or wraps ErrEmptyTarget.
func IsEmptyTargetErr(err error) bool {
	return errors.Is(err, ErrEmptyTarget)
}

// IsInvalidTargetErr returns true if err is or wraps ErrInvalidTarget.
func IsInvalidTargetErr(err error) bool {
	return errors.Is(err, ErrInvalidTarget)
}

// IsInvalidConstraintErr returns true if err is or wraps ErrInvalidConstraint.
func IsInvalidConstraintErr(err error) bool {
	return errors.Is(err, ErrInvalidConstraint)
}

// IsEmptyUpdateErr returns true if err is or wraps ErrEmptyUpdate.
func IsEmptyUpdateErr(err error) bool {
	return errors.Is(err, ErrEmptyUpdate)
}

// IsInvalidUpdateErr returns true if err is or wraps ErrInvalidUpdate.
func IsInvalidUpdateErr(err error) bool {
	return errors.Is(err, ErrInvalidUpdate)
}

// Must returns v, panicking if err is non-nil. It is meant for targets and
// actions declared at package level, where the inputs are constants.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
