package schema

import (
	"fmt"

	"github.com/pthm/pgupsert/pkg/sqldsl"
)

// Assignment is a "column = expression" pair used by SET lists, both in
// UPDATE statements and in ON CONFLICT DO UPDATE actions.
type Assignment[T Table] struct {
	Column Column[T]
	Value  sqldsl.Expr
}

// SQL renders the assignment with an unqualified target column.
func (a Assignment[T]) SQL() string {
	return a.Column.Ident() + " = " + a.Value.SQL()
}

// Value is a "column = value" pair used by insert rows. Arg is sent as a
// driver argument unless it is an sqldsl.Expr, which is rendered inline.
type Value[T Table] struct {
	Column Column[T]
	Arg    any
}

// Inline returns the expression to render in place of a placeholder, if
// the value is one.
func (v Value[T]) Inline() (sqldsl.Expr, bool) {
	e, ok := v.Arg.(sqldsl.Expr)
	return e, ok
}

// CheckColumns validates a column list: it must be non-empty, hold valid
// distinct names and, for Named tables, refer to a single table.
func CheckColumns[T Table](cols []Column[T]) error {
	if len(cols) == 0 {
		return ErrNoColumns
	}
	for i, c := range cols {
		if !sqldsl.ValidIdent(c.name) {
			return fmt.Errorf("%w: %q", ErrInvalidIdent, c.name)
		}
		if c.TableName() != cols[0].TableName() {
			return fmt.Errorf("%w: %s and %s", ErrMixedTables, cols[0].TableName(), c.TableName())
		}
		for _, prev := range cols[:i] {
			if prev.same(c) {
				return fmt.Errorf("%w: %s", ErrDuplicateColumn, c.name)
			}
		}
	}
	return nil
}

// CheckAssignments validates a SET list the same way CheckColumns validates
// a column list, and rejects nil expressions.
func CheckAssignments[T Table](sets []Assignment[T]) error {
	if len(sets) == 0 {
		return ErrNoAssignments
	}
	cols := make([]Column[T], len(sets))
	for i, s := range sets {
		if s.Value == nil {
			return fmt.Errorf("%w: %s", ErrNilExpr, s.Column.name)
		}
		cols[i] = s.Column
	}
	return CheckColumns(cols)
}

// Columns returns the columns of a value list, in order.
func Columns[T Table](values []Value[T]) []Column[T] {
	cols := make([]Column[T], len(values))
	for i, v := range values {
		cols[i] = v.Column
	}
	return cols
}
