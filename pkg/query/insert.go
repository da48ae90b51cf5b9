package query

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pthm/pgupsert/pkg/schema"
	"github.com/pthm/pgupsert/pkg/sqldsl"
	"github.com/pthm/pgupsert/pkg/upsert"
)

// InsertStatement is an INSERT of the rows of R into table T.
//
// A statement over an undecorated row source can be given an ON CONFLICT
// clause with the OnConflict and OnConflictDoNothing functions. The
// statement type has no such methods of its own.
type InsertStatement[T schema.Table, R Insertable[T]] struct {
	table     T
	rows      R
	returning []schema.Column[T]
	dialect   Dialect
}

// Insert starts an INSERT of rows into table.
func Insert[T schema.Table, R Insertable[T]](table T, rows R) InsertStatement[T, R] {
	return InsertStatement[T, R]{table: table, rows: rows}
}

// Returning returns a copy of the statement with a RETURNING list.
func (s InsertStatement[T, R]) Returning(cols ...schema.Column[T]) InsertStatement[T, R] {
	s.returning = slices.Clone(cols)
	return s
}

// WithDialect returns a copy of the statement rendered for d.
func (s InsertStatement[T, R]) WithDialect(d Dialect) InsertStatement[T, R] {
	s.dialect = d
	return s
}

// Table returns the target table.
func (s InsertStatement[T, R]) Table() T { return s.table }

// Rows returns the row source.
func (s InsertStatement[T, R]) Rows() R { return s.rows }

// Dialect returns the dialect the statement renders for.
func (s InsertStatement[T, R]) Dialect() Dialect { return s.dialect }

// SQL renders the statement and its bind arguments.
func (s InsertStatement[T, R]) SQL() (string, []any, error) {
	rows := s.rows.InsertRows()
	if len(rows) == 0 {
		return "", nil, ErrNoRows
	}

	cols, err := s.columns(rows[0])
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(sqldsl.QuoteQualified(s.table.TableName()))
	sb.WriteString(" (")
	for i, c := range cols {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.Ident())
	}
	sb.WriteString(") VALUES ")

	var args []any
	for i, row := range rows {
		ordered, err := alignRow(cols, row)
		if err != nil {
			return "", nil, fmt.Errorf("row %d: %w", i, err)
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for j, v := range ordered {
			if j > 0 {
				sb.WriteString(", ")
			}
			if e, ok := v.Inline(); ok {
				sb.WriteString(e.SQL())
				continue
			}
			args = append(args, v.Arg)
			sb.WriteString(s.dialect.Placeholder(len(args)))
		}
		sb.WriteByte(')')
	}

	if src, ok := any(s.rows).(conflictSource[T]); ok {
		clause := src.OnConflictClause()
		if err := s.dialect.checkTarget(clause.Target().Kind()); err != nil {
			return "", nil, err
		}
		if err := s.checkClause(clause); err != nil {
			return "", nil, err
		}
		sb.WriteByte(' ')
		sb.WriteString(clause.SQL())
	}

	if len(s.returning) > 0 {
		sb.WriteString(" RETURNING ")
		for i, c := range s.returning {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(c.Ident())
		}
	}

	return sb.String(), args, nil
}

// columns validates the first row and returns its column list.
func (s InsertStatement[T, R]) columns(first Row[T]) ([]schema.Column[T], error) {
	if len(first) == 0 {
		return nil, ErrNoColumns
	}
	cols := schema.Columns(first)
	if err := schema.CheckColumns(cols); err != nil {
		return nil, err
	}
	if err := s.checkTable(cols); err != nil {
		return nil, err
	}
	if err := s.checkTable(s.returning); err != nil {
		return nil, err
	}
	return cols, nil
}

// checkClause rejects conflict targets and DO UPDATE assignments naming
// columns of another table.
func (s InsertStatement[T, R]) checkClause(clause upsert.Clause[T]) error {
	if err := s.checkTable(clause.Target().Columns()); err != nil {
		return fmt.Errorf("conflict target: %w", err)
	}
	sets := clause.Action().Assignments()
	cols := make([]schema.Column[T], len(sets))
	for i, a := range sets {
		cols[i] = a.Column
	}
	if err := s.checkTable(cols); err != nil {
		return fmt.Errorf("do update: %w", err)
	}
	return nil
}

// checkTable reports the first column not owned by the statement's table.
// Only Named tables can get here with a foreign column.
func (s InsertStatement[T, R]) checkTable(cols []schema.Column[T]) error {
	name := s.table.TableName()
	for _, c := range cols {
		if c.TableName() != name {
			return fmt.Errorf("%w: %s.%s is not in %s", ErrTableMismatch, c.TableName(), c.Name(), name)
		}
	}
	return nil
}

// alignRow orders row to match cols. A row must set exactly the same
// columns as the first row, in any order.
func alignRow[T schema.Table](cols []schema.Column[T], row Row[T]) ([]schema.Value[T], error) {
	if len(row) != len(cols) {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrRowShape, len(row), len(cols))
	}
	out := make([]schema.Value[T], len(cols))
	filled := make([]bool, len(cols))
	for _, v := range row {
		i := slices.IndexFunc(cols, func(c schema.Column[T]) bool { return c.Name() == v.Column.Name() })
		if i < 0 {
			return nil, fmt.Errorf("%w: unexpected column %s", ErrRowShape, v.Column.Name())
		}
		if filled[i] {
			return nil, fmt.Errorf("%w: %s", schema.ErrDuplicateColumn, v.Column.Name())
		}
		out[i] = v
		filled[i] = true
	}
	return out, nil
}
