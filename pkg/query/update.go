package query

import (
	"context"
	"slices"
	"strings"

	"github.com/pthm/pgupsert/pkg/schema"
	"github.com/pthm/pgupsert/pkg/sqldsl"
)

// UpdateStatement is an UPDATE of table T. Its SET list uses the same
// assignments as ON CONFLICT DO UPDATE.
type UpdateStatement[T schema.Table] struct {
	table   T
	sets    []schema.Assignment[T]
	values  []schema.Value[T]
	where   sqldsl.Expr
	dialect Dialect
}

// Update starts an UPDATE of table.
func Update[T schema.Table](table T) UpdateStatement[T] {
	return UpdateStatement[T]{table: table}
}

// Set appends expression assignments.
func (u UpdateStatement[T]) Set(sets ...schema.Assignment[T]) UpdateStatement[T] {
	u.sets = append(slices.Clip(u.sets), sets...)
	return u
}

// SetValues appends assignments whose values are sent as bind arguments.
func (u UpdateStatement[T]) SetValues(values ...schema.Value[T]) UpdateStatement[T] {
	u.values = append(slices.Clip(u.values), values...)
	return u
}

// Where restricts the rows updated. Without it every row is updated.
func (u UpdateStatement[T]) Where(cond sqldsl.Expr) UpdateStatement[T] {
	u.where = cond
	return u
}

// WithDialect returns a copy of the statement rendered for d.
func (u UpdateStatement[T]) WithDialect(d Dialect) UpdateStatement[T] {
	u.dialect = d
	return u
}

// SQL renders the statement and its bind arguments.
func (u UpdateStatement[T]) SQL() (string, []any, error) {
	all := slices.Clone(u.sets)
	for _, v := range u.values {
		all = append(all, v.Column.Set(sqldsl.Null{}))
	}
	if err := schema.CheckAssignments(all); err != nil {
		return "", nil, err
	}

	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString("UPDATE ")
	sb.WriteString(sqldsl.QuoteQualified(u.table.TableName()))
	sb.WriteString(" SET ")
	for i, a := range u.sets {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.SQL())
	}
	for i, v := range u.values {
		if i > 0 || len(u.sets) > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.Column.Ident())
		sb.WriteString(" = ")
		if e, ok := v.Inline(); ok {
			sb.WriteString(e.SQL())
			continue
		}
		args = append(args, v.Arg)
		sb.WriteString(u.dialect.Placeholder(len(args)))
	}
	if u.where != nil {
		sb.WriteString(" WHERE ")
		sb.WriteString(u.where.SQL())
	}
	return sb.String(), args, nil
}

// Execute runs the update and returns the number of rows updated.
func (u UpdateStatement[T]) Execute(ctx context.Context, db Execer) (int64, error) {
	return execute(ctx, db, u)
}
