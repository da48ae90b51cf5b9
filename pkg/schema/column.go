package schema

import (
	"github.com/pthm/pgupsert/pkg/sqldsl"
)

// Column is a reference to a column of table T.
type Column[T Table] struct {
	table T
	name  string
}

// NewColumn returns a column of table.
func NewColumn[T Table](table T, name string) Column[T] {
	return Column[T]{table: table, name: name}
}

// Name returns the unqualified column name.
func (c Column[T]) Name() string { return c.name }

// Table returns the owning table.
func (c Column[T]) Table() T { return c.table }

// TableName returns the owning table's name.
func (c Column[T]) TableName() string { return c.table.TableName() }

// Ident renders the unqualified, quoted-if-needed column name.
func (c Column[T]) Ident() string { return sqldsl.QuoteIdent(c.name) }

// SQL renders the table-qualified column reference so the column can be
// used as an expression.
func (c Column[T]) SQL() string {
	return sqldsl.Col{Table: c.TableName(), Column: c.name}.SQL()
}

// Excluded references this column on the row proposed for insertion.
func (c Column[T]) Excluded() sqldsl.Excluded { return sqldsl.Excluded(c.name) }

// Set assigns an expression to the column.
func (c Column[T]) Set(expr sqldsl.Expr) Assignment[T] {
	return Assignment[T]{Column: c, Value: expr}
}

// Value pairs the column with a value for insertion.
func (c Column[T]) Value(v any) Value[T] {
	return Value[T]{Column: c, Arg: v}
}

// Eq compares the column with an expression.
func (c Column[T]) Eq(expr sqldsl.Expr) sqldsl.Eq {
	return sqldsl.Eq{Left: c, Right: expr}
}

func (c Column[T]) same(o Column[T]) bool {
	return c.name == o.name && c.TableName() == o.TableName()
}
