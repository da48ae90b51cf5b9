package sqldsl

import (
	"strconv"
	"strings"
)

// Expr is the interface that all SQL expression types implement.
type Expr interface {
	SQL() string
}

// Param represents a named parameter or local variable reference.
type Param string

// SQL renders the parameter.
func (p Param) SQL() string {
	return string(p)
}

// Col represents a column reference, optionally qualified by its table.
type Col struct {
	Table  string
	Column string
}

// SQL renders the column reference.
func (c Col) SQL() string {
	if c.Table == "" {
		return QuoteIdent(c.Column)
	}
	return QuoteQualified(c.Table) + "." + QuoteIdent(c.Column)
}

// Excluded references a column of the row proposed for insertion inside an
// ON CONFLICT DO UPDATE action (EXCLUDED.column).
type Excluded string

// SQL renders the excluded column reference.
func (e Excluded) SQL() string {
	return "EXCLUDED." + QuoteIdent(string(e))
}

// Lit represents a literal string value (auto-quoted with single quotes).
type Lit string

// SQL renders the literal with single quotes.
func (l Lit) SQL() string {
	// Escape single quotes by doubling them
	escaped := strings.ReplaceAll(string(l), "'", "''")
	return "'" + escaped + "'"
}

// Raw is an escape hatch for arbitrary SQL expressions.
type Raw string

// SQL renders the raw SQL as-is.
func (r Raw) SQL() string {
	return string(r)
}

// Int represents an integer literal.
type Int int64

// SQL renders the integer.
func (i Int) SQL() string {
	return strconv.FormatInt(int64(i), 10)
}

// Float represents a floating point literal.
type Float float64

// SQL renders the float.
func (f Float) SQL() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// Bool represents a boolean literal.
type Bool bool

// SQL renders the boolean.
func (b Bool) SQL() string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// Null represents SQL NULL.
type Null struct{}

// SQL renders NULL.
func (Null) SQL() string {
	return "NULL"
}

// Default represents the DEFAULT keyword inside a VALUES row or SET list.
type Default struct{}

// SQL renders DEFAULT.
func (Default) SQL() string {
	return "DEFAULT"
}

// Func represents a SQL function call.
type Func struct {
	Name string
	Args []Expr
}

// SQL renders the function call.
func (f Func) SQL() string {
	return f.Name + "(" + joinSQL(f.Args, ", ") + ")"
}

// Paren wraps an expression in parentheses.
type Paren struct {
	Expr Expr
}

// SQL renders the parenthesized expression.
func (p Paren) SQL() string {
	return "(" + p.Expr.SQL() + ")"
}

// Concat represents SQL string concatenation (||).
type Concat struct {
	Parts []Expr
}

// SQL renders the concatenation.
func (c Concat) SQL() string {
	if len(c.Parts) == 0 {
		return "''"
	}
	return joinSQL(c.Parts, " || ")
}

// Coalesce renders coalesce(args...).
func Coalesce(args ...Expr) Func {
	return Func{Name: "coalesce", Args: args}
}

func joinSQL(exprs []Expr, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.SQL()
	}
	return strings.Join(parts, sep)
}
