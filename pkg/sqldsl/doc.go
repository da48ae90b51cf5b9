// Package sqldsl provides typed building blocks for SQL expressions.
//
// # Overview
//
// Rather than constructing SQL strings through concatenation, this package
// provides small immutable values that render themselves. They are the
// expression layer used by the schema, upsert and query packages: the
// right-hand side of an assignment in DO UPDATE SET, filters on an update,
// and inline values inside a VALUES row.
//
// # Core Interface
//
// Every type implements Expr, whose SQL method renders PostgreSQL syntax.
// Rendering never fails; invalid input is rejected by the constructors of the
// packages that consume expressions.
//
// # Expression Types
//
//	Col{Table: "users", Column: "name"} // users.name
//	Excluded("name")                    // EXCLUDED.name
//	Lit("Sean")                         // 'Sean'
//	Int(42)                             // 42
//	Bool(true)                          // TRUE
//	Null{}                              // NULL
//	Default{}                           // DEFAULT
//	Raw("now()")                        // now() (escape hatch)
//
// Operators:
//
//	Eq{Left: a, Right: b}               // a = b
//	Add{Left: a, Right: b}              // a + b
//	And(expr1, expr2)                   // (expr1 AND expr2)
//	Not(expr)                           // NOT (expr)
//
// # Identifiers
//
// QuoteIdent renders an identifier bare when it is a plain lower-case name
// that is not a reserved word, and double-quoted otherwise. Qualified names
// (schema.table) are handled by QuoteQualified.
package sqldsl
