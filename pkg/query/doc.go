// Package query renders and runs INSERT statements with optional
// ON CONFLICT clauses.
//
// Row sources come in four shapes: Row (a list of column values), Single
// (one Record), Rows (a sequence of records) and Optional (a record that
// may be absent). Each shape can be decorated with a clause:
//
//	rows := query.One[Users](newUser).OnConflict(
//		upsert.Must(upsert.Columns(UsersID)),
//		upsert.DoNothing(Users),
//	)
//	n, err := query.Insert(Users, rows).Execute(ctx, db)
//
// or the statement can be decorated after it was built:
//
//	stmt := query.OnConflictDoNothing(query.Insert(Users, query.One[Users](newUser)))
//
// A decorated row source cannot be decorated again, and a statement over a
// decorated source cannot be passed to OnConflict or OnConflictDoNothing.
// Both mistakes are compile errors.
//
// Statements render PostgreSQL by default; WithDialect(SQLite) switches to
// SQLite placeholders.
package query
