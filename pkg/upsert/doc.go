// Package upsert builds PostgreSQL ON CONFLICT clauses.
//
// # Overview
//
// A clause is the pair of a conflict target and a conflict action:
//
//	target := upsert.Must(upsert.Columns(UsersName))
//	action := upsert.DoNothing(Users)
//	clause := upsert.New(target, action)
//
//	clause.SQL() // ON CONFLICT (name) DO NOTHING
//
// Targets and actions are parameterised by the table type, so a clause for
// one table cannot be built from another table's columns. Checks that the
// type system cannot express (empty column lists, duplicate columns,
// unusable constraint names) are done by the constructors, which return an
// error before any SQL exists.
//
// # Targets
//
//	NoTarget(Users)                      //
//	Columns(UsersName)                   // (name)
//	Columns(UsersName, UsersHairColor)   // (name, hair_color)
//	OnConstraint(Users, "users_name")    // ON CONSTRAINT users_name
//
// # Actions
//
//	DoNothing(Users)                                     // DO NOTHING
//	DoUpdate(UsersName.Set(UsersName.Excluded()))        // DO UPDATE SET name = EXCLUDED.name
//	Overwrite(UsersName, UsersHairColor)                 // DO UPDATE SET name = EXCLUDED.name, hair_color = EXCLUDED.hair_color
//	action.Where(cond)                                   // DO UPDATE SET ... WHERE cond
//
// All values are immutable and safe to share between goroutines. Attaching
// a clause to rows or to an insert statement is done by the query package.
package upsert
