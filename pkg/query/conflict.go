package query

import (
	"github.com/pthm/pgupsert/pkg/schema"
	"github.com/pthm/pgupsert/pkg/upsert"
)

// OnConflictDoNothing returns stmt with "ON CONFLICT DO NOTHING" attached
// to its row source. Statements whose rows are already decorated do not
// satisfy the constraint on R.
func OnConflictDoNothing[T schema.Table, R Undecorated[T]](stmt InsertStatement[T, R]) InsertStatement[T, Decorated[T]] {
	return redecorate(stmt, upsert.IgnoreAll(stmt.table))
}

// OnConflict returns stmt with "ON CONFLICT <target> <action>" attached to
// its row source.
func OnConflict[T schema.Table, R Undecorated[T]](stmt InsertStatement[T, R], target upsert.Target[T], action upsert.Action[T]) InsertStatement[T, Decorated[T]] {
	return redecorate(stmt, upsert.New(target, action))
}

func redecorate[T schema.Table, R Undecorated[T]](stmt InsertStatement[T, R], clause upsert.Clause[T]) InsertStatement[T, Decorated[T]] {
	return InsertStatement[T, Decorated[T]]{
		table:     stmt.table,
		rows:      Decorate(stmt.rows, clause),
		returning: stmt.returning,
		dialect:   stmt.dialect,
	}
}
