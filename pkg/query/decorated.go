package query

import (
	"github.com/pthm/pgupsert/pkg/schema"
	"github.com/pthm/pgupsert/pkg/upsert"
)

// Decorated is a row source with a trailing ON CONFLICT clause. It inserts
// the same rows as the source it was built from. It has no OnConflict
// methods and does not implement Undecorated.
type Decorated[T schema.Table] struct {
	rows   []Row[T]
	clause upsert.Clause[T]
}

// Decorate attaches clause to rows.
func Decorate[T schema.Table, R Undecorated[T]](rows R, clause upsert.Clause[T]) Decorated[T] {
	return Decorated[T]{rows: rows.InsertRows(), clause: clause}
}

// InsertRows implements Insertable.
func (d Decorated[T]) InsertRows() []Row[T] { return cloneRows(d.rows) }

// OnConflictClause returns the clause rendered after the VALUES list.
func (d Decorated[T]) OnConflictClause() upsert.Clause[T] { return d.clause }

// conflictSource is implemented by row sources with a trailing clause.
type conflictSource[T schema.Table] interface {
	OnConflictClause() upsert.Clause[T]
}
