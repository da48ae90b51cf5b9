package query

import (
	"slices"

	"github.com/pthm/pgupsert/pkg/schema"
)

// Insertable is implemented by every row source an insert statement
// accepts.
type Insertable[T schema.Table] interface {
	InsertRows() []Row[T]
}

// Undecorated is implemented by the row source shapes of this package that
// carry no ON CONFLICT clause yet. Decorated does not implement it, so a
// row source cannot be decorated twice.
type Undecorated[T schema.Table] interface {
	Insertable[T]
	undecoratedInsert()
}

// Record is implemented by user types that map to one row of table T.
type Record[T schema.Table] interface {
	InsertRow() Row[T]
}

// Row is a single record given as an ordered list of column values.
type Row[T schema.Table] []schema.Value[T]

// InsertRows implements Insertable.
func (r Row[T]) InsertRows() []Row[T] { return []Row[T]{slices.Clone(r)} }

func (Row[T]) undecoratedInsert() {}

// Single is a lone record.
type Single[T schema.Table] struct {
	row Row[T]
}

// One captures rec as a single-row source.
func One[T schema.Table](rec Record[T]) Single[T] {
	return Single[T]{row: slices.Clone(rec.InsertRow())}
}

// InsertRows implements Insertable.
func (s Single[T]) InsertRows() []Row[T] { return []Row[T]{slices.Clone(s.row)} }

func (Single[T]) undecoratedInsert() {}

// Rows is an ordered sequence of records.
type Rows[T schema.Table] struct {
	rows []Row[T]
}

// Many captures recs, in order, as a multi-row source.
func Many[T schema.Table](recs ...Record[T]) Rows[T] {
	rows := make([]Row[T], len(recs))
	for i, rec := range recs {
		rows[i] = slices.Clone(rec.InsertRow())
	}
	return Rows[T]{rows: rows}
}

// Slice is Many for a slice of one concrete record type:
//
//	query.Slice[Users](newUsers)
func Slice[T schema.Table, R Record[T]](recs []R) Rows[T] {
	rows := make([]Row[T], len(recs))
	for i, rec := range recs {
		rows[i] = slices.Clone(rec.InsertRow())
	}
	return Rows[T]{rows: rows}
}

// RowsOf builds a multi-row source from explicit rows.
func RowsOf[T schema.Table](rows ...Row[T]) Rows[T] {
	return Rows[T]{rows: cloneRows(rows)}
}

// InsertRows implements Insertable.
func (r Rows[T]) InsertRows() []Row[T] { return cloneRows(r.rows) }

// Len returns the number of rows.
func (r Rows[T]) Len() int { return len(r.rows) }

func (Rows[T]) undecoratedInsert() {}

// Optional is a record that may be absent. An absent record inserts
// nothing.
type Optional[T schema.Table] struct {
	row Row[T]
	ok  bool
}

// Some captures rec as a present optional record.
func Some[T schema.Table](rec Record[T]) Optional[T] {
	return Optional[T]{row: slices.Clone(rec.InsertRow()), ok: true}
}

// None returns an absent optional record.
func None[T schema.Table]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns Some(*rec), or None for a nil pointer.
func FromPtr[T schema.Table, R Record[T]](rec *R) Optional[T] {
	if rec == nil {
		return None[T]()
	}
	return Some[T](*rec)
}

// IsSome reports whether the record is present.
func (o Optional[T]) IsSome() bool { return o.ok }

// InsertRows implements Insertable.
func (o Optional[T]) InsertRows() []Row[T] {
	if !o.ok {
		return nil
	}
	return []Row[T]{slices.Clone(o.row)}
}

func (Optional[T]) undecoratedInsert() {}

func cloneRows[T schema.Table](rows []Row[T]) []Row[T] {
	out := make([]Row[T], len(rows))
	for i, r := range rows {
		out[i] = slices.Clone(r)
	}
	return out
}
