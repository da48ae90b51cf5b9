package query

import (
	"github.com/pthm/pgupsert/pkg/schema"
	"github.com/pthm/pgupsert/pkg/upsert"
)

// Each row source shape gets its own OnConflict methods. InsertStatement
// deliberately has none; decorate a statement with the OnConflict and
// OnConflictDoNothing functions instead.

// OnConflictDoNothing adds "ON CONFLICT DO NOTHING".
//
// Deprecated: name the conflict target with OnConflict so that violations
// of other constraints are still reported.
func (r Row[T]) OnConflictDoNothing() Decorated[T] {
	return Decorate(r, doNothing[T]())
}

// OnConflict adds "ON CONFLICT <target> <action>".
func (r Row[T]) OnConflict(target upsert.Target[T], action upsert.Action[T]) Decorated[T] {
	return Decorate(r, upsert.New(target, action))
}

// OnConflictDoNothing adds "ON CONFLICT DO NOTHING".
//
// Deprecated: name the conflict target with OnConflict so that violations
// of other constraints are still reported.
func (s Single[T]) OnConflictDoNothing() Decorated[T] {
	return Decorate(s, doNothing[T]())
}

// OnConflict adds "ON CONFLICT <target> <action>".
func (s Single[T]) OnConflict(target upsert.Target[T], action upsert.Action[T]) Decorated[T] {
	return Decorate(s, upsert.New(target, action))
}

// OnConflictDoNothing adds "ON CONFLICT DO NOTHING".
//
// Deprecated: name the conflict target with OnConflict so that violations
// of other constraints are still reported.
func (r Rows[T]) OnConflictDoNothing() Decorated[T] {
	return Decorate(r, doNothing[T]())
}

// OnConflict adds "ON CONFLICT <target> <action>".
func (r Rows[T]) OnConflict(target upsert.Target[T], action upsert.Action[T]) Decorated[T] {
	return Decorate(r, upsert.New(target, action))
}

// OnConflictDoNothing adds "ON CONFLICT DO NOTHING".
//
// Deprecated: name the conflict target with OnConflict so that violations
// of other constraints are still reported.
func (o Optional[T]) OnConflictDoNothing() Decorated[T] {
	return Decorate(o, doNothing[T]())
}

// OnConflict adds "ON CONFLICT <target> <action>".
func (o Optional[T]) OnConflict(target upsert.Target[T], action upsert.Action[T]) Decorated[T] {
	return Decorate(o, upsert.New(target, action))
}

func doNothing[T schema.Table]() upsert.Clause[T] {
	var t T
	return upsert.IgnoreAll(t)
}
