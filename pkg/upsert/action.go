package upsert

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pthm/pgupsert/pkg/schema"
	"github.com/pthm/pgupsert/pkg/sqldsl"
)

// ActionKind tags the variant held by an Action.
type ActionKind uint8

const (
	// ActionNothing skips the conflicting row.
	ActionNothing ActionKind = iota
	// ActionUpdate updates the existing row instead.
	ActionUpdate
)

func (k ActionKind) String() string {
	switch k {
	case ActionNothing:
		return "nothing"
	case ActionUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Action is what happens when a proposed row conflicts. The zero value is
// DO NOTHING.
type Action[T schema.Table] struct {
	kind  ActionKind
	sets  []schema.Assignment[T]
	where sqldsl.Expr
}

// DoNothing returns the DO NOTHING action for table. The table value is
// only used to infer T; it is not inspected.
func DoNothing[T schema.Table](table T) Action[T] {
	return Action[T]{kind: ActionNothing}
}

// DoUpdate returns a DO UPDATE SET action. Each column may be assigned at
// most once.
func DoUpdate[T schema.Table](sets ...schema.Assignment[T]) (Action[T], error) {
	if len(sets) == 0 {
		return Action[T]{}, ErrEmptyUpdate
	}
	if err := schema.CheckAssignments(sets); err != nil {
		return Action[T]{}, errors.Join(ErrInvalidUpdate, err)
	}
	return Action[T]{kind: ActionUpdate, sets: slices.Clone(sets)}, nil
}

// Overwrite returns a DO UPDATE action that sets each column to the value
// proposed for insertion.
func Overwrite[T schema.Table](cols ...schema.Column[T]) (Action[T], error) {
	sets := make([]schema.Assignment[T], len(cols))
	for i, c := range cols {
		sets[i] = c.Set(c.Excluded())
	}
	return DoUpdate(sets...)
}

// Where returns a copy of the action that only updates rows matching cond.
// It has no effect on DO NOTHING or with a nil cond.
func (a Action[T]) Where(cond sqldsl.Expr) Action[T] {
	if a.kind != ActionUpdate || cond == nil {
		return a
	}
	a.where = cond
	return a
}

// Kind returns the variant tag.
func (a Action[T]) Kind() ActionKind { return a.kind }

// Assignments returns a copy of the SET list; nil for DO NOTHING.
func (a Action[T]) Assignments() []schema.Assignment[T] { return slices.Clone(a.sets) }

// Condition returns the WHERE expression of a DO UPDATE, or nil.
func (a Action[T]) Condition() sqldsl.Expr { return a.where }

// SQL renders the action segment.
func (a Action[T]) SQL() string {
	switch a.kind {
	case ActionNothing:
		return "DO NOTHING"
	case ActionUpdate:
		parts := make([]string, len(a.sets))
		for i, s := range a.sets {
			parts[i] = s.SQL()
		}
		sql := "DO UPDATE SET " + strings.Join(parts, ", ")
		if a.where != nil {
			sql += " WHERE " + a.where.SQL()
		}
		return sql
	default:
		panic(fmt.Sprintf("upsert: unknown action kind %d", a.kind))
	}
}
