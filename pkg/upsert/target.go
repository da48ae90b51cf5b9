package upsert

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pthm/pgupsert/pkg/schema"
	"github.com/pthm/pgupsert/pkg/sqldsl"
)

// TargetKind tags the variant held by a Target.
type TargetKind uint8

const (
	// TargetNone is a bare ON CONFLICT that matches any unique violation.
	TargetNone TargetKind = iota
	// TargetColumns names the columns of a unique index.
	TargetColumns
	// TargetConstraint names a constraint.
	TargetConstraint
)

func (k TargetKind) String() string {
	switch k {
	case TargetNone:
		return "none"
	case TargetColumns:
		return "columns"
	case TargetConstraint:
		return "constraint"
	default:
		return "unknown"
	}
}

// Target is the uniqueness constraint a conflict is checked against. The
// zero value is the no-target variant.
type Target[T schema.Table] struct {
	kind       TargetKind
	columns    []schema.Column[T]
	constraint string
}

// NoTarget returns the target of a bare ON CONFLICT for table. The table
// value is only used to infer T; it is not inspected.
func NoTarget[T schema.Table](table T) Target[T] {
	return Target[T]{kind: TargetNone}
}

// Columns returns a target naming one or more columns of the same table,
// in order. The list must be non-empty and free of duplicates.
func Columns[T schema.Table](cols ...schema.Column[T]) (Target[T], error) {
	if len(cols) == 0 {
		return Target[T]{}, ErrEmptyTarget
	}
	if err := schema.CheckColumns(cols); err != nil {
		return Target[T]{}, errors.Join(ErrInvalidTarget, err)
	}
	return Target[T]{kind: TargetColumns, columns: slices.Clone(cols)}, nil
}

// OnConstraint returns a target naming a constraint of table. Only the
// name is validated; table fixes T and whether the constraint exists is up
// to the database.
func OnConstraint[T schema.Table](table T, name string) (Target[T], error) {
	if !sqldsl.ValidIdent(name) {
		return Target[T]{}, fmt.Errorf("%w: %q", ErrInvalidConstraint, name)
	}
	return Target[T]{kind: TargetConstraint, constraint: name}, nil
}

// Kind returns the variant tag.
func (t Target[T]) Kind() TargetKind { return t.kind }

// Columns returns a copy of the target columns; nil unless Kind is TargetColumns.
func (t Target[T]) Columns() []schema.Column[T] { return slices.Clone(t.columns) }

// Constraint returns the constraint name; empty unless Kind is TargetConstraint.
func (t Target[T]) Constraint() string { return t.constraint }

// SQL renders the target segment: "" for no target, "(c1, c2)" for columns
// and "ON CONSTRAINT name" for a constraint.
func (t Target[T]) SQL() string {
	switch t.kind {
	case TargetNone:
		return ""
	case TargetColumns:
		names := make([]string, len(t.columns))
		for i, c := range t.columns {
			names[i] = c.Ident()
		}
		return "(" + strings.Join(names, ", ") + ")"
	case TargetConstraint:
		return "ON CONSTRAINT " + sqldsl.QuoteIdent(t.constraint)
	default:
		panic(fmt.Sprintf("upsert: unknown target kind %d", t.kind))
	}
}
