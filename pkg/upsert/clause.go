package upsert

import "github.com/pthm/pgupsert/pkg/schema"

// Clause is a complete ON CONFLICT clause for table T.
type Clause[T schema.Table] struct {
	target Target[T]
	action Action[T]
}

// New pairs a target with an action. Both were validated when built, so New
// cannot fail.
func New[T schema.Table](target Target[T], action Action[T]) Clause[T] {
	return Clause[T]{target: target, action: action}
}

// IgnoreAll returns the bare "ON CONFLICT DO NOTHING" clause for table.
// As with NoTarget, table only fixes T.
func IgnoreAll[T schema.Table](table T) Clause[T] {
	return New(NoTarget(table), DoNothing(table))
}

// Target returns the conflict target.
func (c Clause[T]) Target() Target[T] { return c.target }

// Action returns the conflict action.
func (c Clause[T]) Action() Action[T] { return c.action }

// SQL renders the clause, starting with "ON CONFLICT".
func (c Clause[T]) SQL() string {
	sql := "ON CONFLICT"
	if t := c.target.SQL(); t != "" {
		sql += " " + t
	}
	return sql + " " + c.action.SQL()
}

// String implements fmt.Stringer.
func (c Clause[T]) String() string { return c.SQL() }
