package plan

import (
	"fmt"

	"github.com/pthm/pgupsert/pkg/query"
	"github.com/pthm/pgupsert/pkg/schema"
	"github.com/pthm/pgupsert/pkg/sqldsl"
	"github.com/pthm/pgupsert/pkg/upsert"
)

// Build turns the plan into an insert statement for dialect.
func (p *Plan) Build(dialect query.Dialect) (query.Statement, error) {
	if !sqldsl.ValidIdent(p.Table) {
		return nil, fmt.Errorf("%w: table %q", ErrInvalidPlan, p.Table)
	}
	table := schema.Named(p.Table)

	cols := columns(table, p.Columns)
	if err := schema.CheckColumns(cols); err != nil {
		return nil, fmt.Errorf("%w: columns: %w", ErrInvalidPlan, err)
	}

	rows := make([]query.Row[schema.Named], len(p.Rows))
	for i, values := range p.Rows {
		if len(values) != len(cols) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidPlan, i, len(values), len(cols))
		}
		row := make(query.Row[schema.Named], len(cols))
		for j, c := range cols {
			row[j] = c.Value(values[j])
		}
		rows[i] = row
	}
	source := query.RowsOf(rows...)
	returning := columns(table, p.Returning)

	if p.Conflict == nil {
		return query.Insert(table, source).Returning(returning...).WithDialect(dialect), nil
	}

	target, err := p.Conflict.target(table)
	if err != nil {
		return nil, err
	}
	action, err := p.Conflict.action(table)
	if err != nil {
		return nil, err
	}
	return query.Insert(table, source.OnConflict(target, action)).Returning(returning...).WithDialect(dialect), nil
}

func (c *Conflict) target(table schema.Named) (upsert.Target[schema.Named], error) {
	switch {
	case len(c.Columns) > 0 && c.Constraint != "":
		return upsert.Target[schema.Named]{}, fmt.Errorf("%w: conflict columns and constraint are exclusive", ErrInvalidPlan)
	case len(c.Columns) > 0:
		t, err := upsert.Columns(columns(table, c.Columns)...)
		if err != nil {
			return t, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
		}
		return t, nil
	case c.Constraint != "":
		t, err := upsert.OnConstraint(table, c.Constraint)
		if err != nil {
			return t, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
		}
		return t, nil
	default:
		return upsert.NoTarget(table), nil
	}
}

func (c *Conflict) action(table schema.Named) (upsert.Action[schema.Named], error) {
	switch c.Action {
	case "", ActionNothing:
		if len(c.Set) > 0 || len(c.Overwrite) > 0 || c.Where != "" {
			return upsert.Action[schema.Named]{}, fmt.Errorf("%w: set, overwrite and where need action %q", ErrInvalidPlan, ActionUpdate)
		}
		return upsert.DoNothing(table), nil
	case ActionUpdate:
	default:
		return upsert.Action[schema.Named]{}, fmt.Errorf("%w: unknown conflict action %q", ErrInvalidPlan, c.Action)
	}

	sets := make([]schema.Assignment[schema.Named], 0, len(c.Set)+len(c.Overwrite))
	for _, a := range c.Set {
		col := schema.NewColumn(table, a.Column)
		sets = append(sets, col.Set(a.expr(col)))
	}
	for _, name := range c.Overwrite {
		col := schema.NewColumn(table, name)
		sets = append(sets, col.Set(col.Excluded()))
	}

	action, err := upsert.DoUpdate(sets...)
	if err != nil {
		return action, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	if c.Where != "" {
		action = action.Where(sqldsl.Raw(c.Where))
	}
	return action, nil
}

func (a Assign) expr(col schema.Column[schema.Named]) sqldsl.Expr {
	switch {
	case a.Excluded:
		return col.Excluded()
	case a.Raw != "":
		return sqldsl.Raw(a.Raw)
	default:
		return literal(a.Value)
	}
}

// literal renders a decoded YAML scalar inline. DO UPDATE assignments are
// rendered after the VALUES list and carry no bind arguments.
func literal(v any) sqldsl.Expr {
	switch v := v.(type) {
	case nil:
		return sqldsl.Null{}
	case bool:
		return sqldsl.Bool(v)
	case int64:
		return sqldsl.Int(v)
	case float64:
		return sqldsl.Float(v)
	case string:
		return sqldsl.Lit(v)
	default:
		return sqldsl.Lit(fmt.Sprint(v))
	}
}

func columns(table schema.Named, names []string) []schema.Column[schema.Named] {
	cols := make([]schema.Column[schema.Named], len(names))
	for i, name := range names {
		cols[i] = schema.NewColumn(table, name)
	}
	return cols
}
