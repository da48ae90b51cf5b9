// Package plan loads insert plans: YAML files describing an INSERT with an
// optional ON CONFLICT clause against a table known only by name.
//
//	table: users
//	columns: [id, name, hair_color]
//	rows:
//	  - [1, Sean, black]
//	  - [2, Tess, null]
//	conflict:
//	  columns: [id]
//	  action: update
//	  overwrite: [name]
//	  where: users.name IS DISTINCT FROM EXCLUDED.name
//	returning: [id]
package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// ErrInvalidPlan is returned for plans that cannot be turned into a statement.
var ErrInvalidPlan = errors.New("plan: invalid plan")

// Plan is one INSERT statement.
type Plan struct {
	Table     string    `json:"table"`
	Columns   []string  `json:"columns"`
	Rows      [][]any   `json:"rows"`
	Conflict  *Conflict `json:"conflict,omitempty"`
	Returning []string  `json:"returning,omitempty"`
}

// Conflict is the ON CONFLICT clause of a plan. Columns and Constraint are
// mutually exclusive; with neither the clause has no target.
type Conflict struct {
	Columns    []string `json:"columns,omitempty"`
	Constraint string   `json:"constraint,omitempty"`

	// Action is "nothing" (the default) or "update".
	Action string `json:"action,omitempty"`

	// Set and Overwrite build the DO UPDATE assignments, Set first.
	Set       []Assign `json:"set,omitempty"`
	Overwrite []string `json:"overwrite,omitempty"`

	// Where is a raw SQL condition for DO UPDATE.
	Where string `json:"where,omitempty"`
}

// Assign is one DO UPDATE assignment. Exactly one of Excluded, Value or
// Raw should be set; a missing value assigns NULL.
type Assign struct {
	Column   string `json:"column"`
	Excluded bool   `json:"excluded,omitempty"`
	Value    any    `json:"value,omitempty"`
	Raw      string `json:"raw,omitempty"`
}

// Conflict actions.
const (
	ActionNothing = "nothing"
	ActionUpdate  = "update"
)

// Load reads and parses a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse parses a YAML plan. Unknown fields are rejected. Whole numbers are
// decoded as int64 and other numbers as float64.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.UnmarshalStrict(data, &p, useNumber); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	for _, row := range p.Rows {
		for i, v := range row {
			row[i] = normalize(v)
		}
	}
	if p.Conflict != nil {
		for i := range p.Conflict.Set {
			p.Conflict.Set[i].Value = normalize(p.Conflict.Set[i].Value)
		}
	}
	return &p, nil
}

func useNumber(d *json.Decoder) *json.Decoder {
	d.UseNumber()
	return d
}

func normalize(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
