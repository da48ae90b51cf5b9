package sqldsl

import "testing"

func TestExpr_SQL(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{name: "bare column", expr: Col{Column: "name"}, want: "name"},
		{name: "qualified column", expr: Col{Table: "users", Column: "name"}, want: "users.name"},
		{name: "schema qualified column", expr: Col{Table: "app.users", Column: "id"}, want: "app.users.id"},
		{name: "reserved column", expr: Col{Column: "user"}, want: `"user"`},
		{name: "excluded", expr: Excluded("hair_color"), want: "EXCLUDED.hair_color"},
		{name: "excluded mixed case", expr: Excluded("hairColor"), want: `EXCLUDED."hairColor"`},
		{name: "literal", expr: Lit("Sean"), want: "'Sean'"},
		{name: "literal with quote", expr: Lit("O'Brien"), want: "'O''Brien'"},
		{name: "int", expr: Int(-42), want: "-42"},
		{name: "float", expr: Float(1.5), want: "1.5"},
		{name: "true", expr: Bool(true), want: "TRUE"},
		{name: "false", expr: Bool(false), want: "FALSE"},
		{name: "null", expr: Null{}, want: "NULL"},
		{name: "default", expr: Default{}, want: "DEFAULT"},
		{name: "raw", expr: Raw("now()"), want: "now()"},
		{name: "param", expr: Param("v_count"), want: "v_count"},
		{
			name: "function",
			expr: Func{Name: "lower", Args: []Expr{Excluded("name")}},
			want: "lower(EXCLUDED.name)",
		},
		{
			name: "coalesce",
			expr: Coalesce(Col{Column: "nickname"}, Lit("anon")),
			want: "coalesce(nickname, 'anon')",
		},
		{name: "paren", expr: Paren{Expr: Int(1)}, want: "(1)"},
		{name: "empty concat", expr: Concat{}, want: "''"},
		{
			name: "concat",
			expr: Concat{Parts: []Expr{Col{Column: "name"}, Lit("!")}},
			want: "name || '!'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.SQL(); got != tt.want {
				t.Errorf("SQL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperators_SQL(t *testing.T) {
	name := Col{Column: "name"}
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{name: "eq", expr: Eq{Left: name, Right: Lit("a")}, want: "name = 'a'"},
		{name: "ne", expr: Ne{Left: name, Right: Lit("a")}, want: "name <> 'a'"},
		{name: "lt", expr: Lt{Left: Int(1), Right: Int(2)}, want: "1 < 2"},
		{name: "gte", expr: Gte{Left: Int(1), Right: Int(2)}, want: "1 >= 2"},
		{
			name: "distinct from",
			expr: IsDistinctFrom{Left: name, Right: Excluded("name")},
			want: "name IS DISTINCT FROM EXCLUDED.name",
		},
		{
			name: "add",
			expr: Add{Left: Col{Table: "counters", Column: "hits"}, Right: Int(1)},
			want: "counters.hits + 1",
		},
		{name: "empty in", expr: In{Expr: name}, want: "FALSE"},
		{name: "in", expr: In{Expr: name, Values: []Expr{Lit("a"), Lit("b")}}, want: "name IN ('a', 'b')"},
		{name: "empty and", expr: And(), want: "TRUE"},
		{name: "and drops nil", expr: And(nil, Eq{Left: name, Right: Lit("a")}), want: "name = 'a'"},
		{name: "or", expr: Or(IsNull{Expr: name}, IsNotNull{Expr: name}), want: "(name IS NULL OR name IS NOT NULL)"},
		{name: "not", expr: Not(Bool(true)), want: "NOT (TRUE)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.SQL(); got != tt.want {
				t.Errorf("SQL() = %q, want %q", got, tt.want)
			}
		})
	}
}
