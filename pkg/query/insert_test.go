package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/pgupsert/internal/testutil"
	"github.com/pthm/pgupsert/pkg/query"
	"github.com/pthm/pgupsert/pkg/schema"
	"github.com/pthm/pgupsert/pkg/sqldsl"
	"github.com/pthm/pgupsert/pkg/upsert"
)

var (
	users  = testutil.Users
	sean   = testutil.NewUser{ID: 1, Name: "Sean", HairColor: testutil.Ptr("black")}
	tess   = testutil.NewUser{ID: 2, Name: "Tess"}
	byID   = upsert.Must(upsert.Columns(testutil.UsersID))
	byName = upsert.Must(upsert.OnConstraint(users, "users_name"))
)

// Every shape can be decorated and the decorated value is still a row
// source for Insert.
var (
	_ query.Undecorated[testutil.UsersTable] = query.Row[testutil.UsersTable]{}
	_ query.Undecorated[testutil.UsersTable] = query.Single[testutil.UsersTable]{}
	_ query.Undecorated[testutil.UsersTable] = query.Rows[testutil.UsersTable]{}
	_ query.Undecorated[testutil.UsersTable] = query.Optional[testutil.UsersTable]{}
	_ query.Insertable[testutil.UsersTable]  = query.Decorated[testutil.UsersTable]{}
)

func TestInsert_SQL(t *testing.T) {
	const plain = "INSERT INTO users (id, name, hair_color) VALUES ($1, $2, $3)"

	tests := []struct {
		name     string
		stmt     query.Statement
		wantSQL  string
		wantArgs int
	}{
		{
			name:     "undecorated",
			stmt:     query.Insert(users, query.One[testutil.UsersTable](sean)),
			wantSQL:  plain,
			wantArgs: 3,
		},
		{
			name:     "single bare do nothing",
			stmt:     query.Insert(users, query.One[testutil.UsersTable](sean).OnConflictDoNothing()),
			wantSQL:  plain + " ON CONFLICT DO NOTHING",
			wantArgs: 3,
		},
		{
			name:     "row with target",
			stmt:     query.Insert(users, sean.InsertRow().OnConflict(byID, upsert.DoNothing(users))),
			wantSQL:  plain + " ON CONFLICT (id) DO NOTHING",
			wantArgs: 3,
		},
		{
			name:     "statement level do nothing",
			stmt:     query.OnConflictDoNothing(query.Insert(users, query.One[testutil.UsersTable](sean))),
			wantSQL:  plain + " ON CONFLICT DO NOTHING",
			wantArgs: 3,
		},
		{
			name: "statement level constraint",
			stmt: query.OnConflict(
				query.Insert(users, query.Some[testutil.UsersTable](sean)),
				byName, upsert.DoNothing(users),
			),
			wantSQL:  plain + " ON CONFLICT ON CONSTRAINT users_name DO NOTHING",
			wantArgs: 3,
		},
		{
			name: "many rows with update",
			stmt: query.Insert(users, query.Many[testutil.UsersTable](sean, tess).OnConflict(
				byID, upsert.Must(upsert.Overwrite(testutil.UsersName)),
			)),
			wantSQL: "INSERT INTO users (id, name, hair_color) VALUES ($1, $2, $3), ($4, $5, $6)" +
				" ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name",
			wantArgs: 6,
		},
		{
			name: "returning after clause",
			stmt: query.Insert(users, query.One[testutil.UsersTable](sean).OnConflict(byID, upsert.DoNothing(users))).
				Returning(testutil.UsersID, testutil.UsersHits),
			wantSQL:  plain + " ON CONFLICT (id) DO NOTHING RETURNING id, hits",
			wantArgs: 3,
		},
		{
			name: "inline default",
			stmt: query.Insert(users, query.Row[testutil.UsersTable]{
				testutil.UsersID.Value(9),
				testutil.UsersName.Value("Nine"),
				testutil.UsersHits.Value(sqldsl.Default{}),
			}),
			wantSQL:  "INSERT INTO users (id, name, hits) VALUES ($1, $2, DEFAULT)",
			wantArgs: 2,
		},
		{
			name: "sqlite placeholders",
			stmt: query.Insert(users, query.Many[testutil.UsersTable](sean, tess).OnConflictDoNothing()).
				WithDialect(query.SQLite),
			wantSQL:  "INSERT INTO users (id, name, hair_color) VALUES (?, ?, ?), (?, ?, ?) ON CONFLICT DO NOTHING",
			wantArgs: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.stmt.SQL()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Len(t, args, tt.wantArgs)
		})
	}
}

func TestInsert_DecorationPathsAgree(t *testing.T) {
	onRows, _, err := query.Insert(users, query.One[testutil.UsersTable](sean).OnConflict(byID, upsert.DoNothing(users))).SQL()
	require.NoError(t, err)

	onStmt, _, err := query.OnConflict(query.Insert(users, query.One[testutil.UsersTable](sean)), byID, upsert.DoNothing(users)).SQL()
	require.NoError(t, err)

	assert.Equal(t, onRows, onStmt)

	bareRows, _, err := query.Insert(users, query.One[testutil.UsersTable](sean).OnConflictDoNothing()).SQL()
	require.NoError(t, err)
	bareStmt, _, err := query.OnConflictDoNothing(query.Insert(users, query.One[testutil.UsersTable](sean))).SQL()
	require.NoError(t, err)
	assert.Equal(t, bareRows, bareStmt)
}

func TestInsert_RowOrderAndArgs(t *testing.T) {
	rows := query.RowsOf(
		query.Row[testutil.UsersTable]{testutil.UsersID.Value(1), testutil.UsersName.Value("a")},
		query.Row[testutil.UsersTable]{testutil.UsersName.Value("b"), testutil.UsersID.Value(2)},
	)
	sql, args, err := query.Insert(users, rows).SQL()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (id, name) VALUES ($1, $2), ($3, $4)", sql)
	assert.Equal(t, []any{1, "a", 2, "b"}, args)
}

func TestInsert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		stmt    query.Statement
		wantErr error
	}{
		{
			name:    "no rows",
			stmt:    query.Insert(users, query.None[testutil.UsersTable]()),
			wantErr: query.ErrNoRows,
		},
		{
			name:    "empty row",
			stmt:    query.Insert(users, query.Row[testutil.UsersTable]{}),
			wantErr: query.ErrNoColumns,
		},
		{
			name: "row shape",
			stmt: query.Insert(users, query.RowsOf(
				query.Row[testutil.UsersTable]{testutil.UsersID.Value(1), testutil.UsersName.Value("a")},
				query.Row[testutil.UsersTable]{testutil.UsersID.Value(2)},
			)),
			wantErr: query.ErrRowShape,
		},
		{
			name: "unexpected column",
			stmt: query.Insert(users, query.RowsOf(
				query.Row[testutil.UsersTable]{testutil.UsersID.Value(1), testutil.UsersName.Value("a")},
				query.Row[testutil.UsersTable]{testutil.UsersID.Value(2), testutil.UsersHits.Value(3)},
			)),
			wantErr: query.ErrRowShape,
		},
		{
			name:    "duplicate column",
			stmt:    query.Insert(users, query.Row[testutil.UsersTable]{testutil.UsersID.Value(1), testutil.UsersID.Value(2)}),
			wantErr: schema.ErrDuplicateColumn,
		},
		{
			name: "constraint target on sqlite",
			stmt: query.Insert(users, query.One[testutil.UsersTable](sean).OnConflict(byName, upsert.DoNothing(users))).
				WithDialect(query.SQLite),
			wantErr: query.ErrUnsupported,
		},
		{
			name: "named table mismatch",
			stmt: query.Insert(schema.Named("posts"), query.Row[schema.Named]{
				schema.NewColumn(schema.Named("comments"), "id").Value(1),
			}),
			wantErr: query.ErrTableMismatch,
		},
		{
			name: "conflict target from another table",
			stmt: query.Insert(schema.Named("users"), query.Row[schema.Named]{
				schema.NewColumn(schema.Named("users"), "id").Value(1),
			}.OnConflict(
				upsert.Must(upsert.Columns(schema.NewColumn(schema.Named("orders"), "order_no"))),
				upsert.DoNothing(schema.Named("users")),
			)),
			wantErr: query.ErrTableMismatch,
		},
		{
			name: "do update column from another table",
			stmt: query.Insert(schema.Named("users"), query.Row[schema.Named]{
				schema.NewColumn(schema.Named("users"), "id").Value(1),
			}.OnConflict(
				upsert.Must(upsert.Columns(schema.NewColumn(schema.Named("users"), "id"))),
				upsert.Must(upsert.Overwrite(schema.NewColumn(schema.Named("orders"), "total"))),
			)),
			wantErr: query.ErrTableMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.stmt.SQL()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRows_Immutable(t *testing.T) {
	row := sean.InsertRow()
	decorated := row.OnConflict(byID, upsert.DoNothing(users))
	row[1] = testutil.UsersName.Value("changed")

	got := decorated.InsertRows()
	require.Len(t, got, 1)
	assert.Equal(t, "Sean", got[0][1].Arg)

	got[0][1] = testutil.UsersName.Value("again")
	assert.Equal(t, "Sean", decorated.InsertRows()[0][1].Arg)
}

func TestOptional(t *testing.T) {
	var missing *testutil.NewUser
	assert.False(t, query.FromPtr[testutil.UsersTable](missing).IsSome())
	assert.Empty(t, query.None[testutil.UsersTable]().InsertRows())

	present := query.FromPtr[testutil.UsersTable](&sean)
	assert.True(t, present.IsSome())
	assert.Len(t, present.InsertRows(), 1)

	clause := present.OnConflictDoNothing().OnConflictClause()
	assert.Equal(t, "ON CONFLICT DO NOTHING", clause.SQL())
}

func TestSlice(t *testing.T) {
	rows := query.Slice[testutil.UsersTable]([]testutil.NewUser{sean, tess})
	assert.Equal(t, 2, rows.Len())
	assert.Equal(t, "Tess", rows.InsertRows()[1][1].Arg)
}

func TestUpdate_SQL(t *testing.T) {
	stmt := query.Update(users).
		Set(testutil.UsersHits.Set(sqldsl.Add{Left: testutil.UsersHits, Right: sqldsl.Int(1)})).
		SetValues(testutil.UsersHairColor.Value("red")).
		Where(testutil.UsersID.Eq(sqldsl.Int(1)))

	sql, args, err := stmt.SQL()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET hits = users.hits + 1, hair_color = $1 WHERE users.id = 1", sql)
	assert.Equal(t, []any{"red"}, args)

	_, _, err = query.Update(users).SQL()
	require.ErrorIs(t, err, schema.ErrNoAssignments)

	_, _, err = query.Update(users).
		Set(testutil.UsersHits.Set(sqldsl.Int(0))).
		SetValues(testutil.UsersHits.Value(1)).
		SQL()
	require.ErrorIs(t, err, schema.ErrDuplicateColumn)
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    query.Dialect
		wantErr bool
	}{
		{in: "", want: query.Postgres},
		{in: "postgres", want: query.Postgres},
		{in: "PostgreSQL", want: query.Postgres},
		{in: "sqlite3", want: query.SQLite},
		{in: "mysql", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := query.ParseDialect(tt.in)
			if tt.wantErr {
				assert.True(t, query.IsUnsupportedErr(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
