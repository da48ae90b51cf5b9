// Package testutil provides shared fixtures and databases for tests.
package testutil

import (
	"context"
	"database/sql"
	_ "embed"
	"strings"

	"github.com/pthm/pgupsert/pkg/query"
	"github.com/pthm/pgupsert/pkg/schema"
)

//go:embed testdata/schema.sql
var schemaSQL string

// UsersTable is the users fixture table.
type UsersTable struct{}

// TableName implements schema.Table.
func (UsersTable) TableName() string { return "users" }

// PokesTable is the pokes fixture table. Its primary key is the pair
// (user_id, friend_id).
type PokesTable struct{}

// TableName implements schema.Table.
func (PokesTable) TableName() string { return "pokes" }

var (
	Users          = UsersTable{}
	UsersID        = schema.NewColumn(Users, "id")
	UsersName      = schema.NewColumn(Users, "name")
	UsersHairColor = schema.NewColumn(Users, "hair_color")
	UsersHits      = schema.NewColumn(Users, "hits")

	Pokes         = PokesTable{}
	PokesUserID   = schema.NewColumn(Pokes, "user_id")
	PokesFriendID = schema.NewColumn(Pokes, "friend_id")
	PokesTotal    = schema.NewColumn(Pokes, "total")
)

// NewUser is an insertable users record.
type NewUser struct {
	ID        int64
	Name      string
	HairColor *string
}

// InsertRow implements query.Record.
func (u NewUser) InsertRow() query.Row[UsersTable] {
	return query.Row[UsersTable]{
		UsersID.Value(u.ID),
		UsersName.Value(u.Name),
		UsersHairColor.Value(u.HairColor),
	}
}

// NewPoke is an insertable pokes record.
type NewPoke struct {
	UserID   int64
	FriendID int64
}

// InsertRow implements query.Record.
func (p NewPoke) InsertRow() query.Row[PokesTable] {
	return query.Row[PokesTable]{
		PokesUserID.Value(p.UserID),
		PokesFriendID.Value(p.FriendID),
	}
}

// ApplySchema creates the fixture tables.
func ApplySchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of rows in table.
func Count(ctx context.Context, db *sql.DB, table schema.Table) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table.TableName()).Scan(&n)
	return n, err
}

// Ptr returns a pointer to v.
func Ptr[V any](v V) *V { return &v }
