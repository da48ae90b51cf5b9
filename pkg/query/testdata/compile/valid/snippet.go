package snippet

import (
	"github.com/pthm/pgupsert/pkg/query"
	"github.com/pthm/pgupsert/pkg/schema"
	"github.com/pthm/pgupsert/pkg/upsert"
)

var (
	users = schema.Named("users")
	id    = schema.NewColumn(users, "id")
	row   = query.Row[schema.Named]{id.Value(1)}
)

var (
	_ = query.OnConflictDoNothing(query.Insert(users, row))
	_ = query.OnConflict(query.Insert(users, row), upsert.NoTarget(users), upsert.DoNothing(users))
	_ = query.Insert(users, row.OnConflictDoNothing())
	_ = query.Insert(users, row.OnConflict(upsert.NoTarget(users), upsert.DoNothing(users)))
)
