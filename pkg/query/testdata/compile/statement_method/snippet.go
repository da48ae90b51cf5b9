package snippet

import (
	"github.com/pthm/pgupsert/pkg/query"
	"github.com/pthm/pgupsert/pkg/schema"
)

var (
	users = schema.Named("users")
	row   = query.Row[schema.Named]{schema.NewColumn(users, "id").Value(1)}
)

var _ = query.Insert(users, row).OnConflictDoNothing()
