package snippet

import (
	"github.com/pthm/pgupsert/pkg/query"
	"github.com/pthm/pgupsert/pkg/schema"
)

var row = query.Row[schema.Named]{schema.NewColumn(schema.Named("users"), "id").Value(1)}

var _ = row.OnConflictDoNothing().OnConflictDoNothing()
