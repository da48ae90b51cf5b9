package snippet

import (
	"github.com/pthm/pgupsert/pkg/schema"
	"github.com/pthm/pgupsert/pkg/upsert"
)

type users struct{}

func (users) TableName() string { return "users" }

type pokes struct{}

func (pokes) TableName() string { return "pokes" }

var _, _ = upsert.Columns(schema.NewColumn(users{}, "id"), schema.NewColumn(pokes{}, "user_id"))
