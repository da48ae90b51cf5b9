// Package schema models tables and typed column references.
//
// A table is any type with a TableName method. Columns carry their owning
// table as a type parameter, so a list of Column[T] can never mix tables:
//
//	type users struct{}
//
//	func (users) TableName() string { return "users" }
//
//	var (
//	    Users     = users{}
//	    UsersID   = schema.NewColumn(Users, "id")
//	    UsersName = schema.NewColumn(Users, "name")
//	)
//
// Tables only known at runtime use Named. All Named tables share one Go
// type, so the package checks their identity by name instead.
package schema

// Table is implemented by every table marker type.
type Table interface {
	TableName() string
}

// Named is a table identified by a runtime name.
type Named string

// TableName returns the name.
func (n Named) TableName() string { return string(n) }
