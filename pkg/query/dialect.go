package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pthm/pgupsert/pkg/upsert"
)

// Dialect selects placeholder syntax and the ON CONFLICT features a
// statement may use.
type Dialect uint8

const (
	// Postgres renders $1, $2, ... placeholders. It is the default.
	Postgres Dialect = iota
	// SQLite renders ? placeholders and has no ON CONSTRAINT targets.
	SQLite
)

// ParseDialect maps a config value to a Dialect. The empty string is Postgres.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "postgres", "postgresql", "pg":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return Postgres, fmt.Errorf("%w: dialect %q", ErrUnsupported, s)
	}
}

func (d Dialect) String() string {
	switch d {
	case Postgres:
		return "postgres"
	case SQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// Placeholder renders the n-th (1-based) bind parameter.
func (d Dialect) Placeholder(n int) string {
	if d == SQLite {
		return "?"
	}
	return "$" + strconv.Itoa(n)
}

// checkTarget reports targets the dialect cannot express.
func (d Dialect) checkTarget(kind upsert.TargetKind) error {
	if d == SQLite && kind == upsert.TargetConstraint {
		return fmt.Errorf("%w: %s does not support ON CONFLICT ON CONSTRAINT", ErrUnsupported, d)
	}
	return nil
}
