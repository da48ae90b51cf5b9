package sqldsl

import (
	"strings"

	"github.com/lib/pq"
)

// MaxIdentLen is the longest identifier PostgreSQL keeps without truncation
// (NAMEDATALEN - 1).
const MaxIdentLen = 63

// reserved holds the keywords that cannot be used as bare column or table
// names. Only the fully reserved PostgreSQL keywords are listed.
var reserved = map[string]struct{}{
	"all": {}, "analyse": {}, "analyze": {}, "and": {}, "any": {}, "array": {},
	"as": {}, "asc": {}, "asymmetric": {}, "both": {}, "case": {}, "cast": {},
	"check": {}, "collate": {}, "column": {}, "constraint": {}, "create": {},
	"current_catalog": {}, "current_date": {}, "current_role": {},
	"current_time": {}, "current_timestamp": {}, "current_user": {},
	"default": {}, "deferrable": {}, "desc": {}, "distinct": {}, "do": {},
	"else": {}, "end": {}, "except": {}, "false": {}, "fetch": {}, "for": {},
	"foreign": {}, "from": {}, "grant": {}, "group": {}, "having": {}, "in": {},
	"initially": {}, "intersect": {}, "into": {}, "lateral": {}, "leading": {},
	"limit": {}, "localtime": {}, "localtimestamp": {}, "not": {}, "null": {},
	"offset": {}, "on": {}, "only": {}, "or": {}, "order": {}, "placing": {},
	"primary": {}, "references": {}, "returning": {}, "select": {},
	"session_user": {}, "some": {}, "symmetric": {}, "system_user": {},
	"table": {}, "then": {}, "to": {}, "trailing": {}, "true": {}, "union": {},
	"unique": {}, "user": {}, "using": {}, "variadic": {}, "when": {},
	"where": {}, "window": {}, "with": {},
}

// IsBareIdent reports whether name can be rendered without quotes: a
// lower-case letter or underscore followed by lower-case letters, digits,
// underscores or dollar signs, and not a reserved keyword.
func IsBareIdent(name string) bool {
	if name == "" || len(name) > MaxIdentLen {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case i > 0 && ((r >= '0' && r <= '9') || r == '$'):
		default:
			return false
		}
	}
	_, isReserved := reserved[name]
	return !isReserved
}

// QuoteIdent renders a single identifier, quoting it only when required.
// Example: QuoteIdent("name") -> name, QuoteIdent("Name") -> "Name"
func QuoteIdent(name string) string {
	if IsBareIdent(name) {
		return name
	}
	return pq.QuoteIdentifier(name)
}

// QuoteQualified renders a dot-separated name such as schema.table, quoting
// each part independently.
func QuoteQualified(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = QuoteIdent(p)
	}
	return strings.Join(parts, ".")
}

// ValidIdent reports whether name is usable as an identifier at all: it must
// be non-empty, at most MaxIdentLen bytes and free of NUL bytes.
func ValidIdent(name string) bool {
	return name != "" && len(name) <= MaxIdentLen && !strings.ContainsRune(name, 0)
}
