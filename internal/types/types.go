// Package types defines the attribute type system for Tabula.
// Each attribute type keyword maps to a Go field type for the generated model
// and to SQL column types for each supported database dialect.
//
// The type system is designed to be:
//   - Portable: works across PostgreSQL and SQLite
//   - Predictable: one keyword, one column type, no options
//   - Small: the set is fixed; unknown keywords are rejected at parse time
package types

import (
	"sort"

	"github.com/hlop3z/tabula/internal/tberr"
)

// -----------------------------------------------------------------------------
// Dialect
// -----------------------------------------------------------------------------

// Dialect represents a supported SQL database dialect.
type Dialect int

const (
	// Postgres represents the PostgreSQL dialect.
	Postgres Dialect = iota
	// SQLite represents the SQLite dialect.
	SQLite
)

// String returns the string representation of the dialect.
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

// ParseDialect parses a dialect name from configuration.
func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "postgres", "postgresql":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return Postgres, tberr.New(tberr.ErrConfigInvalid, "unsupported dialect").
			With("dialect", s).
			WithHelp("supported dialects: postgres, sqlite")
	}
}

// -----------------------------------------------------------------------------
// TypeDef - Type definition
// -----------------------------------------------------------------------------

// TypeDef represents an attribute type definition.
type TypeDef struct {
	Name     string     // Keyword in the attribute spec (e.g. "string", "integer")
	GoType   string     // Go field type in the generated model (e.g. "string", "int32")
	GoImport string     // Import required by GoType, if any (e.g. "time")
	SQLTypes SQLTypeMap // Database-specific SQL column types
}

// SQLTypeMap holds database-specific SQL column type strings.
type SQLTypeMap struct {
	Postgres string // PostgreSQL type (e.g. "TIMESTAMPTZ")
	SQLite   string // SQLite type (e.g. "TEXT")
}

// SQL returns the column type for the given dialect.
func (m SQLTypeMap) SQL(d Dialect) string {
	if d == SQLite {
		return m.SQLite
	}
	return m.Postgres
}

// -----------------------------------------------------------------------------
// Type Registry
// -----------------------------------------------------------------------------

// registry holds all registered types indexed by keyword.
var registry = make(map[string]*TypeDef)

// Register adds a type to the registry.
// Panics if a type with the same keyword is already registered.
func Register(t *TypeDef) {
	if _, exists := registry[t.Name]; exists {
		panic("type already registered: " + t.Name)
	}
	registry[t.Name] = t
}

// Get returns the type definition for the given keyword.
// Returns nil if the type is not found.
func Get(name string) *TypeDef {
	return registry[name]
}

// Exists returns true if a type with the given keyword is registered.
func Exists(name string) bool {
	return registry[name] != nil
}

// All returns all registered types sorted by keyword.
func All() []*TypeDef {
	types := make([]*TypeDef, 0, len(registry))
	for _, t := range registry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	return types
}

// Names returns all registered type keywords sorted alphabetically.
// Used for "did you mean" suggestions and the types listing.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// -----------------------------------------------------------------------------
// Built-in Types
// -----------------------------------------------------------------------------

func init() {
	// Variable-length string. The default type when a token carries none.
	Register(&TypeDef{
		Name:   "string",
		GoType: "string",
		SQLTypes: SQLTypeMap{
			Postgres: "VARCHAR(255)",
			SQLite:   "TEXT",
		},
	})

	// Unlimited length text
	Register(&TypeDef{
		Name:   "text",
		GoType: "string",
		SQLTypes: SQLTypeMap{
			Postgres: "TEXT",
			SQLite:   "TEXT",
		},
	})

	// 32-bit signed integer
	Register(&TypeDef{
		Name:   "integer",
		GoType: "int32",
		SQLTypes: SQLTypeMap{
			Postgres: "INTEGER",
			SQLite:   "INTEGER",
		},
	})

	// 32-bit floating point
	Register(&TypeDef{
		Name:   "float",
		GoType: "float32",
		SQLTypes: SQLTypeMap{
			Postgres: "REAL",
			SQLite:   "REAL",
		},
	})

	// Arbitrary-precision decimal, string-serialized to preserve precision
	Register(&TypeDef{
		Name:   "decimal",
		GoType: "string",
		SQLTypes: SQLTypeMap{
			Postgres: "NUMERIC",
			SQLite:   "TEXT",
		},
	})

	// Boolean (true/false)
	Register(&TypeDef{
		Name:   "boolean",
		GoType: "bool",
		SQLTypes: SQLTypeMap{
			Postgres: "BOOLEAN",
			SQLite:   "INTEGER",
		},
	})

	// Date only (YYYY-MM-DD)
	Register(&TypeDef{
		Name:     "date",
		GoType:   "time.Time",
		GoImport: "time",
		SQLTypes: SQLTypeMap{
			Postgres: "DATE",
			SQLite:   "TEXT",
		},
	})

	// Time only (HH:MM:SS)
	Register(&TypeDef{
		Name:     "time",
		GoType:   "time.Time",
		GoImport: "time",
		SQLTypes: SQLTypeMap{
			Postgres: "TIME",
			SQLite:   "TEXT",
		},
	})

	// Timestamp with timezone, stored in UTC
	Register(&TypeDef{
		Name:     "datetime",
		GoType:   "time.Time",
		GoImport: "time",
		SQLTypes: SQLTypeMap{
			Postgres: "TIMESTAMPTZ",
			SQLite:   "TEXT",
		},
	})

	// UUID value (not a primary key)
	Register(&TypeDef{
		Name:   "uuid",
		GoType: "string",
		SQLTypes: SQLTypeMap{
			Postgres: "UUID",
			SQLite:   "TEXT",
		},
	})

	// JSON document
	Register(&TypeDef{
		Name:   "json",
		GoType: "map[string]any",
		SQLTypes: SQLTypeMap{
			Postgres: "JSONB",
			SQLite:   "TEXT",
		},
	})

	// Raw binary data
	Register(&TypeDef{
		Name:   "binary",
		GoType: "[]byte",
		SQLTypes: SQLTypeMap{
			Postgres: "BYTEA",
			SQLite:   "BLOB",
		},
	})
}

// -----------------------------------------------------------------------------
// Primary Keys and Foreign Keys
// -----------------------------------------------------------------------------

// IDColumn returns the primary key column definition for the dialect.
// With binaryID the key is an externally generated UUID; otherwise it is an
// auto-incrementing integer.
func IDColumn(d Dialect, binaryID bool) string {
	if binaryID {
		if d == SQLite {
			return "TEXT PRIMARY KEY"
		}
		return "UUID PRIMARY KEY DEFAULT gen_random_uuid()"
	}
	if d == SQLite {
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
	return "BIGSERIAL PRIMARY KEY"
}

// FKType returns the foreign key column type for the dialect.
// Must agree with IDColumn: UUID keys reference UUID columns, integer keys
// reference integer columns.
func FKType(d Dialect, binaryID bool) string {
	if binaryID {
		if d == SQLite {
			return "TEXT"
		}
		return "UUID"
	}
	if d == SQLite {
		return "INTEGER"
	}
	return "BIGINT"
}

// ArraySQL returns the column type for an array of the given element type.
// PostgreSQL has native arrays; SQLite stores a JSON-encoded TEXT column.
func ArraySQL(d Dialect, elem *TypeDef) string {
	if d == SQLite {
		return "TEXT"
	}
	return elem.SQLTypes.Postgres + "[]"
}
