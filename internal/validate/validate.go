// Package validate provides validation helpers for SQL identifiers and
// generator arguments. It enforces the naming conventions Tabula requires:
// snake_case everywhere and no reserved words in generated identifiers.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hlop3z/tabula/internal/naming"
	"github.com/hlop3z/tabula/internal/tberr"
)

// -----------------------------------------------------------------------------
// SQL Reserved Words
// -----------------------------------------------------------------------------

// reservedWords contains SQL reserved words from the SQL standard plus the
// PostgreSQL and SQLite dialects Tabula generates for.
var reservedWords = map[string]bool{
	// SQL Standard Keywords
	"add":        true,
	"all":        true,
	"alter":      true,
	"and":        true,
	"any":        true,
	"as":         true,
	"asc":        true,
	"between":    true,
	"by":         true,
	"case":       true,
	"check":      true,
	"column":     true,
	"constraint": true,
	"create":     true,
	"cross":      true,
	"current":    true,
	"database":   true,
	"default":    true,
	"delete":     true,
	"desc":       true,
	"distinct":   true,
	"drop":       true,
	"else":       true,
	"end":        true,
	"exists":     true,
	"false":      true,
	"fetch":      true,
	"for":        true,
	"foreign":    true,
	"from":       true,
	"full":       true,
	"grant":      true,
	"group":      true,
	"having":     true,
	"if":         true,
	"in":         true,
	"index":      true,
	"inner":      true,
	"insert":     true,
	"into":       true,
	"is":         true,
	"join":       true,
	"key":        true,
	"left":       true,
	"like":       true,
	"limit":      true,
	"not":        true,
	"null":       true,
	"offset":     true,
	"on":         true,
	"or":         true,
	"order":      true,
	"outer":      true,
	"primary":    true,
	"references": true,
	"revoke":     true,
	"right":      true,
	"select":     true,
	"set":        true,
	"table":      true,
	"then":       true,
	"to":         true,
	"true":       true,
	"union":      true,
	"unique":     true,
	"update":     true,
	"using":      true,
	"values":     true,
	"view":       true,
	"when":       true,
	"where":      true,
	"with":       true,

	// PostgreSQL specific
	"analyze":   true,
	"array":     true,
	"begin":     true,
	"cast":      true,
	"commit":    true,
	"copy":      true,
	"do":        true,
	"except":    true,
	"explain":   true,
	"ilike":     true,
	"intersect": true,
	"isnull":    true,
	"lateral":   true,
	"natural":   true,
	"notnull":   true,
	"only":      true,
	"returning": true,
	"rollback":  true,
	"row":       true,
	"savepoint": true,
	"truncate":  true,
	"user":      true,
	"vacuum":    true,
	"window":    true,

	// SQLite specific
	"action":    true,
	"after":     true,
	"attach":    true,
	"conflict":  true,
	"detach":    true,
	"fail":      true,
	"glob":      true,
	"indexed":   true,
	"instead":   true,
	"plan":      true,
	"pragma":    true,
	"query":     true,
	"raise":     true,
	"reindex":   true,
	"temp":      true,
	"temporary": true,
	"virtual":   true,
}

// IsReservedWord checks if the given string is a SQL reserved word.
// The check is case-insensitive.
func IsReservedWord(s string) bool {
	return reservedWords[strings.ToLower(s)]
}

// ReservedWordError returns an error if s is a reserved word, nil otherwise.
func ReservedWordError(s string) error {
	if IsReservedWord(s) {
		return tberr.New(tberr.ErrReservedWord, fmt.Sprintf("'%s' is a SQL reserved word", s)).
			With("identifier", s).
			WithSuggestion(s + "_value")
	}
	return nil
}

// -----------------------------------------------------------------------------
// Snake Case Validation
// -----------------------------------------------------------------------------

// snakeCaseRegex matches valid snake_case identifiers:
// - starts with lowercase letter
// - contains only lowercase letters, digits, and underscores
// - no consecutive underscores
// - doesn't end with underscore
var snakeCaseRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)

// IsSnakeCase checks if the given string is valid snake_case.
func IsSnakeCase(s string) bool {
	if s == "" {
		return false
	}
	return snakeCaseRegex.MatchString(s)
}

// SnakeCase validates that s is valid snake_case and a usable identifier.
func SnakeCase(s string) error {
	if s == "" {
		return tberr.New(tberr.ErrInvalidSnakeCase, "name cannot be empty")
	}

	if !IsSnakeCase(s) {
		suggestion := naming.Underscore(s)
		err := tberr.New(tberr.ErrInvalidSnakeCase, "name must be snake_case").
			With("got", s)
		if suggestion != s && IsSnakeCase(suggestion) {
			err.WithSuggestion(suggestion)
		}
		return err
	}

	// PostgreSQL identifier limit
	if len(s) > 63 {
		return tberr.New(tberr.ErrInvalidIdentifier, "name exceeds maximum length of 63 characters").
			With("name", s).
			With("length", len(s))
	}

	return nil
}

// AttributeName validates an attribute (column) name.
// Attribute names must be snake_case and not reserved SQL words.
func AttributeName(s string) error {
	if err := SnakeCase(s); err != nil {
		if e, ok := err.(*tberr.Error); ok {
			e.SetMessage("attribute " + e.GetMessage())
		}
		return err
	}
	return ReservedWordError(s)
}

// TableName validates a table name.
// Table names must be snake_case and not reserved SQL words.
func TableName(s string) error {
	if err := SnakeCase(s); err != nil {
		if e, ok := err.(*tberr.Error); ok {
			e.SetMessage("table " + e.GetMessage())
		}
		return err
	}
	return ReservedWordError(s)
}

// -----------------------------------------------------------------------------
// Batch Validation
// -----------------------------------------------------------------------------

// ValidationErrors collects multiple validation errors.
type ValidationErrors []error

// Error returns all errors as a formatted string.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation error(s):", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, err.Error()))
	}
	return sb.String()
}

// HasErrors returns true if there are any errors in the collection.
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add appends an error to the collection if it's not nil.
func (ve *ValidationErrors) Add(err error) {
	if err != nil {
		*ve = append(*ve, err)
	}
}

// ToError returns nil if no errors, or the ValidationErrors itself.
func (ve ValidationErrors) ToError() error {
	if len(ve) == 0 {
		return nil
	}
	return ve
}
