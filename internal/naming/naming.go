// Package naming provides case conversion, module-name derivation, and
// pluralization rules used throughout the Tabula codebase.
package naming

import (
	"regexp"
	"strings"
	"unicode"
)

// -----------------------------------------------------------------------------
// Case Conversion
// -----------------------------------------------------------------------------

// Underscore converts a string to snake_case.
// Examples: BlogPost -> blog_post, blog-posts -> blog_posts, HTTPServer -> http_server
func Underscore(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s) + 4) // pre-allocate with some extra space for underscores

	for i, r := range s {
		if unicode.IsUpper(r) {
			// Add underscore before uppercase letter if:
			// - Not at the start
			// - Previous char is lowercase, OR
			// - Next char exists and is lowercase (handles "HTTPServer" -> "http_server")
			if i > 0 {
				prev := rune(s[i-1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) {
					result.WriteByte('_')
				} else if unicode.IsUpper(prev) && i+1 < len(s) && unicode.IsLower(rune(s[i+1])) {
					result.WriteByte('_')
				}
			}
			result.WriteRune(unicode.ToLower(r))
		} else if r == '-' || r == ' ' || r == '.' {
			result.WriteByte('_')
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// Camelize converts a string to PascalCase.
// Examples: blog_post -> BlogPost, blog-post -> BlogPost
func Camelize(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s))

	capitalizeNext := true
	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// Humanize converts a snake_case name into a readable label.
// Example: blog_post -> "Blog post"
func Humanize(s string) string {
	if s == "" {
		return ""
	}
	words := strings.ReplaceAll(s, "_", " ")
	runes := []rune(words)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// -----------------------------------------------------------------------------
// Module Names
// -----------------------------------------------------------------------------

// moduleNameRegex matches dotted module names where every segment starts with
// an uppercase letter: "Post", "Blog.Post", "Accounts.Admin.User".
var moduleNameRegex = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*(\.[A-Z][A-Za-z0-9_]*)*$`)

// IsModuleName checks if s is a valid dotted module name.
func IsModuleName(s string) bool {
	return moduleNameRegex.MatchString(s)
}

// Segments splits a dotted module name into its parts.
// Example: "Blog.Post" -> ["Blog", "Post"]
func Segments(module string) []string {
	if module == "" {
		return nil
	}
	return strings.Split(module, ".")
}

// Base returns the final segment of a dotted module name.
// Example: "Blog.Post" -> "Post"
func Base(module string) string {
	segs := Segments(module)
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// Singular derives the singular snake_case name from a module name.
// Example: "Blog.Post" -> "post"
func Singular(module string) string {
	return Underscore(Base(module))
}

// FilePath derives the relative source path for a module name.
// Example: "Blog.Post" -> "blog/post"
func FilePath(module string) string {
	segs := Segments(module)
	parts := make([]string, 0, len(segs))
	for _, seg := range segs {
		parts = append(parts, Underscore(seg))
	}
	return strings.Join(parts, "/")
}

// -----------------------------------------------------------------------------
// Pluralization
// -----------------------------------------------------------------------------

// Pluralize applies simple English pluralization rules to a snake_case word.
// It covers the common endings; irregular nouns are the caller's problem,
// which is why the plural is always supplied explicitly on the command line.
func Pluralize(s string) string {
	switch {
	case s == "":
		return ""
	case strings.HasSuffix(s, "y") && !hasVowelBefore(s, len(s)-1):
		return s[:len(s)-1] + "ies"
	case strings.HasSuffix(s, "s"), strings.HasSuffix(s, "x"),
		strings.HasSuffix(s, "z"), strings.HasSuffix(s, "ch"),
		strings.HasSuffix(s, "sh"):
		return s + "es"
	default:
		return s + "s"
	}
}

// Singularize reverses the rules applied by Pluralize.
func Singularize(s string) string {
	switch {
	case s == "":
		return ""
	case strings.HasSuffix(s, "ies"):
		return s[:len(s)-3] + "y"
	case strings.HasSuffix(s, "xes"), strings.HasSuffix(s, "zes"),
		strings.HasSuffix(s, "ches"), strings.HasSuffix(s, "shes"),
		strings.HasSuffix(s, "sses"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "s"):
		return s[:len(s)-1]
	default:
		return s
	}
}

func hasVowelBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	return strings.ContainsRune("aeiou", rune(s[i-1]))
}

// -----------------------------------------------------------------------------
// SQL Naming
// -----------------------------------------------------------------------------

// FKColumn returns the foreign key column name for a table.
// Example: FKColumn("users") -> "user_id"
func FKColumn(table string) string {
	return Singularize(table) + "_id"
}

// IndexName returns the index name for a table and columns.
// Example: IndexName("posts", "user_id") -> "idx_posts_user_id"
func IndexName(table string, cols ...string) string {
	parts := []string{"idx", table}
	parts = append(parts, cols...)
	return strings.Join(parts, "_")
}

// QuoteSQL quotes a SQL identifier with double quotes, escaping embedded quotes.
func QuoteSQL(name string) string {
	escaped := strings.ReplaceAll(name, `"`, `""`)
	return `"` + escaped + `"`
}
