// Package tberr provides standardized error handling for Tabula.
// All errors carry stable, machine-readable codes, structured context, and
// wrap their underlying cause.
package tberr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Code represents a stable, machine-readable error code.
// Format: E{category}{number} where category is 1-5 and number is 001-999.
type Code string

// Error codes organized by category.
const (
	// Usage errors (E1xxx) - wrong shape of the invocation itself
	ErrUsage         Code = "E1001" // Wrong number or shape of positional arguments
	ErrMissingPlural Code = "E1002" // Plural argument missing (attribute token in its place)
	ErrUnknownFlag   Code = "E1003" // Flag is not recognized

	// Naming errors (E2xxx) - module, plural, and identifier problems
	ErrInvalidModuleName Code = "E2001" // Module name is not an uppercase-leading dotted identifier
	ErrInvalidSnakeCase  Code = "E2002" // Name must be snake_case
	ErrReservedWord      Code = "E2003" // Name is a SQL reserved word
	ErrInvalidIdentifier Code = "E2004" // Identifier does not match allowed pattern

	// Attribute-specification errors (E3xxx) - problems inside attribute tokens
	ErrInvalidToken    Code = "E3001" // Attribute token is malformed (e.g. empty name)
	ErrUnknownType     Code = "E3002" // Type keyword is not in the registry
	ErrMissingElemType Code = "E3003" // array attribute is missing its element type
	ErrMissingRefTable Code = "E3004" // references attribute is missing its target table
	ErrDuplicateAttr   Code = "E3005" // Two attribute tokens share the same name

	// Environment errors (E4xxx) - problems with the project surroundings
	ErrNoProject     Code = "E4001" // Not inside an initialized project directory
	ErrConfigInvalid Code = "E4002" // Config file is malformed
	ErrFileExists    Code = "E4003" // Target file already exists
	ErrDBConnection  Code = "E4004" // Database ping failed (doctor only)

	// Render/write errors (E5xxx) - problems producing or writing artifacts
	ErrTemplate Code = "E5001" // Template failed to parse or execute
	ErrWrite    Code = "E5002" // Output file could not be written
)

// Error is the standard error type for Tabula.
type Error struct {
	code    Code           // Machine-readable error code
	message string         // Human-readable error message
	context map[string]any // Structured context data
	cause   error          // Wrapped underlying error
}

// Error returns the formatted error string.
// Format:
//
//	[E2002] plural must be snake_case
//	  got: BlogPosts
//	  suggestion: blog_posts
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.code, e.message))

	// Context keys are sorted so output is deterministic.
	if len(e.context) > 0 {
		keys := make([]string, 0, len(e.context))
		for k := range e.context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			b.WriteString(fmt.Sprintf("\n  %s: %v", k, e.context[k]))
		}
	}

	if e.cause != nil {
		b.WriteString(fmt.Sprintf("\n  cause: %v", e.cause))
	}

	return b.String()
}

// Unwrap returns the underlying cause error for errors.Unwrap compatibility.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether the target error matches this error.
// Two *Error values match when their codes are equal.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.code == targetErr.code
	}

	return false
}

// GetCode returns the error code.
func (e *Error) GetCode() Code {
	return e.code
}

// GetMessage returns the error message.
func (e *Error) GetMessage() string {
	return e.message
}

// SetMessage replaces the error message.
func (e *Error) SetMessage(msg string) {
	e.message = msg
}

// GetContext returns the error context map.
func (e *Error) GetContext() map[string]any {
	return e.context
}

// With adds a key-value pair to the error context.
// Returns the error for method chaining.
func (e *Error) With(key string, value any) *Error {
	if e.context == nil {
		e.context = make(map[string]any)
	}
	e.context[key] = value
	return e
}

// WithToken adds the offending attribute token to the error context.
func (e *Error) WithToken(token string) *Error {
	return e.With("token", token)
}

// WithArgument adds the offending positional argument to the error context.
func (e *Error) WithArgument(name, value string) *Error {
	return e.With("argument", name).With("got", value)
}

// WithSuggestion adds a corrected-input suggestion to the error context.
func (e *Error) WithSuggestion(s string) *Error {
	if s == "" {
		return e
	}
	return e.With("suggestion", s)
}

// WithHelp adds a help line to the error (displayed as "help: ...").
func (e *Error) WithHelp(help string) *Error {
	helps, _ := e.context["helps"].([]string)
	helps = append(helps, help)
	return e.With("helps", helps)
}

// Helps returns all help lines attached to this error.
func (e *Error) Helps() []string {
	helps, _ := e.context["helps"].([]string)
	return helps
}

// New creates a new Error with the given code and message.
func New(code Code, msg string) *Error {
	return &Error{
		code:    code,
		message: msg,
		context: make(map[string]any),
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		code:    code,
		message: fmt.Sprintf(format, args...),
		context: make(map[string]any),
	}
}

// Wrap creates a new Error that wraps an existing error.
func Wrap(code Code, err error, msg string) *Error {
	if err == nil {
		return New(code, msg)
	}
	return &Error{
		code:    code,
		message: msg,
		context: make(map[string]any),
		cause:   err,
	}
}

// Wrapf creates a new Error that wraps an existing error with a formatted message.
func Wrapf(code Code, err error, format string, args ...any) *Error {
	return Wrap(code, err, fmt.Sprintf(format, args...))
}

// GetErrorCode extracts the error code from an error chain.
// Returns empty string if no code is found.
func GetErrorCode(err error) Code {
	if err == nil {
		return ""
	}

	var tbe *Error
	if errors.As(err, &tbe) {
		return tbe.code
	}

	return ""
}

// Is checks if an error has the specified code.
func Is(err error, code Code) bool {
	return GetErrorCode(err) == code
}

// HasCode checks if an error has any error code.
func HasCode(err error) bool {
	return GetErrorCode(err) != ""
}
