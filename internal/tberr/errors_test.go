package tberr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// -----------------------------------------------------------------------------
// Error Formatting Tests
// -----------------------------------------------------------------------------

func TestErrorFormat(t *testing.T) {
	err := New(ErrInvalidSnakeCase, "plural must be snake_case").
		With("got", "BlogPosts").
		WithSuggestion("blog_posts")

	msg := err.Error()
	if !strings.HasPrefix(msg, "[E2002] plural must be snake_case") {
		t.Errorf("message = %q", msg)
	}
	// Context keys are sorted, so got comes before suggestion.
	gotIdx := strings.Index(msg, "got: BlogPosts")
	sugIdx := strings.Index(msg, "suggestion: blog_posts")
	if gotIdx == -1 || sugIdx == -1 || gotIdx > sugIdx {
		t.Errorf("context not sorted: %q", msg)
	}
}

func TestErrorCause(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(ErrWrite, cause, "failed to write file")

	if !strings.Contains(err.Error(), "cause: permission denied") {
		t.Errorf("message = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap does not return the cause")
	}
}

func TestWrapNilCause(t *testing.T) {
	err := Wrap(ErrWrite, nil, "failed to write file")
	if err.Unwrap() != nil {
		t.Error("nil cause wrapped")
	}
	if err.GetCode() != ErrWrite {
		t.Errorf("code = %s", err.GetCode())
	}
}

func TestNewf(t *testing.T) {
	err := Newf(ErrUnknownType, "unknown type %q", "jsonb")
	if err.GetMessage() != `unknown type "jsonb"` {
		t.Errorf("message = %q", err.GetMessage())
	}
}

// -----------------------------------------------------------------------------
// Code Matching Tests
// -----------------------------------------------------------------------------

func TestGetErrorCode(t *testing.T) {
	if got := GetErrorCode(nil); got != "" {
		t.Errorf("GetErrorCode(nil) = %q", got)
	}
	if got := GetErrorCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetErrorCode(plain) = %q", got)
	}

	err := New(ErrNoProject, "not a project directory")
	if got := GetErrorCode(err); got != ErrNoProject {
		t.Errorf("GetErrorCode = %s, want %s", got, ErrNoProject)
	}

	// Codes survive wrapping in plain errors.
	wrapped := fmt.Errorf("context: %w", err)
	if got := GetErrorCode(wrapped); got != ErrNoProject {
		t.Errorf("GetErrorCode(wrapped) = %s, want %s", got, ErrNoProject)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrFileExists, "target file already exists")
	if !Is(err, ErrFileExists) {
		t.Error("Is = false for matching code")
	}
	if Is(err, ErrNoProject) {
		t.Error("Is = true for different code")
	}
	if !HasCode(err) {
		t.Error("HasCode = false")
	}
	if HasCode(fmt.Errorf("plain")) {
		t.Error("HasCode = true for plain error")
	}
}

func TestErrorsIsMatchesByCode(t *testing.T) {
	a := New(ErrUnknownType, "unknown attribute type")
	b := New(ErrUnknownType, "different message, same code")
	if !errors.Is(a, b) {
		t.Error("errors with equal codes do not match")
	}
}

// -----------------------------------------------------------------------------
// Context Builder Tests
// -----------------------------------------------------------------------------

func TestWithBuilders(t *testing.T) {
	err := New(ErrInvalidToken, "attribute token is malformed").
		WithToken("bad::token").
		WithArgument("plural", "BlogPosts").
		WithHelp("first help").
		WithHelp("second help")

	ctx := err.GetContext()
	if ctx["token"] != "bad::token" {
		t.Errorf("token = %v", ctx["token"])
	}
	if ctx["argument"] != "plural" || ctx["got"] != "BlogPosts" {
		t.Errorf("argument context = %v / %v", ctx["argument"], ctx["got"])
	}

	helps := err.Helps()
	if len(helps) != 2 || helps[0] != "first help" || helps[1] != "second help" {
		t.Errorf("helps = %v", helps)
	}
}

func TestWithSuggestionEmptyIsNoop(t *testing.T) {
	err := New(ErrInvalidSnakeCase, "name must be snake_case").WithSuggestion("")
	if _, ok := err.GetContext()["suggestion"]; ok {
		t.Error("empty suggestion stored")
	}
}
