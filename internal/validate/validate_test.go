package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/hlop3z/tabula/internal/tberr"
)

// -----------------------------------------------------------------------------
// Reserved Word Tests
// -----------------------------------------------------------------------------

func TestIsReservedWord(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"select", true},
		{"SELECT", true},
		{"table", true},
		{"user", true},    // postgres
		{"pragma", true},  // sqlite
		{"title", false},
		{"email", false},
		{"user_id", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := IsReservedWord(tt.word); got != tt.want {
				t.Errorf("IsReservedWord(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestReservedWordError(t *testing.T) {
	if err := ReservedWordError("title"); err != nil {
		t.Fatalf("ReservedWordError(title) = %v, want nil", err)
	}

	err := ReservedWordError("order")
	if !tberr.Is(err, tberr.ErrReservedWord) {
		t.Fatalf("ReservedWordError(order) = %v, want %s", err, tberr.ErrReservedWord)
	}
	var tbe *tberr.Error
	if !errors.As(err, &tbe) {
		t.Fatal("error is not a *tberr.Error")
	}
	if got := tbe.GetContext()["suggestion"]; got != "order_value" {
		t.Errorf("suggestion = %v, want order_value", got)
	}
}

// -----------------------------------------------------------------------------
// Snake Case Tests
// -----------------------------------------------------------------------------

func TestIsSnakeCase(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"title", true},
		{"user_id", true},
		{"blog_posts2", true},
		{"a", true},
		{"", false},
		{"Title", false},
		{"blogPosts", false},
		{"blog-posts", false},
		{"_title", false},
		{"title_", false},
		{"blog__posts", false},
		{"2title", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsSnakeCase(tt.input); got != tt.want {
				t.Errorf("IsSnakeCase(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSnakeCaseSuggestion(t *testing.T) {
	err := SnakeCase("BlogPosts")
	if !tberr.Is(err, tberr.ErrInvalidSnakeCase) {
		t.Fatalf("SnakeCase(BlogPosts) = %v, want %s", err, tberr.ErrInvalidSnakeCase)
	}
	var tbe *tberr.Error
	if !errors.As(err, &tbe) {
		t.Fatal("error is not a *tberr.Error")
	}
	if got := tbe.GetContext()["suggestion"]; got != "blog_posts" {
		t.Errorf("suggestion = %v, want blog_posts", got)
	}
}

func TestSnakeCaseLengthLimit(t *testing.T) {
	long := strings.Repeat("a", 64)
	err := SnakeCase(long)
	if !tberr.Is(err, tberr.ErrInvalidIdentifier) {
		t.Fatalf("SnakeCase(64 chars) = %v, want %s", err, tberr.ErrInvalidIdentifier)
	}
	if err := SnakeCase(strings.Repeat("a", 63)); err != nil {
		t.Errorf("SnakeCase(63 chars) = %v, want nil", err)
	}
}

func TestAttributeName(t *testing.T) {
	if err := AttributeName("title"); err != nil {
		t.Fatalf("AttributeName(title) = %v, want nil", err)
	}

	err := AttributeName("Title")
	var tbe *tberr.Error
	if !errors.As(err, &tbe) {
		t.Fatalf("AttributeName(Title) = %v, want *tberr.Error", err)
	}
	if !strings.HasPrefix(tbe.GetMessage(), "attribute ") {
		t.Errorf("message = %q, want attribute prefix", tbe.GetMessage())
	}

	if err := AttributeName("select"); !tberr.Is(err, tberr.ErrReservedWord) {
		t.Errorf("AttributeName(select) = %v, want %s", err, tberr.ErrReservedWord)
	}
}

func TestTableName(t *testing.T) {
	if err := TableName("blog_posts"); err != nil {
		t.Fatalf("TableName(blog_posts) = %v, want nil", err)
	}

	err := TableName("BlogPosts")
	var tbe *tberr.Error
	if !errors.As(err, &tbe) {
		t.Fatalf("TableName(BlogPosts) = %v, want *tberr.Error", err)
	}
	if !strings.HasPrefix(tbe.GetMessage(), "table ") {
		t.Errorf("message = %q, want table prefix", tbe.GetMessage())
	}
}

// -----------------------------------------------------------------------------
// Batch Validation Tests
// -----------------------------------------------------------------------------

func TestValidationErrors(t *testing.T) {
	var ve ValidationErrors
	if ve.HasErrors() {
		t.Error("empty collection has errors")
	}
	if ve.ToError() != nil {
		t.Error("empty collection converts to non-nil error")
	}

	ve.Add(nil) // nil errors are dropped
	ve.Add(tberr.New(tberr.ErrUnknownType, "unknown attribute type"))
	ve.Add(tberr.New(tberr.ErrDuplicateAttr, "duplicate attribute name"))

	if len(ve) != 2 {
		t.Fatalf("len = %d, want 2", len(ve))
	}
	if !ve.HasErrors() {
		t.Error("HasErrors = false")
	}
	if ve.ToError() == nil {
		t.Error("ToError = nil")
	}

	msg := ve.Error()
	if !strings.HasPrefix(msg, "2 validation error(s):") {
		t.Errorf("message = %q", msg)
	}
	if !strings.Contains(msg, "unknown attribute type") || !strings.Contains(msg, "duplicate attribute name") {
		t.Errorf("message missing items: %q", msg)
	}
}
