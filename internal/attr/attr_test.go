package attr

import (
	"errors"
	"testing"

	"github.com/hlop3z/tabula/internal/tberr"
)

// -----------------------------------------------------------------------------
// ParseToken Tests
// -----------------------------------------------------------------------------

func TestParseToken(t *testing.T) {
	tests := []struct {
		raw       string
		wantName  string
		wantParts int
		wantCode  tberr.Code
	}{
		{"title", "title", 0, ""},
		{"views:integer", "views", 1, ""},
		{"tags:array:string", "tags", 2, ""},
		{"unique_int:integer:unique", "unique_int", 2, ""},
		{":string", "", 0, tberr.ErrInvalidToken},
		{"", "", 0, tberr.ErrInvalidToken},
		{"Title:string", "", 0, tberr.ErrInvalidSnakeCase},
		{"select:string", "", 0, tberr.ErrReservedWord},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			tok, err := ParseToken(tt.raw)
			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("ParseToken(%q) succeeded, want code %s", tt.raw, tt.wantCode)
				}
				if got := tberr.GetErrorCode(err); got != tt.wantCode {
					t.Errorf("ParseToken(%q) code = %s, want %s", tt.raw, got, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseToken(%q) failed: %v", tt.raw, err)
			}
			if tok.Name != tt.wantName {
				t.Errorf("name = %q, want %q", tok.Name, tt.wantName)
			}
			if len(tok.Parts) != tt.wantParts {
				t.Errorf("parts = %d, want %d", len(tok.Parts), tt.wantParts)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	for _, raw := range []string{"title", "views:integer", "tags:array:string"} {
		tok, err := ParseToken(raw)
		if err != nil {
			t.Fatalf("ParseToken(%q) failed: %v", raw, err)
		}
		if got := tok.String(); got != raw {
			t.Errorf("Token.String() = %q, want %q", got, raw)
		}
	}
}

// -----------------------------------------------------------------------------
// Resolve Tests
// -----------------------------------------------------------------------------

func mustToken(t *testing.T, raw string) Token {
	t.Helper()
	tok, err := ParseToken(raw)
	if err != nil {
		t.Fatalf("ParseToken(%q) failed: %v", raw, err)
	}
	return tok
}

func TestResolveDefaults(t *testing.T) {
	a, err := Resolve(mustToken(t, "title"), IDStrategy{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if a.Kind != Plain {
		t.Errorf("kind = %s, want plain", a.Kind)
	}
	if a.Type.Name != "string" {
		t.Errorf("type = %s, want string", a.Type.Name)
	}
	if a.Unique {
		t.Error("unique = true, want false")
	}
}

func TestResolveScalars(t *testing.T) {
	tests := []struct {
		raw      string
		wantType string
	}{
		{"views:integer", "integer"},
		{"body:text", "text"},
		{"score:float", "float"},
		{"price:decimal", "decimal"},
		{"published:boolean", "boolean"},
		{"released_on:date", "date"},
		{"released_at:datetime", "datetime"},
		{"token:uuid", "uuid"},
		{"meta:json", "json"},
		{"payload:binary", "binary"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			a, err := Resolve(mustToken(t, tt.raw), IDStrategy{})
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.raw, err)
			}
			if a.Kind != Plain {
				t.Errorf("kind = %s, want plain", a.Kind)
			}
			if a.Type.Name != tt.wantType {
				t.Errorf("type = %s, want %s", a.Type.Name, tt.wantType)
			}
		})
	}
}

func TestResolveArray(t *testing.T) {
	a, err := Resolve(mustToken(t, "tags:array:string"), IDStrategy{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if a.Kind != Array {
		t.Errorf("kind = %s, want array", a.Kind)
	}
	if a.Type.Name != "string" {
		t.Errorf("element type = %s, want string", a.Type.Name)
	}
	if a.GoFieldType() != "[]string" {
		t.Errorf("go type = %s, want []string", a.GoFieldType())
	}
}

func TestResolveArrayWithoutElementType(t *testing.T) {
	_, err := Resolve(mustToken(t, "tags:array"), IDStrategy{})
	if !tberr.Is(err, tberr.ErrMissingElemType) {
		t.Fatalf("Resolve(tags:array) = %v, want %s", err, tberr.ErrMissingElemType)
	}
}

func TestResolveReference(t *testing.T) {
	a, err := Resolve(mustToken(t, "user_id:references:users"), IDStrategy{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if a.Kind != Reference {
		t.Errorf("kind = %s, want reference", a.Kind)
	}
	if a.RefTable != "users" {
		t.Errorf("ref table = %s, want users", a.RefTable)
	}
	if a.Type.Name != "integer" {
		t.Errorf("id type = %s, want integer", a.Type.Name)
	}
	if a.AssocName() != "user" {
		t.Errorf("assoc name = %s, want user", a.AssocName())
	}
	if a.GoFieldType() != "int64" {
		t.Errorf("go type = %s, want int64", a.GoFieldType())
	}
}

func TestResolveReferenceBinaryID(t *testing.T) {
	a, err := Resolve(mustToken(t, "user_id:references:users"), IDStrategy{BinaryID: true})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if a.Type.Name != "uuid" {
		t.Errorf("id type = %s, want uuid", a.Type.Name)
	}
	if a.GoFieldType() != "string" {
		t.Errorf("go type = %s, want string", a.GoFieldType())
	}
}

func TestResolveReferenceWithoutTarget(t *testing.T) {
	_, err := Resolve(mustToken(t, "user_id:references"), IDStrategy{})
	if !tberr.Is(err, tberr.ErrMissingRefTable) {
		t.Fatalf("Resolve(user_id:references) = %v, want %s", err, tberr.ErrMissingRefTable)
	}
}

func TestResolveUniqueIsOrderIndependent(t *testing.T) {
	tests := []struct {
		raw      string
		wantType string
	}{
		{"title:unique", "string"},
		{"unique_int:integer:unique", "integer"},
		{"unique_int:unique:integer", "integer"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			a, err := Resolve(mustToken(t, tt.raw), IDStrategy{})
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.raw, err)
			}
			if !a.Unique {
				t.Error("unique = false, want true")
			}
			if a.Type.Name != tt.wantType {
				t.Errorf("type = %s, want %s", a.Type.Name, tt.wantType)
			}
		})
	}
}

func TestResolveUnknownType(t *testing.T) {
	_, err := Resolve(mustToken(t, "data:jsonb"), IDStrategy{})
	if !tberr.Is(err, tberr.ErrUnknownType) {
		t.Fatalf("Resolve(data:jsonb) = %v, want %s", err, tberr.ErrUnknownType)
	}

	// A close keyword should produce a fuzzy suggestion.
	var tbe *tberr.Error
	if !errors.As(err, &tbe) {
		t.Fatal("error is not a *tberr.Error")
	}
	found := false
	for _, h := range tbe.Helps() {
		if h == "did you mean 'json'?" {
			found = true
		}
	}
	if !found {
		t.Errorf("helps = %v, want a json suggestion", tbe.Helps())
	}
}

func TestResolveUnexpectedParts(t *testing.T) {
	_, err := Resolve(mustToken(t, "title:string:integer"), IDStrategy{})
	if !tberr.Is(err, tberr.ErrInvalidToken) {
		t.Fatalf("Resolve(title:string:integer) = %v, want %s", err, tberr.ErrInvalidToken)
	}
}
