// Package attr parses raw attribute tokens ("name:type:modifier") and
// resolves them against the type registry into typed attribute descriptors.
package attr

import (
	"strings"

	"github.com/hlop3z/tabula/internal/tberr"
	"github.com/hlop3z/tabula/internal/validate"
)

// Separator splits the parts of an attribute token.
const Separator = ":"

// Token is the transient result of splitting one raw attribute token.
// Parts holds everything after the name, in input order; type resolution
// decides which part is the type keyword and which are modifiers.
type Token struct {
	Name  string
	Parts []string
}

// ParseToken splits a raw token string into a name and its remaining parts.
// The name must be present, non-empty, and a valid snake_case identifier.
// A token with no parts is valid; defaults apply during resolution.
func ParseToken(raw string) (Token, error) {
	parts := strings.Split(raw, Separator)

	name := parts[0]
	if name == "" {
		return Token{}, tberr.New(tberr.ErrInvalidToken, "attribute token has no name").
			WithToken(raw)
	}

	if err := validate.AttributeName(name); err != nil {
		if e, ok := err.(*tberr.Error); ok {
			e.WithToken(raw)
		}
		return Token{}, err
	}

	return Token{Name: name, Parts: parts[1:]}, nil
}

// String reassembles the token for error messages.
func (t Token) String() string {
	if len(t.Parts) == 0 {
		return t.Name
	}
	return t.Name + Separator + strings.Join(t.Parts, Separator)
}
