package attr

import (
	"strings"

	"github.com/hlop3z/tabula/internal/tberr"
	"github.com/hlop3z/tabula/internal/types"
	"github.com/hlop3z/tabula/internal/validate"
)

// Kind classifies a resolved attribute.
type Kind int

const (
	// Plain is a scalar column of a registered value type.
	Plain Kind = iota
	// Array is a collection column with a concrete element type.
	Array
	// Reference is a belongs-to foreign key column.
	Reference
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Array:
		return "array"
	case Reference:
		return "reference"
	default:
		return "plain"
	}
}

// IDStrategy carries the project-wide primary key strategy into resolution.
// It is the one piece of non-local input this stage depends on: the column
// type of a references attribute must agree with the id type of the table it
// points at.
type IDStrategy struct {
	BinaryID bool
}

// Attribute is a fully resolved attribute, held by the schema model.
//
// Type holds the value type for Plain, the element type for Array, and the
// id scalar type in effect for Reference.
type Attribute struct {
	Name     string
	Kind     Kind
	Type     *types.TypeDef
	RefTable string // target table, Reference only
	Unique   bool
}

// AssocName returns the association name derived from a reference attribute.
// Example: "user_id" -> "user"
func (a Attribute) AssocName() string {
	return strings.TrimSuffix(a.Name, "_id")
}

// GoFieldType returns the Go type of the generated model field.
func (a Attribute) GoFieldType() string {
	switch a.Kind {
	case Array:
		return "[]" + a.Type.GoType
	case Reference:
		// Integer keys are BIGSERIAL/BIGINT columns, so the field is int64
		// even though the plain integer type maps to int32.
		if a.Type.Name == "uuid" {
			return "string"
		}
		return "int64"
	default:
		return a.Type.GoType
	}
}

// Resolve turns a parsed token into an Attribute.
//
// Rules:
//   - no parts: Plain(string)
//   - "unique" anywhere in the parts sets the unique flag, order-independent
//   - first non-unique part is the type keyword
//   - "array" requires an element type part
//   - "references" requires a target table part
//   - anything unrecognized is a validation error naming the token
func Resolve(tok Token, ids IDStrategy) (Attribute, error) {
	a := Attribute{Name: tok.Name, Kind: Plain}

	// Strip unique markers first; their position carries no meaning.
	rest := make([]string, 0, len(tok.Parts))
	for _, p := range tok.Parts {
		if p == "unique" {
			a.Unique = true
			continue
		}
		rest = append(rest, p)
	}

	if len(rest) == 0 {
		a.Type = types.Get("string")
		return a, nil
	}

	keyword := rest[0]
	switch keyword {
	case "array":
		if len(rest) < 2 {
			return Attribute{}, tberr.New(tberr.ErrMissingElemType, "array type must specify element type").
				WithToken(tok.String()).
				WithHelp("write " + tok.Name + ":array:string")
		}
		elem := types.Get(rest[1])
		if elem == nil {
			return Attribute{}, unknownType(tok, rest[1])
		}
		if len(rest) > 2 {
			return Attribute{}, unexpectedParts(tok, rest[2:])
		}
		a.Kind = Array
		a.Type = elem

	case "references":
		if len(rest) < 2 {
			return Attribute{}, tberr.New(tberr.ErrMissingRefTable, "references type must specify target table").
				WithToken(tok.String()).
				WithHelp("write " + tok.Name + ":references:users")
		}
		target := rest[1]
		if err := validate.TableName(target); err != nil {
			if e, ok := err.(*tberr.Error); ok {
				e.WithToken(tok.String())
			}
			return Attribute{}, err
		}
		if len(rest) > 2 {
			return Attribute{}, unexpectedParts(tok, rest[2:])
		}
		a.Kind = Reference
		a.RefTable = target
		// The foreign key column carries the id type of the target table,
		// which follows the project-wide id strategy.
		if ids.BinaryID {
			a.Type = types.Get("uuid")
		} else {
			a.Type = types.Get("integer")
		}

	default:
		def := types.Get(keyword)
		if def == nil {
			return Attribute{}, unknownType(tok, keyword)
		}
		if len(rest) > 1 {
			return Attribute{}, unexpectedParts(tok, rest[1:])
		}
		a.Type = def
	}

	return a, nil
}

// unknownType builds the validation error for an unrecognized type keyword,
// including a fuzzy suggestion when a registered keyword is close.
func unknownType(tok Token, keyword string) error {
	options := append(types.Names(), "array", "references")
	err := tberr.New(tberr.ErrUnknownType, "unknown attribute type").
		With("type", keyword).
		WithToken(tok.String())
	if hint := tberr.SuggestSimilar(keyword, options); hint != "" {
		err.WithHelp(hint)
	}
	err.WithHelp("run 'tabula types' to list supported types")
	return err
}

// unexpectedParts builds the validation error for trailing token parts that
// resolution cannot give a meaning to.
func unexpectedParts(tok Token, extra []string) error {
	return tberr.New(tberr.ErrInvalidToken, "unexpected token parts").
		With("parts", strings.Join(extra, Separator)).
		WithToken(tok.String()).
		WithHelp("only 'unique' may follow the attribute type")
}
