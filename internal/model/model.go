// Package model assembles the schema model: the single validated artifact
// both renderers consume. A model is built once per invocation and never
// mutated afterwards.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/hlop3z/tabula/internal/attr"
	"github.com/hlop3z/tabula/internal/naming"
	"github.com/hlop3z/tabula/internal/tberr"
	"github.com/hlop3z/tabula/internal/validate"
)

// TimestampLayout is the fixed-width sortable UTC token used as the
// migration file ordering key.
const TimestampLayout = "20060102150405"

// Input carries the caller-supplied arguments for one generator invocation.
// Migration and BinaryID are tri-state: nil means the flag was not given and
// the project default applies.
type Input struct {
	ModuleName string
	Plural     string
	Tokens     []string
	Table      string // --table override, empty means none
	Migration  *bool
	BinaryID   *bool
}

// Defaults holds the project-wide generator defaults, merged from the config
// file before Build is called. The core never reads ambient configuration.
type Defaults struct {
	Migration      bool
	BinaryID       bool
	SampleBinaryID string
}

// Schema is the immutable model handed to the renderers.
type Schema struct {
	ModuleName    string
	Plural        string
	TableName     string
	Singular      string
	Alias         string
	FilePath      string // relative path derived from the module name, no extension
	HumanSingular string
	HumanPlural   string
	Attributes    []attr.Attribute
	Associations  []attr.Attribute // subsequence of Attributes with Kind == Reference
	BinaryID      bool
	Migration     bool
	Timestamp     string // TimestampLayout-formatted UTC instant, captured once
}

// ModelFile returns the relative path of the generated model source file.
func (s *Schema) ModelFile() string {
	return s.FilePath + ".go"
}

// MigrationFile returns the name of the generated migration file.
func (s *Schema) MigrationFile() string {
	return fmt.Sprintf("%s_create_%s.sql", s.Timestamp, s.Singular)
}

// Build validates the input and assembles the schema model.
// All failures are terminal; no partial model is ever returned.
func Build(in Input, defs Defaults) (*Schema, error) {
	return BuildAt(in, defs, time.Now())
}

// BuildAt is Build with an explicit clock, for deterministic tests.
// The timestamp is captured exactly once per build so a single run never
// produces inconsistent ordering keys.
func BuildAt(in Input, defs Defaults, now time.Time) (*Schema, error) {
	if err := checkModuleName(in.ModuleName); err != nil {
		return nil, err
	}
	if err := checkPlural(in.Plural); err != nil {
		return nil, err
	}

	tableName := in.Plural
	if in.Table != "" {
		if err := validate.TableName(in.Table); err != nil {
			return nil, err
		}
		tableName = in.Table
	}

	binaryID := defs.BinaryID
	if in.BinaryID != nil {
		binaryID = *in.BinaryID
	}
	migration := defs.Migration
	if in.Migration != nil {
		migration = *in.Migration
	}

	attrs, err := resolveTokens(in.Tokens, attr.IDStrategy{BinaryID: binaryID})
	if err != nil {
		return nil, err
	}

	assocs := make([]attr.Attribute, 0)
	for _, a := range attrs {
		if a.Kind == attr.Reference {
			assocs = append(assocs, a)
		}
	}

	singular := naming.Singular(in.ModuleName)
	s := &Schema{
		ModuleName:    in.ModuleName,
		Plural:        in.Plural,
		TableName:     tableName,
		Singular:      singular,
		Alias:         naming.Base(in.ModuleName),
		FilePath:      naming.FilePath(in.ModuleName),
		HumanSingular: naming.Humanize(singular),
		HumanPlural:   naming.Humanize(in.Plural),
		Attributes:    attrs,
		Associations:  assocs,
		BinaryID:      binaryID,
		Migration:     migration,
		Timestamp:     now.UTC().Format(TimestampLayout),
	}
	return s, nil
}

// checkModuleName validates the uppercase-leading dotted module name shape.
func checkModuleName(name string) error {
	if naming.IsModuleName(name) {
		return nil
	}
	err := tberr.New(tberr.ErrInvalidModuleName, "invalid module name").
		WithArgument("module", name).
		WithHelp("module names are dotted and capitalized, like Blog.Post")
	if name != "" && !strings.Contains(name, ":") {
		if fixed := naming.Camelize(name); naming.IsModuleName(fixed) {
			err.WithSuggestion(fixed)
		}
	}
	return err
}

// checkPlural validates the caller-supplied plural form.
//
// A plural containing the token separator is almost always a forgotten
// plural argument: the first attribute token slid into its place. That case
// gets the usage error, not a snake_case error.
func checkPlural(plural string) error {
	if strings.Contains(plural, attr.Separator) {
		return tberr.New(tberr.ErrMissingPlural, "expected a plural argument, got an attribute token").
			WithArgument("plural", plural).
			WithHelp("invoke as: tabula gen Blog.Post blog_posts " + plural)
	}

	// Strict equality against the canonicalization: the plural is used
	// verbatim, never rewritten, so typos must surface here.
	if canonical := naming.Underscore(plural); plural == "" || plural != canonical || !validate.IsSnakeCase(plural) {
		err := tberr.New(tberr.ErrInvalidSnakeCase, "plural must be snake_case").
			WithArgument("plural", plural)
		if validate.IsSnakeCase(canonical) {
			err.WithSuggestion(canonical)
		}
		return err
	}

	// The plural becomes the table name unless --table overrides it, so it
	// passes the same table-name rules: no reserved words, identifier limit.
	if err := validate.TableName(plural); err != nil {
		if e, ok := err.(*tberr.Error); ok {
			e.WithArgument("plural", plural)
		}
		return err
	}

	return nil
}

// resolveTokens parses and resolves every attribute token, collecting all
// failures into one aggregate error so the user sees the full damage at once.
func resolveTokens(tokens []string, ids attr.IDStrategy) ([]attr.Attribute, error) {
	var errs validate.ValidationErrors
	seen := make(map[string]bool, len(tokens))
	attrs := make([]attr.Attribute, 0, len(tokens))

	for _, raw := range tokens {
		tok, err := attr.ParseToken(raw)
		if err != nil {
			errs.Add(err)
			continue
		}

		if seen[tok.Name] {
			errs.Add(tberr.New(tberr.ErrDuplicateAttr, "duplicate attribute name").
				With("name", tok.Name).
				WithToken(raw))
			continue
		}
		seen[tok.Name] = true

		a, err := attr.Resolve(tok, ids)
		if err != nil {
			errs.Add(err)
			continue
		}
		attrs = append(attrs, a)
	}

	if err := errs.ToError(); err != nil {
		return nil, err
	}
	return attrs, nil
}
