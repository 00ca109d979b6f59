// Package render projects a schema model into its two text artifacts: the
// Go model source file and the SQL migration script. Both renderers are pure
// functions of the model; neither touches the filesystem.
package render

import (
	"bytes"
	"embed"
	"path"
	"strings"
	"text/template"

	"github.com/hlop3z/tabula/internal/attr"
	"github.com/hlop3z/tabula/internal/model"
	"github.com/hlop3z/tabula/internal/naming"
	"github.com/hlop3z/tabula/internal/tberr"
	"github.com/hlop3z/tabula/internal/types"
)

//go:embed templates/*
var templates embed.FS

// mustReadTemplate reads a template file embedded at compile time.
func mustReadTemplate(p string) string {
	content, err := templates.ReadFile(p)
	if err != nil {
		panic("failed to read embedded template " + p + ": " + err.Error())
	}
	return string(content)
}

// -----------------------------------------------------------------------------
// Model Renderer
// -----------------------------------------------------------------------------

// modelField is one struct field in the generated model.
type modelField struct {
	GoName string
	GoType string
	Column string
}

// modelAssoc is one belongs-to association in the generated model.
type modelAssoc struct {
	Name  string
	Table string
}

// modelData is the template payload for the model file.
type modelData struct {
	Package       string
	Alias         string
	TableName     string
	HumanSingular string
	IDType        string
	Fields        []modelField
	Assocs        []modelAssoc
}

// Model renders the entity definition source file for a schema.
//
// Every Reference attribute contributes a belongs-to association entry, every
// Array attribute a slice field typed by its element type. Unique flags have
// no effect here: uniqueness is a migration-level index concern.
func Model(s *model.Schema) (string, error) {
	data := modelData{
		Package:       packageName(s),
		Alias:         s.Alias,
		TableName:     s.TableName,
		HumanSingular: s.HumanSingular,
		IDType:        "int64",
	}
	if s.BinaryID {
		data.IDType = "string"
	}

	for _, a := range s.Attributes {
		data.Fields = append(data.Fields, modelField{
			GoName: naming.Camelize(a.Name),
			GoType: a.GoFieldType(),
			Column: a.Name,
		})
	}
	for _, a := range s.Associations {
		data.Assocs = append(data.Assocs, modelAssoc{
			Name:  a.AssocName(),
			Table: a.RefTable,
		})
	}

	tmpl, err := template.New("model").Parse(mustReadTemplate("templates/model.go.tmpl"))
	if err != nil {
		return "", tberr.Wrap(tberr.ErrTemplate, err, "failed to parse model template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", tberr.Wrap(tberr.ErrTemplate, err, "failed to execute model template")
	}
	return buf.String(), nil
}

// packageName derives the Go package of the generated model file from the
// schema file path. Nested modules use their parent directory; top-level
// modules land in the models root package.
func packageName(s *model.Schema) string {
	dir := path.Dir(s.FilePath)
	if dir == "." || dir == "/" {
		return "models"
	}
	return path.Base(dir)
}

// -----------------------------------------------------------------------------
// Migration Renderer
// -----------------------------------------------------------------------------

// Migration renders the reversible migration script for a schema.
//
// The up section creates the table with one column per non-reference
// attribute, an id column per the key strategy, a foreign key column plus
// index per Reference attribute, and one unique index per attribute flagged
// unique. The down section drops the table.
func Migration(s *model.Schema, d types.Dialect) (string, error) {
	table := naming.QuoteSQL(s.TableName)

	var b strings.Builder
	b.WriteString("-- Migration: create_" + s.Singular + "\n")
	b.WriteString("-- Table: " + s.TableName + " (" + d.String() + ")\n")
	b.WriteString("\n-- migrate:up\n")

	cols := []string{"    " + naming.QuoteSQL("id") + " " + types.IDColumn(d, s.BinaryID)}
	for _, a := range s.Attributes {
		cols = append(cols, "    "+naming.QuoteSQL(a.Name)+" "+columnType(a, d, s.BinaryID))
	}
	cols = append(cols,
		"    "+naming.QuoteSQL("created_at")+" "+datetimeSQL(d)+" NOT NULL",
		"    "+naming.QuoteSQL("updated_at")+" "+datetimeSQL(d)+" NOT NULL",
	)

	b.WriteString("CREATE TABLE " + table + " (\n")
	b.WriteString(strings.Join(cols, ",\n"))
	b.WriteString("\n);\n")

	for _, a := range s.Attributes {
		switch {
		case a.Kind == attr.Reference:
			b.WriteString("\n" + indexSQL(s.TableName, a.Name, a.Unique))
		case a.Unique:
			b.WriteString("\n" + indexSQL(s.TableName, a.Name, true))
		}
	}

	b.WriteString("\n-- migrate:down\n")
	b.WriteString("DROP TABLE " + table + ";\n")

	return b.String(), nil
}

// columnType returns the SQL column type for one attribute.
func columnType(a attr.Attribute, d types.Dialect, binaryID bool) string {
	switch a.Kind {
	case attr.Array:
		return types.ArraySQL(d, a.Type)
	case attr.Reference:
		ref := types.FKType(d, binaryID)
		return ref + " REFERENCES " + naming.QuoteSQL(a.RefTable) + " (" + naming.QuoteSQL("id") + ")"
	default:
		return a.Type.SQLTypes.SQL(d)
	}
}

// datetimeSQL returns the audit column type for the dialect.
func datetimeSQL(d types.Dialect) string {
	return types.Get("datetime").SQLTypes.SQL(d)
}

// indexSQL returns one CREATE [UNIQUE] INDEX statement.
func indexSQL(table, column string, unique bool) string {
	kind := "CREATE INDEX "
	if unique {
		kind = "CREATE UNIQUE INDEX "
	}
	return kind + naming.QuoteSQL(naming.IndexName(table, column)) +
		" ON " + naming.QuoteSQL(table) +
		" (" + naming.QuoteSQL(column) + ");\n"
}
