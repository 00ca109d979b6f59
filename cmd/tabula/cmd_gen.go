package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hlop3z/tabula/internal/materialize"
	"github.com/hlop3z/tabula/internal/model"
	"github.com/hlop3z/tabula/internal/naming"
	"github.com/hlop3z/tabula/internal/render"
	"github.com/hlop3z/tabula/internal/tberr"
	"github.com/hlop3z/tabula/internal/types"
	"github.com/hlop3z/tabula/internal/ui"
)

// genCmd generates a model source file and its migration from an attribute
// specification.
func genCmd() *cobra.Command {
	var tableOverride string

	cmd := &cobra.Command{
		Use:   "gen <Module.Name> <plural> [attribute...]",
		Short: "Generate a model and its migration from an attribute spec",
		Long: `Generate a model source file and a reversible SQL migration.

The module name is dotted and capitalized (Blog.Post); the plural is the
snake_case table name; each attribute is name:type with optional modifiers.`,
		Example: `  # A blog post with a few attributes
  tabula gen Blog.Post blog_posts title:string views:integer

  # Foreign keys, arrays, and unique indexes
  tabula gen Blog.Post blog_posts user_id:references:users tags:array:string slug:string:unique

  # Override the table name, skip the migration
  tabula gen Cms.Page cms_pages title:string --table legacy_pages --no-migration`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Environment checks come first: no attribute is parsed unless
			// the invocation happens inside a usable project.
			if err := requireProject(); err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dialect, err := types.ParseDialect(cfg.Dialect)
			if err != nil {
				return err
			}

			moduleName := args[0]
			modelPath := filepath.Join(cfg.ModelsDir, naming.FilePath(moduleName)+".go")
			if naming.IsModuleName(moduleName) && materialize.Exists(modelPath) {
				return tberr.New(tberr.ErrFileExists, "model file already exists").
					With("path", modelPath).
					WithHelp("pick a different module name or remove the existing file")
			}

			migration, err := resolveTriState(cmd.Flags(), "migration", "no-migration")
			if err != nil {
				return err
			}
			binaryID, err := resolveTriState(cmd.Flags(), "binary-id", "no-binary-id")
			if err != nil {
				return err
			}

			schema, err := model.Build(model.Input{
				ModuleName: moduleName,
				Plural:     args[1],
				Tokens:     args[2:],
				Table:      tableOverride,
				Migration:  migration,
				BinaryID:   binaryID,
			}, model.Defaults{
				Migration:      cfg.migrationDefault(),
				BinaryID:       cfg.Generators.BinaryID,
				SampleBinaryID: cfg.Generators.SampleBinaryID,
			})
			if err != nil {
				return err
			}

			modelSrc, err := render.Model(schema)
			if err != nil {
				return err
			}
			files := []materialize.File{
				{Path: modelPath, Content: modelSrc},
			}

			var migrationPath string
			if schema.Migration {
				migrationSrc, err := render.Migration(schema, dialect)
				if err != nil {
					return err
				}
				migrationPath = filepath.Join(cfg.MigrationsDir, schema.MigrationFile())
				files = append(files, materialize.File{Path: migrationPath, Content: migrationSrc})
			}

			if err := materialize.Write(files); err != nil {
				return err
			}

			report := ui.NewReport()
			report.Row("Model", ui.FilePath(modelPath))
			if schema.Migration {
				report.Row("Migration", ui.FilePath(migrationPath))
			}
			report.Row("Table", ui.Primary(schema.TableName))

			content := report.String()
			if schema.Migration {
				content += "\n\n" + ui.Help(Msg.Gen.ApplyNote)
			}
			ui.ShowSuccess(Msg.Gen.Created, content)
			return nil
		},
	}

	cmd.Flags().StringVar(&tableOverride, "table", "", "Override the table name (file path and names stay derived from the module)")
	cmd.Flags().Bool("migration", false, "Generate a migration file (project default: on)")
	cmd.Flags().Bool("no-migration", false, "Skip the migration file")
	cmd.Flags().Bool("binary-id", false, "Use an externally generated UUID primary key")
	cmd.Flags().Bool("no-binary-id", false, "Use an auto-incrementing integer primary key")

	return cmd
}

// resolveTriState merges a --<yes>/--<no> flag pair into a tri-state value:
// nil when neither flag was given, so the project default applies.
func resolveTriState(fs *pflag.FlagSet, yes, no string) (*bool, error) {
	yesSet := fs.Changed(yes)
	noSet := fs.Changed(no)

	if yesSet && noSet {
		return nil, tberr.Newf(tberr.ErrUsage, "--%s and --%s are mutually exclusive", yes, no)
	}
	if yesSet {
		v := true
		return &v, nil
	}
	if noSet {
		v := false
		return &v, nil
	}
	return nil, nil
}
