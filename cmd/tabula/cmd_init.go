package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hlop3z/tabula/internal/materialize"
	"github.com/hlop3z/tabula/internal/ui"
)

// defaultConfigContent is written by init when no config file exists.
const defaultConfigContent = `# tabula.yaml
dialect: postgres # or sqlite
database_url: ${DATABASE_URL}

models_dir: ./models
migrations_dir: ./migrations

generators:
  migration: true
  binary_id: false
  # Example id shown in generated docs when binary_id is enabled.
  sample_binary_id: 11111111-1111-1111-1111-111111111111
`

// initCmd creates the models/ and migrations/ directories plus tabula.yaml.
func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize project structure (creates tabula.yaml, models/, migrations/)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			dirs := []string{cfg.ModelsDir, cfg.MigrationsDir}
			for _, dir := range dirs {
				if err := os.MkdirAll(dir, materialize.DirPerm); err != nil {
					return fmt.Errorf("failed to create %s: %w", dir, err)
				}
				fmt.Printf("Created %s/\n", filepath.Clean(dir))
			}
			// Create .gitkeep so empty directories are tracked by git
			for _, dir := range dirs {
				gitkeepPath := filepath.Join(dir, ".gitkeep")
				if _, err := os.Stat(gitkeepPath); os.IsNotExist(err) {
					if err := os.WriteFile(gitkeepPath, []byte{}, materialize.FilePerm); err != nil {
						return fmt.Errorf("failed to create %s: %w", gitkeepPath, err)
					}
				}
			}

			// Create tabula.yaml if it doesn't exist
			if _, err := os.Stat(configFile); os.IsNotExist(err) {
				if err := os.WriteFile(configFile, []byte(defaultConfigContent), materialize.FilePerm); err != nil {
					return fmt.Errorf("failed to create config file: %w", err)
				}
				fmt.Printf("Created %s\n", configFile)
			}

			ui.ShowSuccess(
				Msg.Init.Complete,
				ui.Help("Next steps:\n  1. Edit tabula.yaml to set dialect and database_url\n  2. Run 'tabula gen <Module.Name> <plural> [attribute...]'"),
			)
			return nil
		},
	}
}
