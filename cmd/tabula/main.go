// Package main provides the CLI for the Tabula schema generator.
// Tabula turns a compact attribute specification into a model source file
// and a reversible SQL migration for the project's configured database.
//
// Usage:
//
//	tabula init                                  # Create tabula.yaml, models/ and migrations/ dirs
//	tabula gen <Module.Name> <plural> [attr...]  # Generate a model and its migration
//	tabula types                                 # List supported attribute types
//	tabula doctor                                # Check the project environment
package main

import (
	"os"

	"github.com/spf13/cobra"

	// Database drivers, used by the doctor command's connectivity check
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// Global flags
var (
	databaseURL string
	configFile  string
)

// customHelp displays a styled help message for the root command.
func customHelp(cmd *cobra.Command) {
	categories := []CommandCategory{
		{
			Title: "Setup",
			Commands: []CommandInfo{
				{"init", "Initialize project structure (tabula.yaml, models/, migrations/)"},
			},
		},
		{
			Title: "Generation",
			Commands: []CommandInfo{
				{"gen", "Generate a model and its migration from an attribute spec"},
				{"types", "List supported attribute types"},
			},
		},
		{
			Title: "Verification",
			Commands: []CommandInfo{
				{"doctor", "Check project configuration and database connectivity"},
			},
		},
	}

	flags := []FlagInfo{
		{"-c, --config", "Path to config file (default: tabula.yaml)"},
		{"-d, --database-url", "Database connection URL (doctor only)"},
		{"-h, --help", "Show help information"},
		{"-v, --version", "Show version information"},
	}

	renderCategoryHelp(MainTitle, MainSummary, categories, flags)
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "tabula",
		Short:         "Schema and migration generator",
		Long:          `Tabula generates a model source file and a reversible SQL migration from a compact attribute specification like "title:string views:integer user_id:references:users".`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		customHelp(cmd)
	})

	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&databaseURL, "database-url", "d", "", "Database connection URL")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "tabula.yaml", "Path to config file")

	rootCmd.AddCommand(
		initCmd(),
		genCmd(),
		typesCmd(),
		doctorCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		printCLIError(err)
		os.Exit(1)
	}
}
