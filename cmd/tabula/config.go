package main

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hlop3z/tabula/internal/tberr"
)

// GeneratorDefaults holds the project-wide generator defaults.
// Explicit flags on the gen command are merged over these before the schema
// model builder runs; the core never reads them directly.
type GeneratorDefaults struct {
	Migration      *bool  `yaml:"migration"`       // default true
	BinaryID       bool   `yaml:"binary_id"`       // default false
	SampleBinaryID string `yaml:"sample_binary_id"` // documentation only
}

// Config represents the tabula.yaml configuration file.
type Config struct {
	Dialect       string            `yaml:"dialect"`
	DatabaseURL   string            `yaml:"database_url"`
	ModelsDir     string            `yaml:"models_dir"`
	MigrationsDir string            `yaml:"migrations_dir"`
	Generators    GeneratorDefaults `yaml:"generators"`
}

// DefaultSampleBinaryID is the example UUID shown in generated documentation
// when no sample is configured.
const DefaultSampleBinaryID = "11111111-1111-1111-1111-111111111111"

// loadConfig loads configuration from file, env vars, and CLI flags.
// Precedence: CLI flags > env vars > config file > defaults.
func loadConfig() (*Config, error) {
	// A local .env is honored the same way the env itself is.
	_ = godotenv.Load()

	cfg := &Config{
		Dialect:       "postgres",
		ModelsDir:     "./models",
		MigrationsDir: "./migrations",
	}

	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, tberr.Wrap(tberr.ErrConfigInvalid, err, "failed to parse config file").
				With("path", configFile)
		}
		// Handle env var interpolation in database_url
		cfg.DatabaseURL = os.Expand(cfg.DatabaseURL, os.Getenv)
	}

	// Override with env vars
	if envURL := os.Getenv("DATABASE_URL"); envURL != "" && databaseURL == "" {
		cfg.DatabaseURL = envURL
	}
	if envModels := os.Getenv("TABULA_MODELS_DIR"); envModels != "" {
		cfg.ModelsDir = envModels
	}
	if envMigrations := os.Getenv("TABULA_MIGRATIONS_DIR"); envMigrations != "" {
		cfg.MigrationsDir = envMigrations
	}

	// Override with CLI flags (highest priority)
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}

	if cfg.Generators.SampleBinaryID == "" {
		cfg.Generators.SampleBinaryID = DefaultSampleBinaryID
	}

	return cfg, nil
}

// migrationDefault resolves the tri-state migration default (absent = true).
func (c *Config) migrationDefault() bool {
	if c.Generators.Migration == nil {
		return true
	}
	return *c.Generators.Migration
}

// requireProject verifies the working directory holds an initialized project.
// This check runs before any attribute parsing is attempted.
func requireProject() error {
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return tberr.New(tberr.ErrNoProject, "not a tabula project directory").
			With("config", configFile).
			WithHelp("run 'tabula init' to initialize a project here")
	}
	return nil
}
