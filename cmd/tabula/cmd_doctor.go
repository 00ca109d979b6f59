package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hlop3z/tabula/internal/tberr"
	"github.com/hlop3z/tabula/internal/types"
	"github.com/hlop3z/tabula/internal/ui"
)

// pingTimeout bounds the doctor connectivity check.
const pingTimeout = 5 * time.Second

// doctorCmd checks the project environment: config file, directories, dialect,
// and (when a database URL is configured) connectivity. Generation itself
// never touches the database; this is purely a diagnostic.
func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check project configuration and database connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := ui.NewReport()
			healthy := true

			if _, err := os.Stat(configFile); os.IsNotExist(err) {
				report.Fail(fmt.Sprintf("config file %s not found (run 'tabula init')", configFile))
				fmt.Println(ui.Header(Msg.Doctor.Title))
				fmt.Println(report.String())
				return tberr.New(tberr.ErrNoProject, "not a tabula project directory").
					With("config", configFile)
			}
			report.Ok("config file " + configFile)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			dialect, err := types.ParseDialect(cfg.Dialect)
			if err != nil {
				report.Fail("dialect " + cfg.Dialect + " is not supported")
				healthy = false
			} else {
				report.Ok("dialect " + dialect.String())
			}

			for _, dir := range []string{cfg.ModelsDir, cfg.MigrationsDir} {
				if info, err := os.Stat(dir); err != nil || !info.IsDir() {
					report.Fail(fmt.Sprintf("directory %s missing (run 'tabula init')", dir))
					healthy = false
				} else {
					report.Ok("directory " + dir)
				}
			}

			switch {
			case cfg.DatabaseURL == "":
				report.Warn("no database_url configured; skipping connectivity check")
			case err != nil:
				report.Warn("skipping connectivity check: dialect is unusable")
			default:
				if pingErr := pingDatabase(cmd.Context(), dialect, cfg.DatabaseURL); pingErr != nil {
					report.Fail("database unreachable: " + pingErr.Error())
					healthy = false
				} else {
					report.Ok("database reachable (" + MaskDatabaseURL(cfg.DatabaseURL) + ")")
				}
			}

			fmt.Println(ui.Header(Msg.Doctor.Title))
			fmt.Println(report.String())
			fmt.Println()

			if !healthy {
				return tberr.New(tberr.ErrDBConnection, "environment check failed")
			}
			fmt.Println(ui.Done(Msg.Doctor.Healthy))
			return nil
		},
	}
}

// pingDatabase opens the configured database and pings it within pingTimeout.
func pingDatabase(ctx context.Context, d types.Dialect, url string) error {
	driver := "postgres"
	if d == types.SQLite {
		driver = "sqlite"
	}

	db, err := sql.Open(driver, url)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return db.PingContext(ctx)
}
