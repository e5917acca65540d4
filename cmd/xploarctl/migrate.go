package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var (
		dsn string
		dir string
	)

	cmd := &cobra.Command{
		Use:       "migrate {up|down|status}",
		Short:     "Apply or inspect database migrations",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				dsn = os.Getenv("DATABASE_DSN")
			}
			if dsn == "" {
				return errors.New("database DSN required: pass --dsn or set DATABASE_DSN")
			}

			db, err := sql.Open("pgx", dsn)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			if err := db.PingContext(cmd.Context()); err != nil {
				return fmt.Errorf("ping database: %w", err)
			}

			// goose.NewProvider handles $$-delimited PL/pgSQL bodies,
			// unlike the legacy goose.Up.
			provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(dir))
			if err != nil {
				return fmt.Errorf("init migrations: %w", err)
			}

			ctx := cmd.Context()
			switch args[0] {
			case "up":
				results, err := provider.Up(ctx)
				if err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				for _, r := range results {
					cmd.Printf("applied %s\n", r.Source.Path)
				}
				cmd.Printf("%d migrations applied\n", len(results))
			case "down":
				result, err := provider.Down(ctx)
				if err != nil {
					return fmt.Errorf("migrate down: %w", err)
				}
				cmd.Printf("rolled back %s\n", result.Source.Path)
			case "status":
				statuses, err := provider.Status(ctx)
				if err != nil {
					return fmt.Errorf("migration status: %w", err)
				}
				for _, s := range statuses {
					state := "pending"
					if s.State == goose.StateApplied {
						state = "applied"
					}
					cmd.Printf("%-8s %s\n", state, s.Source.Path)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "PostgreSQL DSN (default: DATABASE_DSN env)")
	cmd.Flags().StringVar(&dir, "dir", "migrations", "migrations directory")
	return cmd
}
