package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Refresh token maintenance",
	}
	cmd.AddCommand(newTokensCleanupCmd())
	return cmd
}

func newTokensCleanupCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete expired and revoked refresh tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				dsn = os.Getenv("DATABASE_DSN")
			}
			if dsn == "" {
				return errors.New("database DSN required: pass --dsn or set DATABASE_DSN")
			}

			pool, err := pgxpool.New(cmd.Context(), dsn)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer pool.Close()

			tag, err := pool.Exec(cmd.Context(),
				"DELETE FROM refresh_tokens WHERE expires_at < now() OR revoked_at IS NOT NULL",
			)
			if err != nil {
				return fmt.Errorf("cleanup tokens: %w", err)
			}

			cmd.Printf("deleted %d expired/revoked refresh tokens\n", tag.RowsAffected())
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "PostgreSQL DSN (default: DATABASE_DSN env)")
	return cmd
}
