package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

This command ensures your local database has the required tables, the
default categories, and the default currency setting. It is safe to run
any number of times.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			gateway, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			defer func() { _ = gateway.Close() }()

			slog.Info("Database schema is up to date")
			return nil
		},
	}
}
