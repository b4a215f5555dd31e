package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 1

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema with default categories and currency",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS categories (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					icon TEXT NOT NULL,
					color TEXT NOT NULL,
					budget_limit REAL DEFAULT 0,
					is_archived BOOLEAN DEFAULT 0
				)`,

				`CREATE TABLE IF NOT EXISTS expenses (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					amount REAL NOT NULL,
					category_id INTEGER NOT NULL,
					date TEXT NOT NULL,
					note TEXT,
					is_recurring BOOLEAN DEFAULT 0,
					FOREIGN KEY (category_id) REFERENCES categories (id)
				)`,
				`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)`,
				`CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category_id)`,

				`CREATE TABLE IF NOT EXISTS settings (
					key TEXT PRIMARY KEY,
					value TEXT NOT NULL
				)`,

				`INSERT OR IGNORE INTO categories (id, name, icon, color, budget_limit) VALUES
					(1, 'Food', 'utensils', '#FF6B6B', 0),
					(2, 'Entertainment', 'film', '#4ECDC4', 0),
					(3, 'Travel', 'plane', '#1A535C', 0),
					(4, 'Shopping', 'shopping-bag', '#FF9F1C', 0),
					(5, 'Bills', 'file-text', '#2E86AB', 0),
					(6, 'Health', 'activity', '#10b981', 0)`,

				`INSERT OR IGNORE INTO settings (key, value) VALUES ('currency', '$')`,

				`UPDATE categories SET budget_limit = 0 WHERE budget_limit IS NULL`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to ExpectedSchemaVersion. Each
// migration runs in its own transaction so partially applied schema or seed
// data is never observable. Safe to call on every process start.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
