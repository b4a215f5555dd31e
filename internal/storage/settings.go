package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"tally/internal/common"
)

// SettingCurrency is the settings key holding the display currency symbol.
const SettingCurrency = "currency"

// GetSetting returns the value for key, or common.ErrNotFound if the key has
// never been written.
func (s *SQLiteStorage) GetSetting(ctx context.Context, key string) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateString(key, "key"); err != nil {
		return "", err
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: setting %q", common.ErrNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query setting %q: %w", key, err)
	}

	return value, nil
}

// SetSetting upserts a settings row.
func (s *SQLiteStorage) SetSetting(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}
	if err := validateString(value, "value"); err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set setting %q: %w", key, err)
	}

	slog.Debug("updated setting", "key", key)
	return nil
}
