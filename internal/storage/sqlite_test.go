package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStorage opens a migrated database in a temp directory.
func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestNewSQLiteStorage_InvalidPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.Error(t, err)
}

func TestMigrate_SeedsDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	categories, err := s.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 6)

	wantNames := []string{"Food", "Entertainment", "Travel", "Shopping", "Bills", "Health"}
	for i, cat := range categories {
		assert.Equal(t, int64(i+1), cat.ID)
		assert.Equal(t, wantNames[i], cat.Name)
		assert.Zero(t, cat.BudgetLimit)
		assert.False(t, cat.IsArchived)
	}

	currency, err := s.GetSetting(ctx, SettingCurrency)
	require.NoError(t, err)
	assert.Equal(t, "$", currency)
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	// Archive a seed category and change the currency, then migrate again:
	// user state must survive.
	require.NoError(t, s.ArchiveCategory(ctx, 2))
	require.NoError(t, s.SetSetting(ctx, SettingCurrency, "€"))

	require.NoError(t, s.Migrate(ctx))
	require.NoError(t, s.Migrate(ctx))

	categories, err := s.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 5)

	currency, err := s.GetSetting(ctx, SettingCurrency)
	require.NoError(t, err)
	assert.Equal(t, "€", currency)
}

func TestMigrate_NilContext(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer s.Close()

	//nolint:staticcheck // deliberately passing nil context
	assert.ErrorIs(t, s.Migrate(nil), ErrNilContext)
}
