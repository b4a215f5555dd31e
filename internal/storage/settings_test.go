package storage

import (
	"context"
	"testing"

	"tally/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_Upsert(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	require.NoError(t, s.SetSetting(ctx, SettingCurrency, "€"))

	value, err := s.GetSetting(ctx, SettingCurrency)
	require.NoError(t, err)
	assert.Equal(t, "€", value)

	// Second write replaces, not duplicates.
	require.NoError(t, s.SetSetting(ctx, SettingCurrency, "£"))
	value, err = s.GetSetting(ctx, SettingCurrency)
	require.NoError(t, err)
	assert.Equal(t, "£", value)
}

func TestSettings_Missing(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.GetSetting(ctx, "theme")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSettings_Validation(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.GetSetting(ctx, " ")
	assert.Error(t, err)
	assert.Error(t, s.SetSetting(ctx, "", "x"))
	assert.Error(t, s.SetSetting(ctx, "currency", ""))
}
