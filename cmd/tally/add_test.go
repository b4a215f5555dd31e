package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"tally/internal/storage"
	"tally/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateArg(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "bare calendar date",
			input: "2026-08-14",
			want:  time.Date(2026, 8, 14, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "full timestamp",
			input: "2026-08-14T09:30:00Z",
			want:  time.Date(2026, 8, 14, 9, 30, 0, 0, time.UTC),
		},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong order", input: "14-08-2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDateArg(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestResolveCategory(t *testing.T) {
	ctx := context.Background()

	gateway, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer gateway.Close()

	st := store.New(gateway)
	require.NoError(t, st.Initialize(ctx))
	require.NoError(t, st.ArchiveCategory(ctx, 6))

	tests := []struct {
		name    string
		arg     string
		wantID  int64
		wantErr bool
	}{
		{name: "by id", arg: "3", wantID: 3},
		{name: "by name", arg: "Food", wantID: 1},
		{name: "name is case-insensitive", arg: "bills", wantID: 5},
		{name: "unknown id", arg: "42", wantErr: true},
		{name: "unknown name", arg: "Yachts", wantErr: true},
		{name: "archived category", arg: "Health", wantErr: true},
		{name: "blank", arg: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := resolveCategory(st, tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, cat.ID)
		})
	}
}
