package main

import (
	"context"
	"fmt"

	"tally/internal/common"
	"tally/internal/config"
	"tally/internal/storage"
	"tally/internal/store"

	"github.com/spf13/viper"
)

// initStorage initializes the storage gateway with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/tally/tally.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	gateway, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError("unable to open the expense database", err)
	}

	// Run migrations
	if err := gateway.Migrate(ctx); err != nil {
		_ = gateway.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return gateway, nil
}

// initStore builds the domain store over an initialized gateway and performs
// the initial load. The returned closer releases the database handle.
func initStore(ctx context.Context) (*store.Store, func(), error) {
	gateway, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	st := store.New(gateway)
	if err := st.Initialize(ctx); err != nil {
		_ = gateway.Close()
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return st, func() { _ = gateway.Close() }, nil
}
