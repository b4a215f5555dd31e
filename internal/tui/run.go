package tui

import (
	"context"
	"fmt"

	"tally/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run launches the dashboard over an initialized store and blocks until the
// user quits.
func Run(ctx context.Context, st *store.Store) error {
	if st.IsLoading() {
		return fmt.Errorf("store must be initialized before launching the dashboard")
	}

	program := tea.NewProgram(NewModel(ctx, st), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
