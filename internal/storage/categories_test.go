package storage

import (
	"context"
	"testing"
	"time"

	"tally/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	draft := &model.CategoryDraft{
		Name:        "Pets",
		Icon:        "paw-print",
		Color:       "#A29BFE",
		BudgetLimit: 50,
	}

	cat, err := s.CreateCategory(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cat.ID, "IDs continue after the six seed rows")
	assert.Equal(t, "Pets", cat.Name)
	assert.Equal(t, 50.0, cat.BudgetLimit)
	assert.False(t, cat.IsArchived)

	categories, err := s.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 7)
	assert.Equal(t, "Pets", categories[6].Name, "insertion order is preserved")
}

func TestCreateCategory_InvalidDraft(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	tests := []struct {
		name  string
		draft *model.CategoryDraft
	}{
		{name: "nil draft", draft: nil},
		{name: "empty name", draft: &model.CategoryDraft{Icon: "zap", Color: "#fff"}},
		{name: "name too long", draft: &model.CategoryDraft{Name: "AVeryLongCategoryNameHere", Icon: "zap", Color: "#fff"}},
		{name: "missing icon", draft: &model.CategoryDraft{Name: "X", Color: "#fff"}},
		{name: "missing color", draft: &model.CategoryDraft{Name: "X", Icon: "zap"}},
		{name: "negative limit", draft: &model.CategoryDraft{Name: "X", Icon: "zap", Color: "#fff", BudgetLimit: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateCategory(ctx, tt.draft)
			assert.Error(t, err)
		})
	}
}

func TestArchiveCategory(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	// An expense referencing the category must survive the archive.
	_, err := s.CreateExpense(ctx, &model.ExpenseDraft{
		Amount:     12.50,
		CategoryID: 1,
		Date:       time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, s.ArchiveCategory(ctx, 1))

	active, err := s.GetCategories(ctx)
	require.NoError(t, err)
	for _, cat := range active {
		assert.NotEqual(t, int64(1), cat.ID)
	}

	all, err := s.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6, "archived rows are kept")

	expenses, err := s.GetExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, int64(1), expenses[0].CategoryID, "no cascade delete")
}

func TestSetBudgetLimit(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	require.NoError(t, s.SetBudgetLimit(ctx, 1, 300))

	categories, err := s.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 300.0, categories[0].BudgetLimit)

	// Zero clears the ceiling.
	require.NoError(t, s.SetBudgetLimit(ctx, 1, 0))
	categories, err = s.GetCategories(ctx)
	require.NoError(t, err)
	assert.Zero(t, categories[0].BudgetLimit)

	assert.Error(t, s.SetBudgetLimit(ctx, 1, -5))
	assert.Error(t, s.SetBudgetLimit(ctx, 0, 100))
}
