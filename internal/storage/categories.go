package storage

import (
	"context"
	"fmt"
	"log/slog"

	"tally/internal/model"
)

// GetCategories returns all active (non-archived) categories in storage order.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	return s.getCategories(ctx, `
		SELECT id, name, icon, color, budget_limit, is_archived
		FROM categories
		WHERE is_archived = 0`)
}

// GetAllCategories returns every category, archived ones included. Used to
// resolve display names for expenses whose category has been archived.
func (s *SQLiteStorage) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	return s.getCategories(ctx, `
		SELECT id, name, icon, color, budget_limit, is_archived
		FROM categories`)
}

func (s *SQLiteStorage) getCategories(ctx context.Context, query string) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Icon, &cat.Color, &cat.BudgetLimit, &cat.IsArchived); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// CreateCategory inserts a new category and returns it with its assigned ID.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, draft *model.CategoryDraft) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateCategoryDraft(draft); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO categories (name, icon, color, budget_limit, is_archived)
		VALUES (?, ?, ?, ?, 0)`

	result, err := s.db.ExecContext(ctx, query, draft.Name, draft.Icon, draft.Color, draft.BudgetLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category ID: %w", err)
	}

	category := &model.Category{
		ID:          id,
		Name:        draft.Name,
		Icon:        draft.Icon,
		Color:       draft.Color,
		BudgetLimit: draft.BudgetLimit,
	}

	slog.Info("created new category", "name", draft.Name, "id", id)
	return category, nil
}

// ArchiveCategory soft-deletes a category. The row is never removed, so
// expenses referencing it stay resolvable.
func (s *SQLiteStorage) ArchiveCategory(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	query := `UPDATE categories SET is_archived = 1 WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to archive category: %w", err)
	}

	slog.Info("archived category", "id", id)
	return nil
}

// SetBudgetLimit updates the monthly spending ceiling for a category.
// A limit of zero clears the ceiling.
func (s *SQLiteStorage) SetBudgetLimit(ctx context.Context, id int64, limit float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}
	if limit < 0 {
		return fmt.Errorf("%w: negative budget limit", model.ErrInvalidCategory)
	}

	query := `UPDATE categories SET budget_limit = ? WHERE id = ?`
	if _, err := s.db.ExecContext(ctx, query, limit, id); err != nil {
		return fmt.Errorf("failed to set budget limit: %w", err)
	}

	slog.Info("updated budget limit", "id", id, "limit", limit)
	return nil
}
