package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tally/internal/model"
)

// dateLayout is how expense timestamps are persisted. Storing UTC RFC 3339
// keeps the TEXT column lexicographically sortable; timestamps are converted
// back to local time on read for calendar math.
const dateLayout = time.RFC3339

// GetExpenses returns every expense ordered by date descending.
func (s *SQLiteStorage) GetExpenses(ctx context.Context) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, amount, category_id, date, COALESCE(note, ''), is_recurring
		FROM expenses
		ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		var exp model.Expense
		var date string
		if err := rows.Scan(&exp.ID, &exp.Amount, &exp.CategoryID, &date, &exp.Note, &exp.IsRecurring); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		parsed, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse expense date %q: %w", date, err)
		}
		exp.Date = parsed.Local()
		expenses = append(expenses, exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	slog.Debug("retrieved expenses", "count", len(expenses))
	return expenses, nil
}

// CreateExpense inserts a new expense and returns it with its assigned ID.
func (s *SQLiteStorage) CreateExpense(ctx context.Context, draft *model.ExpenseDraft) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateExpenseDraft(draft); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO expenses (amount, category_id, date, note, is_recurring)
		VALUES (?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		draft.Amount,
		draft.CategoryID,
		draft.Date.UTC().Format(dateLayout),
		draft.Note,
		draft.IsRecurring,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get expense ID: %w", err)
	}

	expense := &model.Expense{
		ID:          id,
		Amount:      draft.Amount,
		CategoryID:  draft.CategoryID,
		Date:        draft.Date,
		Note:        draft.Note,
		IsRecurring: draft.IsRecurring,
	}

	slog.Info("created new expense", "id", id, "amount", draft.Amount, "category_id", draft.CategoryID)
	return expense, nil
}

// DeleteExpense removes an expense permanently. Deleting an absent ID is a
// no-op, not an error.
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	slog.Info("deleted expense", "id", id, "affected", affected)
	return nil
}

// CountExpenses returns the total number of stored expenses.
func (s *SQLiteStorage) CountExpenses(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	return count, nil
}
