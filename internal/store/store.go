// Package store holds the process-wide in-memory state for the application:
// the active categories, the loaded expenses, and scalar settings. Every
// mutation is two-phase: the durable write goes through the persistence
// gateway first, and the in-memory collection is patched only after the write
// succeeds. Failures are logged and leave memory at its pre-call value.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"tally/internal/model"
)

// DefaultCurrency is the display currency before settings are loaded.
const DefaultCurrency = "$"

// Gateway is the subset of the persistence layer the store depends on.
type Gateway interface {
	Migrate(ctx context.Context) error
	GetCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, draft *model.CategoryDraft) (*model.Category, error)
	ArchiveCategory(ctx context.Context, id int64) error
	SetBudgetLimit(ctx context.Context, id int64, limit float64) error
	GetExpenses(ctx context.Context) ([]model.Expense, error)
	CreateExpense(ctx context.Context, draft *model.ExpenseDraft) (*model.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// settingCurrency mirrors the gateway's settings key for the currency symbol.
const settingCurrency = "currency"

// Store is the domain state container. It is constructed once by the
// composition root and injected into the presentation layer; it is never a
// package-level singleton.
type Store struct {
	gateway    Gateway
	categories []model.Category
	expenses   []model.Expense
	currency   string
	loading    bool
	mu         sync.RWMutex
}

// New creates a Store in its pre-initialization state.
func New(gateway Gateway) *Store {
	return &Store{
		gateway:  gateway,
		currency: DefaultCurrency,
		loading:  true,
	}
}

// Initialize runs migrations and performs the initial wholesale load of
// settings, categories, and expenses. The loading flag clears only after all
// loads complete; it is the single gate callers wait on before rendering.
// A missing or unreadable currency setting is non-fatal and leaves the
// default in place.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.gateway.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	if currency, err := s.gateway.GetSetting(ctx, settingCurrency); err != nil {
		slog.Error("failed to load currency setting", "error", err)
	} else {
		s.mu.Lock()
		s.currency = currency
		s.mu.Unlock()
	}

	if err := s.LoadCategories(ctx); err != nil {
		return err
	}
	if err := s.LoadExpenses(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	return nil
}

// LoadCategories replaces the in-memory category collection with the active
// set, in storage order.
func (s *Store) LoadCategories(ctx context.Context) error {
	categories, err := s.gateway.GetCategories(ctx)
	if err != nil {
		slog.Error("failed to load categories", "error", err)
		return err
	}

	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	return nil
}

// LoadExpenses replaces the in-memory expense collection with the full set,
// ordered by date descending.
func (s *Store) LoadExpenses(ctx context.Context) error {
	expenses, err := s.gateway.GetExpenses(ctx)
	if err != nil {
		slog.Error("failed to load expenses", "error", err)
		return err
	}

	s.mu.Lock()
	s.expenses = expenses
	s.mu.Unlock()
	return nil
}

// AddExpense persists the draft and prepends the stored record to the
// in-memory collection. The prepend keeps newest-inserted-first order, which
// can diverge from strict date order when a backdated expense is added; the
// divergence lasts until the next LoadExpenses and is intentional.
func (s *Store) AddExpense(ctx context.Context, draft *model.ExpenseDraft) (*model.Expense, error) {
	expense, err := s.gateway.CreateExpense(ctx, draft)
	if err != nil {
		slog.Error("failed to add expense", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.expenses = append([]model.Expense{*expense}, s.expenses...)
	s.mu.Unlock()
	return expense, nil
}

// DeleteExpense removes the expense durably, then drops it from memory by ID.
// An absent ID is a no-op.
func (s *Store) DeleteExpense(ctx context.Context, id int64) error {
	if err := s.gateway.DeleteExpense(ctx, id); err != nil {
		slog.Error("failed to delete expense", "error", err, "id", id)
		return err
	}

	s.mu.Lock()
	kept := s.expenses[:0]
	for _, exp := range s.expenses {
		if exp.ID != id {
			kept = append(kept, exp)
		}
	}
	s.expenses = kept
	s.mu.Unlock()
	return nil
}

// AddCategory persists the draft and appends the stored record to the
// in-memory active collection.
func (s *Store) AddCategory(ctx context.Context, draft *model.CategoryDraft) (*model.Category, error) {
	category, err := s.gateway.CreateCategory(ctx, draft)
	if err != nil {
		slog.Error("failed to add category", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.categories = append(s.categories, *category)
	s.mu.Unlock()
	return category, nil
}

// ArchiveCategory flags the category durably, then removes it from the
// in-memory active set. Already-loaded expenses keep their category ID.
func (s *Store) ArchiveCategory(ctx context.Context, id int64) error {
	if err := s.gateway.ArchiveCategory(ctx, id); err != nil {
		slog.Error("failed to archive category", "error", err, "id", id)
		return err
	}

	s.mu.Lock()
	kept := s.categories[:0]
	for _, cat := range s.categories {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	s.categories = kept
	s.mu.Unlock()
	return nil
}

// SetBudgetLimit persists a new budget ceiling, then reloads the category
// collection so memory reflects the stored row.
func (s *Store) SetBudgetLimit(ctx context.Context, id int64, limit float64) error {
	if err := s.gateway.SetBudgetLimit(ctx, id, limit); err != nil {
		slog.Error("failed to set budget limit", "error", err, "id", id)
		return err
	}
	return s.LoadCategories(ctx)
}

// SetCurrency upserts the currency setting. The in-memory symbol updates
// unconditionally: a failed write is logged but not rolled back, so the
// displayed currency follows the user's choice until the next restart.
func (s *Store) SetCurrency(ctx context.Context, symbol string) error {
	err := s.gateway.SetSetting(ctx, settingCurrency, symbol)
	if err != nil {
		slog.Error("failed to save currency", "error", err)
	}

	s.mu.Lock()
	s.currency = symbol
	s.mu.Unlock()
	return err
}

// Categories returns a copy of the active category collection.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Expenses returns a copy of the loaded expense collection.
func (s *Store) Expenses() []model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Currency returns the display currency symbol.
func (s *Store) Currency() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currency
}

// IsLoading reports whether the initial load has not yet completed.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
