package model

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors surfaced to callers before any write is attempted.
var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidExpense  = errors.New("invalid expense")
)

// Expense is a single dated spending record attributed to one category.
type Expense struct {
	Date       time.Time
	Note       string
	ID         int64
	CategoryID int64
	Amount     float64
	// IsRecurring is stored and round-tripped but no scheduling behavior
	// is attached to it yet.
	IsRecurring bool
}

// Day returns the expense's calendar day, truncated in its own location.
func (e *Expense) Day() time.Time {
	y, m, d := e.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.Date.Location())
}

// ExpenseDraft holds user input for an expense that has not been persisted.
type ExpenseDraft struct {
	Date        time.Time
	Note        string
	CategoryID  int64
	Amount      float64
	IsRecurring bool
}

// Validate checks the draft before it is allowed anywhere near storage.
func (d *ExpenseDraft) Validate() error {
	if d.Amount < 0 {
		return fmt.Errorf("%w: negative amount", ErrInvalidExpense)
	}
	if d.CategoryID <= 0 {
		return fmt.Errorf("%w: no category selected", ErrInvalidExpense)
	}
	if d.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidExpense)
	}
	return nil
}
