// Package model defines the core domain types shared across the application.
package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxCategoryNameLength is the longest category name accepted from the user.
const MaxCategoryNameLength = 20

// Category represents a user-defined spending bucket.
type Category struct {
	Name        string
	Icon        string
	Color       string
	ID          int64
	BudgetLimit float64
	IsArchived  bool
}

// HasBudget reports whether a monthly spending ceiling is set.
// A limit of zero means "no limit", not "limit of zero".
func (c *Category) HasBudget() bool {
	return c.BudgetLimit > 0
}

// CategoryDraft holds user input for a category that has not been persisted.
type CategoryDraft struct {
	Name        string
	Icon        string
	Color       string
	BudgetLimit float64
}

// Validate checks the draft before it is allowed anywhere near storage.
func (d *CategoryDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCategory)
	}
	if utf8.RuneCountInString(d.Name) > MaxCategoryNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidCategory, MaxCategoryNameLength)
	}
	if d.Icon == "" {
		return fmt.Errorf("%w: missing icon", ErrInvalidCategory)
	}
	if d.Color == "" {
		return fmt.Errorf("%w: missing color", ErrInvalidCategory)
	}
	if d.BudgetLimit < 0 {
		return fmt.Errorf("%w: negative budget limit", ErrInvalidCategory)
	}
	return nil
}
