// Package storage provides the data persistence layer for the tally application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tally/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidID    = errors.New("identifier must be positive")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateID ensures an identifier is positive.
func validateID(id int64, paramName string) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidID, paramName)
	}
	return nil
}

// validateCategoryDraft validates a category draft before insertion.
func validateCategoryDraft(draft *model.CategoryDraft) error {
	if draft == nil {
		return fmt.Errorf("%w: category draft", ErrNilParameter)
	}
	return draft.Validate()
}

// validateExpenseDraft validates an expense draft before insertion.
func validateExpenseDraft(draft *model.ExpenseDraft) error {
	if draft == nil {
		return fmt.Errorf("%w: expense draft", ErrNilParameter)
	}
	return draft.Validate()
}
