package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCategoryDraft_Validate(t *testing.T) {
	valid := CategoryDraft{Name: "Groceries", Icon: "utensils", Color: "#FF6B6B", BudgetLimit: 200}

	tests := []struct {
		mutate  func(*CategoryDraft)
		name    string
		wantErr bool
	}{
		{name: "valid draft", mutate: func(*CategoryDraft) {}},
		{name: "zero limit is valid", mutate: func(d *CategoryDraft) { d.BudgetLimit = 0 }},
		{name: "blank name", mutate: func(d *CategoryDraft) { d.Name = "   " }, wantErr: true},
		{name: "name over twenty runes", mutate: func(d *CategoryDraft) { d.Name = "ABCDEFGHIJKLMNOPQRSTU" }, wantErr: true},
		{name: "twenty runes exactly", mutate: func(d *CategoryDraft) { d.Name = "ABCDEFGHIJKLMNOPQRST" }},
		{name: "missing icon", mutate: func(d *CategoryDraft) { d.Icon = "" }, wantErr: true},
		{name: "missing color", mutate: func(d *CategoryDraft) { d.Color = "" }, wantErr: true},
		{name: "negative limit", mutate: func(d *CategoryDraft) { d.BudgetLimit = -10 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)

			err := draft.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCategory)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpenseDraft_Validate(t *testing.T) {
	valid := ExpenseDraft{Amount: 12.50, CategoryID: 1, Date: time.Now()}

	tests := []struct {
		mutate  func(*ExpenseDraft)
		name    string
		wantErr bool
	}{
		{name: "valid draft", mutate: func(*ExpenseDraft) {}},
		{name: "zero amount is valid", mutate: func(d *ExpenseDraft) { d.Amount = 0 }},
		{name: "negative amount", mutate: func(d *ExpenseDraft) { d.Amount = -1 }, wantErr: true},
		{name: "no category", mutate: func(d *ExpenseDraft) { d.CategoryID = 0 }, wantErr: true},
		{name: "zero date", mutate: func(d *ExpenseDraft) { d.Date = time.Time{} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)

			err := draft.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidExpense)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategory_HasBudget(t *testing.T) {
	assert.False(t, (&Category{BudgetLimit: 0}).HasBudget(), "zero means unset")
	assert.True(t, (&Category{BudgetLimit: 0.01}).HasBudget())
}

func TestExpense_Day(t *testing.T) {
	exp := Expense{Date: time.Date(2026, 8, 14, 23, 45, 12, 0, time.Local)}
	assert.Equal(t, time.Date(2026, 8, 14, 0, 0, 0, 0, time.Local), exp.Day())
}
