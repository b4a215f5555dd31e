package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tally/internal/cli"
	"tally/internal/model"
	"tally/internal/store"

	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		categoryArg string
		dateArg     string
		note        string
		recurring   bool
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record an expense",
		Long: `Record a new expense against a category.

The category may be given by ID or by name. The date defaults to now and
accepts YYYY-MM-DD or a full RFC 3339 timestamp.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			date := time.Now()
			if dateArg != "" {
				date, err = parseDateArg(dateArg)
				if err != nil {
					return err
				}
			}

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			category, err := resolveCategory(st, categoryArg)
			if err != nil {
				return err
			}

			draft := &model.ExpenseDraft{
				Amount:      amount,
				CategoryID:  category.ID,
				Date:        date,
				Note:        note,
				IsRecurring: recurring,
			}
			if err := draft.Validate(); err != nil {
				return err
			}

			expense, err := st.AddExpense(ctx, draft)
			if err != nil {
				return fmt.Errorf("failed to add expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s for %s (id %d)",
				cli.Money(st.Currency(), expense.Amount), category.Name, expense.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryArg, "category", "c", "", "category ID or name (required)")
	cmd.Flags().StringVarP(&dateArg, "date", "d", "", "expense date (default: now)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "free-text note")
	cmd.Flags().BoolVar(&recurring, "recurring", false, "mark as recurring (stored only; no scheduling)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

// parseDateArg accepts a bare calendar date or a full timestamp.
func parseDateArg(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local(), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
}

// resolveCategory finds an active category by numeric ID or by
// case-insensitive name.
func resolveCategory(st *store.Store, arg string) (*model.Category, error) {
	if strings.TrimSpace(arg) == "" {
		return nil, fmt.Errorf("%w: no category selected", model.ErrInvalidExpense)
	}

	categories := st.Categories()

	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		for i := range categories {
			if categories[i].ID == id {
				return &categories[i], nil
			}
		}
		return nil, fmt.Errorf("no active category with id %d", id)
	}

	for i := range categories {
		if strings.EqualFold(categories[i].Name, arg) {
			return &categories[i], nil
		}
	}
	return nil, fmt.Errorf("no active category named %q", arg)
}
