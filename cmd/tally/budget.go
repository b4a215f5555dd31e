package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"tally/internal/cli"
	"tally/internal/icons"
	"tally/internal/report"

	"github.com/spf13/cobra"
)

const budgetBarWidth = 20

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show budget progress",
		Long: `Show this month's spending against the total budget and against each
category's limit. Categories without a limit are listed without a bar.`,
		RunE: runBudget,
	}

	cmd.AddCommand(setBudgetCmd())

	return cmd
}

func runBudget(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	st, closeStore, err := initStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	categories := st.Categories()
	expenses := st.Expenses()
	currency := st.Currency()
	now := time.Now()

	spent := report.MonthlyTotal(expenses, now)
	budget := report.BudgetTotal(categories)
	ratio := report.BudgetProgress(spent, budget)

	fmt.Println(cli.TitleStyle.Render("Budget for " + now.Format("January 2006")))
	fmt.Printf("%s of %s (%.0f%%)\n",
		cli.BoldStyle.Render(cli.Money(currency, spent)),
		cli.Money(currency, budget),
		ratio*100)
	fmt.Println(cli.Bar(report.DisplayPercent(ratio), 2*budgetBarWidth, ratio > 1))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	for _, cat := range categories {
		catSpent := report.CategoryMonthlyTotal(expenses, cat.ID, now)
		if !cat.HasBudget() {
			fmt.Fprintf(w, "%s %s\t%s\t%s\n",
				icons.Glyph(cat.Icon), cat.Name,
				cli.Money(currency, catSpent),
				cli.SubtleStyle.Render("no limit"))
			continue
		}

		catRatio := report.BudgetProgress(catSpent, cat.BudgetLimit)
		fmt.Fprintf(w, "%s %s\t%s / %s\t%s\n",
			icons.Glyph(cat.Icon), cat.Name,
			cli.Money(currency, catSpent),
			cli.MoneyWhole(currency, cat.BudgetLimit),
			cli.Bar(report.DisplayPercent(catRatio), budgetBarWidth, catRatio > 1))
	}

	return nil
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category-id> <limit>",
		Short: "Set a category's monthly budget limit",
		Long:  `Set the monthly spending ceiling for a category. A limit of 0 clears it.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid category id %q: %w", args[0], err)
			}
			limit, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[1], err)
			}

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := st.SetBudgetLimit(ctx, id, limit); err != nil {
				return fmt.Errorf("failed to set budget limit: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget limit for category %d set to %s",
				id, cli.Money(st.Currency(), limit))))
			return nil
		},
	}
}
