package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"tally/internal/cli"
	"tally/internal/report"

	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show this month's spending by category",
		Long: `Show the current month's total and its distribution across categories,
largest first. Spending against archived categories is grouped under "Other".`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			expenses := st.Expenses()
			currency := st.Currency()
			now := time.Now()

			total := report.MonthlyTotal(expenses, now)
			slices := report.Distribution(expenses, st.Categories(), now)

			fmt.Println(cli.TitleStyle.Render("Spending for " + now.Format("January 2006")))
			fmt.Printf("Total: %s\n\n", cli.BoldStyle.Render(cli.Money(currency, total)))

			if len(slices) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses recorded this month."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			for _, slice := range slices {
				share := 0.0
				if total > 0 {
					share = slice.Value / total * 100
				}
				fmt.Fprintf(w, "%s\t%s\t%.0f%%\t%s\n",
					slice.Label,
					cli.Money(currency, slice.Value),
					share,
					cli.Bar(share, 20, false))
			}

			return nil
		},
	}
}
