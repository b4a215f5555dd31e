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

func trendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Show the six-month spending trend",
		Long:  `Show total spending for each of the last six calendar months, oldest first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			currency := st.Currency()
			buckets := report.SixMonthTrend(st.Expenses(), time.Now())

			// Scale bars against the busiest month.
			var max float64
			for _, b := range buckets {
				if b.Value > max {
					max = b.Value
				}
			}

			fmt.Println(cli.TitleStyle.Render("Six-month trend"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			for _, b := range buckets {
				percent := 0.0
				if max > 0 {
					percent = b.Value / max * 100
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					b.Label,
					cli.Money(currency, b.Value),
					cli.Bar(percent, 24, false))
			}

			return nil
		},
	}
}
