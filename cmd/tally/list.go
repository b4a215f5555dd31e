package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"tally/internal/cli"
	"tally/internal/icons"
	"tally/internal/model"
	"tally/internal/report"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var (
		categoryArg string
		fromArg     string
		toArg       string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses grouped by day",
		Long: `Display expenses grouped by calendar day, most recent day first.

Optional filters narrow the list by category and by an inclusive date
range; with --from and --to set to the same day, exactly that day's
expenses are shown regardless of time-of-day.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			var filter report.Filter

			if categoryArg != "" {
				category, err := resolveCategory(st, categoryArg)
				if err != nil {
					return err
				}
				filter.CategoryID = &category.ID
			}
			if fromArg != "" {
				from, err := parseDateArg(fromArg)
				if err != nil {
					return err
				}
				filter.Start = &from
			}
			if toArg != "" {
				to, err := parseDateArg(toArg)
				if err != nil {
					return err
				}
				filter.End = &to
			}

			filtered := filter.Apply(st.Expenses())
			if len(filtered) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses found."))
				return nil
			}

			names := categoryNames(st.Categories())
			currency := st.Currency()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, section := range report.GroupByDay(filtered) {
				fmt.Fprintf(w, "%s\n", cli.TitleStyle.Render(section.Title))
				for _, exp := range section.Expenses {
					fmt.Fprintf(w, "  %d\t%s %s\t%s\t%s\n",
						exp.ID,
						iconFor(st.Categories(), exp.CategoryID),
						nameFor(names, exp.CategoryID),
						cli.Money(currency, exp.Amount),
						cli.SubtleStyle.Render(exp.Note))
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&categoryArg, "category", "c", "", "filter by category ID or name")
	cmd.Flags().StringVar(&fromArg, "from", "", "inclusive start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toArg, "to", "", "inclusive end date (YYYY-MM-DD)")

	return cmd
}

func categoryNames(categories []model.Category) map[int64]string {
	names := make(map[int64]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}
	return names
}

func nameFor(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok {
		return name
	}
	return report.FallbackLabel
}

func iconFor(categories []model.Category, id int64) string {
	for _, cat := range categories {
		if cat.ID == id {
			return icons.Glyph(cat.Icon)
		}
	}
	return icons.Glyph(icons.FallbackKey)
}
