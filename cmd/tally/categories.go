package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"tally/internal/cli"
	"tally/internal/icons"
	"tally/internal/model"
	"tally/internal/report"

	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage spending categories",
		Long:  `List, add, and archive the categories expenses are recorded against.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(archiveCategoryCmd())
	cmd.AddCommand(listIconsCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active categories",
		Long:  `Display all active categories with this month's spending against each.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			categories := st.Categories()
			if len(categories) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No categories found. Use 'tally categories add' to create one."))
				return nil
			}

			expenses := st.Expenses()
			currency := st.Currency()
			now := time.Now()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("This month"),
				cli.TableHeaderStyle.Render("Limit"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 20),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10))

			for _, cat := range categories {
				spent := report.CategoryMonthlyTotal(expenses, cat.ID, now)
				limit := cli.SubtleStyle.Render("(none)")
				if cat.HasBudget() {
					limit = cli.MoneyWhole(currency, cat.BudgetLimit)
				}
				fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\n",
					cat.ID, icons.Glyph(cat.Icon), cat.Name,
					cli.Money(currency, spent), limit)
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		icon  string
		color string
		limit float64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Long:  `Create a new spending category with an icon, a color, and an optional monthly budget limit.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !icons.Valid(icon) {
				return fmt.Errorf("unknown icon %q; run 'tally categories icons' for the available set", icon)
			}

			draft := &model.CategoryDraft{
				Name:        args[0],
				Icon:        icon,
				Color:       color,
				BudgetLimit: limit,
			}
			if err := draft.Validate(); err != nil {
				return err
			}

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			category, err := st.AddCategory(ctx, draft)
			if err != nil {
				return fmt.Errorf("failed to add category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %q (id %d)", category.Name, category.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", icons.FallbackKey, "icon key")
	cmd.Flags().StringVar(&color, "color", icons.Palette[0], "display color (hex)")
	cmd.Flags().Float64Var(&limit, "limit", 0, "monthly budget limit (0 = none)")

	return cmd
}

func archiveCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a category",
		Long: `Archive a category so it no longer appears in active lists.

Existing expenses recorded against it are kept; the category row is never
physically deleted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid category id %q: %w", args[0], err)
			}

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := st.ArchiveCategory(ctx, id); err != nil {
				return fmt.Errorf("failed to archive category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Archived category %d", id)))
			return nil
		},
	}
}

func listIconsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "icons",
		Short: "List available icon keys",
		Run: func(_ *cobra.Command, _ []string) {
			for _, name := range icons.Names() {
				fmt.Printf("%s  %s\n", icons.Glyph(name), name)
			}
		},
	}
}
