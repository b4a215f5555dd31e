package main

import (
	"tally/internal/tui"

	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open a full-screen dashboard with an overview of this month's spending,
a browsable expense list, and the six-month trend.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			return tui.Run(ctx, st)
		},
	}
}
