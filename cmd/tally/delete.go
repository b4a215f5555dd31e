package main

import (
	"fmt"
	"strconv"

	"tally/internal/cli"

	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Long:  `Permanently delete an expense by ID. Deleting an unknown ID is a no-op.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expense id %q: %w", args[0], err)
			}

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			before := len(st.Expenses())
			if err := st.DeleteExpense(ctx, id); err != nil {
				return fmt.Errorf("failed to delete expense: %w", err)
			}

			if len(st.Expenses()) == before {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("No expense with id %d", id)))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted expense %d", id)))
			return nil
		},
	}
}
