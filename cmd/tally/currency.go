package main

import (
	"fmt"
	"slices"

	"tally/internal/cli"

	"github.com/spf13/cobra"
)

// supportedCurrencies is the fixed set of symbols the UI offers.
var supportedCurrencies = []string{"$", "€", "₹", "£", "¥"}

func currencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currency [symbol]",
		Short: "Show or set the display currency",
		Long: `With no argument, print the current display currency. With a symbol
argument, persist it as the new display currency.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, closeStore, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			if len(args) == 0 {
				fmt.Println(st.Currency())
				return nil
			}

			symbol := args[0]
			if !slices.Contains(supportedCurrencies, symbol) {
				return fmt.Errorf("unsupported currency %q (choose one of %v)", symbol, supportedCurrencies)
			}

			if err := st.SetCurrency(ctx, symbol); err != nil {
				return fmt.Errorf("failed to set currency: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Display currency set to " + symbol))
			return nil
		},
	}
}
