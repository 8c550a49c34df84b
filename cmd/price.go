package cmd

import (
	"fmt"
	"strconv"

	"catalog-reconciler/core/pricing"

	"github.com/spf13/cobra"
)

// priceCmd converts source amounts with the configured pricing.
var priceCmd = &cobra.Command{
	Use:   "price <amount>...",
	Short: "Convert source prices to listing prices",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return printPrices(cmd, a.engine, args)
	},
}

func init() {
	RootCmd.AddCommand(priceCmd)
}

func printPrices(cmd *cobra.Command, engine *pricing.Engine, args []string) error {
	for _, arg := range args {
		amount, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", arg, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d -> %d\n", amount, engine.Convert(amount))
	}
	return nil
}
