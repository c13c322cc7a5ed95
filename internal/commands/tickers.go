package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"StockScreener/internal/tickers"
)

var tickersCmd = &cobra.Command{
	Use:   "tickers",
	Short: "Print the built-in NSE sample list",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range tickers.Sample() {
			fmt.Println(t)
		}
	},
}

func init() {
	rootCmd.AddCommand(tickersCmd)
}
