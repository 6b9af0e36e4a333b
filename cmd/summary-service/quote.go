package main

import (
	"context"
	"encoding/json"
	"os"

	"golang-stock-summary/pkg/common"

	"github.com/spf13/cobra"
)

var symbol string

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Prints the summary for one symbol and exits",
	RunE:  runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&symbol, "symbol", "s", common.DefaultSymbol, "Ticker symbol")
}

func runQuote(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a := bootstrap(ctx, configPath)
	defer a.close(context.Background())

	resp, err := a.stockService.GetStockSummary(ctx, symbol)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
