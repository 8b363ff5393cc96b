package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/market"
)

var atrCmd = &cobra.Command{
	Use:   "atr <candles.csv>",
	Short: "Rank the latest ATR against its history",
	Long: `Read OHLC candles (time,open,high,low,close) and print the latest
Wilder ATR with its percentile, for the trade's ATR percentile field.

Example:
  tradejournal atr eurusd_h1.csv --period 14`,
	Args: cobra.ExactArgs(1),
	RunE: runATR,
}

var atrPeriod int

func init() {
	rootCmd.AddCommand(atrCmd)
	atrCmd.Flags().IntVarP(&atrPeriod, "period", "p", 14, "ATR period")
}

func runATR(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	candles, err := market.ReadCandlesCSV(f)
	if err != nil {
		return fmt.Errorf("read candles: %w", err)
	}
	atr, pct, err := market.ATRPercentile(candles, atrPeriod)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Candles:        %d\n", len(candles))
	fmt.Fprintf(out, "ATR(%d):        %.5f\n", atrPeriod, atr)
	fmt.Fprintf(out, "ATR percentile: %.0f\n", pct)
	return nil
}
