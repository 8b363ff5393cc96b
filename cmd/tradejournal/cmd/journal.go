package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/journal"
)

var showCmd = &cobra.Command{
	Use:   "show <trade-id>",
	Short: "Print one trade as an Org-mode entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all trades as CSV or Org",
	Long: `Write every trade from the configured source.

Examples:
  tradejournal export -c journal.yaml --format csv -o trades.csv
  tradejournal export -c journal.yaml --format org`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "csv or org")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
}

func runShow(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	rec, err := e.book.Get(args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradeOrg(rec))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	switch exportFormat {
	case "csv", "org":
	default:
		return fmt.Errorf("unknown format %q (csv|org)", exportFormat)
	}

	e, err := loadEnv(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	trades := e.book.List()
	switch exportFormat {
	case "csv":
		err = journal.WriteCSV(w, trades)
	case "org":
		_, err = fmt.Fprintln(w, journal.FormatTradesOrg(trades))
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	e.log.Info().Int("trades", len(trades)).Str("format", exportFormat).Msg("exported")
	return nil
}
