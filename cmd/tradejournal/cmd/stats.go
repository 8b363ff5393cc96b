package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/journal"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate performance of closed trades",
	Long: `Print win rate, average win/loss, expectancy and discipline score
for the closed trades in the configured source.

Examples:
  tradejournal stats -c journal.yaml
  tradejournal stats -c journal.yaml --by session
  tradejournal stats -c journal.yaml --mistakes`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var (
	statsBy       string
	statsMistakes bool
)

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsBy, "by", "", "group by session|instrument|setup")
	statsCmd.Flags().BoolVar(&statsMistakes, "mistakes", false, "also list mistake tags by frequency")
}

func runStats(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	trades := e.book.List()

	if statsBy == "" {
		printStats(out, "All trades", journal.Aggregate(trades))
	} else {
		key, err := groupKey(statsBy)
		if err != nil {
			return err
		}
		groups := journal.AggregateBy(trades, key)
		names := make([]string, 0, len(groups))
		for k := range groups {
			names = append(names, k)
		}
		sort.Strings(names)
		for i, k := range names {
			if i > 0 {
				fmt.Fprintln(out)
			}
			label := k
			if label == "" {
				label = "(none)"
			}
			printStats(out, label, groups[k])
		}
	}

	if statsMistakes {
		fmt.Fprintln(out, "\nMistakes")
		for _, m := range journal.Mistakes(trades) {
			fmt.Fprintf(out, "  %-20s %3d  %+.2fR\n", m.Tag, m.Count, m.TotalR)
		}
	}
	return nil
}

func groupKey(by string) (journal.GroupKey, error) {
	switch by {
	case "session":
		return journal.BySession, nil
	case "instrument":
		return journal.ByInstrument, nil
	case "setup":
		return journal.BySetup, nil
	}
	return nil, fmt.Errorf("unknown grouping %q (session|instrument|setup)", by)
}

func printStats(w io.Writer, title string, s journal.Stats) {
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "  Closed trades:   %d (%d W / %d L)\n", s.TotalTrades, s.Wins, s.Losses)
	fmt.Fprintf(w, "  Total R:         %+.2f\n", s.TotalR)
	fmt.Fprintf(w, "  Win rate:        %.1f%%\n", s.WinRate)
	fmt.Fprintf(w, "  Avg win:         %.2fR\n", s.AvgWin)
	fmt.Fprintf(w, "  Avg loss:        %.2fR\n", s.AvgLoss)
	fmt.Fprintf(w, "  Expectancy:      %+.3fR\n", s.Expectancy)
	fmt.Fprintf(w, "  Discipline:      %.0f%%\n", s.AvgDisciplineScore)
}
