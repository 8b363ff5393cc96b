package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/market"
	"github.com/rustyeddy/tradejournal/risk"
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Compute initial risk, reward:risk and position size",
	Long: `Compute the planned numbers for a trade idea.

Either --risk-amount or --risk-percent may be given; the other is derived
from the account size.

Examples:
  tradejournal risk --entry 1.0850 --stop 1.0820 --target 1.0910 --risk-percent 1
  tradejournal risk --instrument USDJPY --direction short --entry 150 --stop 150.5 --risk-amount 200`,
	Args: cobra.NoArgs,
	RunE: runRisk,
}

var riskOpts struct {
	instrument  string
	direction   string
	entry       float64
	stop        float64
	target      float64
	riskAmount  float64
	riskPercent float64
	account     float64
	quoteRate   float64
}

func init() {
	rootCmd.AddCommand(riskCmd)

	f := riskCmd.Flags()
	f.StringVarP(&riskOpts.instrument, "instrument", "i", "EURUSD", "instrument symbol")
	f.StringVar(&riskOpts.direction, "direction", "long", "long or short")
	f.Float64VarP(&riskOpts.entry, "entry", "e", 0, "entry price (required)")
	f.Float64VarP(&riskOpts.stop, "stop", "s", 0, "stop price (required)")
	f.Float64VarP(&riskOpts.target, "target", "t", 0, "target price")
	f.Float64Var(&riskOpts.riskAmount, "risk-amount", 0, "risk in account currency")
	f.Float64Var(&riskOpts.riskPercent, "risk-percent", 0, "risk in percent of account")
	f.Float64Var(&riskOpts.account, "account", 0, "account size (default from config)")
	f.Float64Var(&riskOpts.quoteRate, "quote-rate", 1, "quote currency to account currency rate")
	riskCmd.MarkFlagRequired("entry")
	riskCmd.MarkFlagRequired("stop")
	riskCmd.MarkFlagsMutuallyExclusive("risk-amount", "risk-percent")
}

func runRisk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	policy := cfg.Policy()
	if riskOpts.account > 0 {
		policy.AccountSize = riskOpts.account
	}

	dir := risk.Direction(riskOpts.direction)
	if dir != risk.Long && dir != risk.Short {
		return fmt.Errorf("direction must be long or short, got %q", riskOpts.direction)
	}

	intent := risk.TradeIntent{
		Instrument: market.Normalize(riskOpts.instrument),
		Direction:  dir,
		Entry:      &riskOpts.entry,
		Stop:       &riskOpts.stop,
	}
	if cmd.Flags().Changed("target") {
		intent.Target = &riskOpts.target
	}
	switch {
	case cmd.Flags().Changed("risk-amount"):
		intent.RiskAmount = &riskOpts.riskAmount
	case cmd.Flags().Changed("risk-percent"):
		amt := risk.RiskAmountFromPercent(riskOpts.riskPercent, policy.AccountSize)
		intent.RiskAmount = &amt
	default:
		amt := risk.RiskAmountFromPercent(policy.DefaultRiskPercent, policy.AccountSize)
		intent.RiskAmount = &amt
	}

	d := risk.Evaluate(policy, intent)
	sized := risk.Calculate(risk.Inputs{
		AccountSize:    policy.AccountSize,
		RiskPercent:    d.RiskPercent,
		EntryPrice:     riskOpts.entry,
		StopPrice:      riskOpts.stop,
		PipLocation:    market.PipLocation(intent.Instrument),
		QuoteToAccount: riskOpts.quoteRate,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Instrument:     %s (%s)\n", intent.Instrument, dir)
	fmt.Fprintf(out, "Initial risk:   %.5f (%.1f pips)\n", d.InitialRisk, sized.StopPips)
	if intent.Target != nil {
		fmt.Fprintf(out, "Planned R:R:    %.2f\n", d.PlannedRR)
	}
	fmt.Fprintf(out, "Risk:           %.2f %s (%.2f%% of %.0f)\n", *intent.RiskAmount, cfg.Account.Currency, d.RiskPercent, policy.AccountSize)
	fmt.Fprintf(out, "Position size:  %.0f units\n", d.PositionSize)
	if riskOpts.quoteRate != 1 {
		fmt.Fprintf(out, "Converted size: %.0f units at quote rate %.5f\n", sized.Units, riskOpts.quoteRate)
	}
	for _, w := range d.Warnings {
		fmt.Fprintf(out, "⚠ %s: %s\n", w.Code, w.Msg)
	}
	return nil
}
