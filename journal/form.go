package journal

import (
	"strings"

	"github.com/rustyeddy/tradejournal/checklist"
	"github.com/rustyeddy/tradejournal/risk"
)

// Form is the new-trade entry form. Instrument, EntryPrice, StopPrice and
// BeforeImage are required; everything else is optional.
type Form struct {
	Instrument  string
	Direction   Direction
	SetupType   string
	EntryPrice  *float64
	StopPrice   *float64
	TargetPrice *float64

	// RiskAmount and RiskPercent are kept consistent through SetRiskAmount
	// and SetRiskPercent against AccountSize.
	RiskAmount  *float64
	RiskPercent *float64
	AccountSize float64

	// MinRR is the threshold LowRR warns below; 0 means risk.MinPlannedRR.
	MinRR float64

	Session       Session
	MacroEvents   []string
	RedNews       bool
	ATRPercentile *float64
	Notes         string
	Checklist     []checklist.Item

	// BeforeImage is an opaque reference (URI, data URI, file handle).
	BeforeImage string
}

// NewForm returns a form in its default state.
func NewForm(accountSize float64) Form {
	if accountSize <= 0 {
		accountSize = risk.ReferenceAccountSize
	}
	return Form{
		Direction:   Long,
		Session:     SessionLondon,
		AccountSize: accountSize,
		MacroEvents: []string{},
		Checklist:   []checklist.Item{},
	}
}

// Reset clears the form back to defaults, keeping the account size and
// R:R threshold.
func (f *Form) Reset() {
	minRR := f.MinRR
	*f = NewForm(f.AccountSize)
	f.MinRR = minRR
}

// Ready reports whether the form may be submitted.
func (f Form) Ready() bool {
	return strings.TrimSpace(f.Instrument) != "" &&
		f.EntryPrice != nil &&
		f.StopPrice != nil &&
		f.BeforeImage != ""
}

// SetRiskAmount sets the currency risk and recomputes the percent.
func (f *Form) SetRiskAmount(amount float64) {
	pct := risk.RiskPercentFromAmount(amount, f.accountSize())
	f.RiskAmount = &amount
	f.RiskPercent = &pct
}

// SetRiskPercent sets the percent risk and recomputes the amount.
func (f *Form) SetRiskPercent(percent float64) {
	amount := risk.RiskAmountFromPercent(percent, f.accountSize())
	f.RiskPercent = &percent
	f.RiskAmount = &amount
}

// SelectSetup sets the setup type and replaces the checklist with a fresh
// instance of its template.
func (f *Form) SelectSetup(lib *checklist.Library, setupType string) {
	f.SetupType = setupType
	f.Checklist = lib.Instantiate(setupType)
}

// PlannedRR previews the reward:risk of the current inputs.
func (f Form) PlannedRR() float64 {
	return risk.PlannedRR(f.EntryPrice, f.StopPrice, f.TargetPrice)
}

// LowRR reports whether the advisory R:R warning should be shown.
func (f Form) LowRR() bool {
	if f.TargetPrice == nil {
		return false
	}
	if f.MinRR > 0 {
		return f.PlannedRR() < f.MinRR
	}
	return risk.LowRR(f.PlannedRR())
}

func (f Form) accountSize() float64 {
	if f.AccountSize <= 0 {
		return risk.ReferenceAccountSize
	}
	return f.AccountSize
}

func (f Form) intent() risk.TradeIntent {
	return risk.TradeIntent{
		Instrument: f.Instrument,
		Direction:  risk.Direction(f.Direction),
		Entry:      f.EntryPrice,
		Stop:       f.StopPrice,
		Target:     f.TargetPrice,
		RiskAmount: f.RiskAmount,
	}
}
