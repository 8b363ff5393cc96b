package risk

import "math"

// ReferenceAccountSize is the account size riskAmount and riskPercent are
// expressed against.
const ReferenceAccountSize = 30000.0

// MinPlannedRR is the reward:risk ratio below which the journal warns.
const MinPlannedRR = 1.5

// InitialRisk is the absolute price distance between entry and stop (1R).
// Absent inputs give 0.
func InitialRisk(entry, stop *float64) float64 {
	if entry == nil || stop == nil {
		return 0
	}
	return InitialRiskOf(*entry, *stop)
}

// InitialRiskOf is InitialRisk for callers holding plain numbers.
func InitialRiskOf(entry, stop float64) float64 {
	return math.Abs(entry - stop)
}

// PlannedRR is the planned reward over the initial risk. It is 0 when any
// price is absent or the stop sits on the entry.
func PlannedRR(entry, stop, target *float64) float64 {
	if entry == nil || stop == nil || target == nil {
		return 0
	}
	return PlannedRROf(*entry, *stop, *target)
}

// PlannedRROf is PlannedRR for plain numbers.
func PlannedRROf(entry, stop, target float64) float64 {
	risk := InitialRiskOf(entry, stop)
	if risk == 0 {
		return 0
	}
	return math.Abs(target-entry) / risk
}

// PositionSize is the quantity that loses riskAmount if the stop is hit.
func PositionSize(entry, stop, riskAmount *float64) float64 {
	if entry == nil || stop == nil || riskAmount == nil {
		return 0
	}
	return PositionSizeOf(*entry, *stop, *riskAmount)
}

// PositionSizeOf is PositionSize for plain numbers.
func PositionSizeOf(entry, stop, riskAmount float64) float64 {
	risk := InitialRiskOf(entry, stop)
	if risk == 0 {
		return 0
	}
	return riskAmount / risk
}

// RiskAmountFromPercent converts a percent of accountSize to currency units.
func RiskAmountFromPercent(percent, accountSize float64) float64 {
	return percent * accountSize / 100
}

// RiskPercentFromAmount converts a currency amount to a percent of accountSize.
func RiskPercentFromAmount(amount, accountSize float64) float64 {
	if accountSize <= 0 {
		return 0
	}
	return amount / accountSize * 100
}

// LowRR reports whether rr deserves the below-minimum warning. Advisory only.
func LowRR(rr float64) bool {
	return rr < MinPlannedRR
}
