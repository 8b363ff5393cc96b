package risk

// EURUSD → quote = USD → QuoteToAccount = 1.0
// USDJPY → quote = JPY → QuoteToAccount = 1 / USDJPY mid

import "math"

type Inputs struct {
	AccountSize    float64
	RiskPercent    float64 // 1 means 1%
	EntryPrice     float64
	StopPrice      float64
	PipLocation    int
	QuoteToAccount float64 // USD quote → 1.0, JPY quote → JPYUSD
}

type Result struct {
	Units      float64
	StopPips   float64
	RiskAmount float64
}

func pipSize(loc int) float64 {
	return math.Pow(10, float64(loc))
}

// PipSize returns the pip size for a given pip location.
func PipSize(loc int) float64 {
	return pipSize(loc)
}

// Calculate sizes a position in whole units from a percent risk budget.
// A zero stop distance or conversion rate yields zero units.
func Calculate(in Inputs) Result {
	pip := pipSize(in.PipLocation)
	stopPips := InitialRiskOf(in.EntryPrice, in.StopPrice) / pip

	riskAmt := RiskAmountFromPercent(in.RiskPercent, in.AccountSize)
	pipValuePerUnit := pip * in.QuoteToAccount

	res := Result{
		StopPips:   stopPips,
		RiskAmount: riskAmt,
	}
	if stopPips == 0 || pipValuePerUnit == 0 {
		return res
	}
	res.Units = math.Floor(riskAmt / (stopPips * pipValuePerUnit))
	return res
}
