package risk

import "fmt"

type Violation struct {
	Code string
	Msg  string
}

// Decision is the outcome of Evaluate. Every violation it carries is a
// warning to surface; none of them stop a trade from being logged.
type Decision struct {
	Warnings []Violation

	InitialRisk  float64
	PlannedRR    float64
	PositionSize float64
	RiskPercent  float64
}

func (d *Decision) add(code, msg string) {
	d.Warnings = append(d.Warnings, Violation{Code: code, Msg: msg})
}

// Has reports whether a warning with code was raised.
func (d Decision) Has(code string) bool {
	for _, v := range d.Warnings {
		if v.Code == code {
			return true
		}
	}
	return false
}

const (
	CodeNoStopOrEntry = "NO_STOP_OR_ENTRY"
	CodeZeroRisk      = "ZERO_RISK"
	CodeRRTooLow      = "RR_TOO_LOW"
	CodeRiskOverMax   = "RISK_OVER_MAX"
	CodeRiskOverDef   = "RISK_OVER_DEFAULT"
	CodeStopWrongSide = "STOP_WRONG_SIDE"
	CodeTargetWrong   = "TARGET_WRONG_SIDE"
)

// Evaluate computes the planned numbers for intent and collects advisory
// warnings against p.
func Evaluate(p Policy, intent TradeIntent) Decision {
	var d Decision

	if intent.Entry == nil || intent.Stop == nil {
		d.add(CodeNoStopOrEntry, "entry/stop must be set")
		return d
	}

	d.InitialRisk = InitialRisk(intent.Entry, intent.Stop)
	d.PlannedRR = PlannedRR(intent.Entry, intent.Stop, intent.Target)
	d.PositionSize = PositionSize(intent.Entry, intent.Stop, intent.RiskAmount)
	if intent.RiskAmount != nil {
		d.RiskPercent = RiskPercentFromAmount(*intent.RiskAmount, p.AccountSize)
	}

	if d.InitialRisk == 0 {
		d.add(CodeZeroRisk, "stop equals entry; risk metrics are zero")
	}

	entry, stop := *intent.Entry, *intent.Stop
	switch intent.Direction {
	case Long:
		if stop > entry {
			d.add(CodeStopWrongSide, fmt.Sprintf("long stop %.5f above entry %.5f", stop, entry))
		}
		if intent.Target != nil && *intent.Target < entry {
			d.add(CodeTargetWrong, fmt.Sprintf("long target %.5f below entry %.5f", *intent.Target, entry))
		}
	case Short:
		if stop < entry {
			d.add(CodeStopWrongSide, fmt.Sprintf("short stop %.5f below entry %.5f", stop, entry))
		}
		if intent.Target != nil && *intent.Target > entry {
			d.add(CodeTargetWrong, fmt.Sprintf("short target %.5f above entry %.5f", *intent.Target, entry))
		}
	}

	if minRR := p.minRR(); intent.Target != nil && d.PlannedRR < minRR {
		d.add(CodeRRTooLow,
			fmt.Sprintf("RR %.2f below minimum %.2f", d.PlannedRR, minRR))
	}

	if p.MaxRiskPercent > 0 && d.RiskPercent > p.MaxRiskPercent {
		d.add(CodeRiskOverMax,
			fmt.Sprintf("planned risk %.2f%% exceeds max %.2f%%", d.RiskPercent, p.MaxRiskPercent))
	} else if p.DefaultRiskPercent > 0 && d.RiskPercent > p.DefaultRiskPercent {
		d.add(CodeRiskOverDef,
			fmt.Sprintf("planned risk %.2f%% exceeds default %.2f%%", d.RiskPercent, p.DefaultRiskPercent))
	}

	return d
}
