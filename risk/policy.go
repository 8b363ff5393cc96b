package risk

// Direction of a trade as far as the risk checks care.
type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

type Policy struct {
	AccountSize float64 // reference account, e.g. 30000

	// Risk limits, in percent of AccountSize
	DefaultRiskPercent float64 // 1
	MaxRiskPercent     float64 // 2

	// Trade constraints
	MinRR float64 // 1.5
}

// DefaultPolicy mirrors the journal's observed behaviour.
func DefaultPolicy() Policy {
	return Policy{
		AccountSize:        ReferenceAccountSize,
		DefaultRiskPercent: 1,
		MaxRiskPercent:     2,
		MinRR:              MinPlannedRR,
	}
}

// minRR is the reward:risk warning threshold; unset falls back to
// MinPlannedRR.
func (p Policy) minRR() float64 {
	if p.MinRR <= 0 {
		return MinPlannedRR
	}
	return p.MinRR
}

type TradeIntent struct {
	Instrument string
	Direction  Direction

	Entry  *float64
	Stop   *float64
	Target *float64

	RiskAmount *float64
}
