package journal

import (
	"math"
	"sort"
)

// Stats summarises closed trades in R-multiples.
type Stats struct {
	TotalTrades        int     `json:"total_trades"`
	Wins               int     `json:"wins"`
	Losses             int     `json:"losses"`
	TotalR             float64 `json:"total_r"`
	WinRate            float64 `json:"win_rate"` // percent
	AvgWin             float64 `json:"avg_win"`
	AvgLoss            float64 `json:"avg_loss"` // absolute value
	Expectancy         float64 `json:"expectancy"`
	AvgDisciplineScore float64 `json:"avg_discipline_score"`
}

// Aggregate computes Stats over the closed trades in trades. Any other
// status is ignored. With no closed trades every field is zero.
func Aggregate(trades []TradeRecord) Stats {
	var (
		s               Stats
		sumWin, sumLoss float64
		sumScore        float64
	)

	for _, t := range trades {
		if t.Status != StatusClosed {
			continue
		}
		r := t.R()
		s.TotalTrades++
		s.TotalR += r
		sumScore += t.ChecklistScore
		switch {
		case r > 0:
			s.Wins++
			sumWin += r
		case r < 0:
			s.Losses++
			sumLoss += math.Abs(r)
		}
	}

	if s.TotalTrades == 0 {
		return s
	}

	s.WinRate = float64(s.Wins) / float64(s.TotalTrades) * 100
	if s.Wins > 0 {
		s.AvgWin = sumWin / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AvgLoss = sumLoss / float64(s.Losses)
	}
	s.Expectancy = s.WinRate/100*s.AvgWin - (100-s.WinRate)/100*s.AvgLoss
	s.AvgDisciplineScore = sumScore / float64(s.TotalTrades)
	return s
}

// GroupKey picks the bucket a trade is reported under.
type GroupKey func(TradeRecord) string

func BySession(t TradeRecord) string    { return string(t.Session) }
func ByInstrument(t TradeRecord) string { return t.Instrument }
func BySetup(t TradeRecord) string      { return t.SetupType }

// AggregateBy computes Stats per group. Groups with no closed trades are
// omitted.
func AggregateBy(trades []TradeRecord, key GroupKey) map[string]Stats {
	groups := make(map[string][]TradeRecord)
	for _, t := range trades {
		if t.Status != StatusClosed {
			continue
		}
		k := key(t)
		groups[k] = append(groups[k], t)
	}

	out := make(map[string]Stats, len(groups))
	for k, g := range groups {
		out[k] = Aggregate(g)
	}
	return out
}

// MistakeCount is how often a mistake tag appears on closed trades.
type MistakeCount struct {
	Tag    string
	Count  int
	TotalR float64
}

// Mistakes counts mistake tags over closed trades, most frequent first.
func Mistakes(trades []TradeRecord) []MistakeCount {
	byTag := make(map[string]*MistakeCount)
	for _, t := range trades {
		if t.Status != StatusClosed {
			continue
		}
		for _, tag := range t.Mistakes {
			mc, ok := byTag[tag]
			if !ok {
				mc = &MistakeCount{Tag: tag}
				byTag[tag] = mc
			}
			mc.Count++
			mc.TotalR += t.R()
		}
	}

	out := make([]MistakeCount, 0, len(byTag))
	for _, mc := range byTag {
		out = append(out, *mc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}
