package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedTrade(r, score float64) TradeRecord {
	return TradeRecord{Status: StatusClosed, ActualR: &r, ChecklistScore: score}
}

func TestAggregateEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Stats{}, Aggregate(nil))
	assert.Equal(t, Stats{}, Aggregate([]TradeRecord{
		{Status: StatusPending},
		{Status: StatusOpen},
		{Status: StatusInvalidated},
	}))
}

func TestAggregateWinAndLoss(t *testing.T) {
	t.Parallel()

	trades := []TradeRecord{
		closedTrade(2.33, 80),
		closedTrade(-1.0, 60),
		{Status: StatusOpen, ChecklistScore: 10},
	}

	s := Aggregate(trades)
	assert.Equal(t, 2, s.TotalTrades)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.InDelta(t, 1.33, s.TotalR, 1e-9)
	assert.InDelta(t, 50.0, s.WinRate, 1e-9)
	assert.InDelta(t, 2.33, s.AvgWin, 1e-9)
	assert.InDelta(t, 1.0, s.AvgLoss, 1e-9)
	assert.InDelta(t, 0.665, s.Expectancy, 1e-9)
	assert.InDelta(t, 70.0, s.AvgDisciplineScore, 1e-9)
}

func TestAggregateScratchTradeCountsAgainstWinRate(t *testing.T) {
	t.Parallel()

	s := Aggregate([]TradeRecord{closedTrade(0, 100), closedTrade(1, 50)})
	assert.Equal(t, 2, s.TotalTrades)
	assert.InDelta(t, 50.0, s.WinRate, 1e-9)
	assert.Zero(t, s.AvgLoss)
	assert.InDelta(t, 0.5, s.Expectancy, 1e-9)
}

func TestAggregateBy(t *testing.T) {
	t.Parallel()

	a := closedTrade(2, 100)
	a.Session = SessionLondon
	b := closedTrade(-1, 50)
	b.Session = SessionNY
	c := closedTrade(1, 50)
	c.Session = SessionLondon
	d := TradeRecord{Status: StatusPending, Session: SessionAsia}

	got := AggregateBy([]TradeRecord{a, b, c, d}, BySession)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got["London"].TotalTrades)
	assert.InDelta(t, 100.0, got["London"].WinRate, 1e-9)
	assert.InDelta(t, 0.0, got["NY"].WinRate, 1e-9)
	_, ok := got["Asia"]
	assert.False(t, ok)
}

func TestMistakes(t *testing.T) {
	t.Parallel()

	a := closedTrade(-1, 0)
	a.Mistakes = []string{"fomo", "moved-stop"}
	b := closedTrade(-0.5, 0)
	b.Mistakes = []string{"fomo"}
	c := TradeRecord{Status: StatusOpen, Mistakes: []string{"fomo"}}

	got := Mistakes([]TradeRecord{a, b, c})
	require.Len(t, got, 2)
	assert.Equal(t, "fomo", got[0].Tag)
	assert.Equal(t, 2, got[0].Count)
	assert.InDelta(t, -1.5, got[0].TotalR, 1e-9)
	assert.Equal(t, "moved-stop", got[1].Tag)
}
