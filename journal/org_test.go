package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/tradejournal/checklist"
)

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	closedAt := time.Date(2024, 3, 15, 14, 20, 30, 0, time.UTC)

	trade := TradeRecord{
		TradeID:        "01HS8Z6Q4Y3V9K2M7N5P",
		CreatedAt:      created,
		Instrument:     "EURUSD",
		Direction:      Long,
		SetupType:      "breakout",
		Status:         StatusClosed,
		Session:        SessionLondon,
		EntryPrice:     1.08500,
		StopPrice:      1.08200,
		TargetPrice:    ptr(1.09100),
		ExitPrice:      ptr(1.08750),
		Quantity:       100000,
		RiskAmount:     300,
		RiskPercent:    1,
		PlannedRR:      2,
		ActualR:        ptr(0.8333),
		ChecklistScore: 50,
		Checklist: []checklist.Item{
			{Category: "Context", Text: "Trend agrees", Checked: true, Required: true, Weight: 1},
			{Category: "Risk", Text: "Stop beyond range", Weight: 1},
		},
		Notes:      "range break after London open",
		ExitReason: "time stop",
		Mistakes:   []string{"early-exit"},
		ClosedAt:   &closedAt,
	}

	result := FormatTradeOrg(trade)

	assert.Contains(t, result, "** Trade: EURUSD long (01HS8Z6Q)")
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":TRADE_ID: 01HS8Z6Q4Y3V9K2M7N5P")
	assert.Contains(t, result, ":CREATED: 2024-03-15T10:30:45Z")
	assert.Contains(t, result, ":STATUS: closed")
	assert.Contains(t, result, ":SETUP: breakout")
	assert.Contains(t, result, ":ENTRY_PRICE: 1.08500")
	assert.Contains(t, result, ":TARGET_PRICE: 1.09100")
	assert.Contains(t, result, ":EXIT_PRICE: 1.08750")
	assert.Contains(t, result, ":QUANTITY: 100000")
	assert.Contains(t, result, ":RISK: 300.00 (1.00%)")
	assert.Contains(t, result, ":PLANNED_RR: 2.00")
	assert.Contains(t, result, ":ACTUAL_R: 0.83")
	assert.Contains(t, result, ":CHECKLIST_SCORE: 50")
	assert.Contains(t, result, ":CLOSED: 2024-03-15T14:20:30Z")
	assert.Contains(t, result, ":EXIT_REASON: time stop")
	assert.Contains(t, result, ":MISTAKES: early-exit")
	assert.Contains(t, result, ":END:")

	assert.Contains(t, result, "- [X] Context: Trend agrees *")
	assert.Contains(t, result, "- [ ] Risk: Stop beyond range\n")
	assert.Contains(t, result, "*** Thesis\n- range break after London open")
	assert.Contains(t, result, "*** Review")
}

func TestFormatTradeOrgPendingOmitsOutcome(t *testing.T) {
	t.Parallel()

	result := FormatTradeOrg(TradeRecord{TradeID: "T1", Instrument: "GBPUSD", Direction: Short, Status: StatusPending})

	assert.Contains(t, result, "** Trade: GBPUSD short (T1)")
	assert.NotContains(t, result, ":EXIT_PRICE:")
	assert.NotContains(t, result, ":ACTUAL_R:")
	assert.NotContains(t, result, "*** Checklist")
}

func TestFormatTradesOrg(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FormatTradesOrg(nil))

	out := FormatTradesOrg([]TradeRecord{
		{TradeID: "A", Instrument: "EURUSD"},
		{TradeID: "B", Instrument: "USDJPY"},
	})
	assert.Equal(t, 2, strings.Count(out, "** Trade:"))
	assert.Contains(t, out, ":END:\n\n*** Thesis")
}
