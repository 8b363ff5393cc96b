package journal

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []Status{StatusPending, StatusOpen, StatusClosed, StatusInvalidated}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	allowed := map[[2]Status]bool{
		{StatusPending, StatusOpen}:        true,
		{StatusPending, StatusInvalidated}: true,
		{StatusOpen, StatusClosed}:         true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			assert.Equal(t, allowed[[2]Status{from, to}], CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	assert.True(t, StatusClosed.Terminal())
	assert.True(t, StatusInvalidated.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusOpen.Terminal())
}

func TestCloseLongTrade(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tr := TradeRecord{TradeID: "T1", Direction: Long, EntryPrice: 1.0850, StopPrice: 1.0820, Status: StatusPending}

	require.NoError(t, tr.Open())
	assert.Equal(t, StatusOpen, tr.Status)
	assert.Nil(t, tr.ActualR)

	require.NoError(t, tr.Close(1.0920, "target", at))
	assert.Equal(t, StatusClosed, tr.Status)
	require.NotNil(t, tr.ActualR)
	assert.InDelta(t, 2.3333, *tr.ActualR, 1e-3)
	require.NotNil(t, tr.ExitPrice)
	assert.InDelta(t, 1.0920, *tr.ExitPrice, 1e-12)
	assert.Equal(t, "target", tr.ExitReason)
	require.NotNil(t, tr.ClosedAt)
	assert.True(t, tr.ClosedAt.Equal(at))
}

func TestCloseShortTradeAtStop(t *testing.T) {
	t.Parallel()

	tr := TradeRecord{TradeID: "T2", Direction: Short, EntryPrice: 1.2000, StopPrice: 1.2020, Status: StatusOpen}
	require.NoError(t, tr.Close(1.2020, "stopped", time.Now()))
	assert.InDelta(t, -1.0, tr.R(), 1e-9)
}

func TestCloseZeroRisk(t *testing.T) {
	t.Parallel()

	tr := TradeRecord{TradeID: "T3", Direction: Long, EntryPrice: 1.1, StopPrice: 1.1, Status: StatusOpen}
	require.NoError(t, tr.Close(1.2, "manual", time.Now()))
	require.NotNil(t, tr.ActualR)
	assert.Zero(t, *tr.ActualR)
}

func TestInvalidTransitionsLeaveRecordAlone(t *testing.T) {
	t.Parallel()

	pending := TradeRecord{TradeID: "P", Direction: Long, EntryPrice: 1, StopPrice: 0.9, Status: StatusPending}
	err := pending.Close(1.1, "x", time.Now())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusPending, pending.Status)
	assert.Nil(t, pending.ActualR)

	open := TradeRecord{TradeID: "O", Status: StatusOpen}
	assert.ErrorIs(t, open.Invalidate("late", time.Now()), ErrInvalidTransition)
	assert.ErrorIs(t, open.Open(), ErrInvalidTransition)

	closed := TradeRecord{TradeID: "C", Status: StatusClosed}
	assert.ErrorIs(t, closed.Open(), ErrInvalidTransition)
	assert.ErrorIs(t, closed.Close(1, "again", time.Now()), ErrInvalidTransition)

	inv := TradeRecord{TradeID: "I", Status: StatusInvalidated}
	assert.ErrorIs(t, inv.Open(), ErrInvalidTransition)
}

func TestAddPartial(t *testing.T) {
	t.Parallel()

	tr := TradeRecord{TradeID: "T", Status: StatusPending}
	assert.ErrorIs(t, tr.AddPartial(PartialClose{Price: 1, Fraction: 0.5}), ErrInvalidTransition)

	require.NoError(t, tr.Open())
	require.NoError(t, tr.AddPartial(PartialClose{Price: 1.09, Fraction: 0.5}))
	assert.Error(t, tr.AddPartial(PartialClose{Price: 1.09, Fraction: 1.5}))
	assert.Len(t, tr.PartialCloses, 1)
}

func TestProperty_NoPathBack(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	rank := map[Status]int{StatusPending: 0, StatusOpen: 1, StatusClosed: 2, StatusInvalidated: 2}

	properties.Property("random action sequences never revisit a status", prop.ForAll(
		func(actions []int) bool {
			tr := TradeRecord{TradeID: "X", Direction: Long, EntryPrice: 1.1, StopPrice: 1.0, Status: StatusPending}
			seen := map[Status]bool{StatusPending: true}
			for _, a := range actions {
				before := tr.Status
				var err error
				switch a {
				case 0:
					err = tr.Open()
				case 1:
					err = tr.Close(1.2, "x", time.Time{})
				default:
					err = tr.Invalidate("x", time.Time{})
				}
				if err != nil {
					if tr.Status != before {
						return false
					}
					continue
				}
				if seen[tr.Status] || rank[tr.Status] <= rank[before] {
					return false
				}
				seen[tr.Status] = true
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 2)),
	))

	properties.TestingRun(t)
}
