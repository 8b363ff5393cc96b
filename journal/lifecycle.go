package journal

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradejournal/risk"
)

// transitions is the complete status graph. closed and invalidated are
// terminal.
var transitions = map[Status][]Status{
	StatusPending: {StatusOpen, StatusInvalidated},
	StatusOpen:    {StatusClosed},
}

// CanTransition reports whether a trade may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

func (t *TradeRecord) transition(to Status) error {
	if !CanTransition(t.Status, to) {
		return fmt.Errorf("trade %s: %s -> %s: %w", t.TradeID, t.Status, to, ErrInvalidTransition)
	}
	t.Status = to
	return nil
}

// Open marks a pending trade as entered.
func (t *TradeRecord) Open() error {
	return t.transition(StatusOpen)
}

// Close exits an open trade at exit and records its R-multiple. A trade
// whose stop sits on its entry closes with 0R.
func (t *TradeRecord) Close(exit float64, reason string, at time.Time) error {
	if err := t.transition(StatusClosed); err != nil {
		return err
	}

	r := ActualR(t.Direction, t.EntryPrice, t.StopPrice, exit)
	t.ExitPrice = &exit
	t.ExitReason = reason
	t.ActualR = &r
	t.ClosedAt = &at
	return nil
}

// Invalidate abandons a pending trade before entry.
func (t *TradeRecord) Invalidate(reason string, at time.Time) error {
	if err := t.transition(StatusInvalidated); err != nil {
		return err
	}
	t.ExitReason = reason
	t.ClosedAt = &at
	return nil
}

// AddPartial records a partial close on an open trade.
func (t *TradeRecord) AddPartial(pc PartialClose) error {
	if t.Status != StatusOpen {
		return fmt.Errorf("trade %s: partial close while %s: %w", t.TradeID, t.Status, ErrInvalidTransition)
	}
	if pc.Fraction <= 0 || pc.Fraction > 1 {
		return fmt.Errorf("trade %s: partial close fraction %.2f out of range (0, 1]", t.TradeID, pc.Fraction)
	}
	t.PartialCloses = append(t.PartialCloses, pc)
	return nil
}

// ActualR is the realized move from entry to exit in units of initial risk.
func ActualR(dir Direction, entry, stop, exit float64) float64 {
	initial := risk.InitialRiskOf(entry, stop)
	if initial == 0 {
		return 0
	}
	ret := exit - entry
	if dir == Short {
		ret = entry - exit
	}
	return ret / initial
}
