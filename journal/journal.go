// journal/journal.go
package journal

import (
	"slices"
	"time"

	"github.com/rustyeddy/tradejournal/checklist"
	"github.com/rustyeddy/tradejournal/risk"
)

type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusOpen        Status = "open"
	StatusClosed      Status = "closed"
	StatusInvalidated Status = "invalidated"
)

type Session string

const (
	SessionAsia   Session = "Asia"
	SessionLondon Session = "London"
	SessionNY     Session = "NY"
)

// PartialClose records part of an open position taken off early.
type PartialClose struct {
	Price    float64   `json:"price" yaml:"price"`
	Fraction float64   `json:"fraction" yaml:"fraction"` // share of the position, 0..1
	At       time.Time `json:"at" yaml:"at"`
	Note     string    `json:"note,omitempty" yaml:"note,omitempty"`
}

// TradeRecord is one logged trade. Optional prices are nil when absent.
type TradeRecord struct {
	TradeID    string    `json:"trade_id" yaml:"trade_id"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	Instrument string    `json:"instrument" yaml:"instrument"`
	Direction  Direction `json:"direction" yaml:"direction"`
	SetupType  string    `json:"setup_type,omitempty" yaml:"setup_type,omitempty"`

	EntryPrice  float64  `json:"entry_price" yaml:"entry_price"`
	StopPrice   float64  `json:"stop_price" yaml:"stop_price"`
	TargetPrice *float64 `json:"target_price,omitempty" yaml:"target_price,omitempty"`
	ExitPrice   *float64 `json:"exit_price,omitempty" yaml:"exit_price,omitempty"`

	Quantity    float64 `json:"quantity" yaml:"quantity"`
	RiskAmount  float64 `json:"risk_amount" yaml:"risk_amount"`
	RiskPercent float64 `json:"risk_percent" yaml:"risk_percent"`

	PlannedRR float64  `json:"planned_rr" yaml:"planned_rr"`
	ActualR   *float64 `json:"actual_r,omitempty" yaml:"actual_r,omitempty"`
	Status    Status   `json:"status" yaml:"status"`

	Session       Session  `json:"session" yaml:"session"`
	MacroEvents   []string `json:"macro_events,omitempty" yaml:"macro_events,omitempty"`
	RedNews       bool     `json:"red_news" yaml:"red_news"`
	ATRPercentile *float64 `json:"atr_percentile,omitempty" yaml:"atr_percentile,omitempty"`

	ChecklistScore float64          `json:"checklist_score" yaml:"checklist_score"`
	Checklist      []checklist.Item `json:"checklist,omitempty" yaml:"checklist,omitempty"`

	Notes         string         `json:"notes,omitempty" yaml:"notes,omitempty"`
	ExitReason    string         `json:"exit_reason,omitempty" yaml:"exit_reason,omitempty"`
	Mistakes      []string       `json:"mistakes,omitempty" yaml:"mistakes,omitempty"`
	PartialCloses []PartialClose `json:"partial_closes,omitempty" yaml:"partial_closes,omitempty"`

	BeforeImage string     `json:"before_image,omitempty" yaml:"before_image,omitempty"`
	AfterImage  string     `json:"after_image,omitempty" yaml:"after_image,omitempty"`
	ClosedAt    *time.Time `json:"closed_at,omitempty" yaml:"closed_at,omitempty"`
}

// R returns the realized R-multiple, or 0 while the trade is not closed.
func (t TradeRecord) R() float64 {
	if t.ActualR == nil {
		return 0
	}
	return *t.ActualR
}

// clone returns a deep copy; the Book never shares storage with callers.
func (t TradeRecord) clone() TradeRecord {
	c := t
	c.TargetPrice = copyFloat(t.TargetPrice)
	c.ExitPrice = copyFloat(t.ExitPrice)
	c.ActualR = copyFloat(t.ActualR)
	c.ATRPercentile = copyFloat(t.ATRPercentile)
	if t.ClosedAt != nil {
		at := *t.ClosedAt
		c.ClosedAt = &at
	}
	c.MacroEvents = slices.Clone(t.MacroEvents)
	c.Checklist = slices.Clone(t.Checklist)
	c.Mistakes = slices.Clone(t.Mistakes)
	c.PartialCloses = slices.Clone(t.PartialCloses)
	return c
}

// derive fills the computed fields of a record that came from outside the
// book. Values the source already carries for actual R are kept.
func (t *TradeRecord) derive() {
	if t.TargetPrice != nil {
		t.PlannedRR = risk.PlannedRROf(t.EntryPrice, t.StopPrice, *t.TargetPrice)
	}
	if t.RiskAmount > 0 {
		t.Quantity = risk.PositionSizeOf(t.EntryPrice, t.StopPrice, t.RiskAmount)
	}
	if len(t.Checklist) > 0 {
		t.ChecklistScore = checklist.Score(t.Checklist)
	}
	if t.Status == StatusClosed && t.ExitPrice != nil && t.ActualR == nil {
		r := ActualR(t.Direction, t.EntryPrice, t.StopPrice, *t.ExitPrice)
		t.ActualR = &r
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
