package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/tradejournal/checklist"
	"github.com/rustyeddy/tradejournal/pkg/id"
	"github.com/rustyeddy/tradejournal/risk"
)

// Book owns a single user's trade collection. Every mutation goes through
// it. A Book is not safe for concurrent use.
type Book struct {
	trades []TradeRecord
	index  map[string]int

	policy risk.Policy
	now    func() time.Time
	newID  func(time.Time) string
	log    zerolog.Logger
}

type Option func(*Book)

func WithPolicy(p risk.Policy) Option {
	return func(b *Book) { b.policy = p }
}

func WithClock(now func() time.Time) Option {
	return func(b *Book) { b.now = now }
}

func WithIDs(newID func(time.Time) string) Option {
	return func(b *Book) { b.newID = newID }
}

func WithLogger(l zerolog.Logger) Option {
	return func(b *Book) { b.log = l }
}

func NewBook(opts ...Option) *Book {
	b := &Book{
		index:  make(map[string]int),
		policy: risk.DefaultPolicy(),
		now:    time.Now,
		newID:  id.NewAt,
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Policy is the advisory risk policy submissions are checked against.
func (b *Book) Policy() risk.Policy {
	return b.policy
}

// NewForm returns an empty form sized to the book's account and warning
// at the policy's minimum R:R.
func (b *Book) NewForm() Form {
	f := NewForm(b.policy.AccountSize)
	f.MinRR = b.policy.MinRR
	return f
}

// Load appends existing records, e.g. from a content source. Records
// without a creation time are stamped now and records without an ID are
// given one; duplicate IDs replace the earlier record. Derived fields are
// recomputed from the prices and checklist.
func (b *Book) Load(records ...TradeRecord) {
	for _, r := range records {
		r = r.clone()
		if r.CreatedAt.IsZero() {
			r.CreatedAt = b.now()
		}
		if r.TradeID == "" {
			r.TradeID = b.newID(r.CreatedAt)
		}
		r.derive()
		if i, ok := b.index[r.TradeID]; ok {
			b.trades[i] = r
			continue
		}
		b.index[r.TradeID] = len(b.trades)
		b.trades = append(b.trades, r)
	}
	b.log.Debug().Int("count", len(records)).Msg("trades loaded")
}

// Submit turns a ready form into a pending trade, appends it and resets the
// form. The returned decision carries advisory warnings such as a low R:R;
// none of them prevent the trade from being logged. A form missing required
// fields is left untouched and ErrSubmissionDisabled is returned.
func (b *Book) Submit(f *Form) (TradeRecord, risk.Decision, error) {
	if !f.Ready() {
		return TradeRecord{}, risk.Decision{}, ErrSubmissionDisabled
	}

	if f.RiskAmount == nil && f.RiskPercent != nil {
		f.SetRiskPercent(*f.RiskPercent)
	}

	now := b.now()
	dir := f.Direction
	if dir == "" {
		dir = Long
	}
	session := f.Session
	if session == "" {
		session = SessionLondon
	}

	intent := f.intent()
	intent.Direction = risk.Direction(dir)
	decision := risk.Evaluate(b.policy, intent)

	rec := TradeRecord{
		TradeID:       b.newID(now),
		CreatedAt:     now,
		Instrument:    strings.TrimSpace(f.Instrument),
		Direction:     dir,
		SetupType:     f.SetupType,
		EntryPrice:    *f.EntryPrice,
		StopPrice:     *f.StopPrice,
		TargetPrice:   copyFloat(f.TargetPrice),
		Quantity:      risk.PositionSize(f.EntryPrice, f.StopPrice, f.RiskAmount),
		PlannedRR:     risk.PlannedRR(f.EntryPrice, f.StopPrice, f.TargetPrice),
		Status:        StatusPending,
		Session:       session,
		MacroEvents:   append([]string{}, f.MacroEvents...),
		RedNews:       f.RedNews,
		ATRPercentile: copyFloat(f.ATRPercentile),
		Checklist:     append([]checklist.Item{}, f.Checklist...),
		Notes:         f.Notes,
		BeforeImage:   f.BeforeImage,
	}
	if f.RiskAmount != nil {
		rec.RiskAmount = *f.RiskAmount
		rec.RiskPercent = risk.RiskPercentFromAmount(rec.RiskAmount, f.accountSize())
	}
	rec.ChecklistScore = checklist.Score(rec.Checklist)

	b.index[rec.TradeID] = len(b.trades)
	b.trades = append(b.trades, rec)
	f.Reset()

	ev := b.log.Info().
		Str("trade_id", rec.TradeID).
		Str("instrument", rec.Instrument).
		Float64("planned_rr", rec.PlannedRR).
		Float64("checklist_score", rec.ChecklistScore)
	if len(decision.Warnings) > 0 {
		codes := make([]string, 0, len(decision.Warnings))
		for _, w := range decision.Warnings {
			codes = append(codes, w.Code)
		}
		ev = ev.Strs("warnings", codes)
	}
	ev.Msg("trade submitted")

	return rec.clone(), decision, nil
}

// Get returns a copy of the trade with the given ID.
func (b *Book) Get(tradeID string) (TradeRecord, error) {
	i, ok := b.index[tradeID]
	if !ok {
		return TradeRecord{}, fmt.Errorf("trade %q: %w", tradeID, ErrTradeNotFound)
	}
	return b.trades[i].clone(), nil
}

// List returns copies of the trades in the order they were added.
func (b *Book) List() []TradeRecord {
	out := make([]TradeRecord, len(b.trades))
	for i, t := range b.trades {
		out[i] = t.clone()
	}
	return out
}

func (b *Book) Len() int {
	return len(b.trades)
}

func (b *Book) Open(tradeID string) (TradeRecord, error) {
	return b.mutate(tradeID, "opened", func(t *TradeRecord) error {
		return t.Open()
	})
}

func (b *Book) Close(tradeID string, exit float64, reason string) (TradeRecord, error) {
	return b.mutate(tradeID, "closed", func(t *TradeRecord) error {
		return t.Close(exit, reason, b.now())
	})
}

func (b *Book) Invalidate(tradeID, reason string) (TradeRecord, error) {
	return b.mutate(tradeID, "invalidated", func(t *TradeRecord) error {
		return t.Invalidate(reason, b.now())
	})
}

func (b *Book) RecordPartial(tradeID string, price, fraction float64, note string) (TradeRecord, error) {
	return b.mutate(tradeID, "partial close", func(t *TradeRecord) error {
		return t.AddPartial(PartialClose{Price: price, Fraction: fraction, At: b.now(), Note: note})
	})
}

// TagMistakes appends mistake tags for later review.
func (b *Book) TagMistakes(tradeID string, tags ...string) (TradeRecord, error) {
	return b.mutate(tradeID, "mistakes tagged", func(t *TradeRecord) error {
		t.Mistakes = append(t.Mistakes, tags...)
		return nil
	})
}

// Stats aggregates the closed trades currently in the book.
func (b *Book) Stats() Stats {
	return Aggregate(b.trades)
}

// mutate applies fn to a scratch copy so a failed transition leaves the
// stored record untouched.
func (b *Book) mutate(tradeID, what string, fn func(*TradeRecord) error) (TradeRecord, error) {
	i, ok := b.index[tradeID]
	if !ok {
		return TradeRecord{}, fmt.Errorf("trade %q: %w", tradeID, ErrTradeNotFound)
	}

	t := b.trades[i].clone()
	if err := fn(&t); err != nil {
		b.log.Warn().Err(err).Str("trade_id", tradeID).Msg("trade update rejected")
		return b.trades[i].clone(), err
	}
	b.trades[i] = t

	ev := b.log.Debug().Str("trade_id", tradeID).Str("status", string(t.Status))
	if t.ActualR != nil {
		ev = ev.Float64("actual_r", *t.ActualR)
	}
	ev.Msg("trade " + what)
	return t.clone(), nil
}
