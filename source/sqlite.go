package source

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradejournal/checklist"
	"github.com/rustyeddy/tradejournal/journal"
)

// SQLite reads content from an existing database laid out as Schema. The
// database is opened read-only.
type SQLite struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	dsn, err := readOnlyDSN(path)
	if err != nil {
		return nil, fmt.Errorf("open content db: %w", err)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open content db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open content db: %w", err)
	}
	return &SQLite{db: db}, nil
}

// readOnlyDSN builds a file: URI for path so characters such as '?' and
// '#' stay part of the file name.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(abs),
		RawQuery: "mode=ro",
	}
	return u.String(), nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// Trades returns every trade ordered by creation time, checklist included.
func (s *SQLite) Trades(ctx context.Context) ([]journal.TradeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT trade_id, created_at, instrument, direction, setup_type, status,
			entry_price, stop_price, target_price, exit_price,
			quantity, risk_amount, risk_percent, planned_rr, actual_r,
			session, macro_events, red_news, atr_percentile, checklist_score,
			notes, exit_reason, mistakes, closed_at
		FROM trades
		ORDER BY created_at ASC, trade_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []journal.TradeRecord
	for rows.Next() {
		var (
			rec                   journal.TradeRecord
			target, exit, actualR sql.NullFloat64
			atr                   sql.NullFloat64
			closedAt              sql.NullTime
			macro, mistakes       string
			direction, status     string
			session               string
		)
		if err := rows.Scan(
			&rec.TradeID,
			&rec.CreatedAt,
			&rec.Instrument,
			&direction,
			&rec.SetupType,
			&status,
			&rec.EntryPrice,
			&rec.StopPrice,
			&target,
			&exit,
			&rec.Quantity,
			&rec.RiskAmount,
			&rec.RiskPercent,
			&rec.PlannedRR,
			&actualR,
			&session,
			&macro,
			&rec.RedNews,
			&atr,
			&rec.ChecklistScore,
			&rec.Notes,
			&rec.ExitReason,
			&mistakes,
			&closedAt,
		); err != nil {
			return nil, err
		}

		rec.Direction = journal.Direction(direction)
		rec.Status = journal.Status(status)
		rec.Session = journal.Session(session)
		rec.TargetPrice = nullFloat(target)
		rec.ExitPrice = nullFloat(exit)
		rec.ActualR = nullFloat(actualR)
		rec.ATRPercentile = nullFloat(atr)
		rec.MacroEvents = splitList(macro)
		rec.Mistakes = splitList(mistakes)
		if closedAt.Valid {
			t := closedAt.Time
			rec.ClosedAt = &t
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := s.tradeChecklists(ctx)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Checklist = items[out[i].TradeID]
	}
	return out, nil
}

func (s *SQLite) tradeChecklists(ctx context.Context) (map[string][]checklist.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT trade_id, category, text, checked, required, weight
		FROM trade_checklist
		ORDER BY trade_id, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]checklist.Item)
	for rows.Next() {
		var (
			tradeID string
			it      checklist.Item
		)
		if err := rows.Scan(&tradeID, &it.Category, &it.Text, &it.Checked, &it.Required, &it.Weight); err != nil {
			return nil, err
		}
		out[tradeID] = append(out[tradeID], it)
	}
	return out, rows.Err()
}

// Templates returns every checklist template with its items in order.
func (s *SQLite) Templates(ctx context.Context) ([]checklist.Template, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.setup_type, t.name, i.category, i.text, i.required, i.weight
		FROM checklist_templates t
		LEFT JOIN checklist_template_items i ON i.setup_type = t.setup_type
		ORDER BY t.setup_type, i.position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []checklist.Template
	for rows.Next() {
		var (
			setup, name    string
			category, text sql.NullString
			required       sql.NullBool
			weight         sql.NullFloat64
		)
		if err := rows.Scan(&setup, &name, &category, &text, &required, &weight); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].SetupType != setup {
			out = append(out, checklist.Template{SetupType: setup, Name: name})
		}
		if !text.Valid {
			continue
		}
		last := &out[len(out)-1]
		last.Items = append(last.Items, checklist.ItemDef{
			Category: category.String,
			Text:     text.String,
			Required: required.Bool,
			Weight:   weight.Float64,
		})
	}
	return out, rows.Err()
}

func nullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// splitList decodes the comma separated tag columns.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
