package journal

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"
)

var csvHeader = []string{
	"trade_id", "created_at", "instrument", "direction", "setup_type", "status",
	"entry_price", "stop_price", "target_price", "exit_price",
	"quantity", "risk_amount", "risk_percent", "planned_rr", "actual_r",
	"session", "red_news", "checklist_score", "mistakes", "exit_reason", "closed_at",
}

// WriteCSV writes trades as CSV with a header row. Absent values are empty
// cells; floats carry six decimals and times are RFC3339.
func WriteCSV(w io.Writer, trades []TradeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, t := range trades {
		closed := ""
		if t.ClosedAt != nil {
			closed = t.ClosedAt.UTC().Format(time.RFC3339)
		}
		row := []string{
			t.TradeID,
			t.CreatedAt.UTC().Format(time.RFC3339),
			t.Instrument,
			string(t.Direction),
			t.SetupType,
			string(t.Status),
			f(t.EntryPrice),
			f(t.StopPrice),
			optF(t.TargetPrice),
			optF(t.ExitPrice),
			f(t.Quantity),
			f(t.RiskAmount),
			f(t.RiskPercent),
			f(t.PlannedRR),
			optF(t.ActualR),
			string(t.Session),
			strconv.FormatBool(t.RedNews),
			f(t.ChecklistScore),
			strings.Join(t.Mistakes, ";"),
			t.ExitReason,
			closed,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

func optF(x *float64) string {
	if x == nil {
		return ""
	}
	return f(*x)
}
