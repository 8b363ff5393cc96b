package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block suitable for
// pasting into a journal. Structured facts go in the PROPERTIES drawer, the
// checklist becomes an Org checkbox list, and the narrative sections hold
// the notes.
func FormatTradeOrg(t TradeRecord) string {
	heading := fmt.Sprintf("** Trade: %s %s (%s)", t.Instrument, t.Direction, shortID(t.TradeID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.TradeID))
	b.WriteString(fmt.Sprintf(":CREATED: %s\n", t.CreatedAt.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf(":INSTRUMENT: %s\n", t.Instrument))
	b.WriteString(fmt.Sprintf(":STATUS: %s\n", t.Status))
	if t.SetupType != "" {
		b.WriteString(fmt.Sprintf(":SETUP: %s\n", t.SetupType))
	}
	b.WriteString(fmt.Sprintf(":SESSION: %s\n", t.Session))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %.5f\n", t.EntryPrice))
	b.WriteString(fmt.Sprintf(":STOP_PRICE: %.5f\n", t.StopPrice))
	if t.TargetPrice != nil {
		b.WriteString(fmt.Sprintf(":TARGET_PRICE: %.5f\n", *t.TargetPrice))
	}
	if t.ExitPrice != nil {
		b.WriteString(fmt.Sprintf(":EXIT_PRICE: %.5f\n", *t.ExitPrice))
	}
	b.WriteString(fmt.Sprintf(":QUANTITY: %.0f\n", t.Quantity))
	b.WriteString(fmt.Sprintf(":RISK: %.2f (%.2f%%)\n", t.RiskAmount, t.RiskPercent))
	b.WriteString(fmt.Sprintf(":PLANNED_RR: %.2f\n", t.PlannedRR))
	if t.ActualR != nil {
		b.WriteString(fmt.Sprintf(":ACTUAL_R: %.2f\n", *t.ActualR))
	}
	b.WriteString(fmt.Sprintf(":CHECKLIST_SCORE: %.0f\n", t.ChecklistScore))
	if t.ClosedAt != nil {
		b.WriteString(fmt.Sprintf(":CLOSED: %s\n", t.ClosedAt.UTC().Format(time.RFC3339)))
	}
	if t.ExitReason != "" {
		b.WriteString(fmt.Sprintf(":EXIT_REASON: %s\n", t.ExitReason))
	}
	if len(t.Mistakes) > 0 {
		b.WriteString(fmt.Sprintf(":MISTAKES: %s\n", strings.Join(t.Mistakes, " ")))
	}
	b.WriteString(":END:\n")

	if len(t.Checklist) > 0 {
		b.WriteString("\n*** Checklist\n")
		for _, it := range t.Checklist {
			box := " "
			if it.Checked {
				box = "X"
			}
			req := ""
			if it.Required {
				req = " *"
			}
			b.WriteString(fmt.Sprintf("- [%s] %s: %s%s\n", box, it.Category, it.Text, req))
		}
	}

	if len(t.PartialCloses) > 0 {
		b.WriteString("\n*** Partials\n")
		for _, pc := range t.PartialCloses {
			b.WriteString(fmt.Sprintf("- %s %.0f%% at %.5f %s\n",
				pc.At.UTC().Format(time.RFC3339), pc.Fraction*100, pc.Price, pc.Note))
		}
	}

	b.WriteString("\n*** Thesis\n- ")
	b.WriteString(t.Notes)
	b.WriteString("\n\n")
	b.WriteString("*** Execution\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []TradeRecord) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
