// Package checklist holds pre-trade checklists and their compliance score.
package checklist

// Item is one weighted entry of a trade's checklist.
type Item struct {
	Category string  `json:"category" yaml:"category"`
	Text     string  `json:"text" yaml:"text"`
	Checked  bool    `json:"checked" yaml:"checked"`
	Required bool    `json:"required" yaml:"required"`
	Weight   float64 `json:"weight" yaml:"weight"`
}

// Score returns the weighted share of checked items as a percentage in
// [0, 100]. An empty list, or one without positive weight, scores 0.
func Score(items []Item) float64 {
	var total, checked float64
	for _, it := range items {
		if it.Weight <= 0 {
			continue
		}
		total += it.Weight
		if it.Checked {
			checked += it.Weight
		}
	}
	if total == 0 {
		return 0
	}
	return checked / total * 100
}

// MissingRequired lists the required items that are still unchecked. The
// result is for display; it does not affect Score or submission.
func MissingRequired(items []Item) []Item {
	var out []Item
	for _, it := range items {
		if it.Required && !it.Checked {
			out = append(out, it)
		}
	}
	return out
}

// Check marks the item at index i. Out of range indexes are ignored.
func Check(items []Item, i int, checked bool) {
	if i < 0 || i >= len(items) {
		return
	}
	items[i].Checked = checked
}
