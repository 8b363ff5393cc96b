package checklist

// DefaultLibrary returns the built-in templates.
func DefaultLibrary() *Library {
	return NewLibrary(
		Template{
			SetupType: "breakout",
			Name:      "Breakout",
			Items: []ItemDef{
				{Category: "Context", Text: "Higher timeframe trend agrees", Required: true, Weight: 1},
				{Category: "Context", Text: "No high-impact news inside the next hour", Required: true, Weight: 1},
				{Category: "Structure", Text: "Clean range with at least two touches", Required: true, Weight: 1},
				{Category: "Structure", Text: "Candle closed beyond the level", Weight: 1},
				{Category: "Momentum", Text: "Volume or ATR expansion on the break", Weight: 0.5},
				{Category: "Risk", Text: "Stop beyond the opposite side of the range", Required: true, Weight: 1},
				{Category: "Risk", Text: "Planned R:R at least 1.5", Weight: 0.5},
			},
		},
		Template{
			SetupType: "pullback",
			Name:      "Trend pullback",
			Items: []ItemDef{
				{Category: "Context", Text: "Trend defined on H4 and H1", Required: true, Weight: 1},
				{Category: "Structure", Text: "Pullback into prior structure or moving average", Required: true, Weight: 1},
				{Category: "Trigger", Text: "Rejection candle on the entry timeframe", Weight: 1},
				{Category: "Risk", Text: "Stop below the pullback swing", Required: true, Weight: 1},
				{Category: "Risk", Text: "Target at the previous swing extreme", Weight: 0.5},
			},
		},
		Template{
			SetupType: "reversal",
			Name:      "Reversal",
			Items: []ItemDef{
				{Category: "Context", Text: "Price at a higher timeframe level", Required: true, Weight: 1},
				{Category: "Momentum", Text: "Divergence on the momentum oscillator", Weight: 0.5},
				{Category: "Structure", Text: "Break of the last lower high or higher low", Required: true, Weight: 1},
				{Category: "Risk", Text: "Stop beyond the extreme", Required: true, Weight: 1},
				{Category: "Psychology", Text: "Not revenge trading a previous loss", Weight: 0.5},
			},
		},
		Template{
			SetupType: "range",
			Name:      "Range fade",
			Items: []ItemDef{
				{Category: "Context", Text: "ADX below 20", Weight: 1},
				{Category: "Structure", Text: "Entry at range boundary", Required: true, Weight: 1},
				{Category: "Risk", Text: "Target at range midpoint or opposite side", Weight: 0.5},
			},
		},
	)
}
