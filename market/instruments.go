// market/instruments.go
package market

import "strings"

type InstrumentMeta struct {
	Name          string
	BaseCurrency  string
	QuoteCurrency string
	PipLocation   int
}

var Instruments = map[string]InstrumentMeta{
	"EUR_USD": {Name: "EUR_USD", BaseCurrency: "EUR", QuoteCurrency: "USD", PipLocation: -4},
	"GBP_USD": {Name: "GBP_USD", BaseCurrency: "GBP", QuoteCurrency: "USD", PipLocation: -4},
	"AUD_USD": {Name: "AUD_USD", BaseCurrency: "AUD", QuoteCurrency: "USD", PipLocation: -4},
	"NZD_USD": {Name: "NZD_USD", BaseCurrency: "NZD", QuoteCurrency: "USD", PipLocation: -4},
	"USD_CAD": {Name: "USD_CAD", BaseCurrency: "USD", QuoteCurrency: "CAD", PipLocation: -4},
	"USD_CHF": {Name: "USD_CHF", BaseCurrency: "USD", QuoteCurrency: "CHF", PipLocation: -4},
	"EUR_GBP": {Name: "EUR_GBP", BaseCurrency: "EUR", QuoteCurrency: "GBP", PipLocation: -4},
	"USD_JPY": {Name: "USD_JPY", BaseCurrency: "USD", QuoteCurrency: "JPY", PipLocation: -2},
	"EUR_JPY": {Name: "EUR_JPY", BaseCurrency: "EUR", QuoteCurrency: "JPY", PipLocation: -2},
	"GBP_JPY": {Name: "GBP_JPY", BaseCurrency: "GBP", QuoteCurrency: "JPY", PipLocation: -2},
	"XAU_USD": {Name: "XAU_USD", BaseCurrency: "XAU", QuoteCurrency: "USD", PipLocation: -1},
}

// Normalize maps free-text symbols such as "eurusd", "EUR/USD" or
// "EUR_USD" to the canonical BASE_QUOTE form. Anything that is not a
// six-letter pair is returned upper-cased and trimmed.
func Normalize(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	s = strings.NewReplacer("/", "", "_", "", "-", "", " ", "").Replace(s)
	if len(s) != 6 {
		return strings.ToUpper(strings.TrimSpace(symbol))
	}
	return s[:3] + "_" + s[3:]
}

// Lookup returns the metadata for a free-text symbol.
func Lookup(symbol string) (InstrumentMeta, bool) {
	m, ok := Instruments[Normalize(symbol)]
	return m, ok
}

// PipLocation falls back to -4 for unknown symbols, the common FX case.
func PipLocation(symbol string) int {
	if m, ok := Lookup(symbol); ok {
		return m.PipLocation
	}
	return -4
}
