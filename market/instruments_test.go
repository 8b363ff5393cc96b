package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"EURUSD", "EUR_USD"},
		{"eur/usd", "EUR_USD"},
		{" EUR_USD ", "EUR_USD"},
		{"usd-jpy", "USD_JPY"},
		{"us30", "US30"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestLookupAndPipLocation(t *testing.T) {
	t.Parallel()

	m, ok := Lookup("usdjpy")
	assert.True(t, ok)
	assert.Equal(t, "JPY", m.QuoteCurrency)
	assert.Equal(t, -2, PipLocation("USDJPY"))
	assert.Equal(t, -4, PipLocation("EURUSD"))
	assert.Equal(t, -4, PipLocation("BTCUSDT"))

	_, ok = Lookup("nope")
	assert.False(t, ok)
}
