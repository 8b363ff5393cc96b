package market

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// candlesWithRanges builds flat-close candles whose true range equals the
// given values.
func candlesWithRanges(ranges ...float64) []Candle {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	out := make([]Candle, len(ranges))
	for i, r := range ranges {
		out[i] = Candle{
			Time:  start.Add(time.Duration(i) * time.Hour),
			Open:  1.0,
			High:  1.0 + r/2,
			Low:   1.0 - r/2,
			Close: 1.0,
		}
	}
	return out
}

func TestTrueRangeUsesPreviousClose(t *testing.T) {
	t.Parallel()

	prev := Candle{Close: 1.1000}
	gapUp := Candle{High: 1.1050, Low: 1.1030, Close: 1.1040}
	assert.InDelta(t, 0.0050, trueRange(gapUp, prev), 1e-9)

	inside := Candle{High: 1.1010, Low: 1.0990}
	assert.InDelta(t, 0.0020, trueRange(inside, prev), 1e-9)
}

func TestATRSeries(t *testing.T) {
	t.Parallel()

	series, err := ATRSeries(candlesWithRanges(0, 0.002, 0.004, 0.006), 2)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.InDelta(t, 0.003, series[0], 1e-9)
	assert.InDelta(t, 0.0045, series[1], 1e-9)

	_, err = ATRSeries(candlesWithRanges(0, 0.002), 2)
	assert.Error(t, err)
	_, err = ATRSeries(candlesWithRanges(0, 0.002), 0)
	assert.Error(t, err)
}

func TestATRPercentile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ranges []float64
		atr    float64
		pct    float64
	}{
		{"expanding", []float64{0, 0.002, 0.004, 0.006}, 0.0045, 100},
		{"contracting", []float64{0, 0.006, 0.004, 0.002}, 0.0035, 50},
		{"flat", []float64{0, 0.002, 0.002, 0.002, 0.002}, 0.002, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atr, pct, err := ATRPercentile(candlesWithRanges(tt.ranges...), 2)
			require.NoError(t, err)
			assert.InDelta(t, tt.atr, atr, 1e-9)
			assert.InDelta(t, tt.pct, pct, 1e-9)
		})
	}
}

func TestReadCandlesCSV(t *testing.T) {
	t.Parallel()

	in := `time,open,high,low,close
2024-05-01T00:00:00Z,1.0850,1.0870,1.0840,1.0860
2024-05-01 01:00,1.0860,1.0880,1.0850,1.0875
`
	cs, err := ReadCandlesCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, 1.0870, cs[0].High)
	assert.Equal(t, 1, cs[1].Time.Hour())

	_, err = ReadCandlesCSV(strings.NewReader("2024-05-01T00:00:00Z,1,2,x,1\n2024-05-01T00:00:00Z,1,x,1,1\n"))
	assert.Error(t, err)

	_, err = ReadCandlesCSV(strings.NewReader("2024-05-01T00:00:00Z,1,2\n"))
	assert.Error(t, err)
}
