package market

import (
	"fmt"
	"math"
)

// trueRange calculates the True Range for a candle given the previous candle
func trueRange(current, previous Candle) float64 {
	highLow := current.High - current.Low
	highClose := math.Abs(current.High - previous.Close)
	lowClose := math.Abs(current.Low - previous.Close)

	return math.Max(highLow, math.Max(highClose, lowClose))
}

// ATRSeries returns Wilder's Average True Range after every candle once the
// first period true ranges are available. The result has
// len(candles)-period values.
func ATRSeries(candles []Candle, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("period must be positive, got %d", period)
	}
	if len(candles) < period+1 {
		return nil, fmt.Errorf("not enough candles: need %d, got %d", period+1, len(candles))
	}

	sum := 0.0
	for i := 1; i <= period; i++ {
		sum += trueRange(candles[i], candles[i-1])
	}
	atr := sum / float64(period)

	out := make([]float64, 0, len(candles)-period)
	out = append(out, atr)
	for i := period + 1; i < len(candles); i++ {
		atr = (atr*float64(period-1) + trueRange(candles[i], candles[i-1])) / float64(period)
		out = append(out, atr)
	}
	return out, nil
}

// ATRPercentile ranks the latest ATR against the whole series: the
// percentage of ATR values at or below it, in [0, 100].
func ATRPercentile(candles []Candle, period int) (latest, percentile float64, err error) {
	series, err := ATRSeries(candles, period)
	if err != nil {
		return 0, 0, err
	}
	latest = series[len(series)-1]
	n := 0
	for _, v := range series {
		if v <= latest {
			n++
		}
	}
	return latest, float64(n) / float64(len(series)) * 100, nil
}
