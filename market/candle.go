package market

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Candle represents OHLC (Open, High, Low, Close) candlestick data
type Candle struct {
	Time  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// ReadCandlesCSV reads "time,open,high,low,close" rows. A header row is
// skipped when its open column is not numeric. Time may be RFC3339 or
// "2006-01-02 15:04".
func ReadCandlesCSV(r io.Reader) ([]Candle, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []Candle
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if len(rec) < 5 {
			return nil, fmt.Errorf("line %d: want 5 fields, got %d", line, len(rec))
		}

		var vals [4]float64
		bad := false
		for i := range vals {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[i+1]), 64)
			if err != nil {
				bad = true
				break
			}
			vals[i] = v
		}
		if bad {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("line %d: bad price", line)
		}

		ts, err := parseTime(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, Candle{Time: ts, Open: vals[0], High: vals[1], Low: vals[2], Close: vals[3]})
	}
	return out, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04", s)
}
