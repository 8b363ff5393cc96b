package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contentYAML = `
trades:
  - trade_id: T1
    created_at: 2024-05-01T08:00:00Z
    instrument: EURUSD
    direction: long
    setup_type: breakout
    status: closed
    session: London
    entry_price: 1.0850
    stop_price: 1.0820
    exit_price: 1.0920
    actual_r: 2.33
    checklist_score: 80
  - trade_id: T2
    created_at: 2024-05-02T08:00:00Z
    instrument: GBPUSD
    direction: short
    setup_type: pullback
    status: closed
    session: NY
    entry_price: 1.2500
    stop_price: 1.2530
    exit_price: 1.2530
    actual_r: -1.0
    checklist_score: 60
    mistakes: [fomo]
`

func writeFixture(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	content := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(content, []byte(contentYAML), 0o644))

	cfg := filepath.Join(dir, "journal.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("source:\n  type: yaml\n  path: "+content+"\nlog:\n  level: error\n"), 0o644))
	return cfg
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRiskCommand(t *testing.T) {
	out, err := run(t, "risk", "--config", "", "--entry", "1.0850", "--stop", "1.0820", "--target", "1.0910", "--risk-percent", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Instrument:     EUR_USD (long)")
	assert.Contains(t, out, "Initial risk:   0.00300 (30.0 pips)")
	assert.Contains(t, out, "Planned R:R:    2.00")
	assert.Contains(t, out, "Risk:           300.00 USD (1.00% of 30000)")
	assert.Contains(t, out, "Position size:  100000 units")
	assert.NotContains(t, out, "RR_TOO_LOW")
}

func TestStatsCommand(t *testing.T) {
	cfg := writeFixture(t)

	out, err := run(t, "stats", "--config", cfg, "--mistakes")
	require.NoError(t, err)

	assert.Contains(t, out, "Closed trades:   2 (1 W / 1 L)")
	assert.Contains(t, out, "Win rate:        50.0%")
	assert.Contains(t, out, "Expectancy:      +0.665R")
	assert.Contains(t, out, "Discipline:      70%")
	assert.Contains(t, out, "fomo")
}

func TestShowAndExportCommands(t *testing.T) {
	cfg := writeFixture(t)

	out, err := run(t, "show", "--config", cfg, "T2")
	require.NoError(t, err)
	assert.Contains(t, out, "** Trade: GBPUSD short (T2)")
	assert.Contains(t, out, ":ACTUAL_R: -1.00")

	_, err = run(t, "show", "--config", cfg, "missing")
	assert.Error(t, err)

	csvPath := filepath.Join(t.TempDir(), "trades.csv")
	_, err = run(t, "export", "--config", cfg, "--format", "csv", "--output", csvPath)
	require.NoError(t, err)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "trade_id,created_at,instrument")
	assert.Contains(t, string(data), "T1,")
}

func TestChecklistCommand(t *testing.T) {
	out, err := run(t, "checklist", "--config", "")
	require.NoError(t, err)
	assert.Contains(t, out, "breakout")
	assert.Contains(t, out, "reversal")
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.yaml")

	out, err := run(t, "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created default configuration")

	out, err = run(t, "config", "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid")
	assert.Contains(t, out, "30000.00 USD")
}

func TestATRCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candles.csv")
	data := "time,open,high,low,close\n" +
		"2024-05-01T00:00:00Z,1,1,1,1\n" +
		"2024-05-01T01:00:00Z,1,1.001,0.999,1\n" +
		"2024-05-01T02:00:00Z,1,1.002,0.998,1\n" +
		"2024-05-01T03:00:00Z,1,1.003,0.997,1\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := run(t, "atr", path, "--period", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Candles:        4")
	assert.Contains(t, out, "ATR(2):        0.00450")
	assert.Contains(t, out, "ATR percentile: 100")
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	cfg := writeFixture(t)
	path := filepath.Join(t.TempDir(), "trades.xlsx")

	_, err := run(t, "export", "--config", cfg, "--format", "xlsx", "--output", path)
	require.Error(t, err)
	assert.NoFileExists(t, path)

	_, err = run(t, "export", "--config", cfg, "--format", "csv", "--output", filepath.Join(t.TempDir(), "t.csv"))
	require.NoError(t, err)
}
