package source

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradejournal/checklist"
	"github.com/rustyeddy/tradejournal/journal"
)

// YAML serves content decoded from a single YAML document with top-level
// "trades" and "templates" lists.
type YAML struct {
	Content Content
}

type Content struct {
	Trades    []journal.TradeRecord `yaml:"trades"`
	Templates []checklist.Template  `yaml:"templates"`
}

func OpenYAML(path string) (*YAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return ParseYAML(data)
}

func ParseYAML(data []byte) (*YAML, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	for i, t := range c.Trades {
		if t.Status == "" {
			c.Trades[i].Status = journal.StatusPending
		}
	}
	return &YAML{Content: c}, nil
}

func (y *YAML) Trades(context.Context) ([]journal.TradeRecord, error) {
	return y.Content.Trades, nil
}

func (y *YAML) Templates(context.Context) ([]checklist.Template, error) {
	return y.Content.Templates, nil
}

func (y *YAML) Close() error { return nil }
