// Package source loads seed content for a journal: existing trades and
// checklist templates. Sources are read-only.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/rustyeddy/tradejournal/checklist"
	"github.com/rustyeddy/tradejournal/journal"
)

var ErrUnknownSource = errors.New("unknown source type")

type Source interface {
	Trades(ctx context.Context) ([]journal.TradeRecord, error)
	Templates(ctx context.Context) ([]checklist.Template, error)
	Close() error
}

// Open returns the source for kind ("yaml", "sqlite" or "none").
func Open(kind, path string) (Source, error) {
	switch kind {
	case "", "none":
		return Empty{}, nil
	case "yaml":
		return OpenYAML(path)
	case "sqlite":
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("%q: %w", kind, ErrUnknownSource)
}

// Empty has no trades and no templates.
type Empty struct{}

func (Empty) Trades(context.Context) ([]journal.TradeRecord, error) { return nil, nil }

func (Empty) Templates(context.Context) ([]checklist.Template, error) { return nil, nil }

func (Empty) Close() error { return nil }

// Populate loads every trade from src into b and registers every template
// in lib. Either target may be nil.
func Populate(ctx context.Context, src Source, b *journal.Book, lib *checklist.Library) error {
	if b != nil {
		trades, err := src.Trades(ctx)
		if err != nil {
			return fmt.Errorf("load trades: %w", err)
		}
		b.Load(trades...)
	}
	if lib != nil {
		tpls, err := src.Templates(ctx)
		if err != nil {
			return fmt.Errorf("load templates: %w", err)
		}
		for _, t := range tpls {
			lib.Add(t)
		}
	}
	return nil
}
