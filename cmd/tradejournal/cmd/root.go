package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/checklist"
	"github.com/rustyeddy/tradejournal/config"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/logging"
	"github.com/rustyeddy/tradejournal/source"
)

var rootCmd = &cobra.Command{
	Use:   "tradejournal",
	Short: "Risk, checklist and performance calculations for a trading journal",
	Long: `Tradejournal computes the numbers behind a trading journal.

It provides tools for:
  - Initial risk, reward:risk and position sizing from entry/stop/target
  - Weighted pre-trade checklist scores
  - Win rate, average win/loss and expectancy in R-multiples
  - Org-mode and CSV exports of logged trades`,
	SilenceUsage: true,
}

var (
	cfgFile  string
	logLevel string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
}

// env is what every data-reading command needs.
type env struct {
	cfg  *config.Config
	log  zerolog.Logger
	book *journal.Book
	lib  *checklist.Library
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgFile)
}

func loadEnv(ctx context.Context, cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	log := logging.New(logging.Config{Level: level, Console: true, Out: cmd.ErrOrStderr()})

	e := &env{
		cfg:  cfg,
		log:  log,
		book: journal.NewBook(journal.WithPolicy(cfg.Policy()), journal.WithLogger(log)),
		lib:  checklist.DefaultLibrary(),
	}

	if cfg.Checklist.TemplatesFile != "" {
		tpls, err := checklist.LoadTemplates(cfg.Checklist.TemplatesFile)
		if err != nil {
			return nil, err
		}
		for _, t := range tpls {
			e.lib.Add(t)
		}
	}

	src, err := source.Open(cfg.Source.Type, cfg.Source.Path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	if err := source.Populate(ctx, src, e.book, e.lib); err != nil {
		return nil, err
	}
	log.Debug().
		Str("source", cfg.Source.Type).
		Int("trades", e.book.Len()).
		Int("templates", len(e.lib.SetupTypes())).
		Msg("journal loaded")
	return e, nil
}
