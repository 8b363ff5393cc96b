package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradejournal/risk"
)

// Config represents the complete journal configuration
type Config struct {
	Account   AccountConfig   `json:"account" yaml:"account"`
	Risk      RiskConfig      `json:"risk" yaml:"risk"`
	Checklist ChecklistConfig `json:"checklist" yaml:"checklist"`
	Source    SourceConfig    `json:"source" yaml:"source"`
	Log       LogConfig       `json:"log" yaml:"log"`
}

// AccountConfig is the reference account risk is expressed against
type AccountConfig struct {
	Currency string  `json:"currency" yaml:"currency"`
	Size     float64 `json:"size" yaml:"size"`
}

// RiskConfig holds the advisory thresholds
type RiskConfig struct {
	DefaultPercent float64 `json:"default_percent" yaml:"default_percent"`
	MaxPercent     float64 `json:"max_percent" yaml:"max_percent"`
	MinRR          float64 `json:"min_rr" yaml:"min_rr"`
}

// ChecklistConfig points at extra template definitions
type ChecklistConfig struct {
	TemplatesFile string `json:"templates_file,omitempty" yaml:"templates_file,omitempty"`
}

// SourceConfig selects where seed trades and templates come from
type SourceConfig struct {
	Type string `json:"type" yaml:"type"` // "none", "yaml" or "sqlite"
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Size <= 0 {
		return fmt.Errorf("account.size must be positive")
	}
	if c.Risk.DefaultPercent <= 0 || c.Risk.DefaultPercent > 100 {
		return fmt.Errorf("risk.default_percent must be between 0 and 100")
	}
	if c.Risk.MaxPercent < c.Risk.DefaultPercent || c.Risk.MaxPercent > 100 {
		return fmt.Errorf("risk.max_percent must be between default_percent and 100")
	}
	if c.Risk.MinRR < 0 {
		return fmt.Errorf("risk.min_rr must not be negative")
	}
	switch c.Source.Type {
	case "", "none":
	case "yaml", "sqlite":
		if c.Source.Path == "" {
			return fmt.Errorf("source.path required for %s source", c.Source.Type)
		}
	default:
		return fmt.Errorf("source.type must be 'none', 'yaml' or 'sqlite'")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}
	return nil
}

// Policy converts the risk settings for the risk package.
func (c *Config) Policy() risk.Policy {
	return risk.Policy{
		AccountSize:        c.Account.Size,
		DefaultRiskPercent: c.Risk.DefaultPercent,
		MaxRiskPercent:     c.Risk.MaxPercent,
		MinRR:              c.Risk.MinRR,
	}
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	p := risk.DefaultPolicy()
	return &Config{
		Account: AccountConfig{
			Currency: "USD",
			Size:     p.AccountSize,
		},
		Risk: RiskConfig{
			DefaultPercent: p.DefaultRiskPercent,
			MaxPercent:     p.MaxRiskPercent,
			MinRR:          p.MinRR,
		},
		Source: SourceConfig{
			Type: "none",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
