package stockfolio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config holds the application settings. LoadConfig applies environment
// variable overrides after reading the file, so scripts can redirect the
// snapshot without editing config.
type Config struct {
	// Snapshot is the path of the portfolio snapshot file.
	Snapshot string `yaml:"snapshot"`

	// StartingCash seeds the ledger on first run, when no snapshot exists.
	StartingCash decimal.Decimal `yaml:"starting_cash"`

	// Watchlist is the default ticker list for the score command.
	Watchlist []string `yaml:"watchlist"`

	// RiskFreeRate is the annual risk free rate used by Sharpe and Sortino.
	RiskFreeRate float64 `yaml:"risk_free_rate"`

	// HistoryDays is the default window of the price command.
	HistoryDays int `yaml:"history_days"`
}

// DefaultConfig returns the settings used when no config file exists:
// a snapshot under the user home, 10000 starting cash, a 30 day history
// window.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		Snapshot:     filepath.Join(home, ".stockfolio", "portfolio.json"),
		StartingCash: decimal.NewFromInt(10000),
		RiskFreeRate: DefaultRiskFreeRate,
		HistoryDays:  30,
	}
}

// LoadConfig reads the yaml config at path and fills in defaults for
// anything unset. A missing file is not an error, it yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		overrideWithEnv(&cfg)
		return cfg, cfg.Validate()
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Snapshot == "" {
		cfg.Snapshot = DefaultConfig().Snapshot
	}
	if cfg.HistoryDays == 0 {
		cfg.HistoryDays = DefaultConfig().HistoryDays
	}

	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}

// overrideWithEnv applies STK_SNAPSHOT and STK_STARTING_CASH when set.
func overrideWithEnv(cfg *Config) {
	if v := os.Getenv("STK_SNAPSHOT"); v != "" {
		cfg.Snapshot = v
	}
	if v := os.Getenv("STK_STARTING_CASH"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			cfg.StartingCash = d
		}
	}
	if v := os.Getenv("STK_RISK_FREE_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RiskFreeRate = f
		}
	}
}

// Validate rejects settings the rest of the program cannot work with.
func (c Config) Validate() error {
	if c.Snapshot == "" {
		return fmt.Errorf("snapshot path is empty")
	}
	if c.StartingCash.IsNegative() {
		return fmt.Errorf("starting_cash must not be negative, got %s", c.StartingCash)
	}
	if c.HistoryDays <= 0 {
		return fmt.Errorf("history_days must be positive, got %d", c.HistoryDays)
	}
	return nil
}

// Cash returns the starting cash as Money in the reporting currency.
func (c Config) Cash() Money {
	return Money{value: c.StartingCash, cur: DefaultCurrency}
}
