package stockfolio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.StartingCash.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("starting cash = %s, want 10000", cfg.StartingCash)
		}
		if cfg.HistoryDays != 30 {
			t.Errorf("history days = %d, want 30", cfg.HistoryDays)
		}
		if cfg.Snapshot == "" {
			t.Error("snapshot path is empty")
		}
	})

	t.Run("file values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		doc := `
snapshot: /tmp/folio.json
starting_cash: 2500.50
watchlist: [AAPL, MSFT]
risk_free_rate: 0.0002
history_days: 90
`
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Snapshot != "/tmp/folio.json" {
			t.Errorf("snapshot = %q", cfg.Snapshot)
		}
		if !cfg.StartingCash.Equal(decimal.RequireFromString("2500.50")) {
			t.Errorf("starting cash = %s", cfg.StartingCash)
		}
		if len(cfg.Watchlist) != 2 || cfg.Watchlist[0] != "AAPL" {
			t.Errorf("watchlist = %v", cfg.Watchlist)
		}
		if cfg.RiskFreeRate != 0.0002 {
			t.Errorf("risk free rate = %v", cfg.RiskFreeRate)
		}
		if cfg.HistoryDays != 90 {
			t.Errorf("history days = %d", cfg.HistoryDays)
		}
		if !cfg.Cash().Equal(M(2500.50, DefaultCurrency)) {
			t.Errorf("cash = %s", cfg.Cash())
		}
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("snapshot: /tmp/a.json\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("STK_SNAPSHOT", "/tmp/b.json")
		t.Setenv("STK_STARTING_CASH", "777")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Snapshot != "/tmp/b.json" {
			t.Errorf("snapshot = %q, want the env override", cfg.Snapshot)
		}
		if !cfg.StartingCash.Equal(decimal.NewFromInt(777)) {
			t.Errorf("starting cash = %s, want 777", cfg.StartingCash)
		}
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("starting_cash: -5\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("negative starting cash accepted")
		}
	})

	t.Run("unparsable yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(":\n\t:"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("broken yaml accepted")
		}
	})
}
