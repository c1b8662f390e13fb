// Package cmd implements the CLI application to manage a stock portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mbellan/stockfolio"
)

// Commands is the list of all subcommands. A main package registers each
// of them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&buyCmd{},
	&sellCmd{},
	&orderCmd{},
	&ordersCmd{},
	&cancelCmd{},
	&evaluateCmd{},
	&summaryCmd{},
	&gainsCmd{},
	&scoreCmd{},
	&priceCmd{},
	&txCmd{},
	&alertCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", defaultConfigPath(), "Path to the yaml configuration file")

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return home + "/.stockfolio/config.yaml"
}

// loadConfig reads the application config, falling back to defaults when
// the file does not exist.
func loadConfig() (stockfolio.Config, error) {
	return stockfolio.LoadConfig(*configFile)
}

// loadLedger opens the portfolio snapshot named by the config. On first
// run, when no snapshot exists yet, it returns a fresh ledger seeded
// with the configured starting cash.
func loadLedger(cfg stockfolio.Config) (*stockfolio.Ledger, error) {
	return stockfolio.Load(cfg.Snapshot, cfg.Cash())
}

// saveLedger writes the snapshot back atomically.
func saveLedger(cfg stockfolio.Config, l *stockfolio.Ledger) error {
	return stockfolio.Save(cfg.Snapshot, l)
}

// newSource returns the market data source used by all commands: live
// quotes memoized for the lifetime of the command, so one run observes
// one consistent price per ticker.
func newSource() stockfolio.PriceSource {
	return stockfolio.NewMemo(stockfolio.NewYahooSource())
}

// fail prints an error and maps it to the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// usageError prints a usage problem and maps it to the usage exit status.
func usageError(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitUsageError
}
