package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mbellan/stockfolio"
	"github.com/mbellan/stockfolio/renderer"
)

// evaluateCmd holds the flags for the 'evaluate' subcommand.
type evaluateCmd struct {
	ticker string
	price  string
}

func (*evaluateCmd) Name() string     { return "evaluate" }
func (*evaluateCmd) Synopsis() string { return "check pending orders against prices and fill them" }
func (*evaluateCmd) Usage() string {
	return `stk evaluate [-t <ticker> [-p <price>]]

  Sweeps the pending order book. With no flags, every ticker with pending
  orders is checked against its current market price. With -t only that
  ticker is checked; -p substitutes an explicit price for the market one.

  Orders whose condition is satisfied fill at the observed price, in
  queueing order. A triggered order that the cash balance or position can
  no longer cover stays pending.

Usage Examples:
$ stk evaluate
$ stk evaluate -t AAPL
$ stk evaluate -t AAPL -p 47.50

`
}

func (c *evaluateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Only evaluate orders for this ticker")
	f.StringVar(&c.price, "p", "", "Observed price to evaluate against. Requires -t. Defaults to the market price.")
}

func (c *evaluateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.price != "" && c.ticker == "" {
		return usageError("-p requires -t")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		return fail(err)
	}

	var fills []stockfolio.Transaction
	switch {
	case c.ticker == "":
		fills, err = ledger.EvaluateAll(newSource())
		if err != nil {
			// some tickers may have been skipped; the fills still count
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	case c.price != "":
		price, perr := stockfolio.ParseMoney(c.price, stockfolio.DefaultCurrency)
		if perr != nil {
			return usageError("%v", perr)
		}
		fills, err = ledger.Evaluate(c.ticker, price)
		if err != nil {
			return fail(err)
		}
	default:
		price, perr := newSource().Price(c.ticker)
		if perr != nil {
			return fail(perr)
		}
		fills, err = ledger.Evaluate(c.ticker, price)
		if err != nil {
			return fail(err)
		}
	}

	if err := saveLedger(cfg, ledger); err != nil {
		return fail(err)
	}
	printMarkdown(renderer.FillsMarkdown(fills))
	return subcommands.ExitSuccess
}
