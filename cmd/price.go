package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mbellan/stockfolio/renderer"
)

// priceCmd holds the flags for the 'price' subcommand.
type priceCmd struct {
	days int
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "latest quote and recent history for a ticker" }
func (*priceCmd) Usage() string {
	return `stk price [-d <days>] <ticker>

  Prints the latest quote and the recent daily candles for a ticker.

Usage Examples:
$ stk price AAPL
$ stk price -d 90 NVDA

`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "d", 0, "History window in days. Defaults to the configured history_days.")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError("price requires exactly one ticker")
	}
	ticker := f.Arg(0)

	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	days := c.days
	if days <= 0 {
		days = cfg.HistoryDays
	}

	src := newSource()
	quote, err := src.Price(ticker)
	if err != nil {
		return fail(err)
	}
	history, err := src.History(ticker, days)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.HistoryMarkdown(ticker, quote, history.Tail(10)))
	return subcommands.ExitSuccess
}
