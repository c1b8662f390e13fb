package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/mbellan/stockfolio"
)

// alertCmd holds the flags for the 'alert' subcommand.
type alertCmd struct {
	high string
	low  string
}

func (*alertCmd) Name() string     { return "alert" }
func (*alertCmd) Synopsis() string { return "check a ticker against high and low price thresholds" }
func (*alertCmd) Usage() string {
	return `stk alert [-high <price>] [-low <price>] <ticker>

  One-shot price check. Reports whether the current quote has reached the
  high threshold or dropped to the low one. Alerts never touch the
  portfolio; use 'stk order' for that.

Usage Examples:
$ stk alert -high 200 AAPL
$ stk alert -high 200 -low 150 AAPL

`
}

func (c *alertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.high, "high", "", "Alert when the price is at or above this threshold")
	f.StringVar(&c.low, "low", "", "Alert when the price is at or below this threshold")
}

func (c *alertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError("alert requires exactly one ticker")
	}
	if c.high == "" && c.low == "" {
		return usageError("alert requires -high or -low")
	}
	ticker := f.Arg(0)
	src := newSource()

	if c.high != "" {
		threshold, err := stockfolio.ParseMoney(c.high, stockfolio.DefaultCurrency)
		if err != nil {
			return usageError("%v", err)
		}
		hit, price, err := stockfolio.HighAlert(src, ticker, threshold)
		if err != nil {
			return fail(err)
		}
		if hit {
			fmt.Printf("ALERT: %s is at %s, at or above %s\n", ticker, price, threshold)
		} else {
			fmt.Printf("%s is at %s, below %s\n", ticker, price, threshold)
		}
	}
	if c.low != "" {
		threshold, err := stockfolio.ParseMoney(c.low, stockfolio.DefaultCurrency)
		if err != nil {
			return usageError("%v", err)
		}
		hit, price, err := stockfolio.LowAlert(src, ticker, threshold)
		if err != nil {
			return fail(err)
		}
		if hit {
			fmt.Printf("ALERT: %s is at %s, at or below %s\n", ticker, price, threshold)
		} else {
			fmt.Printf("%s is at %s, above %s\n", ticker, price, threshold)
		}
	}
	return subcommands.ExitSuccess
}
