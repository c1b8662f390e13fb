package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/mbellan/stockfolio"
	"github.com/mbellan/stockfolio/renderer"
)

// orderCmd holds the flags for the 'order' subcommand.
type orderCmd struct {
	kind   string
	ticker string
	shares string
	target string
}

func (*orderCmd) Name() string     { return "order" }
func (*orderCmd) Synopsis() string { return "queue a conditional limit or stop order" }
func (*orderCmd) Usage() string {
	return `stk order -k <kind> -t <ticker> -n <shares> -p <target>

  Queues a conditional order that fills when a later evaluation observes
  a price satisfying its condition. Kinds (shorthand in parentheses):

    LIMIT_BUY  (LB)  buy when the price drops to the target or below
    STOP_BUY   (SB)  buy when the price rises to the target or above
    LIMIT_SELL (LS)  sell when the price rises to the target or above
    STOP_LOSS  (SL)  sell when the price drops to the target or below

  A buy order must be coverable by the current cash balance, a sell order
  by the current position. Nothing is reserved while the order waits.

Usage Examples:
$ stk order -k LB -t AAPL -n 10 -p 48
$ stk order -k STOP_LOSS -t TSLA -n 4 -p 90

`
}

func (c *orderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "", "Order kind: LIMIT_BUY, STOP_BUY, LIMIT_SELL, STOP_LOSS (or LB, SB, LS, SL)")
	f.StringVar(&c.ticker, "t", "", "Ticker symbol")
	f.StringVar(&c.shares, "n", "", "Number of shares, a positive whole number")
	f.StringVar(&c.target, "p", "", "Target price per share")
}

func (c *orderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.kind == "" || c.ticker == "" || c.shares == "" || c.target == "" {
		return usageError("order requires -k, -t, -n and -p")
	}
	kind, err := stockfolio.ParseOrderKind(c.kind)
	if err != nil {
		return usageError("%v", err)
	}
	shares, err := stockfolio.ParseShares(c.shares)
	if err != nil {
		return usageError("%v", err)
	}
	target, err := stockfolio.ParseMoney(c.target, stockfolio.DefaultCurrency)
	if err != nil {
		return usageError("%v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		return fail(err)
	}

	o, err := ledger.Queue(kind, c.ticker, shares, target)
	if err != nil {
		return fail(err)
	}
	if err := saveLedger(cfg, ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Queued %s\n", renderer.Order(o))
	return subcommands.ExitSuccess
}
