package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mbellan/stockfolio/renderer"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct{}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "unrealized gain analysis per ticker" }
func (*gainsCmd) Usage() string {
	return `stk gains

  Calculates and displays the unrealized gain of every position against
  its average cost, at current market prices.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		return fail(err)
	}

	src := newSource()
	pls, err := ledger.PerTickerPL(src)
	if err != nil {
		return fail(err)
	}
	total, pct, err := ledger.TotalPL(src)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.GainsMarkdown(pls, total, pct))
	return subcommands.ExitSuccess
}
