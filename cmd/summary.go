package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mbellan/stockfolio/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "portfolio overview at current prices" }
func (*summaryCmd) Usage() string {
	return `stk summary

  Shows the cash balance, the total portfolio value, every holding marked
  to market with its allocation weight, and the unrealized P&L.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		return fail(err)
	}

	s, err := ledger.Summarize(newSource())
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SummaryMarkdown(s))
	return subcommands.ExitSuccess
}
