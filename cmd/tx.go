package cmd

import (
	"context"
	"flag"
	"slices"

	"github.com/google/subcommands"
	"github.com/mbellan/stockfolio"
	"github.com/mbellan/stockfolio/renderer"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	ticker string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "show the transaction log" }
func (*txCmd) Usage() string {
	return `stk tx [-t <ticker>]

  Shows the full transaction log, oldest first, optionally filtered to a
  single ticker.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Only show trades for this ticker")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		return fail(err)
	}

	txs := slices.Collect(ledger.Transactions())
	if c.ticker != "" {
		txs = slices.DeleteFunc(txs, func(tx stockfolio.Transaction) bool {
			return tx.Ticker != c.ticker
		})
	}
	printMarkdown(renderer.TransactionsMarkdown(txs))
	return subcommands.ExitSuccess
}
