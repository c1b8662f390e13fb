package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/mbellan/stockfolio/renderer"
)

// ordersCmd holds the flags for the 'orders' subcommand.
type ordersCmd struct{}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "list the pending conditional orders" }
func (*ordersCmd) Usage() string {
	return `stk orders

  Lists every pending conditional order in queueing order, with the id
  needed to cancel it.
`
}

func (c *ordersCmd) SetFlags(f *flag.FlagSet) {}

func (c *ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.OrdersMarkdown(ledger.PendingOrders()))
	return subcommands.ExitSuccess
}
