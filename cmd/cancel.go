package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/mbellan/stockfolio/renderer"
)

// cancelCmd holds the flags for the 'cancel' subcommand.
type cancelCmd struct{}

func (*cancelCmd) Name() string     { return "cancel" }
func (*cancelCmd) Synopsis() string { return "cancel a pending order by id" }
func (*cancelCmd) Usage() string {
	return `stk cancel <order-id>

  Removes a pending order from the book. The id is shown by 'stk orders'.
`
}

func (c *cancelCmd) SetFlags(f *flag.FlagSet) {}

func (c *cancelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError("cancel requires exactly one order id")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	ledger, err := loadLedger(cfg)
	if err != nil {
		return fail(err)
	}

	o, err := ledger.CancelOrder(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	if err := saveLedger(cfg, ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Cancelled %s\n", renderer.Order(o))
	return subcommands.ExitSuccess
}
