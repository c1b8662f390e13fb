package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/mbellan/stockfolio"
	"github.com/mbellan/stockfolio/renderer"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	ticker string
	shares string
	price  string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy shares of a ticker" }
func (*buyCmd) Usage() string {
	return `stk buy -t <ticker> -n <shares> [-p <price>]

  Buys shares at the given price, or at the current market price when -p
  is omitted. The purchase fails when the cash balance cannot cover it.

Usage Examples:
$ stk buy -t AAPL -n 10
$ stk buy -t AAPL -n 10 -p 150.25

`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol to buy")
	f.StringVar(&c.shares, "n", "", "Number of shares, a positive whole number")
	f.StringVar(&c.price, "p", "", "Price per share. Defaults to the current market price.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.shares == "" {
		return usageError("buy requires -t and -n")
	}
	shares, err := stockfolio.ParseShares(c.shares)
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

	var tx stockfolio.Transaction
	if c.price != "" {
		price, err := stockfolio.ParseMoney(c.price, stockfolio.DefaultCurrency)
		if err != nil {
			return usageError("%v", err)
		}
		tx, err = ledger.Buy(c.ticker, shares, price)
		if err != nil {
			return fail(err)
		}
	} else {
		tx, err = ledger.BuyAtMarket(newSource(), c.ticker, shares)
		if err != nil {
			return fail(err)
		}
	}

	if err := saveLedger(cfg, ledger); err != nil {
		return fail(err)
	}
	fmt.Println(renderer.Transaction(tx))
	fmt.Printf("Cash balance: %s\n", ledger.Cash())
	return subcommands.ExitSuccess
}
