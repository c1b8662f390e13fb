package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/mbellan/stockfolio"
	"github.com/mbellan/stockfolio/renderer"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	ticker string
	shares string
	price  string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares of a held ticker" }
func (*sellCmd) Usage() string {
	return `stk sell -t <ticker> -n <shares> [-p <price>]

  Sells shares at the given price, or at the current market price when -p
  is omitted. The sale fails when the position holds fewer shares than
  requested.

Usage Examples:
$ stk sell -t AAPL -n 5
$ stk sell -t AAPL -n 5 -p 187.20

`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol to sell")
	f.StringVar(&c.shares, "n", "", "Number of shares, a positive whole number")
	f.StringVar(&c.price, "p", "", "Price per share. Defaults to the current market price.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.shares == "" {
		return usageError("sell requires -t and -n")
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
		tx, err = ledger.Sell(c.ticker, shares, price)
		if err != nil {
			return fail(err)
		}
	} else {
		tx, err = ledger.SellAtMarket(newSource(), c.ticker, shares)
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
