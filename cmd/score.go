package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mbellan/stockfolio"
	"github.com/mbellan/stockfolio/renderer"
)

// scoreCmd holds the flags for the 'score' subcommand.
type scoreCmd struct{}

func (*scoreCmd) Name() string     { return "score" }
func (*scoreCmd) Synopsis() string { return "compute quant scores for tickers" }
func (*scoreCmd) Usage() string {
	return `stk score [<ticker>...]

  Computes RSI, Sharpe, Sortino, maximum drawdown, Calmar and the
  composite quant score for each ticker. Without arguments, the
  configured watchlist is scored.

Usage Examples:
$ stk score AAPL MSFT
$ stk score

`
}

func (c *scoreCmd) SetFlags(f *flag.FlagSet) {}

func (c *scoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}

	tickers := f.Args()
	if len(tickers) == 0 {
		tickers = cfg.Watchlist
	}
	if len(tickers) == 0 {
		return usageError("no tickers given and the watchlist is empty")
	}

	src := newSource()
	var cards []stockfolio.ScoreCard
	for _, ticker := range tickers {
		card, err := stockfolio.Score(src, ticker, cfg.RiskFreeRate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", ticker, err)
			continue
		}
		cards = append(cards, card)
	}
	printMarkdown(renderer.ScoresMarkdown(cards))
	return subcommands.ExitSuccess
}
