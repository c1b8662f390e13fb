package renderer

import (
	"fmt"
	"strings"

	"github.com/mbellan/stockfolio"
)

// GainsMarkdown renders the unrealized P&L per ticker and the total, in
// ticker order.
func GainsMarkdown(pls []stockfolio.TickerPL, total stockfolio.Money, totalPct stockfolio.Percent) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Unrealized Gains\n\n")

	if len(pls) == 0 {
		fmt.Fprintln(&b, "No positions held.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Ticker | P&L | Return |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, pl := range pls {
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			pl.Ticker,
			pl.Amount.SignedString(),
			pl.Percent.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **%s** | **%s** | **%s** |\n",
		"Total",
		total.SignedString(),
		totalPct.SignedString(),
	)

	return b.String()
}
