package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/mbellan/stockfolio"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the full portfolio picture: balances, the
// holdings marked to market, unrealized P&L and the pending order count.
func SummaryMarkdown(s *stockfolio.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", time.Now().Format("2006-01-02")))
	doc.PlainText(fmt.Sprintf("Cash Balance: %s", s.Cash))
	doc.PlainText(fmt.Sprintf("Total Value: %s", s.Value))

	if len(s.Positions) > 0 {
		doc.H2("Holdings")
		table := md.TableSet{
			Header: []string{"Ticker", "Shares", "Avg Cost", "Price", "Value", "Weight"},
		}
		for _, a := range s.Positions {
			table.Rows = append(table.Rows, []string{
				a.Ticker,
				a.Shares.String(),
				a.AverageCost.String(),
				a.Price.String(),
				a.Value.String(),
				a.Weight.String(),
			})
		}
		doc.Table(table)

		doc.H2("Unrealized P&L")
		pl := md.TableSet{
			Header: []string{"Ticker", "P&L", "Return"},
		}
		for _, t := range s.PL {
			pl.Rows = append(pl.Rows, []string{
				t.Ticker,
				t.Amount.SignedString(),
				t.Percent.SignedString(),
			})
		}
		pl.Rows = append(pl.Rows, []string{
			"**Total**",
			"**" + s.TotalPL.SignedString() + "**",
			"**" + s.TotalPLPct.SignedString() + "**",
		})
		doc.Table(pl)
	}

	if n := len(s.Pending); n > 0 {
		doc.PlainText(fmt.Sprintf("%d pending order(s).", n))
	}

	return doc.String()
}
