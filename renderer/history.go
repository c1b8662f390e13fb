package renderer

import (
	"bytes"
	"fmt"

	"github.com/mbellan/stockfolio"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the latest quote and the recent daily candles
// of a ticker, oldest first.
func HistoryMarkdown(ticker string, quote stockfolio.Money, tail stockfolio.Series) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s at %s", ticker, quote))

	if len(tail) == 0 {
		doc.PlainText("No recent history.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Open", "High", "Low", "Close"},
	}
	for _, c := range tail {
		table.Rows = append(table.Rows, []string{
			c.Date.Format("2006-01-02"),
			fmt.Sprintf("%.2f", c.Open),
			fmt.Sprintf("%.2f", c.High),
			fmt.Sprintf("%.2f", c.Low),
			fmt.Sprintf("%.2f", c.Close),
		})
	}
	doc.Table(table)
	return doc.String()
}
