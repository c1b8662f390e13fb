package renderer

import (
	"bytes"
	"fmt"
	"math"

	"github.com/mbellan/stockfolio"
	md "github.com/nao1215/markdown"
)

// metric formats a ratio, keeping +Inf readable.
func metric(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", v)
}

// ScoresMarkdown renders the score cards of a screening pass as a table.
func ScoresMarkdown(cards []stockfolio.ScoreCard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Quant Scores")

	if len(cards) == 0 {
		doc.PlainText("No tickers to score.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Ticker", "RSI", "Sharpe", "Sortino", "Max DD", "Calmar", "Score"},
	}
	for _, c := range cards {
		table.Rows = append(table.Rows, []string{
			c.Ticker,
			fmt.Sprintf("%.2f", c.RSI),
			metric(c.Sharpe),
			metric(c.Sortino),
			fmt.Sprintf("%.2f%%", c.MaxDrawdown),
			metric(c.Calmar),
			fmt.Sprintf("%.2f", c.Score),
		})
	}
	doc.Table(table)
	return doc.String()
}
