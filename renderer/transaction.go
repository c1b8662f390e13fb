package renderer

import (
	"bytes"
	"fmt"

	"github.com/mbellan/stockfolio"
	md "github.com/nao1215/markdown"
)

// Transaction renders a single trade to a one-line string.
func Transaction(tx stockfolio.Transaction) string {
	switch tx.Kind {
	case stockfolio.TxBuy:
		return fmt.Sprintf("Bought %s %s at %s for %s", tx.Shares, tx.Ticker, tx.Price, tx.Amount())
	case stockfolio.TxSell:
		return fmt.Sprintf("Sold %s %s at %s for %s", tx.Shares, tx.Ticker, tx.Price, tx.Amount())
	default:
		return string(tx.Kind)
	}
}

// TransactionsMarkdown renders the transaction log as a table, oldest
// trade first.
func TransactionsMarkdown(txs []stockfolio.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Transaction Log")

	if len(txs) == 0 {
		doc.PlainText("No transactions yet.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Type", "Ticker", "Shares", "Price", "Amount"},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.Time.Format("2006-01-02 15:04"),
			string(tx.Kind),
			tx.Ticker,
			tx.Shares.String(),
			tx.Price.String(),
			tx.Amount().String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
