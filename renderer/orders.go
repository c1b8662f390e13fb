package renderer

import (
	"bytes"
	"fmt"

	"github.com/mbellan/stockfolio"
	md "github.com/nao1215/markdown"
)

// Order renders a pending order to a one-line string.
func Order(o stockfolio.Order) string {
	return fmt.Sprintf("%s %s %s at %s (id %s)", o.Kind, o.Shares, o.Ticker, o.Target, o.ID)
}

// OrdersMarkdown renders the pending order book as a table, in queueing
// order.
func OrdersMarkdown(orders []stockfolio.Order) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Pending Orders")

	if len(orders) == 0 {
		doc.PlainText("No pending orders.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Id", "Type", "Ticker", "Shares", "Target", "Queued"},
	}
	for _, o := range orders {
		table.Rows = append(table.Rows, []string{
			o.ID,
			o.Kind.String(),
			o.Ticker,
			o.Shares.String(),
			o.Target.String(),
			o.Time.Format("2006-01-02 15:04"),
		})
	}
	doc.Table(table)
	return doc.String()
}

// FillsMarkdown renders the trades produced by an order evaluation pass.
func FillsMarkdown(fills []stockfolio.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Order Evaluation")

	if len(fills) == 0 {
		doc.PlainText("No orders triggered.")
		return doc.String()
	}
	for _, tx := range fills {
		doc.BulletList(Transaction(tx))
	}
	return doc.String()
}
