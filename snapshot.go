package stockfolio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// EncodeSnapshot writes the full ledger state as a single JSON document.
// Keys appear in a stable order and holdings are sorted by ticker, so
// two snapshots of the same state are byte-identical and diff cleanly
// under version control.
//
// Each holding is a [shares, average_cost] pair; cash and prices are
// plain decimal numbers with the currency implied.
func EncodeSnapshot(w io.Writer, l *Ledger) error {
	var holdings jsonObjectWriter
	for ticker, pos := range l.Positions() {
		holdings.Append(ticker, []json.Marshaler{pos.Shares, pos.AverageCost})
	}
	rawHoldings, err := holdings.MarshalJSON()
	if err != nil {
		return err
	}

	txs := l.transactions
	if txs == nil {
		txs = []Transaction{}
	}
	orders := l.orders
	if orders == nil {
		orders = []Order{}
	}

	var doc jsonObjectWriter
	doc.AppendRaw("holdings", rawHoldings)
	doc.Append("cash_balance", l.cash)
	doc.Append("transactions", txs)
	doc.Append("limit_orders", orders)
	data, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// DecodeSnapshot reads a ledger back from its snapshot form. Any defect
// in the document, unparsable JSON, a missing cash balance, a malformed
// holding, transaction or order, is reported wrapping ErrCorruptState.
func DecodeSnapshot(r io.Reader) (*Ledger, error) {
	var temp struct {
		Holdings     map[string][]decimal.Decimal `json:"holdings"`
		Cash         *decimal.Decimal             `json:"cash_balance"`
		Transactions []Transaction                `json:"transactions"`
		Orders       []Order                      `json:"limit_orders"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&temp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptState, err)
	}
	if temp.Cash == nil {
		return nil, fmt.Errorf("%w: missing cash_balance", ErrCorruptState)
	}
	if temp.Cash.IsNegative() {
		return nil, fmt.Errorf("%w: negative cash_balance %s", ErrCorruptState, temp.Cash)
	}

	l := NewLedger(Money{value: *temp.Cash, cur: DefaultCurrency})
	for ticker, pair := range temp.Holdings {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: holding %q must be a [shares, average_cost] pair", ErrCorruptState, ticker)
		}
		shares := Quantity{value: pair[0]}
		if !shares.IsPositive() || !shares.IsWhole() {
			return nil, fmt.Errorf("%w: holding %q has invalid share count %s", ErrCorruptState, ticker, shares)
		}
		cost := Money{value: pair[1], cur: DefaultCurrency}
		if !cost.IsPositive() {
			return nil, fmt.Errorf("%w: holding %q has non-positive average cost %s", ErrCorruptState, ticker, cost)
		}
		l.positions[ticker] = Position{Shares: shares, AverageCost: cost}
	}
	l.transactions = temp.Transactions
	l.orders = temp.Orders
	for _, o := range l.orders {
		if !o.Kind.IsBuy() && !o.Kind.IsSell() {
			return nil, fmt.Errorf("%w: order %s has invalid kind", ErrCorruptState, o.ID)
		}
	}
	return l, nil
}

// Load reads the snapshot at path. A missing file is the first-run case
// and yields a fresh ledger seeded with startingCash; any other failure,
// including a corrupt snapshot, is an error. A corrupt snapshot is never
// mistaken for an empty portfolio.
func Load(path string, startingCash Money) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(startingCash), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return l, nil
}

// Save writes the ledger snapshot to path atomically: the document is
// written to a temporary file in the same directory and renamed into
// place, so a crash mid-write never leaves a truncated snapshot behind.
func Save(path string, l *Ledger) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := EncodeSnapshot(tmp, l); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
