package stockfolio

import (
	"encoding/json"
	"fmt"
	"time"
)

// TxKind is a typed string identifying the two kinds of executed trades.
type TxKind string

const (
	TxBuy  TxKind = "BUY"
	TxSell TxKind = "SELL"
)

// Transaction is an immutable record of an executed trade. The ledger's
// transaction log is append-only; records are never mutated or deleted.
type Transaction struct {
	Kind   TxKind
	Ticker string
	Shares Quantity
	Price  Money // price per share at fill time
	Time   time.Time
}

// Amount returns the total cash moved by the transaction.
func (t Transaction) Amount() Money {
	return t.Price.Mul(t.Shares)
}

func (t Transaction) Equal(o Transaction) bool {
	return t.Kind == o.Kind &&
		t.Ticker == o.Ticker &&
		t.Shares.Equal(o.Shares) &&
		t.Price.Equal(o.Price) &&
		t.Time.Equal(o.Time)
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
// Keys are written in a stable order so snapshots diff cleanly.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", string(t.Kind))
	w.Append("ticker", t.Ticker)
	w.Append("shares", t.Shares)
	w.Append("price", t.Price)
	w.Append("time", t.Time.Format(time.RFC3339))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// Field presence and types are validated; a malformed record is an error,
// not a zero-valued transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type   string   `json:"type"`
		Ticker string   `json:"ticker"`
		Shares Quantity `json:"shares"`
		Price  Money    `json:"price"`
		Time   string   `json:"time"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	kind := TxKind(temp.Type)
	if kind != TxBuy && kind != TxSell {
		return fmt.Errorf("unknown transaction type %q", temp.Type)
	}
	if temp.Ticker == "" {
		return fmt.Errorf("transaction is missing a ticker")
	}
	if !temp.Shares.IsPositive() {
		return fmt.Errorf("transaction shares must be positive, got %s", temp.Shares)
	}
	if !temp.Price.IsPositive() {
		return fmt.Errorf("transaction price must be positive, got %s", temp.Price)
	}
	when, err := time.Parse(time.RFC3339, temp.Time)
	if err != nil {
		return fmt.Errorf("invalid transaction time %q: %w", temp.Time, err)
	}
	t.Kind = kind
	t.Ticker = temp.Ticker
	t.Shares = temp.Shares
	t.Price = temp.Price
	t.Time = when
	return nil
}
