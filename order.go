package stockfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// OrderKind identifies one of the four conditional order kinds. Two are
// buy-class (LimitBuy, StopBuy), two are sell-class (LimitSell, StopLoss).
type OrderKind int

const (
	LimitBuy OrderKind = iota // buy when price drops to target or below
	StopBuy                   // buy when price rises to target or above
	LimitSell                 // sell when price rises to target or above
	StopLoss                  // sell when price drops to target or below
)

var orderKindNames = map[OrderKind]string{
	LimitBuy:  "LIMIT_BUY",
	StopBuy:   "STOP_BUY",
	LimitSell: "LIMIT_SELL",
	StopLoss:  "STOP_LOSS",
}

func (k OrderKind) String() string {
	if name, ok := orderKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("OrderKind(%d)", int(k))
}

// IsBuy reports whether the kind admits against cash when queued.
func (k OrderKind) IsBuy() bool { return k == LimitBuy || k == StopBuy }

// IsSell reports whether the kind admits against a held position.
func (k OrderKind) IsSell() bool { return k == LimitSell || k == StopLoss }

// ParseOrderKind parses a kind name. Both the full names (LIMIT_BUY,
// STOP_BUY, LIMIT_SELL, STOP_LOSS) and the two-letter shorthands used at
// the command line (LB, SB, LS, SL) are accepted.
func ParseOrderKind(s string) (OrderKind, error) {
	switch s {
	case "LIMIT_BUY", "LB":
		return LimitBuy, nil
	case "STOP_BUY", "SB":
		return StopBuy, nil
	case "LIMIT_SELL", "LS":
		return LimitSell, nil
	case "STOP_LOSS", "SL":
		return StopLoss, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidOrderKind)
}

func (k OrderKind) MarshalJSON() ([]byte, error) {
	name, ok := orderKindNames[k]
	if !ok {
		return nil, fmt.Errorf("%d: %w", int(k), ErrInvalidOrderKind)
	}
	return json.Marshal(name)
}

func (k *OrderKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	kind, err := ParseOrderKind(name)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Order is a pending conditional order sitting in the book until a price
// observation triggers it or the owner cancels it. Orders do not reserve
// cash or shares while pending; feasibility is re-checked at fill time.
type Order struct {
	ID     string
	Kind   OrderKind
	Ticker string
	Shares Quantity
	Target Money // trigger price per share
	Time   time.Time
}

// Triggered reports whether the observed price satisfies the order's
// condition. LimitSell and StopBuy fire at or above the target; LimitBuy
// and StopLoss fire at or below. Equality always triggers.
func (o Order) Triggered(price Money) bool {
	switch o.Kind {
	case LimitSell, StopBuy:
		return price.GreaterThanOrEqual(o.Target)
	case LimitBuy, StopLoss:
		return price.LessThanOrEqual(o.Target)
	}
	return false
}

func (o Order) Equal(p Order) bool {
	return o.ID == p.ID &&
		o.Kind == p.Kind &&
		o.Ticker == p.Ticker &&
		o.Shares.Equal(p.Shares) &&
		o.Target.Equal(p.Target) &&
		o.Time.Equal(p.Time)
}

// MarshalJSON implements the json.Marshaler interface for Order.
// Keys are written in a stable order so snapshots diff cleanly.
func (o Order) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", o.ID)
	w.Append("type", o.Kind)
	w.Append("ticker", o.Ticker)
	w.Append("shares", o.Shares)
	w.Append("price", o.Target)
	w.Append("time", o.Time.Format(time.RFC3339))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Order,
// validating every field.
func (o *Order) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID     string   `json:"id"`
		Type   *string  `json:"type"`
		Ticker string   `json:"ticker"`
		Shares Quantity `json:"shares"`
		Price  Money    `json:"price"`
		Time   string   `json:"time"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.ID == "" {
		return fmt.Errorf("order is missing an id")
	}
	// the zero OrderKind is a valid kind, so a missing key must be caught
	// here rather than defaulted
	if temp.Type == nil {
		return fmt.Errorf("order %s is missing a type", temp.ID)
	}
	kind, err := ParseOrderKind(*temp.Type)
	if err != nil {
		return fmt.Errorf("order %s: %w", temp.ID, err)
	}
	if temp.Ticker == "" {
		return fmt.Errorf("order is missing a ticker")
	}
	if !temp.Shares.IsPositive() {
		return fmt.Errorf("order shares must be positive, got %s", temp.Shares)
	}
	if !temp.Price.IsPositive() {
		return fmt.Errorf("order target price must be positive, got %s", temp.Price)
	}
	when, err := time.Parse(time.RFC3339, temp.Time)
	if err != nil {
		return fmt.Errorf("invalid order time %q: %w", temp.Time, err)
	}
	o.ID = temp.ID
	o.Kind = kind
	o.Ticker = temp.Ticker
	o.Shares = temp.Shares
	o.Target = temp.Price
	o.Time = when
	return nil
}

// Queue admits a new conditional order into the book and returns it with
// a freshly assigned id.
//
// Admission checks feasibility at queue time: a buy-class order must be
// coverable by the current cash balance at the target price, a sell-class
// order must be covered by the current position. Feasibility can still
// change while the order is pending; it is re-checked when the order
// triggers, and an infeasible order simply stays in the book.
func (l *Ledger) Queue(kind OrderKind, ticker string, shares Quantity, target Money) (Order, error) {
	if ticker == "" {
		return Order{}, fmt.Errorf("order: ticker is missing")
	}
	if !shares.IsPositive() {
		return Order{}, fmt.Errorf("order: shares must be positive, got %s", shares)
	}
	if !target.IsPositive() {
		return Order{}, fmt.Errorf("order: target price must be positive, got %s", target)
	}

	switch {
	case kind.IsBuy():
		cost := target.Mul(shares)
		if l.cash.LessThan(cost) {
			return Order{}, fmt.Errorf("cannot queue %s for %s %s, cash balance is %s: %w",
				kind, shares, ticker, l.cash, ErrInsufficientFunds)
		}
	case kind.IsSell():
		pos := l.positions[ticker]
		if pos.Shares.LessThan(shares) {
			return Order{}, fmt.Errorf("cannot queue %s for %s %s, position is only %s: %w",
				kind, shares, ticker, pos.Shares, ErrInsufficientShares)
		}
	default:
		return Order{}, fmt.Errorf("%s: %w", kind, ErrInvalidOrderKind)
	}

	o := Order{
		ID:     uuid.NewString(),
		Kind:   kind,
		Ticker: ticker,
		Shares: shares,
		Target: target,
		Time:   now(),
	}
	l.orders = append(l.orders, o)
	return o, nil
}

// PendingOrders returns the pending orders in queueing order.
func (l *Ledger) PendingOrders() []Order {
	return slices.Clone(l.orders)
}

// CancelOrder removes a pending order by id. It returns the removed order,
// or an error when no pending order carries that id.
func (l *Ledger) CancelOrder(id string) (Order, error) {
	for i, o := range l.orders {
		if o.ID == id {
			l.orders = slices.Delete(l.orders, i, i+1)
			return o, nil
		}
	}
	return Order{}, fmt.Errorf("no pending order with id %q", id)
}

// Evaluate checks every pending order for ticker against the observed
// price and fills the ones that trigger, in queueing order. Each fill
// runs through the regular Buy or Sell path, so fills earlier in the pass
// affect the cash and shares available to later ones.
//
// A triggered order whose fill fails on insufficient funds or shares is
// kept pending; any other fill failure aborts the pass. Filled orders
// are removed from the book only after the whole pass, so an order is
// considered at most once per observation.
func (l *Ledger) Evaluate(ticker string, price Money) ([]Transaction, error) {
	var fills []Transaction
	filled := make(map[string]bool)
	for _, o := range l.orders {
		if o.Ticker != ticker || !o.Triggered(price) {
			continue
		}
		var tx Transaction
		var err error
		if o.Kind.IsBuy() {
			tx, err = l.Buy(o.Ticker, o.Shares, price)
		} else {
			tx, err = l.Sell(o.Ticker, o.Shares, price)
		}
		if err != nil {
			// The order stays in the book waiting for conditions to improve.
			if errors.Is(err, ErrInsufficientFunds) || errors.Is(err, ErrInsufficientShares) || errors.Is(err, ErrNoSuchPosition) {
				continue
			}
			return fills, err
		}
		filled[o.ID] = true
		fills = append(fills, tx)
	}
	l.orders = slices.DeleteFunc(l.orders, func(o Order) bool { return filled[o.ID] })
	return fills, nil
}

// EvaluateAll runs Evaluate for every distinct ticker present in the
// book, in ticker order, fetching one price per ticker from the source.
// A ticker whose price cannot be fetched is skipped; its orders stay
// pending and the failures are reported joined after the full pass.
func (l *Ledger) EvaluateAll(src PriceSource) ([]Transaction, error) {
	var tickers []string
	for _, o := range l.orders {
		if !slices.Contains(tickers, o.Ticker) {
			tickers = append(tickers, o.Ticker)
		}
	}
	slices.Sort(tickers)

	var fills []Transaction
	var skipped []error
	for _, ticker := range tickers {
		price, err := src.Price(ticker)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("%s: %w", ticker, err))
			continue
		}
		txs, err := l.Evaluate(ticker, price)
		fills = append(fills, txs...)
		if err != nil {
			return fills, err
		}
	}
	return fills, joinSkipped(skipped)
}
