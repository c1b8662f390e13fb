package stockfolio

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"time"
)

// now is the clock used to timestamp transactions and orders.
// Tests override it to get deterministic records.
var now = time.Now

// Position is a ticker's current share count and average cost basis.
// A position with zero shares is never stored: selling flat removes the
// entry entirely, so re-entering a ticker starts a fresh cost basis.
type Position struct {
	Shares      Quantity
	AverageCost Money // volume-weighted average of all buy fills
}

// CostBasis returns the total amount paid for the position at its
// average cost.
func (p Position) CostBasis() Money {
	return p.AverageCost.Mul(p.Shares)
}

// Ledger is the aggregate root of the portfolio: cash, positions, the
// append-only transaction log, and the book of pending conditional
// orders. It is a plain value passed explicitly into every operation;
// there is no process-wide instance.
//
// The ledger is single-writer: one control loop mutates it sequentially.
// All mutating operations are all-or-nothing; on error no partial change
// is observable.
type Ledger struct {
	cash         Money
	positions    map[string]Position
	transactions []Transaction
	orders       []Order
}

// NewLedger creates an empty ledger seeded with an initial cash balance.
func NewLedger(initialCash Money) *Ledger {
	return &Ledger{
		cash:      initialCash,
		positions: make(map[string]Position),
	}
}

// Cash returns the current cash balance. It is never negative after a
// committed operation.
func (l *Ledger) Cash() Money { return l.cash }

// Position returns the position held for ticker, if any.
func (l *Ledger) Position(ticker string) (Position, bool) {
	pos, ok := l.positions[ticker]
	return pos, ok
}

// Positions iterates over held positions in ticker order.
func (l *Ledger) Positions() iter.Seq2[string, Position] {
	return func(yield func(string, Position) bool) {
		tickers := slices.Collect(maps.Keys(l.positions))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(ticker, l.positions[ticker]) {
				return
			}
		}
	}
}

// Transactions iterates over the transaction log in execution order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// Buy purchases shares of ticker at the given per-share price. It debits
// cash by shares*price, blends the fill into the position's average cost
// (or opens a new position at the fill price), and appends a BUY record.
//
// It fails with ErrInsufficientFunds when cash cannot cover the cost; the
// ledger is untouched on failure.
func (l *Ledger) Buy(ticker string, shares Quantity, price Money) (Transaction, error) {
	if ticker == "" {
		return Transaction{}, fmt.Errorf("buy: ticker is missing")
	}
	if !shares.IsPositive() {
		return Transaction{}, fmt.Errorf("buy: shares must be positive, got %s", shares)
	}
	if !price.IsPositive() {
		return Transaction{}, fmt.Errorf("buy: price must be positive, got %s", price)
	}

	cost := price.Mul(shares)
	if l.cash.LessThan(cost) {
		return Transaction{}, fmt.Errorf("cannot buy %s %s for %s, cash balance is %s: %w",
			shares, ticker, cost, l.cash, ErrInsufficientFunds)
	}

	l.cash = l.cash.Sub(cost)
	if pos, ok := l.positions[ticker]; ok {
		total := pos.Shares.Add(shares)
		// average_cost = (old_shares*old_avg + shares*price) / total
		blended := pos.CostBasis().Add(cost).Div(total)
		l.positions[ticker] = Position{Shares: total, AverageCost: blended}
	} else {
		l.positions[ticker] = Position{Shares: shares, AverageCost: price}
	}

	tx := Transaction{Kind: TxBuy, Ticker: ticker, Shares: shares, Price: price, Time: now()}
	l.transactions = append(l.transactions, tx)
	return tx, nil
}

// Sell disposes of shares of ticker at the given per-share price. It
// credits cash with the proceeds, decrements the position, removes the
// position entirely when it reaches zero shares, and appends a SELL
// record. Sells never change the average cost; realized P&L is
// shares * (price - average_cost).
//
// It fails with ErrNoSuchPosition when the ticker is not held, and with
// ErrInsufficientShares when the position is smaller than the request;
// the ledger is untouched on failure.
func (l *Ledger) Sell(ticker string, shares Quantity, price Money) (Transaction, error) {
	if !shares.IsPositive() {
		return Transaction{}, fmt.Errorf("sell: shares must be positive, got %s", shares)
	}
	if !price.IsPositive() {
		return Transaction{}, fmt.Errorf("sell: price must be positive, got %s", price)
	}

	pos, ok := l.positions[ticker]
	if !ok {
		return Transaction{}, fmt.Errorf("cannot sell %s, no position held: %w", ticker, ErrNoSuchPosition)
	}
	if pos.Shares.LessThan(shares) {
		return Transaction{}, fmt.Errorf("cannot sell %s %s, position is only %s: %w",
			shares, ticker, pos.Shares, ErrInsufficientShares)
	}

	l.cash = l.cash.Add(price.Mul(shares))
	remaining := pos.Shares.Sub(shares)
	if remaining.IsZero() {
		delete(l.positions, ticker)
	} else {
		l.positions[ticker] = Position{Shares: remaining, AverageCost: pos.AverageCost}
	}

	tx := Transaction{Kind: TxSell, Ticker: ticker, Shares: shares, Price: price, Time: now()}
	l.transactions = append(l.transactions, tx)
	return tx, nil
}

// BuyAtMarket is Buy with the price fetched from the source at call time.
func (l *Ledger) BuyAtMarket(src PriceSource, ticker string, shares Quantity) (Transaction, error) {
	price, err := src.Price(ticker)
	if err != nil {
		return Transaction{}, err
	}
	return l.Buy(ticker, shares, price)
}

// SellAtMarket is Sell with the price fetched from the source at call time.
func (l *Ledger) SellAtMarket(src PriceSource, ticker string, shares Quantity) (Transaction, error) {
	price, err := src.Price(ticker)
	if err != nil {
		return Transaction{}, err
	}
	return l.Sell(ticker, shares, price)
}

// TickerPL is the unrealized profit or loss of one position.
type TickerPL struct {
	Ticker  string
	Amount  Money
	Percent Percent
}

// Allocation describes one position marked to market, with its share of
// the total holdings value.
type Allocation struct {
	Ticker      string
	Shares      Quantity
	AverageCost Money
	Price       Money
	Value       Money
	Weight      Percent
}

// PositionValue returns shares * current price for a held ticker.
func (l *Ledger) PositionValue(src PriceSource, ticker string) (Money, error) {
	pos, ok := l.positions[ticker]
	if !ok {
		return Money{}, fmt.Errorf("%s: %w", ticker, ErrNoSuchPosition)
	}
	price, err := src.Price(ticker)
	if err != nil {
		return Money{}, err
	}
	return price.Mul(pos.Shares), nil
}

// PortfolioValue returns cash plus the market value of every position.
func (l *Ledger) PortfolioValue(src PriceSource) (Money, error) {
	value := l.cash
	for ticker, pos := range l.Positions() {
		price, err := src.Price(ticker)
		if err != nil {
			return Money{}, err
		}
		value = value.Add(price.Mul(pos.Shares))
	}
	return value, nil
}

// UnrealizedPL returns the unrealized profit or loss of one position at
// current prices. The percentage is 0 when the cost basis is zero; that
// is an explicit policy, not a crash.
func (l *Ledger) UnrealizedPL(src PriceSource, ticker string) (TickerPL, error) {
	pos, ok := l.positions[ticker]
	if !ok {
		return TickerPL{}, fmt.Errorf("%s: %w", ticker, ErrNoSuchPosition)
	}
	price, err := src.Price(ticker)
	if err != nil {
		return TickerPL{}, err
	}
	return tickerPL(ticker, pos, price), nil
}

func tickerPL(ticker string, pos Position, price Money) TickerPL {
	current := price.Mul(pos.Shares)
	basis := pos.CostBasis()
	pl := current.Sub(basis)
	var pct Percent
	if !basis.IsZero() {
		pct = pl.PercentOf(basis)
	}
	return TickerPL{Ticker: ticker, Amount: pl, Percent: pct}
}

// PerTickerPL returns the unrealized P&L of every position, in ticker
// order.
func (l *Ledger) PerTickerPL(src PriceSource) ([]TickerPL, error) {
	var pls []TickerPL
	for ticker, pos := range l.Positions() {
		price, err := src.Price(ticker)
		if err != nil {
			return nil, err
		}
		pls = append(pls, tickerPL(ticker, pos, price))
	}
	return pls, nil
}

// TotalPL returns the unrealized P&L over all positions combined.
func (l *Ledger) TotalPL(src PriceSource) (Money, Percent, error) {
	var current, basis Money
	for ticker, pos := range l.Positions() {
		price, err := src.Price(ticker)
		if err != nil {
			return Money{}, 0, err
		}
		current = current.Add(price.Mul(pos.Shares))
		basis = basis.Add(pos.CostBasis())
	}
	pl := current.Sub(basis)
	var pct Percent
	if !basis.IsZero() {
		pct = pl.PercentOf(basis)
	}
	return pl, pct, nil
}

// Allocations returns every position marked to market with its weight in
// the total holdings value, in ticker order.
func (l *Ledger) Allocations(src PriceSource) ([]Allocation, error) {
	var allocs []Allocation
	var total Money
	for ticker, pos := range l.Positions() {
		price, err := src.Price(ticker)
		if err != nil {
			return nil, err
		}
		value := price.Mul(pos.Shares)
		total = total.Add(value)
		allocs = append(allocs, Allocation{
			Ticker:      ticker,
			Shares:      pos.Shares,
			AverageCost: pos.AverageCost,
			Price:       price,
			Value:       value,
		})
	}
	for i := range allocs {
		if !total.IsZero() {
			allocs[i].Weight = allocs[i].Value.PercentOf(total)
		}
	}
	return allocs, nil
}

// Equal reports whether two ledgers hold the same state. It is mainly
// used to verify the snapshot round-trip law.
func (l *Ledger) Equal(o *Ledger) bool {
	if !l.cash.Equal(o.cash) {
		return false
	}
	if len(l.positions) != len(o.positions) {
		return false
	}
	for ticker, pos := range l.positions {
		opos, ok := o.positions[ticker]
		if !ok || !pos.Shares.Equal(opos.Shares) || !pos.AverageCost.Equal(opos.AverageCost) {
			return false
		}
	}
	if !slices.EqualFunc(l.transactions, o.transactions, Transaction.Equal) {
		return false
	}
	return slices.EqualFunc(l.orders, o.orders, Order.Equal)
}

// joinSkipped joins per-ticker evaluation errors, preserving errors.Is
// on the underlying causes.
func joinSkipped(errs []error) error {
	return errors.Join(errs...)
}
