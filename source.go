package stockfolio

// A PriceSource supplies market data for a ticker: the latest quote and
// a window of daily candles. Implementations are interchangeable; the
// ledger and metrics only ever see this interface, so tests substitute a
// fixed in-memory source for the live one.
type PriceSource interface {
	// Price returns the latest quote for ticker, or an error wrapping
	// ErrPriceUnavailable when no quote can be obtained.
	Price(ticker string) (Money, error)

	// History returns up to days daily candles ending at the most recent
	// trading day, oldest first.
	History(ticker string, days int) (Series, error)
}

// Memo wraps a PriceSource and remembers quotes for the lifetime of one
// command, so a pass touching the same ticker several times (valuation
// plus an order sweep, say) observes a single consistent price and pays
// for a single fetch.
type Memo struct {
	src    PriceSource
	quotes map[string]Money
}

// NewMemo returns a memoizing view over src.
func NewMemo(src PriceSource) *Memo {
	return &Memo{src: src, quotes: make(map[string]Money)}
}

func (m *Memo) Price(ticker string) (Money, error) {
	if price, ok := m.quotes[ticker]; ok {
		return price, nil
	}
	price, err := m.src.Price(ticker)
	if err != nil {
		return Money{}, err
	}
	m.quotes[ticker] = price
	return price, nil
}

// History is not memoized; the daily http cache already absorbs repeats.
func (m *Memo) History(ticker string, days int) (Series, error) {
	return m.src.History(ticker, days)
}
