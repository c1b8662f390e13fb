package stockfolio

// Summary is the full portfolio picture at current prices, ready for
// display: cash, total value, every position marked to market and the
// unrealized P&L per ticker and overall.
type Summary struct {
	Cash       Money
	Value      Money // cash plus market value of all positions
	Positions  []Allocation
	PL         []TickerPL
	TotalPL    Money
	TotalPLPct Percent
	Pending    []Order
}

// Summarize assembles the summary, fetching one price per held ticker
// from the source.
func (l *Ledger) Summarize(src PriceSource) (*Summary, error) {
	allocs, err := l.Allocations(src)
	if err != nil {
		return nil, err
	}
	pls, err := l.PerTickerPL(src)
	if err != nil {
		return nil, err
	}
	total, pct, err := l.TotalPL(src)
	if err != nil {
		return nil, err
	}

	value := l.cash
	for _, a := range allocs {
		value = value.Add(a.Value)
	}
	return &Summary{
		Cash:       l.cash,
		Value:      value,
		Positions:  allocs,
		PL:         pls,
		TotalPL:    total,
		TotalPLPct: pct,
		Pending:    l.PendingOrders(),
	}, nil
}
