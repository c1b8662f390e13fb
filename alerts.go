package stockfolio

// Price alerts are one-shot checks against the current quote; unlike
// orders they never touch the ledger.

// HighAlert reports whether the current price of ticker has reached or
// exceeded the threshold. The quote is returned for display either way.
func HighAlert(src PriceSource, ticker string, threshold Money) (bool, Money, error) {
	price, err := src.Price(ticker)
	if err != nil {
		return false, Money{}, err
	}
	return price.GreaterThanOrEqual(threshold), price, nil
}

// LowAlert reports whether the current price of ticker has dropped to or
// below the threshold.
func LowAlert(src PriceSource, ticker string, threshold Money) (bool, Money, error) {
	price, err := src.Price(ticker)
	if err != nil {
		return false, Money{}, err
	}
	return price.LessThanOrEqual(threshold), price, nil
}
