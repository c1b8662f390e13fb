package stockfolio

import "errors"

// Sentinel errors for ledger and order book operations. Operations are
// all-or-nothing: when one of these is returned, no state was mutated.
var (
	// ErrInsufficientFunds is returned when the cash balance cannot cover
	// the cost of a buy or of a queued buy-class order.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientShares is returned when a position holds fewer
	// shares than a sell or a queued sell-class order requires.
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrNoSuchPosition is returned when selling a ticker that is not held.
	ErrNoSuchPosition = errors.New("no such position")

	// ErrPriceUnavailable is returned when the price source cannot supply
	// a price and none was provided by the caller.
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrInvalidOrderKind is returned when an order kind cannot be parsed.
	ErrInvalidOrderKind = errors.New("invalid order kind")

	// ErrCorruptState is returned when a snapshot exists but cannot be
	// decoded into a valid ledger. A corrupt snapshot is never silently
	// treated as an empty portfolio.
	ErrCorruptState = errors.New("corrupt snapshot")
)
