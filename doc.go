// Package stockfolio provides the types and functions for tracking a
// personal stock portfolio with simulated trading. It is local-first:
// the whole state lives in a single snapshot file that the user owns.
//
// The core functionalities include:
//   - Ledger Management: a cash balance, per-ticker positions with a
//     volume-weighted average cost basis, and an append-only log of
//     executed buy and sell transactions.
//   - Conditional Orders: a FIFO book of limit and stop orders that is
//     evaluated against live prices and converts triggered orders into
//     ledger transactions.
//   - Market Data: a PriceSource abstraction over the quote provider,
//     with per-pass memoization and a daily on-disk HTTP cache.
//   - Risk Metrics: pure functions computing RSI, Sharpe, Sortino,
//     maximum drawdown, the Calmar ratio and a composite quant score
//     from a close-price series.
//   - Persistence: encoding and decoding of the whole ledger state to a
//     single canonical JSON snapshot, written atomically.
//
// This package serves as the foundational logic for the `stk`
// command-line tool.
package stockfolio
