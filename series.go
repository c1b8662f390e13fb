package stockfolio

import "time"

// Candle is one daily price bar.
type Candle struct {
	Date  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Series is a run of daily candles, oldest first. Metrics operate on the
// closing prices; candles keep the full bar for display.
type Series []Candle

// Closes extracts the closing prices, oldest first.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, c := range s {
		closes[i] = c.Close
	}
	return closes
}

// Tail returns the last n candles, or the whole series when it is shorter.
func (s Series) Tail(n int) Series {
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// Last returns the most recent candle. It is the zero Candle for an
// empty series.
func (s Series) Last() Candle {
	if len(s) == 0 {
		return Candle{}
	}
	return s[len(s)-1]
}
