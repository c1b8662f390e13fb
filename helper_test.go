package stockfolio

import (
	"fmt"
	"testing"
	"time"
)

// fakeSource is a fixed in-memory PriceSource for tests.
type fakeSource struct {
	prices    map[string]Money
	histories map[string]Series
}

func (s *fakeSource) Price(ticker string) (Money, error) {
	price, ok := s.prices[ticker]
	if !ok {
		return Money{}, fmt.Errorf("%s: %w", ticker, ErrPriceUnavailable)
	}
	return price, nil
}

func (s *fakeSource) History(ticker string, days int) (Series, error) {
	history, ok := s.histories[ticker]
	if !ok {
		return nil, fmt.Errorf("%s history: %w", ticker, ErrPriceUnavailable)
	}
	return history.Tail(days), nil
}

// quotes builds a fakeSource from ticker/price pairs.
func quotes(pairs ...any) *fakeSource {
	s := &fakeSource{prices: make(map[string]Money), histories: make(map[string]Series)}
	for i := 0; i < len(pairs); i += 2 {
		s.prices[pairs[i].(string)] = USD(pairs[i+1].(float64))
	}
	return s
}

// seriesOf builds a Series from closes, one candle per day.
func seriesOf(closes ...float64) Series {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := make(Series, len(closes))
	for i, c := range closes {
		s[i] = Candle{Date: start.AddDate(0, 0, i), Open: c, High: c, Low: c, Close: c}
	}
	return s
}

// freezeClock pins the package clock for the duration of the test.
func freezeClock(t *testing.T) time.Time {
	t.Helper()
	fixed := time.Date(2025, 6, 2, 15, 4, 5, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })
	return fixed
}
