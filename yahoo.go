package stockfolio

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// yahooChartURL is the public chart endpoint; it serves both the latest
// quote (in the meta block) and daily candles.
const yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// YahooSource fetches quotes and daily history from the Yahoo Finance
// chart endpoint. Quotes go through a plain client so intraday moves are
// visible; history goes through the daily disk cache since candles only
// change once per trading day.
type YahooSource struct {
	live   *http.Client
	cached *http.Client
}

// NewYahooSource returns a live market data source.
func NewYahooSource() *YahooSource {
	return &YahooSource{live: new(http.Client), cached: daily()}
}

// Price returns the latest quote for ticker, rounded to cents. Failures
// to reach the endpoint or to find a quote in the payload wrap
// ErrPriceUnavailable.
func (y *YahooSource) Price(ticker string) (Money, error) {
	addr := yahooChartURL + url.PathEscape(ticker) + "?interval=1d&range=1d"
	var jobj any
	if err := jwget(y.live, addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("%s: %w: %w", ticker, ErrPriceUnavailable, err)
	}
	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Money{}, fmt.Errorf("%s: %w: parsing %q: %w", ticker, ErrPriceUnavailable, path, err)
	}
	// jsonpath sometimes wraps a single answer in a list, keep the first one.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok || val <= 0 {
		return Money{}, fmt.Errorf("%s: %w: no usable quote in payload (%v)", ticker, ErrPriceUnavailable, jval)
	}
	return Money{value: decimal.NewFromFloat(val).Round(2), cur: DefaultCurrency}, nil
}

// yahooChart is the subset of the chart payload used for history.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open  []*float64 `json:"open"`
					High  []*float64 `json:"high"`
					Low   []*float64 `json:"low"`
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// History returns up to days daily candles for ticker, oldest first.
// Days with no trade (nil bar fields) are dropped.
func (y *YahooSource) History(ticker string, days int) (Series, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)
	addr := fmt.Sprintf("%s%s?interval=1d&period1=%d&period2=%d",
		yahooChartURL, url.PathEscape(ticker), start.Unix(), end.Unix())

	var payload yahooChart
	if err := jwget(y.cached, addr, &payload); err != nil {
		return nil, fmt.Errorf("%s history: %w: %w", ticker, ErrPriceUnavailable, err)
	}
	if payload.Chart.Error != nil {
		return nil, fmt.Errorf("%s history: %w: %s (%s)", ticker, ErrPriceUnavailable,
			payload.Chart.Error.Description, payload.Chart.Error.Code)
	}
	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%s history: %w: empty payload", ticker, ErrPriceUnavailable)
	}

	result := payload.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	var series Series
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		c := Candle{Date: time.Unix(ts, 0).UTC(), Close: *quote.Close[i]}
		if i < len(quote.Open) && quote.Open[i] != nil {
			c.Open = *quote.Open[i]
		}
		if i < len(quote.High) && quote.High[i] != nil {
			c.High = *quote.High[i]
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			c.Low = *quote.Low[i]
		}
		series = append(series, c)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%s history: %w: no candles", ticker, ErrPriceUnavailable)
	}
	return series, nil
}
