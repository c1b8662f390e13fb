package stockfolio

import (
	"fmt"
	"math"
)

// Risk metric defaults: the RSI lookback, the annual risk free rate and
// the trading-day count used to annualize daily figures.
const (
	DefaultRSIPeriod    = 14
	DefaultRiskFreeRate = 0.0001
	tradingDays         = 252
)

// History windows, in calendar days, used when scoring a ticker.
const (
	rsiWindow      = 31   // enough calendar days to cover 15 trading days
	ratioWindow    = 1095 // 3 years for Sharpe, Sortino and Calmar
	drawdownWindow = 1825 // 5 years for maximum drawdown
)

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdDev is the population standard deviation.
func stdDev(xs []float64) float64 {
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// dailyReturns converts closes into day-over-day percentage returns.
func dailyReturns(closes []float64) []float64 {
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		returns = append(returns, (closes[i]-closes[i-1])/closes[i-1]*100)
	}
	return returns
}

// RSI computes the relative strength index over the last period changes
// of the series, on a 0 to 100 scale. A series with no losing day reads
// 100, one with no winning day reads 0. It needs at least two closes.
func RSI(closes []float64, period int) (float64, error) {
	if len(closes) < 2 {
		return 0, fmt.Errorf("rsi needs at least 2 closes, got %d", len(closes))
	}
	if len(closes) > period+1 {
		closes = closes[len(closes)-period-1:]
	}

	var gains, losses []float64
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains = append(gains, change)
		} else if change < 0 {
			losses = append(losses, -change)
		}
	}
	if len(losses) == 0 {
		return 100, nil
	}
	if len(gains) == 0 {
		return 0, nil
	}
	rs := mean(gains) / mean(losses)
	rsi := 100 - 100/(1+rs)
	return math.Round(rsi*100) / 100, nil
}

// Sharpe computes the annualized Sharpe ratio from daily closes: mean
// daily return times 252 less the risk free rate, over annualized
// volatility. It is +Inf when volatility is zero.
func Sharpe(closes []float64, riskFreeRate float64) (float64, error) {
	if len(closes) < 2 {
		return 0, fmt.Errorf("sharpe needs at least 2 closes, got %d", len(closes))
	}
	returns := dailyReturns(closes)
	annualizedReturn := mean(returns) * tradingDays
	annualizedVolatility := stdDev(returns) * math.Sqrt(tradingDays)
	if annualizedVolatility == 0 {
		return math.Inf(1), nil
	}
	return (annualizedReturn - riskFreeRate) / annualizedVolatility, nil
}

// Sortino is Sharpe with only downside volatility in the denominator.
// A series with no losing day, or with zero downside deviation, reads +Inf.
func Sortino(closes []float64, riskFreeRate float64) (float64, error) {
	if len(closes) < 2 {
		return 0, fmt.Errorf("sortino needs at least 2 closes, got %d", len(closes))
	}
	returns := dailyReturns(closes)
	var downside []float64
	for _, r := range returns {
		if r < 0 {
			downside = append(downside, r)
		}
	}
	if len(downside) == 0 {
		return math.Inf(1), nil
	}
	annualizedReturn := mean(returns) * tradingDays
	annualizedVolatility := stdDev(downside) * math.Sqrt(tradingDays)
	if annualizedVolatility == 0 {
		return math.Inf(1), nil
	}
	return (annualizedReturn - riskFreeRate) / annualizedVolatility, nil
}

// MaxDrawdown computes the largest peak-to-trough decline of the series
// as a percentage of the peak, rounded to two decimals.
func MaxDrawdown(closes []float64) (float64, error) {
	if len(closes) < 2 {
		return 0, fmt.Errorf("max drawdown needs at least 2 closes, got %d", len(closes))
	}
	var maxDrawdown, runningMax float64
	for i := 1; i < len(closes); i++ {
		runningMax = math.Max(runningMax, closes[i])
		drawdown := (runningMax - closes[i]) / runningMax
		maxDrawdown = math.Max(maxDrawdown, drawdown)
	}
	return math.Round(maxDrawdown*100*100) / 100, nil
}

// Calmar computes the annualized return over the maximum drawdown of the
// same window. It is +Inf when the series never draws down.
func Calmar(closes []float64) (float64, error) {
	if len(closes) < 2 {
		return 0, fmt.Errorf("calmar needs at least 2 closes, got %d", len(closes))
	}
	returns := dailyReturns(closes)
	annualizedReturn := mean(returns) * tradingDays
	dd, err := MaxDrawdown(closes)
	if err != nil {
		return 0, err
	}
	if dd == 0 {
		return math.Inf(1), nil
	}
	return annualizedReturn / (dd / 100), nil
}

// QuantScore folds the five metrics into a single 0 to 100 screening
// score. Each metric is normalized into [0,1] and weighted: RSI 15,
// Sharpe 25, Sortino 20, drawdown 15, Calmar 25. RSI scores best near
// 50, ratios saturate at 2 (Calmar at 3), drawdown scores linearly from
// none (1) to total (0).
func QuantScore(rsi, sharpe, sortino, maxDrawdownPct, calmar float64) float64 {
	rsiScore := math.Max(0, 1-math.Abs(50-rsi)/50)
	sharpeScore := math.Min(sharpe/2, 1)
	sortinoScore := math.Min(sortino/2, 1)
	drawdownScore := math.Max(0, 1-maxDrawdownPct/100)
	calmarScore := math.Min(calmar/3, 1)

	score := rsiScore*15 +
		sharpeScore*25 +
		sortinoScore*20 +
		drawdownScore*15 +
		calmarScore*25
	return math.Round(score*100) / 100
}

// ScoreCard carries a ticker's individual metrics and its composite score.
type ScoreCard struct {
	Ticker      string
	RSI         float64
	Sharpe      float64
	Sortino     float64
	MaxDrawdown float64 // percent
	Calmar      float64
	Score       float64
}

// Score fetches the history windows for ticker from src and computes its
// full score card. The RSI window is short, the ratios use three years
// and the drawdown five.
func Score(src PriceSource, ticker string, riskFreeRate float64) (ScoreCard, error) {
	short, err := src.History(ticker, rsiWindow)
	if err != nil {
		return ScoreCard{}, err
	}
	medium, err := src.History(ticker, ratioWindow)
	if err != nil {
		return ScoreCard{}, err
	}
	long, err := src.History(ticker, drawdownWindow)
	if err != nil {
		return ScoreCard{}, err
	}

	card := ScoreCard{Ticker: ticker}
	if card.RSI, err = RSI(short.Closes(), DefaultRSIPeriod); err != nil {
		return ScoreCard{}, fmt.Errorf("%s: %w", ticker, err)
	}
	if card.Sharpe, err = Sharpe(medium.Closes(), riskFreeRate); err != nil {
		return ScoreCard{}, fmt.Errorf("%s: %w", ticker, err)
	}
	if card.Sortino, err = Sortino(medium.Closes(), riskFreeRate); err != nil {
		return ScoreCard{}, fmt.Errorf("%s: %w", ticker, err)
	}
	if card.MaxDrawdown, err = MaxDrawdown(long.Closes()); err != nil {
		return ScoreCard{}, fmt.Errorf("%s: %w", ticker, err)
	}
	if card.Calmar, err = Calmar(medium.Closes()); err != nil {
		return ScoreCard{}, fmt.Errorf("%s: %w", ticker, err)
	}
	card.Score = QuantScore(card.RSI, card.Sharpe, card.Sortino, card.MaxDrawdown, card.Calmar)
	return card, nil
}
