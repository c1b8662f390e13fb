package stockfolio

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the reporting currency used when none is specified.
// The quote provider returns USD prices, so this is the portfolio currency.
const DefaultCurrency = "USD"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value. Amounts are kept as exact decimals
// so repeated buy/sell accumulation never drifts the way floats do.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money value in the given currency.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// USD is a shorthand to build money in the default reporting currency.
func USD[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return M(value, DefaultCurrency)
}

// ParseMoney parses a decimal string like "123.45" into Money.
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d, cur: currency}, nil
}

// currency returns the full go-money currency metadata, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the value with its currency symbol and fraction digits.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Div(q Quantity) Money            { return Money{value: m.value.Div(q.value), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// PercentOf returns m as a percentage of n. n must not be zero.
func (m Money) PercentOf(n Money) Percent {
	return Percent(m.value.Div(n.value).InexactFloat64() * 100)
}

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + " != " + b.cur)
	}
	return a.cur
}

// MarshalJSON encodes the amount as a bare JSON number. The currency is
// implied by the snapshot (see DecodeSnapshot) and not persisted.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON decodes a bare JSON number into the default currency.
func (m *Money) UnmarshalJSON(data []byte) error {
	if err := m.value.UnmarshalJSON(data); err != nil {
		return err
	}
	m.cur = DefaultCurrency
	return nil
}
