package stockfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity represents a number of shares. Share counts are whole numbers
// at the command surface, but the type keeps exact decimal arithmetic so
// average-cost blending stays precise.
type Quantity struct {
	value decimal.Decimal
}

// Q builds a Quantity from a numeric value.
func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// ParseShares parses a whole, positive share count from the command line.
func ParseShares(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid share count %q: %w", s, err)
	}
	if !d.IsInteger() || !d.IsPositive() {
		return Quantity{}, fmt.Errorf("share count must be a positive whole number, got %q", s)
	}
	return Quantity{value: d}, nil
}

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) IsWhole() bool               { return q.value.IsInteger() }
func (q Quantity) String() string              { return q.value.String() }

func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.value.String()), nil
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	return q.value.UnmarshalJSON(data)
}
