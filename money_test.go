package stockfolio

import (
	"encoding/json"
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("repeated cents do not drift", func(t *testing.T) {
		// the classic float trap: 0.1 added ten times
		sum := USD(0)
		for range 10 {
			sum = sum.Add(USD(0.1))
		}
		if !sum.Equal(USD(1)) {
			t.Errorf("sum = %s, want %s", sum, USD(1))
		}
	})

	t.Run("mul and div by quantity", func(t *testing.T) {
		total := USD(150.25).Mul(Q(4))
		if !total.Equal(USD(601)) {
			t.Errorf("total = %s, want %s", total, USD(601))
		}
		per := total.Div(Q(4))
		if !per.Equal(USD(150.25)) {
			t.Errorf("per = %s, want %s", per, USD(150.25))
		}
	})

	t.Run("percent of", func(t *testing.T) {
		if pct := USD(50).PercentOf(USD(200)); !pct.Equal(25) {
			t.Errorf("pct = %s, want 25%%", pct)
		}
	})

	t.Run("comparisons", func(t *testing.T) {
		if !USD(1).LessThan(USD(2)) || USD(2).LessThan(USD(1)) {
			t.Error("LessThan broken")
		}
		if !USD(2).GreaterThanOrEqual(USD(2)) {
			t.Error("GreaterThanOrEqual broken on equality")
		}
		if !USD(-1).IsNegative() || !USD(1).IsPositive() || !USD(0).IsZero() {
			t.Error("sign predicates broken")
		}
	})
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(USD(150.25))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// bare number, no quotes, no currency
	if string(data) != "150.25" {
		t.Errorf("marshal = %s, want 150.25", data)
	}

	var m Money
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !m.Equal(USD(150.25)) || m.Currency() != DefaultCurrency {
		t.Errorf("unmarshal = %s %s", m, m.Currency())
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("123.45", DefaultCurrency)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.Equal(USD(123.45)) {
		t.Errorf("parsed = %s, want %s", m, USD(123.45))
	}
	if _, err := ParseMoney("12x", DefaultCurrency); err == nil {
		t.Error("garbage accepted")
	}
}

func TestParseShares(t *testing.T) {
	testCases := []struct {
		in string
		ok bool
	}{
		{"10", true},
		{"1", true},
		{"0", false},
		{"-3", false},
		{"2.5", false},
		{"ten", false},
	}
	for _, tc := range testCases {
		_, err := ParseShares(tc.in)
		if tc.ok && err != nil {
			t.Errorf("ParseShares(%q): unexpected error %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("ParseShares(%q): accepted", tc.in)
		}
	}
}

func TestTransaction_JSON(t *testing.T) {
	freezeClock(t)

	tx := Transaction{Kind: TxBuy, Ticker: "AAPL", Shares: Q(10), Price: USD(150.25), Time: now()}
	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"BUY","ticker":"AAPL","shares":10,"price":150.25,"time":"2025-06-02T15:04:05Z"}`
	if string(data) != want {
		t.Errorf("marshal = %s\nwant      %s", data, want)
	}

	var got Transaction
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(tx) {
		t.Errorf("round-trip = %+v, want %+v", got, tx)
	}
}

func TestOrder_JSON(t *testing.T) {
	freezeClock(t)

	o := Order{ID: "abc-123", Kind: StopLoss, Ticker: "TSLA", Shares: Q(5), Target: USD(90), Time: now()}
	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"abc-123","type":"STOP_LOSS","ticker":"TSLA","shares":5,"price":90,"time":"2025-06-02T15:04:05Z"}`
	if string(data) != want {
		t.Errorf("marshal = %s\nwant      %s", data, want)
	}

	var got Order
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(o) {
		t.Errorf("round-trip = %+v, want %+v", got, o)
	}

	// a record without a type key must not default to LIMIT_BUY
	untyped := `{"id":"abc-123","ticker":"TSLA","shares":5,"price":90,"time":"2025-06-02T15:04:05Z"}`
	if err := json.Unmarshal([]byte(untyped), &got); err == nil {
		t.Errorf("unmarshal of an untyped order succeeded as %s", got.Kind)
	}
}
