package stockfolio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	freezeClock(t)

	ledger := NewLedger(USD(10000))
	mustBuy(t, ledger, "AAPL", 10, 150)
	mustBuy(t, ledger, "GOOG", 2, 2800)
	if _, err := ledger.Sell("AAPL", Q(3), USD(160)); err != nil {
		t.Fatalf("sell: %v", err)
	}
	if _, err := ledger.Queue(LimitBuy, "MSFT", Q(5), USD(300)); err != nil {
		t.Fatalf("queue: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, ledger); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !ledger.Equal(got) {
		t.Error("decoded ledger differs from the original")
	}
}

func TestSnapshot_Deterministic(t *testing.T) {
	freezeClock(t)

	ledger := NewLedger(USD(5000))
	mustBuy(t, ledger, "ZZZ", 1, 10)
	mustBuy(t, ledger, "AAA", 1, 10)

	var a, b bytes.Buffer
	if err := EncodeSnapshot(&a, ledger); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := EncodeSnapshot(&b, ledger); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if a.String() != b.String() {
		t.Error("two snapshots of the same state differ")
	}

	// holdings come first and are sorted, so snapshots diff cleanly
	doc := a.String()
	if !strings.HasPrefix(doc, "{\n  \"holdings\"") {
		t.Errorf("snapshot does not start with holdings:\n%s", doc)
	}
	if strings.Index(doc, `"AAA"`) > strings.Index(doc, `"ZZZ"`) {
		t.Error("holdings are not sorted by ticker")
	}
}

func TestSnapshot_EmptyLedger(t *testing.T) {
	ledger := NewLedger(USD(10000))

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, ledger); err != nil {
		t.Fatalf("encode: %v", err)
	}
	// empty collections encode as [] and {}, not null
	doc := buf.String()
	if strings.Contains(doc, "null") {
		t.Errorf("snapshot contains null:\n%s", doc)
	}
	got, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !ledger.Equal(got) {
		t.Error("empty ledger does not round-trip")
	}
}

func TestDecodeSnapshot_Corrupt(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"invalid json", `{"holdings":`},
		{"missing cash", `{"holdings":{},"transactions":[],"limit_orders":[]}`},
		{"negative cash", `{"holdings":{},"cash_balance":-1,"transactions":[],"limit_orders":[]}`},
		{"holding not a pair", `{"holdings":{"AAPL":[10]},"cash_balance":100,"transactions":[],"limit_orders":[]}`},
		{"fractional shares", `{"holdings":{"AAPL":[1.5,100]},"cash_balance":100,"transactions":[],"limit_orders":[]}`},
		{"negative shares", `{"holdings":{"AAPL":[-1,100]},"cash_balance":100,"transactions":[],"limit_orders":[]}`},
		{"zero average cost", `{"holdings":{"AAPL":[10,0]},"cash_balance":100,"transactions":[],"limit_orders":[]}`},
		{"bad transaction kind", `{"holdings":{},"cash_balance":100,"transactions":[{"type":"HOLD","ticker":"A","shares":1,"price":1,"time":"2025-01-01T00:00:00Z"}],"limit_orders":[]}`},
		{"bad order kind", `{"holdings":{},"cash_balance":100,"transactions":[],"limit_orders":[{"id":"x","type":"NOPE","ticker":"A","shares":1,"price":1,"time":"2025-01-01T00:00:00Z"}]}`},
		{"order without a type", `{"holdings":{},"cash_balance":100,"transactions":[],"limit_orders":[{"id":"x","ticker":"A","shares":1,"price":1,"time":"2025-01-01T00:00:00Z"}]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSnapshot(strings.NewReader(tc.doc))
			if !errors.Is(err, ErrCorruptState) {
				t.Errorf("err = %v, want ErrCorruptState", err)
			}
		})
	}
}

func TestLoad_FirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")

	ledger, err := Load(path, USD(10000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ledger.Cash().Equal(USD(10000)) {
		t.Errorf("cash = %s, want the starting cash", ledger.Cash())
	}
	if len(ledger.PendingOrders()) != 0 {
		t.Error("fresh ledger has pending orders")
	}
}

func TestLoad_CorruptIsNotEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path, USD(10000))
	if !errors.Is(err, ErrCorruptState) {
		t.Fatalf("err = %v, want ErrCorruptState", err)
	}
}

func TestSaveLoad(t *testing.T) {
	freezeClock(t)
	path := filepath.Join(t.TempDir(), "nested", "portfolio.json")

	ledger := NewLedger(USD(10000))
	mustBuy(t, ledger, "AAPL", 10, 150)
	if err := Save(path, ledger); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path, USD(1))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ledger.Equal(got) {
		t.Error("saved ledger does not load back equal")
	}

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want just the snapshot", len(entries))
	}
}
