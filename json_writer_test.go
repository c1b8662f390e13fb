package stockfolio

import "testing"

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keys keep insertion order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("b", 2)
		w.Append("a", 1)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"b":2,"a":1}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("raw fragment", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 1)
		w.AppendRaw("nested", []byte(`{"x":[1,2]}`))
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":1,"nested":{"x":[1,2]}}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 0) // a zero value is actually added
		w.Optional("b", "")
		w.Optional("c", 0)
		w.Optional("d", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":0,"d":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("unmarshalable value poisons the writer", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", func() {})
		w.Append("b", 2)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("expected an error for an unmarshalable value")
		}
	})
}
