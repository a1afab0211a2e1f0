package gap

import (
	"math"
	"testing"
)

func row(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}
	return m
}

func TestParseSnapshot_PayloadShapes(t *testing.T) {
	want := row("symbol", "RELIANCE", "prev_close", 100.0, "open", 102.0, "qty", 500.0)
	tests := []struct {
		name    string
		payload any
	}{
		{"data key", map[string]any{"data": []any{want}}},
		{"result key", map[string]any{"result": []any{want}}},
		{"other list-valued key", map[string]any{"rows": []any{want}}},
		{"bare list", []any{want}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSnapshot(tt.payload)
			if len(got) != 1 {
				t.Fatalf("expected 1 candidate, got %d", len(got))
			}
			c := got[0]
			if c.Symbol != "RELIANCE" || c.PrevClose != 100 || c.PreOpen != 102 || c.Qty != 500 {
				t.Errorf("unexpected candidate: %+v", c)
			}
			if math.Abs(c.GapPct-2.0) > 1e-9 {
				t.Errorf("expected gap +2%%, got %v", c.GapPct)
			}
			if !c.HasQty {
				t.Error("snapshot rows always carry a quantity")
			}
		})
	}
}

func TestParseSnapshot_FieldSynonyms(t *testing.T) {
	payload := []any{
		row("scrip", "TCS", "prevClose", 200.0, "preopen_price", 190.0, "tradedQty", 100.0),
		row("name", "INFY", "previousClose", 50.0, "preopen", 55.0, "quantity", 10.0),
	}
	got := ParseSnapshot(payload)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].Symbol != "TCS" || math.Abs(got[0].GapPct+5.0) > 1e-9 {
		t.Errorf("unexpected first candidate: %+v", got[0])
	}
	if got[1].Symbol != "INFY" || math.Abs(got[1].GapPct-10.0) > 1e-9 {
		t.Errorf("unexpected second candidate: %+v", got[1])
	}
}

func TestParseSnapshot_StringNumbers(t *testing.T) {
	got := ParseSnapshot([]any{row("symbol", "SBIN", "prev_close", "100.5", "open", "101.5", "qty", "250")})
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].PrevClose != 100.5 || got[0].Qty != 250 {
		t.Errorf("string numerics not parsed: %+v", got[0])
	}
}

func TestParseSnapshot_MalformedRowsDropped(t *testing.T) {
	payload := []any{
		row("prev_close", 100.0, "open", 102.0),                      // no resolvable symbol
		row("symbol", "BAD", "prev_close", "n/a"),                    // unparseable numeric
		row("symbol", "WORSE", "prev_close", []any{1.0}),             // unsupported type
		row("symbol", "GOOD", "prev_close", 100.0, "open", 103.0),    // survives
		"not even a row",                                             // ignored entirely
	}
	got := ParseSnapshot(payload)
	if len(got) != 1 || got[0].Symbol != "GOOD" {
		t.Errorf("expected only the well-formed row, got %+v", got)
	}
}

func TestParseSnapshot_Defaults(t *testing.T) {
	// No open: preopen defaults to prev close, gap 0. No qty: quantity 0.
	got := ParseSnapshot([]any{row("symbol", "ITC", "prev_close", 100.0)})
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	c := got[0]
	if c.PreOpen != 100 || c.GapPct != 0 || c.Qty != 0 {
		t.Errorf("defaults not applied: %+v", c)
	}
}

func TestParseSnapshot_ZeroPrevCloseNoDivide(t *testing.T) {
	got := ParseSnapshot([]any{row("symbol", "NEWLIST", "open", 50.0)})
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].GapPct != 0 {
		t.Errorf("zero prev close must give gap 0, got %v", got[0].GapPct)
	}
}

func TestParseSnapshot_EmptyAndUnknown(t *testing.T) {
	if got := ParseSnapshot(nil); got != nil {
		t.Errorf("expected nil for nil payload, got %v", got)
	}
	if got := ParseSnapshot("garbage"); got != nil {
		t.Errorf("expected nil for unusable payload, got %v", got)
	}
	if got := ParseSnapshot(map[string]any{"data": "not a list"}); got != nil {
		t.Errorf("expected nil when no list value exists, got %v", got)
	}
}
