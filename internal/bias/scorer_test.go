package bias

import (
	"math"
	"strings"
	"testing"

	"PreMarketScout/internal/model"
)

func quote(name string, pct float64) model.ReferenceQuote {
	return model.ReferenceQuote{Name: name, PctChange: pct, HasChange: true}
}

func TestScore_AllPrimariesPositive(t *testing.T) {
	primary := []model.ReferenceQuote{
		quote("S&P500", 0.8), quote("Dow", 0.3), quote("Nasdaq", 1.1),
	}
	vix := quote("India VIX", 0)
	got := Score(primary, nil, nil, &vix)
	if got.Score != 3.0 {
		t.Errorf("expected score 3.0, got %v", got.Score)
	}
	if got.Label != model.BiasBullish {
		t.Errorf("expected BULLISH, got %s", got.Label)
	}
	if len(got.Details) != 3 {
		t.Errorf("expected 3 detail lines, got %d", len(got.Details))
	}
}

func TestScore_VolatilitySpikeFlipsBearish(t *testing.T) {
	// Net-zero primaries plus a +4% volatility spike.
	primary := []model.ReferenceQuote{quote("S&P500", 0.5), quote("Dow", -0.5)}
	vix := quote("India VIX", 4.0)
	got := Score(primary, nil, nil, &vix)
	if got.Score != -1.5 {
		t.Errorf("expected score -1.5, got %v", got.Score)
	}
	if got.Label != model.BiasBearish {
		t.Errorf("expected BEARISH for score -1.5, got %s", got.Label)
	}
}

func TestScore_StrictLabelBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		primary []model.ReferenceQuote
		want    model.BiasLabel
	}{
		{"exactly +1.0", []model.ReferenceQuote{quote("S&P500", 0.5)}, model.BiasNeutral},
		{"exactly -1.0", []model.ReferenceQuote{quote("S&P500", -0.5)}, model.BiasNeutral},
		{"above +1.0", []model.ReferenceQuote{quote("S&P500", 0.5), quote("Dow", 0.5)}, model.BiasBullish},
		{"below -1.0", []model.ReferenceQuote{quote("S&P500", -0.5), quote("Dow", -0.5)}, model.BiasBearish},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.primary, nil, nil, nil)
			if got.Label != tt.want {
				t.Errorf("score %v: expected %s, got %s", got.Score, tt.want, got.Label)
			}
		})
	}
}

func TestScore_SecondaryHalfWeight(t *testing.T) {
	secondary := []model.ReferenceQuote{quote("Nikkei", 1.0), quote("HangSeng", -0.2)}
	got := Score(nil, secondary, nil, nil)
	if got.Score != 0 {
		t.Errorf("expected +0.5-0.5=0, got %v", got.Score)
	}
}

func TestScore_UnavailableQuoteSkipped(t *testing.T) {
	primary := []model.ReferenceQuote{
		quote("S&P500", 0.5),
		{Name: "Dow"}, // no computable change
	}
	got := Score(primary, nil, nil, nil)
	if got.Score != 1.0 {
		t.Errorf("expected unavailable quote to contribute nothing, got %v", got.Score)
	}
	if len(got.Details) != 1 {
		t.Errorf("expected 1 detail line, got %d", len(got.Details))
	}
}

func TestScore_AuxIsInformationalOnly(t *testing.T) {
	aux := &model.ScrapedValue{Name: "GIFT Nifty", Value: 25950}
	got := Score(nil, nil, aux, nil)
	if got.Score != 0 {
		t.Errorf("auxiliary value must not move the score, got %v", got.Score)
	}
	if len(got.Details) != 1 || !strings.Contains(got.Details[0], "GIFT Nifty") {
		t.Errorf("expected an informational detail line, got %v", got.Details)
	}
}

func TestScore_VolatilityCalming(t *testing.T) {
	vix := quote("India VIX", -2.5)
	got := Score(nil, nil, nil, &vix)
	if math.Abs(got.Score-0.5) > 1e-9 {
		t.Errorf("expected +0.5 for calming volatility, got %v", got.Score)
	}
}

func TestScore_DetailOrder(t *testing.T) {
	primary := []model.ReferenceQuote{quote("S&P500", 1.0)}
	secondary := []model.ReferenceQuote{quote("Nikkei", -1.0)}
	aux := &model.ScrapedValue{Name: "GIFT Nifty", Value: 25000}
	vix := quote("India VIX", 5.0)
	got := Score(primary, secondary, aux, &vix)
	want := []string{"S&P500", "Nikkei", "GIFT Nifty", "India VIX"}
	if len(got.Details) != len(want) {
		t.Fatalf("expected %d details, got %d: %v", len(want), len(got.Details), got.Details)
	}
	for i, prefix := range want {
		if !strings.Contains(got.Details[i], prefix) {
			t.Errorf("detail %d should mention %s, got %q", i, prefix, got.Details[i])
		}
	}
}
