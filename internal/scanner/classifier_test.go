package scanner

import (
	"testing"

	"PreMarketScout/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		snap       model.IndicatorSnapshot
		wantScore  int
		wantSignal model.Signal
	}{
		{
			name:       "all three conditions",
			snap:       model.IndicatorSnapshot{RSI: 60, EMAFast: 105, EMASlow: 100, ADX: 30},
			wantScore:  3,
			wantSignal: model.SignalBuy,
		},
		{
			// Two conditions without RSI momentum stay WATCH, never BUY.
			name:       "bullish EMA and strong trend without momentum",
			snap:       model.IndicatorSnapshot{RSI: 40, EMAFast: 105, EMASlow: 100, ADX: 30},
			wantScore:  2,
			wantSignal: model.SignalWatch,
		},
		{
			name:       "nothing fires",
			snap:       model.IndicatorSnapshot{RSI: 45, EMAFast: 95, EMASlow: 100, ADX: 10},
			wantScore:  0,
			wantSignal: model.SignalSkip,
		},
		{
			name:       "momentum and strong trend without EMA alignment",
			snap:       model.IndicatorSnapshot{RSI: 60, EMAFast: 95, EMASlow: 100, ADX: 30},
			wantScore:  2,
			wantSignal: model.SignalBuy,
		},
		{
			name:       "single condition",
			snap:       model.IndicatorSnapshot{RSI: 60, EMAFast: 95, EMASlow: 100, ADX: 10},
			wantScore:  1,
			wantSignal: model.SignalSkip,
		},
		{
			name:       "boundary values do not fire",
			snap:       model.IndicatorSnapshot{RSI: 50, EMAFast: 100, EMASlow: 100, ADX: 25},
			wantScore:  0,
			wantSignal: model.SignalSkip,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(&tt.snap)
			if got.Score != tt.wantScore {
				t.Errorf("score: got %d, want %d", got.Score, tt.wantScore)
			}
			if got.Signal != tt.wantSignal {
				t.Errorf("signal: got %s, want %s", got.Signal, tt.wantSignal)
			}
		})
	}
}

func TestClassify_Pure(t *testing.T) {
	snap := model.IndicatorSnapshot{RSI: 60, EMAFast: 105, EMASlow: 100, ADX: 30}
	first := Classify(&snap)
	second := Classify(&snap)
	if first != second {
		t.Errorf("identical snapshots must classify identically: %+v vs %+v", first, second)
	}
}
