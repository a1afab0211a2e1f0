package collector

import (
	"context"
	"fmt"

	"PreMarketScout/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars map[string][]model.OHLCV
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, symbol string, days int) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	bars, ok := m.Bars[symbol]
	if !ok {
		return nil, fmt.Errorf("no data for %s: %w", symbol, ErrNoData)
	}
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}
