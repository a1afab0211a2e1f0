package calculator

import (
	"errors"

	"PreMarketScout/internal/model"
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// CalculateEMASeries computes the exponential moving average with smoothing
// factor 2/(period+1), seeded with the simple average of the first `period`
// closes. It produces one value per bar from index period-1 onward.
func CalculateEMASeries(bars []model.OHLCV, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(bars) < period {
		return nil, errors.New("not enough data for EMA calculation")
	}
	closes := extractCloses(bars)
	seed, err := CalculateSMA(closes[:period], period)
	if err != nil {
		return nil, err
	}
	multiplier := 2.0 / float64(period+1)
	series := make([]float64, 0, len(closes)-period+1)
	ema := seed
	series = append(series, ema)
	for i := period; i < len(closes); i++ {
		ema = (closes[i]-ema)*multiplier + ema
		series = append(series, ema)
	}
	return series, nil
}

// CalculateEMA returns the EMA value at the final bar.
func CalculateEMA(bars []model.OHLCV, period int) (float64, error) {
	series, err := CalculateEMASeries(bars, period)
	if err != nil {
		return 0, err
	}
	return series[len(series)-1], nil
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
