package scanner

import (
	"errors"
	"fmt"

	"PreMarketScout/internal/calculator"
	"PreMarketScout/internal/model"
)

// MinBars is the shortest daily series the engine accepts; anything less
// leaves the EMA(50) warm-up incomplete.
const MinBars = 50

const (
	emaFastPeriod = 20
	emaSlowPeriod = 50
	rsiPeriod     = 14
	adxPeriod     = 14
	volumeWindow  = 20
)

var (
	// ErrDataUnavailable indicates the provider returned an empty series.
	ErrDataUnavailable = errors.New("no price data available")
	// ErrInsufficientHistory indicates fewer than MinBars valid bars.
	ErrInsufficientHistory = errors.New("insufficient price history")
)

// ComputeSnapshot derives the latest-bar indicator snapshot from a
// chronological daily series. It never fabricates values: short or empty
// series yield an error, not a snapshot.
func ComputeSnapshot(bars []model.OHLCV) (*model.IndicatorSnapshot, error) {
	if len(bars) == 0 {
		return nil, ErrDataUnavailable
	}
	if len(bars) < MinBars {
		return nil, fmt.Errorf("%w: have %d bars, need %d", ErrInsufficientHistory, len(bars), MinBars)
	}

	emaFast, err := calculator.CalculateEMA(bars, emaFastPeriod)
	if err != nil {
		return nil, fmt.Errorf("ema(%d): %w", emaFastPeriod, err)
	}
	emaSlow, err := calculator.CalculateEMA(bars, emaSlowPeriod)
	if err != nil {
		return nil, fmt.Errorf("ema(%d): %w", emaSlowPeriod, err)
	}
	rsi, err := calculator.CalculateRSI(bars, rsiPeriod)
	if err != nil {
		return nil, fmt.Errorf("rsi(%d): %w", rsiPeriod, err)
	}
	adx, err := calculator.CalculateADX(bars, adxPeriod)
	if err != nil {
		return nil, fmt.Errorf("adx(%d): %w", adxPeriod, err)
	}

	latest := bars[len(bars)-1]
	prev := bars[len(bars)-2]
	changePct := 0.0
	if pct, err := calculator.PctChange(latest.Close, prev.Close); err == nil {
		changePct = pct
	}

	return &model.IndicatorSnapshot{
		EMAFast:        emaFast,
		EMASlow:        emaSlow,
		RSI:            rsi,
		ADX:            adx,
		PriceChangePct: changePct,
		VolumeRatio:    calculator.VolumeRatio(bars, volumeWindow),
	}, nil
}
