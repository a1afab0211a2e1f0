package calculator

import (
	"errors"

	"PreMarketScout/internal/model"
)

// PctChange returns the percentage change from prev to curr.
func PctChange(curr, prev float64) (float64, error) {
	if prev == 0 {
		return 0, errors.New("zero baseline for percent change")
	}
	return (curr - prev) / prev * 100.0, nil
}

// VolumeRatio compares the latest volume with the mean volume of the
// trailing `window` bars, current bar included. Returns 0 when the mean is 0.
func VolumeRatio(bars []model.OHLCV, window int) float64 {
	if len(bars) == 0 || window <= 0 {
		return 0
	}
	start := len(bars) - window
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for _, b := range bars[start:] {
		sum += b.Volume
	}
	mean := sum / float64(len(bars)-start)
	if mean == 0 {
		return 0
	}
	return bars[len(bars)-1].Volume / mean
}
