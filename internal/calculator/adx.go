package calculator

import (
	"errors"
	"math"

	"PreMarketScout/internal/model"
)

// CalculateADX computes Wilder's average directional index over the given
// period. Directional movement and true range are Wilder-smoothed into the
// ±DI lines, and the resulting DX values are Wilder-smoothed again into the
// ADX. The result is a direction-agnostic trend strength in [0,100].
// Requires at least 2*period bars.
func CalculateADX(bars []model.OHLCV, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(bars) < 2*period {
		return 0, errors.New("not enough data for ADX calculation")
	}

	n := len(bars) - 1 // bar-to-bar transitions
	trs := make([]float64, n)
	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	for i := 1; i < len(bars); i++ {
		cur, prev := bars[i], bars[i-1]
		tr := cur.High - cur.Low
		if v := math.Abs(cur.High - prev.Close); v > tr {
			tr = v
		}
		if v := math.Abs(cur.Low - prev.Close); v > tr {
			tr = v
		}
		trs[i-1] = tr

		up := cur.High - prev.High
		down := prev.Low - cur.Low
		if up > down && up > 0 {
			plusDM[i-1] = up
		}
		if down > up && down > 0 {
			minusDM[i-1] = down
		}
	}

	// Seed the smoothed sums with the first `period` values, then apply
	// Wilder's running smoothing: s = s - s/period + x.
	var smTR, smPlus, smMinus float64
	for i := 0; i < period; i++ {
		smTR += trs[i]
		smPlus += plusDM[i]
		smMinus += minusDM[i]
	}

	dx := func() float64 {
		if smTR == 0 {
			return 0
		}
		plusDI := 100 * smPlus / smTR
		minusDI := 100 * smMinus / smTR
		if plusDI+minusDI == 0 {
			return 0
		}
		return 100 * math.Abs(plusDI-minusDI) / (plusDI + minusDI)
	}

	adx := dx()
	dxSum := adx
	dxCount := 1
	for i := period; i < n; i++ {
		smTR = smTR - smTR/float64(period) + trs[i]
		smPlus = smPlus - smPlus/float64(period) + plusDM[i]
		smMinus = smMinus - smMinus/float64(period) + minusDM[i]
		d := dx()
		if dxCount < period {
			dxSum += d
			dxCount++
			adx = dxSum / float64(dxCount)
		} else {
			adx = (adx*float64(period-1) + d) / float64(period)
		}
	}
	return adx, nil
}
