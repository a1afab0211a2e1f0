package model

// IndicatorSnapshot holds the computed indicators for the most recent bar of
// a daily series, plus the day-over-day metrics relative to the prior bar.
type IndicatorSnapshot struct {
	EMAFast        float64 // EMA(20)
	EMASlow        float64 // EMA(50)
	RSI            float64
	ADX            float64
	PriceChangePct float64
	VolumeRatio    float64 // latest volume vs trailing 20-bar mean
}
