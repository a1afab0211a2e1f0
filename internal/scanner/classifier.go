package scanner

import "PreMarketScout/internal/model"

const (
	uptrendRSI     = 50.0
	strongTrendADX = 25.0
	watchThreshold = 2
)

// Classification is the discrete signal derived from one snapshot.
type Classification struct {
	IsUptrend   bool
	EMABullish  bool
	StrongTrend bool
	Score       int
	Signal      model.Signal
}

// Classify maps a latest-bar snapshot to a trading signal. Any two of the
// three conditions put an instrument on the watch list; a BUY additionally
// requires RSI momentum, so EMA alignment plus trend strength alone stays
// WATCH.
func Classify(snap *model.IndicatorSnapshot) Classification {
	c := Classification{
		IsUptrend:   snap.RSI > uptrendRSI,
		EMABullish:  snap.EMAFast > snap.EMASlow,
		StrongTrend: snap.ADX > strongTrendADX,
	}
	for _, cond := range []bool{c.IsUptrend, c.EMABullish, c.StrongTrend} {
		if cond {
			c.Score++
		}
	}
	switch {
	case c.Score >= watchThreshold && c.IsUptrend:
		c.Signal = model.SignalBuy
	case c.Score >= watchThreshold:
		c.Signal = model.SignalWatch
	default:
		c.Signal = model.SignalSkip
	}
	return c
}
