package scanner

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"PreMarketScout/internal/collector"
	"PreMarketScout/internal/model"
)

// Scanner runs the indicator engine and classifier over an instrument pool.
type Scanner struct {
	Fetcher     collector.Fetcher
	HistoryDays int
}

// NewScanner creates a Scanner fetching `historyDays` of history per symbol.
func NewScanner(fetcher collector.Fetcher, historyDays int) *Scanner {
	return &Scanner{Fetcher: fetcher, HistoryDays: historyDays}
}

// Scan evaluates every symbol in order. Per-instrument failures are recorded
// and skipped; the batch never aborts. A report with zero results is a valid
// outcome.
func (s *Scanner) Scan(ctx context.Context, symbols []string) *model.ScanReport {
	report := &model.ScanReport{}
	for _, sym := range symbols {
		res, err := s.scanOne(ctx, sym)
		if err != nil {
			log.Debug().Str("symbol", sym).Err(err).Msg("instrument skipped")
			report.Failures = append(report.Failures, model.ScanFailure{Symbol: sym, Reason: err})
			continue
		}
		switch res.Signal {
		case model.SignalBuy:
			report.Buy = append(report.Buy, res)
		case model.SignalWatch:
			report.Watch = append(report.Watch, res)
		default:
			report.Skip = append(report.Skip, res)
		}
	}

	// Stable sorts keep input order on ties.
	sort.SliceStable(report.Buy, func(i, j int) bool {
		return report.Buy[i].RSI > report.Buy[j].RSI
	})
	sort.SliceStable(report.Watch, func(i, j int) bool {
		return report.Watch[i].SignalScore > report.Watch[j].SignalScore
	})
	return report
}

func (s *Scanner) scanOne(ctx context.Context, symbol string) (model.SignalResult, error) {
	bars, err := s.Fetcher.FetchDailyBars(ctx, symbol, s.HistoryDays)
	if err != nil {
		return model.SignalResult{}, fmt.Errorf("fetch daily bars: %w", err)
	}
	snap, err := ComputeSnapshot(bars)
	if err != nil {
		return model.SignalResult{}, err
	}
	c := Classify(snap)

	latest := bars[len(bars)-1]
	return model.SignalResult{
		Symbol:            symbol,
		CurrentPrice:      latest.Close,
		OpenPrice:         latest.Open,
		High:              latest.High,
		Low:               latest.Low,
		IndicatorSnapshot: *snap,
		IsUptrend:         c.IsUptrend,
		EMABullish:        c.EMABullish,
		StrongTrend:       c.StrongTrend,
		Signal:            c.Signal,
		SignalScore:       c.Score,
	}, nil
}
