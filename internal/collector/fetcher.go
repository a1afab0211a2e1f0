package collector

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"PreMarketScout/internal/calculator"
	"PreMarketScout/internal/model"
)

// ErrNoData is returned when a provider answers but carries no usable bars.
var ErrNoData = errors.New("no price data returned")

// Fetcher defines the interface for fetching daily market data.
type Fetcher interface {
	FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.OHLCV, error)
	Name() string
}

// FetchQuote builds a two-session reference quote for a named index. With a
// single session of history the last close degrades to that session's close.
func FetchQuote(ctx context.Context, f Fetcher, name, symbol string) (model.ReferenceQuote, error) {
	bars, err := f.FetchDailyBars(ctx, symbol, 2)
	if err != nil {
		return model.ReferenceQuote{}, fmt.Errorf("fetch quote %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return model.ReferenceQuote{}, fmt.Errorf("fetch quote %s: %w", symbol, ErrNoData)
	}
	latest := bars[len(bars)-1].Close
	lastClose := latest
	if len(bars) >= 2 {
		lastClose = bars[len(bars)-2].Close
	}
	q := model.ReferenceQuote{Name: name, Symbol: symbol, LastClose: lastClose, Latest: latest}
	if pct, err := calculator.PctChange(latest, lastClose); err == nil {
		q.PctChange = pct
		q.HasChange = true
	}
	return q, nil
}

// FetchQuotes fetches one quote per reference index, preserving the given
// order. Failed fetches are logged and omitted rather than aborting the run.
func FetchQuotes(ctx context.Context, f Fetcher, refs []model.IndexRef) []model.ReferenceQuote {
	quotes := make([]model.ReferenceQuote, 0, len(refs))
	for _, ref := range refs {
		q, err := FetchQuote(ctx, f, ref.Name, ref.Symbol)
		if err != nil {
			log.Warn().Str("index", ref.Name).Err(err).Msg("reference quote unavailable")
			continue
		}
		quotes = append(quotes, q)
	}
	return quotes
}
