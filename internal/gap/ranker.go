package gap

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"PreMarketScout/internal/calculator"
	"PreMarketScout/internal/model"
)

const (
	gapWeight = 0.7
	qtyWeight = 0.3

	// DefaultTopN is the watchlist size when none is configured.
	DefaultTopN = 6
)

// HistoryFetcher provides the recent daily bars the fallback path needs.
type HistoryFetcher interface {
	FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.OHLCV, error)
}

// FallbackCandidates computes overnight gaps for a fixed instrument pool.
// It is used only when the pre-open snapshot yields zero usable rows. Each
// symbol needs the prior two sessions' closes; symbols with less history or
// failed fetches are skipped. Fallback rows carry no traded quantity.
func FallbackCandidates(ctx context.Context, fetcher HistoryFetcher, pool []string) []model.GapCandidate {
	var candidates []model.GapCandidate
	for _, sym := range pool {
		bars, err := fetcher.FetchDailyBars(ctx, sym, 2)
		if err != nil {
			log.Debug().Str("symbol", sym).Err(err).Msg("fallback gap skipped")
			continue
		}
		if len(bars) < 2 {
			continue
		}
		prev := bars[len(bars)-2].Close
		latest := bars[len(bars)-1].Close
		gapPct := 0.0
		if prev > 0 {
			if pct, err := calculator.PctChange(latest, prev); err == nil {
				gapPct = pct
			}
		}
		candidates = append(candidates, model.GapCandidate{
			Symbol:    strings.TrimSuffix(sym, ".NS"),
			PrevClose: prev,
			PreOpen:   latest,
			GapPct:    gapPct,
		})
	}
	return candidates
}

// Rank scores every candidate as 0.7×|gap| + 0.3×normalized quantity and
// returns the top n by score, descending, stable on ties. Quantity is
// min-max normalized across the candidate set; when no candidate carries a
// quantity the term is 0 for every row. An empty input yields an empty list.
func Rank(candidates []model.GapCandidate, n int) []model.GapCandidate {
	if len(candidates) == 0 {
		return nil
	}
	if n <= 0 {
		n = DefaultTopN
	}

	ranked := make([]model.GapCandidate, len(candidates))
	copy(ranked, candidates)

	minQty, maxQty := math.Inf(1), math.Inf(-1)
	anyQty := false
	for _, c := range ranked {
		if !c.HasQty {
			continue
		}
		anyQty = true
		if c.Qty < minQty {
			minQty = c.Qty
		}
		if c.Qty > maxQty {
			maxQty = c.Qty
		}
	}

	for i := range ranked {
		qtyNorm := 0.0
		if anyQty && ranked[i].HasQty {
			// The epsilon keeps a single-quantity set from dividing by zero.
			qtyNorm = (ranked[i].Qty - minQty) / (maxQty - minQty + 1e-9)
		}
		ranked[i].Score = gapWeight*math.Abs(ranked[i].GapPct) + qtyWeight*qtyNorm
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
