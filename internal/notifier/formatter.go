package notifier

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"PreMarketScout/internal/model"
)

// FormatScanReport renders the partitioned scan results as plain text.
func FormatScanReport(report *model.ScanReport) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Scan Time: %s\n", time.Now().Format("2006-01-02 15:04:05")))

	if len(report.Buy) > 0 {
		b.WriteString("\nBUY SIGNALS\n")
		w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Ticker\tPrice\tChange%\tRSI\tADX\tEMA\tVolume\tScore")
		for _, r := range report.Buy {
			fmt.Fprintf(w, "%s\t%.2f\t%+.2f%%\t%.1f\t%.1f\t%s\t%.2fx\t%d\n",
				r.Symbol, r.CurrentPrice, r.PriceChangePct, r.RSI, r.ADX,
				emaLabel(r.EMABullish), r.VolumeRatio, r.SignalScore)
		}
		w.Flush()
	}

	if len(report.Watch) > 0 {
		b.WriteString("\nWATCH LIST\n")
		w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Ticker\tPrice\tRSI\tADX\tEMA\tScore")
		for _, r := range report.Watch {
			fmt.Fprintf(w, "%s\t%.2f\t%.1f\t%.1f\t%s\t%d\n",
				r.Symbol, r.CurrentPrice, r.RSI, r.ADX, emaLabel(r.EMABullish), r.SignalScore)
		}
		w.Flush()
	}

	if len(report.Buy) == 0 && len(report.Watch) == 0 {
		b.WriteString("\nNo trading candidates found.\n")
	}
	if len(report.Failures) > 0 {
		b.WriteString(fmt.Sprintf("\n(%d instruments skipped)\n", len(report.Failures)))
	}
	return b.String()
}

// FormatPreMarketReport renders the session bias and the ranked gap
// watchlist as plain text.
func FormatPreMarketReport(result *model.BiasResult, watchlist []model.GapCandidate) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Bias score: %.1f => %s\n", result.Score, result.Label))
	if len(result.Details) > 0 {
		b.WriteString("Details: " + strings.Join(result.Details, "; ") + "\n")
	}

	b.WriteString("\n--- Watchlist (Top candidates) ---\n")
	if len(watchlist) == 0 {
		b.WriteString("No pre-open candidates found. Consider running again closer to the open.\n")
		return b.String()
	}
	for i, w := range watchlist {
		direction := "FLAT"
		if w.GapPct > 0 {
			direction = "UP"
		} else if w.GapPct < 0 {
			direction = "DOWN"
		}
		qty := ""
		if w.HasQty && w.Qty > 0 {
			qty = fmt.Sprintf(", qty=%d", int64(w.Qty))
		}
		b.WriteString(fmt.Sprintf("%d. %s | gap=%.2f%% | preopen=%.2f | prev=%.2f%s | score=%.3f | dir=%s\n",
			i+1, w.Symbol, w.GapPct, w.PreOpen, w.PrevClose, qty, w.Score, direction))
	}
	return b.String()
}

func emaLabel(bullish bool) string {
	if bullish {
		return "Bull"
	}
	return "Bear"
}
