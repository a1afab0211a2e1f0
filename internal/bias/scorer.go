// Package bias combines cross-market index moves into one signed score and a
// three-state session label.
package bias

import (
	"fmt"

	"PreMarketScout/internal/model"
)

const (
	primaryWeight   = 1.0
	secondaryWeight = 0.5

	volSpikePct     = 3.0  // risk-off above this
	volCalmPct      = -2.0 // risk calming below this
	volSpikePenalty = -1.5
	volCalmBonus    = 0.5

	bullishAbove = 1.0
	bearishBelow = -1.0
)

// Score sums the independent contributions of primary and secondary market
// quotes plus the volatility index. The auxiliary scraped value adds a detail
// line but carries no score weight. Quotes without a computable percentage
// change are skipped entirely. Details keep evaluation order: primary,
// secondary, auxiliary, volatility.
func Score(primary, secondary []model.ReferenceQuote, aux *model.ScrapedValue, volatility *model.ReferenceQuote) model.BiasResult {
	score := 0.0
	var details []string

	score += sumQuotes(primary, primaryWeight, &details)
	score += sumQuotes(secondary, secondaryWeight, &details)

	if aux != nil {
		// Informational only: no robust baseline to score against.
		details = append(details, fmt.Sprintf("%s ~ %.0f", aux.Name, aux.Value))
	}

	if volatility != nil && volatility.HasChange {
		switch {
		case volatility.PctChange > volSpikePct:
			score += volSpikePenalty
			details = append(details, fmt.Sprintf("%s up %.2f%% (risk-off)", volatility.Name, volatility.PctChange))
		case volatility.PctChange < volCalmPct:
			score += volCalmBonus
			details = append(details, fmt.Sprintf("%s down %.2f%% (calmer)", volatility.Name, volatility.PctChange))
		}
	}

	return model.BiasResult{Score: score, Label: labelFor(score), Details: details}
}

func sumQuotes(quotes []model.ReferenceQuote, weight float64, details *[]string) float64 {
	score := 0.0
	for _, q := range quotes {
		if !q.HasChange {
			continue
		}
		if q.PctChange > 0 {
			score += weight
			*details = append(*details, fmt.Sprintf("%s up %.2f%%", q.Name, q.PctChange))
		} else {
			score -= weight
			*details = append(*details, fmt.Sprintf("%s down %.2f%%", q.Name, q.PctChange))
		}
	}
	return score
}

// labelFor uses strict inequalities: a score of exactly ±1.0 is NEUTRAL.
func labelFor(score float64) model.BiasLabel {
	switch {
	case score > bullishAbove:
		return model.BiasBullish
	case score < bearishBelow:
		return model.BiasBearish
	default:
		return model.BiasNeutral
	}
}
