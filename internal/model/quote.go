package model

// IndexRef names a reference index and its provider symbol.
type IndexRef struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

// ReferenceQuote is a two-session quote for a reference index. When only one
// session of history is available LastClose degrades to the latest close and
// the change is still considered known (it is zero).
type ReferenceQuote struct {
	Name      string
	Symbol    string
	LastClose float64
	Latest    float64
	PctChange float64
	HasChange bool // false when no percentage change could be computed
}

// ScrapedValue is an informational index-like value pulled from a page
// scrape. It contributes a detail line to the bias report but no score.
type ScrapedValue struct {
	Name  string
	Value float64
}

// BiasLabel is the three-state summary of the session bias score.
type BiasLabel string

const (
	BiasBullish BiasLabel = "BULLISH"
	BiasNeutral BiasLabel = "NEUTRAL"
	BiasBearish BiasLabel = "BEARISH"
)

// BiasResult is the composite cross-market bias for one session.
type BiasResult struct {
	Score   float64
	Label   BiasLabel
	Details []string // one human-readable fact per contributing quote, in evaluation order
}
