package model

// GapCandidate is one pre-open watchlist row, built either from a snapshot
// row or from the overnight-gap fallback. Ranked and truncated to top-N,
// then discarded after display.
type GapCandidate struct {
	Symbol    string
	PrevClose float64
	PreOpen   float64
	GapPct    float64
	Qty       float64
	HasQty    bool // fallback rows carry no traded quantity
	Score     float64
}
