package model

// Signal is the discrete per-instrument trading signal.
type Signal string

const (
	SignalBuy   Signal = "BUY"
	SignalWatch Signal = "WATCH"
	SignalSkip  Signal = "SKIP"
)

// SignalResult is the outcome of scanning one instrument. It is a value
// object scoped to a single run.
type SignalResult struct {
	Symbol       string
	CurrentPrice float64
	OpenPrice    float64
	High         float64
	Low          float64
	IndicatorSnapshot
	IsUptrend   bool
	EMABullish  bool
	StrongTrend bool
	Signal      Signal
	SignalScore int
}

// ScanFailure records an instrument dropped from a scan and the reason.
type ScanFailure struct {
	Symbol string
	Reason error
}

// ScanReport partitions the successful results of one scan by signal.
// Buy is ordered by RSI descending, Watch by signal score descending,
// Skip and Failures keep input order.
type ScanReport struct {
	Buy      []SignalResult
	Watch    []SignalResult
	Skip     []SignalResult
	Failures []ScanFailure
}
