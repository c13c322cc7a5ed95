package model

// ScreenResult is the evaluated outcome for one ticker. Ticker keeps the
// identifier as the caller supplied it, without the market suffix used for
// fetching.
type ScreenResult struct {
	Ticker      string
	Price       float64
	EMA50       float64
	AboveEMA50  bool
	RSI14       float64
	RSIInRange  bool
	ADX14       float64
	StrongTrend bool
	Volume      int64
	VolumeAvg20 float64
	VolumeSpike bool
	AllCriteria bool
}
