package model

// TickerIndicators holds the latest computed indicator values for one ticker.
// Non-finite values are substituted with neutral defaults before this struct
// is built, so every field is safe to compare and print.
type TickerIndicators struct {
	Price     float64
	EMA50     float64
	RSI14     float64
	ADX14     float64
	Volume    int64
	VolumeAvg float64
}
