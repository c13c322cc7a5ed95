package screener

import "StockScreener/internal/model"

// Screening thresholds. All comparisons run at full precision; rounding
// happens only when results are rendered.
const (
	rsiLower        = 50.0
	rsiUpper        = 70.0
	adxMin          = 25.0
	volumeSpikeMult = 1.5
)

// Evaluate applies the four screening criteria to the latest indicator
// values and returns the result record for the ticker. The volume-spike
// criterion is false whenever the volume average is not positive, so a
// missing baseline can never produce a false positive.
func Evaluate(ticker string, ind *model.TickerIndicators) model.ScreenResult {
	r := model.ScreenResult{
		Ticker:      ticker,
		Price:       ind.Price,
		EMA50:       ind.EMA50,
		RSI14:       ind.RSI14,
		ADX14:       ind.ADX14,
		Volume:      ind.Volume,
		VolumeAvg20: ind.VolumeAvg,
	}
	r.AboveEMA50 = ind.Price > ind.EMA50
	r.RSIInRange = ind.RSI14 >= rsiLower && ind.RSI14 <= rsiUpper
	r.StrongTrend = ind.ADX14 > adxMin
	if ind.VolumeAvg > 0 {
		r.VolumeSpike = float64(ind.Volume) >= volumeSpikeMult*ind.VolumeAvg
	}
	r.AllCriteria = r.AboveEMA50 && r.RSIInRange && r.StrongTrend && r.VolumeSpike
	return r
}
