package collector

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"StockScreener/internal/calculator"
	"StockScreener/internal/model"
)

// Indicator periods and the minimum history the screen needs. These are
// fixed properties of the screen, not configuration.
const (
	emaPeriod    = 50
	rsiPeriod    = 14
	adxPeriod    = 14
	volumePeriod = 20
	minBars      = 50
)

// Skip reasons callers can branch on.
var (
	ErrNoData       = errors.New("no bars returned")
	ErrShortHistory = errors.New("insufficient history")
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.Bar
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(_ context.Context, _ string, period string) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return generateMockBars(100, periodBars(period)), nil
}

// periodBars maps a period descriptor to a trading-day count.
func periodBars(period string) int {
	switch period {
	case "1mo":
		return 22
	case "6mo":
		return 130
	case "1y":
		return 252
	case "2y":
		return 504
	default: // "3mo"
		return 66
	}
}

func generateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches history for one symbol and computes its indicator
// snapshot.
type Collector struct {
	Fetcher Fetcher
	Log     *logrus.Logger
}

// New creates a new Collector.
func New(fetcher Fetcher, log *logrus.Logger) *Collector {
	return &Collector{Fetcher: fetcher, Log: log}
}

// Snapshot fetches bars for the symbol and computes the latest indicator
// values. Evaluation needs at least minBars bars; shorter histories return
// ErrShortHistory and empty fetches return ErrNoData.
func (c *Collector) Snapshot(ctx context.Context, symbol, period string) (*model.TickerIndicators, error) {
	bars, err := c.Fetcher.FetchHistory(ctx, symbol, period)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, ErrNoData
	}
	if len(bars) < minBars {
		return nil, fmt.Errorf("%w: got %d bars, need %d", ErrShortHistory, len(bars), minBars)
	}
	c.Log.WithFields(logrus.Fields{"symbol": symbol, "bars": len(bars)}).Debug("history fetched")

	closes := calculator.Closes(bars)
	ema, err := calculator.CalculateEMA(closes, emaPeriod)
	if err != nil {
		return nil, fmt.Errorf("ema: %w", err)
	}
	rsi, err := calculator.CalculateRSI(closes, rsiPeriod)
	if err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}
	adx, err := calculator.CalculateADX(calculator.Highs(bars), calculator.Lows(bars), closes, adxPeriod)
	if err != nil {
		return nil, fmt.Errorf("adx: %w", err)
	}
	volAvg, err := calculator.CalculateSMA(calculator.Volumes(bars), volumePeriod)
	if err != nil {
		return nil, fmt.Errorf("volume average: %w", err)
	}

	last := len(bars) - 1
	return &model.TickerIndicators{
		Price:     closes[last],
		EMA50:     ema[last],
		RSI14:     latestOr(rsi, 50.0),
		ADX14:     latestOr(adx, 0.0),
		Volume:    bars[last].Volume,
		VolumeAvg: latestOr(volAvg, 0.0),
	}, nil
}

// latestOr returns the last value of the series, or the fallback when that
// value is not finite.
func latestOr(series []float64, fallback float64) float64 {
	if len(series) == 0 {
		return fallback
	}
	v := series[len(series)-1]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
