package screener

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"StockScreener/internal/model"
)

// Defaults for a screening run.
const (
	DefaultPeriod  = "3mo"
	DefaultWorkers = 5
	DefaultSuffix  = ".NS"
)

// Source produces the per-ticker indicator snapshot.
type Source interface {
	Snapshot(ctx context.Context, symbol, period string) (*model.TickerIndicators, error)
}

// Options control a screening run.
type Options struct {
	Period       string
	Workers      int
	MarketSuffix string
}

// Screener drives concurrent evaluation of many tickers against the
// screening criteria.
type Screener struct {
	source Source
	log    *logrus.Logger
	opts   Options
}

// New creates a Screener, filling unset options with the defaults.
func New(source Source, log *logrus.Logger, opts Options) *Screener {
	if opts.Period == "" {
		opts.Period = DefaultPeriod
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	return &Screener{source: source, log: log, opts: opts}
}

// Screen evaluates all tickers with bounded concurrency and returns the full
// result table plus the subset passing every criterion. A failure in one
// ticker's pipeline is logged and skipped, never fatal to the batch. Rows
// appear in completion order, not input order.
func (s *Screener) Screen(ctx context.Context, tickers []string) ([]model.ScreenResult, []model.ScreenResult) {
	s.log.WithFields(logrus.Fields{
		"tickers": len(tickers),
		"period":  s.opts.Period,
		"workers": s.opts.Workers,
	}).Info("screening started")

	results := make(chan model.ScreenResult, len(tickers))
	sem := make(chan struct{}, s.opts.Workers)
	var wg sync.WaitGroup

	for _, ticker := range tickers {
		wg.Add(1)
		go func(ticker string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}

			symbol := s.normalize(ticker)
			ind, err := s.source.Snapshot(ctx, symbol, s.opts.Period)
			if err != nil {
				s.log.WithField("ticker", ticker).Warnf("skipped: %v", err)
				return
			}

			r := Evaluate(ticker, ind)
			if r.AllCriteria {
				s.log.WithFields(logrus.Fields{
					"ticker": ticker,
					"price":  r.Price,
					"rsi":    r.RSI14,
					"adx":    r.ADX14,
				}).Info("all criteria met")
			} else {
				s.log.WithField("ticker", ticker).Debug("partial match")
			}
			results <- r
		}(ticker)
	}
	wg.Wait()
	close(results)

	all := make([]model.ScreenResult, 0, len(tickers))
	var passed []model.ScreenResult
	for r := range results {
		all = append(all, r)
		if r.AllCriteria {
			passed = append(passed, r)
		}
	}

	s.log.WithFields(logrus.Fields{
		"screened": len(all),
		"passed":   len(passed),
	}).Info("screening complete")
	return all, passed
}

// normalize appends the market suffix when the ticker does not already
// carry it.
func (s *Screener) normalize(ticker string) string {
	if s.opts.MarketSuffix == "" || strings.HasSuffix(ticker, s.opts.MarketSuffix) {
		return ticker
	}
	return ticker + s.opts.MarketSuffix
}
