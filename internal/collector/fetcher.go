package collector

import (
	"context"

	"StockScreener/internal/model"
)

// Fetcher defines the interface for fetching historical market data.
// The period descriptor is passed through opaquely ("1mo", "3mo", "1y", ...).
type Fetcher interface {
	FetchHistory(ctx context.Context, symbol, period string) ([]model.Bar, error)
	Name() string
}
