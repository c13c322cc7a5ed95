package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"StockScreener/internal/model"
)

// csvHeader is the fixed column order of the result table.
var csvHeader = []string{
	"Ticker", "Price", "EMA50", "Price>EMA50", "RSI14", "RSI_50_70",
	"ADX", "ADX>25", "Volume", "VolAvg20", "VolumeSpike", "AllCriteria",
}

// WriteCSV writes the result table to path. Monetary and indicator values
// are rounded to two decimal places for display; volume fields are truncated
// to integers. The comparisons behind the boolean columns always ran at full
// precision.
func WriteCSV(path string, results []model.ScreenResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range results {
		record := []string{
			r.Ticker,
			round2(r.Price),
			round2(r.EMA50),
			strconv.FormatBool(r.AboveEMA50),
			round2(r.RSI14),
			strconv.FormatBool(r.RSIInRange),
			round2(r.ADX14),
			strconv.FormatBool(r.StrongTrend),
			strconv.FormatInt(r.Volume, 10),
			strconv.FormatInt(int64(r.VolumeAvg20), 10),
			strconv.FormatBool(r.VolumeSpike),
			strconv.FormatBool(r.AllCriteria),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row for %s: %w", r.Ticker, err)
		}
	}
	w.Flush()
	return w.Error()
}

// round2 renders a value rounded to two decimal places.
func round2(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}
