package notifier

import (
	"fmt"
	"strings"
	"time"

	"StockScreener/internal/model"
)

// FormatScreenReport formats one screening run into a Telegram message.
func FormatScreenReport(period string, all, passed []model.ScreenResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>Stock Screener</b> | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Screened %d tickers over %s, %d passed all criteria.\n", len(all), period, len(passed)))

	if len(passed) == 0 {
		b.WriteString("\nNo tickers passed. Better luck next run.")
		return b.String()
	}

	b.WriteString("\n✅ <b>Passed:</b>\n")
	for _, r := range passed {
		spike := 0.0
		if r.VolumeAvg20 > 0 {
			spike = float64(r.Volume) / r.VolumeAvg20
		}
		b.WriteString(fmt.Sprintf("  %s: price %.2f (EMA50 %.2f), RSI %.2f, ADX %.2f, volume %.1fx avg\n",
			r.Ticker, r.Price, r.EMA50, r.RSI14, r.ADX14, spike))
	}
	return b.String()
}
