package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"StockScreener/internal/model"
)

// RenderTable writes the result table as aligned text columns.
func RenderTable(w io.Writer, results []model.ScreenResult) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TICKER\tPRICE\tEMA50\t>EMA\tRSI14\tRSI OK\tADX\tADX OK\tVOLUME\tVOL AVG\tSPIKE\tALL")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%v\t%s\t%v\t%s\t%v\t%d\t%d\t%v\t%v\n",
			r.Ticker,
			round2(r.Price),
			round2(r.EMA50),
			r.AboveEMA50,
			round2(r.RSI14),
			r.RSIInRange,
			round2(r.ADX14),
			r.StrongTrend,
			r.Volume,
			int64(r.VolumeAvg20),
			r.VolumeSpike,
			r.AllCriteria,
		)
	}
	tw.Flush()
}
