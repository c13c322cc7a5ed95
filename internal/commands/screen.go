package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"StockScreener/internal/collector"
	"StockScreener/internal/report"
	"StockScreener/internal/screener"
)

var (
	screenList    string
	screenFile    string
	screenSample  bool
	screenPeriod  string
	screenWorkers int
	screenOutput  string
	screenPassed  string
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run the screen once and write the result tables",
	Long: `Screen a list of tickers against the technical criteria and write
the results to CSV.

Examples:
  # Screen an explicit list over the default 3-month period
  screener screen --tickers RELIANCE,TCS,INFY --output results.csv

  # Screen tickers from a file, one per line, and also save the passers
  screener screen --file nifty500.txt --output results.csv --passed passed.csv

  # Screen the built-in sample list over one year with 10 workers
  screener screen --sample --period 1y --workers 10 --output results.csv`,
	RunE: runScreen,
}

func init() {
	screenCmd.Flags().StringVar(&screenList, "tickers", "", "comma-separated ticker list (e.g. RELIANCE,TCS)")
	screenCmd.Flags().StringVar(&screenFile, "file", "", "file with one ticker per line")
	screenCmd.Flags().BoolVar(&screenSample, "sample", false, "use the built-in NSE sample list")
	screenCmd.Flags().StringVar(&screenPeriod, "period", "", "history period (1mo, 3mo, 6mo, 1y, 2y)")
	screenCmd.Flags().IntVar(&screenWorkers, "workers", 0, "number of concurrent workers")
	screenCmd.Flags().StringVarP(&screenOutput, "output", "o", "", "path for the all-results CSV")
	screenCmd.Flags().StringVar(&screenPassed, "passed", "", "optional path for the passed-only CSV")

	screenCmd.MarkFlagsOneRequired("tickers", "file", "sample")
	screenCmd.MarkFlagsMutuallyExclusive("tickers", "file", "sample")
	_ = screenCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	if screenPeriod != "" {
		cfg.Screen.Period = screenPeriod
	}
	if screenWorkers > 0 {
		cfg.Screen.Workers = screenWorkers
	}

	list, err := resolveTickers(screenList, screenFile, screenSample)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher := newFetcher(cfg)
	log.WithField("source", fetcher.Name()).Info("data source selected")

	col := collector.New(fetcher, log)
	scr := screener.New(col, log, screener.Options{
		Period:       cfg.Screen.Period,
		Workers:      cfg.Screen.Workers,
		MarketSuffix: cfg.Screen.MarketSuffix,
	})

	all, passed := scr.Screen(ctx, list)
	if len(all) == 0 {
		log.Warn("no tickers could be screened, nothing to write")
		return nil
	}

	fmt.Println("\nAll results:")
	report.RenderTable(os.Stdout, all)
	if len(passed) > 0 {
		fmt.Println("\nPassed all criteria:")
		report.RenderTable(os.Stdout, passed)
	} else {
		fmt.Println("\nNo tickers passed all criteria.")
	}

	if err := report.WriteCSV(screenOutput, all); err != nil {
		return err
	}
	log.WithField("path", screenOutput).Info("results written")

	if screenPassed != "" && len(passed) > 0 {
		if err := report.WriteCSV(screenPassed, passed); err != nil {
			return err
		}
		log.WithField("path", screenPassed).Info("passed results written")
	}
	return nil
}
