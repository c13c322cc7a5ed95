package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"StockScreener/internal/collector"
	"StockScreener/internal/config"
	"StockScreener/internal/logger"
	"StockScreener/internal/tickers"
)

var (
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Screen equity tickers against technical criteria",
	Long: `screener checks each ticker for an uptrend (price above the 50-day
EMA), positive momentum (RSI between 50 and 70), trend strength (ADX above
25) and a volume spike (volume at least 1.5x its 20-day average), and
reports which tickers satisfy all four.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "configs/config.yaml", "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// setup loads and validates configuration, then builds the logger.
func setup() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// newFetcher selects the data source configured for the run.
func newFetcher(cfg *config.Config) collector.Fetcher {
	switch cfg.DataSource.Provider {
	case "rest":
		return collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	case "mock":
		return &collector.MockFetcher{}
	default:
		return collector.NewYahooFetcher(cfg.Proxy)
	}
}

// resolveTickers builds the ticker list from whichever source flag was given.
func resolveTickers(list, file string, sample bool) ([]string, error) {
	var out []string
	switch {
	case list != "":
		out = tickers.FromList(list)
	case file != "":
		var err error
		out, err = tickers.FromFile(file)
		if err != nil {
			return nil, err
		}
	case sample:
		out = tickers.Sample()
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no tickers resolved")
	}
	return out, nil
}
