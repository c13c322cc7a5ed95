package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"StockScreener/internal/collector"
	"StockScreener/internal/notifier"
	"StockScreener/internal/report"
	"StockScreener/internal/scheduler"
	"StockScreener/internal/screener"
)

var (
	watchList   string
	watchFile   string
	watchSample bool
	watchNow    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the screen on a cron schedule",
	Long: `Run the screen repeatedly on the schedule configured under watch.cron
(a six-field cron expression with seconds; the default fires after the NSE
close on weekdays). Each run writes the result tables to the paths configured
under output.

Examples:
  # Watch the sample list on the configured schedule
  screener watch --sample

  # Watch a file of tickers and run once immediately on startup
  screener watch --file nifty500.txt --now`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchList, "tickers", "", "comma-separated ticker list (e.g. RELIANCE,TCS)")
	watchCmd.Flags().StringVar(&watchFile, "file", "", "file with one ticker per line")
	watchCmd.Flags().BoolVar(&watchSample, "sample", false, "use the built-in NSE sample list")
	watchCmd.Flags().BoolVar(&watchNow, "now", false, "run once immediately, then follow the schedule")

	watchCmd.MarkFlagsOneRequired("tickers", "file", "sample")
	watchCmd.MarkFlagsMutuallyExclusive("tickers", "file", "sample")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	list, err := resolveTickers(watchList, watchFile, watchSample)
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

	var notif *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		notif = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
		log.Info("telegram notifications enabled")
	}

	job := func() {
		all, passed := scr.Screen(ctx, list)
		if len(all) == 0 {
			log.Warn("no tickers could be screened, nothing to write")
			return
		}
		if err := report.WriteCSV(cfg.Output.Results, all); err != nil {
			log.WithError(err).Error("write results")
			return
		}
		log.WithFields(logrus.Fields{
			"path": cfg.Output.Results,
			"rows": len(all),
		}).Info("results written")

		if cfg.Output.Passed != "" && len(passed) > 0 {
			if err := report.WriteCSV(cfg.Output.Passed, passed); err != nil {
				log.WithError(err).Error("write passed results")
				return
			}
			log.WithFields(logrus.Fields{
				"path": cfg.Output.Passed,
				"rows": len(passed),
			}).Info("passed results written")
		}

		if notif != nil {
			msg := notifier.FormatScreenReport(cfg.Screen.Period, all, passed)
			if err := notif.SendWithRetry(ctx, msg, 3); err != nil {
				log.WithError(err).Warn("telegram notification failed")
			}
		}
	}

	sched := scheduler.New(log)
	if err := sched.Add(cfg.Watch.Cron, job); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	log.WithField("cron", cfg.Watch.Cron).Info("watch mode running, press Ctrl+C to stop")

	if watchNow {
		job()
	}

	<-ctx.Done()
	log.Info("shutdown signal received")
	return nil
}
