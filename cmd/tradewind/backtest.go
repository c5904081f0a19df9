package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantrell/tradewind/internal/archive"
	"github.com/quantrell/tradewind/internal/backtest"
	"github.com/quantrell/tradewind/internal/history"
	"github.com/quantrell/tradewind/internal/simulator"
)

var (
	backtestRecords string
	backtestArchive bool
)

var backtestCmd = &cobra.Command{
	Use:   "backtest [strategy]",
	Short: "Replay historical records through a strategy",
	Long:  "Replay a JSONL file of market data records through a strategy and show performance metrics",
	Args:  cobra.ExactArgs(1),
	RunE:  runBacktest,
}

func init() {
	backtestCmd.Flags().StringVar(&backtestRecords, "records", "", "JSONL records file (required)")
	backtestCmd.Flags().BoolVar(&backtestArchive, "archive", false, "persist the result document")

	backtestCmd.MarkFlagRequired("records")

	rootCmd.AddCommand(backtestCmd)
}

func runBacktest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	reg := newRegistry(cfg)

	strat, err := buildStrategy(args[0], cfg, log, reg)
	if err != nil {
		return err
	}

	records, err := history.LoadEnriched(backtestRecords)
	if err != nil {
		return err
	}

	sim := simulator.New(simulator.Config{
		MinSignalThreshold: cfg.Simulator.MinSignalThreshold,
		SlippageRate:       cfg.Simulator.SlippageRate,
		TradeSize:          cfg.Simulator.TradeSize,
	})

	runner := backtest.NewRunner(strat, sim,
		backtest.WithLogger(log),
		backtest.WithMetrics(reg),
	)

	result, err := runner.Run(cmd.Context(), records)
	if err != nil {
		return err
	}

	fmt.Println("=== TRADEWIND Backtest ===")
	fmt.Printf("Run ID:     %s\n", result.RunID)
	fmt.Printf("Strategy:   %s\n", result.Strategy)
	fmt.Printf("Records:    %d\n", len(result.Records))
	fmt.Printf("Trades:     %d\n", result.Metrics.TotalTrades)
	fmt.Printf("Win rate:   %.1f%%\n", result.Metrics.WinRate*100)
	fmt.Printf("Avg return: %.4f%%\n", result.Metrics.AvgReturn*100)
	fmt.Printf("Sharpe:     %.4f\n", result.Metrics.SharpeRatio)
	fmt.Printf("Total P/L:  %.4f\n", result.Metrics.TotalPnL)

	if backtestArchive {
		store, err := archive.New(cfg.Archive)
		if err != nil {
			return err
		}
		key, err := archive.SaveResult(cmd.Context(), store, result)
		if err != nil {
			return err
		}
		fmt.Printf("Archived:   %s\n", key)
	}

	return nil
}
