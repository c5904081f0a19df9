package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantrell/tradewind/internal/core"
	"github.com/quantrell/tradewind/internal/history"
)

var signalRecords string

var signalCmd = &cobra.Command{
	Use:   "signal [strategy]",
	Short: "Evaluate one strategy decision",
	Long:  "Generate a decision for the last record of a JSONL market data file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSignal,
}

func init() {
	signalCmd.Flags().StringVar(&signalRecords, "records", "", "JSONL records file (required)")
	signalCmd.MarkFlagRequired("records")

	rootCmd.AddCommand(signalCmd)
}

func runSignal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	strat, err := buildStrategy(args[0], cfg, log, newRegistry(cfg))
	if err != nil {
		return err
	}

	records, err := history.LoadEnriched(signalRecords)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return core.WrapError(core.ErrNoData, fmt.Errorf("no records in %s", signalRecords))
	}

	last := records[len(records)-1]
	result := strat.GenerateSignal(cmd.Context(), last)

	fmt.Printf("Symbol:     %s\n", result.Symbol)
	fmt.Printf("Timestamp:  %s\n", result.Timestamp)
	fmt.Printf("Signal:     %+.4f\n", result.Signal)
	fmt.Printf("Confidence: %.4f\n", result.Confidence)
	if reason, ok := result.Meta["validation_error"]; ok {
		fmt.Printf("Rejected:   %v\n", reason)
	}

	return nil
}
