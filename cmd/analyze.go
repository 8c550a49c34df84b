package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"catalog-reconciler/feature/crawl"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var idsOut string

// analyzeCmd reports crawl statistics.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <crawled_data.json>",
	Short: "Summarize a crawl result file",
	Long: `Summarize a crawl result file: success rate, failure buckets and sold-out reasons.
With --ids-out the extracted id lists are written as JSON for re-crawling.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&idsOut, "ids-out", "", "Write the extracted id lists to this JSON file")
	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	f, err := crawl.Load(args[0])
	if err != nil {
		return err
	}

	an := crawl.Analyze(f)
	a.log.Info("Crawl analysis",
		zap.Int("products", an.Summary.TotalProducts),
		zap.Int("successful", an.Summary.SuccessfulCount),
		zap.Int("sold_out", an.Summary.SoldOutCount),
		zap.Int("errors", an.Summary.ErrorCount),
		zap.String("success_rate", fmt.Sprintf("%.1f%%", an.SuccessRate())),
	)
	a.log.Info("Failures",
		zap.Int("timeout", len(an.ErrorIDs.Timeout)),
		zap.Int("unknown", len(an.ErrorIDs.Unknown)),
		zap.Int("failed", len(an.ErrorIDs.Failed)),
	)
	for reason, n := range an.SoldOutReasons {
		a.log.Info("Sold-out reason", zap.String("reason", reason), zap.Int("count", n))
	}

	if idsOut == "" {
		return nil
	}
	data, err := json.MarshalIndent(an, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}
	if err := os.WriteFile(idsOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", idsOut, err)
	}
	a.log.Info("Id lists written", zap.String("path", idsOut))
	return nil
}
