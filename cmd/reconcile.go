package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"catalog-reconciler/core/logger"
	"catalog-reconciler/core/reconcile"
	"catalog-reconciler/core/storage"
	"catalog-reconciler/feature/report"
	"catalog-reconciler/feature/runs"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	baselinePath  string
	crawlPath     string
	fromBucket    bool
	outDir        string
	withWorkbooks bool
	publishReport bool
	recordRun     bool
	dryRun        bool
	yesConfirm    bool
)

// reconcileCmd compares the crawl against the item export and writes the report.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile crawl results against the item export",
	Long: `Reconcile crawl results against the item export and write the update report.

Classifies sold-out, restocked, price-changed and deleted products, then writes one
file per category, the ordering guide and (optionally) the bulk upload workbooks.

Examples:
  # Local files, report into ./output
  reconcile --baseline items.xlsx --crawl crawled_data.json

  # Inputs from the bucket, publish the report back (with confirmation)
  reconcile --from-bucket --publish

  # Non-interactive, also record the run in the history database
  reconcile --from-bucket --publish --record --yes`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&baselinePath, "baseline", "", "Path to the item export workbook")
	reconcileCmd.Flags().StringVar(&crawlPath, "crawl", "", "Path to the crawl result JSON")
	reconcileCmd.Flags().BoolVar(&fromBucket, "from-bucket", false, "Read both inputs from the configured bucket")
	reconcileCmd.Flags().StringVar(&outDir, "out", "", "Output directory (default from REPORT_OUTPUT_DIR)")
	reconcileCmd.Flags().BoolVar(&withWorkbooks, "workbooks", true, "Write the bulk upload workbooks")
	reconcileCmd.Flags().BoolVar(&publishReport, "publish", false, "Upload the report to the bucket")
	reconcileCmd.Flags().BoolVar(&recordRun, "record", false, "Record the run in the history database")
	reconcileCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the summary only; write nothing")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm publishing (non-interactive)")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp()
	if err != nil {
		return err
	}

	var client storage.Client
	if fromBucket || publishReport {
		client, err = storage.NewClient(a.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	var adapter reconcile.Adapter
	switch {
	case fromBucket:
		adapter = a.bucketAdapter(client)
	case baselinePath != "" && crawlPath != "":
		adapter = a.fileAdapter(baselinePath, crawlPath)
	default:
		return errors.New("either --from-bucket or both --baseline and --crawl are required")
	}

	runID := uuid.NewString()
	started := time.Now()
	l := logger.WithRun(a.log, runID)
	l.Info("Starting reconciliation", zap.String("source", adapter.Name()))

	spec := a.cfg.Catalog.Spec(adapter)
	res, plan, err := reconcile.ReconcileWithPlan(ctx, spec)
	if err != nil {
		return fmt.Errorf("failed to reconcile: %w", err)
	}

	printReconcileReport(l, res, plan)

	if dryRun {
		l.Info("Dry-run mode: nothing was written.")
		return nil
	}

	rcfg := a.cfg.Report
	rcfg.Workbooks = withWorkbooks
	artifacts, err := report.NewAssembler(spec.Options, rcfg).Assemble(report.Meta{
		RunID:       runID,
		Source:      adapter.Name(),
		GeneratedAt: started,
	}, res, plan)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	dir := outDir
	if dir == "" {
		dir = rcfg.OutputDir
	}
	if err := report.WriteDir(dir, artifacts); err != nil {
		return err
	}
	l.Info("Report written", zap.String("dir", dir), zap.Int("artifacts", len(artifacts)))

	run := runs.NewRun(runID, adapter.Name(), started, time.Now(), res, plan, spec.Options)

	if publishReport {
		if !confirmAction(fmt.Sprintf("publish %d files to bucket %q", len(artifacts), a.cfg.Storage.Bucket)) {
			l.Warn("Publishing cancelled by user. The local report was kept.")
		} else {
			prefix := path.Join(a.cfg.Storage.ReportPrefix, runID)
			keys, err := report.Publish(ctx, client, a.cfg.Storage.Bucket, prefix, artifacts)
			if err != nil {
				return fmt.Errorf("failed to publish report: %w", err)
			}
			run.ArtifactPrefix = prefix
			l.Info("Report published", zap.String("prefix", prefix), zap.Int("objects", len(keys)))
		}
	}

	if recordRun {
		repo := a.history()
		if repo == nil {
			l.Warn("Run history is not available; run was not recorded")
			return nil
		}
		if err := repo.Save(ctx, run); err != nil {
			return err
		}
		l.Info("Run recorded", zap.Int("deltas", len(run.Deltas)))
	}

	return nil
}

// printReconcileReport prints a formatted reconciliation summary using logger.
func printReconcileReport(l *zap.Logger, res *reconcile.Result, plan *reconcile.UpdatePlan) {
	s := res.Summary

	l.Info("Reconciliation report",
		zap.Int("products", s.Products),
		zap.Int("observed", s.Observed),
		zap.Int("unobserved", s.Unobserved),
		zap.Int("not_in_baseline", s.NotInBaseline),
	)
	l.Info("Classified changes",
		zap.Int("sold_out", s.SoldOut),
		zap.Int("option_sold_out", s.VariantSoldOut),
		zap.Int("partial_sold_out", s.PartialSoldOut),
		zap.Int("restocked", s.Restocked),
		zap.Int("option_restocked", s.VariantRestocked),
		zap.Int("restored", s.ProductRestored),
		zap.Int("price_changed", s.PriceChanged),
		zap.Int("base_price_changed", s.BasePriceChanged),
		zap.Int("additional_price_changed", s.AdditionalPriceChanged),
		zap.Int("deleted", s.Deleted),
	)

	for _, ph := range plan.Phases {
		if len(ph.Actions) == 0 {
			continue
		}
		l.Info("Planned phase",
			zap.Int("order", ph.Order),
			zap.String("phase", string(ph.Name)),
			zap.Int("actions", len(ph.Actions)),
		)
	}

	// Show a sample of actions (max 5 for logger)
	actions := plan.Actions()
	maxShow := min(5, len(actions))
	for i := 0; i < maxShow; i++ {
		action := actions[i]
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("item", action.ItemID),
			zap.String("option", action.OptionID),
			zap.String("reason", action.Reason),
		)
	}
	if len(actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(actions)-maxShow))
	}
}

// confirmAction prompts the user for confirmation or uses --yes flag.
func confirmAction(what string) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  Type 'yes' to %s: ", what)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
