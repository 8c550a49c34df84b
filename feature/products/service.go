package products

import (
	"context"
	"errors"
	"sort"
	"strings"

	"catalog-reconciler/core/reconcile"

	"go.uber.org/zap"
)

// ErrProductNotFound is returned when neither input knows the product.
var ErrProductNotFound = errors.New("product not found in baseline or crawl")

// Service handles product lookups.
type Service struct {
	spec   *reconcile.Spec
	logger *zap.Logger
}

// NewService creates a new product service.
func NewService(spec *reconcile.Spec, logger *zap.Logger) *Service {
	return &Service{spec: spec, logger: logger}
}

// GetDetail reconciles one product against the cached inputs.
func (s *Service) GetDetail(ctx context.Context, id string) (*Detail, error) {
	snap, err := reconcile.GetOrBuildSnapshot(ctx, s.spec)
	if err != nil {
		return nil, err
	}
	return Explain(snap, id, s.spec.Options)
}

// Explain builds the detail for id from a loaded snapshot.
func Explain(snap *reconcile.Snapshot, id string, opts reconcile.Options) (*Detail, error) {
	pid := strings.TrimPrefix(id, opts.IDPrefix)
	d := &Detail{ProductID: pid, SellerID: opts.SellerID(pid), Actions: []reconcile.Action{}}

	baseline := reconcile.Baseline{}
	for key, rec := range snap.Baseline {
		if key == d.SellerID || rec.ProductID == d.SellerID {
			baseline[key] = rec
			d.Baseline = append(d.Baseline, rec)
		}
	}
	sort.Slice(d.Baseline, func(i, j int) bool {
		return d.Baseline[i].VariantIndex < d.Baseline[j].VariantIndex
	})
	d.InBaseline = len(d.Baseline) > 0

	rec, ok := snap.Current[pid]
	if !ok {
		if !d.InBaseline {
			return nil, ErrProductNotFound
		}
		return d, nil
	}
	d.InCrawl = true
	d.Crawl = &rec

	res, err := reconcile.Reconcile(baseline, reconcile.Current{pid: rec}, opts)
	if err != nil {
		return nil, err
	}
	d.Result = res
	d.Actions = append(d.Actions, reconcile.BuildPlan(res, opts).Actions()...)
	return d, nil
}
