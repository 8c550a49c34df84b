package reconcile

import (
	"context"
	"time"
)

// Adapter loads the two inputs of a reconciliation run.
// Implementations decide where the inputs live (local files, object storage).
type Adapter interface {
	// Name returns a stable name describing the input locations.
	// It is part of the cache key, so two adapters reading different inputs must differ.
	Name() string

	// LoadBaseline loads the recorded state keyed by seller identifier.
	LoadBaseline(ctx context.Context) (Baseline, error)

	// LoadCurrent loads the crawl snapshot keyed by product id.
	LoadCurrent(ctx context.Context) (Current, error)
}

// Spec bundles an adapter with run options and cache settings.
type Spec struct {
	// Adapter provides the inputs.
	Adapter Adapter

	// CacheTTL is how long loaded inputs are reused. Zero disables caching.
	CacheTTL time.Duration

	// Options tune identifier mapping and planned quantities.
	Options Options
}

// CacheKey returns the key under which the spec's inputs are cached.
func (s *Spec) CacheKey() string {
	return s.Adapter.Name() + "|" + s.Options.IDPrefix
}

// ReconcileWithPlan loads both inputs, reconciles them and builds the update plan.
// Inputs are taken from the snapshot cache when the spec enables it.
func ReconcileWithPlan(ctx context.Context, spec *Spec) (*Result, *UpdatePlan, error) {
	var (
		snap *Snapshot
		err  error
	)
	if spec.CacheTTL > 0 {
		snap, err = GetOrBuildSnapshot(ctx, spec)
	} else {
		snap, err = LoadSnapshot(ctx, spec)
	}
	if err != nil {
		return nil, nil, err
	}

	res, err := Reconcile(snap.Baseline, snap.Current, spec.Options)
	if err != nil {
		return nil, nil, err
	}
	return res, BuildPlan(res, spec.Options), nil
}
