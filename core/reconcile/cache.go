package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Snapshot holds both loaded inputs of a run.
type Snapshot struct {
	Baseline Baseline
	Current  Current

	// Built is the time the inputs were loaded.
	Built time.Time

	// TTL is the time-to-live for this snapshot.
	TTL time.Duration
}

// IsExpired returns true if this snapshot has expired based on its TTL.
func (s *Snapshot) IsExpired() bool {
	if s.TTL == 0 {
		return true
	}
	return time.Since(s.Built) > s.TTL
}

type snapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
	sf        singleflight.Group
}

var globalSnapshotStore = &snapshotStore{
	snapshots: make(map[string]*Snapshot),
}

// LoadSnapshot loads the baseline and the crawl snapshot concurrently.
// It does not store the result; use GetOrBuildSnapshot for that.
func LoadSnapshot(ctx context.Context, spec *Spec) (*Snapshot, error) {
	var (
		baseline Baseline
		current  Current
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := spec.Adapter.LoadBaseline(gctx)
		if err != nil {
			return fmt.Errorf("load baseline: %w", err)
		}
		baseline = b
		return nil
	})
	g.Go(func() error {
		c, err := spec.Adapter.LoadCurrent(gctx)
		if err != nil {
			return fmt.Errorf("load crawl results: %w", err)
		}
		current = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Snapshot{
		Baseline: baseline,
		Current:  current,
		Built:    time.Now(),
		TTL:      spec.CacheTTL,
	}, nil
}

// GetOrBuildSnapshot returns the cached snapshot for the spec or loads a new one
// when it is missing or expired. Concurrent callers share a single load.
func GetOrBuildSnapshot(ctx context.Context, spec *Spec) (*Snapshot, error) {
	key := spec.CacheKey()

	globalSnapshotStore.mu.RLock()
	snap, ok := globalSnapshotStore.snapshots[key]
	globalSnapshotStore.mu.RUnlock()
	if ok && !snap.IsExpired() {
		return snap, nil
	}

	v, err, _ := globalSnapshotStore.sf.Do(key, func() (any, error) {
		globalSnapshotStore.mu.RLock()
		snap, ok := globalSnapshotStore.snapshots[key]
		globalSnapshotStore.mu.RUnlock()
		if ok && !snap.IsExpired() {
			return snap, nil
		}

		// Shared by every waiter; one caller's cancellation must not fail the rest.
		fresh, err := LoadSnapshot(context.WithoutCancel(ctx), spec)
		if err != nil {
			return nil, err
		}

		globalSnapshotStore.mu.Lock()
		globalSnapshotStore.snapshots[key] = fresh
		globalSnapshotStore.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// InvalidateSnapshot drops the cached snapshot for the spec.
func InvalidateSnapshot(spec *Spec) {
	key := spec.CacheKey()
	globalSnapshotStore.mu.Lock()
	delete(globalSnapshotStore.snapshots, key)
	globalSnapshotStore.mu.Unlock()
}
