package runs

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"catalog-reconciler/core/logger"
	"catalog-reconciler/core/reconcile"
	"catalog-reconciler/core/storage"
	"catalog-reconciler/feature/report"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrHistoryDisabled is returned by history lookups when no database is configured.
var ErrHistoryDisabled = errors.New("run history is disabled")

// Service executes runs and reads their history.
type Service struct {
	spec      *reconcile.Spec
	assembler *report.Assembler
	repo      *Repository
	client    storage.Client
	bucket    string
	prefix    string
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a run service. repo may be nil, which disables history.
func NewService(spec *reconcile.Spec, assembler *report.Assembler, repo *Repository, client storage.Client, bucket, prefix string, logger *zap.Logger) *Service {
	return &Service{
		spec:      spec,
		assembler: assembler,
		repo:      repo,
		client:    client,
		bucket:    bucket,
		prefix:    prefix,
		logger:    logger,
		now:       time.Now,
	}
}

// Execute reconciles the configured inputs, publishes the report and records the run.
// The cached inputs are dropped first so a triggered run always sees the latest files.
func (s *Service) Execute(ctx context.Context) (*Run, error) {
	id := uuid.NewString()
	started := s.now()
	l := logger.WithRun(s.logger, id)

	reconcile.InvalidateSnapshot(s.spec)
	res, plan, err := reconcile.ReconcileWithPlan(ctx, s.spec)
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}

	artifacts, err := s.assembler.Assemble(report.Meta{
		RunID:       id,
		Source:      s.spec.Adapter.Name(),
		GeneratedAt: started,
	}, res, plan)
	if err != nil {
		return nil, err
	}

	run := NewRun(id, s.spec.Adapter.Name(), started, s.now(), res, plan, s.spec.Options)

	if s.client != nil {
		prefix := path.Join(s.prefix, id)
		keys, err := report.Publish(ctx, s.client, s.bucket, prefix, artifacts)
		if err != nil {
			return nil, fmt.Errorf("publish report: %w", err)
		}
		run.ArtifactPrefix = prefix
		l.Info("Published report", zap.String("bucket", s.bucket), zap.Int("artifacts", len(keys)))
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, run); err != nil {
			return nil, err
		}
	}

	l.Info("Run finished",
		zap.Int("products", res.Summary.Products),
		zap.Int("actions", plan.Summary.TotalActions),
		zap.Int("deleted", res.Summary.Deleted),
	)
	return run, nil
}

// List returns recent runs.
func (s *Service) List(ctx context.Context, limit int) ([]Run, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.repo.List(ctx, limit)
}

// Get returns one run with its deltas.
func (s *Service) Get(ctx context.Context, id string) (*Run, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.repo.Get(ctx, id)
}
