package integrity

import (
	"context"
	"slices"

	"catalog-reconciler/core/storage"
	"catalog-reconciler/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service. db may be nil when history is disabled.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		logger: logger,
		db:     db,
	}
}

// RequiredFolders returns the bucket folders a run reads from and writes to.
func (s *Service) RequiredFolders() []string {
	var folders []string
	for _, key := range []string{s.cfg.BaselineObject, s.cfg.CrawlObject} {
		if f := checks.FolderOf(key); f != "" && !slices.Contains(folders, f) {
			folders = append(folders, f)
		}
	}
	if s.cfg.ReportPrefix != "" && !slices.Contains(folders, s.cfg.ReportPrefix) {
		folders = append(folders, s.cfg.ReportPrefix)
	}
	return folders
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.cfg.Bucket, s.RequiredFolders())
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.cfg.Bucket, s.logger, missing)
}

// CheckInputs returns the input objects missing from the bucket.
func (s *Service) CheckInputs(ctx context.Context) ([]string, error) {
	return checks.CheckInputs(ctx, s.client, s.cfg.Bucket, []string{s.cfg.BaselineObject, s.cfg.CrawlObject})
}

// CheckHistory verifies the run history schema.
func (s *Service) CheckHistory() (*checks.HistoryReport, error) {
	return checks.CheckHistory(s.db)
}
