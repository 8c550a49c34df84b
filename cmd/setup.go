package cmd

import (
	"fmt"

	"catalog-reconciler/core/config"
	"catalog-reconciler/core/database"
	"catalog-reconciler/core/logger"
	"catalog-reconciler/core/pricing"
	"catalog-reconciler/core/storage"
	"catalog-reconciler/feature/baseline"
	"catalog-reconciler/feature/catalog"
	"catalog-reconciler/feature/runs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app bundles the loaded configuration and the logger every command needs.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	engine *pricing.Engine
	parser *baseline.Parser
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	parser, err := baseline.NewParser(cfg.Baseline)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		log:    l,
		engine: pricing.New(cfg.Pricing),
		parser: parser,
	}, nil
}

func (a *app) fileAdapter(baselinePath, crawlPath string) *catalog.FileAdapter {
	return catalog.NewFileAdapter(baselinePath, crawlPath, a.cfg.Baseline.Sheet, a.parser, a.engine)
}

func (a *app) bucketAdapter(client storage.Client) *catalog.BucketAdapter {
	return catalog.NewBucketAdapter(client, a.cfg.Storage.Bucket, a.cfg.Storage.BaselineObject,
		a.cfg.Storage.CrawlObject, a.cfg.Baseline.Sheet, a.parser, a.engine)
}

// historyDB connects to the run history database. Failures are logged and leave history disabled.
func (a *app) historyDB() *gorm.DB {
	if !a.cfg.Database.Enabled {
		return nil
	}
	db, err := database.Connect(a.cfg.Database)
	if err != nil {
		a.log.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	a.log.Info("Connected to run history", zap.String("driver", a.cfg.Database.Driver))
	return db
}

// history opens and migrates the run history store.
func (a *app) history() *runs.Repository {
	db := a.historyDB()
	if db == nil {
		return nil
	}
	repo := runs.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		a.log.Warn("Run history migration failed", zap.Error(err))
		return nil
	}
	return repo
}
