package runs

import (
	"context"
	"errors"
	"fmt"

	"catalog-reconciler/core/database"

	"gorm.io/gorm"
)

// ErrRunNotFound is returned when no run has the requested id.
var ErrRunNotFound = errors.New("run not found")

// DefaultListLimit caps List when no limit is given.
const DefaultListLimit = 20

// Repository stores runs with GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the history tables.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&Run{}, &Delta{}); err != nil {
		return fmt.Errorf("migrate run history: %w", err)
	}
	return nil
}

// MissingColumns reports history columns absent from the live schema.
func (r *Repository) MissingColumns() ([]string, error) {
	missing, err := database.MissingColumns(r.db, "runs", []string{"id", "source", "started_at", "total_actions"})
	if err != nil {
		return nil, err
	}
	more, err := database.MissingColumns(r.db, "deltas", []string{"run_id", "category", "item_id", "option_id"})
	if err != nil {
		return nil, err
	}
	return append(missing, more...), nil
}

// Save inserts a run together with its deltas.
func (r *Repository) Save(ctx context.Context, run *Run) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("save run %s: %w", run.ID, err)
	}
	return nil
}

// List returns recent runs without deltas, newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	var out []Run
	err := r.db.WithContext(ctx).Order("started_at desc").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return out, nil
}

// Get returns one run with its deltas.
func (r *Repository) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := r.db.WithContext(ctx).Preload("Deltas").First(&run, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return &run, nil
}
