package report

import (
	"errors"
	"fmt"

	"catalog-reconciler/core/reconcile"
)

// ErrIncompleteRun is returned when a result or plan is missing.
var ErrIncompleteRun = errors.New("report: result and plan are required")

// Assembler renders reconciliation results.
type Assembler struct {
	opts    reconcile.Options
	cfg     Config
	printer printer
}

// NewAssembler creates an Assembler using opts for seller id mapping.
func NewAssembler(opts reconcile.Options, cfg Config) *Assembler {
	return &Assembler{opts: opts, cfg: cfg, printer: newPrinter(cfg.Locale, opts.SellerID)}
}

// Assemble renders the ordering guide followed by the ten category files.
// When the config enables workbooks they are appended after the text artifacts.
func (a *Assembler) Assemble(meta Meta, res *reconcile.Result, plan *reconcile.UpdatePlan) ([]Artifact, error) {
	if res == nil || plan == nil {
		return nil, ErrIncompleteRun
	}

	guide, err := renderGuide(meta, res, plan)
	if err != nil {
		return nil, fmt.Errorf("render update order: %w", err)
	}

	out := []Artifact{{Name: FileUpdateOrder, ContentType: ContentTypeMarkdown, Data: guide}}
	out = append(out, a.textArtifacts(res)...)

	if a.cfg.Workbooks {
		books, err := a.Workbooks(plan)
		if err != nil {
			return nil, err
		}
		out = append(out, books...)
	}
	return out, nil
}
