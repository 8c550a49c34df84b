package runs

import (
	"time"

	"catalog-reconciler/core/reconcile"
)

// Delta categories stored with a run.
const (
	CategorySoldOut           = "sold_out"
	CategoryVariantSoldOut    = "variant_sold_out"
	CategoryPartialSoldOut    = "partial_sold_out"
	CategoryRestocked         = "restocked"
	CategoryVariantRestocked  = "variant_restocked"
	CategoryProductRestored   = "product_restored"
	CategoryPriceChanged      = "price_changed"
	CategoryBasePriceChanged  = "base_price_changed"
	CategoryAdditionalChanged = "additional_price_changed"
	CategoryDeleted           = "deleted"
)

// Run is one reconciliation run.
type Run struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Source         string    `gorm:"size:512" json:"source"`
	StartedAt      time.Time `gorm:"index" json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	Products       int       `json:"products"`
	Observed       int       `json:"observed"`
	Unobserved     int       `json:"unobserved"`
	TotalActions   int       `json:"total_actions"`
	PriceActions   int       `json:"price_actions"`
	StockActions   int       `json:"stock_actions"`
	DeleteActions  int       `json:"delete_actions"`
	ArtifactPrefix string    `gorm:"size:512" json:"artifact_prefix,omitempty"`
	Deltas         []Delta   `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"deltas,omitempty"`
}

// Delta is one classified entry of a run.
type Delta struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	RunID    string `gorm:"size:36;index" json:"-"`
	Category string `gorm:"size:32;index" json:"category"`
	ItemID   string `gorm:"size:128" json:"item_id"`
	OptionID string `gorm:"size:128" json:"option_id,omitempty"`
	OldValue int    `json:"old_value"`
	NewValue int    `json:"new_value"`
	Reason   string `gorm:"size:512" json:"reason,omitempty"`
}

// NewRun builds a run record from a reconciliation result and its plan.
// Item and option ids are stored in seller form.
func NewRun(id, source string, started, finished time.Time, res *reconcile.Result, plan *reconcile.UpdatePlan, opts reconcile.Options) *Run {
	run := &Run{
		ID:            id,
		Source:        source,
		StartedAt:     started,
		FinishedAt:    finished,
		Products:      res.Summary.Products,
		Observed:      res.Summary.Observed,
		Unobserved:    res.Summary.Unobserved,
		TotalActions:  plan.Summary.TotalActions,
		PriceActions:  plan.Summary.PriceActions,
		StockActions:  plan.Summary.QuantityActions,
		DeleteActions: plan.Summary.DeleteActions,
	}

	sid := opts.SellerID
	add := func(d Delta) {
		d.RunID = id
		run.Deltas = append(run.Deltas, d)
	}

	for _, d := range res.SoldOut {
		add(Delta{Category: CategorySoldOut, ItemID: sid(d.ID)})
	}
	for _, d := range res.VariantSoldOut {
		add(Delta{Category: CategoryVariantSoldOut, ItemID: sid(d.ProductID), OptionID: sid(d.ID)})
	}
	for _, d := range res.PartialSoldOut {
		add(Delta{Category: CategoryPartialSoldOut, ItemID: sid(d.ProductID), OldValue: d.Total, NewValue: d.Total - d.SoldOut})
	}
	for _, d := range res.Restocked {
		add(Delta{Category: CategoryRestocked, ItemID: sid(d.ID), OldValue: d.PriorQuantity, NewValue: opts.RestockQuantity})
	}
	for _, d := range res.VariantRestocked {
		add(Delta{Category: CategoryVariantRestocked, ItemID: sid(d.ProductID), OptionID: sid(d.ID), OldValue: d.PriorQuantity, NewValue: opts.RestockQuantity})
	}
	for _, d := range res.ProductRestored {
		add(Delta{Category: CategoryProductRestored, ItemID: sid(d.ID), OldValue: d.PriorQuantity, NewValue: opts.RestoreQuantity})
	}
	for _, d := range res.PriceChanged {
		add(Delta{Category: CategoryPriceChanged, ItemID: sid(d.ID), OldValue: d.OldValue, NewValue: d.NewValue})
	}
	for _, d := range res.BasePriceChanged {
		add(Delta{Category: CategoryBasePriceChanged, ItemID: sid(d.ID), OldValue: d.OldValue, NewValue: d.NewValue})
	}
	for _, d := range res.AdditionalPriceChanged {
		add(Delta{Category: CategoryAdditionalChanged, ItemID: sid(d.ProductID), OptionID: sid(d.ID), OldValue: d.OldValue, NewValue: d.NewValue})
	}
	for _, d := range res.Deleted {
		reason := d.ReasonCode
		if d.Message != "" {
			reason += ": " + d.Message
		}
		add(Delta{Category: CategoryDeleted, ItemID: sid(d.ID), Reason: reason})
	}

	return run
}
