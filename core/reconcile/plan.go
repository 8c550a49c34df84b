package reconcile

import "fmt"

// ActionType is a single marketplace edit.
type ActionType string

const (
	// ActionSetItemPrice sets a product's price (base price for variant products).
	ActionSetItemPrice ActionType = "set_item_price"
	// ActionSetOptionPrice sets a variant's additional price.
	ActionSetOptionPrice ActionType = "set_option_price"
	// ActionSetItemQuantity sets a product's quantity.
	ActionSetItemQuantity ActionType = "set_item_quantity"
	// ActionSetOptionQuantity sets a variant's quantity.
	ActionSetOptionQuantity ActionType = "set_option_quantity"
	// ActionDeleteItem marks a product for deletion.
	ActionDeleteItem ActionType = "delete_item"
)

// Marketplace edit types for the bulk price/quantity upload.
const (
	EditTypeItem   = "g"
	EditTypeOption = "i"
)

// EditType returns the marketplace edit type for the action.
func (t ActionType) EditType() string {
	switch t {
	case ActionSetOptionPrice, ActionSetOptionQuantity:
		return EditTypeOption
	default:
		return EditTypeItem
	}
}

// Action represents one planned marketplace edit. Identifiers are seller identifiers.
type Action struct {
	Type     ActionType `json:"type"`
	ItemID   string     `json:"item_id"`
	OptionID string     `json:"option_id,omitempty"`
	Price    *int       `json:"price,omitempty"`
	Quantity *int       `json:"quantity,omitempty"`
	Reason   string     `json:"reason"`
}

// PhaseName identifies a step of the update sequence.
type PhaseName string

const (
	PhaseSinglePrice           PhaseName = "single_price"
	PhaseOptionBasePrice       PhaseName = "option_base_price"
	PhaseOptionAdditionalPrice PhaseName = "option_additional_price"
	PhaseSingleStock           PhaseName = "single_stock"
	PhaseOptionStock           PhaseName = "option_stock"
	PhaseDelete                PhaseName = "delete"
)

// PhaseOrder is the order updates must be applied in.
// Variant base prices precede variant additional prices: an additional price is
// stored relative to the base, so uploading it against a stale base yields a wrong total.
var PhaseOrder = []PhaseName{
	PhaseSinglePrice,
	PhaseOptionBasePrice,
	PhaseOptionAdditionalPrice,
	PhaseSingleStock,
	PhaseOptionStock,
	PhaseDelete,
}

// Phase is one step of the update plan.
type Phase struct {
	Order   int       `json:"order"`
	Name    PhaseName `json:"name"`
	Actions []Action  `json:"actions"`
}

// PlanSummary counts planned actions.
type PlanSummary struct {
	TotalActions    int `json:"total_actions"`
	PriceActions    int `json:"price_actions"`
	QuantityActions int `json:"quantity_actions"`
	DeleteActions   int `json:"delete_actions"`
}

// UpdatePlan is the ordered list of marketplace edits derived from a Result.
type UpdatePlan struct {
	Phases  []Phase     `json:"phases"`
	Summary PlanSummary `json:"summary"`
}

// Phase returns the named phase, or nil.
func (p *UpdatePlan) Phase(name PhaseName) *Phase {
	for i := range p.Phases {
		if p.Phases[i].Name == name {
			return &p.Phases[i]
		}
	}
	return nil
}

// Actions returns every action in application order.
func (p *UpdatePlan) Actions() []Action {
	var out []Action
	for _, ph := range p.Phases {
		out = append(out, ph.Actions...)
	}
	return out
}

// BuildPlan turns a Result into an UpdatePlan. Every phase of PhaseOrder is present,
// possibly empty, so callers can render the full sequence.
func BuildPlan(res *Result, opts Options) *UpdatePlan {
	plan := &UpdatePlan{Phases: make([]Phase, len(PhaseOrder))}
	for i, name := range PhaseOrder {
		plan.Phases[i] = Phase{Order: i + 1, Name: name, Actions: []Action{}}
	}
	add := func(name PhaseName, a Action) {
		ph := plan.Phase(name)
		ph.Actions = append(ph.Actions, a)
	}

	for _, d := range res.PriceChanged {
		add(PhaseSinglePrice, Action{
			Type:   ActionSetItemPrice,
			ItemID: opts.SellerID(d.ID),
			Price:  intPtr(d.NewValue),
			Reason: priceReason(d),
		})
	}
	for _, d := range res.BasePriceChanged {
		add(PhaseOptionBasePrice, Action{
			Type:   ActionSetItemPrice,
			ItemID: opts.SellerID(d.ID),
			Price:  intPtr(d.NewValue),
			Reason: "base " + priceReason(d),
		})
	}
	for _, d := range res.AdditionalPriceChanged {
		add(PhaseOptionAdditionalPrice, Action{
			Type:     ActionSetOptionPrice,
			ItemID:   opts.SellerID(d.ProductID),
			OptionID: opts.SellerID(d.ID),
			Price:    intPtr(d.NewValue),
			Reason:   "additional " + priceReason(d),
		})
	}

	for _, d := range res.SoldOut {
		add(PhaseSingleStock, Action{
			Type:     ActionSetItemQuantity,
			ItemID:   opts.SellerID(d.ID),
			Quantity: intPtr(0),
			Reason:   "sold out",
		})
	}
	for _, d := range res.Restocked {
		add(PhaseSingleStock, Action{
			Type:     ActionSetItemQuantity,
			ItemID:   opts.SellerID(d.ID),
			Quantity: intPtr(opts.RestockQuantity),
			Reason:   "restocked",
		})
	}

	for _, d := range res.VariantSoldOut {
		add(PhaseOptionStock, Action{
			Type:     ActionSetOptionQuantity,
			ItemID:   opts.SellerID(d.ProductID),
			OptionID: opts.SellerID(d.ID),
			Quantity: intPtr(0),
			Reason:   "option sold out",
		})
	}
	for _, d := range res.VariantRestocked {
		add(PhaseOptionStock, Action{
			Type:     ActionSetOptionQuantity,
			ItemID:   opts.SellerID(d.ProductID),
			OptionID: opts.SellerID(d.ID),
			Quantity: intPtr(opts.RestockQuantity),
			Reason:   "option restocked",
		})
	}
	for _, d := range res.ProductRestored {
		add(PhaseOptionStock, Action{
			Type:     ActionSetItemQuantity,
			ItemID:   opts.SellerID(d.ID),
			Quantity: intPtr(opts.RestoreQuantity),
			Reason:   "options on sale again",
		})
	}

	for _, d := range res.Deleted {
		reason := d.ReasonCode
		if d.Message != "" {
			reason += ": " + d.Message
		}
		add(PhaseDelete, Action{
			Type:   ActionDeleteItem,
			ItemID: opts.SellerID(d.ID),
			Reason: reason,
		})
	}

	for _, a := range plan.Actions() {
		plan.Summary.TotalActions++
		switch a.Type {
		case ActionSetItemPrice, ActionSetOptionPrice:
			plan.Summary.PriceActions++
		case ActionSetItemQuantity, ActionSetOptionQuantity:
			plan.Summary.QuantityActions++
		case ActionDeleteItem:
			plan.Summary.DeleteActions++
		}
	}

	return plan
}

func priceReason(d PriceChangedDelta) string {
	return fmt.Sprintf("%d -> %d (%+d)", d.OldValue, d.NewValue, d.Difference())
}

func intPtr(v int) *int {
	return &v
}
