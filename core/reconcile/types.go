package reconcile

import (
	"errors"
	"strconv"
)

var (
	// ErrMissingBaseline is returned when no baseline collection was supplied.
	ErrMissingBaseline = errors.New("reconcile: baseline collection is missing")
	// ErrMissingCurrent is returned when no crawl collection was supplied.
	ErrMissingCurrent = errors.New("reconcile: current crawl collection is missing")
)

// Availability is the observed sale state of a product.
type Availability string

const (
	AvailabilityOnSale  Availability = "on_sale"
	AvailabilitySoldOut Availability = "sold_out"
	AvailabilityUnknown Availability = "unknown"
)

// Status is the outcome of fetching a product page.
type Status string

const (
	StatusSuccess Status = "success"
	StatusTimeout Status = "timeout"
	StatusError   Status = "error"
	StatusFailed  Status = "failed"
	StatusUnknown Status = "unknown"
)

// IsFailure reports whether the status marks a page that could not be read.
func (s Status) IsFailure() bool {
	switch s {
	case StatusTimeout, StatusError, StatusFailed:
		return true
	default:
		return false
	}
}

// Sold-out reason tags produced by the crawler.
const (
	ReasonProductNotFound = "product_not_found"
	ReasonButtonHidden    = "button_hidden"
	ReasonButtonNotFound  = "button_not_found"
)

// BaselineRecord is the recorded price and quantity of a product or one of its variants.
type BaselineRecord struct {
	// ID is the seller identifier, with the variant index appended for variant records.
	ID string `json:"id"`
	// ProductID is the seller identifier of the owning product.
	ProductID string `json:"product_id"`
	// VariantIndex is the 1-based variant index, 0 for product records.
	VariantIndex int `json:"variant_index,omitempty"`
	// Price is the recorded marketplace price. For variants it is the total price.
	Price int `json:"price"`
	// Quantity is the recorded stock; 0 means sold out.
	Quantity int `json:"quantity"`
	// QuantityRecorded is false when the quantity cell was blank or not a number.
	// Quantity is then 0 but does not mean sold out.
	QuantityRecorded bool `json:"quantity_recorded"`
	// HasVariants is set on product records whose row carried variant entries.
	HasVariants bool `json:"has_variants,omitempty"`
}

// RecordedSoldOut reports whether the baseline recorded the item at quantity 0.
func (r BaselineRecord) RecordedSoldOut() bool {
	return r.QuantityRecorded && r.Quantity == 0
}

// IsVariant reports whether the record describes a variant.
func (r BaselineRecord) IsVariant() bool {
	return r.VariantIndex > 0
}

// Baseline is the recorded state keyed by seller identifier.
type Baseline map[string]BaselineRecord

// VariantRecord is the observed state of one variant.
type VariantRecord struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	IsSoldOut  bool   `json:"is_sold_out"`
	TotalPrice int    `json:"total_price"`
}

// CrawlRecord is the observed state of one product.
type CrawlRecord struct {
	ProductID     string          `json:"product_id"`
	Status        Status          `json:"status"`
	Availability  Availability    `json:"availability"`
	SoldOutReason string          `json:"soldout_reason,omitempty"`
	ErrorMessage  string          `json:"error,omitempty"`
	BasePrice     int             `json:"base_price"`
	HasVariants   bool            `json:"has_variants"`
	Variants      []VariantRecord `json:"variants,omitempty"`
}

// IsObserved reports whether the record can be trusted for price and restock comparison.
func (r CrawlRecord) IsObserved() bool {
	if r.Status.IsFailure() || r.Status == StatusUnknown {
		return false
	}
	return r.Availability == AvailabilityOnSale || r.Availability == AvailabilitySoldOut
}

// Current is the crawl snapshot keyed by bare product id.
type Current map[string]CrawlRecord

// VariantID composes the identifier of a product's variant.
func VariantID(productID string, index int) string {
	return productID + "_" + strconv.Itoa(index)
}

// SoldOutDelta marks a product or variant observed as sold out.
type SoldOutDelta struct {
	ID string `json:"id"`
	// ProductID is set for variant deltas.
	ProductID string `json:"product_id,omitempty"`
}

// RestockedDelta marks an item recorded at quantity 0 that is on sale again.
type RestockedDelta struct {
	ID            string `json:"id"`
	ProductID     string `json:"product_id,omitempty"`
	PriorQuantity int    `json:"prior_quantity"`
}

// PriceChangedDelta carries an old and new price.
// For additional-price deltas both values are additional components, not totals.
type PriceChangedDelta struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id,omitempty"`
	OldValue  int    `json:"old_value"`
	NewValue  int    `json:"new_value"`
}

// Difference returns the signed change.
func (d PriceChangedDelta) Difference() int {
	return d.NewValue - d.OldValue
}

// DeletedDelta marks a product that is gone or could not be reached.
type DeletedDelta struct {
	ID         string `json:"id"`
	ReasonCode string `json:"reason_code"`
	Message    string `json:"message,omitempty"`
}

// PartialSoldOut flags a variant product where only some variants are sold out.
// The product-level quantity cannot express this and needs manual correction.
type PartialSoldOut struct {
	ProductID string `json:"product_id"`
	SoldOut   int    `json:"sold_out"`
	Total     int    `json:"total"`
}

// Summary counts the products seen and the deltas produced.
type Summary struct {
	Products      int `json:"products"`
	Observed      int `json:"observed"`
	Unobserved    int `json:"unobserved"`
	NotInBaseline int `json:"not_in_baseline"`

	SoldOut                int `json:"sold_out"`
	VariantSoldOut         int `json:"variant_sold_out"`
	PartialSoldOut         int `json:"partial_sold_out"`
	Restocked              int `json:"restocked"`
	VariantRestocked       int `json:"variant_restocked"`
	ProductRestored        int `json:"product_restored"`
	PriceChanged           int `json:"price_changed"`
	BasePriceChanged       int `json:"base_price_changed"`
	AdditionalPriceChanged int `json:"additional_price_changed"`
	Deleted                int `json:"deleted"`
}

// Result holds every delta collection computed by one reconciliation run.
// Identifiers are bare product and variant ids; Options.SellerID maps them back.
type Result struct {
	SoldOut        []SoldOutDelta   `json:"sold_out"`
	VariantSoldOut []SoldOutDelta   `json:"variant_sold_out"`
	PartialSoldOut []PartialSoldOut `json:"partial_sold_out"`

	Restocked        []RestockedDelta `json:"restocked"`
	VariantRestocked []RestockedDelta `json:"variant_restocked"`
	// ProductRestored lists variant products recorded at quantity 0 that are on sale again.
	ProductRestored []RestockedDelta `json:"product_restored"`

	PriceChanged           []PriceChangedDelta `json:"price_changed"`
	BasePriceChanged       []PriceChangedDelta `json:"base_price_changed"`
	AdditionalPriceChanged []PriceChangedDelta `json:"additional_price_changed"`

	Deleted []DeletedDelta `json:"deleted"`

	Summary Summary `json:"summary"`
}

// Options tunes identifier mapping and the quantities written by the update plan.
type Options struct {
	// IDPrefix is prepended to crawl product ids to find their baseline records.
	IDPrefix string
	// RestockQuantity is the quantity set for restocked items.
	RestockQuantity int
	// RestoreQuantity is the product-level quantity set for restored variant products.
	RestoreQuantity int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		IDPrefix:        "oliveyoung_",
		RestockQuantity: 200,
		RestoreQuantity: 1,
	}
}

// SellerID maps a bare product or variant id to its seller identifier.
func (o Options) SellerID(id string) string {
	return o.IDPrefix + id
}
