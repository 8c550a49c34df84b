package baseline

import (
	"fmt"
	"regexp"
	"strings"

	"catalog-reconciler/core/reconcile"
	"catalog-reconciler/core/utils"
)

// Row is one raw row of the item export.
type Row struct {
	Identifier  string
	Price       string
	Quantity    string
	VariantInfo string
}

// Parser converts raw rows into baseline records.
type Parser struct {
	pattern *regexp.Regexp
	decoder Decoder
}

// NewParser creates a Parser. An empty IDPattern accepts every non-empty identifier.
func NewParser(cfg Config) (*Parser, error) {
	p := &Parser{decoder: DefaultDecoder}
	if cfg.EntryDelimiter != "" {
		p.decoder.EntryDelimiter = cfg.EntryDelimiter
	}
	if cfg.FieldDelimiter != "" {
		p.decoder.FieldDelimiter = cfg.FieldDelimiter
	}
	if cfg.IDPattern != "" {
		re, err := regexp.Compile(cfg.IDPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid identifier pattern %q: %w", cfg.IDPattern, err)
		}
		p.pattern = re
	}
	return p, nil
}

// Accepts reports whether id belongs to the vendor.
func (p *Parser) Accepts(id string) bool {
	if id == "" {
		return false
	}
	return p.pattern == nil || p.pattern.MatchString(id)
}

// ParseRow returns the records contributed by one row. Rows from other vendors yield none.
func (p *Parser) ParseRow(row Row) []reconcile.BaselineRecord {
	id := strings.TrimSpace(row.Identifier)
	if !p.Accepts(id) {
		return nil
	}

	price := utils.ToInt(row.Price)
	quantity, recorded := utils.ParseInt(row.Quantity)
	product := reconcile.BaselineRecord{
		ID:               id,
		ProductID:        id,
		Price:            price,
		Quantity:         quantity,
		QuantityRecorded: recorded,
	}

	entries := p.decoder.Decode(row.VariantInfo)
	if len(entries) == 0 {
		return []reconcile.BaselineRecord{product}
	}

	product.HasVariants = true
	records := make([]reconcile.BaselineRecord, 0, len(entries)+1)
	records = append(records, product)
	for _, e := range entries {
		records = append(records, reconcile.BaselineRecord{
			ID:               reconcile.VariantID(id, e.Index),
			ProductID:        id,
			VariantIndex:     e.Index,
			Price:            price + e.AdditionalPrice,
			Quantity:         e.Stock,
			QuantityRecorded: e.StockRecorded,
		})
	}
	return records
}

// Parse builds a Baseline from rows. A later row replaces records of an earlier
// row with the same identifier.
func (p *Parser) Parse(rows []Row) reconcile.Baseline {
	baseline := make(reconcile.Baseline, len(rows))
	for _, row := range rows {
		for _, rec := range p.ParseRow(row) {
			baseline[rec.ID] = rec
		}
	}
	return baseline
}
