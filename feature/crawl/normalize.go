package crawl

import (
	"sort"
	"strings"

	"catalog-reconciler/core/pricing"
	"catalog-reconciler/core/reconcile"
	"catalog-reconciler/core/utils"
)

// Normalize converts every product of f into the reconcile model.
// Products without an id are dropped; a repeated id keeps the last record.
// A nil engine leaves prices untouched.
func Normalize(f *File, engine *pricing.Engine) reconcile.Current {
	current := make(reconcile.Current, len(f.Products))
	for _, p := range f.Products {
		rec, ok := NormalizeProduct(p, engine)
		if !ok {
			continue
		}
		current[rec.ProductID] = rec
	}
	return current
}

// NormalizeProduct converts one crawled product. It reports false when the product has no id.
func NormalizeProduct(p Product, engine *pricing.Engine) (reconcile.CrawlRecord, bool) {
	id := strings.TrimSpace(p.ProductID)
	if id == "" {
		return reconcile.CrawlRecord{}, false
	}

	rec := reconcile.CrawlRecord{
		ProductID:    id,
		Status:       normalizeStatus(p.Status, p.Error),
		Availability: normalizeAvailability(p.ProductStatus),
		ErrorMessage: p.Error,
		BasePrice:    convert(engine, p.Price),
	}
	if rec.Availability != reconcile.AvailabilityOnSale {
		rec.SoldOutReason = strings.TrimSpace(p.SoldOutReason)
	}

	// A single option carries no choice and is read as a plain product.
	if !p.HasOptions || len(p.Options) < 2 {
		return rec, true
	}

	rec.HasVariants = true
	rec.Variants = make([]reconcile.VariantRecord, 0, len(p.Options))
	for i, o := range p.Options {
		index := o.Index
		if index <= 0 {
			index = i + 1
		}
		rec.Variants = append(rec.Variants, reconcile.VariantRecord{
			Index:      index,
			Name:       strings.TrimSpace(o.Name),
			IsSoldOut:  o.IsSoldOut,
			TotalPrice: convert(engine, o.Price),
		})
	}
	sort.SliceStable(rec.Variants, func(i, j int) bool {
		return rec.Variants[i].Index < rec.Variants[j].Index
	})
	return rec, true
}

func convert(engine *pricing.Engine, raw any) int {
	amount := utils.ToInt(raw)
	if engine == nil {
		if amount < 0 {
			return 0
		}
		return amount
	}
	return engine.ConvertObserved(amount)
}

func normalizeStatus(status, errMsg string) reconcile.Status {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "":
		if strings.TrimSpace(errMsg) != "" {
			return reconcile.StatusFailed
		}
		return reconcile.StatusSuccess
	case "success", "ok", "done":
		return reconcile.StatusSuccess
	case "timeout":
		return reconcile.StatusTimeout
	case "error":
		return reconcile.StatusError
	case "failed", "failure":
		return reconcile.StatusFailed
	default:
		return reconcile.StatusUnknown
	}
}

func normalizeAvailability(productStatus string) reconcile.Availability {
	key := strings.ToLower(strings.TrimSpace(productStatus))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	switch key {
	case "saleon", "onsale":
		return reconcile.AvailabilityOnSale
	case "soldout":
		return reconcile.AvailabilitySoldOut
	default:
		return reconcile.AvailabilityUnknown
	}
}
