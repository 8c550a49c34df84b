package reconcile

import "sort"

// Reconcile compares the crawl snapshot against the baseline and classifies every change.
//
// Both inputs are read-only; a nil collection is the only error. Products are visited in
// id order so the output is deterministic. Per product the checks run in this order:
//
//  1. product_not_found or a failed fetch: deleted, nothing else is claimed
//  2. sold-out state (product level, or per variant with the partial-sale flag)
//  3. restock and price comparison, only for successfully observed products
func Reconcile(baseline Baseline, current Current, opts Options) (*Result, error) {
	if baseline == nil {
		return nil, ErrMissingBaseline
	}
	if current == nil {
		return nil, ErrMissingCurrent
	}

	ids := make([]string, 0, len(current))
	for id := range current {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	res := &Result{}
	for _, id := range ids {
		rec := current[id]
		if rec.ProductID == "" {
			rec.ProductID = id
		}
		res.Summary.Products++

		if deleted, ok := deletedDelta(rec); ok {
			res.Deleted = append(res.Deleted, deleted)
			continue
		}

		if rec.IsObserved() {
			res.Summary.Observed++
			if _, ok := baseline[opts.SellerID(rec.ProductID)]; !ok {
				res.Summary.NotInBaseline++
			}
		} else {
			res.Summary.Unobserved++
		}

		if rec.HasVariants && len(rec.Variants) > 0 {
			classifyVariants(res, baseline, rec, opts)
		} else {
			classifySingle(res, baseline, rec, opts)
		}
	}

	res.summarize()
	return res, nil
}

// deletedDelta reports whether the record marks a removed or unreachable product.
func deletedDelta(rec CrawlRecord) (DeletedDelta, bool) {
	if rec.SoldOutReason == ReasonProductNotFound {
		return DeletedDelta{ID: rec.ProductID, ReasonCode: ReasonProductNotFound, Message: rec.ErrorMessage}, true
	}
	if rec.Status.IsFailure() {
		return DeletedDelta{ID: rec.ProductID, ReasonCode: string(rec.Status), Message: rec.ErrorMessage}, true
	}
	return DeletedDelta{}, false
}

func classifySingle(res *Result, baseline Baseline, rec CrawlRecord, opts Options) {
	if rec.Availability == AvailabilitySoldOut {
		res.SoldOut = append(res.SoldOut, SoldOutDelta{ID: rec.ProductID})
	}

	if !rec.IsObserved() {
		return
	}
	prior, ok := baseline[opts.SellerID(rec.ProductID)]
	if !ok {
		return
	}

	if prior.RecordedSoldOut() && rec.Availability == AvailabilityOnSale {
		res.Restocked = append(res.Restocked, RestockedDelta{ID: rec.ProductID, PriorQuantity: prior.Quantity})
	}
	if priceChanged(prior.Price, rec.BasePrice) {
		res.PriceChanged = append(res.PriceChanged, PriceChangedDelta{
			ID:       rec.ProductID,
			OldValue: prior.Price,
			NewValue: rec.BasePrice,
		})
	}
}

func classifyVariants(res *Result, baseline Baseline, rec CrawlRecord, opts Options) {
	soldOut := 0
	for _, v := range rec.Variants {
		if v.IsSoldOut {
			soldOut++
			res.VariantSoldOut = append(res.VariantSoldOut, SoldOutDelta{
				ID:        VariantID(rec.ProductID, v.Index),
				ProductID: rec.ProductID,
			})
		}
	}
	if soldOut > 0 && soldOut < len(rec.Variants) {
		res.PartialSoldOut = append(res.PartialSoldOut, PartialSoldOut{
			ProductID: rec.ProductID,
			SoldOut:   soldOut,
			Total:     len(rec.Variants),
		})
	}

	if !rec.IsObserved() {
		return
	}

	prior, hasProduct := baseline[opts.SellerID(rec.ProductID)]
	if hasProduct && prior.RecordedSoldOut() && rec.Availability == AvailabilityOnSale {
		res.ProductRestored = append(res.ProductRestored, RestockedDelta{ID: rec.ProductID, PriorQuantity: prior.Quantity})
	}

	// One base delta per product, however many variants observe it.
	if hasProduct && priceChanged(prior.Price, rec.BasePrice) {
		res.BasePriceChanged = append(res.BasePriceChanged, PriceChangedDelta{
			ID:       rec.ProductID,
			OldValue: prior.Price,
			NewValue: rec.BasePrice,
		})
	}

	basesKnown := hasProduct && prior.Price > 0 && rec.BasePrice > 0
	for _, v := range rec.Variants {
		vid := VariantID(rec.ProductID, v.Index)
		priorVariant, ok := baseline[opts.SellerID(vid)]
		if !ok {
			continue
		}

		if priorVariant.RecordedSoldOut() && !v.IsSoldOut {
			res.VariantRestocked = append(res.VariantRestocked, RestockedDelta{
				ID:            vid,
				ProductID:     rec.ProductID,
				PriorQuantity: priorVariant.Quantity,
			})
		}

		if !basesKnown || v.TotalPrice <= 0 {
			continue
		}
		oldAdditional := priorVariant.Price - prior.Price
		newAdditional := v.TotalPrice - rec.BasePrice
		if oldAdditional != newAdditional {
			res.AdditionalPriceChanged = append(res.AdditionalPriceChanged, PriceChangedDelta{
				ID:        vid,
				ProductID: rec.ProductID,
				OldValue:  oldAdditional,
				NewValue:  newAdditional,
			})
		}
	}
}

func priceChanged(old, current int) bool {
	return old > 0 && current > 0 && old != current
}

func (r *Result) summarize() {
	s := &r.Summary
	s.SoldOut = len(r.SoldOut)
	s.VariantSoldOut = len(r.VariantSoldOut)
	s.PartialSoldOut = len(r.PartialSoldOut)
	s.Restocked = len(r.Restocked)
	s.VariantRestocked = len(r.VariantRestocked)
	s.ProductRestored = len(r.ProductRestored)
	s.PriceChanged = len(r.PriceChanged)
	s.BasePriceChanged = len(r.BasePriceChanged)
	s.AdditionalPriceChanged = len(r.AdditionalPriceChanged)
	s.Deleted = len(r.Deleted)
}

// IsEmpty reports whether the run produced no deltas at all.
func (r *Result) IsEmpty() bool {
	s := r.Summary
	return s.SoldOut+s.VariantSoldOut+s.PartialSoldOut+s.Restocked+s.VariantRestocked+
		s.ProductRestored+s.PriceChanged+s.BasePriceChanged+s.AdditionalPriceChanged+s.Deleted == 0
}
