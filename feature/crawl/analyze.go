package crawl

import "catalog-reconciler/core/reconcile"

// ErrorIDs groups failed product ids by failure kind.
type ErrorIDs struct {
	Timeout []string `json:"timeout"`
	Unknown []string `json:"unknown"`
	Failed  []string `json:"failed"`
}

// Count returns the number of failed products.
func (e ErrorIDs) Count() int {
	return len(e.Timeout) + len(e.Unknown) + len(e.Failed)
}

// SoldOutDetail describes one sold-out product.
type SoldOutDetail struct {
	ProductID     string `json:"product_id"`
	SoldOutReason string `json:"soldout_reason"`
	URL           string `json:"url"`
	Timestamp     string `json:"timestamp"`
}

// AnalysisSummary holds the headline counts.
type AnalysisSummary struct {
	TotalProducts   int `json:"total_products"`
	SuccessfulCount int `json:"successful_count"`
	SoldOutCount    int `json:"soldout_count"`
	ErrorCount      int `json:"error_count"`
}

// Analysis is the statistics report of one crawl file.
type Analysis struct {
	Timestamp      string          `json:"extraction_timestamp"`
	Metadata       Metadata        `json:"metadata"`
	Summary        AnalysisSummary `json:"summary"`
	SoldOutIDs     []string        `json:"soldout_ids"`
	ErrorIDs       ErrorIDs        `json:"error_ids"`
	SuccessfulIDs  []string        `json:"successful_ids"`
	SoldOutReasons map[string]int  `json:"soldout_reasons"`
	SoldOutDetails []SoldOutDetail `json:"soldout_details"`
}

// SuccessRate returns the share of successfully observed products, 0 for an empty file.
func (a *Analysis) SuccessRate() float64 {
	if a.Summary.TotalProducts == 0 {
		return 0
	}
	return float64(a.Summary.SuccessfulCount) / float64(a.Summary.TotalProducts)
}

// Analyze computes crawl statistics in file order.
// A product lands in at most one error bucket: timeout, then unknown availability,
// then any other failure.
func Analyze(f *File) *Analysis {
	a := &Analysis{
		Timestamp:      f.Metadata.Timestamp,
		Metadata:       f.Metadata,
		SoldOutIDs:     []string{},
		SuccessfulIDs:  []string{},
		SoldOutReasons: map[string]int{},
		SoldOutDetails: []SoldOutDetail{},
		ErrorIDs:       ErrorIDs{Timeout: []string{}, Unknown: []string{}, Failed: []string{}},
	}

	for _, p := range f.Products {
		rec, ok := NormalizeProduct(p, nil)
		if !ok {
			continue
		}
		a.Summary.TotalProducts++

		if rec.Availability == reconcile.AvailabilitySoldOut {
			a.SoldOutIDs = append(a.SoldOutIDs, rec.ProductID)
			reason := rec.SoldOutReason
			if reason == "" {
				reason = "unknown"
			}
			a.SoldOutReasons[reason]++
			a.SoldOutDetails = append(a.SoldOutDetails, SoldOutDetail{
				ProductID:     rec.ProductID,
				SoldOutReason: reason,
				URL:           p.URL,
				Timestamp:     p.Timestamp,
			})
		}

		switch {
		case rec.Status == reconcile.StatusTimeout:
			a.ErrorIDs.Timeout = append(a.ErrorIDs.Timeout, rec.ProductID)
		case rec.Availability == reconcile.AvailabilityUnknown:
			a.ErrorIDs.Unknown = append(a.ErrorIDs.Unknown, rec.ProductID)
		case rec.Status.IsFailure() || rec.Status == reconcile.StatusUnknown:
			a.ErrorIDs.Failed = append(a.ErrorIDs.Failed, rec.ProductID)
		}

		if rec.IsObserved() {
			a.SuccessfulIDs = append(a.SuccessfulIDs, rec.ProductID)
		}
	}

	a.Summary.SuccessfulCount = len(a.SuccessfulIDs)
	a.Summary.SoldOutCount = len(a.SoldOutIDs)
	a.Summary.ErrorCount = a.ErrorIDs.Count()
	return a
}
