package products

import "catalog-reconciler/core/reconcile"

// Detail is the reconciliation view of one product.
type Detail struct {
	ProductID  string                     `json:"product_id"`
	SellerID   string                     `json:"seller_id"`
	InBaseline bool                       `json:"in_baseline"`
	InCrawl    bool                       `json:"in_crawl"`
	Baseline   []reconcile.BaselineRecord `json:"baseline"`
	Crawl      *reconcile.CrawlRecord     `json:"crawl,omitempty"`
	Result     *reconcile.Result          `json:"result,omitempty"`
	Actions    []reconcile.Action         `json:"actions"`
}
