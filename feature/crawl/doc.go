// Package crawl reads crawl result files and turns them into a reconcile.Current.
//
// A crawl file is the JSON document written by the page scraper:
//
//	{
//	  "metadata": {"total_crawled": 2, "stats": {...}, "timestamp": "..."},
//	  "products": [
//	    {"product_id": "A000000123", "product_status": "saleOn", "price": 15000},
//	    {"product_id": "A000000124", "status": "timeout", "error": "navigation timeout"}
//	  ]
//	}
//
// Normalize maps the scraper vocabulary onto the reconcile model: missing status means
// success, an error message without status means failed, product_status saleOn/soldOut
// become on sale/sold out and anything else is unknown. Prices are in the source
// currency and converted with the pricing engine. A product with a single option is
// treated as a product without options.
//
// Analyze reproduces the crawl statistics report: successful, sold-out and failed ids.
package crawl
