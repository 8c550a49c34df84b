// Package products explains the reconciliation of a single product.
//
// GET /products/:id accepts a bare product id or a seller id and returns the baseline
// rows recorded for it, the crawl record, and the deltas and planned actions a run would
// produce for that product alone. Inputs come from the snapshot cache, so repeated
// lookups within the cache TTL do not reload the bucket.
package products
