// Package reconcile compares a recorded catalog baseline with a fresh crawl snapshot
// and classifies the differences.
//
// # Inputs
//
// The Baseline is keyed by seller identifier ("oliveyoung_A000000123") and holds one
// record per product plus one per variant ("oliveyoung_A000000123_2"). The Current
// snapshot is keyed by the bare product id the crawler uses ("A000000123").
// Options.IDPrefix maps one onto the other.
//
// # Categories
//
// Reconcile produces, in one pass over immutable inputs:
//   - sold out: single products, individual variants, and products with only some
//     variants sold out (flagged for manual correction)
//   - restocked: items recorded at quantity 0 that are on sale again
//   - price changed: single products, variant base prices and variant additional prices
//   - deleted: product_not_found pages and failed fetches (timeout, error, failed)
//
// Price and restock comparison only use products that were successfully observed:
// availability on sale or sold out, and a status that is not a failure or unknown.
//
// # Update Plan
//
// BuildPlan turns a Result into phases that must be applied in PhaseOrder. Variant base
// prices always come before variant additional prices because the marketplace stores the
// additional price relative to the base.
//
// # Usage
//
//	spec := &reconcile.Spec{
//	    Adapter:  catalog.NewFileAdapter(baselinePath, crawlPath, parser, engine),
//	    CacheTTL: 5 * time.Minute,
//	    Options:  reconcile.DefaultOptions(),
//	}
//	res, plan, err := reconcile.ReconcileWithPlan(ctx, spec)
//
// Reconcile itself performs no I/O and can be called directly with in-memory inputs.
package reconcile
