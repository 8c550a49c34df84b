// Package report renders a reconciliation result into files a person can act on.
//
// # Artifacts
//
// Every run produces one text file per delta category, each with an id list for bulk
// copy-paste and a detail section with old and new values. Both use seller ids:
//
//	1_single_soldout_ids.txt            single products now sold out
//	2_option_soldout_ids.txt            sold-out options (product and option id lists in matching order)
//	3_partial_soldout_products.txt      products with only some options sold out (manual fix)
//	4_partial_restore_products.txt      option products recorded at 0 that are on sale again
//	5_price_changed_single.txt          single product price changes
//	6_price_changed_option_base.txt     option product base price changes
//	7_price_changed_option_additional.txt option additional price changes
//	8_restocked_single.txt              single products back on sale
//	9_restocked_option.txt              options back on sale
//	10_deleted_products.txt             not found or unreachable products
//
// and 0_UPDATE_ORDER.md, the ordering guide. Workbooks builds the bulk upload files
// (UPDATE_1..5 and DELETE_PRODUCTS) from the update plan.
//
// # Usage
//
//	a := report.NewAssembler(opts, cfg.Report)
//	artifacts, err := a.Assemble(report.Meta{RunID: id, GeneratedAt: time.Now()}, res, plan)
//	books, err := a.Workbooks(plan)
//	err = report.WriteDir(cfg.Report.OutputDir, append(artifacts, books...))
package report
