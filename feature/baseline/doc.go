// Package baseline turns the marketplace item export into a reconcile.Baseline.
//
// The export is a workbook with one row per listing. Rows are identified by
// seller_unique_item_id; only identifiers matching the vendor pattern
// (default "^oliveyoung_A") are read, everything else (template description rows,
// other vendors) is ignored.
//
// # Variant Cells
//
// The option_info column packs every variant of a listing into one cell:
//
//	Color||*Red||*0||*120||*oliveyoung_A000000123_1$$Color||*Blue||*500||*80||*oliveyoung_A000000123_2
//
// Entries are separated by "$$" and fields by "||*". Each entry has five positional
// fields: tag, variant name, additional price, stock, variant code. DecodeVariantCell
// decodes a cell on its own; entries with fewer than five fields are dropped and
// numeric fields that do not parse become 0.
//
// A row with variants yields its product record (row price and quantity) plus one
// record per variant keyed "{identifier}_{index}", priced at row price + additional price
// with the entry's stock as quantity.
package baseline
