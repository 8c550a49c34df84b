// Package integrity checks that the reconciler's infrastructure is usable.
//
// Unlike the 'runs' package which executes reconciliations, this package validates what a
// run depends on before one is triggered.
//
// # Checks Provided
//
//   - Structure: the input and report prefixes exist in the storage bucket.
//   - Inputs: the item export workbook and the crawl result file are present.
//   - History: the run history tables match the runs models (columns derived from GORM).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/inputs : Runs input object check.
//   - GET /integrity/history : Runs history schema check.
package integrity
