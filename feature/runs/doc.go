// Package runs records reconciliation runs and serves them over HTTP.
//
// A run is one execution of the reconciliation against the bucket inputs. The service
// reconciles, renders the report, publishes the artifacts under the run id and, when a
// database is available, stores a history row with one Delta per classified entry.
// History is for auditing only; it is never read back as reconciliation input.
//
// # Routes
//
//	GET  /runs      recent runs, newest first (?limit=)
//	GET  /runs/:id  one run with its deltas
//	POST /runs      execute a run now
package runs
