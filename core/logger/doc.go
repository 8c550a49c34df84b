// Package logger builds the zap logger shared by the CLI and the HTTP server.
//
// Level "debug" selects zap's development preset; any other level uses the
// production preset at that level. Format "console" switches to colored,
// human-readable output; anything else writes JSON lines with the keys
// level, time and message.
//
// Core packages (pricing, reconcile, baseline, crawl, report) never log.
// Loggers are created at the command or handler boundary and narrowed with:
//
//	l := logger.WithRun(log, runID)  // reconciliation runs
//	l := logger.WithRayID(log, c)    // HTTP handlers, after the rayid middleware
package logger
