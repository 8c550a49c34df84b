// Package database opens the run history store.
//
// It wraps GORM with either the sqlite driver (the default, a file under the XDG data
// home) or the mysql driver, and offers a small schema check used after migrations.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Run history disabled", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "runs", []string{"id", "source"})
package database
