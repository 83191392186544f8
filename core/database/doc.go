// Package database opens the relational store used by the audit sink.
//
// It wraps GORM and configures either MySQL (network DSN with connect,
// read and write timeouts) or SQLite (a local file, or ":memory:" in tests).
// Connections are verified with a ping before they are handed out.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Audit database unavailable", zap.Error(err))
//	}
package database
