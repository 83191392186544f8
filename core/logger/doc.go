// Package logger provides a structured logging facility based on Zap.
//
// Level "debug" selects zap's development config (ISO8601 timestamps,
// stack traces on warn); any other level selects the production config.
// Format "console" gives colored human output, "json" one object per line.
// Level, time and message are always written under the keys "level", "time"
// and "message".
//
// # Request correlation
//
// The status server stores a request id in the Fiber context.
// WithRequestID attaches it to a logger so every line about one request can
// be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("Reconcile loop started")
//
//	// In a request handler:
//	l := logger.WithRequestID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
