// Package middleware contains HTTP middleware for the status server.
//
// # Components
//
//   - auth: API key validation (X-API-Key) with a list of exempt paths, so
//     health probes keep working without credentials.
//   - requestid: assigns every request a UUID, stores it in the Fiber
//     context for logger.WithRequestID and echoes it in X-Request-ID.
package middleware
