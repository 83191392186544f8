// Package server is the optional HTTP status surface used by container
// health probes and operators.
//
// # Endpoints
//
//   - GET /healthz: always 200 while the process runs.
//   - GET /readyz: 503 when the last completed cycle failed, else 200.
//   - GET /status: last cycle report and outcome counters as JSON.
//   - POST /reconcile: 202, asks the loop to run a cycle now.
//
// Every response carries X-Request-ID. When an API key is configured,
// /status and /reconcile require it in X-API-Key.
package server
