// Package audit records the outcome of every reconciliation cycle.
//
// Each recorder implements reconcile.Recorder. Records are write-only: nothing
// in this process reads them back to make decisions.
//
//   - Tracker keeps the last report and counters in memory for the status
//     server.
//   - StorageSink puts one JSON object per cycle in an S3/MinIO bucket.
//   - DatabaseSink inserts one row per cycle into prefix_list_cycles.
//   - Multi fans a report out to several recorders; SkipNoChange drops
//     cycles that left the list untouched.
//
// A recorder failure is logged by the reconciler and never changes the
// cycle outcome.
package audit
