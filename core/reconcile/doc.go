// Package reconcile keeps a single owned entry of a managed prefix list in
// sync with the host's public address.
//
// # Architecture
//
// A cycle has four collaborators:
//
// 1. Resolver: observes the current public address.
//
// 2. Reader: reads all prefix list entries plus the version they belong to.
//
// 3. Decide: a pure function turning (address, snapshot) into NoChange or
//    Replace{Remove, Target}. Only entries carrying the configured
//    description are owned; everything else is invisible to it.
//
// 4. Writer: submits Remove and Target in one modification tagged with the
//    version from the read. A stale version is rejected atomically.
//
// # Concurrency
//
// Resolve and Read are independent and run concurrently. The only
// synchronisation with other writers (other instances, console edits) is the
// prefix list version: on a VersionConflict the Reconciler re-reads, decides
// again and retries, up to Spec.MaxAttempts passes per cycle. Blind retry of
// the write alone is never attempted.
//
// # Usage Example
//
//	r := reconcile.NewReconciler(spec, resolver, client, client, logger,
//	    reconcile.WithRecorder(recorder))
//
//	// One cycle
//	report := r.Reconcile(ctx)
//
//	// Forever, every five minutes
//	err := reconcile.NewLoop(r, 5*time.Minute, logger).Run(ctx)
package reconcile
