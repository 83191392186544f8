package reconcile

import (
	"context"
	"net/netip"
)

// Resolver observes the current public address.
type Resolver interface {
	// Resolve returns the address or a *errors.NetworkError. It never retries.
	Resolve(ctx context.Context) (netip.Addr, error)
}

// Reader fetches a consistent snapshot of a prefix list.
type Reader interface {
	// Read returns every entry together with the version they were read at,
	// or a *errors.RemoteError.
	Read(ctx context.Context, listID string) (Snapshot, error)
}

// Writer applies a Replace decision to a prefix list.
type Writer interface {
	// Apply submits the decision tagged with the version observed in the
	// preceding read. A stale version is rejected with a *errors.WriteError
	// of kind VersionConflict and nothing is applied.
	Apply(ctx context.Context, snapshot Snapshot, decision Decision) (Version, error)
}

// Recorder receives the report of every completed cycle.
type Recorder interface {
	Record(ctx context.Context, report *Report) error
}
