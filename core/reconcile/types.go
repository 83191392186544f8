package reconcile

import (
	"fmt"
	"net/netip"
	"strconv"
	"time"
)

// Version is the prefix list's optimistic-concurrency token. The remote side
// advances it on every successful modification; locally it is only ever
// compared and passed back.
type Version struct {
	n int64
}

// NewVersion wraps a version number returned by the remote API.
func NewVersion(n int64) Version {
	return Version{n: n}
}

// Int64 returns the raw version number for use in API requests.
func (v Version) Int64() int64 {
	return v.n
}

func (v Version) String() string {
	return "v" + strconv.FormatInt(v.n, 10)
}

// Entry is one row of the prefix list.
type Entry struct {
	// CIDR is the address range, e.g. "203.0.113.42/32".
	CIDR string `json:"cidr"`

	// Description is the free-text label attached to the entry.
	Description string `json:"description"`
}

// Snapshot is a consistent read of a prefix list: all of its entries at
// exactly the version reported alongside them.
type Snapshot struct {
	// ListID is the prefix list identifier (pl-...).
	ListID string

	// Entries contains every row, including those not managed by this process.
	Entries []Entry

	// Version is the list version the entries were read at.
	Version Version

	// MaxEntries is the list capacity. Zero when unknown.
	MaxEntries int
}

// Owned returns the distinct CIDRs of entries whose description matches
// exactly, in the order they appear in the snapshot.
func (s Snapshot) Owned(description string) []string {
	seen := make(map[string]struct{})
	var owned []string
	for _, e := range s.Entries {
		if e.Description != description {
			continue
		}
		if _, dup := seen[e.CIDR]; dup {
			continue
		}
		seen[e.CIDR] = struct{}{}
		owned = append(owned, e.CIDR)
	}
	return owned
}

// CIDR formats an observed address with the configured suffix.
func CIDR(addr netip.Addr, suffix int) string {
	return fmt.Sprintf("%s/%d", addr.Unmap(), suffix)
}

// DecisionKind tags a Decision.
type DecisionKind string

const (
	// NoChange means the owned set already is exactly the target CIDR.
	NoChange DecisionKind = "no_change"
	// Replace means Remove must be dropped and Target added in one write.
	Replace DecisionKind = "replace"
)

// Decision is the outcome of comparing the observed address with a snapshot.
type Decision struct {
	// Kind is NoChange or Replace.
	Kind DecisionKind `json:"kind"`

	// Target is the CIDR that should be the single owned entry.
	Target string `json:"target"`

	// Remove lists every owned CIDR to delete. Empty for NoChange and for a
	// list with no owned entry yet.
	Remove []string `json:"remove"`
}

// Add returns the CIDR to add, or "" for NoChange.
func (d Decision) Add() string {
	if d.Kind != Replace {
		return ""
	}
	return d.Target
}

func (d Decision) String() string {
	if d.Kind == NoChange {
		return fmt.Sprintf("no change (%s)", d.Target)
	}
	return fmt.Sprintf("replace %v with %s", d.Remove, d.Target)
}

// Spec defines the configuration of a reconciliation cycle.
type Spec struct {
	// ListID is the prefix list to keep in sync.
	ListID string

	// Description marks the entries owned by this process. Exact match.
	Description string

	// CIDRSuffix is appended to the observed address (32 for a single host).
	CIDRSuffix int

	// MaxAttempts bounds read-decide-write attempts per cycle. Values below
	// one are treated as one.
	MaxAttempts int

	// RetryBackoff is the pause before re-reading after a retryable write failure.
	RetryBackoff time.Duration

	// DryRun stops the cycle after the decision.
	DryRun bool
}

func (s Spec) attempts() int {
	if s.MaxAttempts < 1 {
		return 1
	}
	return s.MaxAttempts
}

// Outcome is the terminal state of one cycle.
type Outcome string

const (
	// OutcomeApplied means the list was modified.
	OutcomeApplied Outcome = "applied"
	// OutcomeNoChange means the list already held exactly the target entry.
	OutcomeNoChange Outcome = "no_change"
	// OutcomePlanned means a change was needed but the cycle ran in dry-run mode.
	OutcomePlanned Outcome = "planned"
	// OutcomeFailed means the cycle ended without reaching the desired state.
	OutcomeFailed Outcome = "failed"
)

// Report describes one completed cycle.
type Report struct {
	// CycleID uniquely identifies the cycle in logs and audit records.
	CycleID string `json:"cycle_id"`

	// ListID is the prefix list the cycle worked on.
	ListID string `json:"list_id"`

	// Outcome is the terminal state.
	Outcome Outcome `json:"outcome"`

	// Address is the last observed public address. Empty if resolution failed.
	Address string `json:"address,omitempty"`

	// Decision is the last decision taken. Nil if the cycle never got that far.
	Decision *Decision `json:"decision,omitempty"`

	// Attempts counts read-decide(-write) passes, including the first.
	Attempts int `json:"attempts"`

	// ReadVersion is the list version of the last read.
	ReadVersion int64 `json:"read_version,omitempty"`

	// NewVersion is the version returned by a successful write.
	NewVersion int64 `json:"new_version,omitempty"`

	// Err is the failure that ended the cycle.
	Err error `json:"-"`

	// Error is Err rendered for serialization.
	Error string `json:"error,omitempty"`

	// StartedAt is when the cycle began.
	StartedAt time.Time `json:"started_at"`

	// Duration is the wall time of the cycle.
	Duration time.Duration `json:"duration"`
}

// Succeeded reports whether the cycle ended in a non-failed state.
func (r *Report) Succeeded() bool {
	return r.Outcome != OutcomeFailed
}
