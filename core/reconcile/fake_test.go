package reconcile

import (
	"context"
	"net/netip"
	"sync"

	apperrors "prefix-list-updater/core/errors"
)

// fakeList is an in-memory prefix list with optimistic versioning.
type fakeList struct {
	mu         sync.Mutex
	entries    []Entry
	version    int64
	maxEntries int

	reads  int
	writes int

	readErr error
	// writeErrs are returned, in order, by the next writes.
	writeErrs []error
	// beforeApply runs under the lock before the version check, simulating
	// a concurrent writer.
	beforeApply func(l *fakeList)
}

func newFakeList(entries ...Entry) *fakeList {
	return &fakeList{entries: append([]Entry(nil), entries...), version: 1}
}

func (l *fakeList) snapshot() Snapshot {
	return Snapshot{
		ListID:     "pl-test",
		Entries:    append([]Entry(nil), l.entries...),
		Version:    NewVersion(l.version),
		MaxEntries: l.maxEntries,
	}
}

func (l *fakeList) apply(d Decision, description string) {
	remove := make(map[string]struct{}, len(d.Remove))
	for _, cidr := range d.Remove {
		remove[cidr] = struct{}{}
	}
	kept := l.entries[:0]
	for _, e := range l.entries {
		if _, ok := remove[e.CIDR]; ok {
			continue
		}
		kept = append(kept, e)
	}
	l.entries = append(kept, Entry{CIDR: d.Target, Description: description})
	l.version++
}

func (l *fakeList) Read(ctx context.Context, listID string) (Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reads++
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	if l.readErr != nil {
		return Snapshot{}, l.readErr
	}
	return l.snapshot(), nil
}

func (l *fakeList) Apply(ctx context.Context, snapshot Snapshot, d Decision) (Version, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writes++

	if l.beforeApply != nil {
		hook := l.beforeApply
		l.beforeApply = nil
		hook(l)
	}
	if len(l.writeErrs) > 0 {
		err := l.writeErrs[0]
		l.writeErrs = l.writeErrs[1:]
		return Version{}, err
	}
	if snapshot.Version.Int64() != l.version {
		return Version{}, &apperrors.WriteError{Kind: apperrors.WriteVersionConflict, ListID: snapshot.ListID, Version: snapshot.Version.Int64()}
	}
	l.apply(d, managed)
	return NewVersion(l.version), nil
}

type fakeResolver struct {
	mu    sync.Mutex
	addr  netip.Addr
	err   error
	calls int
}

func (r *fakeResolver) Resolve(ctx context.Context) (netip.Addr, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return netip.Addr{}, r.err
	}
	return r.addr, nil
}

type captureRecorder struct {
	reports []*Report
	err     error
}

func (c *captureRecorder) Record(ctx context.Context, report *Report) error {
	c.reports = append(c.reports, report)
	return c.err
}
