package audit

import (
	"context"
	"sync"
	"time"

	"prefix-list-updater/core/reconcile"
)

// Status is a point-in-time view of the cycles seen by a Tracker.
type Status struct {
	Last          *reconcile.Report `json:"last,omitempty"`
	LastSuccessAt *time.Time        `json:"last_success_at,omitempty"`
	Cycles        int64             `json:"cycles"`
	Applied       int64             `json:"applied"`
	NoChange      int64             `json:"no_change"`
	Planned       int64             `json:"planned"`
	Failed        int64             `json:"failed"`
}

// Tracker keeps the last report and outcome counters in memory.
// It is safe for concurrent use.
type Tracker struct {
	mu     sync.RWMutex
	status Status
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record implements reconcile.Recorder. It never fails.
func (t *Tracker) Record(_ context.Context, report *reconcile.Report) error {
	cp := *report

	t.mu.Lock()
	defer t.mu.Unlock()

	t.status.Last = &cp
	t.status.Cycles++
	switch report.Outcome {
	case reconcile.OutcomeApplied:
		t.status.Applied++
	case reconcile.OutcomeNoChange:
		t.status.NoChange++
	case reconcile.OutcomePlanned:
		t.status.Planned++
	case reconcile.OutcomeFailed:
		t.status.Failed++
	}
	if report.Succeeded() {
		at := report.StartedAt.Add(report.Duration)
		t.status.LastSuccessAt = &at
	}
	return nil
}

// Status returns a copy of the current status.
func (t *Tracker) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := t.status
	if s.Last != nil {
		last := *s.Last
		s.Last = &last
	}
	return s
}

// Ready reports false only when the last completed cycle failed.
func (t *Tracker) Ready() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status.Last == nil || t.status.Last.Succeeded()
}
