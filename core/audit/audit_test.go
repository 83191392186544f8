package audit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"prefix-list-updater/core/audit"
	"prefix-list-updater/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var started = time.Date(2024, 3, 9, 23, 59, 30, 0, time.UTC)

func report(outcome reconcile.Outcome) *reconcile.Report {
	return &reconcile.Report{
		CycleID:     "8f14e45f-ceea-4e67-a0a5-0c7c5f3a8d21",
		ListID:      "pl-0123456789abcdef0",
		Outcome:     outcome,
		Address:     "203.0.113.42",
		Attempts:    1,
		ReadVersion: 5,
		StartedAt:   started,
		Duration:    1500 * time.Millisecond,
	}
}

type recorderFunc func(ctx context.Context, r *reconcile.Report) error

func (f recorderFunc) Record(ctx context.Context, r *reconcile.Report) error { return f(ctx, r) }

func TestTracker(t *testing.T) {
	tr := audit.NewTracker()
	assert.True(t, tr.Ready(), "ready before the first cycle")
	assert.Nil(t, tr.Status().Last)

	ctx := context.Background()
	require.NoError(t, tr.Record(ctx, report(reconcile.OutcomeApplied)))
	require.NoError(t, tr.Record(ctx, report(reconcile.OutcomeNoChange)))
	require.NoError(t, tr.Record(ctx, report(reconcile.OutcomeFailed)))

	assert.False(t, tr.Ready())

	s := tr.Status()
	assert.Equal(t, int64(3), s.Cycles)
	assert.Equal(t, int64(1), s.Applied)
	assert.Equal(t, int64(1), s.NoChange)
	assert.Equal(t, int64(1), s.Failed)
	assert.Equal(t, reconcile.OutcomeFailed, s.Last.Outcome)
	require.NotNil(t, s.LastSuccessAt)
	assert.Equal(t, started.Add(1500*time.Millisecond), *s.LastSuccessAt)

	require.NoError(t, tr.Record(ctx, report(reconcile.OutcomePlanned)))
	assert.True(t, tr.Ready())
	assert.Equal(t, int64(1), tr.Status().Planned)
}

func TestTracker_StatusIsACopy(t *testing.T) {
	tr := audit.NewTracker()
	r := report(reconcile.OutcomeApplied)
	require.NoError(t, tr.Record(context.Background(), r))

	r.Address = "198.51.100.1"
	s := tr.Status()
	s.Last.Address = "192.0.2.1"

	assert.Equal(t, "203.0.113.42", tr.Status().Last.Address)
}

func TestMulti(t *testing.T) {
	var calls []string
	rec := func(name string, err error) reconcile.Recorder {
		return recorderFunc(func(context.Context, *reconcile.Report) error {
			calls = append(calls, name)
			return err
		})
	}

	m := audit.Multi{
		rec("a", nil),
		rec("b", errors.New("bucket unreachable")),
		rec("c", errors.New("table locked")),
	}

	err := m.Record(context.Background(), report(reconcile.OutcomeApplied))

	assert.Equal(t, []string{"a", "b", "c"}, calls)
	assert.ErrorContains(t, err, "bucket unreachable")
	assert.ErrorContains(t, err, "table locked")
	assert.NoError(t, audit.Multi{}.Record(context.Background(), report(reconcile.OutcomeApplied)))
}

func TestSkipNoChange(t *testing.T) {
	var seen []reconcile.Outcome
	rec := audit.SkipNoChange(recorderFunc(func(_ context.Context, r *reconcile.Report) error {
		seen = append(seen, r.Outcome)
		return nil
	}))

	for _, o := range []reconcile.Outcome{
		reconcile.OutcomeApplied,
		reconcile.OutcomeNoChange,
		reconcile.OutcomePlanned,
		reconcile.OutcomeFailed,
	} {
		require.NoError(t, rec.Record(context.Background(), report(o)))
	}

	assert.Equal(t, []reconcile.Outcome{reconcile.OutcomeApplied, reconcile.OutcomePlanned, reconcile.OutcomeFailed}, seen)
}
