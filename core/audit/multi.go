package audit

import (
	"context"
	"errors"

	"prefix-list-updater/core/reconcile"
)

// Multi hands every report to each recorder in order. All recorders run even
// when some fail; the failures are joined.
type Multi []reconcile.Recorder

// Record implements reconcile.Recorder.
func (m Multi) Record(ctx context.Context, report *reconcile.Report) error {
	var errs []error
	for _, rec := range m {
		if err := rec.Record(ctx, report); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type skipNoChange struct {
	next reconcile.Recorder
}

// SkipNoChange wraps rec so that cycles with outcome no_change are dropped.
func SkipNoChange(rec reconcile.Recorder) reconcile.Recorder {
	return skipNoChange{next: rec}
}

func (s skipNoChange) Record(ctx context.Context, report *reconcile.Report) error {
	if report.Outcome == reconcile.OutcomeNoChange {
		return nil
	}
	return s.next.Record(ctx, report)
}
