package reconcile

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Cycler runs a single reconciliation cycle.
type Cycler interface {
	Reconcile(ctx context.Context) *Report
}

// Loop runs cycles back to back with a pause of Interval between the end of
// one cycle and the start of the next. Cycles never overlap.
type Loop struct {
	cycler   Cycler
	interval time.Duration
	trigger  chan struct{}
	logger   *zap.Logger
}

// NewLoop creates a Loop around cycler.
func NewLoop(cycler Cycler, interval time.Duration, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		cycler:   cycler,
		interval: interval,
		trigger:  make(chan struct{}, 1),
		logger:   logger,
	}
}

// Trigger asks the loop to start the next cycle without waiting for the
// interval to elapse. Triggers received while a cycle is running coalesce
// into a single follow-up cycle. It reports whether a new trigger was queued.
func (l *Loop) Trigger() bool {
	select {
	case l.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

// Run executes cycles until ctx is cancelled. Cancellation interrupts the
// pause immediately and the remaining steps of a running cycle. It returns
// nil on cancellation: shutting down is not a failure.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("Reconcile loop started", zap.Duration("interval", l.interval))

	for {
		l.cycler.Reconcile(ctx)
		if ctx.Err() != nil {
			l.logger.Info("Reconcile loop stopped")
			return nil
		}

		if !l.wait(ctx) {
			l.logger.Info("Reconcile loop stopped")
			return nil
		}
	}
}

// wait pauses for the interval or until a trigger arrives. It returns false
// when ctx is done.
func (l *Loop) wait(ctx context.Context) bool {
	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	case <-l.trigger:
		l.logger.Debug("Cycle triggered")
		return true
	}
}
