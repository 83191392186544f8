package reconcile

import (
	"context"
	"errors"
	"net/netip"
	"time"

	apperrors "prefix-list-updater/core/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// recordTimeout bounds how long recorders may take after a cycle, including
// the last cycle before shutdown.
const recordTimeout = 10 * time.Second

// Reconciler drives reconciliation cycles: resolve and read, decide, write,
// and re-read on a retryable write failure.
type Reconciler struct {
	spec     Spec
	resolver Resolver
	reader   Reader
	writer   Writer
	recorder Recorder
	logger   *zap.Logger
	now      func() time.Time
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithRecorder sets the recorder that receives every cycle report.
func WithRecorder(rec Recorder) Option {
	return func(r *Reconciler) {
		r.recorder = rec
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		r.now = now
	}
}

// NewReconciler creates a Reconciler for the given spec and collaborators.
func NewReconciler(spec Spec, resolver Resolver, reader Reader, writer Writer, logger *zap.Logger, opts ...Option) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Reconciler{
		spec:     spec,
		resolver: resolver,
		reader:   reader,
		writer:   writer,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Spec returns the cycle configuration.
func (r *Reconciler) Spec() Spec {
	return r.spec
}

// Reconcile runs one cycle to a terminal state and returns its report.
// Failures are reported, not returned: the next cycle starts fresh.
func (r *Reconciler) Reconcile(ctx context.Context) *Report {
	report := &Report{
		CycleID:   uuid.NewString(),
		ListID:    r.spec.ListID,
		StartedAt: r.now(),
	}
	l := r.logger.With(zap.String("cycle_id", report.CycleID), zap.String("prefix_list_id", r.spec.ListID))
	l.Debug("Cycle started")

	r.run(ctx, l, report)

	report.Duration = r.now().Sub(report.StartedAt)
	if report.Err != nil {
		report.Error = report.Err.Error()
	}
	r.logOutcome(l, report)
	r.record(ctx, l, report)

	return report
}

func (r *Reconciler) run(ctx context.Context, l *zap.Logger, report *Report) {
	maxAttempts := r.spec.attempts()

	for attempt := 1; ; attempt++ {
		report.Attempts = attempt

		addr, snapshot, err := r.observe(ctx)
		if addr.IsValid() {
			report.Address = addr.String()
		}
		if err != nil {
			r.fail(report, err)
			return
		}
		report.ReadVersion = snapshot.Version.Int64()
		l.Debug("Observed state",
			zap.String("address", report.Address),
			zap.Stringer("version", snapshot.Version),
			zap.Int("entries", len(snapshot.Entries)),
		)

		decision := Decide(addr, snapshot, r.spec.Description, r.spec.CIDRSuffix)
		report.Decision = &decision

		if decision.Kind == NoChange {
			report.Outcome = OutcomeNoChange
			return
		}

		l.Info("Prefix list update required",
			zap.String("address", report.Address),
			zap.String("add", decision.Target),
			zap.Strings("remove", decision.Remove),
			zap.Stringer("version", snapshot.Version),
		)

		if r.spec.DryRun {
			report.Outcome = OutcomePlanned
			return
		}

		newVersion, err := r.writer.Apply(ctx, snapshot, decision)
		if err == nil {
			report.Outcome = OutcomeApplied
			report.NewVersion = newVersion.Int64()
			return
		}

		if !apperrors.IsRetryable(err) || attempt >= maxAttempts {
			r.fail(report, err)
			return
		}

		l.Warn("Prefix list write rejected, re-reading",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxAttempts),
		)

		if err := sleep(ctx, r.spec.RetryBackoff); err != nil {
			r.fail(report, err)
			return
		}
	}
}

// observe resolves the public address and reads the prefix list concurrently.
// Neither depends on the other; both must succeed.
func (r *Reconciler) observe(ctx context.Context) (netip.Addr, Snapshot, error) {
	var (
		addr     netip.Addr
		snapshot Snapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := r.resolver.Resolve(gctx)
		if err != nil {
			return err
		}
		addr = a
		return nil
	})
	g.Go(func() error {
		s, err := r.reader.Read(gctx, r.spec.ListID)
		if err != nil {
			return err
		}
		snapshot = s
		return nil
	})

	if err := g.Wait(); err != nil {
		return addr, Snapshot{}, err
	}
	return addr, snapshot, nil
}

func (r *Reconciler) fail(report *Report, err error) {
	report.Outcome = OutcomeFailed
	report.Err = err
}

func (r *Reconciler) logOutcome(l *zap.Logger, report *Report) {
	fields := []zap.Field{
		zap.String("outcome", string(report.Outcome)),
		zap.Int("attempts", report.Attempts),
		zap.Duration("duration", report.Duration),
	}
	if report.Address != "" {
		fields = append(fields, zap.String("address", report.Address))
	}

	switch report.Outcome {
	case OutcomeFailed:
		if errors.Is(report.Err, context.Canceled) {
			l.Info("Cycle interrupted", fields...)
			return
		}
		l.Error("Cycle failed", append(fields, zap.Error(report.Err))...)
	case OutcomeApplied:
		l.Info("Prefix list updated", append(fields, zap.Int64("new_version", report.NewVersion))...)
	case OutcomePlanned:
		l.Info("Dry run: prefix list left unchanged", fields...)
	default:
		l.Debug("Prefix list already up to date", fields...)
	}
}

func (r *Reconciler) record(ctx context.Context, l *zap.Logger, report *Report) {
	if r.recorder == nil {
		return
	}
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()
	if err := r.recorder.Record(rctx, report); err != nil {
		l.Warn("Failed to record cycle report", zap.Error(err))
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
