package cmd

import (
	"context"
	"time"

	"prefix-list-updater/core/audit"
	"prefix-list-updater/core/config"
	"prefix-list-updater/core/database"
	apperrors "prefix-list-updater/core/errors"
	"prefix-list-updater/core/logger"
	"prefix-list-updater/core/prefixlist"
	"prefix-list-updater/core/reconcile"
	"prefix-list-updater/core/resolver"
	"prefix-list-updater/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the wired components shared by run and plan.
type app struct {
	cfg        *config.Config
	logger     *zap.Logger
	tracker    *audit.Tracker
	reconciler *reconcile.Reconciler
}

// setup loads configuration and logging. Failures are configuration errors.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".", cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, &apperrors.ConfigError{Field: "log", Message: err.Error(), Err: err}
	}
	zap.ReplaceGlobals(logg)

	return cfg, logg, nil
}

// newApp builds the reconciler and its collaborators from cfg.
func newApp(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*app, error) {
	res, err := resolver.New(cfg.Resolver)
	if err != nil {
		return nil, &apperrors.ConfigError{Field: "resolver.url", Message: err.Error(), Err: err}
	}

	api, err := prefixlist.NewAPI(ctx, cfg.AWS)
	if err != nil {
		return nil, &apperrors.ConfigError{Field: "aws", Message: err.Error(), Err: err}
	}
	client := prefixlist.NewClient(api, cfg.Sync.Description, time.Duration(cfg.AWS.TimeoutSeconds)*time.Second)

	tracker := audit.NewTracker()
	recorders := audit.Multi{tracker}
	for _, sink := range durableSinks(ctx, cfg, logg) {
		if !cfg.Audit.IncludeNoop {
			sink = audit.SkipNoChange(sink)
		}
		recorders = append(recorders, sink)
	}

	r := reconcile.NewReconciler(cfg.Sync.Spec(), res, client, client, logg, reconcile.WithRecorder(recorders))

	return &app{
		cfg:        cfg,
		logger:     logg,
		tracker:    tracker,
		reconciler: r,
	}, nil
}

// durableSinks returns the enabled audit sinks. A sink that cannot be set up
// is skipped with a warning; auditing never blocks reconciliation.
func durableSinks(ctx context.Context, cfg *config.Config, logg *zap.Logger) []reconcile.Recorder {
	var sinks []reconcile.Recorder

	if cfg.Audit.Storage {
		if store, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Audit storage unavailable", zap.Error(err))
		} else {
			sinks = append(sinks, audit.NewStorageSink(store, cfg.Storage.Bucket, cfg.Storage.Region, cfg.Audit.StoragePrefix))
			logg.Info("Recording cycles to storage", zap.String("bucket", cfg.Storage.Bucket))
		}
	}

	if cfg.Audit.Database {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Audit database unavailable", zap.Error(err))
		} else {
			sink := audit.NewDatabaseSink(db)
			if err := sink.Migrate(ctx); err != nil {
				logg.Warn("Audit database unavailable", zap.Error(err))
			} else {
				sinks = append(sinks, sink)
				logg.Info("Recording cycles to database", zap.String("driver", cfg.Database.Driver))
			}
		}
	}

	return sinks
}
