package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"prefix-list-updater/core/reconcile"
	"prefix-list-updater/core/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Keep the prefix list in sync with this host's public IP",
	Long: `Runs reconciliation cycles until interrupted, pausing the configured
interval between the end of one cycle and the start of the next.
With --once a single cycle runs and the exit code reflects its outcome.`,
	RunE: runUpdater,
}

func init() {
	runCmd.Flags().Bool("once", false, "run a single cycle and exit")
	runCmd.Flags().Bool("dry-run", false, "decide but never write")
	RootCmd.AddCommand(runCmd)
}

func runUpdater(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, logg, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logg.Sync() }()

	a, err := newApp(ctx, cfg, logg)
	if err != nil {
		return err
	}

	logg.Info("Starting prefix list updater",
		zap.String("prefix_list_id", cfg.Sync.PrefixListID),
		zap.String("description", cfg.Sync.Description),
		zap.String("ip_service", cfg.Resolver.URL),
		zap.Int("cidr_suffix", cfg.Sync.CIDRSuffix),
		zap.Bool("once", cfg.Sync.Once),
		zap.Bool("dry_run", cfg.Sync.DryRun),
	)

	if cfg.Sync.Once {
		return checkReport(a.reconciler.Reconcile(ctx))
	}

	loop := reconcile.NewLoop(a.reconciler, cfg.Sync.Interval(), logg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	if cfg.Server.Enabled {
		g.Go(func() error {
			srv := server.New(cfg.Server, a.tracker, loop, logg)
			return server.Serve(gctx, srv, cfg.Server.Address(), logg)
		})
	}

	err = g.Wait()
	logg.Info("Shutdown complete")
	return err
}

// checkReport turns a one-shot cycle into the command result. An interrupted
// cycle is a graceful shutdown, not a failure.
func checkReport(report *reconcile.Report) error {
	if report.Succeeded() || errors.Is(report.Err, context.Canceled) {
		return nil
	}
	return fmt.Errorf("cycle %s failed: %w", report.CycleID, report.Err)
}
