package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"prefix-list-updater/core/reconcile"

	"github.com/spf13/cobra"
)

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what the next cycle would change without writing",
	Long: `Resolves the public IP, reads the prefix list and prints the decision.
The list is never modified.

Examples:
  prefix-list-updater plan --prefix-list-id pl-0123456789abcdef0 --region eu-west-1`,
	RunE: runPlan,
}

func init() {
	RootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, logg, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logg.Sync() }()

	cfg.Sync.DryRun = true
	cfg.Sync.Once = true

	a, err := newApp(ctx, cfg, logg)
	if err != nil {
		return err
	}

	report := a.reconciler.Reconcile(ctx)
	if err := checkReport(report); err != nil {
		return err
	}

	if report.Decision != nil {
		fmt.Fprintln(cmd.OutOrStdout(), planLine(report))
	}
	return nil
}

func planLine(report *reconcile.Report) string {
	d := report.Decision
	if d.Kind == reconcile.NoChange {
		return fmt.Sprintf("%s is up to date at %s (%s)", report.ListID, reconcile.NewVersion(report.ReadVersion), d.Target)
	}
	return fmt.Sprintf("%s at %s: add %s, remove %v", report.ListID, reconcile.NewVersion(report.ReadVersion), d.Target, d.Remove)
}
