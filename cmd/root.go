package cmd

import (
	"errors"
	"fmt"
	"os"

	apperrors "prefix-list-updater/core/errors"
	"prefix-list-updater/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	exitFailure = 1
	exitConfig  = 2
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "prefix-list-updater",
	Short: "Keep this host's public IP in an AWS managed prefix list",
	Long: `prefix-list-updater detects the public IPv4 address of the host it runs on
and keeps it as the single entry it owns in an AWS VPC managed prefix list.
Entries with a different description are never touched; concurrent writers
are detected through the list version and retried.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with 1 on failure or 2 on a
// configuration error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the debug config to get ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, apperrors.ErrInvalidConfig) {
		return exitConfig
	}
	return exitFailure
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String("prefix-list-id", "", "managed prefix list to update (pl-...)")
	flags.String("region", "", "AWS region of the prefix list")
	flags.String("description", "", "description marking the entry owned by this host")
	flags.Int("interval", 0, "seconds between checks")
	flags.String("ip-service", "", "public IP service (https://... or dns://server/name)")
	flags.Int("cidr-suffix", 0, "CIDR suffix appended to the address")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	RootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &apperrors.ConfigError{Message: err.Error(), Err: err}
	})
}
