package config

import (
	"time"

	"prefix-list-updater/core/reconcile"
)

// SyncConfig holds the reconciliation settings.
type SyncConfig struct {
	// PrefixListID is the managed prefix list to keep in sync (pl-...).
	PrefixListID string `mapstructure:"prefix_list_id" default:"" env:"PREFIX_LIST_ID" flag:"prefix-list-id" validate:"required,startswith=pl-"`
	// Description marks the entries owned by this process.
	Description string `mapstructure:"description" default:"Auto-updated host IP" env:"ENTRY_DESCRIPTION" flag:"description" validate:"required,max=255"`
	// IntervalSeconds is the pause between the end of one cycle and the start of the next.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"300" env:"CHECK_INTERVAL" flag:"interval" validate:"gte=1"`
	// CIDRSuffix is appended to the observed address.
	CIDRSuffix int `mapstructure:"cidr_suffix" default:"32" env:"CIDR_SUFFIX" flag:"cidr-suffix" validate:"gte=0,lte=32"`
	// MaxAttempts bounds read-decide-write attempts within one cycle.
	MaxAttempts int `mapstructure:"max_attempts" default:"3" validate:"gte=1"`
	// RetryBackoffMs is the pause before re-reading after a rejected write.
	RetryBackoffMs int `mapstructure:"retry_backoff_ms" default:"1000" validate:"gte=0"`
	// Once runs a single cycle and exits with its result.
	Once bool `mapstructure:"once" default:"false" flag:"once"`
	// DryRun decides but never writes.
	DryRun bool `mapstructure:"dry_run" default:"false" flag:"dry-run"`
}

// Interval returns IntervalSeconds as a duration.
func (c SyncConfig) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// Spec converts the settings into a reconcile.Spec.
func (c SyncConfig) Spec() reconcile.Spec {
	return reconcile.Spec{
		ListID:       c.PrefixListID,
		Description:  c.Description,
		CIDRSuffix:   c.CIDRSuffix,
		MaxAttempts:  c.MaxAttempts,
		RetryBackoff: time.Duration(c.RetryBackoffMs) * time.Millisecond,
		DryRun:       c.DryRun,
	}
}
