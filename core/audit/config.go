package audit

// Config holds configuration for cycle audit records.
type Config struct {
	// IncludeNoop also records cycles that found the list already up to date.
	IncludeNoop bool `mapstructure:"include_noop" default:"false"`
	// Storage writes one JSON object per cycle to the storage bucket.
	Storage bool `mapstructure:"storage" default:"false"`
	// StoragePrefix is the object key prefix inside the bucket.
	StoragePrefix string `mapstructure:"storage_prefix" default:"cycles"`
	// Database writes one row per cycle to the prefix_list_cycles table.
	Database bool `mapstructure:"database" default:"false"`
}
