// Package config provides configuration management for the prefix list updater.
//
// It utilizes Viper for loading configuration from defaults, an optional
// config.yaml, environment variables (with .env support through godotenv)
// and command-line flags, in increasing order of precedence.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Sync: prefix list id, owned-entry description, interval, CIDR suffix, retries
//   - AWS: region, credentials and endpoint of the EC2 API
//   - Resolver: public IP detection URL and timeout
//   - Log: logging level and format
//   - Server: optional status server
//   - Audit, Storage, Database: where cycle reports are recorded
//
// Nested keys map to environment variables by upper-casing and replacing
// dots, e.g. SYNC_PREFIX_LIST_ID for sync.prefix_list_id. The short names
// PREFIX_LIST_ID, AWS_REGION, ENTRY_DESCRIPTION, CHECK_INTERVAL,
// IP_SERVICE_URL and CIDR_SUFFIX are accepted as well.
//
// # Validation
//
// LoadConfig validates the result with go-playground/validator and returns a
// *errors.ConfigError naming the offending key.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".", cmd.Flags())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Sync.PrefixListID)
package config
