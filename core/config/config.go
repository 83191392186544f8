package config

import (
	"errors"
	"reflect"
	"strings"

	"prefix-list-updater/core/audit"
	"prefix-list-updater/core/database"
	"prefix-list-updater/core/logger"
	"prefix-list-updater/core/prefixlist"
	"prefix-list-updater/core/resolver"
	"prefix-list-updater/core/server"
	"prefix-list-updater/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Sync holds the reconciliation settings.
	Sync SyncConfig `mapstructure:"sync"`
	// AWS holds configuration for the EC2 API.
	AWS prefixlist.Config `mapstructure:"aws"`
	// Resolver holds configuration for public IP detection.
	Resolver resolver.Config `mapstructure:"resolver"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Server holds configuration for the optional status server.
	Server server.Config `mapstructure:"server"`
	// Audit selects where cycle reports are recorded.
	Audit audit.Config `mapstructure:"audit"`
	// Storage holds configuration for the audit bucket.
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the audit database.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from, lowest precedence first: struct tag
// defaults, an optional config.yaml in path, environment variables (a .env
// file in path is loaded into the environment first) and flags that were set
// on the command line. The result is validated.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, wrapConfigError("config.yaml", err)
		}
	}

	// Map environment variables to nested keys (e.g. SYNC_PREFIX_LIST_ID -> sync.prefix_list_id)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindValues(v, Config{}, "", flags); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, wrapConfigError("", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every leaf key with Viper:
// its 'default' tag as default, its 'env' tag as an extra environment name
// and its 'flag' tag as the command-line flag overriding it.
func bindValues(v *viper.Viper, iface any, prefix string, flags *pflag.FlagSet) error {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			if err := bindValues(v, reflect.New(field.Type).Elem().Interface(), key, flags); err != nil {
				return err
			}
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))

		if alias := field.Tag.Get("env"); alias != "" {
			canonical := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
			if err := v.BindEnv(key, canonical, alias); err != nil {
				return wrapConfigError(key, err)
			}
		}

		if name := field.Tag.Get("flag"); name != "" && flags != nil {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return wrapConfigError(key, err)
				}
			}
		}
	}

	return nil
}
