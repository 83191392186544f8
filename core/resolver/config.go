package resolver

// Config holds configuration for public IP detection.
type Config struct {
	// URL is the detection endpoint. http(s) URLs must answer a GET with the
	// caller's address as plain text; dns://server/name queries an A record.
	URL string `mapstructure:"url" default:"https://api.ipify.org" env:"IP_SERVICE_URL" flag:"ip-service" validate:"required,resolver_url"`
	// TimeoutSeconds bounds a single lookup.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10" validate:"gte=1"`
}
