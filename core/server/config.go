package server

// Config holds configuration for the HTTP status server.
type Config struct {
	// Enabled starts the status server alongside the reconcile loop.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required,numeric"`
	// ApiKey protects /status and /reconcile when set. Health probes stay open.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Address returns the listen address for Port.
func (c Config) Address() string {
	return ":" + c.Port
}
