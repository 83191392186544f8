package prefixlist

// Config holds configuration for the AWS EC2 connection.
type Config struct {
	// Region is the AWS region of the prefix list (e.g., us-east-1). Empty
	// falls back to the SDK's default chain (AWS_REGION, shared config).
	Region string `mapstructure:"region" default:"" env:"AWS_REGION" flag:"region"`
	// Profile selects a named profile from the shared config files.
	Profile string `mapstructure:"profile" default:""`
	// AccessKeyID and SecretAccessKey set static credentials. When empty the
	// default credential chain (env, profile, instance role) is used.
	AccessKeyID     string `mapstructure:"access_key_id" default:""`
	SecretAccessKey string `mapstructure:"secret_access_key" default:""`
	// SessionToken accompanies temporary static credentials.
	SessionToken string `mapstructure:"session_token" default:""`
	// Endpoint overrides the EC2 endpoint (e.g., LocalStack).
	Endpoint string `mapstructure:"endpoint" default:"" validate:"omitempty,url"`
	// TimeoutSeconds bounds each read or write against the API.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30" validate:"gte=1"`
	// MaxSDKAttempts is the SDK's own retry budget per HTTP request.
	MaxSDKAttempts int `mapstructure:"max_sdk_attempts" default:"3" validate:"gte=1"`
}
