package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the host of the S3-compatible service.
	Endpoint string `mapstructure:"endpoint" default:"s3.amazonaws.com"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Credentials is the bundle used to authenticate against the provider.
// It is read from the standard AWS_* environment variables.
type Credentials struct {
	// AccessKeyID is the access key id (AWS_ACCESS_KEY_ID).
	AccessKeyID string `mapstructure:"access_key_id" default:""`
	// SecretAccessKey is the secret access key (AWS_SECRET_ACCESS_KEY).
	SecretAccessKey string `mapstructure:"secret_access_key" default:""`
	// DefaultRegion is the region of the bucket (AWS_DEFAULT_REGION).
	DefaultRegion string `mapstructure:"default_region" default:""`
	// SessionToken is an optional STS session token (AWS_SESSION_TOKEN).
	SessionToken string `mapstructure:"session_token" default:""`
}
