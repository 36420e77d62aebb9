// Package config provides configuration management for object-probe.
//
// It utilizes Viper for loading configuration from environment variables,
// with an optional .env file loaded first through godotenv.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - AWS: credentials and region (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_DEFAULT_REGION)
//   - Storage: endpoint, TLS and timeout of the S3-compatible service
//   - Probe: default bucket and key
//   - Log: logging level and format
//
// Nested keys map to environment variables by upper-casing and replacing dots
// with underscores, so aws.default_region is read from AWS_DEFAULT_REGION.
//
// # Validation
//
// Validate reports every absent required key at once as a *MissingError, which
// matches ErrMissingConfiguration. Callers check it before building a storage
// client so no request is sent with partial credentials.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    fmt.Println("Error:", err)
//	}
package config
