package config

import (
	"errors"
	"reflect"
	"strings"

	"object-probe/core/logger"
	"object-probe/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingConfiguration is matched by every error reporting absent required keys.
var ErrMissingConfiguration = errors.New("missing configuration")

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// AWS holds the credential bundle and region.
	AWS storage.Credentials `mapstructure:"aws"`
	// Storage holds configuration for the object storage endpoint.
	Storage storage.Config `mapstructure:"storage"`
	// Probe holds the default bucket and key to check.
	Probe ProbeConfig `mapstructure:"probe"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// ProbeConfig holds the default target of a probe. Command-line flags win over it.
type ProbeConfig struct {
	// Bucket is the bucket to look in.
	Bucket string `mapstructure:"bucket" default:""`
	// Key is the object key to look for.
	Key string `mapstructure:"key" default:""`
}

// MissingError lists required configuration keys that are not set.
type MissingError struct {
	// Keys holds the environment variable names, in declaration order.
	Keys []string
}

func (e *MissingError) Error() string {
	return "required configuration is not set: " + strings.Join(e.Keys, ", ")
}

func (e *MissingError) Unwrap() error {
	return ErrMissingConfiguration
}

// requiredKeys are the viper keys that must be non-blank before a client is built.
var requiredKeys = []string{
	"aws.access_key_id",
	"aws.secret_access_key",
	"aws.default_region",
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := ".env"
	if path != "" && path != "." {
		envPath = path + "/.env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. AWS_DEFAULT_REGION -> aws.default_region)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate verifies that every required key is present.
// It returns a *MissingError naming the absent environment variables.
func (c *Config) Validate() error {
	values := map[string]string{
		"aws.access_key_id":     c.AWS.AccessKeyID,
		"aws.secret_access_key": c.AWS.SecretAccessKey,
		"aws.default_region":    c.AWS.DefaultRegion,
	}

	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(values[key]) == "" {
			missing = append(missing, EnvName(key))
		}
	}
	if len(missing) > 0 {
		return &MissingError{Keys: missing}
	}
	return nil
}

// EnvName returns the environment variable backing a configuration key.
func EnvName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
