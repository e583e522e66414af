package storage

import "strings"

// Config holds S3-compatible storage configuration for translation files.
type Config struct {
	// Bucket is the S3 bucket name (required).
	Bucket string `env:"LOCALES_S3_BUCKET"`

	// Prefix is the key prefix under which translation files live (optional).
	// Listed names are relative to it, so "locales/en.yaml" becomes "en.yaml".
	Prefix string `env:"LOCALES_S3_PREFIX"`

	// AccessKey is the AWS access key ID (required).
	AccessKey string `env:"LOCALES_S3_ACCESS_KEY"`

	// SecretKey is the AWS secret access key (required).
	SecretKey string `env:"LOCALES_S3_SECRET_KEY"`

	// Endpoint is the custom S3 endpoint URL (optional, for MinIO or other S3-compatible services).
	Endpoint string `env:"LOCALES_S3_ENDPOINT"`

	// Region is the AWS region (default: us-east-1).
	Region string `env:"LOCALES_S3_REGION" envDefault:"us-east-1"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"LOCALES_S3_PATH_STYLE"`

	// MaxObjectSize caps the size of a single translation file in bytes (default: 5MB).
	MaxObjectSize int64 `env:"LOCALES_S3_MAX_OBJECT_SIZE"`
}

// Default configuration values.
const (
	DefaultRegion        = "us-east-1"
	DefaultMaxObjectSize = 5 << 20 // 5MB
)

// applyDefaults fills in default values for empty config fields.
func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.MaxObjectSize == 0 {
		c.MaxObjectSize = DefaultMaxObjectSize
	}
	c.Prefix = strings.Trim(c.Prefix, "/")
	if c.Prefix != "" {
		c.Prefix += "/"
	}
}

// validate checks that required configuration fields are set.
func (c *Config) validate() error {
	if c.Bucket == "" {
		return ErrInvalidConfig
	}
	if c.AccessKey == "" {
		return ErrInvalidConfig
	}
	if c.SecretKey == "" {
		return ErrInvalidConfig
	}
	if c.MaxObjectSize < 0 {
		return ErrInvalidConfig
	}
	return nil
}
