// Package config loads process configuration from the environment and builds
// the translation store it describes.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/dotlocale/pkg/logger"
	"github.com/dmitrymomot/dotlocale/pkg/storage"
)

// Locale file formats accepted by LOCALES_FORMAT.
const (
	FormatAuto   = "auto"
	FormatYAML   = "yaml"
	FormatJSON   = "json"
	FormatTOML   = "toml"
	FormatGoI18n = "goi18n"
)

// ErrInvalidConfig is returned when a loaded value fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full configuration of the dotlocale binary.
type Config struct {
	Log     logger.Config
	Sentry  logger.SentryConfig
	Locales Locales
	HTTP    HTTP
	S3      storage.Config
}

// Locales describes where translations come from and how they resolve.
type Locales struct {
	Dir           string `env:"LOCALES_DIR" envDefault:"locales"`
	Format        string `env:"LOCALES_FORMAT" envDefault:"auto"`
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
	Strict        bool   `env:"STRICT" envDefault:"false"`
}

// HTTP configures the API server.
type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// UseS3 reports whether translations are read from object storage.
func (c Config) UseS3() bool {
	return c.S3.Bucket != ""
}

// Load reads an optional .env file, then parses the process environment.
func Load() (Config, error) {
	// .env is optional when variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, cfg.validate()
}

// Parse builds a Config from an explicit variable set instead of the process
// environment.
func Parse(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	c.Locales.Format = strings.ToLower(strings.TrimSpace(c.Locales.Format))
	switch c.Locales.Format {
	case FormatAuto, FormatYAML, FormatJSON, FormatTOML, FormatGoI18n:
	default:
		return fmt.Errorf("%w: LOCALES_FORMAT %q", ErrInvalidConfig, c.Locales.Format)
	}
	if strings.TrimSpace(c.Locales.DefaultLocale) == "" {
		return fmt.Errorf("%w: DEFAULT_LOCALE is empty", ErrInvalidConfig)
	}
	if !c.UseS3() && strings.TrimSpace(c.Locales.Dir) == "" {
		return fmt.Errorf("%w: LOCALES_DIR or LOCALES_S3_BUCKET is required", ErrInvalidConfig)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: SHUTDOWN_TIMEOUT must be positive", ErrInvalidConfig)
	}
	return nil
}
