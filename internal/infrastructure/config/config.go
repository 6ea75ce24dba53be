package config

import (
	"fmt"
	"net"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Sentry   SentryConfig
	Tracing  TracingConfig
	Logging  LogConfig
	Upstream UpstreamConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            string        `envconfig:"PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// SentryConfig holds error-reporting configuration.
type SentryConfig struct {
	DSN         string `envconfig:"SENTRY_DSN" required:"true"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"production"`
}

// TracingConfig holds trace export configuration.
type TracingConfig struct {
	APIKey      string `envconfig:"HONEYCOMB_API_KEY" required:"true"`
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"api.honeycomb.io:443"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"catscii"`
	Insecure    bool   `envconfig:"OTEL_INSECURE" default:"false"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// UpstreamConfig holds outbound HTTP configuration.
type UpstreamConfig struct {
	CatAPIURL string `envconfig:"CAT_API_URL" default:"https://api.thecatapi.com/v1/images/search"`
	UserAgent string `envconfig:"HTTP_USER_AGENT" default:"catscii/1.0"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns default configuration. Secrets are left empty.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            "8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Sentry: SentryConfig{
			Environment: "production",
		},
		Tracing: TracingConfig{
			Endpoint:    "api.honeycomb.io:443",
			ServiceName: "catscii",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Upstream: UpstreamConfig{
			CatAPIURL: "https://api.thecatapi.com/v1/images/search",
			UserAgent: "catscii/1.0",
		},
	}
}

// Validate checks values envconfig cannot check on its own. A required
// variable that is set but empty passes envconfig and is rejected here.
func (c *Config) Validate() error {
	if c.Sentry.DSN == "" {
		return fmt.Errorf("config: SENTRY_DSN is required")
	}
	if c.Tracing.APIKey == "" {
		return fmt.Errorf("config: HONEYCOMB_API_KEY is required")
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("config: LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	if c.Upstream.CatAPIURL == "" {
		return fmt.Errorf("config: CAT_API_URL must not be empty")
	}
	return nil
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}
