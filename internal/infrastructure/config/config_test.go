package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("SENTRY_DSN", "https://public@sentry.example.com/1")
	t.Setenv("HONEYCOMB_API_KEY", "hc-test-key")
}

func TestDefault(t *testing.T) {
	cfg := Default()

	// Server config
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	// Secrets are never defaulted
	assert.Empty(t, cfg.Sentry.DSN)
	assert.Empty(t, cfg.Tracing.APIKey)

	// Tracing config
	assert.Equal(t, "api.honeycomb.io:443", cfg.Tracing.Endpoint)
	assert.Equal(t, "catscii", cfg.Tracing.ServiceName)

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Defaults alone are not deployable
	assert.Error(t, cfg.Validate())
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	setSecrets(t)

	envVars := map[string]string{
		"PORT":                        "9000",
		"HOST":                        "127.0.0.1",
		"SHUTDOWN_TIMEOUT":            "3s",
		"SENTRY_ENVIRONMENT":          "staging",
		"OTEL_EXPORTER_OTLP_ENDPOINT": "collector:4318",
		"OTEL_SERVICE_NAME":           "catscii-staging",
		"OTEL_INSECURE":               "true",
		"LOG_LEVEL":                   "debug",
		"LOG_DEV":                     "true",
		"CAT_API_URL":                 "http://cats.internal/v1/images/search",
		"HTTP_USER_AGENT":             "catscii-test/0.1",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "https://public@sentry.example.com/1", cfg.Sentry.DSN)
	assert.Equal(t, "staging", cfg.Sentry.Environment)

	assert.Equal(t, "hc-test-key", cfg.Tracing.APIKey)
	assert.Equal(t, "collector:4318", cfg.Tracing.Endpoint)
	assert.Equal(t, "catscii-staging", cfg.Tracing.ServiceName)
	assert.True(t, cfg.Tracing.Insecure)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)

	assert.Equal(t, "http://cats.internal/v1/images/search", cfg.Upstream.CatAPIURL)
	assert.Equal(t, "catscii-test/0.1", cfg.Upstream.UserAgent)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	setSecrets(t)
	t.Setenv("PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Verify overridden values
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)

	// Verify default values still apply
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "https://api.thecatapi.com/v1/images/search", cfg.Upstream.CatAPIURL)
	assert.Equal(t, "api.honeycomb.io:443", cfg.Tracing.Endpoint)
}

func TestLoadRequiresSecrets(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantKey string
	}{
		{
			name:    "missing sentry dsn",
			env:     map[string]string{"SENTRY_DSN": "", "HONEYCOMB_API_KEY": "hc-test-key"},
			wantKey: "SENTRY_DSN",
		},
		{
			name:    "missing honeycomb key",
			env:     map[string]string{"SENTRY_DSN": "https://public@sentry.example.com/1", "HONEYCOMB_API_KEY": ""},
			wantKey: "HONEYCOMB_API_KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	setSecrets(t)
	t.Setenv("LOG_LEVEL", "chatty")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		name string
		host string
		port string
		want string
	}{
		{"all interfaces", "0.0.0.0", "8080", "0.0.0.0:8080"},
		{"loopback", "127.0.0.1", "3000", "127.0.0.1:3000"},
		{"ipv6", "::1", "8080", "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ServerConfig{Host: tt.host, Port: tt.port}
			assert.Equal(t, tt.want, s.Addr())
		})
	}
}
