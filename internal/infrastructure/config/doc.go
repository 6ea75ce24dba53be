// Package config provides 12-factor configuration management for catscii.
//
// Configuration is loaded from environment variables with sensible defaults.
// A .env file in the working directory is honored by the server entry point.
//
// Configuration Sections:
//   - Server: listen address and shutdown budget
//   - Sentry: error-reporting DSN (required)
//   - Tracing: Honeycomb API key (required) and OTLP endpoint
//   - Logging: log level filter and output format
//   - Upstream: cat API endpoint and outbound User-Agent
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("listening on", cfg.Server.Addr())
//
// Environment Variables:
//   - HOST, PORT, SHUTDOWN_TIMEOUT
//   - SENTRY_DSN, SENTRY_ENVIRONMENT
//   - HONEYCOMB_API_KEY, OTEL_EXPORTER_OTLP_ENDPOINT, OTEL_SERVICE_NAME, OTEL_INSECURE
//   - LOG_LEVEL, LOG_DEV
//   - CAT_API_URL, HTTP_USER_AGENT
package config
