// Package main is the entry point for the catscii server.
//
// Each GET / fetches a random cat photo, renders it as colored ASCII art
// and returns an HTML page. Requests are traced to Honeycomb over OTLP and
// failures are reported to Sentry.
//
// Configuration:
//   - Environment variables (12-factor), optionally from a .env file
//   - CLI flags (override env vars)
//
// Required environment:
//
//	SENTRY_DSN          Sentry project DSN
//	HONEYCOMB_API_KEY   Honeycomb ingest key
//
// Usage:
//
//	# Production mode
//	./server
//
//	# Development mode (colored logs, debug level)
//	./server -dev -port 3000
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
