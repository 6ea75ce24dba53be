// Package http holds the gin handlers for the public routes.
//
//	GET /        random cat as ASCII art, or 500 "Something went wrong"
//	GET /panic   deliberate crash for verifying error reporting
//	GET /health  liveness
package http
