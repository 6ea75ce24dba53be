// Package middleware provides the gin middleware shared by all routes:
// request IDs and structured access logging.
package middleware
