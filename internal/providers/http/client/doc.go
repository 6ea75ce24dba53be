// Package client provides the outbound HTTP client shared by upstream
// providers.
//
// Built on go-resty/resty with an otelhttp transport:
//   - W3C traceparent is injected on every request
//   - a client span nests under the caller's active span
//   - cancellation follows the request context
//
// Requests are attempted exactly once and are bounded only by their
// context. Nothing retries.
//
// Example Usage:
//
//	c := client.NewClient("catscii/1.0")
//	body, err := c.Download(ctx, "https://cdn2.thecatapi.com/images/abc.jpg")
package client
