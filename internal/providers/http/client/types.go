package client

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client wraps resty with trace propagation
type Client struct {
	Resty *resty.Client
}

// NewClient creates a single-attempt HTTP client. opts configure the
// otelhttp transport, e.g. a tracer provider in tests.
func NewClient(userAgent string, opts ...otelhttp.Option) *Client {
	base := http.DefaultTransport.(*http.Transport).Clone()

	restyClient := resty.New()
	restyClient.
		SetTransport(otelhttp.NewTransport(base, opts...)).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent)

	return &Client{Resty: restyClient}
}

// Request creates a new request bound to ctx
func (c *Client) Request(ctx context.Context) *resty.Request {
	return c.Resty.R().SetContext(ctx)
}
