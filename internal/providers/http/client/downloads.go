package client

import (
	"context"

	"github.com/GriffinCanCode/catscii/internal/shared/failure"
)

// Download fetches url and returns the whole response body. A network
// failure is a transport error and a non-2xx answer is an upstream error,
// both tagged with the download stage.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.Request(ctx).Get(url)
	if err != nil {
		return nil, failure.Transport(failure.StageDownload, err)
	}

	if !resp.IsSuccess() {
		return nil, failure.Upstream(failure.StageDownload, resp.StatusCode())
	}

	return resp.Body(), nil
}
