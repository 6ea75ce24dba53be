// Package catapi fetches random cat image URLs from an image-search API
// such as api.thecatapi.com.
package catapi

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/catscii/internal/providers/http/client"
	"github.com/GriffinCanCode/catscii/internal/shared/failure"
)

// DefaultURL is the public image-search endpoint
const DefaultURL = "https://api.thecatapi.com/v1/images/search"

var (
	errMissingURL = errors.New("image has no url")
	errNullImage  = errors.New("image is null")
	errNotArray   = errors.New("response is not an array")
)

// Image is one element of the search response
type Image struct {
	ID     string `json:"id,omitempty"`
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Client calls the image-search endpoint
type Client struct {
	http     *client.Client
	endpoint string
}

// New creates a client for endpoint. An empty endpoint means DefaultURL.
func New(httpClient *client.Client, endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultURL
	}
	return &Client{http: httpClient, endpoint: endpoint}
}

// FetchImageURL performs one search and returns the URL of the last
// returned image.
func (c *Client) FetchImageURL(ctx context.Context) (string, error) {
	resp, err := c.http.Request(ctx).Get(c.endpoint)
	if err != nil {
		return "", failure.Transport(failure.StageImageSource, err)
	}

	if !resp.IsSuccess() {
		return "", failure.Upstream(failure.StageImageSource, resp.StatusCode())
	}

	// A JSON null leaves the pointer nil and is not an array.
	var images *[]*Image
	if err := sonic.Unmarshal(resp.Body(), &images); err != nil {
		return "", failure.Parse(failure.StageImageSource, err)
	}
	if images == nil {
		return "", failure.Parse(failure.StageImageSource, errNotArray)
	}

	return selectURL(*images)
}

// selectURL pops the last image. Upstream returns one element in practice;
// longer arrays still yield exactly one URL, but every element must be a
// well-formed image with a non-empty url.
func selectURL(images []*Image) (string, error) {
	if len(images) == 0 {
		return "", failure.EmptyResult(failure.StageImageSource)
	}

	for _, img := range images {
		if img == nil {
			return "", failure.Parse(failure.StageImageSource, errNullImage)
		}
		if img.URL == "" {
			return "", failure.Parse(failure.StageImageSource, errMissingURL)
		}
	}
	return images[len(images)-1].URL, nil
}
