// Package pipeline runs the per-request art pipeline: find an image,
// download it, decode it, render it. Each stage runs in its own span under
// the caller's span and the first failure ends the run.
package pipeline

import (
	"context"
	"image"

	"github.com/GriffinCanCode/catscii/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/catscii/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/catscii/internal/shared/failure"
)

// Span names, also used as the stage metric label
const (
	SpanFetchURL = "fetch-url"
	SpanDownload = "download"
	SpanDecode   = "decode"
	SpanRender   = "render"
)

// ImageSource yields one image URL per call
type ImageSource interface {
	FetchImageURL(ctx context.Context) (string, error)
}

// Downloader fetches raw bytes
type Downloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// Renderer decodes bytes and renders markup. Render cannot fail.
type Renderer interface {
	Decode(data []byte) (image.Image, string, error)
	Render(img image.Image) string
}

// Pipeline holds the stage collaborators. It keeps no per-request state.
type Pipeline struct {
	source     ImageSource
	downloader Downloader
	renderer   Renderer
	tracer     *tracing.Tracer
	metrics    *monitoring.Metrics
}

// New creates a pipeline. metrics may be nil.
func New(source ImageSource, downloader Downloader, renderer Renderer, tracer *tracing.Tracer, metrics *monitoring.Metrics) *Pipeline {
	return &Pipeline{
		source:     source,
		downloader: downloader,
		renderer:   renderer,
		tracer:     tracer,
		metrics:    metrics,
	}
}

// Run executes the stages in order under the span carried by ctx
func (p *Pipeline) Run(ctx context.Context) (string, error) {
	url, err := stage(ctx, p, SpanFetchURL, func(ctx context.Context, _ *tracing.Span) (string, error) {
		return p.source.FetchImageURL(ctx)
	})
	if err != nil {
		return "", err
	}

	data, err := stage(ctx, p, SpanDownload, func(ctx context.Context, span *tracing.Span) ([]byte, error) {
		data, err := p.downloader.Download(ctx, url)
		if err != nil {
			return nil, err
		}
		span.SetInt("size_bytes", int64(len(data)))
		return data, nil
	})
	if err != nil {
		return "", err
	}

	img, err := stage(ctx, p, SpanDecode, func(_ context.Context, span *tracing.Span) (image.Image, error) {
		img, mime, err := p.renderer.Decode(data)
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		span.SetInt("width", int64(b.Dx()))
		span.SetInt("height", int64(b.Dy()))
		span.SetTag("mime_type", mime)
		return img, nil
	})
	if err != nil {
		return "", err
	}

	return stage(ctx, p, SpanRender, func(_ context.Context, _ *tracing.Span) (string, error) {
		return p.renderer.Render(img), nil
	})
}

// stage runs fn in a span and records its duration and outcome
func stage[T any](ctx context.Context, p *Pipeline, name string, fn func(context.Context, *tracing.Span) (T, error)) (T, error) {
	timer := monitoring.NewTimer(p.metrics, name)

	result, err := tracing.Run(ctx, p.tracer, name, fn)
	if err != nil {
		timer.Stop("error")
		if p.metrics != nil {
			p.metrics.RecordStageFailure(name, string(failure.KindOf(err)))
		}
		return result, err
	}

	timer.Stop("success")
	return result, nil
}
