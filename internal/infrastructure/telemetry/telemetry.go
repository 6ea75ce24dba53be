// Package telemetry initializes the OpenTelemetry trace exporter.
//
// Spans are exported over OTLP/HTTP. With the default endpoint this is
// Honeycomb, authenticated by the x-honeycomb-team header.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/GriffinCanCode/catscii/internal/infrastructure/config"
)

// HoneycombHeader carries the ingest key on every export request.
const HoneycombHeader = "x-honeycomb-team"

// Shutdown flushes pending spans and stops the exporter.
type Shutdown func(ctx context.Context) error

// Init configures the global tracer provider and W3C propagators.
// If no API key is configured, tracing stays on the no-op provider.
func Init(ctx context.Context, cfg config.TracingConfig, version string) (Shutdown, error) {
	// Propagators are registered even without an exporter so inbound
	// traceparent headers still reach outbound calls.
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	if cfg.APIKey == "" {
		return func(ctx context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create resource: %w", err)
	}

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(cfg.Endpoint),
		otlptracehttp.WithHeaders(map[string]string{HoneycombHeader: cfg.APIKey}),
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exp, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("telemetry: create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp,
			sdktrace.WithBatchTimeout(5*time.Second),
		),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
