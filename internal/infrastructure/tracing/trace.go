package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// TraceID is the hex form of an OpenTelemetry trace identifier
type TraceID string

// Tracer creates spans for one instrumentation scope
type Tracer struct {
	service string
	tracer  trace.Tracer
	logger  *zap.Logger
}

// New creates a tracer backed by the global tracer provider
func New(service string, logger *zap.Logger) *Tracer {
	return NewWithProvider(otel.GetTracerProvider(), service, logger)
}

// NewWithProvider creates a tracer backed by the given provider
func NewWithProvider(tp trace.TracerProvider, service string, logger *zap.Logger) *Tracer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracer{
		service: service,
		tracer:  tp.Tracer(service),
		logger:  logger,
	}
}

// Span wraps an OpenTelemetry span
type Span struct {
	name   string
	span   trace.Span
	logger *zap.Logger
	err    error
}

// StartSpan opens a child of the span in ctx, or a new root if there is none
func (t *Tracer) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (*Span, context.Context) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return &Span{name: name, span: span, logger: t.logger}, ctx
}

// SetTag adds a string attribute to the span
func (s *Span) SetTag(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

// SetInt adds an integer attribute to the span
func (s *Span) SetInt(key string, value int64) {
	s.span.SetAttributes(attribute.Int64(key, value))
}

// SetError marks the span as failed. The status description is err.Error(),
// so callers pass errors whose text is safe to export.
func (s *Span) SetError(err error) {
	if err == nil {
		return
	}
	s.err = err
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// Finish ends the span. Calling it more than once is harmless.
func (s *Span) Finish() {
	if s.err != nil {
		s.logger.Debug("span completed with error",
			zap.String("span", s.name),
			zap.String("trace_id", string(s.TraceID())),
			zap.Error(s.err),
		)
	}
	s.span.End()
}

// TraceID returns the trace the span belongs to
func (s *Span) TraceID() TraceID {
	return TraceID(s.span.SpanContext().TraceID().String())
}

// Run executes fn inside a span named name. The span is finished on every
// exit path and marked failed when fn returns an error.
func Run[T any](ctx context.Context, t *Tracer, name string, fn func(ctx context.Context, span *Span) (T, error)) (T, error) {
	span, ctx := t.StartSpan(ctx, name)
	defer span.Finish()

	result, err := fn(ctx, span)
	if err != nil {
		span.SetError(err)
	}
	return result, err
}

// GetTraceID retrieves the active trace ID from context
func GetTraceID(ctx context.Context) TraceID {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return TraceID(sc.TraceID().String())
}
