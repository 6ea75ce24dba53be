package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/catscii/internal/infrastructure/reporting"
	"github.com/GriffinCanCode/catscii/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/catscii/internal/shared/failure"
)

const (
	// RootSpan is the name of the per-request span
	RootSpan = "root_get"

	// GenericErrorBody is the only failure text a client ever sees
	GenericErrorBody = "Something went wrong"

	// PanicMessage is raised by the fault route
	PanicMessage = "This is a test panic"

	// TraceHeader echoes the request's trace ID
	TraceHeader = "X-Trace-ID"
)

// Runner produces markup for one request
type Runner interface {
	Run(ctx context.Context) (string, error)
}

// Handlers contains all HTTP handlers
type Handlers struct {
	pipeline Runner
	tracer   *tracing.Tracer
	reporter *reporting.Reporter
	logger   *zap.Logger
	version  string
}

// NewHandlers creates a new handler set
func NewHandlers(
	pipeline Runner,
	tracer *tracing.Tracer,
	reporter *reporting.Reporter,
	logger *zap.Logger,
	version string,
) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		pipeline: pipeline,
		tracer:   tracer,
		reporter: reporter,
		logger:   logger,
		version:  version,
	}
}

// Root renders a random cat as ASCII art
func (h *Handlers) Root(c *gin.Context) {
	span, ctx := h.tracer.StartSpan(c.Request.Context(), RootSpan,
		attribute.String("user_agent", c.GetHeader("User-Agent")),
	)
	defer span.Finish()

	c.Header(TraceHeader, string(span.TraceID()))

	markup, err := h.pipeline.Run(ctx)
	if err != nil {
		span.SetError(err)
		h.fail(ctx, c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(markup))
}

func (h *Handlers) fail(ctx context.Context, c *gin.Context, err error) {
	if h.reporter != nil {
		h.reporter.Report(ctx, err)
	}

	fields := []zap.Field{
		zap.String("stage", string(failure.StageOf(err))),
		zap.String("kind", string(failure.KindOf(err))),
		zap.String("trace_id", string(tracing.GetTraceID(ctx))),
		zap.Error(err),
	}
	if fe, ok := failure.As(err); ok && fe.Cause != nil {
		fields = append(fields, zap.NamedError("cause", fe.Cause))
	}
	h.logger.Error("request pipeline failed", fields...)

	c.String(http.StatusInternalServerError, GenericErrorBody)
}

// Panic deliberately crashes the handler so crash reporting can be verified
func (h *Handlers) Panic(c *gin.Context) {
	panic(PanicMessage)
}

// Health handles liveness checks
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "catscii",
		"version": h.version,
	})
}
