// Package reporting sends pipeline failures and crashes to Sentry.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/catscii/internal/infrastructure/config"
	"github.com/GriffinCanCode/catscii/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/catscii/internal/shared/failure"
)

// Init configures the global Sentry client
func Init(cfg config.SentryConfig, version string) error {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          "catscii@" + version,
		AttachStacktrace: true,
	})
	if err != nil {
		return fmt.Errorf("reporting: init sentry: %w", err)
	}
	return nil
}

// Flush waits for buffered events to be delivered
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// Middleware returns the crash-reporting chain for the router. Panics are
// reported and re-raised; nothing here recovers them. The request-scoped
// hub is also stored on the request context for Reporter.
func Middleware(timeout time.Duration) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		sentrygin.New(sentrygin.Options{
			Repanic:         true,
			WaitForDelivery: true,
			Timeout:         timeout,
		}),
		bindHub,
	}
}

func bindHub(c *gin.Context) {
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		c.Request = c.Request.WithContext(sentry.SetHubOnContext(c.Request.Context(), hub))
	}
	c.Next()
}

// Reporter captures pipeline errors with stage and trace tags
type Reporter struct {
	hub    *sentry.Hub
	logger *zap.Logger
}

// NewReporter creates a reporter. hub is used when the request context
// carries none; nil means the global hub.
func NewReporter(hub *sentry.Hub, logger *zap.Logger) *Reporter {
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{hub: hub, logger: logger}
}

// Report sends err to Sentry and returns the event ID, or nil if the
// event was dropped.
func (r *Reporter) Report(ctx context.Context, err error) *sentry.EventID {
	if err == nil {
		return nil
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = r.hub
	}

	var eventID *sentry.EventID
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("stage", string(failure.StageOf(err)))
		scope.SetTag("kind", string(failure.KindOf(err)))
		if traceID := tracing.GetTraceID(ctx); traceID != "" {
			scope.SetTag("trace_id", string(traceID))
		}
		eventID = hub.CaptureException(err)
	})

	if eventID == nil {
		r.logger.Debug("error report dropped", zap.Error(err))
	}
	return eventID
}
