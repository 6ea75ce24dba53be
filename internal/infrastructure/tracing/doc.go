/*
Package tracing wraps OpenTelemetry spans for request instrumentation.

# Usage

	tracer := tracing.New("catscii", logger)

	// Join inbound W3C trace context
	router.Use(tracing.HTTPMiddleware())

	// Manual span
	span, ctx := tracer.StartSpan(ctx, "root_get")
	defer span.Finish()
	span.SetTag("user_agent", ua)

	// Scoped span, finished on every exit path
	url, err := tracing.Run(ctx, tracer, "fetch-url", func(ctx context.Context, span *tracing.Span) (string, error) {
		return source.FetchImageURL(ctx)
	})

A failed span carries status Error with err.Error() as its description.
Export is configured separately by the telemetry package; without it spans
go to the no-op provider.
*/
package tracing
