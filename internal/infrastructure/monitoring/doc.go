/*
Package monitoring provides Prometheus metrics for the HTTP surface and
the art pipeline.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "download")
	// ... perform stage ...
	timer.Stop("success")

	metrics.RecordStageFailure("download", "transport")

Each Metrics value owns a registry, so tests can build as many as they need.
*/
package monitoring
