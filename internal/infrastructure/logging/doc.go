// Package logging provides structured logging using uber/zap.
//
// Two output modes:
//   - Production: JSON lines on stdout for the log pipeline
//   - Development: colored console output (LOG_DEV=true)
//
// The level filter comes from LOG_LEVEL ("debug", "info", "warn", "error").
// An unknown level is rejected instead of silently falling back.
//
// Example Usage:
//
//	logger, err := logging.New(logging.Config{Level: "info"})
//	if err != nil {
//		return err
//	}
//	defer logger.Sync()
//	logger.Info("Listening", zap.String("addr", "0.0.0.0:8080"))
package logging
