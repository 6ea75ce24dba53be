package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/catscii/internal/infrastructure/config"
	"github.com/GriffinCanCode/catscii/internal/infrastructure/logging"
	"github.com/GriffinCanCode/catscii/internal/infrastructure/reporting"
	"github.com/GriffinCanCode/catscii/internal/infrastructure/server"
	"github.com/GriffinCanCode/catscii/internal/infrastructure/telemetry"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

func main() {
	// Parse flags
	envFile := flag.String("env", ".env", "Optional dotenv file")
	port := flag.String("port", "", "Server port (overrides PORT)")
	dev := flag.Bool("dev", false, "Development mode (colored logs, debug level)")
	flag.Parse()

	// A missing .env file is normal in production
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to load %s: %v", *envFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		Service:     cfg.Tracing.ServiceName,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	if err := reporting.Init(cfg.Sentry, version); err != nil {
		logger.Fatal("Failed to initialize error reporting", zap.Error(err))
	}

	shutdownTracing, err := telemetry.Init(context.Background(), cfg.Tracing, version)
	if err != nil {
		logger.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	srv, err := server.NewServer(cfg, logger, version)
	if err != nil {
		logger.Fatal("Failed to create server", zap.Error(err))
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	// Wait for shutdown signal or error
	var runErr error
	select {
	case sig := <-sigChan:
		logger.Info("Shutting down gracefully", zap.String("signal", sig.String()))
	case runErr = <-errChan:
		if runErr != nil {
			logger.Error("Server error", zap.Error(runErr))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// HTTP first so in-flight requests finish their spans and reports
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("Trace flush failed", zap.Error(err))
	}
	if !reporting.Flush(2 * time.Second) {
		logger.Warn("Sentry flush timed out")
	}
	logger.Sync()

	if runErr != nil {
		os.Exit(1)
	}
}
