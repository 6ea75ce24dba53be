package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	api "github.com/GriffinCanCode/catscii/internal/api/http"
	"github.com/GriffinCanCode/catscii/internal/api/middleware"
	"github.com/GriffinCanCode/catscii/internal/infrastructure/config"
	"github.com/GriffinCanCode/catscii/internal/infrastructure/logging"
	"github.com/GriffinCanCode/catscii/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/catscii/internal/infrastructure/reporting"
	"github.com/GriffinCanCode/catscii/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/catscii/internal/pipeline"
	"github.com/GriffinCanCode/catscii/internal/providers/catapi"
	httpclient "github.com/GriffinCanCode/catscii/internal/providers/http/client"
	"github.com/GriffinCanCode/catscii/internal/render"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	http    *http.Server
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// NewServer wires the pipeline, handlers and middleware. Telemetry and
// Sentry must already be initialized; the server uses their globals.
func NewServer(cfg *config.Config, logger *logging.Logger, version string) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: nil config")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	logger.Info("Initializing catscii server",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("cat_api", cfg.Upstream.CatAPIURL),
		zap.String("version", version),
	)

	metrics := monitoring.NewMetrics()
	tracer := tracing.New(cfg.Tracing.ServiceName, logger.Logger)
	reporter := reporting.NewReporter(nil, logger.Logger)

	httpClient := httpclient.NewClient(cfg.Upstream.UserAgent)
	p := pipeline.New(
		catapi.New(httpClient, cfg.Upstream.CatAPIURL),
		httpClient,
		render.NewRenderer(),
		tracer,
		metrics,
	)
	handlers := api.NewHandlers(p, tracer, reporter, logger.Logger, version)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(handlers, metrics, logger.Logger, cfg.Server.ShutdownTimeout)

	s := &Server{
		router:  router,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}
	s.http = &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: s.Handler(),
	}

	logger.Info("Server initialized successfully")
	return s, nil
}

// NewRouter registers middleware and routes. There is deliberately no
// gin.Recovery: panics reach the crash reporter and are re-raised.
func NewRouter(handlers *api.Handlers, metrics *monitoring.Metrics, logger *zap.Logger, flushTimeout time.Duration) *gin.Engine {
	router := gin.New()

	router.Use(reporting.Middleware(flushTimeout)...)
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(tracing.HTTPMiddleware())
	router.Use(monitoring.Middleware(metrics))

	router.GET("/", handlers.Root)
	router.GET("/panic", handlers.Panic)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router
}

// Handler returns the router with response compression
func (s *Server) Handler() http.Handler {
	return gzhttp.GzipHandler(s.router)
}

// Run listens on the configured address until Shutdown is called
func (s *Server) Run() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("server: listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown is called
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("Listening on", zap.String("addr", ln.Addr().String()))
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
