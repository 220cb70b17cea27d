// Package http provides the API and metrics HTTP servers.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/tokenguard/internal/config"
	"github.com/allisson/tokenguard/internal/metrics"
	protectionHTTP "github.com/allisson/tokenguard/internal/protection/http"
)

// ReadinessCheck reports whether the protection pipeline can serve requests.
type ReadinessCheck func(ctx context.Context) error

// Server is the public API server.
type Server struct {
	server         *http.Server
	logger         *slog.Logger
	router         *gin.Engine
	readinessCheck ReadinessCheck
	shuttingDown   atomic.Bool
}

// NewServer creates an API server listening on host:port. SetupRouter must be
// called before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: newHTTPServer(host, port),
	}
}

func newHTTPServer(host string, port int) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// listenAndServe blocks until server stops. A graceful shutdown is not an error.
func listenAndServe(server *http.Server, name string, logger *slog.Logger) error {
	logger.Info("starting "+name, slog.String("addr", server.Addr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	return nil
}

// SetupRouter registers middleware and routes. Background limiter cleanup stops when ctx is done.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	tokenHandler *protectionHTTP.TokenHandler,
	cryptoHandler *protectionHTTP.CryptoHandler,
	metricsProvider *metrics.Provider,
	readinessCheck ReadinessCheck,
) {
	s.readinessCheck = readinessCheck

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsProvider.Namespace()))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	decodeMiddleware := []gin.HandlerFunc{}
	if cfg.RateLimitDecodeEnabled {
		decodeMiddleware = append(decodeMiddleware, IPRateLimitMiddleware(
			ctx,
			cfg.RateLimitDecodeRequestsPerSec,
			cfg.RateLimitDecodeBurst,
			s.logger,
		))
	}

	v1 := router.Group("/v1")
	{
		tokens := v1.Group("/tokens")
		tokens.POST("/encode", tokenHandler.EncodeHandler)
		tokens.POST("/decode", append(decodeMiddleware, tokenHandler.DecodeHandler)...)

		strs := v1.Group("/strings")
		strs.POST("/encode", tokenHandler.EncodeStringHandler)
		strs.POST("/decode", append(decodeMiddleware, tokenHandler.DecodeStringHandler)...)

		data := v1.Group("/data")
		data.POST("/encrypt", cryptoHandler.EncryptHandler)
		data.POST("/decrypt", append(decodeMiddleware, cryptoHandler.DecryptHandler)...)
	}

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the configured router.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start serves until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router not configured")
	}
	s.server.Handler = s.router

	return listenAndServe(s.server, "http server", s.logger)
}

// Shutdown marks the server as not ready and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shuttingDown.Store(true)
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	protector := "ok"
	if s.readinessCheck == nil {
		protector = "error"
	} else if err := s.readinessCheck(c.Request.Context()); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		protector = "error"
	}

	if s.shuttingDown.Load() || protector != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"protector": protector},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"protector": protector},
	})
}
