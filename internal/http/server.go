// Package http wires the gin router, middleware and HTTP servers of the API.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/iga/internal/authz"
	"github.com/allisson/iga/internal/config"
	entitlementHTTP "github.com/allisson/iga/internal/entitlement/http"
	identityHTTP "github.com/allisson/iga/internal/identity/http"
	"github.com/allisson/iga/internal/metrics"
	targetHTTP "github.com/allisson/iga/internal/target/http"
)

const readinessTimeout = 2 * time.Second

// Server is the API server.
type Server struct {
	db     *sql.DB
	server *http.Server
	logger *slog.Logger
	router *gin.Engine
}

// NewServer creates the API server. SetupRouter must be called before Start.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter registers the middleware chain and every route.
//
// Reads are open; identity writes and target application registration require the
// admin role claim checked by authz.RequireAdminRole.
func (s *Server) SetupRouter(
	cfg *config.Config,
	identityHandler *identityHTTP.IdentityHandler,
	entitlementHandler *entitlementHTTP.EntitlementHandler,
	targetHandler *targetHTTP.TargetApplicationHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	if corsMiddleware := createCORSMiddleware(
		cfg.CORSEnabled,
		cfg.CORSAllowOrigins,
		cfg.AuthzRoleHeader,
		s.logger,
	); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	requireAdmin := authz.RequireAdminRole(authz.Config{
		Enabled:   cfg.AuthzEnabled,
		Header:    cfg.AuthzRoleHeader,
		AdminRole: cfg.AuthzAdminRole,
	}, s.logger)

	identities := v1.Group("/identities")
	{
		identities.POST("", requireAdmin, identityHandler.CreateHandler)
		identities.GET("/:id", identityHandler.GetHandler)
		identities.PUT("/:id", requireAdmin, identityHandler.UpdateHandler)
		identities.PATCH("/:id", requireAdmin, identityHandler.UpdateHandler)
	}

	v1.GET("/roles/:role/identities", identityHandler.ListByRoleHandler)

	entitlements := v1.Group("/entitlements")
	{
		entitlements.GET("", entitlementHandler.ListRolesHandler)
		entitlements.GET("/:role", entitlementHandler.ResolveHandler)
	}

	targetApplications := v1.Group("/target-applications")
	{
		targetApplications.POST("", requireAdmin, targetHandler.CreateHandler)
		targetApplications.GET("", targetHandler.ListHandler)
		targetApplications.GET("/:name", targetHandler.GetHandler)
	}

	s.router = router
}

// GetHandler returns the router, for tests that serve it with httptest.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured: call SetupRouter first")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports that the process is up.
// GET /health
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the database answers a ping.
// GET /ready
func (s *Server) readinessHandler(c *gin.Context) {
	database := "ok"
	if s.db == nil {
		database = "error"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.Any("error", err))
			database = "error"
		}
	}

	if database != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": database},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": database},
	})
}
