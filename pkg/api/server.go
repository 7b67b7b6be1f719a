// Package api provides the operational HTTP surface for serve mode: run
// submission, inspection, cancellation, and health. Event family browsing
// is deliberately absent; the platform reads EFs elsewhere.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/database"
	"github.com/design4music/sni-platform-sub000/pkg/queue"
	"github.com/design4music/sni-platform-sub000/pkg/services"
)

const readHeaderTimeout = 10 * time.Second

// Server is the operational HTTP server.
type Server struct {
	cfg     *config.APIConfig
	db      *database.Client
	runs    *services.RunService
	pool    *queue.WorkerPool
	httpSrv *http.Server
}

// NewServer creates the API server. pool may be nil (no serve-mode worker
// pool, e.g. in tests); cancellation then only reaches pending runs.
func NewServer(cfg *config.APIConfig, db *database.Client, runs *services.RunService, pool *queue.WorkerPool) *Server {
	s := &Server{
		cfg:  cfg,
		db:   db,
		runs: runs,
		pool: pool,
	}
	s.httpSrv = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.buildRouter(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// buildRouter wires middleware and routes.
func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(), gin.Recovery(), securityHeaders())

	v1 := router.Group("/api/v1")
	{
		v1.POST("/runs", s.createRunHandler)
		v1.GET("/runs", s.listRunsHandler)
		v1.GET("/runs/:id", s.getRunHandler)
		v1.POST("/runs/:id/cancel", s.cancelRunHandler)
		v1.GET("/healthz", s.healthzHandler)
	}
	return router
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
// Returns http.ErrServerClosed after a graceful shutdown.
func (s *Server) Start() error {
	return s.httpSrv.ListenAndServe()
}

// StartWithListener serves on a caller-provided listener. Tests use it to
// bind an ephemeral port.
func (s *Server) StartWithListener(ln net.Listener) error {
	return s.httpSrv.Serve(ln)
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
