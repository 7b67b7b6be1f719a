package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/design4music/sni-platform-sub000/pkg/version"
)

const (
	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"
)

// healthzHandler handles GET /api/v1/healthz.
// Only our own components (database, worker pool) are checked; the LLM
// endpoint is excluded so an upstream outage does not get this pod
// restarted. Anything short of healthy answers 503.
func (s *Server) healthzHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := healthStatusHealthy

	dbHealth, err := s.db.Health(reqCtx)
	if err != nil {
		status = healthStatusDegraded
	}

	resp := &HealthResponse{
		Version:  version.GitCommit,
		Database: dbHealth,
	}
	if s.pool != nil {
		resp.Queue = s.pool.Health(reqCtx)
		if !resp.Queue.IsHealthy {
			status = healthStatusDegraded
		}
	}
	resp.Status = status

	httpStatus := http.StatusOK
	if status != healthStatusHealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, resp)
}
