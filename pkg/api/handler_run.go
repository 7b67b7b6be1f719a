package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
	"github.com/design4music/sni-platform-sub000/pkg/models"
)

// createRunHandler handles POST /api/v1/runs. The run is enqueued pending;
// a worker picks it up asynchronously, hence 202.
func (s *Server) createRunHandler(c *gin.Context) {
	run, err := s.runs.Create(c.Request.Context(), models.TriggerAPI)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, CreateRunResponse{
		RunID:  run.ID,
		Status: string(run.Status),
	})
}

// getRunHandler handles GET /api/v1/runs/:id.
func (s *Server) getRunHandler(c *gin.Context) {
	runID := c.Param("id")
	if runID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "run id is required"})
		return
	}

	run, err := s.runs.Get(c.Request.Context(), runID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, runResponse(run))
}

// listRunsHandler handles GET /api/v1/runs?status=&limit=, newest first.
func (s *Server) listRunsHandler(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit: must be 1-100"})
			return
		}
		limit = n
	}

	runs, err := s.runs.List(c.Request.Context(), c.Query("status"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := ListRunsResponse{Runs: make([]RunResponse, 0, len(runs))}
	for _, run := range runs {
		resp.Runs = append(resp.Runs, runResponse(run))
	}
	c.JSON(http.StatusOK, resp)
}

// cancelRunHandler handles POST /api/v1/runs/:id/cancel. A pending run is
// flipped in the database; an executing run gets its context cancelled and
// the orchestrator records the terminal status.
func (s *Server) cancelRunHandler(c *gin.Context) {
	runID := c.Param("id")
	if runID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "run id is required"})
		return
	}
	ctx := c.Request.Context()

	run, err := s.runs.Get(ctx, runID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	flipped, err := s.runs.CancelPending(ctx, runID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if flipped {
		c.JSON(http.StatusOK, CancelRunResponse{
			RunID:  runID,
			Status: string(pipelinerun.StatusCancelled),
		})
		return
	}

	if s.pool != nil && s.pool.CancelRun(runID) {
		c.JSON(http.StatusAccepted, CancelRunResponse{
			RunID:   runID,
			Status:  string(run.Status),
			Message: "cancellation signalled",
		})
		return
	}

	switch run.Status {
	case pipelinerun.StatusDone, pipelinerun.StatusAborted, pipelinerun.StatusCancelled:
		c.JSON(http.StatusConflict, ErrorResponse{Error: "run already finished"})
	default:
		c.JSON(http.StatusConflict, ErrorResponse{Error: "run is executing on another replica"})
	}
}
