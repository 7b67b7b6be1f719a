package api

import (
	"time"

	"github.com/design4music/sni-platform-sub000/ent"
	"github.com/design4music/sni-platform-sub000/pkg/database"
	"github.com/design4music/sni-platform-sub000/pkg/queue"
)

// CreateRunResponse is returned by POST /api/v1/runs.
type CreateRunResponse struct {
	RunID  string `json:"run_id"`
	Status string `json:"status"`
}

// CancelRunResponse is returned by POST /api/v1/runs/:id/cancel.
type CancelRunResponse struct {
	RunID   string `json:"run_id"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// RunCountersResponse mirrors the per-run pipeline counters.
type RunCountersResponse struct {
	TitlesSelected    int `json:"titles_selected"`
	ShardsTotal       int `json:"shards_total"`
	ShardsFailed      int `json:"shards_failed"`
	IncidentsMapped   int `json:"incidents_mapped"`
	OrphansMapped     int `json:"orphans_mapped"`
	CandidatesReduced int `json:"candidates_reduced"`
	ReduceDrops       int `json:"reduce_drops"`
	EFsCreated        int `json:"efs_created"`
	EFsUpdated        int `json:"efs_updated"`
	TitlesAssigned    int `json:"titles_assigned"`
}

// RunResponse is the run detail returned by GET /api/v1/runs/:id and the
// list endpoint.
type RunResponse struct {
	RunID         string              `json:"run_id"`
	Status        string              `json:"status"`
	Trigger       string              `json:"trigger"`
	PodID         string              `json:"pod_id,omitempty"`
	ErrorCategory string              `json:"error_category,omitempty"`
	ErrorMessage  string              `json:"error_message,omitempty"`
	Counters      RunCountersResponse `json:"counters"`
	CreatedAt     time.Time           `json:"created_at"`
	StartedAt     *time.Time          `json:"started_at,omitempty"`
	CompletedAt   *time.Time          `json:"completed_at,omitempty"`
}

// ListRunsResponse is returned by GET /api/v1/runs.
type ListRunsResponse struct {
	Runs []RunResponse `json:"runs"`
}

// HealthResponse is returned by GET /api/v1/healthz.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database"`
	Queue    *queue.PoolHealth      `json:"queue,omitempty"`
}

// runResponse converts an ent row into the API shape.
func runResponse(run *ent.PipelineRun) RunResponse {
	resp := RunResponse{
		RunID:   run.ID,
		Status:  string(run.Status),
		Trigger: string(run.Trigger),
		Counters: RunCountersResponse{
			TitlesSelected:    run.TitlesSelected,
			ShardsTotal:       run.ShardsTotal,
			ShardsFailed:      run.ShardsFailed,
			IncidentsMapped:   run.IncidentsMapped,
			OrphansMapped:     run.OrphansMapped,
			CandidatesReduced: run.CandidatesReduced,
			ReduceDrops:       run.ReduceDrops,
			EFsCreated:        run.EfsCreated,
			EFsUpdated:        run.EfsUpdated,
			TitlesAssigned:    run.TitlesAssigned,
		},
		CreatedAt:   run.CreatedAt,
		StartedAt:   run.StartedAt,
		CompletedAt: run.CompletedAt,
	}
	if run.PodID != nil {
		resp.PodID = *run.PodID
	}
	if run.ErrorCategory != nil {
		resp.ErrorCategory = string(*run.ErrorCategory)
	}
	if run.ErrorMessage != nil {
		resp.ErrorMessage = *run.ErrorMessage
	}
	return resp
}
