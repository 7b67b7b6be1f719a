package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/design4music/sni-platform-sub000/ent/pipelinerun"
	"github.com/design4music/sni-platform-sub000/pkg/api"
	"github.com/design4music/sni-platform-sub000/pkg/models"
)

var apiClient = &http.Client{Timeout: 10 * time.Second}

func postJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := apiClient.Post(url, "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}
	return resp.StatusCode
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := apiClient.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}
	return resp.StatusCode
}

// TestE2E_API_RunLifecycle submits a run over HTTP, lets the worker pool
// claim and execute it, and reads the result back through the API.
func TestE2E_API_RunLifecycle(t *testing.T) {
	app := NewTestApp(t, WithWorkerPool(), WithAPIServer())

	ids := app.SeedTitles(4)
	app.LLM.RouteMap(ids[0], MapReply(ids))
	app.LLM.RouteReduce(ids[0], ReduceReply("AMERICAS", "DOMESTIC_POLITICS"))

	var created api.CreateRunResponse
	status := postJSON(t, app.BaseURL+"/api/v1/runs", &created)
	require.Equal(t, http.StatusAccepted, status)
	require.NotEmpty(t, created.RunID)
	assert.Equal(t, string(pipelinerun.StatusPending), created.Status)

	app.WaitForRunStatus(created.RunID, pipelinerun.StatusDone)

	var run api.RunResponse
	status = getJSON(t, app.BaseURL+"/api/v1/runs/"+created.RunID, &run)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, string(pipelinerun.StatusDone), run.Status)
	assert.Equal(t, models.TriggerAPI, run.Trigger)
	assert.NotEmpty(t, run.PodID)
	assert.NotNil(t, run.CompletedAt)
	assert.Equal(t, 4, run.Counters.TitlesSelected)
	assert.Equal(t, 1, run.Counters.EFsCreated)
	assert.Equal(t, 4, run.Counters.TitlesAssigned)

	var list api.ListRunsResponse
	status = getJSON(t, app.BaseURL+"/api/v1/runs?status=done", &list)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list.Runs, 1)
	assert.Equal(t, created.RunID, list.Runs[0].RunID)

	var health api.HealthResponse
	status = getJSON(t, app.BaseURL+"/api/v1/healthz", &health)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", health.Status)
	require.NotNil(t, health.Database)
	require.NotNil(t, health.Queue)
	assert.True(t, health.Queue.IsHealthy)

	efs := app.ActiveEFs(context.Background())
	require.Len(t, efs, 1)
	assert.Equal(t, 4, efs[0].TitleCount)
}

// TestE2E_API_CancelPendingRun covers the queue-less cancellation path:
// with no worker pool the run stays pending and the cancel endpoint flips
// it directly in the database.
func TestE2E_API_CancelPendingRun(t *testing.T) {
	app := NewTestApp(t, WithAPIServer())

	var created api.CreateRunResponse
	status := postJSON(t, app.BaseURL+"/api/v1/runs", &created)
	require.Equal(t, http.StatusAccepted, status)

	var cancelled api.CancelRunResponse
	status = postJSON(t, app.BaseURL+"/api/v1/runs/"+created.RunID+"/cancel", &cancelled)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, string(pipelinerun.StatusCancelled), cancelled.Status)

	var run api.RunResponse
	status = getJSON(t, app.BaseURL+"/api/v1/runs/"+created.RunID, &run)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, string(pipelinerun.StatusCancelled), run.Status)
	assert.Equal(t, models.ErrorCategoryCanceled, run.ErrorCategory)

	// Cancelling a finished run conflicts.
	status = postJSON(t, app.BaseURL+"/api/v1/runs/"+created.RunID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, status)

	// Unknown runs 404.
	status = getJSON(t, app.BaseURL+"/api/v1/runs/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
