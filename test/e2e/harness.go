// Package e2e runs the full pipeline against a real PostgreSQL schema and a
// scripted LLM: selection, map, reduce, merge, and the survivor commits, plus
// the serve-mode worker pool and API where a test asks for them.
package e2e

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/design4music/sni-platform-sub000/ent"
	"github.com/design4music/sni-platform-sub000/pkg/api"
	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/database"
	"github.com/design4music/sni-platform-sub000/pkg/events"
	"github.com/design4music/sni-platform-sub000/pkg/llm"
	"github.com/design4music/sni-platform-sub000/pkg/pipeline"
	"github.com/design4music/sni-platform-sub000/pkg/prompt"
	"github.com/design4music/sni-platform-sub000/pkg/queue"
	"github.com/design4music/sni-platform-sub000/pkg/services"
	testdb "github.com/design4music/sni-platform-sub000/test/database"
)

// TestApp wires a complete pipeline instance over a per-test database
// schema. The LLM is the only fake; everything else is production code.
type TestApp struct {
	Config *config.Config
	DB     *database.Client
	Ent    *ent.Client

	LLM *ScriptedLLMClient

	Titles *services.TitleService
	EFs    *services.EventFamilyService
	Runs   *services.RunService

	Orchestrator *pipeline.Orchestrator

	// Set by WithWorkerPool / WithAPIServer.
	Pool    *queue.WorkerPool
	Server  *api.Server
	BaseURL string

	t *testing.T
}

type testAppConfig struct {
	cfg        *config.Config
	llmClient  *ScriptedLLMClient
	podID      string
	workerPool bool
	apiServer  bool
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfig sets a custom config.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithLLMClient sets a pre-scripted LLM client.
func WithLLMClient(client *ScriptedLLMClient) TestAppOption {
	return func(c *testAppConfig) { c.llmClient = client }
}

// WithWorkerPool starts a serve-mode worker pool claiming pending runs.
// Tests that drive the orchestrator directly do not need one.
func WithWorkerPool() TestAppOption {
	return func(c *testAppConfig) { c.workerPool = true }
}

// WithAPIServer starts the HTTP API on an ephemeral port.
func WithAPIServer() TestAppOption {
	return func(c *testAppConfig) { c.apiServer = true }
}

// WithPodID overrides the auto-generated pod identity.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// NewTestApp builds and (where options ask for it) starts a pipeline
// instance. All cleanup is registered on t.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.cfg == nil {
		tc.cfg = defaultTestConfig()
	}
	if tc.llmClient == nil {
		tc.llmClient = NewScriptedLLMClient()
	}
	if tc.podID == "" {
		tc.podID = "e2e-" + t.Name()
	}

	db := testdb.NewTestClient(t)

	titles := services.NewTitleService(db.Client)
	efs := services.NewEventFamilyService(db.Client)
	runs := services.NewRunService(db.Client)
	publisher := events.NewPublisher(db.DB())

	retrier := llm.NewRetrier(tc.llmClient, tc.cfg.LLM)
	prompts := prompt.NewBuilder(tc.cfg.Vocab)
	selector := pipeline.NewSelector(titles, tc.cfg.Pipeline)
	mapper := pipeline.NewMapper(retrier, prompts, tc.cfg.Pipeline)
	reducer := pipeline.NewReducer(retrier, prompts, tc.cfg.Pipeline, tc.cfg.Vocab)
	orch := pipeline.NewOrchestrator(selector, mapper, reducer, efs, runs, tc.cfg.Pipeline, publisher, nil)

	app := &TestApp{
		Config:       tc.cfg,
		DB:           db,
		Ent:          db.Client,
		LLM:          tc.llmClient,
		Titles:       titles,
		EFs:          efs,
		Runs:         runs,
		Orchestrator: orch,
		t:            t,
	}

	ctx := context.Background()

	if tc.workerPool {
		pool := queue.NewWorkerPool(tc.podID, runs, tc.cfg.Queue, orch)
		require.NoError(t, pool.Start(ctx))
		t.Cleanup(func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = pool.Shutdown(shutdownCtx)
		})
		app.Pool = pool
	}

	if tc.apiServer {
		server := api.NewServer(tc.cfg.API, db, runs, app.Pool)
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		go func() {
			_ = server.StartWithListener(ln)
		}()
		t.Cleanup(func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		})
		app.Server = server
		app.BaseURL = fmt.Sprintf("http://%s", ln.Addr().String())
	}

	return app
}

// defaultTestConfig shrinks shard geometry and polling so scripts stay small
// and tests stay fast. Retry behavior is covered in pkg/llm; a scripted
// failure here should exhaust its budget on the first attempt.
func defaultTestConfig() *config.Config {
	cfg := &config.Config{
		Pipeline:  config.DefaultPipelineConfig(),
		LLM:       config.DefaultLLMConfig(),
		Vocab:     config.DefaultVocabConfig(),
		Queue:     config.DefaultQueueConfig(),
		API:       config.DefaultAPIConfig(),
		Telemetry: config.DefaultTelemetryConfig(),
		Retention: config.DefaultRetentionConfig(),
	}

	cfg.Pipeline.MaxTitles = 100
	cfg.Pipeline.MapBatchSize = 5
	cfg.Pipeline.MapConcurrency = 2
	cfg.Pipeline.ReduceConcurrency = 2

	cfg.LLM.BaseURL = "http://scripted.invalid"
	cfg.LLM.APIKey = "scripted"
	cfg.LLM.Model = "scripted"
	cfg.LLM.MaxRetries = 0

	cfg.Queue.PollInterval = 100 * time.Millisecond
	cfg.Queue.PollIntervalJitter = 50 * time.Millisecond
	cfg.Queue.HeartbeatInterval = 5 * time.Second
	cfg.Queue.GracefulShutdownTimeout = 10 * time.Second
	cfg.Queue.OrphanScanInterval = time.Minute
	cfg.Queue.OrphanThreshold = time.Minute

	return cfg
}
