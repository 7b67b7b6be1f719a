package pipeline

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/llm"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/prompt"
)

// scriptedLLM returns canned results in call order, repeating the last one
// once the script is exhausted. Tests that depend on call order run their
// stage with concurrency 1.
type scriptedLLM struct {
	mu     sync.Mutex
	calls  int
	script []func(req *llm.Request) (*llm.Response, error)
}

func (s *scriptedLLM) Complete(_ context.Context, req *llm.Request) (*llm.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.calls
	s.calls++
	if idx >= len(s.script) {
		idx = len(s.script) - 1
	}
	return s.script[idx](req)
}

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func respondJSON(content string) func(*llm.Request) (*llm.Response, error) {
	return func(*llm.Request) (*llm.Response, error) {
		return &llm.Response{Content: content, Model: "test-model"}, nil
	}
}

func respondTransient() func(*llm.Request) (*llm.Response, error) {
	return func(*llm.Request) (*llm.Response, error) {
		return nil, &llm.Error{StatusCode: 503, Message: "upstream busy", Retryable: true}
	}
}

func respondPermanent() func(*llm.Request) (*llm.Response, error) {
	return func(*llm.Request) (*llm.Response, error) {
		return nil, &llm.Error{StatusCode: 401, Message: "invalid api key"}
	}
}

// testRetrier gives every logical call exactly one attempt so failure-path
// tests finish without backoff sleeps.
func testRetrier(client llm.Client) *llm.Retrier {
	return llm.NewRetrier(client, &config.LLMConfig{MaxRetries: 0})
}

func testPipelineConfig(batch, mapConc, reduceConc int) *config.PipelineConfig {
	cfg := config.DefaultPipelineConfig()
	cfg.MapBatchSize = batch
	cfg.MapConcurrency = mapConc
	cfg.ReduceConcurrency = reduceConc
	return cfg
}

func testTitles(n int) []models.Title {
	titles := make([]models.Title, 0, n)
	base := time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		titles = append(titles, models.Title{
			ID:          fmt.Sprintf("t-%d", i),
			Text:        fmt.Sprintf("Title %d", i),
			Lang:        "en",
			Source:      "reuters",
			PublishedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return titles
}

func newMapperForTest(client llm.Client, batch, concurrency int) *Mapper {
	prompts := prompt.NewBuilder(config.DefaultVocabConfig())
	return NewMapper(testRetrier(client), prompts, testPipelineConfig(batch, concurrency, 1))
}

func mapJSON(incidents ...string) string {
	out := `{"incidents": [`
	for i, inc := range incidents {
		if i > 0 {
			out += ","
		}
		out += inc
	}
	return out + `]}`
}

func incidentJSON(rationale string, ids ...string) string {
	out := `{"title_ids": [`
	for i, id := range ids {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%q", id)
	}
	return out + fmt.Sprintf(`], "rationale": %q, "confidence": 0.9}`, rationale)
}

func TestMapper_ShardsAndAggregatesInOrder(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(mapJSON(incidentJSON("same strike", "t-1", "t-2"))),
		respondJSON(mapJSON(incidentJSON("summit", "t-3"), incidentJSON("sanctions", "t-4"))),
		respondJSON(mapJSON(incidentJSON("outage", "t-5"))),
	}}
	mapper := newMapperForTest(client, 2, 1)

	res, err := mapper.Run(context.Background(), testTitles(5))

	require.NoError(t, err)
	assert.Equal(t, 3, res.ShardsTotal)
	assert.Equal(t, 0, res.ShardsFailed)
	assert.Equal(t, 3, client.callCount())
	require.Len(t, res.Incidents, 4)
	assert.Equal(t, []string{"t-1", "t-2"}, res.Incidents[0].TitleIDs)
	assert.False(t, res.Incidents[0].Singleton)
	assert.Equal(t, "same strike", res.Incidents[0].Rationale)
	assert.Equal(t, []string{"t-3"}, res.Incidents[1].TitleIDs)
	assert.True(t, res.Incidents[1].Singleton)
	assert.Equal(t, []string{"t-5"}, res.Incidents[3].TitleIDs)
	assert.Empty(t, res.OrphanTitleIDs)
	for _, inc := range res.Incidents {
		assert.NotEmpty(t, inc.ID)
	}
}

func TestMapper_ValidatesResponse(t *testing.T) {
	// One shard holding t-1..t-4. The response claims a foreign id, places
	// t-2 twice, and emits an empty incident; t-4 is never placed.
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(mapJSON(
			incidentJSON("first", "t-1", "t-99", "t-2"),
			incidentJSON("second", "t-2", "t-3"),
			incidentJSON("empty"),
		)),
	}}
	mapper := newMapperForTest(client, 10, 1)

	res, err := mapper.Run(context.Background(), testTitles(4))

	require.NoError(t, err)
	require.Len(t, res.Incidents, 2)
	assert.Equal(t, []string{"t-1", "t-2"}, res.Incidents[0].TitleIDs)
	assert.Equal(t, []string{"t-3"}, res.Incidents[1].TitleIDs)
	assert.True(t, res.Incidents[1].Singleton)
	assert.Equal(t, []string{"t-4"}, res.OrphanTitleIDs)
	assert.Equal(t, 0, res.ShardsFailed)
}

func TestMapper_FailedShardOrphansItsTitles(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondTransient(),
		respondJSON(mapJSON(incidentJSON("ok", "t-3", "t-4"))),
	}}
	mapper := newMapperForTest(client, 2, 1)

	res, err := mapper.Run(context.Background(), testTitles(4))

	require.NoError(t, err)
	assert.Equal(t, 2, res.ShardsTotal)
	assert.Equal(t, 1, res.ShardsFailed)
	assert.Equal(t, []string{"t-1", "t-2"}, res.OrphanTitleIDs)
	require.Len(t, res.Incidents, 1)
	assert.Equal(t, []string{"t-3", "t-4"}, res.Incidents[0].TitleIDs)
}

func TestMapper_MalformedResponseOrphansShard(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON("the model wrote prose instead of JSON"),
	}}
	mapper := newMapperForTest(client, 10, 1)

	res, err := mapper.Run(context.Background(), testTitles(3))

	require.NoError(t, err)
	assert.Equal(t, 1, res.ShardsFailed)
	assert.Equal(t, []string{"t-1", "t-2", "t-3"}, res.OrphanTitleIDs)
	assert.Empty(t, res.Incidents)
}

func TestMapper_PermanentErrorAbortsPhase(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondPermanent(),
	}}
	mapper := newMapperForTest(client, 2, 1)

	_, err := mapper.Run(context.Background(), testTitles(4))

	require.Error(t, err)
	assert.Equal(t, models.ErrorCategoryLLM, Categorize(err))
}

func TestMapper_EmptyInput(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(mapJSON()),
	}}
	mapper := newMapperForTest(client, 2, 1)

	res, err := mapper.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, res.ShardsTotal)
	assert.Empty(t, res.Incidents)
	assert.Empty(t, res.OrphanTitleIDs)
	assert.Equal(t, 0, client.callCount())
}

func TestMapper_SingleTitle(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(mapJSON(incidentJSON("lone", "t-1"))),
	}}
	mapper := newMapperForTest(client, 50, 4)

	res, err := mapper.Run(context.Background(), testTitles(1))

	require.NoError(t, err)
	assert.Equal(t, 1, res.ShardsTotal)
	require.Len(t, res.Incidents, 1)
	assert.True(t, res.Incidents[0].Singleton)
}
