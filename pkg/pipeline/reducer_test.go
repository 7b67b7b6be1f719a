package pipeline

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/llm"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/design4music/sni-platform-sub000/pkg/prompt"
)

func newReducerForTest(client llm.Client) *Reducer {
	vocab := config.DefaultVocabConfig()
	prompts := prompt.NewBuilder(vocab)
	return NewReducer(testRetrier(client), prompts, testPipelineConfig(50, 1, 1), vocab)
}

func titleMap(titles []models.Title) map[string]models.Title {
	m := make(map[string]models.Title, len(titles))
	for _, t := range titles {
		m[t.ID] = t
	}
	return m
}

func reduceJSON(theater, eventType string, confidence float64, timeline string) string {
	return fmt.Sprintf(`{
		"theater": %q,
		"event_type": %q,
		"headline": "Strikes hit port infrastructure",
		"summary": "Multiple strikes damaged facilities overnight.",
		"actors": ["Country A", "Country B"],
		"tags": ["strikes", "infrastructure"],
		"confidence": %g,
		"timeline": %s
	}`, theater, eventType, confidence, timeline)
}

func incident(id string, titleIDs ...string) models.Incident {
	return models.Incident{
		ID:         id,
		TitleIDs:   titleIDs,
		Rationale:  "same underlying incident",
		Confidence: 0.9,
		Singleton:  len(titleIDs) == 1,
	}
}

func TestReducer_BuildsCandidate(t *testing.T) {
	timeline := `[
		{"timestamp": "2025-11-03T09:00:00Z", "description": "Follow-up strikes", "source_title_ids": ["t-2", "t-77"]},
		{"timestamp": "2025-11-03T08:01:00Z", "description": "First reports", "source_title_ids": ["t-1"]}
	]`
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(reduceJSON("EUROPE", "MILITARY_OP", 0.85, timeline)),
	}}
	reducer := newReducerForTest(client)

	titles := testTitles(2)
	res, err := reducer.Run(context.Background(), []models.Incident{incident("inc-1", "t-1", "t-2")}, nil, titleMap(titles))

	require.NoError(t, err)
	require.Len(t, res.Candidates, 1)
	assert.Empty(t, res.DroppedTitleIDs)

	ef := res.Candidates[0]
	assert.NotEmpty(t, ef.ID)
	assert.Equal(t, "EUROPE", ef.Theater)
	assert.Equal(t, "MILITARY_OP", ef.EventType)
	assert.Equal(t, ComputeEFKey("EUROPE", "MILITARY_OP"), ef.EFKey)
	assert.Equal(t, []string{"t-1", "t-2"}, ef.TitleIDs)
	assert.False(t, ef.SingletonOrigin)
	assert.InDelta(t, 0.85, ef.Confidence, 1e-9)
	assert.Equal(t, titles[0].PublishedAt, ef.FirstSeenAt)
	assert.Equal(t, []string{"Country A", "Country B"}, ef.Actors)

	// Timeline came back out of order with a foreign source id.
	require.Len(t, ef.Timeline, 2)
	assert.Equal(t, "First reports", ef.Timeline[0].Description)
	assert.Equal(t, "Follow-up strikes", ef.Timeline[1].Description)
	assert.Equal(t, []string{"t-2"}, ef.Timeline[1].SourceTitleIDs)
}

func TestReducer_NormalizesEnums(t *testing.T) {
	tests := []struct {
		name           string
		theater        string
		eventType      string
		confidence     float64
		wantTheater    string
		wantEventType  string
		wantConfidence float64
	}{
		{
			name:    "whitespace and case normalize without penalty",
			theater: " europe ", eventType: "military_op", confidence: 0.9,
			wantTheater: "EUROPE", wantEventType: "MILITARY_OP", wantConfidence: 0.9,
		},
		{
			name:    "unknown theater falls back with one penalty",
			theater: "ARCTIC", eventType: "MILITARY_OP", confidence: 0.9,
			wantTheater: "GLOBAL", wantEventType: "MILITARY_OP", wantConfidence: 0.75,
		},
		{
			name:    "unknown event type falls back with one penalty",
			theater: "EUROPE", eventType: "WEATHER", confidence: 0.9,
			wantTheater: "EUROPE", wantEventType: "OTHER", wantConfidence: 0.75,
		},
		{
			name:    "both unknown take two penalties",
			theater: "ARCTIC", eventType: "WEATHER", confidence: 0.9,
			wantTheater: "GLOBAL", wantEventType: "OTHER", wantConfidence: 0.6,
		},
		{
			name:    "penalty floors at zero",
			theater: "ARCTIC", eventType: "WEATHER", confidence: 0.2,
			wantTheater: "GLOBAL", wantEventType: "OTHER", wantConfidence: 0,
		},
		{
			name:    "confidence above one is clamped",
			theater: "EUROPE", eventType: "MILITARY_OP", confidence: 1.4,
			wantTheater: "EUROPE", wantEventType: "MILITARY_OP", wantConfidence: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
				respondJSON(reduceJSON(tt.theater, tt.eventType, tt.confidence, "[]")),
			}}
			reducer := newReducerForTest(client)

			res, err := reducer.Run(context.Background(),
				[]models.Incident{incident("inc-1", "t-1")}, nil, titleMap(testTitles(1)))

			require.NoError(t, err)
			require.Len(t, res.Candidates, 1)
			ef := res.Candidates[0]
			assert.Equal(t, tt.wantTheater, ef.Theater)
			assert.Equal(t, tt.wantEventType, ef.EventType)
			assert.InDelta(t, tt.wantConfidence, ef.Confidence, 1e-9)
			assert.Equal(t, ComputeEFKey(tt.wantTheater, tt.wantEventType), ef.EFKey)
		})
	}
}

func TestReducer_TimelineValidation(t *testing.T) {
	timeline := `[
		{"timestamp": "not a time", "description": "dropped for timestamp"},
		{"timestamp": "2025-11-02T10:00:00Z", "description": ""},
		{"timestamp": "2025-11-01", "description": "date-only parses"},
		{"timestamp": "2025-11-02T10:00:00Z", "description": "kept once"},
		{"timestamp": "2025-11-02T10:00:00Z", "description": "kept once"}
	]`
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(reduceJSON("EUROPE", "MILITARY_OP", 0.8, timeline)),
	}}
	reducer := newReducerForTest(client)

	res, err := reducer.Run(context.Background(),
		[]models.Incident{incident("inc-1", "t-1")}, nil, titleMap(testTitles(1)))

	require.NoError(t, err)
	require.Len(t, res.Candidates, 1)
	tl := res.Candidates[0].Timeline
	require.Len(t, tl, 2)
	assert.Equal(t, "date-only parses", tl[0].Description)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), tl[0].Timestamp)
	assert.Equal(t, "kept once", tl[1].Description)
}

func TestReducer_OrphansJoinFirstPass(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(reduceJSON("EUROPE", "MILITARY_OP", 0.8, "[]")),
		respondJSON(reduceJSON("MIDEAST", "DIPLOMACY", 0.7, "[]")),
	}}
	reducer := newReducerForTest(client)

	titles := testTitles(3)
	res, err := reducer.Run(context.Background(),
		[]models.Incident{incident("inc-1", "t-1", "t-2")}, []string{"t-3"}, titleMap(titles))

	require.NoError(t, err)
	assert.Equal(t, 2, client.callCount())
	require.Len(t, res.Candidates, 2)
	assert.False(t, res.Candidates[0].SingletonOrigin)
	assert.True(t, res.Candidates[1].SingletonOrigin)
	assert.Equal(t, []string{"t-3"}, res.Candidates[1].TitleIDs)
	assert.Zero(t, res.IncidentsFailed)
}

func TestReducer_FailedIncidentRetriesAsSingletons(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondTransient(),
		respondJSON(reduceJSON("EUROPE", "MILITARY_OP", 0.8, "[]")),
		respondJSON(reduceJSON("EUROPE", "MILITARY_OP", 0.7, "[]")),
	}}
	reducer := newReducerForTest(client)

	res, err := reducer.Run(context.Background(),
		[]models.Incident{incident("inc-1", "t-1", "t-2")}, nil, titleMap(testTitles(2)))

	require.NoError(t, err)
	assert.Equal(t, 3, client.callCount())
	assert.Equal(t, 1, res.IncidentsFailed)
	assert.Empty(t, res.DroppedTitleIDs)
	require.Len(t, res.Candidates, 2)
	assert.Equal(t, []string{"t-1"}, res.Candidates[0].TitleIDs)
	assert.True(t, res.Candidates[0].SingletonOrigin)
	assert.Equal(t, []string{"t-2"}, res.Candidates[1].TitleIDs)
}

func TestReducer_ExhaustedSingletonIsDropped(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondTransient(),
	}}
	reducer := newReducerForTest(client)

	res, err := reducer.Run(context.Background(), nil, []string{"t-1"}, titleMap(testTitles(1)))

	require.NoError(t, err)
	// One first-pass attempt, one singleton retry.
	assert.Equal(t, 2, client.callCount())
	assert.Empty(t, res.Candidates)
	assert.Equal(t, []string{"t-1"}, res.DroppedTitleIDs)
	assert.Equal(t, 1, res.IncidentsFailed)
}

func TestReducer_MalformedExhaustionFollowsRetryPath(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON("no json here"),
		respondJSON(reduceJSON("EUROPE", "CYBER", 0.8, "[]")),
	}}
	reducer := newReducerForTest(client)

	res, err := reducer.Run(context.Background(), nil, []string{"t-1"}, titleMap(testTitles(1)))

	require.NoError(t, err)
	assert.Equal(t, 2, client.callCount())
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, "CYBER", res.Candidates[0].EventType)
	assert.Empty(t, res.DroppedTitleIDs)
}

func TestReducer_PermanentErrorAbortsPhase(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondPermanent(),
	}}
	reducer := newReducerForTest(client)

	_, err := reducer.Run(context.Background(),
		[]models.Incident{incident("inc-1", "t-1")}, nil, titleMap(testTitles(1)))

	require.Error(t, err)
	assert.Equal(t, models.ErrorCategoryLLM, Categorize(err))
}

func TestReducer_UnknownTitleIDsAreSkipped(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(reduceJSON("EUROPE", "MILITARY_OP", 0.8, "[]")),
	}}
	reducer := newReducerForTest(client)

	res, err := reducer.Run(context.Background(),
		[]models.Incident{incident("inc-1", "t-1", "t-404")}, nil, titleMap(testTitles(1)))

	require.NoError(t, err)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, []string{"t-1"}, res.Candidates[0].TitleIDs)
	assert.True(t, res.Candidates[0].SingletonOrigin)
}

func TestReducer_UnresolvableIncidentDropsWithoutLLMCalls(t *testing.T) {
	client := &scriptedLLM{script: []func(*llm.Request) (*llm.Response, error){
		respondJSON(reduceJSON("EUROPE", "MILITARY_OP", 0.8, "[]")),
	}}
	reducer := newReducerForTest(client)

	res, err := reducer.Run(context.Background(),
		[]models.Incident{incident("inc-1", "t-404")}, nil, titleMap(testTitles(1)))

	require.NoError(t, err)
	assert.Equal(t, 0, client.callCount())
	assert.Empty(t, res.Candidates)
	assert.Equal(t, []string{"t-404"}, res.DroppedTitleIDs)
}
