package prompt

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilderForTest() *Builder {
	return NewBuilder(config.DefaultVocabConfig())
}

func sampleTitles() []models.Title {
	return []models.Title{
		{
			ID:          "t-1",
			Text:        "Parliament approves emergency budget",
			Lang:        "en",
			Source:      "reuters",
			PublishedAt: time.Date(2025, 11, 3, 8, 30, 0, 0, time.UTC),
		},
		{
			ID:          "t-2",
			Text:        "Парламент одобрил чрезвычайный бюджет",
			Lang:        "ru",
			Source:      "tass",
			PublishedAt: time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestBuildMapPrompt(t *testing.T) {
	builder := newBuilderForTest()

	req := builder.BuildMapPrompt(sampleTitles())

	// System message fixes the task and the JSON contract.
	assert.Contains(t, req.System, "news clustering analyst")
	assert.Contains(t, req.System, "at most one incident")
	assert.Contains(t, req.System, "Never invent ids")
	assert.Contains(t, req.System, `"title_ids"`)
	assert.Contains(t, req.System, "strict JSON only")

	// User message lists every title in the documented layout.
	assert.Contains(t, req.User, "Cluster the following 2 titles")
	assert.Contains(t, req.User, "t-1 | en | reuters | 2025-11-03T08:30:00Z | Parliament approves emergency budget")
	assert.Contains(t, req.User, "t-2 | ru | tass | 2025-11-03T09:00:00Z | Парламент одобрил чрезвычайный бюджет")
}

func TestBuildReducePrompt(t *testing.T) {
	builder := newBuilderForTest()

	incident := models.Incident{
		ID:        "inc-1",
		TitleIDs:  []string{"t-1", "t-2"},
		Rationale: "Both report the same budget vote.",
	}

	req := builder.BuildReducePrompt(incident, sampleTitles())

	// Both vocabularies are injected verbatim.
	for _, theater := range config.DefaultVocabConfig().Theaters {
		assert.Contains(t, req.System, "- "+theater)
	}
	for _, eventType := range config.DefaultVocabConfig().EventTypes {
		assert.Contains(t, req.System, "- "+eventType)
	}

	assert.Contains(t, req.System, "exactly one value from the THEATERS list")
	assert.Contains(t, req.System, `"event_type"`)
	assert.Contains(t, req.System, `"timeline"`)

	assert.Contains(t, req.User, "incident of 2 title(s)")
	assert.Contains(t, req.User, "Clustering rationale: Both report the same budget vote.")
	assert.Contains(t, req.User, "every output field is English")
	assert.Contains(t, req.User, "t-1 | en | reuters")
}

func TestBuildReducePrompt_NoRationale(t *testing.T) {
	builder := newBuilderForTest()

	incident := models.Incident{ID: "inc-1", TitleIDs: []string{"t-1"}}
	req := builder.BuildReducePrompt(incident, sampleTitles()[:1])

	assert.NotContains(t, req.User, "Clustering rationale")
}

func TestFormatTitleList_FlattensNewlines(t *testing.T) {
	titles := []models.Title{
		{
			ID:          "t-nl",
			Text:        "Line one\nline two\r\nline three",
			Lang:        "en",
			Source:      "ap",
			PublishedAt: time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
		},
	}

	out := FormatTitleList(titles)

	require.Equal(t, 1, strings.Count(out, "\n")+1, "one title renders as one line")
	assert.Contains(t, out, "Line one line two line three")
}

func TestFormatTitleList_NonUTCPublishedAt(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	titles := []models.Title{
		{
			ID:          "t-tz",
			Text:        "Zoned title",
			Lang:        "en",
			Source:      "afp",
			PublishedAt: time.Date(2025, 11, 3, 12, 0, 0, 0, loc),
		},
	}

	out := FormatTitleList(titles)
	assert.Contains(t, out, "2025-11-03T09:00:00Z", "timestamps normalize to UTC")
}

// The schema lines inside both system prompts must themselves be valid
// JSON, otherwise models mirror broken examples back.
func TestResponseSchemasInPromptsAreValidJSON(t *testing.T) {
	builder := newBuilderForTest()

	mapReq := builder.BuildMapPrompt(sampleTitles())
	reduceReq := builder.BuildReducePrompt(models.Incident{ID: "i"}, sampleTitles())

	for _, system := range []string{mapReq.System, reduceReq.System} {
		lines := strings.Split(system, "\n")
		schema := lines[len(lines)-1]
		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(schema), &parsed), "schema line: %s", schema)
	}
}

func TestMapResponse_RoundTrip(t *testing.T) {
	payload := `{"incidents": [{"title_ids": ["t-1", "t-2"], "rationale": "same vote", "confidence": 0.9}]}`

	var resp MapResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	require.Len(t, resp.Incidents, 1)
	assert.Equal(t, []string{"t-1", "t-2"}, resp.Incidents[0].TitleIDs)
	assert.InDelta(t, 0.9, resp.Incidents[0].Confidence, 1e-9)
}

func TestReduceResponse_RoundTrip(t *testing.T) {
	payload := `{
		"theater": "EUROPE",
		"event_type": "DOMESTIC_POLITICS",
		"headline": "Parliament approves emergency budget",
		"summary": "The national parliament passed an emergency budget. The vote followed two days of debate.",
		"actors": ["Parliament"],
		"tags": ["budget", "vote"],
		"confidence": 0.85,
		"timeline": [{"timestamp": "2025-11-03T08:30:00Z", "description": "Vote held", "source_title_ids": ["t-1"]}]
	}`

	var resp ReduceResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	assert.Equal(t, "EUROPE", resp.Theater)
	assert.Equal(t, "DOMESTIC_POLITICS", resp.EventType)
	require.Len(t, resp.Timeline, 1)
	assert.Equal(t, "2025-11-03T08:30:00Z", resp.Timeline[0].Timestamp)
}
