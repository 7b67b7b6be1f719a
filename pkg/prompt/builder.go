package prompt

import (
	"fmt"

	"github.com/design4music/sni-platform-sub000/pkg/config"
	"github.com/design4music/sni-platform-sub000/pkg/llm"
	"github.com/design4music/sni-platform-sub000/pkg/models"
)

// Builder builds stage prompts. Stateless apart from the injected
// vocabularies; safe for concurrent use.
type Builder struct {
	vocab *config.VocabConfig
}

// NewBuilder creates a Builder over the configured vocabularies.
// Panics if vocab is nil; callers must pass validated configuration.
func NewBuilder(vocab *config.VocabConfig) *Builder {
	if vocab == nil {
		panic("prompt.NewBuilder: vocab must not be nil")
	}
	return &Builder{vocab: vocab}
}

// MapResponse is the strict-JSON payload the map prompt demands.
type MapResponse struct {
	Incidents []MapIncident `json:"incidents"`
}

// MapIncident is one clustered incident as the model reports it,
// before validation.
type MapIncident struct {
	TitleIDs   []string `json:"title_ids"`
	Rationale  string   `json:"rationale"`
	Confidence float64  `json:"confidence"`
}

// ReduceResponse is the strict-JSON payload the reduce prompt demands.
// Enum fields arrive raw; the reducer normalizes them against the
// vocabularies.
type ReduceResponse struct {
	Theater    string          `json:"theater"`
	EventType  string          `json:"event_type"`
	Headline   string          `json:"headline"`
	Summary    string          `json:"summary"`
	Actors     []string        `json:"actors"`
	Tags       []string        `json:"tags"`
	Confidence float64         `json:"confidence"`
	Timeline   []TimelineEntry `json:"timeline"`
}

// TimelineEntry is a dated event within the incident. Timestamp stays a
// string on the wire; the reducer parses and validates it.
type TimelineEntry struct {
	Timestamp      string   `json:"timestamp"`
	Description    string   `json:"description"`
	SourceTitleIDs []string `json:"source_title_ids"`
}

// BuildMapPrompt builds the clustering call for one shard of titles.
func (b *Builder) BuildMapPrompt(shard []models.Title) *llm.Request {
	return &llm.Request{
		System: mapSystemPrompt,
		User:   fmt.Sprintf(mapTaskTemplate, len(shard), FormatTitleList(shard)),
	}
}

// BuildReducePrompt builds the classification call for one incident. The
// titles are the resolved members of incident, in incident order.
func (b *Builder) BuildReducePrompt(incident models.Incident, titles []models.Title) *llm.Request {
	system := fmt.Sprintf(reduceSystemTemplate,
		FormatVocabulary(b.vocab.Theaters),
		FormatVocabulary(b.vocab.EventTypes),
	)
	user := fmt.Sprintf(reduceTaskTemplate,
		len(titles),
		formatRationaleLine(incident.Rationale),
		FormatTitleList(titles),
	)
	return &llm.Request{System: system, User: user}
}
