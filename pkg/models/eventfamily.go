package models

import "time"

// Merge source kinds recorded in lineage entries and merge audit rows.
const (
	SourceKindCandidate = "candidate"
	SourceKindStored    = "stored"
)

// Vocabulary fallbacks. Unknown enum values returned by the model are
// normalized to these, so both must be members of the configured
// vocabularies.
const (
	FallbackTheater   = "GLOBAL"
	FallbackEventType = "OTHER"
)

// TimelineEntry is one event in an EF's timeline. Identity for
// deduplication is the (Timestamp, Description) pair.
type TimelineEntry struct {
	Timestamp      time.Time `json:"timestamp"`
	Description    string    `json:"description"`
	SourceTitleIDs []string  `json:"source_title_ids,omitempty"`
}

// SameEvent reports whether two entries describe the same timeline event.
func (e TimelineEntry) SameEvent(other TimelineEntry) bool {
	return e.Timestamp.Equal(other.Timestamp) && e.Description == other.Description
}

// Before orders entries by (Timestamp, Description).
func (e TimelineEntry) Before(other TimelineEntry) bool {
	if !e.Timestamp.Equal(other.Timestamp) {
		return e.Timestamp.Before(other.Timestamp)
	}
	return e.Description < other.Description
}

// AbsorbedRef identifies one source folded into a survivor.
type AbsorbedRef struct {
	SourceID   string `json:"source_id"`
	SourceKind string `json:"source_kind"`
	TitleCount int    `json:"title_count"`
	// TitlesAdded is how many of the source's titles were new to the
	// survivor; it can be 0 when the source contributed timeline only.
	TitlesAdded int  `json:"titles_added"`
	Singleton   bool `json:"singleton"`
}

// LineageEntry records every source an EF absorbed during one run.
// No-op absorptions (nothing new gained) append no entry.
type LineageEntry struct {
	RunID           string        `json:"run_id"`
	MergedAt        time.Time     `json:"merged_at"`
	Absorbed        []AbsorbedRef `json:"absorbed"`
	TitleCountAfter int           `json:"title_count_after"`
}

// EventFamily is the in-memory EF state the merge engine operates on.
// Candidates carry a provisional uuid and Persisted=false; stored EFs are
// loaded with Persisted=true and their member title ids.
type EventFamily struct {
	ID              string          `json:"id"`
	EFKey           string          `json:"ef_key"`
	Theater         string          `json:"theater"`
	EventType       string          `json:"event_type"`
	Headline        string          `json:"headline"`
	Summary         string          `json:"summary"`
	Actors          []string        `json:"actors,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	Timeline        []TimelineEntry `json:"timeline,omitempty"`
	Confidence      float64         `json:"confidence"`
	TitleIDs        []string        `json:"title_ids"`
	SingletonOrigin bool            `json:"singleton_origin"`
	Lineage         []LineageEntry  `json:"lineage,omitempty"`
	ParentEFID      *string         `json:"parent_ef_id,omitempty"`
	FirstSeenAt     time.Time       `json:"first_seen_at"`
	LastUpdatedAt   time.Time       `json:"last_updated_at"`
	Persisted       bool            `json:"persisted"`
	CreatedByRunID  string          `json:"created_by_run_id,omitempty"`
	UpdatedByRunID  string          `json:"updated_by_run_id,omitempty"`
}

// TitleCount is the current member count. Retired rows keep their last
// persisted count for audit; in memory the title set is authoritative.
func (ef *EventFamily) TitleCount() int {
	return len(ef.TitleIDs)
}

// HasTitle reports membership without assuming TitleIDs is sorted.
func (ef *EventFamily) HasTitle(titleID string) bool {
	for _, id := range ef.TitleIDs {
		if id == titleID {
			return true
		}
	}
	return false
}

// SourceKind reports how this EF is recorded when absorbed by a survivor.
func (ef *EventFamily) SourceKind() string {
	if ef.Persisted {
		return SourceKindStored
	}
	return SourceKindCandidate
}
